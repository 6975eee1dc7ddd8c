package service

import (
	"context"
	"testing"
	"time"

	"energy-marketplace/internal/core/domain"
	"energy-marketplace/internal/core/ports"
	"energy-marketplace/internal/core/ports/mocks"
	"energy-marketplace/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type offerTestDeps struct {
	svc         *OfferServiceImpl
	offerRepo   *mocks.MockOfferRepository
	accountRepo *mocks.MockAccountRepository
	ctrl        *gomock.Controller
}

func setupOfferService(t *testing.T) *offerTestDeps {
	ctrl := gomock.NewController(t)
	d := &offerTestDeps{
		offerRepo:   mocks.NewMockOfferRepository(ctrl),
		accountRepo: mocks.NewMockAccountRepository(ctrl),
		ctrl:        ctrl,
	}
	d.svc = NewOfferService(d.offerRepo, d.accountRepo, zerolog.Nop())
	return d
}

func TestOfferService_Create_Success(t *testing.T) {
	d := setupOfferService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	sellerID := uuid.New()

	d.accountRepo.EXPECT().GetByID(ctx, sellerID).
		Return(&domain.Account{ID: sellerID, Role: domain.RoleProducer}, nil)
	d.offerRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil)

	offer, err := d.svc.Create(ctx, ports.CreateOfferRequest{
		SellerID: sellerID,
		KWh:      10,
		PriceEUR: 0.20,
	})

	require.NoError(t, err)
	assert.Equal(t, sellerID, offer.SellerID)
	assert.Equal(t, 10.0, offer.KWhTotal)
	assert.Equal(t, 10.0, offer.KWhRemaining)
	assert.Equal(t, domain.MoneyFromEUR(0.20), offer.UnitPrice)
	assert.Equal(t, domain.OfferStatusActive, offer.Status)
}

func TestOfferService_Create_ExplicitTimestamp(t *testing.T) {
	d := setupOfferService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	sellerID := uuid.New()
	ts := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	d.accountRepo.EXPECT().GetByID(ctx, sellerID).
		Return(&domain.Account{ID: sellerID, Role: domain.RoleBoth}, nil)
	d.offerRepo.EXPECT().Create(ctx, gomock.Any()).Return(nil)

	offer, err := d.svc.Create(ctx, ports.CreateOfferRequest{
		SellerID: sellerID,
		KWh:      1,
		PriceEUR: 0.10,
		TS:       ts.Unix(),
	})

	require.NoError(t, err)
	assert.Equal(t, ts, offer.CreatedAt)
}

func TestOfferService_Create_RoleViolation(t *testing.T) {
	d := setupOfferService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()

	for _, role := range []domain.Role{domain.RoleConsumer, domain.RoleProvider} {
		sellerID := uuid.New()
		d.accountRepo.EXPECT().GetByID(ctx, sellerID).
			Return(&domain.Account{ID: sellerID, Role: role}, nil)

		offer, err := d.svc.Create(ctx, ports.CreateOfferRequest{
			SellerID: sellerID,
			KWh:      10,
			PriceEUR: 0.20,
		})

		assert.Nil(t, offer)
		appErr, ok := err.(*apperror.AppError)
		require.True(t, ok)
		assert.Equal(t, "MKT_003", appErr.Code)
	}
}

func TestOfferService_Create_SellerNotFound(t *testing.T) {
	d := setupOfferService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	sellerID := uuid.New()
	d.accountRepo.EXPECT().GetByID(ctx, sellerID).Return(nil, nil)

	offer, err := d.svc.Create(ctx, ports.CreateOfferRequest{SellerID: sellerID, KWh: 1, PriceEUR: 0.1})
	assert.Nil(t, offer)
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, "MKT_001", appErr.Code)
}

func TestOfferService_Create_InvalidInput(t *testing.T) {
	d := setupOfferService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	sellerID := uuid.New()

	cases := []struct {
		name  string
		kwh   float64
		price float64
	}{
		{"zero kwh", 0, 0.20},
		{"negative kwh", -1, 0.20},
		{"zero price", 10, 0},
		{"negative price", 10, -0.01},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d.accountRepo.EXPECT().GetByID(ctx, sellerID).
				Return(&domain.Account{ID: sellerID, Role: domain.RoleProducer}, nil)

			offer, err := d.svc.Create(ctx, ports.CreateOfferRequest{
				SellerID: sellerID,
				KWh:      tc.kwh,
				PriceEUR: tc.price,
			})
			assert.Nil(t, offer)
			appErr, ok := err.(*apperror.AppError)
			require.True(t, ok)
			assert.Equal(t, "MKT_002", appErr.Code)
		})
	}
}

func TestOfferService_ListActive(t *testing.T) {
	d := setupOfferService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	want := []domain.Offer{{ID: uuid.New(), Status: domain.OfferStatusActive}}
	d.offerRepo.EXPECT().ListActive(ctx, 100).Return(want, nil)

	offers, err := d.svc.ListActive(ctx, 100)
	require.NoError(t, err)
	assert.Equal(t, want, offers)
}
