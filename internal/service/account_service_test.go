package service

import (
	"context"
	"testing"

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

type accountTestDeps struct {
	svc         *AccountServiceImpl
	accountRepo *mocks.MockAccountRepository
	meterSvc    *mocks.MockMeterService
	ctrl        *gomock.Controller
}

func setupAccountService(t *testing.T) *accountTestDeps {
	ctrl := gomock.NewController(t)
	d := &accountTestDeps{
		accountRepo: mocks.NewMockAccountRepository(ctrl),
		meterSvc:    mocks.NewMockMeterService(ctrl),
		ctrl:        ctrl,
	}
	d.svc = NewAccountService(
		d.accountRepo, d.meterSvc,
		[]string{"grid-east", "grid-west"}, 12,
		zerolog.Nop(),
	)
	return d
}

// ==================== Register Tests ====================

func TestAccountService_Register_Success(t *testing.T) {
	d := setupAccountService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.accountRepo.EXPECT().GetByEmail(ctx, "alice@example.com").Return(nil, nil)

	var created *domain.Account
	d.accountRepo.EXPECT().Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, account *domain.Account) error {
			created = account
			return nil
		})

	account, err := d.svc.Register(ctx, ports.RegisterAccountRequest{
		Email:  "  Alice@Example.COM ",
		Wallet: "0xwallet",
		Role:   domain.RoleBoth,
	})

	require.NoError(t, err)
	assert.Equal(t, created, account)
	assert.Equal(t, "alice@example.com", account.Email)
	assert.Equal(t, domain.RoleBoth, account.Role)
	assert.Equal(t, domain.Money(0), account.Balance)
	assert.NotEqual(t, uuid.Nil, account.ID)
}

func TestAccountService_Register_DuplicateEmail(t *testing.T) {
	d := setupAccountService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.accountRepo.EXPECT().GetByEmail(ctx, "alice@example.com").
		Return(&domain.Account{ID: uuid.New(), Email: "alice@example.com"}, nil)

	account, err := d.svc.Register(ctx, ports.RegisterAccountRequest{
		Email: "alice@example.com",
		Role:  domain.RoleConsumer,
	})

	assert.Nil(t, account)
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, "MKT_004", appErr.Code)
}

func TestAccountService_Register_InvalidRole(t *testing.T) {
	d := setupAccountService(t)
	defer d.ctrl.Finish()

	for _, role := range []domain.Role{domain.Role("admin"), domain.RoleProvider, domain.Role("")} {
		account, err := d.svc.Register(context.Background(), ports.RegisterAccountRequest{
			Email: "bob@example.com",
			Role:  role,
		})
		assert.Nil(t, account)
		appErr, ok := err.(*apperror.AppError)
		require.True(t, ok)
		assert.Equal(t, "MKT_002", appErr.Code)
	}
}

func TestAccountService_Register_EmptyEmail(t *testing.T) {
	d := setupAccountService(t)
	defer d.ctrl.Finish()

	account, err := d.svc.Register(context.Background(), ports.RegisterAccountRequest{
		Email: "   ",
		Role:  domain.RoleConsumer,
	})
	assert.Nil(t, account)
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, "MKT_002", appErr.Code)
}

// ==================== Fund Tests ====================

func TestAccountService_Fund_Success(t *testing.T) {
	d := setupAccountService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	id := uuid.New()
	newBalance := domain.MoneyFromEUR(5.00)

	d.accountRepo.EXPECT().AddToBalance(ctx, id, domain.MoneyFromEUR(5.00)).Return(&newBalance, nil)

	balance, err := d.svc.Fund(ctx, id, domain.MoneyFromEUR(5.00))
	require.NoError(t, err)
	assert.Equal(t, newBalance, balance)
}

func TestAccountService_Fund_NonPositiveAmount(t *testing.T) {
	d := setupAccountService(t)
	defer d.ctrl.Finish()

	_, err := d.svc.Fund(context.Background(), uuid.New(), 0)
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, "MKT_002", appErr.Code)

	_, err = d.svc.Fund(context.Background(), uuid.New(), domain.MoneyFromEUR(-1))
	appErr, ok = err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, "MKT_002", appErr.Code)
}

func TestAccountService_Fund_AccountNotFound(t *testing.T) {
	d := setupAccountService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	id := uuid.New()
	d.accountRepo.EXPECT().AddToBalance(ctx, id, gomock.Any()).Return(nil, nil)

	_, err := d.svc.Fund(ctx, id, domain.MoneyFromEUR(1))
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, "MKT_001", appErr.Code)
}

// ==================== GetStatus Tests ====================

func TestAccountService_GetStatus(t *testing.T) {
	d := setupAccountService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	id := uuid.New()

	d.accountRepo.EXPECT().GetByID(ctx, id).
		Return(&domain.Account{ID: id, Balance: domain.MoneyFromEUR(4.00)}, nil)
	d.meterSvc.EXPECT().WindowedSurplus(ctx, id, 12).Return(3.5, nil)

	status, err := d.svc.GetStatus(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, id, status.AccountID)
	assert.Equal(t, domain.MoneyFromEUR(4.00), status.Balance)
	assert.Equal(t, 3.5, status.StoredSurplusKWh)
}

func TestAccountService_GetStatus_NotFound(t *testing.T) {
	d := setupAccountService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	id := uuid.New()
	d.accountRepo.EXPECT().GetByID(ctx, id).Return(nil, nil)

	status, err := d.svc.GetStatus(ctx, id)
	assert.Nil(t, status)
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok)
	assert.Equal(t, "MKT_001", appErr.Code)
}

// ==================== SeedProviders Tests ====================

func TestAccountService_SeedProviders_CreatesMissing(t *testing.T) {
	d := setupAccountService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.accountRepo.EXPECT().ListByRole(ctx, domain.RoleProvider).
		Return([]domain.Account{{ID: uuid.New(), Email: "grid-east", Role: domain.RoleProvider}}, nil)

	var created []string
	d.accountRepo.EXPECT().Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, account *domain.Account) error {
			created = append(created, account.Email)
			assert.Equal(t, domain.RoleProvider, account.Role)
			return nil
		})

	require.NoError(t, d.svc.SeedProviders(ctx))
	assert.Equal(t, []string{"grid-west"}, created)
}

func TestAccountService_SeedProviders_Idempotent(t *testing.T) {
	d := setupAccountService(t)
	defer d.ctrl.Finish()

	ctx := context.Background()
	d.accountRepo.EXPECT().ListByRole(ctx, domain.RoleProvider).Return([]domain.Account{
		{ID: uuid.New(), Email: "grid-east", Role: domain.RoleProvider},
		{ID: uuid.New(), Email: "grid-west", Role: domain.RoleProvider},
	}, nil)

	// No Create expected.
	require.NoError(t, d.svc.SeedProviders(ctx))
}
