package postgres

import (
	"context"
	"testing"
	"time"

	"energy-marketplace/internal/core/domain"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOffer() *domain.Offer {
	return &domain.Offer{
		ID:           uuid.New(),
		SellerID:     uuid.New(),
		KWhTotal:     10,
		KWhRemaining: 10,
		UnitPrice:    domain.MoneyFromEUR(0.20),
		Status:       domain.OfferStatusActive,
		CreatedAt:    time.Now().UTC().Truncate(time.Microsecond),
	}
}

func offerColumns() []string {
	return []string{"id", "seller_id", "kwh_total", "kwh_remaining", "unit_price", "status", "created_at"}
}

func offerRow(o *domain.Offer) *pgxmock.Rows {
	return pgxmock.NewRows(offerColumns()).AddRow(
		o.ID, o.SellerID, o.KWhTotal, o.KWhRemaining, o.UnitPrice, o.Status, o.CreatedAt,
	)
}

func TestOfferRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOfferRepo(mock)
	o := newTestOffer()

	mock.ExpectExec("INSERT INTO offers").
		WithArgs(o.ID, o.SellerID, o.KWhTotal, o.KWhRemaining, o.UnitPrice, o.Status, o.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.Create(context.Background(), o)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOfferRepo_GetByIDForUpdate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOfferRepo(mock)
	o := newTestOffer()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .+ FROM offers WHERE id .+ FOR UPDATE").
		WithArgs(o.ID).
		WillReturnRows(offerRow(o))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	result, err := repo.GetByIDForUpdate(context.Background(), tx, o.ID)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, o.ID, result.ID)
	assert.Equal(t, o.KWhRemaining, result.KWhRemaining)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOfferRepo_GetByID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOfferRepo(mock)
	id := uuid.New()

	mock.ExpectQuery("SELECT .+ FROM offers WHERE id").
		WithArgs(id).
		WillReturnRows(pgxmock.NewRows(offerColumns()))

	result, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOfferRepo_ListActive(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOfferRepo(mock)
	cheap := newTestOffer()
	cheap.UnitPrice = domain.MoneyFromEUR(0.15)
	dear := newTestOffer()
	dear.UnitPrice = domain.MoneyFromEUR(0.30)

	rows := pgxmock.NewRows(offerColumns()).
		AddRow(cheap.ID, cheap.SellerID, cheap.KWhTotal, cheap.KWhRemaining, cheap.UnitPrice, cheap.Status, cheap.CreatedAt).
		AddRow(dear.ID, dear.SellerID, dear.KWhTotal, dear.KWhRemaining, dear.UnitPrice, dear.Status, dear.CreatedAt)

	mock.ExpectQuery("SELECT .+ FROM offers WHERE status = 'active'").
		WithArgs(100).
		WillReturnRows(rows)

	result, err := repo.ListActive(context.Background(), 100)
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, cheap.ID, result[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOfferRepo_UpdateFill(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOfferRepo(mock)
	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE offers SET kwh_remaining").
		WithArgs(0.0, domain.OfferStatusClosed, id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.UpdateFill(context.Background(), tx, id, 0, domain.OfferStatusClosed)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
