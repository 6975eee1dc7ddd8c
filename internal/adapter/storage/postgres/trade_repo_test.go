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

func newTestTrade() *domain.Trade {
	return &domain.Trade{
		ID:        uuid.New(),
		OfferID:   uuid.New(),
		BuyerID:   uuid.New(),
		KWh:       5,
		Total:     domain.MoneyFromEUR(1.00),
		Fee:       domain.MoneyFromEUR(0.10),
		TxRef:     nil,
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}
}

func tradeColumns() []string {
	return []string{"id", "offer_id", "buyer_id", "kwh", "total", "fee", "tx_ref", "created_at"}
}

func TestTradeRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTradeRepo(mock)
	tr := newTestTrade()

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO trades").
		WithArgs(tr.ID, tr.OfferID, tr.BuyerID, tr.KWh, tr.Total, tr.Fee, tr.TxRef, tr.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.Create(context.Background(), tx, tr)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTradeRepo_GetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTradeRepo(mock)
	tr := newTestTrade()

	mock.ExpectQuery("SELECT .+ FROM trades WHERE id").
		WithArgs(tr.ID).
		WillReturnRows(pgxmock.NewRows(tradeColumns()).AddRow(
			tr.ID, tr.OfferID, tr.BuyerID, tr.KWh, tr.Total, tr.Fee, tr.TxRef, tr.CreatedAt,
		))

	result, err := repo.GetByID(context.Background(), tr.ID)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, tr.Total, result.Total)
	assert.Equal(t, tr.Fee, result.Fee)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTradeRepo_ListByBuyer(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTradeRepo(mock)
	tr := newTestTrade()

	mock.ExpectQuery("SELECT .+ FROM trades WHERE buyer_id").
		WithArgs(tr.BuyerID, 50).
		WillReturnRows(pgxmock.NewRows(tradeColumns()).AddRow(
			tr.ID, tr.OfferID, tr.BuyerID, tr.KWh, tr.Total, tr.Fee, tr.TxRef, tr.CreatedAt,
		))

	result, err := repo.ListByBuyer(context.Background(), tr.BuyerID, 50)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, tr.ID, result[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTradeRepo_SetTxRef(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTradeRepo(mock)
	id := uuid.New()

	mock.ExpectExec("UPDATE trades SET tx_ref").
		WithArgs("0xabc", id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	found, err := repo.SetTxRef(context.Background(), id, "0xabc")
	require.NoError(t, err)
	assert.True(t, found)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTradeRepo_SetTxRef_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewTradeRepo(mock)
	id := uuid.New()

	mock.ExpectExec("UPDATE trades SET tx_ref").
		WithArgs("0xabc", id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	found, err := repo.SetTxRef(context.Background(), id, "0xabc")
	require.NoError(t, err)
	assert.False(t, found)
	assert.NoError(t, mock.ExpectationsWereMet())
}
