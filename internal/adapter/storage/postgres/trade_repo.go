package postgres

import (
	"context"
	"errors"
	"fmt"

	"energy-marketplace/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// TradeRepo implements ports.TradeRepository.
type TradeRepo struct {
	pool Pool
}

// NewTradeRepo creates a new TradeRepo.
func NewTradeRepo(pool Pool) *TradeRepo {
	return &TradeRepo{pool: pool}
}

// Create inserts a new trade within a settlement transaction.
func (r *TradeRepo) Create(ctx context.Context, tx pgx.Tx, t *domain.Trade) error {
	query := `INSERT INTO trades (id, offer_id, buyer_id, kwh, total, fee, tx_ref, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := tx.Exec(ctx, query,
		t.ID, t.OfferID, t.BuyerID, t.KWh, t.Total, t.Fee, t.TxRef, t.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert trade: %w", err)
	}
	return nil
}

// GetByID fetches a trade by UUID.
func (r *TradeRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Trade, error) {
	query := `SELECT id, offer_id, buyer_id, kwh, total, fee, tx_ref, created_at
		FROM trades WHERE id = $1`

	t := &domain.Trade{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.OfferID, &t.BuyerID, &t.KWh, &t.Total, &t.Fee, &t.TxRef, &t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get trade by id: %w", err)
	}
	return t, nil
}

// ListByBuyer fetches a buyer's trades, newest first.
func (r *TradeRepo) ListByBuyer(ctx context.Context, buyerID uuid.UUID, limit int) ([]domain.Trade, error) {
	query := `SELECT id, offer_id, buyer_id, kwh, total, fee, tx_ref, created_at
		FROM trades WHERE buyer_id = $1 ORDER BY created_at DESC LIMIT $2`

	rows, err := r.pool.Query(ctx, query, buyerID, limit)
	if err != nil {
		return nil, fmt.Errorf("list trades: %w", err)
	}
	defer rows.Close()

	var trades []domain.Trade
	for rows.Next() {
		t := domain.Trade{}
		err := rows.Scan(&t.ID, &t.OfferID, &t.BuyerID, &t.KWh, &t.Total, &t.Fee, &t.TxRef, &t.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan trade row: %w", err)
		}
		trades = append(trades, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate trade rows: %w", err)
	}
	return trades, nil
}

// SetTxRef attaches the external reference to an existing trade.
// Returns false if the trade does not exist.
func (r *TradeRepo) SetTxRef(ctx context.Context, id uuid.UUID, ref string) (bool, error) {
	query := `UPDATE trades SET tx_ref = $1 WHERE id = $2`

	tag, err := r.pool.Exec(ctx, query, ref, id)
	if err != nil {
		return false, fmt.Errorf("set trade tx_ref: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
