package postgres

import (
	"context"
	"errors"
	"fmt"

	"energy-marketplace/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// OfferRepo implements ports.OfferRepository.
type OfferRepo struct {
	pool Pool
}

// NewOfferRepo creates a new OfferRepo.
func NewOfferRepo(pool Pool) *OfferRepo {
	return &OfferRepo{pool: pool}
}

// Create inserts a new sell offer into the database.
func (r *OfferRepo) Create(ctx context.Context, o *domain.Offer) error {
	query := `INSERT INTO offers (id, seller_id, kwh_total, kwh_remaining, unit_price, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.pool.Exec(ctx, query,
		o.ID, o.SellerID, o.KWhTotal, o.KWhRemaining, o.UnitPrice, o.Status, o.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert offer: %w", err)
	}
	return nil
}

// GetByID fetches an offer by its UUID (without locking).
func (r *OfferRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Offer, error) {
	query := `SELECT id, seller_id, kwh_total, kwh_remaining, unit_price, status, created_at
		FROM offers WHERE id = $1`

	return r.scanOffer(r.pool.QueryRow(ctx, query, id))
}

// GetByIDForUpdate fetches an offer by ID with pessimistic locking.
// This MUST be called within a transaction; it serializes concurrent
// settlements against the same offer.
func (r *OfferRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Offer, error) {
	query := `SELECT id, seller_id, kwh_total, kwh_remaining, unit_price, status, created_at
		FROM offers WHERE id = $1 FOR UPDATE`

	return r.scanOffer(tx.QueryRow(ctx, query, id))
}

// ListActive fetches open offers with remaining energy, cheapest first,
// newest first on equal price.
func (r *OfferRepo) ListActive(ctx context.Context, limit int) ([]domain.Offer, error) {
	query := `SELECT id, seller_id, kwh_total, kwh_remaining, unit_price, status, created_at
		FROM offers WHERE status = 'active' AND kwh_remaining > 0
		ORDER BY unit_price ASC, created_at DESC LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list active offers: %w", err)
	}
	defer rows.Close()

	var offers []domain.Offer
	for rows.Next() {
		o := domain.Offer{}
		err := rows.Scan(&o.ID, &o.SellerID, &o.KWhTotal, &o.KWhRemaining, &o.UnitPrice, &o.Status, &o.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan offer row: %w", err)
		}
		offers = append(offers, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate offer rows: %w", err)
	}
	return offers, nil
}

// UpdateFill persists remaining quantity and status within a
// settlement transaction.
func (r *OfferRepo) UpdateFill(ctx context.Context, tx pgx.Tx, id uuid.UUID, remaining float64, status domain.OfferStatus) error {
	query := `UPDATE offers SET kwh_remaining = $1, status = $2 WHERE id = $3`

	tag, err := tx.Exec(ctx, query, remaining, status, id)
	if err != nil {
		return fmt.Errorf("update offer fill: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("offer not found: %s", id)
	}
	return nil
}

// scanOffer is a helper to scan a single row into an Offer.
func (r *OfferRepo) scanOffer(row pgx.Row) (*domain.Offer, error) {
	o := &domain.Offer{}
	err := row.Scan(&o.ID, &o.SellerID, &o.KWhTotal, &o.KWhRemaining, &o.UnitPrice, &o.Status, &o.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan offer: %w", err)
	}
	return o, nil
}
