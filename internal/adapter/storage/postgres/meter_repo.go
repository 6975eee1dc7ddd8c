package postgres

import (
	"context"
	"errors"
	"fmt"

	"energy-marketplace/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// MeterRepo implements ports.MeterRepository.
type MeterRepo struct {
	pool Pool
}

// NewMeterRepo creates a new MeterRepo.
func NewMeterRepo(pool Pool) *MeterRepo {
	return &MeterRepo{pool: pool}
}

// Create inserts a meter sample. Samples are append-only.
func (r *MeterRepo) Create(ctx context.Context, s *domain.MeterSample) error {
	query := `INSERT INTO meter_samples (id, account_id, production_kwh, consumption_kwh, ts)
		VALUES ($1, $2, $3, $4, $5)`

	_, err := r.pool.Exec(ctx, query,
		s.ID, s.AccountID, s.ProductionKWh, s.ConsumptionKWh, s.TS,
	)
	if err != nil {
		return fmt.Errorf("insert meter sample: %w", err)
	}
	return nil
}

// Latest fetches the most recent sample, or nil,nil if none exists.
func (r *MeterRepo) Latest(ctx context.Context, accountID uuid.UUID) (*domain.MeterSample, error) {
	query := `SELECT id, account_id, production_kwh, consumption_kwh, ts
		FROM meter_samples WHERE account_id = $1 ORDER BY ts DESC LIMIT 1`

	s := &domain.MeterSample{}
	err := r.pool.QueryRow(ctx, query, accountID).Scan(
		&s.ID, &s.AccountID, &s.ProductionKWh, &s.ConsumptionKWh, &s.TS,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("latest meter sample: %w", err)
	}
	return s, nil
}

// Series fetches samples with ts >= sinceTS, ascending by ts.
func (r *MeterRepo) Series(ctx context.Context, accountID uuid.UUID, sinceTS int64) ([]domain.MeterSample, error) {
	query := `SELECT id, account_id, production_kwh, consumption_kwh, ts
		FROM meter_samples WHERE account_id = $1 AND ts >= $2 ORDER BY ts ASC`

	rows, err := r.pool.Query(ctx, query, accountID, sinceTS)
	if err != nil {
		return nil, fmt.Errorf("meter sample series: %w", err)
	}
	defer rows.Close()

	var samples []domain.MeterSample
	for rows.Next() {
		s := domain.MeterSample{}
		err := rows.Scan(&s.ID, &s.AccountID, &s.ProductionKWh, &s.ConsumptionKWh, &s.TS)
		if err != nil {
			return nil, fmt.Errorf("scan meter sample row: %w", err)
		}
		samples = append(samples, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate meter sample rows: %w", err)
	}
	return samples, nil
}
