package service

import (
	"context"
	"fmt"
	"time"

	"energy-marketplace/internal/core/domain"
	"energy-marketplace/internal/core/ports"
	"energy-marketplace/internal/observability/metrics"
	"energy-marketplace/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// MeterServiceImpl implements ports.MeterService. Samples are
// append-only; no mutual exclusion is needed beyond the store's own
// write ordering.
type MeterServiceImpl struct {
	meterRepo   ports.MeterRepository
	accountRepo ports.AccountRepository
	log         zerolog.Logger
}

// NewMeterService creates a new MeterServiceImpl.
func NewMeterService(meterRepo ports.MeterRepository, accountRepo ports.AccountRepository, log zerolog.Logger) *MeterServiceImpl {
	return &MeterServiceImpl{
		meterRepo:   meterRepo,
		accountRepo: accountRepo,
		log:         log,
	}
}

// Record persists one immutable production/consumption sample.
func (s *MeterServiceImpl) Record(ctx context.Context, req ports.RecordSampleRequest) (*domain.MeterSample, error) {
	if req.ProductionKWh < 0 || req.ConsumptionKWh < 0 {
		metrics.IncSample(metrics.ResultRejected)
		return nil, apperror.ErrInvalidInput("energy values must be non-negative")
	}

	account, err := s.accountRepo.GetByID(ctx, req.AccountID)
	if err != nil {
		metrics.IncSample(metrics.ResultError)
		return nil, apperror.InternalError(fmt.Errorf("get account: %w", err))
	}
	if account == nil {
		metrics.IncSample(metrics.ResultRejected)
		return nil, apperror.ErrNotFound("account")
	}

	ts := req.TS
	if ts == 0 {
		ts = time.Now().Unix()
	}
	sample := &domain.MeterSample{
		ID:             uuid.New(),
		AccountID:      req.AccountID,
		ProductionKWh:  domain.RoundKWh(req.ProductionKWh),
		ConsumptionKWh: domain.RoundKWh(req.ConsumptionKWh),
		TS:             ts,
	}
	if err := s.meterRepo.Create(ctx, sample); err != nil {
		metrics.IncSample(metrics.ResultError)
		return nil, apperror.InternalError(fmt.Errorf("create sample: %w", err))
	}

	metrics.IncSample(metrics.ResultSuccess)
	return sample, nil
}

// Latest returns the newest sample, or a zero-valued placeholder when
// the account has never reported.
func (s *MeterServiceImpl) Latest(ctx context.Context, accountID uuid.UUID) (*domain.MeterSample, error) {
	sample, err := s.meterRepo.Latest(ctx, accountID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("latest sample: %w", err))
	}
	if sample == nil {
		return &domain.MeterSample{AccountID: accountID}, nil
	}
	return sample, nil
}

// Series returns the trailing window of samples, ascending by ts.
func (s *MeterServiceImpl) Series(ctx context.Context, accountID uuid.UUID, hours int) ([]domain.MeterSample, error) {
	hours = clampHours(hours)
	since := time.Now().Add(-time.Duration(hours) * time.Hour).Unix()
	samples, err := s.meterRepo.Series(ctx, accountID, since)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("sample series: %w", err))
	}
	return samples, nil
}

// WindowedSurplus sums max(0, production-consumption) per sample over
// the trailing window. Each sample's deficit is floored independently,
// so the figure never decreases as the window grows.
func (s *MeterServiceImpl) WindowedSurplus(ctx context.Context, accountID uuid.UUID, hours int) (float64, error) {
	samples, err := s.Series(ctx, accountID, hours)
	if err != nil {
		return 0, err
	}
	total := 0.0
	for i := range samples {
		total += samples[i].Surplus()
	}
	return domain.RoundKWh(total), nil
}

func clampHours(hours int) int {
	if hours < seriesMinHours {
		return seriesMinHours
	}
	if hours > seriesMaxHours {
		return seriesMaxHours
	}
	return hours
}
