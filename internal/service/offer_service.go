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

// OfferServiceImpl implements ports.OfferService.
type OfferServiceImpl struct {
	offerRepo   ports.OfferRepository
	accountRepo ports.AccountRepository
	log         zerolog.Logger
}

// NewOfferService creates a new OfferServiceImpl.
func NewOfferService(offerRepo ports.OfferRepository, accountRepo ports.AccountRepository, log zerolog.Logger) *OfferServiceImpl {
	return &OfferServiceImpl{
		offerRepo:   offerRepo,
		accountRepo: accountRepo,
		log:         log,
	}
}

// Create lists energy for sale. Only producer/both accounts may sell.
func (s *OfferServiceImpl) Create(ctx context.Context, req ports.CreateOfferRequest) (*domain.Offer, error) {
	seller, err := s.accountRepo.GetByID(ctx, req.SellerID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get seller: %w", err))
	}
	if seller == nil {
		return nil, apperror.ErrNotFound("seller")
	}
	if !seller.Role.CanCreateOffers() {
		return nil, apperror.ErrRoleViolation("only producers or both can create offers")
	}
	if req.KWh <= 0 || req.PriceEUR <= 0 {
		return nil, apperror.ErrInvalidInput("kWh and price must be positive")
	}

	createdAt := time.Now().UTC()
	if req.TS != 0 {
		createdAt = time.Unix(req.TS, 0).UTC()
	}

	kwh := domain.RoundKWh(req.KWh)
	offer := &domain.Offer{
		ID:           uuid.New(),
		SellerID:     seller.ID,
		KWhTotal:     kwh,
		KWhRemaining: kwh,
		UnitPrice:    domain.MoneyFromEUR(req.PriceEUR),
		Status:       domain.OfferStatusActive,
		CreatedAt:    createdAt,
	}
	if err := s.offerRepo.Create(ctx, offer); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create offer: %w", err))
	}

	metrics.IncOfferCreated()
	s.log.Info().
		Str("offer_id", offer.ID.String()).
		Str("seller_id", seller.ID.String()).
		Float64("kwh", offer.KWhTotal).
		Str("price", offer.UnitPrice.String()).
		Msg("offer created")

	return offer, nil
}

// ListActive returns open offers, cheapest first, newest first on ties.
func (s *OfferServiceImpl) ListActive(ctx context.Context, limit int) ([]domain.Offer, error) {
	offers, err := s.offerRepo.ListActive(ctx, limit)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list offers: %w", err))
	}
	return offers, nil
}
