package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"energy-marketplace/internal/core/domain"
	"energy-marketplace/internal/core/ports"
	"energy-marketplace/internal/observability/metrics"
	"energy-marketplace/pkg/apperror"

	"github.com/rs/zerolog"
)

// MarketServiceImpl implements ports.MarketService: one price-sorted
// feed combining virtual provider entries with stored household offers.
type MarketServiceImpl struct {
	pricingSvc     ports.PricingService
	offerRepo      ports.OfferRepository
	cache          ports.MarketCache // nil disables caching
	cacheTTL       time.Duration
	virtualPricing bool
	log            zerolog.Logger
}

// NewMarketService creates a new MarketServiceImpl. cache may be nil.
func NewMarketService(
	pricingSvc ports.PricingService,
	offerRepo ports.OfferRepository,
	cache ports.MarketCache,
	cacheTTL time.Duration,
	virtualPricing bool,
	log zerolog.Logger,
) *MarketServiceImpl {
	return &MarketServiceImpl{
		pricingSvc:     pricingSvc,
		offerRepo:      offerRepo,
		cache:          cache,
		cacheTTL:       cacheTTL,
		virtualPricing: virtualPricing,
		log:            log,
	}
}

// Snapshot returns the unified market feed, cheapest entries first.
// Results may be served from a short-TTL cache; staleness is bounded by
// the configured TTL.
func (s *MarketServiceImpl) Snapshot(ctx context.Context, limitHousehold int) ([]domain.MarketItem, error) {
	cacheKey := fmt.Sprintf("limit=%d", limitHousehold)

	if s.cacheEnabled() {
		cached, err := s.cache.Get(ctx, cacheKey)
		if err != nil {
			s.log.Warn().Err(err).Msg("snapshot cache read failed, rebuilding")
		}
		if cached != nil {
			var items []domain.MarketItem
			if err := json.Unmarshal(cached, &items); err == nil {
				metrics.IncSnapshotCache("hit")
				return items, nil
			} else {
				s.log.Warn().Err(err).Msg("discarding undecodable cached snapshot")
			}
		}
		metrics.IncSnapshotCache("miss")
	}

	items, err := s.build(ctx, limitHousehold)
	if err != nil {
		return nil, err
	}

	if s.cacheEnabled() {
		if payload, err := json.Marshal(items); err == nil {
			if err := s.cache.Set(ctx, cacheKey, payload, s.cacheTTL); err != nil {
				s.log.Warn().Err(err).Msg("snapshot cache write failed")
			}
		}
	}
	return items, nil
}

func (s *MarketServiceImpl) cacheEnabled() bool {
	return s.cache != nil && s.cacheTTL > 0
}

func (s *MarketServiceImpl) build(ctx context.Context, limitHousehold int) ([]domain.MarketItem, error) {
	var items []domain.MarketItem

	if s.virtualPricing {
		items = append(items, s.pricingSvc.ProviderItems()...)
	}

	offers, err := s.offerRepo.ListActive(ctx, limitHousehold)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list offers: %w", err))
	}
	for i := range offers {
		o := offers[i]
		remaining := o.KWhRemaining
		items = append(items, domain.MarketItem{
			Kind:         domain.MarketItemHousehold,
			OfferID:      &o.ID,
			SellerID:     &o.SellerID,
			KWhRemaining: &remaining,
			UnitPrice:    o.UnitPrice,
		})
	}

	// Stable sort keeps each source's own ordering on equal prices.
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].UnitPrice < items[j].UnitPrice
	})
	return items, nil
}
