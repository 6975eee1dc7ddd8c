package service

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"energy-marketplace/config"
	"energy-marketplace/internal/core/domain"

	"github.com/rs/zerolog"
)

const (
	seriesMinHours = 1
	seriesMaxHours = 72
)

// PricingServiceImpl implements ports.PricingService. It is stateless
// apart from the surge window, which is picked lazily exactly once and
// then fixed for the process lifetime.
type PricingServiceImpl struct {
	cfg config.PricingConfig
	log zerolog.Logger

	surgeOnce sync.Once
	surge     *domain.SurgeWindow
	randInt   func(n int) int
}

// NewPricingService creates a PricingServiceImpl using the default
// random source for surge selection.
func NewPricingService(cfg config.PricingConfig, log zerolog.Logger) *PricingServiceImpl {
	return NewPricingServiceWithRand(cfg, log, rand.Intn)
}

// NewPricingServiceWithRand allows injecting the random source, used by
// tests to pin the surge hour.
func NewPricingServiceWithRand(cfg config.PricingConfig, log zerolog.Logger, randInt func(n int) int) *PricingServiceImpl {
	return &PricingServiceImpl{
		cfg:     cfg,
		log:     log,
		randInt: randInt,
	}
}

// surgeWindow returns the process-wide surge window, picking it on
// first use. Concurrent first calls observe a single choice.
func (s *PricingServiceImpl) surgeWindow() *domain.SurgeWindow {
	s.surgeOnce.Do(func() {
		if !s.cfg.SurgeEnabled {
			return
		}
		span := s.cfg.SurgeHourMax - s.cfg.SurgeHourMin + 1
		if span <= 0 {
			return
		}
		hour := s.cfg.SurgeHourMin + s.randInt(span)
		s.surge = &domain.SurgeWindow{Hour: hour, Multiplier: s.cfg.SurgeMultiplier}
		s.log.Info().
			Int("hour", hour).
			Float64("multiplier", s.cfg.SurgeMultiplier).
			Msg("surge window selected")
	})
	return s.surge
}

// multiplierAt resolves the schedule multiplier for ts, with the surge
// window overriding (not compounding) the schedule on its hour.
func (s *PricingServiceImpl) multiplierAt(ts time.Time) float64 {
	hour := ts.Local().Hour()

	m := 1.0
	for _, band := range s.cfg.Schedule {
		if band.StartHour <= hour && hour < band.EndHour {
			m = band.Multiplier
			break
		}
	}

	if surge := s.surgeWindow(); surge != nil && surge.Hour == hour {
		m = surge.Multiplier
	}
	return m
}

// PriceAt returns the provider price and multiplier for the given
// instant.
func (s *PricingServiceImpl) PriceAt(ts time.Time) (domain.Money, float64) {
	m := s.multiplierAt(ts)
	return domain.MoneyFromEUR(s.cfg.BasePriceEUR * m), m
}

// CurrentPrice returns the instantaneous provider price.
func (s *PricingServiceImpl) CurrentPrice() (domain.Money, float64) {
	return s.PriceAt(time.Now())
}

// Series re-evaluates the schedule+surge logic at each of the past
// hours hour boundaries, oldest first. The surge hour is fixed per
// process, so the series is consistent only within this process
// lifetime; it is not a persisted historical record.
func (s *PricingServiceImpl) Series(hours int) []domain.PricePoint {
	if hours < seriesMinHours {
		hours = seriesMinHours
	}
	if hours > seriesMaxHours {
		hours = seriesMaxHours
	}

	hourStart := time.Now().Truncate(time.Hour)
	points := make([]domain.PricePoint, 0, hours)
	for i := hours - 1; i >= 0; i-- {
		ts := hourStart.Add(-time.Duration(i) * time.Hour)
		price, _ := s.PriceAt(ts)
		points = append(points, domain.PricePoint{TS: ts.Unix(), Price: price})
	}
	return points
}

// ProviderItems builds one virtual market entry per configured
// provider. Provider quantity is unbounded; they never run out.
func (s *PricingServiceImpl) ProviderItems() []domain.MarketItem {
	price, mult := s.CurrentPrice()
	items := make([]domain.MarketItem, 0, len(s.cfg.ProviderNames))
	for _, name := range s.cfg.ProviderNames {
		m := mult
		items = append(items, domain.MarketItem{
			Kind:              domain.MarketItemProvider,
			VirtualID:         fmt.Sprintf("provider-%s", name),
			ProviderName:      name,
			CurrentMultiplier: &m,
			UnitPrice:         price,
		})
	}
	return items
}
