package ports

import (
	"context"
	"time"

	"energy-marketplace/internal/core/domain"

	"github.com/google/uuid"
)

//go:generate mockgen -source=services.go -destination=mocks/services.go -package=mocks

// --- Service Ports (Business Logic) ---

// PricingService computes virtual provider prices from the time-of-day
// schedule and the once-per-process surge window.
type PricingService interface {
	// PriceAt returns the provider price and the multiplier that
	// produced it for the given instant.
	PriceAt(ts time.Time) (domain.Money, float64)
	CurrentPrice() (domain.Money, float64)
	// Series returns hourly price points for the past hours hours,
	// aligned to hour starts, oldest first. hours is clamped to [1, 72].
	Series(hours int) []domain.PricePoint
	// ProviderItems builds the virtual, non-depleting market entries.
	ProviderItems() []domain.MarketItem
}

// RegisterAccountRequest carries registration input.
type RegisterAccountRequest struct {
	Email  string
	Wallet string
	Role   domain.Role
}

// AccountStatus is the balance + stored-surplus dashboard figure.
type AccountStatus struct {
	AccountID        uuid.UUID    `json:"account_id"`
	Balance          domain.Money `json:"balance"`
	StoredSurplusKWh float64      `json:"stored_surplus_kwh"`
}

// AccountService manages accounts, funding and provider seeding.
type AccountService interface {
	Register(ctx context.Context, req RegisterAccountRequest) (*domain.Account, error)
	List(ctx context.Context) ([]domain.Account, error)
	// Fund credits amount to the account and returns the new balance.
	Fund(ctx context.Context, id uuid.UUID, amount domain.Money) (domain.Money, error)
	GetStatus(ctx context.Context, id uuid.UUID) (*AccountStatus, error)
	// SeedProviders idempotently creates one provider account per
	// configured provider name.
	SeedProviders(ctx context.Context) error
}

// RecordSampleRequest carries one meter reading. TS of zero means "now".
type RecordSampleRequest struct {
	AccountID      uuid.UUID
	ProductionKWh  float64
	ConsumptionKWh float64
	TS             int64
}

// MeterService records and queries production/consumption samples.
type MeterService interface {
	Record(ctx context.Context, req RecordSampleRequest) (*domain.MeterSample, error)
	// Latest returns the newest sample, or a zero-valued placeholder if
	// the account has none.
	Latest(ctx context.Context, accountID uuid.UUID) (*domain.MeterSample, error)
	// Series returns the trailing hours hours of samples, ascending.
	Series(ctx context.Context, accountID uuid.UUID, hours int) ([]domain.MeterSample, error)
	// WindowedSurplus sums each sample's positive surplus over the
	// trailing window.
	WindowedSurplus(ctx context.Context, accountID uuid.UUID, hours int) (float64, error)
}

// CreateOfferRequest carries sell-offer input. TS of zero means "now";
// a caller-supplied value exists for deterministic seeding.
type CreateOfferRequest struct {
	SellerID uuid.UUID
	KWh      float64
	PriceEUR float64
	TS       int64
}

// OfferService creates and lists household sell offers.
type OfferService interface {
	Create(ctx context.Context, req CreateOfferRequest) (*domain.Offer, error)
	ListActive(ctx context.Context, limit int) ([]domain.Offer, error)
}

// AcceptOfferRequest carries a purchase against one offer.
type AcceptOfferRequest struct {
	BuyerID uuid.UUID
	OfferID uuid.UUID
	KWh     float64
	TxRef   *string
}

// SettlementService atomically executes purchases. This is the only
// component that mutates balances and offers together.
type SettlementService interface {
	Accept(ctx context.Context, req AcceptOfferRequest) (*domain.Trade, error)
	ListTradesForBuyer(ctx context.Context, buyerID uuid.UUID, limit int) ([]domain.Trade, error)
	AttachExternalRef(ctx context.Context, tradeID uuid.UUID, ref string) error
}

// MarketService composes provider items with household offers into one
// price-sorted feed.
type MarketService interface {
	Snapshot(ctx context.Context, limitHousehold int) ([]domain.MarketItem, error)
}

// MarketCache is a short-TTL byte cache for market snapshots.
type MarketCache interface {
	// Get returns the cached payload or nil if absent.
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}
