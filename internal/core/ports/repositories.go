package ports

import (
	"context"

	"energy-marketplace/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

//go:generate mockgen -source=repositories.go -destination=mocks/repositories.go -package=mocks

// AccountRepository defines persistence operations for accounts.
// Methods accepting pgx.Tx are used inside settlement transactions for
// pessimistic locking.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error)
	GetByEmail(ctx context.Context, email string) (*domain.Account, error)
	List(ctx context.Context) ([]domain.Account, error)
	ListByRole(ctx context.Context, role domain.Role) ([]domain.Account, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Account, error)
	UpdateBalance(ctx context.Context, tx pgx.Tx, id uuid.UUID, balance domain.Money) error
	// AddToBalance atomically increments a balance outside a settlement
	// (funding). Returns the new balance, or nil,nil if the account does
	// not exist.
	AddToBalance(ctx context.Context, id uuid.UUID, delta domain.Money) (*domain.Money, error)
}

// OfferRepository defines persistence operations for sell offers.
type OfferRepository interface {
	Create(ctx context.Context, offer *domain.Offer) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Offer, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Offer, error)
	// ListActive returns active offers with remaining energy, cheapest
	// first, most recent first on equal price.
	ListActive(ctx context.Context, limit int) ([]domain.Offer, error)
	// UpdateFill persists remaining quantity and status inside a
	// settlement transaction.
	UpdateFill(ctx context.Context, tx pgx.Tx, id uuid.UUID, remaining float64, status domain.OfferStatus) error
}

// TradeRepository defines persistence operations for trades.
type TradeRepository interface {
	Create(ctx context.Context, tx pgx.Tx, trade *domain.Trade) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Trade, error)
	ListByBuyer(ctx context.Context, buyerID uuid.UUID, limit int) ([]domain.Trade, error)
	// SetTxRef attaches the external reference. Returns false if the
	// trade does not exist.
	SetTxRef(ctx context.Context, id uuid.UUID, ref string) (bool, error)
}

// MeterRepository defines persistence operations for meter samples.
type MeterRepository interface {
	Create(ctx context.Context, sample *domain.MeterSample) error
	// Latest returns the most recent sample, or nil,nil if none exists.
	Latest(ctx context.Context, accountID uuid.UUID) (*domain.MeterSample, error)
	// Series returns samples with ts >= sinceTS, ascending by ts.
	Series(ctx context.Context, accountID uuid.UUID, sinceTS int64) ([]domain.MeterSample, error)
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
