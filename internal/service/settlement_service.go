package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"energy-marketplace/internal/core/domain"
	"energy-marketplace/internal/core/ports"
	"energy-marketplace/internal/observability/metrics"
	"energy-marketplace/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

const defaultTradeLimit = 50

// SettlementServiceImpl implements ports.SettlementService with
// pessimistic locking: the offer row and both account rows stay
// exclusively locked from validation through commit, so concurrent
// accepts against one offer serialize and the second observes the
// first's committed state.
type SettlementServiceImpl struct {
	tradeRepo    ports.TradeRepository
	offerRepo    ports.OfferRepository
	accountRepo  ports.AccountRepository
	transactor   ports.DBTransactor
	feeRate      float64
	requireTxRef bool
	log          zerolog.Logger
}

// NewSettlementService creates a new SettlementServiceImpl.
func NewSettlementService(
	tradeRepo ports.TradeRepository,
	offerRepo ports.OfferRepository,
	accountRepo ports.AccountRepository,
	transactor ports.DBTransactor,
	feeRate float64,
	requireTxRef bool,
	log zerolog.Logger,
) *SettlementServiceImpl {
	return &SettlementServiceImpl{
		tradeRepo:    tradeRepo,
		offerRepo:    offerRepo,
		accountRepo:  accountRepo,
		transactor:   transactor,
		feeRate:      feeRate,
		requireTxRef: requireTxRef,
		log:          log,
	}
}

// Accept executes a purchase against one offer as a single atomic unit:
// two balance mutations, the offer fill, and the trade row either all
// commit or none do. Any validation failure aborts with no side effects.
func (s *SettlementServiceImpl) Accept(ctx context.Context, req ports.AcceptOfferRequest) (*domain.Trade, error) {
	start := time.Now()
	trade, err := s.accept(ctx, req)

	result := metrics.ResultSuccess
	if err != nil {
		result = metrics.ResultRejected
		if appErr, ok := err.(*apperror.AppError); ok && appErr.Code == "SYS_001" {
			result = metrics.ResultError
		}
	}
	metrics.ObserveSettlement(result, req.KWh, time.Since(start))
	return trade, err
}

func (s *SettlementServiceImpl) accept(ctx context.Context, req ports.AcceptOfferRequest) (*domain.Trade, error) {
	if req.KWh <= 0 {
		return nil, apperror.ErrInvalidInput("kWh must be positive")
	}
	if s.requireTxRef && (req.TxRef == nil || *req.TxRef == "") {
		return nil, apperror.ErrInvalidInput("external reference is required")
	}
	kwh := domain.RoundKWh(req.KWh)

	// Begin database transaction
	dbTx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer dbTx.Rollback(ctx) //nolint:errcheck

	// Lock & get offer. This serializes concurrent accepts per offer.
	offer, err := s.offerRepo.GetByIDForUpdate(ctx, dbTx, req.OfferID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock offer: %w", err))
	}
	if offer == nil {
		return nil, apperror.ErrNotFound("offer")
	}
	if !offer.Available() {
		return nil, apperror.ErrStateConflict("offer not available")
	}
	if kwh > offer.KWhRemaining+domain.Epsilon {
		return nil, apperror.ErrStateConflict("requested kWh exceeds remaining")
	}

	// Lock buyer and seller in stable order so settlements that share
	// accounts cannot form a lock cycle.
	buyer, seller, err := s.lockParties(ctx, dbTx, req.BuyerID, offer.SellerID)
	if err != nil {
		return nil, err
	}

	total := domain.MulKWh(kwh, offer.UnitPrice)
	if buyer.Balance < total {
		return nil, apperror.ErrInsufficientFunds()
	}

	fee := total.ApplyRate(s.feeRate)
	net := total - fee

	// Persist: move funds buyer -> seller (net of the platform fee).
	if buyer.ID == seller.ID {
		// Self-purchase nets out against a single row.
		if err := s.accountRepo.UpdateBalance(ctx, dbTx, buyer.ID, buyer.Balance-total+net); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("update balance: %w", err))
		}
	} else {
		if err := s.accountRepo.UpdateBalance(ctx, dbTx, buyer.ID, buyer.Balance-total); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("debit buyer: %w", err))
		}
		if err := s.accountRepo.UpdateBalance(ctx, dbTx, seller.ID, seller.Balance+net); err != nil {
			return nil, apperror.InternalError(fmt.Errorf("credit seller: %w", err))
		}
	}

	// Persist: reduce remaining energy, closing the offer when drained.
	offer.Fill(kwh)
	if err := s.offerRepo.UpdateFill(ctx, dbTx, offer.ID, offer.KWhRemaining, offer.Status); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("update offer: %w", err))
	}

	// Persist: create the immutable trade record.
	trade := &domain.Trade{
		ID:        uuid.New(),
		OfferID:   offer.ID,
		BuyerID:   buyer.ID,
		KWh:       kwh,
		Total:     total,
		Fee:       fee,
		TxRef:     req.TxRef,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.tradeRepo.Create(ctx, dbTx, trade); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create trade: %w", err))
	}

	// Commit
	if err := dbTx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("trade_id", trade.ID.String()).
		Str("offer_id", offer.ID.String()).
		Str("buyer_id", buyer.ID.String()).
		Float64("kwh", kwh).
		Str("total", total.String()).
		Str("fee", fee.String()).
		Bool("offer_closed", offer.Status == domain.OfferStatusClosed).
		Msg("trade settled")

	return trade, nil
}

// lockParties row-locks the buyer and seller accounts, always in
// ascending UUID order, and verifies both exist.
func (s *SettlementServiceImpl) lockParties(ctx context.Context, dbTx pgx.Tx, buyerID, sellerID uuid.UUID) (buyer, seller *domain.Account, err error) {
	first, second := buyerID, sellerID
	if bytes.Compare(sellerID[:], buyerID[:]) < 0 {
		first, second = sellerID, buyerID
	}

	a, err := s.accountRepo.GetByIDForUpdate(ctx, dbTx, first)
	if err != nil {
		return nil, nil, apperror.InternalError(fmt.Errorf("lock account: %w", err))
	}
	var b *domain.Account
	if first == second {
		b = a
	} else {
		b, err = s.accountRepo.GetByIDForUpdate(ctx, dbTx, second)
		if err != nil {
			return nil, nil, apperror.InternalError(fmt.Errorf("lock account: %w", err))
		}
	}

	buyer, seller = a, b
	if first != buyerID {
		buyer, seller = b, a
	}
	if buyer == nil {
		return nil, nil, apperror.ErrNotFound("buyer")
	}
	if seller == nil {
		return nil, nil, apperror.ErrNotFound("seller")
	}
	return buyer, seller, nil
}

// ListTradesForBuyer returns the buyer's trades, newest first.
func (s *SettlementServiceImpl) ListTradesForBuyer(ctx context.Context, buyerID uuid.UUID, limit int) ([]domain.Trade, error) {
	if limit <= 0 {
		limit = defaultTradeLimit
	}
	trades, err := s.tradeRepo.ListByBuyer(ctx, buyerID, limit)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list trades: %w", err))
	}
	return trades, nil
}

// AttachExternalRef stamps an opaque audit tag (e.g. a chain tx hash)
// onto an existing trade.
func (s *SettlementServiceImpl) AttachExternalRef(ctx context.Context, tradeID uuid.UUID, ref string) error {
	if ref == "" {
		return apperror.ErrInvalidInput("external reference must not be empty")
	}
	found, err := s.tradeRepo.SetTxRef(ctx, tradeID, ref)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("set tx ref: %w", err))
	}
	if !found {
		return apperror.ErrNotFound("trade")
	}
	return nil
}
