package integration

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"energy-marketplace/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// --- In-Memory Account Repo ---

type inMemoryAccountRepo struct {
	mu       sync.RWMutex
	accounts map[uuid.UUID]*domain.Account
}

func newInMemoryAccountRepo() *inMemoryAccountRepo {
	return &inMemoryAccountRepo{accounts: make(map[uuid.UUID]*domain.Account)}
}

func (r *inMemoryAccountRepo) Create(ctx context.Context, a *domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.accounts {
		if existing.Email == a.Email {
			return fmt.Errorf("email already exists")
		}
	}
	cp := *a
	r.accounts[a.ID] = &cp
	return nil
}

func (r *inMemoryAccountRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.accounts[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (r *inMemoryAccountRepo) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, a := range r.accounts {
		if a.Email == email {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *inMemoryAccountRepo) List(ctx context.Context) ([]domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Account, 0, len(r.accounts))
	for _, a := range r.accounts {
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *inMemoryAccountRepo) ListByRole(ctx context.Context, role domain.Role) ([]domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.Account
	for _, a := range r.accounts {
		if a.Role == role {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *inMemoryAccountRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Account, error) {
	return r.GetByID(ctx, id)
}

func (r *inMemoryAccountRepo) UpdateBalance(ctx context.Context, tx pgx.Tx, id uuid.UUID, balance domain.Money) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.accounts[id]
	if !ok {
		return fmt.Errorf("account not found")
	}
	a.Balance = balance
	return nil
}

func (r *inMemoryAccountRepo) AddToBalance(ctx context.Context, id uuid.UUID, delta domain.Money) (*domain.Money, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.accounts[id]
	if !ok {
		return nil, nil
	}
	a.Balance += delta
	balance := a.Balance
	return &balance, nil
}

// --- In-Memory Offer Repo ---

type inMemoryOfferRepo struct {
	mu     sync.RWMutex
	offers map[uuid.UUID]*domain.Offer
}

func newInMemoryOfferRepo() *inMemoryOfferRepo {
	return &inMemoryOfferRepo{offers: make(map[uuid.UUID]*domain.Offer)}
}

func (r *inMemoryOfferRepo) Create(ctx context.Context, o *domain.Offer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *o
	r.offers[o.ID] = &cp
	return nil
}

func (r *inMemoryOfferRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Offer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.offers[id]
	if !ok {
		return nil, nil
	}
	cp := *o
	return &cp, nil
}

func (r *inMemoryOfferRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Offer, error) {
	return r.GetByID(ctx, id)
}

func (r *inMemoryOfferRepo) ListActive(ctx context.Context, limit int) ([]domain.Offer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.Offer
	for _, o := range r.offers {
		if o.Status == domain.OfferStatusActive && o.KWhRemaining > 0 {
			out = append(out, *o)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].UnitPrice != out[j].UnitPrice {
			return out[i].UnitPrice < out[j].UnitPrice
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *inMemoryOfferRepo) UpdateFill(ctx context.Context, tx pgx.Tx, id uuid.UUID, remaining float64, status domain.OfferStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	o, ok := r.offers[id]
	if !ok {
		return fmt.Errorf("offer not found")
	}
	o.KWhRemaining = remaining
	o.Status = status
	return nil
}

// --- In-Memory Trade Repo ---

type inMemoryTradeRepo struct {
	mu     sync.RWMutex
	trades map[uuid.UUID]*domain.Trade
	order  []uuid.UUID
}

func newInMemoryTradeRepo() *inMemoryTradeRepo {
	return &inMemoryTradeRepo{trades: make(map[uuid.UUID]*domain.Trade)}
}

func (r *inMemoryTradeRepo) Create(ctx context.Context, tx pgx.Tx, t *domain.Trade) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *t
	r.trades[t.ID] = &cp
	r.order = append(r.order, t.ID)
	return nil
}

func (r *inMemoryTradeRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Trade, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.trades[id]
	if !ok {
		return nil, nil
	}
	cp := *t
	return &cp, nil
}

func (r *inMemoryTradeRepo) ListByBuyer(ctx context.Context, buyerID uuid.UUID, limit int) ([]domain.Trade, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.Trade
	for i := len(r.order) - 1; i >= 0; i-- {
		t := r.trades[r.order[i]]
		if t.BuyerID == buyerID {
			out = append(out, *t)
			if limit > 0 && len(out) >= limit {
				break
			}
		}
	}
	return out, nil
}

func (r *inMemoryTradeRepo) SetTxRef(ctx context.Context, id uuid.UUID, ref string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.trades[id]
	if !ok {
		return false, nil
	}
	t.TxRef = &ref
	return true, nil
}

// --- In-Memory Meter Repo ---

type inMemoryMeterRepo struct {
	mu      sync.RWMutex
	samples map[uuid.UUID][]domain.MeterSample
}

func newInMemoryMeterRepo() *inMemoryMeterRepo {
	return &inMemoryMeterRepo{samples: make(map[uuid.UUID][]domain.MeterSample)}
}

func (r *inMemoryMeterRepo) Create(ctx context.Context, s *domain.MeterSample) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.samples[s.AccountID] = append(r.samples[s.AccountID], *s)
	return nil
}

func (r *inMemoryMeterRepo) Latest(ctx context.Context, accountID uuid.UUID) (*domain.MeterSample, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := r.samples[accountID]
	if len(list) == 0 {
		return nil, nil
	}
	latest := list[0]
	for _, s := range list[1:] {
		if s.TS > latest.TS {
			latest = s
		}
	}
	return &latest, nil
}

func (r *inMemoryMeterRepo) Series(ctx context.Context, accountID uuid.UUID, sinceTS int64) ([]domain.MeterSample, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.MeterSample
	for _, s := range r.samples[accountID] {
		if s.TS >= sinceTS {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].TS < out[j].TS })
	return out, nil
}

// --- In-Memory Transactor (serializing) ---

// inMemoryTransactor hands out one transaction at a time. Holding the
// store mutex for the full Begin..Commit span mimics the row locks the
// real settlement path takes with SELECT ... FOR UPDATE.
type inMemoryTransactor struct {
	mu sync.Mutex
}

func newInMemoryTransactor() *inMemoryTransactor {
	return &inMemoryTransactor{}
}

func (t *inMemoryTransactor) Begin(ctx context.Context) (pgx.Tx, error) {
	t.mu.Lock()
	return &serialTx{owner: t}, nil
}

// serialTx releases the transactor lock exactly once, on whichever of
// Commit or Rollback runs first.
type serialTx struct {
	owner   *inMemoryTransactor
	release sync.Once
}

func (t *serialTx) done() {
	t.release.Do(func() { t.owner.mu.Unlock() })
}

func (t *serialTx) Begin(ctx context.Context) (pgx.Tx, error) { return t, nil }
func (t *serialTx) Commit(ctx context.Context) error          { t.done(); return nil }
func (t *serialTx) Rollback(ctx context.Context) error        { t.done(); return nil }
func (t *serialTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	return 0, nil
}
func (t *serialTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults { return nil }
func (t *serialTx) LargeObjects() pgx.LargeObjects                               { return pgx.LargeObjects{} }
func (t *serialTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	return nil, nil
}
func (t *serialTx) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag(""), nil
}
func (t *serialTx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}
func (t *serialTx) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}
func (t *serialTx) Conn() *pgx.Conn { return nil }
