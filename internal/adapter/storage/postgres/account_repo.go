package postgres

import (
	"context"
	"errors"
	"fmt"

	"energy-marketplace/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// AccountRepo implements ports.AccountRepository.
type AccountRepo struct {
	pool Pool
}

// NewAccountRepo creates a new AccountRepo.
func NewAccountRepo(pool Pool) *AccountRepo {
	return &AccountRepo{pool: pool}
}

// Create inserts a new account into the database.
func (r *AccountRepo) Create(ctx context.Context, a *domain.Account) error {
	query := `INSERT INTO accounts (id, email, wallet, role, balance, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.pool.Exec(ctx, query,
		a.ID, a.Email, a.Wallet, a.Role, a.Balance, a.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert account: %w", err)
	}
	return nil
}

// GetByID fetches an account by its UUID (without locking).
func (r *AccountRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Account, error) {
	query := `SELECT id, email, wallet, role, balance, created_at
		FROM accounts WHERE id = $1`

	return r.scanAccount(r.pool.QueryRow(ctx, query, id))
}

// GetByEmail fetches an account by its (lowercased) email.
func (r *AccountRepo) GetByEmail(ctx context.Context, email string) (*domain.Account, error) {
	query := `SELECT id, email, wallet, role, balance, created_at
		FROM accounts WHERE email = $1`

	return r.scanAccount(r.pool.QueryRow(ctx, query, email))
}

// List fetches all accounts, oldest first.
func (r *AccountRepo) List(ctx context.Context) ([]domain.Account, error) {
	query := `SELECT id, email, wallet, role, balance, created_at
		FROM accounts ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	defer rows.Close()

	return collectAccounts(rows)
}

// ListByRole fetches all accounts with the given role.
func (r *AccountRepo) ListByRole(ctx context.Context, role domain.Role) ([]domain.Account, error) {
	query := `SELECT id, email, wallet, role, balance, created_at
		FROM accounts WHERE role = $1 ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query, role)
	if err != nil {
		return nil, fmt.Errorf("list accounts by role: %w", err)
	}
	defer rows.Close()

	return collectAccounts(rows)
}

// GetByIDForUpdate fetches an account by ID with pessimistic locking.
// This MUST be called within a transaction.
func (r *AccountRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Account, error) {
	query := `SELECT id, email, wallet, role, balance, created_at
		FROM accounts WHERE id = $1 FOR UPDATE`

	return r.scanAccount(tx.QueryRow(ctx, query, id))
}

// UpdateBalance sets an account's balance within a transaction.
func (r *AccountRepo) UpdateBalance(ctx context.Context, tx pgx.Tx, id uuid.UUID, balance domain.Money) error {
	query := `UPDATE accounts SET balance = $1 WHERE id = $2`

	tag, err := tx.Exec(ctx, query, balance, id)
	if err != nil {
		return fmt.Errorf("update account balance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("account not found: %s", id)
	}
	return nil
}

// AddToBalance atomically increments a balance and returns the new
// value, or nil,nil if the account does not exist.
func (r *AccountRepo) AddToBalance(ctx context.Context, id uuid.UUID, delta domain.Money) (*domain.Money, error) {
	query := `UPDATE accounts SET balance = balance + $1 WHERE id = $2 RETURNING balance`

	var balance domain.Money
	err := r.pool.QueryRow(ctx, query, delta, id).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("add to balance: %w", err)
	}
	return &balance, nil
}

// scanAccount is a helper to scan a single row into an Account.
func (r *AccountRepo) scanAccount(row pgx.Row) (*domain.Account, error) {
	a := &domain.Account{}
	err := row.Scan(&a.ID, &a.Email, &a.Wallet, &a.Role, &a.Balance, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("scan account: %w", err)
	}
	return a, nil
}

func collectAccounts(rows pgx.Rows) ([]domain.Account, error) {
	var accounts []domain.Account
	for rows.Next() {
		a := domain.Account{}
		if err := rows.Scan(&a.ID, &a.Email, &a.Wallet, &a.Role, &a.Balance, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan account row: %w", err)
		}
		accounts = append(accounts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate account rows: %w", err)
	}
	return accounts, nil
}
