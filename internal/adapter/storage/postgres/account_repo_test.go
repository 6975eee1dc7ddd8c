package postgres

import (
	"context"
	"testing"
	"time"

	"energy-marketplace/internal/core/domain"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAccount() *domain.Account {
	return &domain.Account{
		ID:        uuid.New(),
		Email:     "alice@example.com",
		Wallet:    "0xwallet",
		Role:      domain.RoleBoth,
		Balance:   domain.MoneyFromEUR(5.00),
		CreatedAt: time.Now().UTC().Truncate(time.Microsecond),
	}
}

func accountColumns() []string {
	return []string{"id", "email", "wallet", "role", "balance", "created_at"}
}

func accountRow(a *domain.Account) *pgxmock.Rows {
	return pgxmock.NewRows(accountColumns()).AddRow(
		a.ID, a.Email, a.Wallet, a.Role, a.Balance, a.CreatedAt,
	)
}

func TestAccountRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAccountRepo(mock)
	a := newTestAccount()

	mock.ExpectExec("INSERT INTO accounts").
		WithArgs(a.ID, a.Email, a.Wallet, a.Role, a.Balance, a.CreatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.Create(context.Background(), a)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepo_GetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAccountRepo(mock)
	a := newTestAccount()

	mock.ExpectQuery("SELECT .+ FROM accounts WHERE id").
		WithArgs(a.ID).
		WillReturnRows(accountRow(a))

	result, err := repo.GetByID(context.Background(), a.ID)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, a.ID, result.ID)
	assert.Equal(t, a.Balance, result.Balance)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepo_GetByEmail_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAccountRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM accounts WHERE email").
		WithArgs("nobody@example.com").
		WillReturnRows(pgxmock.NewRows(accountColumns()))

	result, err := repo.GetByEmail(context.Background(), "nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepo_GetByIDForUpdate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAccountRepo(mock)
	a := newTestAccount()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT .+ FROM accounts WHERE id .+ FOR UPDATE").
		WithArgs(a.ID).
		WillReturnRows(accountRow(a))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	result, err := repo.GetByIDForUpdate(context.Background(), tx, a.ID)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, a.ID, result.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepo_ListByRole(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAccountRepo(mock)
	a := newTestAccount()
	a.Role = domain.RoleProvider

	mock.ExpectQuery("SELECT .+ FROM accounts WHERE role").
		WithArgs(domain.RoleProvider).
		WillReturnRows(accountRow(a))

	result, err := repo.ListByRole(context.Background(), domain.RoleProvider)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, a.Email, result[0].Email)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepo_UpdateBalance_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAccountRepo(mock)
	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE accounts SET balance").
		WithArgs(domain.MoneyFromEUR(1.00), id).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	tx, err := mock.Begin(context.Background())
	require.NoError(t, err)

	err = repo.UpdateBalance(context.Background(), tx, id, domain.MoneyFromEUR(1.00))
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepo_AddToBalance(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAccountRepo(mock)
	id := uuid.New()

	mock.ExpectQuery("UPDATE accounts SET balance = balance").
		WithArgs(domain.MoneyFromEUR(5.00), id).
		WillReturnRows(pgxmock.NewRows([]string{"balance"}).AddRow(domain.MoneyFromEUR(9.00)))

	balance, err := repo.AddToBalance(context.Background(), id, domain.MoneyFromEUR(5.00))
	require.NoError(t, err)
	require.NotNil(t, balance)
	assert.Equal(t, domain.MoneyFromEUR(9.00), *balance)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAccountRepo_AddToBalance_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAccountRepo(mock)
	id := uuid.New()

	mock.ExpectQuery("UPDATE accounts SET balance = balance").
		WithArgs(domain.MoneyFromEUR(5.00), id).
		WillReturnRows(pgxmock.NewRows([]string{"balance"}))

	balance, err := repo.AddToBalance(context.Background(), id, domain.MoneyFromEUR(5.00))
	require.NoError(t, err)
	assert.Nil(t, balance)
	assert.NoError(t, mock.ExpectationsWereMet())
}
