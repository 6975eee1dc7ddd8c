package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"energy-marketplace/internal/core/domain"
	"energy-marketplace/internal/core/ports"
	"energy-marketplace/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// AccountServiceImpl implements ports.AccountService.
type AccountServiceImpl struct {
	accountRepo        ports.AccountRepository
	meterSvc           ports.MeterService
	providerNames      []string
	surplusWindowHours int
	log                zerolog.Logger
}

// NewAccountService creates a new AccountServiceImpl.
func NewAccountService(
	accountRepo ports.AccountRepository,
	meterSvc ports.MeterService,
	providerNames []string,
	surplusWindowHours int,
	log zerolog.Logger,
) *AccountServiceImpl {
	return &AccountServiceImpl{
		accountRepo:        accountRepo,
		meterSvc:           meterSvc,
		providerNames:      providerNames,
		surplusWindowHours: surplusWindowHours,
		log:                log,
	}
}

// Register creates a household account with a zero balance.
func (s *AccountServiceImpl) Register(ctx context.Context, req ports.RegisterAccountRequest) (*domain.Account, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))
	if email == "" {
		return nil, apperror.ErrInvalidInput("email must not be empty")
	}
	if !req.Role.Valid() || req.Role == domain.RoleProvider {
		return nil, apperror.ErrInvalidInput(fmt.Sprintf("unknown role %q", req.Role))
	}

	existing, err := s.accountRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("check email: %w", err))
	}
	if existing != nil {
		return nil, apperror.ErrStateConflict("email already registered")
	}

	account := &domain.Account{
		ID:        uuid.New(),
		Email:     email,
		Wallet:    strings.TrimSpace(req.Wallet),
		Role:      req.Role,
		Balance:   0,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.accountRepo.Create(ctx, account); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create account: %w", err))
	}

	s.log.Info().
		Str("account_id", account.ID.String()).
		Str("role", string(account.Role)).
		Msg("account registered")

	return account, nil
}

// List returns all accounts.
func (s *AccountServiceImpl) List(ctx context.Context) ([]domain.Account, error) {
	accounts, err := s.accountRepo.List(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list accounts: %w", err))
	}
	return accounts, nil
}

// Fund credits a positive amount to the account's balance.
func (s *AccountServiceImpl) Fund(ctx context.Context, id uuid.UUID, amount domain.Money) (domain.Money, error) {
	if amount <= 0 {
		return 0, apperror.ErrInvalidInput("amount must be positive")
	}
	balance, err := s.accountRepo.AddToBalance(ctx, id, amount)
	if err != nil {
		return 0, apperror.InternalError(fmt.Errorf("fund account: %w", err))
	}
	if balance == nil {
		return 0, apperror.ErrNotFound("account")
	}

	s.log.Info().
		Str("account_id", id.String()).
		Str("amount", amount.String()).
		Str("balance", balance.String()).
		Msg("account funded")

	return *balance, nil
}

// GetStatus returns the balance plus the windowed stored surplus.
func (s *AccountServiceImpl) GetStatus(ctx context.Context, id uuid.UUID) (*ports.AccountStatus, error) {
	account, err := s.accountRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get account: %w", err))
	}
	if account == nil {
		return nil, apperror.ErrNotFound("account")
	}

	surplus, err := s.meterSvc.WindowedSurplus(ctx, id, s.surplusWindowHours)
	if err != nil {
		return nil, err
	}

	return &ports.AccountStatus{
		AccountID:        id,
		Balance:          account.Balance,
		StoredSurplusKWh: surplus,
	}, nil
}

// SeedProviders ensures one provider account exists per configured
// provider name. Running it repeatedly creates nothing new.
func (s *AccountServiceImpl) SeedProviders(ctx context.Context) error {
	existing, err := s.accountRepo.ListByRole(ctx, domain.RoleProvider)
	if err != nil {
		return apperror.InternalError(fmt.Errorf("list providers: %w", err))
	}
	seen := make(map[string]bool, len(existing))
	for _, p := range existing {
		seen[p.Email] = true
	}

	for _, name := range s.providerNames {
		if seen[name] {
			continue
		}
		provider := &domain.Account{
			ID:        uuid.New(),
			Email:     name,
			Wallet:    "",
			Role:      domain.RoleProvider,
			Balance:   0,
			CreatedAt: time.Now().UTC(),
		}
		if err := s.accountRepo.Create(ctx, provider); err != nil {
			return apperror.InternalError(fmt.Errorf("seed provider %s: %w", name, err))
		}
		s.log.Info().Str("provider", name).Msg("provider account seeded")
	}
	return nil
}
