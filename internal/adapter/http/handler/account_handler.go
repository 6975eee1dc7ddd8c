package handler

import (
	"energy-marketplace/internal/adapter/http/dto"
	"energy-marketplace/internal/core/domain"
	"energy-marketplace/internal/core/ports"
	"energy-marketplace/pkg/apperror"
	"energy-marketplace/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AccountHandler handles account-related endpoints.
type AccountHandler struct {
	accountSvc ports.AccountService
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(accountSvc ports.AccountService) *AccountHandler {
	return &AccountHandler{accountSvc: accountSvc}
}

// Register handles POST /api/v1/accounts.
func (h *AccountHandler) Register(c *gin.Context) {
	var req dto.RegisterAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	account, err := h.accountSvc.Register(c.Request.Context(), ports.RegisterAccountRequest{
		Email:  req.Email,
		Wallet: req.Wallet,
		Role:   domain.Role(req.Role),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toAccountResponse(account))
}

// List handles GET /api/v1/accounts.
func (h *AccountHandler) List(c *gin.Context) {
	accounts, err := h.accountSvc.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.AccountResponse, 0, len(accounts))
	for i := range accounts {
		items = append(items, toAccountResponse(&accounts[i]))
	}
	response.OK(c, items)
}

// Fund handles POST /api/v1/accounts/:id/fund.
func (h *AccountHandler) Fund(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid account id"))
		return
	}

	var req dto.FundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	balance, err := h.accountSvc.Fund(c.Request.Context(), id, domain.MoneyFromEUR(req.AmountEUR))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.BalanceResponse{
		AccountID:  id.String(),
		BalanceEUR: balance.EUR(),
	})
}

// Status handles GET /api/v1/accounts/:id/status.
func (h *AccountHandler) Status(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid account id"))
		return
	}

	status, err := h.accountSvc.GetStatus(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.AccountStatusResponse{
		AccountID:        status.AccountID.String(),
		BalanceEUR:       status.Balance.EUR(),
		StoredSurplusKWh: status.StoredSurplusKWh,
	})
}

// toAccountResponse converts domain.Account to DTO.
func toAccountResponse(a *domain.Account) dto.AccountResponse {
	return dto.AccountResponse{
		ID:         a.ID.String(),
		Email:      a.Email,
		Wallet:     a.Wallet,
		Role:       string(a.Role),
		BalanceEUR: a.Balance.EUR(),
		CreatedAt:  a.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
