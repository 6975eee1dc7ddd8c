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

// TradeHandler handles settlement endpoints.
type TradeHandler struct {
	settlementSvc ports.SettlementService
}

// NewTradeHandler creates a new TradeHandler.
func NewTradeHandler(settlementSvc ports.SettlementService) *TradeHandler {
	return &TradeHandler{settlementSvc: settlementSvc}
}

// Accept handles POST /api/v1/trades/accept.
func (h *TradeHandler) Accept(c *gin.Context) {
	var req dto.AcceptOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	buyerID, err := uuid.Parse(req.BuyerID)
	if err != nil {
		response.Error(c, apperror.Validation("invalid buyer id"))
		return
	}
	offerID, err := uuid.Parse(req.OfferID)
	if err != nil {
		response.Error(c, apperror.Validation("invalid offer id"))
		return
	}

	trade, err := h.settlementSvc.Accept(c.Request.Context(), ports.AcceptOfferRequest{
		BuyerID: buyerID,
		OfferID: offerID,
		KWh:     req.KWh,
		TxRef:   req.TxRef,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toTradeResponse(trade))
}

// List handles GET /api/v1/trades?buyer_id=...&limit=...
func (h *TradeHandler) List(c *gin.Context) {
	buyerID, err := uuid.Parse(c.Query("buyer_id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid buyer id"))
		return
	}
	limit := queryInt(c, "limit", 0)

	trades, err := h.settlementSvc.ListTradesForBuyer(c.Request.Context(), buyerID, limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.TradeResponse, 0, len(trades))
	for i := range trades {
		items = append(items, toTradeResponse(&trades[i]))
	}
	response.OK(c, items)
}

// Confirm handles POST /api/v1/trades/:id/confirm.
func (h *TradeHandler) Confirm(c *gin.Context) {
	tradeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid trade id"))
		return
	}

	var req dto.ConfirmTradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	if err := h.settlementSvc.AttachExternalRef(c.Request.Context(), tradeID, req.TxRef); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{"trade_id": tradeID.String(), "tx_ref": req.TxRef})
}

// toTradeResponse converts domain.Trade to DTO.
func toTradeResponse(t *domain.Trade) dto.TradeResponse {
	return dto.TradeResponse{
		ID:        t.ID.String(),
		OfferID:   t.OfferID.String(),
		BuyerID:   t.BuyerID.String(),
		KWh:       t.KWh,
		TotalEUR:  t.Total.EUR(),
		FeeEUR:    t.Fee.EUR(),
		TxRef:     t.TxRef,
		CreatedAt: t.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
