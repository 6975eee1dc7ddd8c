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

// MarketHandler handles the market feed and offer creation.
type MarketHandler struct {
	marketSvc  ports.MarketService
	offerSvc   ports.OfferService
	pricingSvc ports.PricingService
	// householdLimit caps how many offers one snapshot includes.
	householdLimit int
}

// NewMarketHandler creates a new MarketHandler.
func NewMarketHandler(marketSvc ports.MarketService, offerSvc ports.OfferService, pricingSvc ports.PricingService, householdLimit int) *MarketHandler {
	return &MarketHandler{
		marketSvc:      marketSvc,
		offerSvc:       offerSvc,
		pricingSvc:     pricingSvc,
		householdLimit: householdLimit,
	}
}

// Snapshot handles GET /api/v1/market/offers: the unified feed of
// provider entries and household offers, cheapest first.
func (h *MarketHandler) Snapshot(c *gin.Context) {
	limit := queryInt(c, "limit", h.householdLimit)
	if limit <= 0 || limit > h.householdLimit {
		limit = h.householdLimit
	}

	items, err := h.marketSvc.Snapshot(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := make([]dto.MarketItemResponse, 0, len(items))
	for i := range items {
		resp = append(resp, toMarketItemResponse(&items[i]))
	}
	response.OK(c, resp)
}

// CreateOffer handles POST /api/v1/market/offers.
func (h *MarketHandler) CreateOffer(c *gin.Context) {
	var req dto.CreateOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	sellerID, err := uuid.Parse(req.SellerID)
	if err != nil {
		response.Error(c, apperror.Validation("invalid seller id"))
		return
	}

	offer, err := h.offerSvc.Create(c.Request.Context(), ports.CreateOfferRequest{
		SellerID: sellerID,
		KWh:      req.KWh,
		PriceEUR: req.PriceEUR,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toOfferResponse(offer))
}

// ProviderSeries handles GET /api/v1/market/provider-series?hours=...
func (h *MarketHandler) ProviderSeries(c *gin.Context) {
	hours := queryInt(c, "hours", 24)

	points := h.pricingSvc.Series(hours)
	resp := make([]dto.PricePointResponse, 0, len(points))
	for _, p := range points {
		resp = append(resp, dto.PricePointResponse{
			TS:       p.TS,
			PriceEUR: p.Price.EUR(),
		})
	}
	response.OK(c, resp)
}

// toOfferResponse converts domain.Offer to DTO.
func toOfferResponse(o *domain.Offer) dto.OfferResponse {
	return dto.OfferResponse{
		ID:           o.ID.String(),
		SellerID:     o.SellerID.String(),
		KWhTotal:     o.KWhTotal,
		KWhRemaining: o.KWhRemaining,
		PriceEUR:     o.UnitPrice.EUR(),
		Status:       string(o.Status),
		CreatedAt:    o.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// toMarketItemResponse converts domain.MarketItem to DTO.
func toMarketItemResponse(m *domain.MarketItem) dto.MarketItemResponse {
	resp := dto.MarketItemResponse{
		Kind:              string(m.Kind),
		VirtualID:         m.VirtualID,
		ProviderName:      m.ProviderName,
		CurrentMultiplier: m.CurrentMultiplier,
		KWhRemaining:      m.KWhRemaining,
		PriceEUR:          m.UnitPrice.EUR(),
	}
	if m.OfferID != nil {
		s := m.OfferID.String()
		resp.OfferID = &s
	}
	if m.SellerID != nil {
		s := m.SellerID.String()
		resp.SellerID = &s
	}
	return resp
}
