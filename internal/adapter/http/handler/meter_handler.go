package handler

import (
	"strconv"

	"energy-marketplace/internal/adapter/http/dto"
	"energy-marketplace/internal/core/domain"
	"energy-marketplace/internal/core/ports"
	"energy-marketplace/pkg/apperror"
	"energy-marketplace/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MeterHandler handles meter sample endpoints.
type MeterHandler struct {
	meterSvc ports.MeterService
}

// NewMeterHandler creates a new MeterHandler.
func NewMeterHandler(meterSvc ports.MeterService) *MeterHandler {
	return &MeterHandler{meterSvc: meterSvc}
}

// Record handles POST /api/v1/meter/samples.
func (h *MeterHandler) Record(c *gin.Context) {
	var req dto.RecordSampleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	accountID, err := uuid.Parse(req.AccountID)
	if err != nil {
		response.Error(c, apperror.Validation("invalid account id"))
		return
	}

	sample, err := h.meterSvc.Record(c.Request.Context(), ports.RecordSampleRequest{
		AccountID:      accountID,
		ProductionKWh:  req.ProductionKWh,
		ConsumptionKWh: req.ConsumptionKWh,
		TS:             req.TS,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toMeterSampleResponse(sample))
}

// Latest handles GET /api/v1/meter/latest?account_id=...
func (h *MeterHandler) Latest(c *gin.Context) {
	accountID, err := uuid.Parse(c.Query("account_id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid account id"))
		return
	}

	sample, err := h.meterSvc.Latest(c.Request.Context(), accountID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toMeterSampleResponse(sample))
}

// Series handles GET /api/v1/meter/series?account_id=...&hours=...
func (h *MeterHandler) Series(c *gin.Context) {
	accountID, err := uuid.Parse(c.Query("account_id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid account id"))
		return
	}
	hours := queryInt(c, "hours", 24)

	samples, err := h.meterSvc.Series(c.Request.Context(), accountID, hours)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]dto.MeterSampleResponse, 0, len(samples))
	for i := range samples {
		items = append(items, toMeterSampleResponse(&samples[i]))
	}
	response.OK(c, items)
}

// toMeterSampleResponse converts domain.MeterSample to DTO.
func toMeterSampleResponse(s *domain.MeterSample) dto.MeterSampleResponse {
	resp := dto.MeterSampleResponse{
		AccountID:      s.AccountID.String(),
		ProductionKWh:  s.ProductionKWh,
		ConsumptionKWh: s.ConsumptionKWh,
		TS:             s.TS,
	}
	if s.ID != uuid.Nil {
		resp.ID = s.ID.String()
	}
	return resp
}

// queryInt parses an optional integer query parameter.
func queryInt(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
