package domain

import "github.com/google/uuid"

// MeterSample is one production/consumption reading for an account.
// Samples are append-only; timestamps ascend per account but need not
// be unique.
type MeterSample struct {
	ID             uuid.UUID `json:"id"`
	AccountID      uuid.UUID `json:"account_id"`
	ProductionKWh  float64   `json:"production_kwh"`
	ConsumptionKWh float64   `json:"consumption_kwh"`
	TS             int64     `json:"ts"` // Unix seconds
}

// Surplus is the sample's positive production excess, floored at zero.
func (s *MeterSample) Surplus() float64 {
	if s.ProductionKWh > s.ConsumptionKWh {
		return RoundKWh(s.ProductionKWh - s.ConsumptionKWh)
	}
	return 0
}
