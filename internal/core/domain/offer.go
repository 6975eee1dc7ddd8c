package domain

import (
	"time"

	"github.com/google/uuid"
)

// OfferStatus is the lifecycle state of a sell offer.
type OfferStatus string

const (
	OfferStatusActive OfferStatus = "active"
	OfferStatusClosed OfferStatus = "closed"
)

// Offer is a household sell listing. Offers are partially fillable and
// are never deleted, only closed once fully sold.
type Offer struct {
	ID           uuid.UUID   `json:"id"`
	SellerID     uuid.UUID   `json:"seller_id"`
	KWhTotal     float64     `json:"kwh_total"`
	KWhRemaining float64     `json:"kwh_remaining"`
	UnitPrice    Money       `json:"unit_price"` // minor units per kWh
	Status       OfferStatus `json:"status"`
	CreatedAt    time.Time   `json:"created_at"`
}

// Available reports whether the offer can still be bought from.
func (o *Offer) Available() bool {
	return o.Status == OfferStatusActive && o.KWhRemaining > 0
}

// Fill reduces the remaining quantity by kwh, snapping to exactly zero
// (and closing the offer) when the remainder falls under Epsilon.
// Callers must have validated kwh <= KWhRemaining+Epsilon beforehand.
func (o *Offer) Fill(kwh float64) {
	rem := RoundKWh(o.KWhRemaining - kwh)
	if rem <= Epsilon {
		rem = 0
		o.Status = OfferStatusClosed
	}
	o.KWhRemaining = rem
}
