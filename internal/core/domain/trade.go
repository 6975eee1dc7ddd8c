package domain

import (
	"time"

	"github.com/google/uuid"
)

// Trade is the immutable record of one settled purchase. Only the
// external reference may be attached after creation, by the optional
// out-of-band confirmation step.
type Trade struct {
	ID        uuid.UUID `json:"id"`
	OfferID   uuid.UUID `json:"offer_id"`
	BuyerID   uuid.UUID `json:"buyer_id"`
	KWh       float64   `json:"kwh"`
	Total     Money     `json:"total"` // amount the buyer paid
	Fee       Money     `json:"fee"`   // platform cut, not credited to any account
	TxRef     *string   `json:"tx_ref,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
