package domain

import "github.com/google/uuid"

// MarketItemKind distinguishes virtual provider entries from household
// offers in the unified marketplace feed.
type MarketItemKind string

const (
	MarketItemProvider  MarketItemKind = "provider"
	MarketItemHousehold MarketItemKind = "household"
)

// MarketItem is one row of the unified marketplace feed. Provider items
// are computed per request and carry no offer; household items mirror a
// stored offer. A nil KWhRemaining means "unbounded" (providers never
// run out).
type MarketItem struct {
	Kind              MarketItemKind `json:"kind"`
	VirtualID         string         `json:"virtual_id,omitempty"`
	ProviderName      string         `json:"provider_name,omitempty"`
	CurrentMultiplier *float64       `json:"current_multiplier,omitempty"`
	OfferID           *uuid.UUID     `json:"offer_id,omitempty"`
	SellerID          *uuid.UUID     `json:"seller_id,omitempty"`
	KWhRemaining      *float64       `json:"kwh_remaining,omitempty"`
	UnitPrice         Money          `json:"unit_price"`
}

// PricePoint is one hourly sample of the provider price series.
type PricePoint struct {
	TS    int64 `json:"ts"` // start of hour, Unix seconds
	Price Money `json:"price"`
}

// SurgeWindow is the single hour-of-day whose multiplier overrides the
// schedule. Chosen at most once per process lifetime, then fixed.
type SurgeWindow struct {
	Hour       int     `json:"hour"` // 0..23
	Multiplier float64 `json:"multiplier"`
}
