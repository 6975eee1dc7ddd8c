package dto

// RegisterAccountRequest is the request body for account registration.
type RegisterAccountRequest struct {
	Email  string `json:"email" binding:"required,email,max=254"`
	Wallet string `json:"wallet,omitempty" binding:"omitempty,safe_id,max=128"`
	Role   string `json:"role" binding:"required"`
}

// FundRequest is the request body for crediting an account balance.
// Amounts cross the API boundary in EUR.
type FundRequest struct {
	AmountEUR float64 `json:"amount_eur" binding:"required,gt=0"`
}

// RecordSampleRequest is the request body for one meter reading.
type RecordSampleRequest struct {
	AccountID      string  `json:"account_id" binding:"required,uuid"`
	ProductionKWh  float64 `json:"production_kwh" binding:"gte=0"`
	ConsumptionKWh float64 `json:"consumption_kwh" binding:"gte=0"`
	TS             int64   `json:"ts,omitempty"` // Unix seconds; 0 = now
}

// CreateOfferRequest is the request body for listing energy for sale.
type CreateOfferRequest struct {
	SellerID string  `json:"seller_id" binding:"required,uuid"`
	KWh      float64 `json:"kwh" binding:"required,gt=0"`
	PriceEUR float64 `json:"price_eur" binding:"required,gt=0"` // per kWh
}

// AcceptOfferRequest is the request body for purchasing from an offer.
type AcceptOfferRequest struct {
	BuyerID string  `json:"buyer_id" binding:"required,uuid"`
	OfferID string  `json:"offer_id" binding:"required,uuid"`
	KWh     float64 `json:"kwh" binding:"required,gt=0"`
	TxRef   *string `json:"tx_ref,omitempty" binding:"omitempty,max=128"`
}

// ConfirmTradeRequest is the request body for attaching an external
// reference (e.g. a chain transaction hash) to a settled trade.
type ConfirmTradeRequest struct {
	TxRef string `json:"tx_ref" binding:"required,max=128"`
}

// AccountResponse is the response body for account data.
type AccountResponse struct {
	ID         string  `json:"id"`
	Email      string  `json:"email"`
	Wallet     string  `json:"wallet,omitempty"`
	Role       string  `json:"role"`
	BalanceEUR float64 `json:"balance_eur"`
	CreatedAt  string  `json:"created_at"`
}

// BalanceResponse is the response body after funding.
type BalanceResponse struct {
	AccountID  string  `json:"account_id"`
	BalanceEUR float64 `json:"balance_eur"`
}

// AccountStatusResponse is the balance + stored surplus dashboard view.
type AccountStatusResponse struct {
	AccountID        string  `json:"account_id"`
	BalanceEUR       float64 `json:"balance_eur"`
	StoredSurplusKWh float64 `json:"stored_surplus_kwh"`
}

// MeterSampleResponse is the response body for one meter sample.
type MeterSampleResponse struct {
	ID             string  `json:"id,omitempty"`
	AccountID      string  `json:"account_id"`
	ProductionKWh  float64 `json:"production_kwh"`
	ConsumptionKWh float64 `json:"consumption_kwh"`
	TS             int64   `json:"ts"`
}

// PricePointResponse is one hourly provider price point.
type PricePointResponse struct {
	TS       int64   `json:"ts"`
	PriceEUR float64 `json:"price_eur"`
}

// OfferResponse is the response body for a sell offer.
type OfferResponse struct {
	ID           string  `json:"id"`
	SellerID     string  `json:"seller_id"`
	KWhTotal     float64 `json:"kwh_total"`
	KWhRemaining float64 `json:"kwh_remaining"`
	PriceEUR     float64 `json:"price_eur"`
	Status       string  `json:"status"`
	CreatedAt    string  `json:"created_at"`
}

// TradeResponse is the response body for a settled trade.
type TradeResponse struct {
	ID       string  `json:"id"`
	OfferID  string  `json:"offer_id"`
	BuyerID  string  `json:"buyer_id"`
	KWh      float64 `json:"kwh"`
	TotalEUR float64 `json:"total_eur"`
	FeeEUR   float64 `json:"fee_eur"`
	TxRef    *string `json:"tx_ref,omitempty"`
	CreatedAt string  `json:"created_at"`
}

// MarketItemResponse is one entry of the unified market feed. Provider
// entries carry virtual_id/provider_name, household entries carry
// offer_id/seller_id/kwh_remaining.
type MarketItemResponse struct {
	Kind              string   `json:"kind"`
	VirtualID         string   `json:"virtual_id,omitempty"`
	ProviderName      string   `json:"provider_name,omitempty"`
	CurrentMultiplier *float64 `json:"current_multiplier,omitempty"`
	OfferID           *string  `json:"offer_id,omitempty"`
	SellerID          *string  `json:"seller_id,omitempty"`
	KWhRemaining      *float64 `json:"kwh_remaining,omitempty"`
	PriceEUR          float64  `json:"price_eur"`
}
