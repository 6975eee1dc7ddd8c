package domain

import (
	"time"

	"github.com/google/uuid"
)

// Role classifies what an account may do on the marketplace.
type Role string

const (
	RoleConsumer Role = "consumer"
	RoleProducer Role = "producer"
	RoleBoth     Role = "both"
	// RoleProvider marks synthetic utility accounts seeded at startup.
	// Providers never move funds; they exist so pricing code has a
	// stable identity to reference.
	RoleProvider Role = "provider"
)

// Valid reports whether the role is one of the known values.
func (r Role) Valid() bool {
	switch r {
	case RoleConsumer, RoleProducer, RoleBoth, RoleProvider:
		return true
	}
	return false
}

// CanCreateOffers reports whether accounts with this role may list
// energy for sale.
func (r Role) CanCreateOffers() bool {
	return r == RoleProducer || r == RoleBoth
}

// Account represents a marketplace participant (a household or a
// seeded virtual provider).
type Account struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Wallet    string    `json:"wallet"` // external wallet address, opaque
	Role      Role      `json:"role"`
	Balance   Money     `json:"balance"` // minor units, never negative
	CreatedAt time.Time `json:"created_at"`
}
