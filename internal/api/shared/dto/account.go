package dto

import (
	"time"

	"github.com/feral-file/persona-indexer/internal/store/schema"
)

// OwnerResponse represents an L1 persona holder
type OwnerResponse struct {
	Address   string    `json:"address"`
	Balance   uint64    `json:"balance"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserResponse represents an L2 persona holder with its delegations
type UserResponse struct {
	Address        string    `json:"address"`
	Balance        uint64    `json:"balance"`
	Authorizations []string  `json:"authorizations"`
	Impersonations []string  `json:"impersonations"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// MapOwnerToDTO maps an owner row to its response
func MapOwnerToDTO(o *schema.Owner) *OwnerResponse {
	return &OwnerResponse{
		Address:   o.Address,
		Balance:   o.Balance,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}

// MapUserToDTO maps a user row to its response
func MapUserToDTO(u *schema.User) *UserResponse {
	return &UserResponse{
		Address:        u.Address,
		Balance:        u.Balance,
		Authorizations: keys(u.Authorizations),
		Impersonations: keys(u.Impersonations),
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}
