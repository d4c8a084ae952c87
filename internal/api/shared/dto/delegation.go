package dto

import (
	"github.com/feral-file/persona-indexer/internal/store/schema"
)

// AuthorizationResponse represents a grant of function selectors to a consumer
type AuthorizationResponse struct {
	ID           string   `json:"id"`
	Persona      string   `json:"persona"`
	User         string   `json:"user"`
	Consumer     string   `json:"consumer"`
	FnSignatures []string `json:"fn_signatures"`
}

// ImpersonationResponse represents an active impersonation
type ImpersonationResponse struct {
	ID       string `json:"id"`
	Persona  string `json:"persona"`
	User     string `json:"user"`
	Consumer string `json:"consumer"`
}

func MapAuthorizationToDTO(a *schema.Authorization) *AuthorizationResponse {
	return &AuthorizationResponse{
		ID:           a.ID,
		Persona:      a.Persona,
		User:         a.User,
		Consumer:     a.Consumer,
		FnSignatures: keys(a.FnSignatures),
	}
}

func MapImpersonationToDTO(i *schema.Impersonation) *ImpersonationResponse {
	return &ImpersonationResponse{
		ID:       i.ID,
		Persona:  i.Persona,
		User:     i.User,
		Consumer: i.Consumer,
	}
}
