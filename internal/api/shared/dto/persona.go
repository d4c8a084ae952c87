package dto

import (
	"time"

	"github.com/feral-file/persona-indexer/internal/store/schema"
)

// PersonaResponse represents a persona on one layer
type PersonaResponse struct {
	Layer           string    `json:"layer"`
	ID              string    `json:"id"`
	Owner           string    `json:"owner"`
	URI             *string   `json:"uri,omitempty"`
	Authorizations  []string  `json:"authorizations"`
	Impersonations  []string  `json:"impersonations"`
	LastBridgeNonce *string   `json:"last_bridge_nonce,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// TransferResponse represents an ownership change of a persona
type TransferResponse struct {
	ID              string    `json:"id"`
	Layer           string    `json:"layer"`
	Persona         string    `json:"persona"`
	From            string    `json:"from"`
	To              string    `json:"to"`
	Timestamp       time.Time `json:"timestamp"`
	Block           uint64    `json:"block"`
	TransactionHash string    `json:"transaction_hash"`
}

// MapPersonaToDTO maps a persona row to its response
func MapPersonaToDTO(p *schema.Persona) *PersonaResponse {
	return &PersonaResponse{
		Layer:           p.Layer.String(),
		ID:              p.ID,
		Owner:           p.Owner,
		URI:             p.URI,
		Authorizations:  keys(p.Authorizations),
		Impersonations:  keys(p.Impersonations),
		LastBridgeNonce: p.LastBridgeNonce,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

// MapTransferToDTO maps a transfer row to its response
func MapTransferToDTO(t *schema.Transfer) *TransferResponse {
	return &TransferResponse{
		ID:              t.ID,
		Layer:           t.Layer.String(),
		Persona:         t.Persona,
		From:            t.From,
		To:              t.To,
		Timestamp:       t.Timestamp,
		Block:           t.Block,
		TransactionHash: t.TransactionHash,
	}
}

// keys never returns nil so lists always encode as JSON arrays
func keys(k schema.Keys) []string {
	if k == nil {
		return []string{}
	}
	return []string(k)
}
