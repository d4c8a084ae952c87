package domain

import (
	"math/big"
	"time"
)

// EventKind represents the kind of Persona or PersonaMirror event
type EventKind string

const (
	// L1 Persona registry events
	EventKindTransfer                 EventKind = "transfer"
	EventKindMetadataGeneratorChanged EventKind = "metadata_generator_changed"

	// L2 PersonaMirror events
	EventKindBridgeChangeOwner EventKind = "bridge_change_owner"
	EventKindBridgeNuke        EventKind = "bridge_nuke"
	EventKindImpersonate       EventKind = "impersonate"
	EventKindDeimpersonate     EventKind = "deimpersonate"
	EventKindAuthorize         EventKind = "authorize"
	EventKindDeauthorize       EventKind = "deauthorize"
)

// kindLayers maps every event kind to the layer that emits it
var kindLayers = map[EventKind]Layer{
	EventKindTransfer:                 LayerL1,
	EventKindMetadataGeneratorChanged: LayerL1,
	EventKindBridgeChangeOwner:        LayerL2,
	EventKindBridgeNuke:               LayerL2,
	EventKindImpersonate:              LayerL2,
	EventKindDeimpersonate:            LayerL2,
	EventKindAuthorize:                LayerL2,
	EventKindDeauthorize:              LayerL2,
}

// Layer returns the layer emitting events of this kind, or "" for unknown kinds
func (k EventKind) Layer() Layer {
	return kindLayers[k]
}

// PersonaEvent represents a decoded Persona/PersonaMirror log.
// This is the standard format published to NATS and consumed by the projector.
type PersonaEvent struct {
	Layer           Layer     `json:"layer"`                // l1 or l2
	Kind            EventKind `json:"kind"`                 // event kind, see EventKind
	Chain           Chain     `json:"chain"`                // e.g., "eip155:1"
	ContractAddress string    `json:"contract_address"`     // emitting contract
	TxHash          string    `json:"tx_hash"`              // transaction hash
	LogIndex        uint      `json:"log_index"`            // log index in the block
	BlockNumber     uint64    `json:"block_number"`         // block number
	BlockHash       *string   `json:"block_hash,omitempty"` // block hash (optional)
	Timestamp       time.Time `json:"timestamp"`            // block timestamp

	// Kind specific parameters. Addresses are lower-case hex, ids are decimal strings.
	PersonaID    string   `json:"persona_id,omitempty"`
	From         string   `json:"from,omitempty"`
	To           string   `json:"to,omitempty"`
	User         string   `json:"user,omitempty"`
	Consumer     string   `json:"consumer,omitempty"`
	FnSignatures []string `json:"fn_signatures,omitempty"`
	Nonce        string   `json:"nonce,omitempty"`
	Generator    string   `json:"generator,omitempty"`
}

// ID returns the transaction-derived identifier of the event
func (e *PersonaEvent) ID() string {
	return EventID(e.TxHash, e.LogIndex)
}

// Valid checks that the event carries every parameter its kind requires
func (e *PersonaEvent) Valid() bool {
	if e.TxHash == "" {
		return false
	}

	layer := e.Kind.Layer()
	if layer == "" || layer != e.Layer {
		return false
	}

	switch e.Kind {
	case EventKindTransfer, EventKindBridgeChangeOwner:
		return validPersonaID(e.PersonaID) && e.From != "" && e.To != ""
	case EventKindMetadataGeneratorChanged:
		return e.Generator != ""
	case EventKindBridgeNuke:
		return validPersonaID(e.PersonaID)
	case EventKindImpersonate, EventKindDeimpersonate, EventKindAuthorize, EventKindDeauthorize:
		return validPersonaID(e.PersonaID) && e.User != "" && e.Consumer != ""
	}

	return false
}

func validPersonaID(id string) bool {
	if id == "" {
		return false
	}
	n, ok := new(big.Int).SetString(id, 10)
	return ok && n.Sign() >= 0
}
