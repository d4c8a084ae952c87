package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPersonaEvent_Valid(t *testing.T) {
	const (
		user     = "0x1111111111111111111111111111111111111111"
		consumer = "0x2222222222222222222222222222222222222222"
	)

	tests := []struct {
		name  string
		event PersonaEvent
		valid bool
	}{
		{
			name: "valid mint",
			event: PersonaEvent{
				Layer: LayerL1, Kind: EventKindTransfer, TxHash: "0xabc",
				PersonaID: "5", From: ETHEREUM_ZERO_ADDRESS, To: user,
			},
			valid: true,
		},
		{
			name: "transfer on wrong layer",
			event: PersonaEvent{
				Layer: LayerL2, Kind: EventKindTransfer, TxHash: "0xabc",
				PersonaID: "5", From: ETHEREUM_ZERO_ADDRESS, To: user,
			},
			valid: false,
		},
		{
			name: "transfer with non decimal persona id",
			event: PersonaEvent{
				Layer: LayerL1, Kind: EventKindTransfer, TxHash: "0xabc",
				PersonaID: "0x5", From: ETHEREUM_ZERO_ADDRESS, To: user,
			},
			valid: false,
		},
		{
			name:  "missing tx hash",
			event: PersonaEvent{Layer: LayerL2, Kind: EventKindBridgeNuke, PersonaID: "1"},
			valid: false,
		},
		{
			name:  "valid nuke",
			event: PersonaEvent{Layer: LayerL2, Kind: EventKindBridgeNuke, TxHash: "0xabc", PersonaID: "1", Nonce: "3"},
			valid: true,
		},
		{
			name: "authorize without consumer",
			event: PersonaEvent{
				Layer: LayerL2, Kind: EventKindAuthorize, TxHash: "0xabc",
				PersonaID: "1", User: user,
			},
			valid: false,
		},
		{
			name: "valid authorize without signatures",
			event: PersonaEvent{
				Layer: LayerL2, Kind: EventKindAuthorize, TxHash: "0xabc",
				PersonaID: "1", User: user, Consumer: consumer,
			},
			valid: true,
		},
		{
			name:  "valid generator change",
			event: PersonaEvent{Layer: LayerL1, Kind: EventKindMetadataGeneratorChanged, TxHash: "0xabc", Generator: consumer},
			valid: true,
		},
		{
			name:  "unknown kind",
			event: PersonaEvent{Layer: LayerL1, Kind: "approval", TxHash: "0xabc"},
			valid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.event.Valid())
		})
	}
}

func TestEventKind_Layer(t *testing.T) {
	assert.Equal(t, LayerL1, EventKindTransfer.Layer())
	assert.Equal(t, LayerL1, EventKindMetadataGeneratorChanged.Layer())
	assert.Equal(t, LayerL2, EventKindBridgeChangeOwner.Layer())
	assert.Equal(t, LayerL2, EventKindDeauthorize.Layer())
	assert.Equal(t, Layer(""), EventKind("unknown").Layer())
}

func TestIsFatal(t *testing.T) {
	assert.False(t, IsFatal(nil))
	assert.False(t, IsFatal(ErrInvalidEvent))
	assert.True(t, IsFatal(ErrPersonaNotFound))
	assert.True(t, IsFatal(ErrContractReadFailed))
}
