package ethereum

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"

	"github.com/feral-file/persona-indexer/internal/domain"
)

// personaABIJSON covers the parts of the L1 Persona registry the indexer reads
const personaABIJSON = `[
	{"anonymous":false,"type":"event","name":"Transfer","inputs":[
		{"indexed":true,"name":"from","type":"address"},
		{"indexed":true,"name":"to","type":"address"},
		{"indexed":true,"name":"id","type":"uint256"}]},
	{"anonymous":false,"type":"event","name":"NewPersonaTokenURIGenerator","inputs":[
		{"indexed":false,"name":"generator","type":"address"}]},
	{"type":"function","name":"tokenURI","stateMutability":"view","inputs":[
		{"name":"id","type":"uint256"}],"outputs":[{"name":"","type":"string"}]},
	{"type":"function","name":"currentPersonaId","stateMutability":"view","inputs":[],
		"outputs":[{"name":"","type":"uint256"}]}
]`

// personaMirrorABIJSON covers the events of the L2 PersonaMirror
const personaMirrorABIJSON = `[
	{"anonymous":false,"type":"event","name":"BridgeChangeOwner","inputs":[
		{"indexed":true,"name":"personaId","type":"uint256"},
		{"indexed":true,"name":"from","type":"address"},
		{"indexed":true,"name":"to","type":"address"},
		{"indexed":false,"name":"nonce","type":"uint256"}]},
	{"anonymous":false,"type":"event","name":"BridgeNuke","inputs":[
		{"indexed":true,"name":"personaId","type":"uint256"},
		{"indexed":false,"name":"nonce","type":"uint256"}]},
	{"anonymous":false,"type":"event","name":"Impersonate","inputs":[
		{"indexed":true,"name":"user","type":"address"},
		{"indexed":true,"name":"consumer","type":"address"},
		{"indexed":true,"name":"personaId","type":"uint256"}]},
	{"anonymous":false,"type":"event","name":"Deimpersonate","inputs":[
		{"indexed":true,"name":"user","type":"address"},
		{"indexed":true,"name":"consumer","type":"address"},
		{"indexed":true,"name":"personaId","type":"uint256"}]},
	{"anonymous":false,"type":"event","name":"Authorize","inputs":[
		{"indexed":true,"name":"personaId","type":"uint256"},
		{"indexed":true,"name":"user","type":"address"},
		{"indexed":true,"name":"consumer","type":"address"},
		{"indexed":false,"name":"fnSignatures","type":"bytes4[]"}]},
	{"anonymous":false,"type":"event","name":"Deauthorize","inputs":[
		{"indexed":true,"name":"personaId","type":"uint256"},
		{"indexed":true,"name":"user","type":"address"},
		{"indexed":true,"name":"consumer","type":"address"}]}
]`

var (
	personaABI       = mustParseABI(personaABIJSON)
	personaMirrorABI = mustParseABI(personaMirrorABIJSON)
)

// eventKinds maps ABI event names to the kind they are normalized to
var eventKinds = map[string]domain.EventKind{
	"Transfer":                    domain.EventKindTransfer,
	"NewPersonaTokenURIGenerator": domain.EventKindMetadataGeneratorChanged,
	"BridgeChangeOwner":           domain.EventKindBridgeChangeOwner,
	"BridgeNuke":                  domain.EventKindBridgeNuke,
	"Impersonate":                 domain.EventKindImpersonate,
	"Deimpersonate":               domain.EventKindDeimpersonate,
	"Authorize":                   domain.EventKindAuthorize,
	"Deauthorize":                 domain.EventKindDeauthorize,
}

func mustParseABI(definition string) abi.ABI {
	parsed, err := abi.JSON(strings.NewReader(definition))
	if err != nil {
		panic(fmt.Sprintf("invalid contract ABI: %v", err))
	}
	return parsed
}

// ContractABI returns the ABI of the contract emitting events on a layer
func ContractABI(layer domain.Layer) (abi.ABI, error) {
	switch layer {
	case domain.LayerL1:
		return personaABI, nil
	case domain.LayerL2:
		return personaMirrorABI, nil
	default:
		return abi.ABI{}, fmt.Errorf("no contract ABI for layer %q", layer)
	}
}
