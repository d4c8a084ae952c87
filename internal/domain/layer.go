package domain

import "fmt"

// Layer identifies which side of the Persona bridge an event or entity belongs to
type Layer string

const (
	// LayerL1 is the chain hosting the Persona registry
	LayerL1 Layer = "l1"
	// LayerL2 is the chain hosting the PersonaMirror
	LayerL2 Layer = "l2"
)

// Valid reports whether l is a known layer
func (l Layer) Valid() bool {
	return l == LayerL1 || l == LayerL2
}

func (l Layer) String() string {
	return string(l)
}

// ParseLayer converts a configuration or URL value into a Layer
func ParseLayer(s string) (Layer, error) {
	l := Layer(s)
	if !l.Valid() {
		return "", fmt.Errorf("invalid layer: %q", s)
	}
	return l, nil
}

// Chain represents the blockchain network identifier using CAIP-2 format
type Chain string

const (
	ChainEthereumMainnet Chain = "eip155:1"
	ChainEthereumSepolia Chain = "eip155:11155111"
	ChainGnosis          Chain = "eip155:100"
	ChainOptimism        Chain = "eip155:10"
)
