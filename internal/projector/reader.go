package projector

import (
	"context"
	"math/big"
)

// PersonaReader is the read-only contract port used by the L1 projector.
// Every read is pinned at the block of the triggering event.
//
//go:generate mockgen -source=reader.go -destination=../mocks/persona_reader.go -package=mocks -mock_names=PersonaReader=MockPersonaReader
type PersonaReader interface {
	// CurrentPersonaID returns the next persona ID the registry will mint
	CurrentPersonaID(ctx context.Context, contractAddress string, blockNumber uint64) (*big.Int, error)
	// TokenURI returns the metadata URI of a persona
	TokenURI(ctx context.Context, contractAddress string, personaID string, blockNumber uint64) (string, error)
}
