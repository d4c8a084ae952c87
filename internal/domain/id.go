package domain

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// EventID builds the identifier of a transaction-derived record (Transfer, Authorization).
// Format: <txHash>:0x<logIndex in hex>, where logIndex is the log's position in its block.
// Filtered logs do not carry their position inside the transaction.
func EventID(txHash string, logIndex uint) string {
	return fmt.Sprintf("%s:0x%x", strings.ToLower(txHash), logIndex)
}

// ImpersonationID builds the deterministic key of an impersonation
func ImpersonationID(personaID, user, consumer string) string {
	return personaID + ":" + user + ":" + consumer
}

// NormalizeAddress returns the lower-case hex form of an address
func NormalizeAddress(address string) string {
	if common.IsHexAddress(address) {
		return strings.ToLower(common.HexToAddress(address).Hex())
	}
	return strings.ToLower(address)
}

// IsZeroAddress reports whether address is the mint/burn sentinel
func IsZeroAddress(address string) bool {
	return address == "" || NormalizeAddress(address) == ETHEREUM_ZERO_ADDRESS
}
