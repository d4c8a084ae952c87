package domain

const (
	// Blockchain constants
	ETHEREUM_ZERO_ADDRESS = "0x0000000000000000000000000000000000000000"

	// DEFAULT_FIRST_PERSONA_ID is the lowest persona id walked by a token URI backfill
	DEFAULT_FIRST_PERSONA_ID = 0
)
