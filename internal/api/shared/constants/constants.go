package constants

const (
	MAX_PAGE_SIZE         = 100
	DEFAULT_OFFSET        = uint64(0)
	DEFAULT_PERSONA_LIMIT = 20
)
