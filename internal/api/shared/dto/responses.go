package dto

// ListResponse is a page of items. Offset is the offset of the next page, nil on the last page.
type ListResponse[T any] struct {
	Items  []T     `json:"items"`
	Offset *uint64 `json:"offset,omitempty"`
	Total  uint64  `json:"total"`
}

// NextOffset returns the offset of the page after one of n items, or nil when it was the last
func NextOffset(offset uint64, n int, total uint64) *uint64 {
	if offset+uint64(n) < total { //nolint:gosec,G115
		next := offset + uint64(n) //nolint:gosec,G115
		return &next
	}
	return nil
}

// HealthResponse is the body of the health check
type HealthResponse struct {
	Status string `json:"status"`
}
