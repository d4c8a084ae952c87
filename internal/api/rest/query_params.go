package rest

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/gin-gonic/gin"

	"github.com/feral-file/persona-indexer/internal/api/shared/constants"
	"github.com/feral-file/persona-indexer/internal/domain"
)

// PaginationQueryParams holds the pagination query parameters of list endpoints
type PaginationQueryParams struct {
	Limit  int    `form:"limit,default=20"`
	Offset uint64 `form:"offset,default=0"`
}

// Validate validates the pagination parameters
func (p *PaginationQueryParams) Validate() error {
	if p.Limit < 1 {
		return fmt.Errorf("limit must be at least 1")
	}
	return nil
}

// ParsePaginationQuery parses limit and offset, capping the limit at MAX_PAGE_SIZE
func ParsePaginationQuery(c *gin.Context) (*PaginationQueryParams, error) {
	var params PaginationQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}

	if params.Limit > constants.MAX_PAGE_SIZE {
		params.Limit = constants.MAX_PAGE_SIZE
	}

	return &params, nil
}

// parseLayer reads the :layer path parameter
func parseLayer(c *gin.Context) (domain.Layer, error) {
	return domain.ParseLayer(strings.ToLower(c.Param("layer")))
}

// parsePersonaID reads the :id path parameter and requires a decimal token ID
func parsePersonaID(c *gin.Context) (string, error) {
	id := c.Param("id")
	if id == "" {
		return "", fmt.Errorf("persona id is required")
	}
	for _, r := range id {
		if r < '0' || r > '9' {
			return "", fmt.Errorf("invalid persona id: %s", id)
		}
	}
	// Stored IDs carry no leading zeros
	trimmed := strings.TrimLeft(id, "0")
	if trimmed == "" {
		trimmed = "0"
	}
	return trimmed, nil
}

// parseAddress reads the :address path parameter and normalizes it
func parseAddress(c *gin.Context) (string, error) {
	address := c.Param("address")
	if !common.IsHexAddress(address) {
		return "", fmt.Errorf("invalid address: %s", address)
	}
	return domain.NormalizeAddress(address), nil
}
