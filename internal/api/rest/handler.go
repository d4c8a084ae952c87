package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/feral-file/persona-indexer/internal/api/shared/dto"
	"github.com/feral-file/persona-indexer/internal/api/shared/executor"
	"github.com/feral-file/persona-indexer/internal/domain"
)

// Handler defines the interface for REST API handlers
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// GetPersona retrieves a persona on a layer
	// GET /api/v1/:layer/personas/:id
	GetPersona(c *gin.Context)

	// ListPersonaTransfers retrieves the ownership history of a persona
	// GET /api/v1/:layer/personas/:id/transfers?limit=<limit>&offset=<offset>
	ListPersonaTransfers(c *gin.Context)

	// ListPersonaAuthorizations retrieves the authorizations of a mirrored persona
	// GET /api/v1/l2/personas/:id/authorizations
	ListPersonaAuthorizations(c *gin.Context)

	// ListPersonaImpersonations retrieves the impersonations of a mirrored persona
	// GET /api/v1/l2/personas/:id/impersonations
	ListPersonaImpersonations(c *gin.Context)

	// GetOwner retrieves an L1 owner
	// GET /api/v1/l1/owners/:address
	GetOwner(c *gin.Context)

	// GetUser retrieves an L2 user
	// GET /api/v1/l2/users/:address
	GetUser(c *gin.Context)

	// ListUserAuthorizations retrieves the authorizations granted by an L2 user
	// GET /api/v1/l2/users/:address/authorizations
	ListUserAuthorizations(c *gin.Context)

	// ListHolderPersonas retrieves the personas held by an owner or user
	// GET /api/v1/l1/owners/:address/personas, GET /api/v1/l2/users/:address/personas
	ListHolderPersonas(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	executor executor.Executor
}

// NewHandler creates a new REST API handler using the shared executor
func NewHandler(exec executor.Executor) Handler {
	return &handler{executor: exec}
}

// holderLayers maps the holder collection in the path to the layer it lives on
var holderLayers = map[string]domain.Layer{
	"owners": domain.LayerL1,
	"users":  domain.LayerL2,
}

// requireLayer parses :layer and rejects any layer other than want.
// It writes the response and returns false on failure.
func requireLayer(c *gin.Context, want domain.Layer) bool {
	layer, err := parseLayer(c)
	if err != nil {
		respondBadRequest(c, "Invalid layer", err.Error())
		return false
	}
	if layer != want {
		respondNotFound(c, "Resource not available on layer "+layer.String())
		return false
	}
	return true
}

func (h *handler) GetPersona(c *gin.Context) {
	layer, err := parseLayer(c)
	if err != nil {
		respondBadRequest(c, "Invalid layer", err.Error())
		return
	}
	id, err := parsePersonaID(c)
	if err != nil {
		respondBadRequest(c, "Invalid persona ID", err.Error())
		return
	}

	persona, err := h.executor.GetPersona(c.Request.Context(), layer, id)
	if err != nil {
		respondInternalError(c, err, "Failed to get persona", zap.String("persona", id))
		return
	}
	if persona == nil {
		respondNotFound(c, "Persona not found")
		return
	}

	c.JSON(http.StatusOK, persona)
}

func (h *handler) ListPersonaTransfers(c *gin.Context) {
	layer, err := parseLayer(c)
	if err != nil {
		respondBadRequest(c, "Invalid layer", err.Error())
		return
	}
	id, err := parsePersonaID(c)
	if err != nil {
		respondBadRequest(c, "Invalid persona ID", err.Error())
		return
	}

	queryParams, err := ParsePaginationQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}
	if err := queryParams.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	response, err := h.executor.ListPersonaTransfers(c.Request.Context(), layer, id, &queryParams.Limit, &queryParams.Offset)
	if err != nil {
		respondInternalError(c, err, "Failed to list transfers", zap.String("persona", id))
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *handler) ListPersonaAuthorizations(c *gin.Context) {
	if !requireLayer(c, domain.LayerL2) {
		return
	}
	id, err := parsePersonaID(c)
	if err != nil {
		respondBadRequest(c, "Invalid persona ID", err.Error())
		return
	}

	authorizations, err := h.executor.ListPersonaAuthorizations(c.Request.Context(), id)
	if err != nil {
		respondInternalError(c, err, "Failed to list authorizations", zap.String("persona", id))
		return
	}
	if authorizations == nil {
		respondNotFound(c, "Persona not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": authorizations})
}

func (h *handler) ListPersonaImpersonations(c *gin.Context) {
	if !requireLayer(c, domain.LayerL2) {
		return
	}
	id, err := parsePersonaID(c)
	if err != nil {
		respondBadRequest(c, "Invalid persona ID", err.Error())
		return
	}

	impersonations, err := h.executor.ListPersonaImpersonations(c.Request.Context(), id)
	if err != nil {
		respondInternalError(c, err, "Failed to list impersonations", zap.String("persona", id))
		return
	}
	if impersonations == nil {
		respondNotFound(c, "Persona not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": impersonations})
}

func (h *handler) GetOwner(c *gin.Context) {
	if !requireLayer(c, domain.LayerL1) {
		return
	}
	address, err := parseAddress(c)
	if err != nil {
		respondBadRequest(c, "Invalid address", err.Error())
		return
	}

	owner, err := h.executor.GetOwner(c.Request.Context(), address)
	if err != nil {
		respondInternalError(c, err, "Failed to get owner", zap.String("address", address))
		return
	}
	if owner == nil {
		respondNotFound(c, "Owner not found")
		return
	}

	c.JSON(http.StatusOK, owner)
}

func (h *handler) GetUser(c *gin.Context) {
	if !requireLayer(c, domain.LayerL2) {
		return
	}
	address, err := parseAddress(c)
	if err != nil {
		respondBadRequest(c, "Invalid address", err.Error())
		return
	}

	user, err := h.executor.GetUser(c.Request.Context(), address)
	if err != nil {
		respondInternalError(c, err, "Failed to get user", zap.String("address", address))
		return
	}
	if user == nil {
		respondNotFound(c, "User not found")
		return
	}

	c.JSON(http.StatusOK, user)
}

func (h *handler) ListUserAuthorizations(c *gin.Context) {
	if !requireLayer(c, domain.LayerL2) {
		return
	}
	address, err := parseAddress(c)
	if err != nil {
		respondBadRequest(c, "Invalid address", err.Error())
		return
	}

	authorizations, err := h.executor.ListUserAuthorizations(c.Request.Context(), address)
	if err != nil {
		respondInternalError(c, err, "Failed to list authorizations", zap.String("address", address))
		return
	}
	if authorizations == nil {
		respondNotFound(c, "User not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{"items": authorizations})
}

// ListHolderPersonas serves both owners (l1) and users (l2); the collection
// name is bound by the route.
func (h *handler) ListHolderPersonas(c *gin.Context) {
	want, ok := holderLayers[c.GetString(holderKey)]
	if !ok {
		respondNotFound(c, "Unknown holder collection")
		return
	}
	if !requireLayer(c, want) {
		return
	}
	address, err := parseAddress(c)
	if err != nil {
		respondBadRequest(c, "Invalid address", err.Error())
		return
	}

	queryParams, err := ParsePaginationQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}
	if err := queryParams.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	response, err := h.executor.ListHolderPersonas(c.Request.Context(), want, address, &queryParams.Limit, &queryParams.Offset)
	if err != nil {
		respondInternalError(c, err, "Failed to list personas", zap.String("address", address))
		return
	}

	c.JSON(http.StatusOK, response)
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok"})
}
