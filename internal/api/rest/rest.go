package rest

import (
	"github.com/gin-gonic/gin"
)

// holderKey is the gin context key carrying the holder collection of a route
const holderKey = "holder"

// bindHolder tags the request with the holder collection it targets
func bindHolder(collection string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(holderKey, collection)
		c.Next()
	}
}

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler) {
	// Health check endpoint (no version prefix)
	router.GET("/health", handler.HealthCheck)

	// Every resource is scoped by layer; handlers reject layers a resource does not exist on
	v1 := router.Group("/api/v1/:layer")
	{
		// Persona endpoints
		v1.GET("/personas/:id", handler.GetPersona)
		v1.GET("/personas/:id/transfers", handler.ListPersonaTransfers)
		v1.GET("/personas/:id/authorizations", handler.ListPersonaAuthorizations)
		v1.GET("/personas/:id/impersonations", handler.ListPersonaImpersonations)

		// L1 owners
		v1.GET("/owners/:address", handler.GetOwner)
		v1.GET("/owners/:address/personas", bindHolder("owners"), handler.ListHolderPersonas)

		// L2 users
		v1.GET("/users/:address", handler.GetUser)
		v1.GET("/users/:address/personas", bindHolder("users"), handler.ListHolderPersonas)
		v1.GET("/users/:address/authorizations", handler.ListUserAuthorizations)
	}
}
