package main

import (
	"event-service/internal/events"
	"event-service/internal/httpapi"

	"github.com/gin-gonic/gin"
)

// registerRoutes wires HTTP routes to handlers.
// Keep this file free of business logic. Handlers should delegate to internal modules.
func registerRoutes(r *gin.Engine, store events.Store) {
	// public
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	h := httpapi.Handlers{Events: store}

	r.POST("/events", h.CreateEvent)
	r.PATCH("/events/:id", h.UpdateEvent)
	r.DELETE("/events/:id", h.DeleteEvent)
}
