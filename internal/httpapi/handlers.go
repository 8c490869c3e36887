package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"event-service/internal/events"
	"event-service/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Handlers groups HTTP handlers for dependency injection.
// Keep these thin: parse/validate input, call the store, return JSON.

type Handlers struct {
	Events events.Store
}

const msgMissingTitle = "Missing required field: title"

func msgNotFound(id int) string {
	return fmt.Sprintf("Event with ID %d not found", id)
}

// eventRequest is the body shape shared by create and update.
// Title is a pointer so a present-but-empty title is distinguishable from a
// missing key; only absence of the key is rejected.
type eventRequest struct {
	Title *string `json:"title"`
}

// CreateEvent handles POST /events.
func (h Handlers) CreateEvent(c *gin.Context) {
	var req eventRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Title == nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": msgMissingTitle})
		return
	}

	ev, err := h.Events.Create(c.Request.Context(), *req.Title)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "event creation failed"})
		return
	}
	c.JSON(http.StatusCreated, ev)
}

// UpdateEvent handles PATCH /events/:id.
//
// Existence is checked before the body is read: an unknown id answers 404
// even when the body is also invalid.
func (h Handlers) UpdateEvent(c *gin.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}

	if _, err := h.Events.Get(c.Request.Context(), id); err != nil {
		h.replyStoreError(c, id, err)
		return
	}

	var req eventRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Title == nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": msgMissingTitle})
		return
	}

	ev, err := h.Events.Rename(c.Request.Context(), id, *req.Title)
	if err != nil {
		h.replyStoreError(c, id, err)
		return
	}
	c.JSON(http.StatusOK, ev)
}

// DeleteEvent handles DELETE /events/:id.
func (h Handlers) DeleteEvent(c *gin.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}

	if err := h.Events.Delete(c.Request.Context(), id); err != nil {
		h.replyStoreError(c, id, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h Handlers) replyStoreError(c *gin.Context, id int, err error) {
	if errors.Is(err, events.ErrNotFound) {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": msgNotFound(id)})
		return
	}
	logger.FromGin(c).Error("event store failure", "event_id", id, "err", err)
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "event lookup failed"})
}

// eventID parses the :id path parameter. Writes the response itself on
// failure and reports ok=false.
func eventID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid event id"})
		return 0, false
	}
	return id, true
}
