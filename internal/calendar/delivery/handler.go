package delivery

import (
	"errors"
	"net/http"

	authdelivery "homehub-backend/internal/auth/delivery"
	calendardomain "homehub-backend/internal/calendar/domain"
	"homehub-backend/internal/calendar/usecase"

	"github.com/gin-gonic/gin"
)

// EventHandler handles calendar event HTTP requests
type EventHandler struct {
	eventUsecase usecase.EventUsecase
}

// NewEventHandler creates a new EventHandler
func NewEventHandler(eventUsecase usecase.EventUsecase) *EventHandler {
	return &EventHandler{eventUsecase: eventUsecase}
}

// GetEvents returns the authenticated user's calendar
// GET /calendar
func (h *EventHandler) GetEvents(c *gin.Context) {
	owner := c.GetString(authdelivery.CtxUserID)

	events, err := h.eventUsecase.GetEvents(owner)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error fetching events"})
		return
	}
	c.JSON(http.StatusOK, events)
}

// GetEventByID returns a single event
// GET /calendar/:id
func (h *EventHandler) GetEventByID(c *gin.Context) {
	id := c.Param("id")

	event, err := h.eventUsecase.GetEventByID(id)
	if err != nil {
		if errors.Is(err, usecase.ErrEventNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Event with ID " + id + " not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error fetching event"})
		return
	}
	c.JSON(http.StatusOK, event)
}

// CreateEvent creates a calendar event owned by the authenticated user
// POST /calendar
func (h *EventHandler) CreateEvent(c *gin.Context) {
	owner := c.GetString(authdelivery.CtxUserID)

	var event calendardomain.CalendarEvent
	if err := c.ShouldBindJSON(&event); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	if err := h.eventUsecase.CreateEvent(owner, &event); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to create event"})
		return
	}
	c.JSON(http.StatusCreated, event)
}

// UpdateEvent replaces an event's fields
// PUT /calendar/:id
func (h *EventHandler) UpdateEvent(c *gin.Context) {
	id := c.Param("id")

	var event calendardomain.CalendarEvent
	if err := c.ShouldBindJSON(&event); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	updated, err := h.eventUsecase.UpdateEvent(id, &event)
	if err != nil {
		if errors.Is(err, usecase.ErrEventNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Event with ID " + id + " not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error updating event"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteEvent removes an event
// DELETE /calendar/:id
func (h *EventHandler) DeleteEvent(c *gin.Context) {
	id := c.Param("id")

	if err := h.eventUsecase.DeleteEvent(id); err != nil {
		if errors.Is(err, usecase.ErrEventNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Event with ID " + id + " not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Error deleting event"})
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"success": true, "message": "Removed event: ID " + id})
}
