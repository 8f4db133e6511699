package handlers

import (
	"errors"
	"strconv"

	"uddaan/internal/models"
	"uddaan/internal/services"

	"github.com/gin-gonic/gin"
)

type EventHandler struct {
	eventService *services.EventService
}

func NewEventHandler(eventService *services.EventService) *EventHandler {
	return &EventHandler{eventService: eventService}
}

func eventQueryFromContext(c *gin.Context) services.EventQuery {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	return services.EventQuery{
		Search:    c.Query("search"),
		EventType: c.Query("event_type"),
		Featured:  c.Query("featured") == "true",
		Upcoming:  c.Query("upcoming") == "true",
		Page:      page,
		Limit:     limit,
	}
}

// GetPublicEvents lists active events for visitors, soonest first
func (h *EventHandler) GetPublicEvents(c *gin.Context) {
	q := eventQueryFromContext(c)
	q.ActiveOnly = true

	events, total, err := h.eventService.GetEvents(q)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to get events"})
		return
	}

	c.JSON(200, gin.H{
		"success":    true,
		"events":     events,
		"pagination": paginate(q.Page, q.Limit, total),
	})
}

// GetEvents lists events for the admin panel
func (h *EventHandler) GetEvents(c *gin.Context) {
	q := eventQueryFromContext(c)

	events, total, err := h.eventService.GetEvents(q)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to get events"})
		return
	}

	c.JSON(200, gin.H{
		"success":    true,
		"events":     events,
		"pagination": paginate(q.Page, q.Limit, total),
	})
}

// GetEvent returns one event
func (h *EventHandler) GetEvent(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid event ID"})
		return
	}

	event, err := h.eventService.GetEvent(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrEventNotFound) {
			c.JSON(404, gin.H{"success": false, "message": "Event not found"})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Failed to get event"})
		return
	}

	c.JSON(200, gin.H{"success": true, "event": event})
}

// CreateEvent stores a new event
func (h *EventHandler) CreateEvent(c *gin.Context) {
	var event models.Event
	if err := c.ShouldBindJSON(&event); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "details": err.Error()})
		return
	}

	created, err := h.eventService.CreateEvent(&event)
	if err != nil {
		c.JSON(500, gin.H{"success": false, "message": "Failed to create event"})
		return
	}

	c.JSON(201, gin.H{"success": true, "message": "Event created successfully", "event": created})
}

// UpdateEvent replaces an event's fields
func (h *EventHandler) UpdateEvent(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid event ID"})
		return
	}

	var updates models.Event
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid request", "details": err.Error()})
		return
	}

	event, err := h.eventService.UpdateEvent(uint(id), &updates)
	if err != nil {
		if errors.Is(err, services.ErrEventNotFound) {
			c.JSON(404, gin.H{"success": false, "message": "Event not found"})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Failed to update event"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Event updated successfully", "event": event})
}

// DeleteEvent removes an event
func (h *EventHandler) DeleteEvent(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"success": false, "message": "Invalid event ID"})
		return
	}

	if err := h.eventService.DeleteEvent(uint(id)); err != nil {
		if errors.Is(err, services.ErrEventNotFound) {
			c.JSON(404, gin.H{"success": false, "message": "Event not found"})
			return
		}
		c.JSON(500, gin.H{"success": false, "message": "Failed to delete event"})
		return
	}

	c.JSON(200, gin.H{"success": true, "message": "Event deleted successfully"})
}
