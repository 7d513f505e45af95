package api

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"rapidbudapest/club-app/internal/domain"
	"rapidbudapest/club-app/internal/store"

	"github.com/gin-gonic/gin"
)

// EventHandler fronts the events store.
type EventHandler struct {
	events *store.EventsStore
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(events *store.EventsStore) *EventHandler {
	return &EventHandler{events: events}
}

// --- Request/Response Structs ---

type CreateEventRequest struct {
	Title       string           `json:"title" binding:"required"`
	Description string           `json:"description"`
	StartDate   time.Time        `json:"startDate" binding:"required"`
	EndDate     time.Time        `json:"endDate" binding:"required"`
	Location    string           `json:"location"`
	Type        domain.EventType `json:"type" binding:"required,oneof=competition workshop meeting other"`
	Categories  []string         `json:"categories"`
}

type UpdateEventRequest struct {
	Title       *string           `json:"title"`
	Description *string           `json:"description"`
	StartDate   *time.Time        `json:"startDate"`
	EndDate     *time.Time        `json:"endDate"`
	Location    *string           `json:"location"`
	Type        *domain.EventType `json:"type"`
	Categories  *[]string         `json:"categories"`
}

type ToggleReminderRequest struct {
	Enabled bool `json:"enabled"`
}

// --- Handler Methods ---

// Refresh re-fetches the calendar from the backend.
func (h *EventHandler) Refresh(c *gin.Context) {
	if err := h.events.Fetch(c.Request.Context()); err != nil {
		abortWithError(c, http.StatusBadGateway, "Failed to fetch events")
		return
	}
	c.JSON(http.StatusOK, h.events.Events())
}

// ListEvents returns the cached calendar, optionally filtered by query
// params: upcoming=N, category=..., from/to (RFC 3339).
func (h *EventHandler) ListEvents(c *gin.Context) {
	if raw, ok := c.GetQuery("upcoming"); ok {
		limit := 0
		if raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 0 {
				abortWithError(c, http.StatusBadRequest, "Invalid 'upcoming' limit")
				return
			}
			limit = n
		}
		c.JSON(http.StatusOK, h.events.Upcoming(limit))
		return
	}

	if category, ok := c.GetQuery("category"); ok {
		c.JSON(http.StatusOK, h.events.ByCategory(category))
		return
	}

	fromRaw, hasFrom := c.GetQuery("from")
	toRaw, hasTo := c.GetQuery("to")
	if hasFrom || hasTo {
		from, err := time.Parse(time.RFC3339, fromRaw)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "Invalid 'from' timestamp")
			return
		}
		to, err := time.Parse(time.RFC3339, toRaw)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "Invalid 'to' timestamp")
			return
		}
		c.JSON(http.StatusOK, h.events.ByDateRange(from, to))
		return
	}

	c.JSON(http.StatusOK, h.events.Events())
}

// GetEvent returns a single event by id.
func (h *EventHandler) GetEvent(c *gin.Context) {
	event := h.events.EventByID(c.Param("id"))
	if event == nil {
		abortWithError(c, http.StatusNotFound, "Event not found")
		return
	}
	c.JSON(http.StatusOK, event)
}

// CreateEvent adds an event to the calendar. Admin or coach only.
func (h *EventHandler) CreateEvent(c *gin.Context) {
	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	event, err := h.events.Add(c.Request.Context(), domain.Event{
		Title:       req.Title,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Location:    req.Location,
		Type:        req.Type,
		Categories:  req.Categories,
		CreatedBy:   userID,
	})
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to create event")
		return
	}
	c.JSON(http.StatusCreated, event)
}

// UpdateEvent applies a partial update. Unknown ids are a silent no-op.
func (h *EventHandler) UpdateEvent(c *gin.Context) {
	var req UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	err := h.events.Update(c.Request.Context(), c.Param("id"), store.EventPatch{
		Title:       req.Title,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Location:    req.Location,
		Type:        req.Type,
		Categories:  req.Categories,
	})
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to update event")
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteEvent removes an event. Unknown ids are a silent no-op.
func (h *EventHandler) DeleteEvent(c *gin.Context) {
	if err := h.events.Delete(c.Request.Context(), c.Param("id")); err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to delete event")
		return
	}
	c.Status(http.StatusNoContent)
}

// ToggleReminder flips the reminder flag on an event.
func (h *EventHandler) ToggleReminder(c *gin.Context) {
	var req ToggleReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	if err := h.events.ToggleReminder(c.Request.Context(), c.Param("id"), req.Enabled); err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to toggle reminder")
		return
	}
	c.Status(http.StatusNoContent)
}
