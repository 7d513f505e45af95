package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"rapidbudapest/club-app/internal/domain"
	"rapidbudapest/club-app/internal/store"

	"github.com/gin-gonic/gin"
)

// ProgressHandler fronts the progress journal. All routes operate on the
// caller's own entries.
type ProgressHandler struct {
	progress *store.ProgressStore
}

// NewProgressHandler creates a new ProgressHandler.
func NewProgressHandler(progress *store.ProgressStore) *ProgressHandler {
	return &ProgressHandler{progress: progress}
}

// --- Request/Response Structs ---

type CreateProgressRequest struct {
	Date        time.Time `json:"date" binding:"required"`
	Title       string    `json:"title" binding:"required"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Rating      int       `json:"rating" binding:"min=0,max=5"`
}

type UpdateProgressRequest struct {
	Date        *time.Time `json:"date"`
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Category    *string    `json:"category"`
	Rating      *int       `json:"rating"`
}

// --- Handler Methods ---

// Refresh re-fetches the journal for the caller.
func (h *ProgressHandler) Refresh(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}
	if err := h.progress.Fetch(c.Request.Context(), userID); err != nil {
		abortWithError(c, http.StatusBadGateway, "Failed to fetch progress entries")
		return
	}
	c.JSON(http.StatusOK, h.progress.EntriesByUser(userID))
}

// ListEntries returns the caller's journal entries, newest first with
// ?recent=N.
func (h *ProgressHandler) ListEntries(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	if raw, ok := c.GetQuery("recent"); ok {
		limit := 0
		if raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 0 {
				abortWithError(c, http.StatusBadRequest, "Invalid 'recent' limit")
				return
			}
			limit = n
		}
		c.JSON(http.StatusOK, h.progress.RecentEntries(userID, limit))
		return
	}

	c.JSON(http.StatusOK, h.progress.EntriesByUser(userID))
}

// CreateEntry adds a journal entry for the caller.
func (h *ProgressHandler) CreateEntry(c *gin.Context) {
	var req CreateProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	entry, err := h.progress.Add(c.Request.Context(), domain.ProgressEntry{
		UserID:      userID,
		Date:        req.Date,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Rating:      req.Rating,
	})
	if err != nil {
		if errors.Is(err, store.ErrInvalidRating) {
			abortWithError(c, http.StatusBadRequest, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to create progress entry")
		}
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// UpdateEntry applies a partial update. Unknown ids are a silent no-op.
func (h *ProgressHandler) UpdateEntry(c *gin.Context) {
	var req UpdateProgressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	err := h.progress.Update(c.Request.Context(), c.Param("id"), store.ProgressPatch{
		Date:        req.Date,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Rating:      req.Rating,
	})
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to update progress entry")
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteEntry removes a journal entry. Unknown ids are a silent no-op.
func (h *ProgressHandler) DeleteEntry(c *gin.Context) {
	if err := h.progress.Delete(c.Request.Context(), c.Param("id")); err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to delete progress entry")
		return
	}
	c.Status(http.StatusNoContent)
}
