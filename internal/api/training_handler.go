package api

import (
	"fmt"
	"net/http"
	"time"

	"rapidbudapest/club-app/internal/domain"
	"rapidbudapest/club-app/internal/store"

	"github.com/gin-gonic/gin"
)

// TrainingHandler fronts the training store.
type TrainingHandler struct {
	training *store.TrainingStore
}

// NewTrainingHandler creates a new TrainingHandler.
func NewTrainingHandler(training *store.TrainingStore) *TrainingHandler {
	return &TrainingHandler{training: training}
}

// --- Request/Response Structs ---

type ExerciseRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Duration    int    `json:"duration" binding:"min=0"`
	VideoID     string `json:"videoId"`
}

type CreatePlanRequest struct {
	Title         string            `json:"title" binding:"required"`
	Description   string            `json:"description"`
	ScheduledDate time.Time         `json:"scheduledDate" binding:"required"`
	Exercises     []ExerciseRequest `json:"exercises"`
	AssignedTo    []string          `json:"assignedTo"`
}

type UpdatePlanRequest struct {
	Title         *string    `json:"title"`
	Description   *string    `json:"description"`
	ScheduledDate *time.Time `json:"scheduledDate"`
	AssignedTo    *[]string  `json:"assignedTo"`
}

type AssignPlanRequest struct {
	UserIDs []string `json:"userIds" binding:"required"`
}

// --- Handler Methods ---

// Refresh re-fetches the plan list from the backend.
func (h *TrainingHandler) Refresh(c *gin.Context) {
	if err := h.training.Fetch(c.Request.Context()); err != nil {
		abortWithError(c, http.StatusBadGateway, "Failed to fetch training plans")
		return
	}
	c.JSON(http.StatusOK, h.training.Plans())
}

// ListPlans returns the cached plan list. With ?mine=true the list is scoped
// to the caller: coaches see plans they created, dancers plans assigned to
// them. ?date=YYYY-MM-DD returns plans scheduled on that calendar day.
func (h *TrainingHandler) ListPlans(c *gin.Context) {
	if c.Query("mine") == "true" {
		userID, err := getUserIDFromContext(c)
		if err != nil {
			abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
			return
		}
		role, err := getUserRoleFromContext(c)
		if err != nil {
			abortWithError(c, http.StatusInternalServerError, "Failed to get user role from token")
			return
		}
		c.JSON(http.StatusOK, h.training.MyPlans(userID, role))
		return
	}

	if dateRaw, ok := c.GetQuery("date"); ok {
		date, err := time.Parse("2006-01-02", dateRaw)
		if err != nil {
			abortWithError(c, http.StatusBadRequest, "Invalid 'date', expected YYYY-MM-DD")
			return
		}
		c.JSON(http.StatusOK, h.training.PlansOn(date))
		return
	}

	c.JSON(http.StatusOK, h.training.Plans())
}

// GetPlan returns a single plan by id.
func (h *TrainingHandler) GetPlan(c *gin.Context) {
	plan := h.training.PlanByID(c.Param("id"))
	if plan == nil {
		abortWithError(c, http.StatusNotFound, "Training plan not found")
		return
	}
	c.JSON(http.StatusOK, plan)
}

// CreatePlan adds a training plan. Admin or coach only; the caller becomes
// the plan's creator.
func (h *TrainingHandler) CreatePlan(c *gin.Context) {
	var req CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	exercises := make([]domain.Exercise, len(req.Exercises))
	for i, ex := range req.Exercises {
		exercises[i] = domain.Exercise{
			Name:        ex.Name,
			Description: ex.Description,
			Duration:    ex.Duration,
			VideoID:     ex.VideoID,
		}
	}

	plan, err := h.training.Add(c.Request.Context(), domain.TrainingPlan{
		Title:         req.Title,
		Description:   req.Description,
		ScheduledDate: req.ScheduledDate,
		Exercises:     exercises,
		AssignedTo:    req.AssignedTo,
		CreatedBy:     userID,
	})
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to create training plan")
		return
	}
	c.JSON(http.StatusCreated, plan)
}

// UpdatePlan applies a partial update. Unknown ids are a silent no-op.
func (h *TrainingHandler) UpdatePlan(c *gin.Context) {
	var req UpdatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	err := h.training.Update(c.Request.Context(), c.Param("id"), store.TrainingPatch{
		Title:         req.Title,
		Description:   req.Description,
		ScheduledDate: req.ScheduledDate,
		AssignedTo:    req.AssignedTo,
	})
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to update training plan")
		return
	}
	c.Status(http.StatusNoContent)
}

// DeletePlan removes a plan. Unknown ids are a silent no-op.
func (h *TrainingHandler) DeletePlan(c *gin.Context) {
	if err := h.training.Delete(c.Request.Context(), c.Param("id")); err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to delete training plan")
		return
	}
	c.Status(http.StatusNoContent)
}

// AssignPlan replaces a plan's assignee list wholesale.
func (h *TrainingHandler) AssignPlan(c *gin.Context) {
	var req AssignPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	if err := h.training.Assign(c.Request.Context(), c.Param("id"), req.UserIDs); err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to assign training plan")
		return
	}
	c.Status(http.StatusNoContent)
}
