package api

import (
	"fmt"
	"net/http"

	"rapidbudapest/club-app/internal/domain"
	"rapidbudapest/club-app/internal/store"

	"github.com/gin-gonic/gin"
)

// NotificationHandler fronts the notification feed.
type NotificationHandler struct {
	notifications *store.NotificationsStore
}

// NewNotificationHandler creates a new NotificationHandler.
func NewNotificationHandler(notifications *store.NotificationsStore) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

// --- Request/Response Structs ---

type CreateNotificationRequest struct {
	Title     string                  `json:"title" binding:"required"`
	Message   string                  `json:"message" binding:"required"`
	Type      domain.NotificationType `json:"type" binding:"required,oneof=event training video system"`
	RelatedID string                  `json:"relatedId"`
}

// --- Handler Methods ---

// Refresh re-fetches the feed from the backend.
func (h *NotificationHandler) Refresh(c *gin.Context) {
	if err := h.notifications.Fetch(c.Request.Context()); err != nil {
		abortWithError(c, http.StatusBadGateway, "Failed to fetch notifications")
		return
	}
	c.JSON(http.StatusOK, h.notifications.Notifications())
}

// ListNotifications returns the cached feed, newest first.
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	c.JSON(http.StatusOK, h.notifications.Notifications())
}

// UnreadCount returns the number of unread notifications.
func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"unreadCount": h.notifications.UnreadCount()})
}

// CreateNotification pushes a notification onto the feed. Admin or coach
// only.
func (h *NotificationHandler) CreateNotification(c *gin.Context) {
	var req CreateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	n, err := h.notifications.Add(c.Request.Context(), req.Title, req.Message, req.Type, req.RelatedID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to create notification")
		return
	}
	c.JSON(http.StatusCreated, n)
}

// MarkRead marks one notification read. Already-read ids are a no-op.
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	if err := h.notifications.MarkRead(c.Request.Context(), c.Param("id")); err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to mark notification read")
		return
	}
	c.Status(http.StatusNoContent)
}

// MarkAllRead marks the whole feed read.
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	if err := h.notifications.MarkAllRead(c.Request.Context()); err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to mark notifications read")
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteNotification removes a feed item. Unknown ids are a silent no-op.
func (h *NotificationHandler) DeleteNotification(c *gin.Context) {
	if err := h.notifications.Delete(c.Request.Context(), c.Param("id")); err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to delete notification")
		return
	}
	c.Status(http.StatusNoContent)
}
