package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"rapidbudapest/club-app/internal/domain"
	"rapidbudapest/club-app/internal/store"

	"github.com/gin-gonic/gin"
)

// AuthHandler fronts the auth store: session, profile and the admin-side
// member directory.
type AuthHandler struct {
	auth          *store.AuthStore
	jwtSecret     string
	jwtExpiration time.Duration
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth *store.AuthStore, jwtSecret string, jwtExpiration time.Duration) *AuthHandler {
	return &AuthHandler{auth: auth, jwtSecret: jwtSecret, jwtExpiration: jwtExpiration}
}

// --- Request/Response Structs ---

type RegisterRequest struct {
	Name        string      `json:"name" binding:"required"`
	Email       string      `json:"email" binding:"required,email"`
	Password    string      `json:"password" binding:"required,min=8"`
	Role        domain.Role `json:"role" binding:"required,oneof=coach dancer"`
	DateOfBirth string      `json:"dateOfBirth"`
	Partner     string      `json:"partner"`
	Category    string      `json:"category"`
	Bio         string      `json:"bio"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user"`
}

type UpdateProfileRequest struct {
	Name         *string `json:"name"`
	DateOfBirth  *string `json:"dateOfBirth"`
	Partner      *string `json:"partner"`
	Category     *string `json:"category"`
	Bio          *string `json:"bio"`
	ProfileImage *string `json:"profileImage"`
}

type ChangeRoleRequest struct {
	Role domain.Role `json:"role" binding:"required,oneof=admin coach dancer"`
}

// --- Handler Methods ---

// Register creates a new member account. Dancers are approved immediately;
// coaches wait for an admin.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	user, err := h.auth.Register(c.Request.Context(), domain.Registration{
		Name:        req.Name,
		Email:       req.Email,
		Password:    req.Password,
		Role:        req.Role,
		DateOfBirth: req.DateOfBirth,
		Partner:     req.Partner,
		Category:    req.Category,
		Bio:         req.Bio,
	})
	if err != nil {
		if errors.Is(err, store.ErrEmailTaken) {
			abortWithError(c, http.StatusConflict, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "An unexpected error occurred during registration")
		}
		return
	}

	token, err := issueToken(h.jwtSecret, h.jwtExpiration, user)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Could not process registration")
		return
	}
	c.JSON(http.StatusCreated, LoginResponse{Token: token, User: user})
}

// Login authenticates a member and returns a JWT token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	if err := h.auth.Login(c.Request.Context(), req.Email, req.Password); err != nil {
		if errors.Is(err, store.ErrInvalidCredentials) {
			abortWithError(c, http.StatusUnauthorized, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "An unexpected error occurred during login")
		}
		return
	}

	user := h.auth.CurrentUser()
	token, err := issueToken(h.jwtSecret, h.jwtExpiration, user)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Could not process login")
		return
	}
	c.JSON(http.StatusOK, LoginResponse{Token: token, User: user})
}

// Logout clears the session. The JWT itself stays valid until expiry.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.auth.Logout(c.Request.Context())
	c.Status(http.StatusNoContent)
}

// Me returns the current session user.
func (h *AuthHandler) Me(c *gin.Context) {
	user := h.auth.CurrentUser()
	if user == nil {
		abortWithError(c, http.StatusUnauthorized, "No active session")
		return
	}
	c.JSON(http.StatusOK, user)
}

// UpdateProfile applies a partial update to the session user's profile.
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	err := h.auth.UpdateProfile(c.Request.Context(), store.ProfileUpdate{
		Name:         req.Name,
		DateOfBirth:  req.DateOfBirth,
		Partner:      req.Partner,
		Category:     req.Category,
		Bio:          req.Bio,
		ProfileImage: req.ProfileImage,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotAuthenticated) {
			abortWithError(c, http.StatusUnauthorized, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "Failed to update profile")
		}
		return
	}
	c.JSON(http.StatusOK, h.auth.CurrentUser())
}

// ListUsers returns the full member directory. Admin only.
func (h *AuthHandler) ListUsers(c *gin.Context) {
	users, err := h.auth.AllUsers(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to list users")
		return
	}
	c.JSON(http.StatusOK, users)
}

// PendingUsers returns members waiting for approval. Admin only.
func (h *AuthHandler) PendingUsers(c *gin.Context) {
	users, err := h.auth.PendingUsers(c.Request.Context())
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to list pending users")
		return
	}
	c.JSON(http.StatusOK, users)
}

// ApproveUser marks a pending member approved. Admin only.
func (h *AuthHandler) ApproveUser(c *gin.Context) {
	if err := h.auth.ApproveUser(c.Request.Context(), c.Param("id")); err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to approve user")
		return
	}
	c.Status(http.StatusNoContent)
}

// RejectUser marks a pending member rejected. Admin only.
func (h *AuthHandler) RejectUser(c *gin.Context) {
	if err := h.auth.RejectUser(c.Request.Context(), c.Param("id")); err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to reject user")
		return
	}
	c.Status(http.StatusNoContent)
}

// ChangeUserRole reassigns a member's role. Admin only.
func (h *AuthHandler) ChangeUserRole(c *gin.Context) {
	var req ChangeRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	if err := h.auth.ChangeUserRole(c.Request.Context(), c.Param("id"), req.Role); err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to change user role")
		return
	}
	c.Status(http.StatusNoContent)
}
