package api

import (
	"errors"
	"fmt"
	"net/http"

	"rapidbudapest/club-app/internal/domain"
	"rapidbudapest/club-app/internal/store"

	"github.com/gin-gonic/gin"
)

// ClubHandler fronts the club profile store: the profile itself plus its
// contacts, locations and partners.
type ClubHandler struct {
	club *store.ClubInfoStore
}

// NewClubHandler creates a new ClubHandler.
func NewClubHandler(club *store.ClubInfoStore) *ClubHandler {
	return &ClubHandler{club: club}
}

// --- Request/Response Structs ---

type UpdateClubRequest struct {
	Name        *string             `json:"name"`
	Description *string             `json:"description"`
	FoundedYear *int                `json:"foundedYear"`
	Mission     *string             `json:"mission"`
	SocialMedia *domain.SocialMedia `json:"socialMedia"`
}

type ContactRequest struct {
	Name     string `json:"name" binding:"required"`
	Role     string `json:"role" binding:"required"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Bio      string `json:"bio"`
	ImageURL string `json:"imageUrl"`
}

type UpdateContactRequest struct {
	Name     *string `json:"name"`
	Role     *string `json:"role"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Bio      *string `json:"bio"`
	ImageURL *string `json:"imageUrl"`
}

type LocationRequest struct {
	Name        string              `json:"name" binding:"required"`
	Address     string              `json:"address" binding:"required"`
	City        string              `json:"city" binding:"required"`
	Description string              `json:"description"`
	ImageURL    string              `json:"imageUrl"`
	Coordinates *domain.Coordinates `json:"coordinates"`
}

type UpdateLocationRequest struct {
	Name        *string             `json:"name"`
	Address     *string             `json:"address"`
	City        *string             `json:"city"`
	Description *string             `json:"description"`
	ImageURL    *string             `json:"imageUrl"`
	Coordinates *domain.Coordinates `json:"coordinates"`
}

type PartnerRequest struct {
	Name        string             `json:"name" binding:"required"`
	Description string             `json:"description"`
	Website     string             `json:"website"`
	LogoURL     string             `json:"logoUrl"`
	Type        domain.PartnerType `json:"type" binding:"required,oneof=sponsor partner"`
}

type UpdatePartnerRequest struct {
	Name        *string             `json:"name"`
	Description *string             `json:"description"`
	Website     *string             `json:"website"`
	LogoURL     *string             `json:"logoUrl"`
	Type        *domain.PartnerType `json:"type"`
}

// --- Handler Methods ---

// Refresh re-fetches the club profile from the backend.
func (h *ClubHandler) Refresh(c *gin.Context) {
	if err := h.club.Fetch(c.Request.Context()); err != nil {
		abortWithError(c, http.StatusBadGateway, "Failed to fetch club info")
		return
	}
	c.JSON(http.StatusOK, h.club.ClubInfo())
}

// GetClubInfo returns the cached club profile.
func (h *ClubHandler) GetClubInfo(c *gin.Context) {
	info := h.club.ClubInfo()
	if info == nil {
		abortWithError(c, http.StatusNotFound, "Club info not loaded")
		return
	}
	c.JSON(http.StatusOK, info)
}

// UpdateClubInfo applies a partial update to the profile. Admin only.
func (h *ClubHandler) UpdateClubInfo(c *gin.Context) {
	var req UpdateClubRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	err := h.club.Update(c.Request.Context(), store.ClubInfoPatch{
		Name:        req.Name,
		Description: req.Description,
		FoundedYear: req.FoundedYear,
		Mission:     req.Mission,
		SocialMedia: req.SocialMedia,
	})
	if err != nil {
		h.mutationError(c, err, "Failed to update club info")
		return
	}
	c.JSON(http.StatusOK, h.club.ClubInfo())
}

// AddContact adds a contact person to the profile. Admin only.
func (h *ClubHandler) AddContact(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	contact, err := h.club.AddContact(c.Request.Context(), domain.Contact{
		Name:     req.Name,
		Role:     req.Role,
		Email:    req.Email,
		Phone:    req.Phone,
		Bio:      req.Bio,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		h.mutationError(c, err, "Failed to add contact")
		return
	}
	c.JSON(http.StatusCreated, contact)
}

// UpdateContact applies a partial update to a contact. Admin only.
func (h *ClubHandler) UpdateContact(c *gin.Context) {
	var req UpdateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	err := h.club.UpdateContact(c.Request.Context(), c.Param("id"), store.ContactPatch{
		Name:     req.Name,
		Role:     req.Role,
		Email:    req.Email,
		Phone:    req.Phone,
		Bio:      req.Bio,
		ImageURL: req.ImageURL,
	})
	if err != nil {
		h.mutationError(c, err, "Failed to update contact")
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteContact removes a contact. Admin only.
func (h *ClubHandler) DeleteContact(c *gin.Context) {
	if err := h.club.DeleteContact(c.Request.Context(), c.Param("id")); err != nil {
		h.mutationError(c, err, "Failed to delete contact")
		return
	}
	c.Status(http.StatusNoContent)
}

// AddLocation adds a training venue to the profile. Admin only.
func (h *ClubHandler) AddLocation(c *gin.Context) {
	var req LocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	location, err := h.club.AddLocation(c.Request.Context(), domain.Location{
		Name:        req.Name,
		Address:     req.Address,
		City:        req.City,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Coordinates: req.Coordinates,
	})
	if err != nil {
		h.mutationError(c, err, "Failed to add location")
		return
	}
	c.JSON(http.StatusCreated, location)
}

// UpdateLocation applies a partial update to a location. Admin only.
func (h *ClubHandler) UpdateLocation(c *gin.Context) {
	var req UpdateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	err := h.club.UpdateLocation(c.Request.Context(), c.Param("id"), store.LocationPatch{
		Name:        req.Name,
		Address:     req.Address,
		City:        req.City,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Coordinates: req.Coordinates,
	})
	if err != nil {
		h.mutationError(c, err, "Failed to update location")
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteLocation removes a location. Admin only.
func (h *ClubHandler) DeleteLocation(c *gin.Context) {
	if err := h.club.DeleteLocation(c.Request.Context(), c.Param("id")); err != nil {
		h.mutationError(c, err, "Failed to delete location")
		return
	}
	c.Status(http.StatusNoContent)
}

// AddPartner adds a sponsor or partner to the profile. Admin only.
func (h *ClubHandler) AddPartner(c *gin.Context) {
	var req PartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	partner, err := h.club.AddPartner(c.Request.Context(), domain.Partner{
		Name:        req.Name,
		Description: req.Description,
		Website:     req.Website,
		LogoURL:     req.LogoURL,
		Type:        req.Type,
	})
	if err != nil {
		h.mutationError(c, err, "Failed to add partner")
		return
	}
	c.JSON(http.StatusCreated, partner)
}

// UpdatePartner applies a partial update to a partner. Admin only.
func (h *ClubHandler) UpdatePartner(c *gin.Context) {
	var req UpdatePartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	err := h.club.UpdatePartner(c.Request.Context(), c.Param("id"), store.PartnerPatch{
		Name:        req.Name,
		Description: req.Description,
		Website:     req.Website,
		LogoURL:     req.LogoURL,
		Type:        req.Type,
	})
	if err != nil {
		h.mutationError(c, err, "Failed to update partner")
		return
	}
	c.Status(http.StatusNoContent)
}

// DeletePartner removes a partner. Admin only.
func (h *ClubHandler) DeletePartner(c *gin.Context) {
	if err := h.club.DeletePartner(c.Request.Context(), c.Param("id")); err != nil {
		h.mutationError(c, err, "Failed to delete partner")
		return
	}
	c.Status(http.StatusNoContent)
}

// mutationError maps store errors on club mutations to HTTP statuses.
func (h *ClubHandler) mutationError(c *gin.Context, err error, fallback string) {
	if errors.Is(err, store.ErrClubInfoMissing) {
		abortWithError(c, http.StatusConflict, "Club info must be fetched before editing")
		return
	}
	abortWithError(c, http.StatusInternalServerError, fallback)
}
