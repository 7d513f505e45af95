package api

import (
	"fmt"
	"log"
	"net/http"

	"rapidbudapest/club-app/internal/domain"
	"rapidbudapest/club-app/internal/storage"
	"rapidbudapest/club-app/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// VideoHandler fronts the video catalog and the media storage behind it.
// Media may be nil when no object storage is configured; the presign
// endpoints then return 501.
type VideoHandler struct {
	videos *store.VideosStore
	media  storage.MediaStorage
}

// NewVideoHandler creates a new VideoHandler.
func NewVideoHandler(videos *store.VideosStore, media storage.MediaStorage) *VideoHandler {
	return &VideoHandler{videos: videos, media: media}
}

// --- Request/Response Structs ---

type CreateVideoRequest struct {
	Title        string   `json:"title" binding:"required"`
	Description  string   `json:"description"`
	ThumbnailURL string   `json:"thumbnailUrl"`
	VideoURL     string   `json:"videoUrl"`
	ObjectKey    string   `json:"objectKey"`
	Duration     int      `json:"duration" binding:"min=0"`
	Category     string   `json:"category" binding:"required"`
	Tags         []string `json:"tags"`
}

type UploadURLRequest struct {
	ContentType string `json:"contentType" binding:"required"`
}

type UploadURLResponse struct {
	UploadURL string `json:"uploadUrl"`
	ObjectKey string `json:"objectKey"`
}

type PlaybackURLResponse struct {
	PlaybackURL string `json:"playbackUrl"`
}

type CategoriesResponse struct {
	Categories []string `json:"categories"`
	InUse      []string `json:"inUse"`
}

// --- Handler Methods ---

// Refresh re-fetches the catalog from the backend.
func (h *VideoHandler) Refresh(c *gin.Context) {
	if err := h.videos.Fetch(c.Request.Context()); err != nil {
		abortWithError(c, http.StatusBadGateway, "Failed to fetch videos")
		return
	}
	c.JSON(http.StatusOK, h.videos.Videos())
}

// ListVideos returns the cached catalog, optionally filtered by ?category=.
func (h *VideoHandler) ListVideos(c *gin.Context) {
	if category, ok := c.GetQuery("category"); ok {
		c.JSON(http.StatusOK, h.videos.ByCategory(category))
		return
	}
	c.JSON(http.StatusOK, h.videos.Videos())
}

// GetVideo returns a single catalog entry by id.
func (h *VideoHandler) GetVideo(c *gin.Context) {
	video := h.videos.VideoByID(c.Param("id"))
	if video == nil {
		abortWithError(c, http.StatusNotFound, "Video not found")
		return
	}
	c.JSON(http.StatusOK, video)
}

// ListCategories returns the curated taxonomy alongside the categories
// actually present in the catalog.
func (h *VideoHandler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, CategoriesResponse{
		Categories: h.videos.Categories(),
		InUse:      h.videos.CategoriesInUse(),
	})
}

// CreateVideo adds a catalog entry. Admin or coach only.
func (h *VideoHandler) CreateVideo(c *gin.Context) {
	var req CreateVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
		return
	}

	video, err := h.videos.Add(c.Request.Context(), domain.Video{
		Title:        req.Title,
		Description:  req.Description,
		ThumbnailURL: req.ThumbnailURL,
		VideoURL:     req.VideoURL,
		ObjectKey:    req.ObjectKey,
		Duration:     req.Duration,
		Category:     req.Category,
		Tags:         req.Tags,
		CreatedBy:    userID,
	})
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to create video")
		return
	}
	c.JSON(http.StatusCreated, video)
}

// DeleteVideo removes a catalog entry and its stored media, if any.
func (h *VideoHandler) DeleteVideo(c *gin.Context) {
	id := c.Param("id")
	video := h.videos.VideoByID(id)

	if err := h.videos.Delete(c.Request.Context(), id); err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to delete video")
		return
	}

	// Metadata is gone; losing the object is recoverable by a cleanup job.
	if h.media != nil && video != nil && video.ObjectKey != "" {
		if err := h.media.DeleteObject(c.Request.Context(), video.ObjectKey); err != nil {
			log.Printf("WARN: failed to delete media object %s: %v", video.ObjectKey, err)
		}
	}
	c.Status(http.StatusNoContent)
}

// UploadURL presigns a PUT URL for a new media object. Admin or coach only.
func (h *VideoHandler) UploadURL(c *gin.Context) {
	if h.media == nil {
		abortWithError(c, http.StatusNotImplemented, "Media storage is not configured")
		return
	}

	var req UploadURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	objectKey := fmt.Sprintf("videos/%s", uuid.NewString())
	uploadURL, err := h.media.PresignUploadURL(c.Request.Context(), objectKey, req.ContentType, storage.DefaultPresignedURLExpiry)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to presign upload URL")
		return
	}
	c.JSON(http.StatusOK, UploadURLResponse{UploadURL: uploadURL, ObjectKey: objectKey})
}

// PlaybackURL presigns a GET URL for a video's media object.
func (h *VideoHandler) PlaybackURL(c *gin.Context) {
	if h.media == nil {
		abortWithError(c, http.StatusNotImplemented, "Media storage is not configured")
		return
	}

	video := h.videos.VideoByID(c.Param("id"))
	if video == nil {
		abortWithError(c, http.StatusNotFound, "Video not found")
		return
	}
	if video.ObjectKey == "" {
		// Externally hosted; the catalog URL is all there is.
		c.JSON(http.StatusOK, PlaybackURLResponse{PlaybackURL: video.VideoURL})
		return
	}

	playbackURL, err := h.media.PresignPlaybackURL(c.Request.Context(), video.ObjectKey, storage.DefaultPresignedURLExpiry)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to presign playback URL")
		return
	}
	c.JSON(http.StatusOK, PlaybackURLResponse{PlaybackURL: playbackURL})
}

// SaveOffline flags a video as saved for offline viewing.
func (h *VideoHandler) SaveOffline(c *gin.Context) {
	if err := h.videos.SaveOffline(c.Request.Context(), c.Param("id")); err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to save video")
		return
	}
	c.JSON(http.StatusOK, gin.H{"savedVideos": h.videos.SavedVideos()})
}

// RemoveSaved clears the offline flag for a video.
func (h *VideoHandler) RemoveSaved(c *gin.Context) {
	if err := h.videos.RemoveSaved(c.Request.Context(), c.Param("id")); err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to remove saved video")
		return
	}
	c.JSON(http.StatusOK, gin.H{"savedVideos": h.videos.SavedVideos()})
}

// ListSaved returns the ids flagged for offline viewing.
func (h *VideoHandler) ListSaved(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"savedVideos": h.videos.SavedVideos()})
}
