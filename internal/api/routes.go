package api

import (
	"net/http"
	"time"

	"rapidbudapest/club-app/internal/domain"
	"rapidbudapest/club-app/internal/storage"
	"rapidbudapest/club-app/internal/store"

	"github.com/gin-gonic/gin"
)

// Stores bundles the per-slice stores the routes are built on.
type Stores struct {
	Auth          *store.AuthStore
	Club          *store.ClubInfoStore
	Events        *store.EventsStore
	Training      *store.TrainingStore
	Videos        *store.VideosStore
	Progress      *store.ProgressStore
	Notifications *store.NotificationsStore
}

// SetupRoutes registers all API routes on the router.
func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	jwtExpiration time.Duration,
	stores Stores,
	media storage.MediaStorage,
) {
	authHandler := NewAuthHandler(stores.Auth, jwtSecret, jwtExpiration)
	clubHandler := NewClubHandler(stores.Club)
	eventHandler := NewEventHandler(stores.Events)
	trainingHandler := NewTrainingHandler(stores.Training)
	videoHandler := NewVideoHandler(stores.Videos, media)
	progressHandler := NewProgressHandler(stores.Progress)
	notificationHandler := NewNotificationHandler(stores.Notifications)

	authMiddleware := AuthMiddleware(jwtSecret)
	staffOnly := RoleMiddleware(domain.RoleAdmin, domain.RoleCoach)
	adminOnly := RoleMiddleware(domain.RoleAdmin)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")

	authGroup := apiV1.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
	}

	protected := apiV1.Group("")
	protected.Use(authMiddleware)
	{
		protected.POST("/auth/logout", authHandler.Logout)
		protected.GET("/me", authHandler.Me)
		protected.PATCH("/me", authHandler.UpdateProfile)

		// --- Member directory (admin) ---
		userGroup := protected.Group("/users", adminOnly)
		{
			userGroup.GET("", authHandler.ListUsers)
			userGroup.GET("/pending", authHandler.PendingUsers)
			userGroup.POST("/:id/approve", authHandler.ApproveUser)
			userGroup.POST("/:id/reject", authHandler.RejectUser)
			userGroup.PUT("/:id/role", authHandler.ChangeUserRole)
		}

		// --- Club profile ---
		clubGroup := protected.Group("/club")
		{
			clubGroup.GET("", clubHandler.GetClubInfo)
			clubGroup.POST("/refresh", clubHandler.Refresh)
			clubGroup.PATCH("", adminOnly, clubHandler.UpdateClubInfo)

			clubGroup.POST("/contacts", adminOnly, clubHandler.AddContact)
			clubGroup.PATCH("/contacts/:id", adminOnly, clubHandler.UpdateContact)
			clubGroup.DELETE("/contacts/:id", adminOnly, clubHandler.DeleteContact)

			clubGroup.POST("/locations", adminOnly, clubHandler.AddLocation)
			clubGroup.PATCH("/locations/:id", adminOnly, clubHandler.UpdateLocation)
			clubGroup.DELETE("/locations/:id", adminOnly, clubHandler.DeleteLocation)

			clubGroup.POST("/partners", adminOnly, clubHandler.AddPartner)
			clubGroup.PATCH("/partners/:id", adminOnly, clubHandler.UpdatePartner)
			clubGroup.DELETE("/partners/:id", adminOnly, clubHandler.DeletePartner)
		}

		// --- Calendar ---
		eventGroup := protected.Group("/events")
		{
			eventGroup.GET("", eventHandler.ListEvents)
			eventGroup.POST("/refresh", eventHandler.Refresh)
			eventGroup.GET("/:id", eventHandler.GetEvent)
			eventGroup.POST("", staffOnly, eventHandler.CreateEvent)
			eventGroup.PATCH("/:id", staffOnly, eventHandler.UpdateEvent)
			eventGroup.DELETE("/:id", staffOnly, eventHandler.DeleteEvent)
			eventGroup.PUT("/:id/reminder", eventHandler.ToggleReminder)
		}

		// --- Training plans ---
		trainingGroup := protected.Group("/training-plans")
		{
			trainingGroup.GET("", trainingHandler.ListPlans)
			trainingGroup.POST("/refresh", trainingHandler.Refresh)
			trainingGroup.GET("/:id", trainingHandler.GetPlan)
			trainingGroup.POST("", staffOnly, trainingHandler.CreatePlan)
			trainingGroup.PATCH("/:id", staffOnly, trainingHandler.UpdatePlan)
			trainingGroup.DELETE("/:id", staffOnly, trainingHandler.DeletePlan)
			trainingGroup.PUT("/:id/assignees", staffOnly, trainingHandler.AssignPlan)
		}

		// --- Video library ---
		videoGroup := protected.Group("/videos")
		{
			videoGroup.GET("", videoHandler.ListVideos)
			videoGroup.POST("/refresh", videoHandler.Refresh)
			videoGroup.GET("/categories", videoHandler.ListCategories)
			videoGroup.GET("/saved", videoHandler.ListSaved)
			videoGroup.GET("/:id", videoHandler.GetVideo)
			videoGroup.GET("/:id/playback-url", videoHandler.PlaybackURL)
			videoGroup.PUT("/:id/saved", videoHandler.SaveOffline)
			videoGroup.DELETE("/:id/saved", videoHandler.RemoveSaved)
			videoGroup.POST("", staffOnly, videoHandler.CreateVideo)
			videoGroup.POST("/upload-url", staffOnly, videoHandler.UploadURL)
			videoGroup.DELETE("/:id", staffOnly, videoHandler.DeleteVideo)
		}

		// --- Progress journal ---
		progressGroup := protected.Group("/progress")
		{
			progressGroup.GET("", progressHandler.ListEntries)
			progressGroup.POST("/refresh", progressHandler.Refresh)
			progressGroup.POST("", progressHandler.CreateEntry)
			progressGroup.PATCH("/:id", progressHandler.UpdateEntry)
			progressGroup.DELETE("/:id", progressHandler.DeleteEntry)
		}

		// --- Notifications ---
		notificationGroup := protected.Group("/notifications")
		{
			notificationGroup.GET("", notificationHandler.ListNotifications)
			notificationGroup.POST("/refresh", notificationHandler.Refresh)
			notificationGroup.GET("/unread-count", notificationHandler.UnreadCount)
			notificationGroup.POST("", staffOnly, notificationHandler.CreateNotification)
			notificationGroup.PUT("/:id/read", notificationHandler.MarkRead)
			notificationGroup.PUT("/read-all", notificationHandler.MarkAllRead)
			notificationGroup.DELETE("/:id", notificationHandler.DeleteNotification)
		}
	}
}
