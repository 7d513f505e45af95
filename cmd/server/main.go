package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"rapidbudapest/club-app/internal/api"
	"rapidbudapest/club-app/internal/config"
	"rapidbudapest/club-app/internal/gateway"
	mockgw "rapidbudapest/club-app/internal/gateway/mock"
	mongogw "rapidbudapest/club-app/internal/gateway/mongo"
	"rapidbudapest/club-app/internal/persist"
	"rapidbudapest/club-app/internal/storage"
	"rapidbudapest/club-app/internal/store"

	"github.com/gin-gonic/gin"
)

func main() {
	log.Println("Starting Rapid Budapest Club Server...")

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("FATAL: Invalid config: %v", err)
	}
	log.Println("Configuration loaded.")

	// --- Gateways ---
	var gateways gatewaySet
	switch cfg.Backend.Mode {
	case "mock":
		log.Printf("Using mock backend (latency %v-%v, directory %s)",
			cfg.Backend.MinLatency, cfg.Backend.MaxLatency, cfg.Backend.Directory)
		gateways = mockGateways(cfg.Backend)
	case "mongo":
		dbClient, err := mongogw.ConnectDB(cfg.Database.URI)
		if err != nil {
			log.Fatalf("FATAL: Could not connect to MongoDB: %v", err)
		}
		defer func() {
			log.Println("Disconnecting MongoDB...")
			if err := mongogw.DisconnectDB(dbClient); err != nil {
				log.Printf("ERROR: Failed to disconnect MongoDB: %v", err)
			}
		}()
		appDB := dbClient.Database(cfg.Database.Name)
		log.Println("Database connection established.")

		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 1*time.Minute)
			defer cancel()
			if err := mongogw.EnsureIndexes(ctx, appDB); err != nil {
				log.Printf("WARN: Index creation failed: %v", err)
			}
		}()

		gateways = gatewaySet{
			users:         mongogw.NewUserGateway(appDB),
			club:          mongogw.NewClubGateway(appDB),
			events:        mongogw.NewEventGateway(appDB),
			training:      mongogw.NewTrainingGateway(appDB),
			videos:        mongogw.NewVideoGateway(appDB),
			progress:      mongogw.NewProgressGateway(appDB),
			notifications: mongogw.NewNotificationGateway(appDB),
		}
	default:
		log.Fatalf("FATAL: Unknown backend mode %q", cfg.Backend.Mode)
	}

	// --- Snapshot persistence ---
	var kv persist.KV
	if cfg.Redis.Address != "" {
		redisKV, err := persist.NewRedisKV(cfg.Redis.Address, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			log.Fatalf("FATAL: Could not connect to Redis: %v", err)
		}
		kv = redisKV
		log.Println("Snapshot persistence: Redis.")
	} else {
		kv = persist.NewMemoryKV()
		log.Println("Snapshot persistence: in-memory.")
	}

	// --- Media storage ---
	var media storage.MediaStorage
	if cfg.S3.BucketName != "" {
		media, err = storage.NewS3Storage(cfg.S3)
		if err != nil {
			log.Fatalf("FATAL: Failed to initialize S3 storage: %v", err)
		}
		log.Println("Media storage initialized.")
	} else {
		log.Println("WARN: No S3 bucket configured, media endpoints disabled.")
	}

	// --- Stores ---
	log.Println("Initializing stores...")
	startCtx, cancelStart := context.WithTimeout(context.Background(), 10*time.Second)
	stores := api.Stores{
		Auth:          store.NewAuthStore(startCtx, gateways.users, kv),
		Club:          store.NewClubInfoStore(startCtx, gateways.club, kv),
		Events:        store.NewEventsStore(startCtx, gateways.events, kv),
		Training:      store.NewTrainingStore(startCtx, gateways.training, kv),
		Videos:        store.NewVideosStore(startCtx, gateways.videos, kv),
		Progress:      store.NewProgressStore(startCtx, gateways.progress, kv),
		Notifications: store.NewNotificationsStore(startCtx, gateways.notifications, kv),
	}
	cancelStart()

	// --- Gin Engine & Routes ---
	router := gin.Default()
	log.Println("Setting up API routes...")
	api.SetupRoutes(router, cfg.JWT.Secret, cfg.JWT.Expiration, stores, media)

	// --- HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Server starting on %s", cfg.Server.Address)

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("FATAL: ListenAndServe Error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Fatalf("FATAL: Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting.")
}

// gatewaySet bundles one gateway per entity so mock and mongo wiring stay
// symmetric.
type gatewaySet struct {
	users         gateway.UserGateway
	club          gateway.ClubGateway
	events        gateway.EventGateway
	training      gateway.TrainingGateway
	videos        gateway.VideoGateway
	progress      gateway.ProgressGateway
	notifications gateway.NotificationGateway
}

func mockGateways(cfg config.BackendConfig) gatewaySet {
	latency := mockgw.Latency{Min: cfg.MinLatency, Max: cfg.MaxLatency}
	mode := gateway.DirectoryStatic
	if cfg.Directory == "mutable" {
		mode = gateway.DirectoryMutable
	}
	return gatewaySet{
		users:         mockgw.NewUserGateway(latency, mode),
		club:          mockgw.NewClubGateway(latency),
		events:        mockgw.NewEventGateway(latency),
		training:      mockgw.NewTrainingGateway(latency),
		videos:        mockgw.NewVideoGateway(latency),
		progress:      mockgw.NewProgressGateway(latency),
		notifications: mockgw.NewNotificationGateway(latency),
	}
}
