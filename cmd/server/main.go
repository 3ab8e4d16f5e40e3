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

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/Mahmoud-Al-Hajj/GymBuddy-sub000/internal/api"
	"github.com/Mahmoud-Al-Hajj/GymBuddy-sub000/internal/config"
	"github.com/Mahmoud-Al-Hajj/GymBuddy-sub000/internal/repository/sqlite"
	"github.com/Mahmoud-Al-Hajj/GymBuddy-sub000/internal/service"
	"github.com/Mahmoud-Al-Hajj/GymBuddy-sub000/internal/storage"
)

// @title GymBuddy API
// @version 1.0
// @description API for logging workouts, exercises, personal bests, and progress photos.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	log.Println("Starting GymBuddy server...")

	// --- Configuration ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: Could not load config: %v", err)
	}
	log.Println("Configuration loaded.")

	// --- Database ---
	db, err := sqlite.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("FATAL: Could not open database at %s: %v", cfg.Database.Path, err)
	}
	log.Printf("Database ready at %s.", cfg.Database.Path)

	// --- Object Storage ---
	fileStorage, err := storage.NewS3Storage(cfg.S3)
	if err != nil {
		log.Fatalf("FATAL: Failed to initialize S3 storage: %v", err)
	}

	// --- Optional Redis (idempotency cache) ---
	var redisClient *redis.Client
	if cfg.Redis.Address != "" {
		redisClient = redis.NewClient(&redis.Options{Addr: cfg.Redis.Address})
		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			log.Printf("ERROR: Redis unreachable at %s, idempotency replay disabled: %v", cfg.Redis.Address, err)
			redisClient = nil
		}
		cancel()
	}

	// --- Repositories ---
	userRepo := sqlite.NewUserRepository(db)
	workoutRepo := sqlite.NewWorkoutRepository(db)
	exerciseRepo := sqlite.NewExerciseRepository(db)
	personalBestRepo := sqlite.NewPersonalBestRepository(db)
	photoRepo := sqlite.NewProgressPhotoRepository(db)

	// --- Services ---
	authService := service.NewAuthService(userRepo, cfg.JWT.Secret, cfg.JWT.Expiration)
	userService := service.NewUserService(userRepo)
	workoutService := service.NewWorkoutService(workoutRepo, exerciseRepo)
	personalBestService := service.NewPersonalBestService(personalBestRepo, workoutRepo)
	photoService := service.NewPhotoService(photoRepo, workoutRepo, fileStorage)

	// --- Router ---
	router := gin.Default() // Includes Logger and Recovery middleware
	api.SetupRoutes(router, api.RouteDeps{
		JWTSecret:      cfg.JWT.Secret,
		AuthService:    authService,
		UserService:    userService,
		WorkoutService: workoutService,
		PBService:      personalBestService,
		PhotoService:   photoService,
		RedisClient:    redisClient,
		IdempotencyTTL: cfg.Redis.IdempotencyTTL,
	})

	// --- HTTP Server ---
	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("Server listening on %s", cfg.Server.Address)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("FATAL: ListenAndServe error: %v", err)
		}
	}()

	// --- Graceful Shutdown ---
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
