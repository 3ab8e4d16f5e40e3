package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/Mahmoud-Al-Hajj/GymBuddy-sub000/internal/service"
)

// RouteDeps bundles everything SetupRoutes needs. RedisClient is optional;
// when nil the personal-best route runs without idempotency replay.
type RouteDeps struct {
	JWTSecret      string
	AuthService    service.AuthService
	UserService    service.UserService
	WorkoutService service.WorkoutService
	PBService      service.PersonalBestService
	PhotoService   service.PhotoService
	RedisClient    *redis.Client
	IdempotencyTTL time.Duration
}

// SetupRoutes wires all handlers into the Gin engine.
func SetupRoutes(router *gin.Engine, deps RouteDeps) {
	authHandler := NewAuthHandler(deps.AuthService)
	userHandler := NewUserHandler(deps.UserService)
	workoutHandler := NewWorkoutHandler(deps.WorkoutService)
	pbHandler := NewPersonalBestHandler(deps.PBService)
	photoHandler := NewPhotoHandler(deps.PhotoService)

	authMiddleware := AuthMiddleware(deps.JWTSecret)

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
		protected.GET("/me", func(c *gin.Context) {
			userID, err := getUserIDFromContext(c)
			if err != nil {
				abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
				return
			}
			c.JSON(http.StatusOK, gin.H{"userId": userID})
		})

		// --- Profile & Settings ---
		protected.GET("/profile", userHandler.GetProfile)
		protected.PUT("/profile", userHandler.UpdateProfile)
		protected.PUT("/settings", userHandler.UpdateSettings)
		protected.DELETE("/account", userHandler.DeleteAccount)

		// --- Workout Aggregate ---
		workoutGroup := protected.Group("/workouts")
		{
			workoutGroup.POST("", workoutHandler.CreateWorkout)
			workoutGroup.GET("", workoutHandler.ListWorkouts)
			workoutGroup.GET("/:id", workoutHandler.GetWorkout)
			workoutGroup.PUT("/:id", workoutHandler.UpdateWorkout)
			workoutGroup.DELETE("/:id", workoutHandler.DeleteWorkout)
			workoutGroup.POST("/:id/exercises", workoutHandler.AddExercise)

			// --- Progress Photos (scoped to a workout) ---
			workoutGroup.POST("/:id/photos/upload-url", photoHandler.RequestUploadURL)
			workoutGroup.POST("/:id/photos", photoHandler.AddPhoto)
			workoutGroup.GET("/:id/photos", photoHandler.ListPhotos)
		}

		exerciseGroup := protected.Group("/exercises")
		{
			exerciseGroup.PUT("/:id", workoutHandler.UpdateExercise)
			exerciseGroup.DELETE("/:id", workoutHandler.DeleteExercise)
			exerciseGroup.PATCH("/:id/complete", workoutHandler.SetExerciseCompleted)
		}

		// --- Personal Bests ---
		pbGroup := protected.Group("/personal-bests")
		{
			// Recording is a non-idempotent append; clients that retry send
			// an idempotency key and get the first response replayed.
			recordHandlers := []gin.HandlerFunc{pbHandler.RecordPersonalBest}
			if deps.RedisClient != nil {
				recordHandlers = append([]gin.HandlerFunc{IdempotencyMiddleware(deps.RedisClient, deps.IdempotencyTTL)}, recordHandlers...)
			}
			pbGroup.POST("", recordHandlers...)
			pbGroup.GET("", pbHandler.ListPersonalBests)
			pbGroup.GET("/best", pbHandler.GetBestForExercise)
			pbGroup.DELETE("/:id", pbHandler.DeletePersonalBest)
		}

		protected.DELETE("/photos/:id", photoHandler.DeletePhoto)
	}
}
