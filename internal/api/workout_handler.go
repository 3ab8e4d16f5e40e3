package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Mahmoud-Al-Hajj/GymBuddy-sub000/internal/domain"
	"github.com/Mahmoud-Al-Hajj/GymBuddy-sub000/internal/service"
)

// WorkoutHandler exposes the workout aggregate and its exercises over HTTP.
type WorkoutHandler struct {
	workoutService service.WorkoutService
}

// NewWorkoutHandler creates a new WorkoutHandler.
func NewWorkoutHandler(workoutService service.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{workoutService: workoutService}
}

// --- Request Structs ---

type ExerciseRequest struct {
	Name   string   `json:"name" binding:"required"`
	Sets   int      `json:"sets" binding:"required,gt=0"`
	Reps   int      `json:"reps" binding:"required,gt=0"`
	Weight *float64 `json:"weight" binding:"omitempty,gte=0"`
}

type CreateWorkoutRequest struct {
	Name      string            `json:"name" binding:"required"`
	Date      *time.Time        `json:"date"`
	Exercises []ExerciseRequest `json:"exercises" binding:"required,min=1,dive"`
}

type UpdateWorkoutRequest struct {
	Name *string    `json:"name"`
	Date *time.Time `json:"date"`
}

type UpdateExerciseRequest struct {
	Name   *string  `json:"name"`
	Sets   *int     `json:"sets" binding:"omitempty,gt=0"`
	Reps   *int     `json:"reps" binding:"omitempty,gt=0"`
	Weight *float64 `json:"weight" binding:"omitempty,gte=0"`
}

type SetCompletedRequest struct {
	Completed *bool `json:"completed" binding:"required"`
}

// --- Handler Methods ---

// CreateWorkout godoc
// @Summary Create a workout with its exercises
// @Description Creates the workout and every exercise in one transaction; a workout needs at least one exercise.
// @Tags Workouts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param workout body CreateWorkoutRequest true "Workout and exercises"
// @Success 201 {object} domain.Workout "Created workout with exercises"
// @Failure 400 {object} gin.H "Empty exercise list or invalid exercise fields"
// @Router /workouts [post]
func (h *WorkoutHandler) CreateWorkout(c *gin.Context) {
	var req CreateWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	input := service.CreateWorkoutInput{
		Name:      req.Name,
		Date:      req.Date,
		Exercises: make([]service.ExerciseInput, len(req.Exercises)),
	}
	for i, ex := range req.Exercises {
		input.Exercises[i] = service.ExerciseInput{
			Name:   ex.Name,
			Sets:   ex.Sets,
			Reps:   ex.Reps,
			Weight: ex.Weight,
		}
	}

	workout, err := h.workoutService.CreateWorkout(c.Request.Context(), userID, input)
	if err != nil {
		handleWorkoutError(c, err)
		return
	}
	c.JSON(http.StatusCreated, workout)
}

// ListWorkouts returns the user's workouts, most recent date first.
func (h *WorkoutHandler) ListWorkouts(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}
	workouts, err := h.workoutService.GetWorkoutsByUser(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve workouts.")
		return
	}
	if workouts == nil {
		workouts = []domain.Workout{} // Return empty JSON array, not null
	}
	c.JSON(http.StatusOK, workouts)
}

// GetWorkout returns one workout with exercises, personal bests and
// progress photos attached.
func (h *WorkoutHandler) GetWorkout(c *gin.Context) {
	userID, workoutID, ok := userAndPathID(c, "id")
	if !ok {
		return
	}
	workout, err := h.workoutService.GetWorkoutByID(c.Request.Context(), userID, workoutID)
	if err != nil {
		handleWorkoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, workout)
}

// UpdateWorkout applies a partial name/date update.
func (h *WorkoutHandler) UpdateWorkout(c *gin.Context) {
	userID, workoutID, ok := userAndPathID(c, "id")
	if !ok {
		return
	}
	var req UpdateWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	workout, err := h.workoutService.UpdateWorkout(c.Request.Context(), userID, workoutID, service.WorkoutPatch{
		Name: req.Name,
		Date: req.Date,
	})
	if err != nil {
		handleWorkoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, workout)
}

// DeleteWorkout removes the workout and everything referencing it.
func (h *WorkoutHandler) DeleteWorkout(c *gin.Context) {
	userID, workoutID, ok := userAndPathID(c, "id")
	if !ok {
		return
	}
	if err := h.workoutService.DeleteWorkout(c.Request.Context(), userID, workoutID); err != nil {
		handleWorkoutError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// AddExercise appends one exercise to an existing workout.
func (h *WorkoutHandler) AddExercise(c *gin.Context) {
	userID, workoutID, ok := userAndPathID(c, "id")
	if !ok {
		return
	}
	var req ExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	exercise, err := h.workoutService.AddExercise(c.Request.Context(), userID, workoutID, service.ExerciseInput{
		Name:   req.Name,
		Sets:   req.Sets,
		Reps:   req.Reps,
		Weight: req.Weight,
	})
	if err != nil {
		handleWorkoutError(c, err)
		return
	}
	c.JSON(http.StatusCreated, exercise)
}

// UpdateExercise applies a partial update to one exercise.
func (h *WorkoutHandler) UpdateExercise(c *gin.Context) {
	userID, exerciseID, ok := userAndPathID(c, "id")
	if !ok {
		return
	}
	var req UpdateExerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	exercise, err := h.workoutService.UpdateExercise(c.Request.Context(), userID, exerciseID, service.ExercisePatch{
		Name:   req.Name,
		Sets:   req.Sets,
		Reps:   req.Reps,
		Weight: req.Weight,
	})
	if err != nil {
		handleWorkoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, exercise)
}

// DeleteExercise removes one exercise from its workout.
func (h *WorkoutHandler) DeleteExercise(c *gin.Context) {
	userID, exerciseID, ok := userAndPathID(c, "id")
	if !ok {
		return
	}
	if err := h.workoutService.DeleteExercise(c.Request.Context(), userID, exerciseID); err != nil {
		handleWorkoutError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SetExerciseCompleted sets the completed flag on an exercise.
func (h *WorkoutHandler) SetExerciseCompleted(c *gin.Context) {
	userID, exerciseID, ok := userAndPathID(c, "id")
	if !ok {
		return
	}
	var req SetCompletedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	exercise, err := h.workoutService.SetExerciseCompleted(c.Request.Context(), userID, exerciseID, *req.Completed)
	if err != nil {
		handleWorkoutError(c, err)
		return
	}
	c.JSON(http.StatusOK, exercise)
}

// --- Helpers ---

// userAndPathID resolves the authenticated user and a numeric path
// parameter, writing the error response itself on failure.
func userAndPathID(c *gin.Context, param string) (userID, pathID uint, ok bool) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return 0, 0, false
	}
	raw, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Invalid %s in path.", param))
		return 0, 0, false
	}
	return userID, uint(raw), true
}

// handleWorkoutError maps workout service errors to HTTP status codes.
func handleWorkoutError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrWorkoutNotFound), errors.Is(err, service.ErrExerciseNotFound):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrWorkoutValidation),
		errors.Is(err, service.ErrWorkoutNameMissing),
		errors.Is(err, service.ErrExerciseValidation):
		abortWithError(c, http.StatusBadRequest, err.Error())
	default:
		abortWithError(c, http.StatusInternalServerError, "An unexpected error occurred.")
	}
}
