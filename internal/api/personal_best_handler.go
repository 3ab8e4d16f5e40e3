package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mahmoud-Al-Hajj/GymBuddy-sub000/internal/domain"
	"github.com/Mahmoud-Al-Hajj/GymBuddy-sub000/internal/service"
)

// PersonalBestHandler exposes the record history over HTTP.
type PersonalBestHandler struct {
	personalBestService service.PersonalBestService
}

// NewPersonalBestHandler creates a new PersonalBestHandler.
func NewPersonalBestHandler(personalBestService service.PersonalBestService) *PersonalBestHandler {
	return &PersonalBestHandler{personalBestService: personalBestService}
}

// --- Request/Response Structs ---

type RecordPersonalBestRequest struct {
	WorkoutID    uint    `json:"workoutId" binding:"required"`
	ExerciseName string  `json:"exerciseName" binding:"required"`
	Weight       float64 `json:"weight" binding:"required,gt=0"`
	Reps         int     `json:"reps" binding:"required,gt=0"`
}

// RecordPersonalBestResponse reports whether the submission set a new
// record. "Not an improvement" comes back as 200 with Improved=false and
// no record, which is the expected outcome for most submissions.
type RecordPersonalBestResponse struct {
	Improved     bool                 `json:"improved"`
	PersonalBest *domain.PersonalBest `json:"personalBest,omitempty"`
}

// --- Handler Methods ---

// RecordPersonalBest godoc
// @Summary Submit an exercise performance as a personal-best candidate
// @Description Appends a new history entry when the weight strictly beats the current best for the exercise.
// @Tags PersonalBests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param candidate body RecordPersonalBestRequest true "Performance to evaluate"
// @Success 201 {object} RecordPersonalBestResponse "New record created"
// @Success 200 {object} RecordPersonalBestResponse "Not an improvement"
// @Failure 404 {object} gin.H "Workout not found"
// @Router /personal-bests [post]
func (h *PersonalBestHandler) RecordPersonalBest(c *gin.Context) {
	var req RecordPersonalBestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}

	pb, improved, err := h.personalBestService.RecordIfBest(c.Request.Context(), userID, req.WorkoutID, req.ExerciseName, req.Weight, req.Reps)
	if err != nil {
		handlePersonalBestError(c, err)
		return
	}
	if !improved {
		c.JSON(http.StatusOK, RecordPersonalBestResponse{Improved: false})
		return
	}
	c.JSON(http.StatusCreated, RecordPersonalBestResponse{Improved: true, PersonalBest: pb})
}

// ListPersonalBests returns the user's full history, most recent first.
func (h *PersonalBestHandler) ListPersonalBests(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}
	bests, err := h.personalBestService.ListPersonalBests(c.Request.Context(), userID)
	if err != nil {
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve personal bests.")
		return
	}
	if bests == nil {
		bests = []domain.PersonalBest{}
	}
	c.JSON(http.StatusOK, bests)
}

// GetBestForExercise returns the current best for ?exercise=<name>.
func (h *PersonalBestHandler) GetBestForExercise(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}
	exerciseName := c.Query("exercise")
	if exerciseName == "" {
		abortWithError(c, http.StatusBadRequest, "Query parameter 'exercise' is required.")
		return
	}
	best, err := h.personalBestService.GetBestForExercise(c.Request.Context(), userID, exerciseName)
	if err != nil {
		handlePersonalBestError(c, err)
		return
	}
	c.JSON(http.StatusOK, best)
}

// DeletePersonalBest removes one history entry by id.
func (h *PersonalBestHandler) DeletePersonalBest(c *gin.Context) {
	userID, id, ok := userAndPathID(c, "id")
	if !ok {
		return
	}
	if err := h.personalBestService.DeletePersonalBest(c.Request.Context(), userID, id); err != nil {
		handlePersonalBestError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// handlePersonalBestError maps personal-best service errors to HTTP status codes.
func handlePersonalBestError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPersonalBestNotFound), errors.Is(err, service.ErrWorkoutNotFound):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrPersonalBestValidation):
		abortWithError(c, http.StatusBadRequest, err.Error())
	default:
		abortWithError(c, http.StatusInternalServerError, "An unexpected error occurred.")
	}
}
