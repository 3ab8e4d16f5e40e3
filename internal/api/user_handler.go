package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Mahmoud-Al-Hajj/GymBuddy-sub000/internal/domain"
	"github.com/Mahmoud-Al-Hajj/GymBuddy-sub000/internal/service"
)

// UserHandler exposes profile and settings maintenance.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// --- Request Structs ---

type UpdateProfileRequest struct {
	Gender *string  `json:"gender"`
	Age    *int     `json:"age" binding:"omitempty,gte=0"`
	Weight *float64 `json:"weight" binding:"omitempty,gte=0"`
	Height *float64 `json:"height" binding:"omitempty,gte=0"`
}

type UpdateSettingsRequest struct {
	WeightUnit   *domain.WeightUnit `json:"weightUnit" binding:"omitempty,oneof=kg lb"`
	DefaultSets  *int               `json:"defaultSets" binding:"omitempty,gt=0"`
	DefaultReps  *int               `json:"defaultReps" binding:"omitempty,gt=0"`
	RestTimerSec *int               `json:"restTimerSec" binding:"omitempty,gt=0"`
}

// --- Handler Methods ---

func (h *UserHandler) GetProfile(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}
	user, err := h.userService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		handleUserError(c, err)
		return
	}
	c.JSON(http.StatusOK, MapUserToResponse(user))
}

func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	user, err := h.userService.UpdateProfile(c.Request.Context(), userID, service.ProfilePatch{
		Gender: req.Gender,
		Age:    req.Age,
		Weight: req.Weight,
		Height: req.Height,
	})
	if err != nil {
		handleUserError(c, err)
		return
	}
	c.JSON(http.StatusOK, MapUserToResponse(user))
}

func (h *UserHandler) UpdateSettings(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}
	var req UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	user, err := h.userService.UpdateSettings(c.Request.Context(), userID, service.SettingsPatch{
		WeightUnit:   req.WeightUnit,
		DefaultSets:  req.DefaultSets,
		DefaultReps:  req.DefaultReps,
		RestTimerSec: req.RestTimerSec,
	})
	if err != nil {
		handleUserError(c, err)
		return
	}
	c.JSON(http.StatusOK, MapUserToResponse(user))
}

// DeleteAccount removes the user and everything they own.
func (h *UserHandler) DeleteAccount(c *gin.Context) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, "Unable to identify user from token.")
		return
	}
	if err := h.userService.DeleteAccount(c.Request.Context(), userID); err != nil {
		handleUserError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// handleUserError maps user service errors to HTTP status codes.
func handleUserError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrProfileValidation), errors.Is(err, service.ErrSettingsValidation):
		abortWithError(c, http.StatusBadRequest, err.Error())
	default:
		abortWithError(c, http.StatusInternalServerError, "An unexpected error occurred.")
	}
}
