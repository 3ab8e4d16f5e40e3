package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Mahmoud-Al-Hajj/GymBuddy-sub000/internal/domain"
	"github.com/Mahmoud-Al-Hajj/GymBuddy-sub000/internal/service"
)

// PhotoHandler exposes progress-photo upload and listing.
type PhotoHandler struct {
	photoService service.PhotoService
}

// NewPhotoHandler creates a new PhotoHandler.
func NewPhotoHandler(photoService service.PhotoService) *PhotoHandler {
	return &PhotoHandler{photoService: photoService}
}

// --- Request Structs ---

type RequestUploadURLRequest struct {
	ContentType string `json:"contentType" binding:"required"`
}

type AddPhotoRequest struct {
	ObjectKey string     `json:"objectKey" binding:"required"`
	Date      *time.Time `json:"date"`
}

// --- Handler Methods ---

// RequestUploadURL returns a presigned PUT URL the client uploads the
// image to, plus the object key it reports back on confirmation.
func (h *PhotoHandler) RequestUploadURL(c *gin.Context) {
	userID, workoutID, ok := userAndPathID(c, "id")
	if !ok {
		return
	}
	var req RequestUploadURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	resp, err := h.photoService.RequestUploadURL(c.Request.Context(), userID, workoutID, req.ContentType)
	if err != nil {
		handlePhotoError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// AddPhoto confirms a finished upload and stores the photo's URL against
// the workout.
func (h *PhotoHandler) AddPhoto(c *gin.Context) {
	userID, workoutID, ok := userAndPathID(c, "id")
	if !ok {
		return
	}
	var req AddPhotoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}
	photo, err := h.photoService.AddPhoto(c.Request.Context(), userID, workoutID, req.ObjectKey, req.Date)
	if err != nil {
		handlePhotoError(c, err)
		return
	}
	c.JSON(http.StatusCreated, photo)
}

// ListPhotos returns the photos attached to a workout.
func (h *PhotoHandler) ListPhotos(c *gin.Context) {
	userID, workoutID, ok := userAndPathID(c, "id")
	if !ok {
		return
	}
	photos, err := h.photoService.ListPhotos(c.Request.Context(), userID, workoutID)
	if err != nil {
		handlePhotoError(c, err)
		return
	}
	if photos == nil {
		photos = []domain.ProgressPhoto{}
	}
	c.JSON(http.StatusOK, photos)
}

// DeletePhoto removes a photo row and its stored object.
func (h *PhotoHandler) DeletePhoto(c *gin.Context) {
	userID, photoID, ok := userAndPathID(c, "id")
	if !ok {
		return
	}
	if err := h.photoService.DeletePhoto(c.Request.Context(), userID, photoID); err != nil {
		handlePhotoError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// handlePhotoError maps photo service errors to HTTP status codes.
func handlePhotoError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPhotoNotFound), errors.Is(err, service.ErrWorkoutNotFound):
		abortWithError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrInvalidContentType):
		abortWithError(c, http.StatusBadRequest, err.Error())
	default:
		abortWithError(c, http.StatusInternalServerError, "An unexpected error occurred.")
	}
}
