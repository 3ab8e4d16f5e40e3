package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Mahmoud-Al-Hajj/GymBuddy-sub000/internal/domain"
	"github.com/Mahmoud-Al-Hajj/GymBuddy-sub000/internal/repository"
	"github.com/Mahmoud-Al-Hajj/GymBuddy-sub000/internal/storage"
)

// --- Error Definitions ---
var (
	ErrPhotoNotFound      = errors.New("progress photo not found")
	ErrInvalidContentType = errors.New("invalid or missing image content type")
	ErrUploadURLError     = errors.New("failed to generate upload URL")
)

// UploadURLResponse structure for returning URL and object key
type UploadURLResponse struct {
	UploadURL string `json:"uploadUrl"`
	ObjectKey string `json:"objectKey"` // The key the client reports back when confirming
	ImageURL  string `json:"imageUrl"`  // The stable URL that will be stored
}

// PhotoService handles progress photos attached to a workout. The image
// itself goes straight from the client to object storage via a presigned
// URL; only the resulting URL string is persisted.
type PhotoService interface {
	RequestUploadURL(ctx context.Context, userID, workoutID uint, contentType string) (*UploadURLResponse, error)
	AddPhoto(ctx context.Context, userID, workoutID uint, objectKey string, date *time.Time) (*domain.ProgressPhoto, error)
	ListPhotos(ctx context.Context, userID, workoutID uint) ([]domain.ProgressPhoto, error)
	DeletePhoto(ctx context.Context, userID, photoID uint) error
}

// photoService implements the PhotoService interface.
type photoService struct {
	photoRepo   repository.ProgressPhotoRepository
	workoutRepo repository.WorkoutRepository
	fileStorage storage.FileStorage
}

// NewPhotoService creates a new instance of photoService.
func NewPhotoService(photoRepo repository.ProgressPhotoRepository, workoutRepo repository.WorkoutRepository, fileStorage storage.FileStorage) PhotoService {
	return &photoService{
		photoRepo:   photoRepo,
		workoutRepo: workoutRepo,
		fileStorage: fileStorage,
	}
}

// RequestUploadURL generates a presigned PUT URL for a photo upload
// against a workout owned by the user.
func (s *photoService) RequestUploadURL(ctx context.Context, userID, workoutID uint, contentType string) (*UploadURLResponse, error) {
	if !strings.HasPrefix(strings.ToLower(contentType), "image/") {
		return nil, ErrInvalidContentType
	}
	if _, err := s.workoutRepo.GetByID(ctx, userID, workoutID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}

	ext := extensionForContentType(contentType)
	objectKey := path.Join(
		"progress-photos",
		fmt.Sprintf("user_%d", userID),
		fmt.Sprintf("workout_%d", workoutID),
		uuid.NewString()+ext,
	)

	uploadURL, err := s.fileStorage.GeneratePresignedUploadURL(ctx, objectKey, contentType, storage.DefaultPresignedURLExpiry)
	if err != nil {
		return nil, ErrUploadURLError
	}
	return &UploadURLResponse{
		UploadURL: uploadURL,
		ObjectKey: objectKey,
		ImageURL:  s.fileStorage.ObjectURL(objectKey),
	}, nil
}

// AddPhoto records the uploaded photo's URL against the workout. Date
// defaults to the current time.
func (s *photoService) AddPhoto(ctx context.Context, userID, workoutID uint, objectKey string, date *time.Time) (*domain.ProgressPhoto, error) {
	if objectKey == "" {
		return nil, ErrInvalidContentType
	}
	if _, err := s.workoutRepo.GetByID(ctx, userID, workoutID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}

	photoDate := time.Now().UTC()
	if date != nil {
		photoDate = *date
	}
	photo := &domain.ProgressPhoto{
		WorkoutID: workoutID,
		ImageURL:  s.fileStorage.ObjectURL(objectKey),
		ObjectKey: objectKey,
		Date:      photoDate,
	}
	if err := s.photoRepo.Create(ctx, photo); err != nil {
		return nil, err
	}
	return photo, nil
}

// ListPhotos returns the photos attached to one of the user's workouts.
func (s *photoService) ListPhotos(ctx context.Context, userID, workoutID uint) ([]domain.ProgressPhoto, error) {
	if _, err := s.workoutRepo.GetByID(ctx, userID, workoutID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}
	return s.photoRepo.GetByWorkoutID(ctx, workoutID)
}

// DeletePhoto removes the metadata row and best-effort deletes the stored
// object. A failed object deletion is logged, not surfaced; the row is
// already gone and the bucket can be swept later.
func (s *photoService) DeletePhoto(ctx context.Context, userID, photoID uint) error {
	photo, err := s.photoRepo.GetOwned(ctx, userID, photoID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPhotoNotFound
		}
		return err
	}
	if err := s.photoRepo.Delete(ctx, photoID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPhotoNotFound
		}
		return err
	}
	if photo.ObjectKey != "" {
		if err := s.fileStorage.DeleteObject(ctx, photo.ObjectKey); err != nil {
			log.Printf("ERROR: Failed to delete photo object '%s': %v", photo.ObjectKey, err)
		}
	}
	return nil
}

func extensionForContentType(contentType string) string {
	switch strings.ToLower(contentType) {
	case "image/jpeg", "image/jpg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	case "image/heic":
		return ".heic"
	default:
		return ""
	}
}
