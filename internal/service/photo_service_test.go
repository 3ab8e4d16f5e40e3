package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Mahmoud-Al-Hajj/GymBuddy-sub000/internal/domain"
	sqliterepo "github.com/Mahmoud-Al-Hajj/GymBuddy-sub000/internal/repository/sqlite"
)

// fakeFileStorage stands in for S3 in tests.
type fakeFileStorage struct {
	deleted []string
}

func (f *fakeFileStorage) GeneratePresignedUploadURL(_ context.Context, objectKey, _ string, _ time.Duration) (string, error) {
	return "https://upload.example/" + objectKey + "?sig=abc", nil
}

func (f *fakeFileStorage) ObjectURL(objectKey string) string {
	return "https://cdn.example/" + objectKey
}

func (f *fakeFileStorage) DeleteObject(_ context.Context, objectKey string) error {
	f.deleted = append(f.deleted, objectKey)
	return nil
}

func newPhotoFixture(t *testing.T) (PhotoService, *fakeFileStorage, *domain.User, *domain.Workout) {
	t.Helper()
	db := setupTestDB(t)
	fake := &fakeFileStorage{}
	svc := NewPhotoService(sqliterepo.NewProgressPhotoRepository(db), sqliterepo.NewWorkoutRepository(db), fake)
	user := createTestUser(t, db, "photographer")
	workout := seedWorkout(t, db, user.ID)
	return svc, fake, user, workout
}

func TestRequestUploadURL(t *testing.T) {
	svc, _, user, workout := newPhotoFixture(t)

	resp, err := svc.RequestUploadURL(testCtx, user.ID, workout.ID, "image/jpeg")
	require.NoError(t, err)
	assert.Contains(t, resp.UploadURL, resp.ObjectKey)
	assert.True(t, strings.HasSuffix(resp.ObjectKey, ".jpg"))
	assert.Equal(t, "https://cdn.example/"+resp.ObjectKey, resp.ImageURL)

	_, err = svc.RequestUploadURL(testCtx, user.ID, workout.ID, "video/mp4")
	assert.ErrorIs(t, err, ErrInvalidContentType)
	_, err = svc.RequestUploadURL(testCtx, user.ID, 9999, "image/jpeg")
	assert.ErrorIs(t, err, ErrWorkoutNotFound)
}

func TestAddAndListPhotos(t *testing.T) {
	svc, _, user, workout := newPhotoFixture(t)

	photo, err := svc.AddPhoto(testCtx, user.ID, workout.ID, "progress-photos/u/w/abc.jpg", nil)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example/progress-photos/u/w/abc.jpg", photo.ImageURL)
	assert.False(t, photo.Date.IsZero())

	photos, err := svc.ListPhotos(testCtx, user.ID, workout.ID)
	require.NoError(t, err)
	require.Len(t, photos, 1)

	_, err = svc.ListPhotos(testCtx, user.ID, 9999)
	assert.ErrorIs(t, err, ErrWorkoutNotFound)
}

func TestDeletePhotoRemovesRowAndObject(t *testing.T) {
	svc, fake, user, workout := newPhotoFixture(t)

	photo, err := svc.AddPhoto(testCtx, user.ID, workout.ID, "progress-photos/u/w/gone.jpg", nil)
	require.NoError(t, err)

	require.NoError(t, svc.DeletePhoto(testCtx, user.ID, photo.ID))
	assert.Equal(t, []string{"progress-photos/u/w/gone.jpg"}, fake.deleted)

	photos, err := svc.ListPhotos(testCtx, user.ID, workout.ID)
	require.NoError(t, err)
	assert.Empty(t, photos)

	assert.ErrorIs(t, svc.DeletePhoto(testCtx, user.ID, photo.ID), ErrPhotoNotFound)
}
