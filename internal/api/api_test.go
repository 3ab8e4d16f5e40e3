package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	sqlitedriver "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	sqliterepo "github.com/Mahmoud-Al-Hajj/GymBuddy-sub000/internal/repository/sqlite"
	"github.com/Mahmoud-Al-Hajj/GymBuddy-sub000/internal/service"
)

const testJWTSecret = "api-test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

// stubFileStorage satisfies the storage interface without talking to S3.
type stubFileStorage struct{}

func (stubFileStorage) GeneratePresignedUploadURL(_ context.Context, objectKey, _ string, _ time.Duration) (string, error) {
	return "https://upload.example/" + objectKey, nil
}
func (stubFileStorage) ObjectURL(objectKey string) string       { return "https://cdn.example/" + objectKey }
func (stubFileStorage) DeleteObject(context.Context, string) error { return nil }

// setupTestRouter wires the full stack against a fresh in-memory database.
// redisClient may be nil, matching production with Redis unconfigured.
func setupTestRouter(t *testing.T, redisClient *redis.Client) (*gin.Engine, *gorm.DB) {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlitedriver.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, sqliterepo.Migrate(db))

	userRepo := sqliterepo.NewUserRepository(db)
	workoutRepo := sqliterepo.NewWorkoutRepository(db)

	router := gin.New()
	SetupRoutes(router, RouteDeps{
		JWTSecret:      testJWTSecret,
		AuthService:    service.NewAuthService(userRepo, testJWTSecret, time.Hour),
		UserService:    service.NewUserService(userRepo),
		WorkoutService: service.NewWorkoutService(workoutRepo, sqliterepo.NewExerciseRepository(db)),
		PBService:      service.NewPersonalBestService(sqliterepo.NewPersonalBestRepository(db), workoutRepo),
		PhotoService:   service.NewPhotoService(sqliterepo.NewProgressPhotoRepository(db), workoutRepo, stubFileStorage{}),
		RedisClient:    redisClient,
		IdempotencyTTL: time.Minute,
	})
	return router, db
}

// registerAndLogin creates a user through the real endpoints and returns a
// bearer token.
func registerAndLogin(t *testing.T, router *gin.Engine, username string) string {
	t.Helper()
	register := map[string]string{
		"username": username,
		"email":    username + "@example.com",
		"password": "password123",
	}
	w := doJSON(t, router, http.MethodPost, "/api/v1/auth/register", register, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	login := map[string]string{"email": register["email"], "password": register["password"]}
	w = doJSON(t, router, http.MethodPost, "/api/v1/auth/login", login, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

// doJSON performs a request with an optional JSON body and bearer token.
func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
