package service

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	sqlitedriver "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Mahmoud-Al-Hajj/GymBuddy-sub000/internal/domain"
	sqliterepo "github.com/Mahmoud-Al-Hajj/GymBuddy-sub000/internal/repository/sqlite"
)

// setupTestDB opens a fresh in-memory database for one test. The database
// is named after the test so parallel tests never share state, while
// cache=shared keeps every pooled connection on the same database.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlitedriver.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, sqliterepo.Migrate(db))
	return db
}

// createTestUser inserts a user directly; service-level registration is
// covered by the auth tests.
func createTestUser(t *testing.T, db *gorm.DB, username string) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)
	user := &domain.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: string(hash),
		WeightUnit:   domain.UnitKg,
		DefaultSets:  3,
		DefaultReps:  10,
		RestTimerSec: 60,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func ptr[T any](v T) *T { return &v }

var testCtx = context.Background()
