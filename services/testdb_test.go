package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"travel-backend/config"
	"travel-backend/models"
)

// newTestDB opens a private in-memory sqlite database with foreign keys on.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), config.GormConfig(zap.NewNop()))
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, config.Migrate(db))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	svc := NewIdentityService(db, bcrypt.MinCost)
	u, err := svc.Signup(context.Background(), SignupInput{
		Username: username,
		Email:    username + "@example.com",
		Phone:    "555-0100",
		Address:  "1 Main St",
		Password: "secret123",
	})
	require.NoError(t, err)
	return u
}

func seedDestination(t *testing.T, db *gorm.DB, name, typ string, rating float64) *models.Destination {
	t.Helper()
	d := &models.Destination{Name: name, Type: typ, Rating: rating}
	require.NoError(t, NewCatalogService(db).CreateDestination(context.Background(), d))
	return d
}
