package app

import (
	"io"
	"log/slog"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/primeacres/realty/internal/hash"
	"github.com/primeacres/realty/internal/models"
)

func initTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Admin{}))
	return db
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSeedDefaultAdmin(t *testing.T) {
	db := initTestDB(t)

	require.NoError(t, SeedDefaultAdmin(db, "admin", "admin123", discardLogger()))

	var admin models.Admin
	require.NoError(t, db.Where("username = ?", "admin").First(&admin).Error)
	require.NotEqual(t, "admin123", admin.PasswordHash)
	require.True(t, hash.CheckPassword(admin.PasswordHash, "admin123"))
}

func TestSeedDefaultAdminIsIdempotent(t *testing.T) {
	db := initTestDB(t)

	require.NoError(t, SeedDefaultAdmin(db, "admin", "admin123", discardLogger()))
	require.NoError(t, SeedDefaultAdmin(db, "admin", "admin123", discardLogger()))

	var count int64
	require.NoError(t, db.Model(&models.Admin{}).Count(&count).Error)
	require.EqualValues(t, 1, count)
}
