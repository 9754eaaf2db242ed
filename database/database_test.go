package database

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"smartkart/models"
)

func openDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	return db
}

func TestEnsureAdminCreatesAccount(t *testing.T) {
	db := openDB(t)

	require.NoError(t, EnsureAdmin(db, "admin@smartkartstore.com", "changeme"))

	var admin models.User
	require.NoError(t, db.Where("email = ?", "admin@smartkartstore.com").First(&admin).Error)
	require.Equal(t, models.RoleAdmin, admin.Role)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("changeme")))
}

func TestEnsureAdminIsIdempotent(t *testing.T) {
	db := openDB(t)

	require.NoError(t, EnsureAdmin(db, "admin@smartkartstore.com", "changeme"))
	require.NoError(t, EnsureAdmin(db, "admin@smartkartstore.com", "changeme"))

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	require.Equal(t, int64(1), count)
}

func TestEnsureAdminPromotesExistingUser(t *testing.T) {
	db := openDB(t)
	user := models.User{
		Name:         "Someone",
		Email:        "admin@smartkartstore.com",
		PasswordHash: "x",
		Role:         models.RoleCustomer,
	}
	require.NoError(t, db.Create(&user).Error)

	require.NoError(t, EnsureAdmin(db, "admin@smartkartstore.com", "changeme"))

	var reloaded models.User
	require.NoError(t, db.First(&reloaded, user.ID).Error)
	require.Equal(t, models.RoleAdmin, reloaded.Role)
	// the existing password is kept, not overwritten
	require.Equal(t, "x", reloaded.PasswordHash)
}

func TestEnsureAdminRequiresCredentials(t *testing.T) {
	db := openDB(t)
	require.Error(t, EnsureAdmin(db, "", "changeme"))
	require.Error(t, EnsureAdmin(db, "admin@smartkartstore.com", ""))
}
