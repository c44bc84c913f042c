package app

import (
	"errors"
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"github.com/primeacres/realty/internal/hash"
	"github.com/primeacres/realty/internal/models"
)

// SeedDefaultAdmin makes sure the configured admin account exists before the
// server starts accepting requests. Login itself never creates accounts.
func SeedDefaultAdmin(db *gorm.DB, username, password string, log *slog.Logger) error {
	var existing models.Admin
	err := db.Where("username = ?", username).First(&existing).Error
	if err == nil {
		log.Info("default admin already present", "username", username)
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("check existing admin: %w", err)
	}

	passwordHash, err := hash.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash default admin password: %w", err)
	}

	admin := models.Admin{Username: username, PasswordHash: passwordHash}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("insert default admin: %w", err)
	}
	log.Info("created default admin", "username", username, "id", admin.ID)
	return nil
}
