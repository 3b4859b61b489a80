package services

import (
	"context"
	"fmt"

	"crm/constants"
	"crm/models"
	"crm/services/logger"

	"gorm.io/gorm"
)

type SuperAdminSeed struct {
	Name     string
	Email    string
	Password string
}

// SeedSuperAdmin makes sure the configured superadmin exists, is active and
// has the configured password. Running it again changes nothing.
func SeedSuperAdmin(ctx context.Context, db *gorm.DB, seed SuperAdminSeed, log logger.Logger) error {
	if log == nil {
		log = logger.Nop{}
	}
	email := normalizeEmail(seed.Email)
	if email == "" || seed.Password == "" {
		log.Warn("SUPERADMIN_EMAIL or SUPERADMIN_PASSWORD not set, skipping superadmin seed")
		return nil
	}

	var user models.User
	err := db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil && !isNotFound(err) {
		return fmt.Errorf("load superadmin: %w", err)
	}

	if isNotFound(err) {
		hashed, err := HashPassword(seed.Password)
		if err != nil {
			return err
		}
		user = models.User{
			Name:     seed.Name,
			Email:    email,
			Password: hashed,
			Role:     constants.RoleSuperAdmin,
			Status:   constants.UserStatusActive,
		}
		if err := db.WithContext(ctx).Create(&user).Error; err != nil {
			return fmt.Errorf("create superadmin: %w", err)
		}
		log.Info("seeded superadmin %s", email)
		return nil
	}

	if user.Role != constants.RoleSuperAdmin {
		return fmt.Errorf("email %s already belongs to a %s account", email, user.Role)
	}

	updates := map[string]interface{}{}
	if user.Status != constants.UserStatusActive {
		updates["status"] = constants.UserStatusActive
	}
	if !checkPassword(user.Password, seed.Password) {
		hashed, err := HashPassword(seed.Password)
		if err != nil {
			return err
		}
		updates["password"] = hashed
	}
	if len(updates) == 0 {
		return nil
	}
	if err := db.WithContext(ctx).Model(&user).Updates(updates).Error; err != nil {
		return fmt.Errorf("update superadmin: %w", err)
	}
	log.Info("updated superadmin %s", email)
	return nil
}
