package services

import (
	"context"

	"crm/constants"
	apperrors "crm/errors"
	"crm/models"
	"crm/services/logger"

	"gorm.io/gorm"
)

// UserService moderates self-registered accounts.
type UserService struct {
	db     *gorm.DB
	logger logger.Logger
}

type UserServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
}

func NewUserService(opts UserServiceOptions) *UserService {
	if opts.Logger == nil {
		opts.Logger = logger.Nop{}
	}
	return &UserService{db: opts.DB, logger: opts.Logger}
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := s.db.WithContext(ctx).
		Where("role = ?", constants.RoleUser).
		Order("created_at DESC").
		Find(&users).Error; err != nil {
		return nil, apperrors.Server("Could not load users", err)
	}
	return users, nil
}

func (s *UserService) Approve(ctx context.Context, id uint) (models.User, error) {
	return s.setStatus(ctx, id, constants.UserStatusActive)
}

func (s *UserService) Suspend(ctx context.Context, id uint) (models.User, error) {
	return s.setStatus(ctx, id, constants.UserStatusSuspended)
}

func (s *UserService) setStatus(ctx context.Context, id uint, status string) (models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("id = ? AND role = ?", id, constants.RoleUser).First(&user).Error
	if err != nil {
		if isNotFound(err) {
			return models.User{}, apperrors.NotFound("User not found")
		}
		return models.User{}, apperrors.Server("Could not load user", err)
	}

	if err := s.db.WithContext(ctx).Model(&user).Update("status", status).Error; err != nil {
		return models.User{}, apperrors.Server("Could not update user", err)
	}
	user.Status = status
	s.logger.Info("user %d is now %s", id, status)
	return user, nil
}
