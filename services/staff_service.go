package services

import (
	"context"

	"crm/constants"
	"crm/dto"
	apperrors "crm/errors"
	"crm/models"
	"crm/services/logger"

	"gorm.io/gorm"
)

// StaffService manages hr and developer accounts.
type StaffService struct {
	db     *gorm.DB
	logger logger.Logger
}

type StaffServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
}

func NewStaffService(opts StaffServiceOptions) *StaffService {
	if opts.Logger == nil {
		opts.Logger = logger.Nop{}
	}
	return &StaffService{db: opts.DB, logger: opts.Logger}
}

func (s *StaffService) Create(ctx context.Context, input dto.CreateStaffRequest) (models.User, error) {
	if !constants.Contains(constants.StaffRoles, input.Role) {
		return models.User{}, apperrors.Validation("Invalid role")
	}

	email := normalizeEmail(input.Email)
	if err := s.ensureEmailFree(ctx, email, 0); err != nil {
		return models.User{}, err
	}

	hashed, err := HashPassword(input.Password)
	if err != nil {
		return models.User{}, err
	}

	user := models.User{
		Name:     input.Name,
		Email:    email,
		Phone:    input.Phone,
		Password: hashed,
		Role:     input.Role,
		Status:   constants.UserStatusActive,
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		if isDuplicate(err) {
			return models.User{}, apperrors.Conflict("Email already exists")
		}
		return models.User{}, apperrors.Server("Could not create staff", err)
	}

	s.logger.Info("created %s account %d", user.Role, user.ID)
	return user, nil
}

func (s *StaffService) List(ctx context.Context) ([]models.User, error) {
	var staff []models.User
	if err := s.db.WithContext(ctx).
		Where("role IN ?", constants.StaffRoles).
		Order("created_at DESC").
		Find(&staff).Error; err != nil {
		return nil, apperrors.Server("Could not load staff", err)
	}
	return staff, nil
}

func (s *StaffService) Update(ctx context.Context, id uint, input dto.UpdateStaffRequest) (models.User, error) {
	user, err := s.find(ctx, id)
	if err != nil {
		return models.User{}, err
	}

	updates := map[string]interface{}{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Phone != nil {
		updates["phone"] = *input.Phone
	}
	if input.Role != nil {
		if !constants.Contains(constants.StaffRoles, *input.Role) {
			return models.User{}, apperrors.Validation("Invalid role")
		}
		updates["role"] = *input.Role
	}
	if input.Email != nil {
		email := normalizeEmail(*input.Email)
		if email != user.Email {
			if err := s.ensureEmailFree(ctx, email, user.ID); err != nil {
				return models.User{}, err
			}
			updates["email"] = email
		}
	}
	if len(updates) == 0 {
		return user, nil
	}

	if err := s.db.WithContext(ctx).Model(&user).Updates(updates).Error; err != nil {
		if isDuplicate(err) {
			return models.User{}, apperrors.Conflict("Email already exists")
		}
		return models.User{}, apperrors.Server("Could not update staff", err)
	}
	return s.find(ctx, id)
}

func (s *StaffService) Delete(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).
		Where("id = ? AND role IN ?", id, constants.StaffRoles).
		Delete(&models.User{})
	if res.Error != nil {
		return apperrors.Server("Could not delete staff", res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound("Staff not found")
	}
	s.logger.Info("deleted staff %d", id)
	return nil
}

func (s *StaffService) SetStatus(ctx context.Context, id uint, status string) (models.User, error) {
	if !constants.Contains(constants.UserStatuses, status) {
		return models.User{}, apperrors.Validation("Invalid status")
	}

	user, err := s.find(ctx, id)
	if err != nil {
		return models.User{}, err
	}
	if err := s.db.WithContext(ctx).Model(&user).Update("status", status).Error; err != nil {
		return models.User{}, apperrors.Server("Could not update status", err)
	}
	user.Status = status
	return user, nil
}

func (s *StaffService) find(ctx context.Context, id uint) (models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("id = ? AND role IN ?", id, constants.StaffRoles).First(&user).Error
	if err != nil {
		if isNotFound(err) {
			return models.User{}, apperrors.NotFound("Staff not found")
		}
		return models.User{}, apperrors.Server("Could not load staff", err)
	}
	return user, nil
}

func (s *StaffService) ensureEmailFree(ctx context.Context, email string, exceptID uint) error {
	var count int64
	q := s.db.WithContext(ctx).Model(&models.User{}).Where("email = ?", email)
	if exceptID != 0 {
		q = q.Where("id <> ?", exceptID)
	}
	if err := q.Count(&count).Error; err != nil {
		return apperrors.Server("Could not check email", err)
	}
	if count > 0 {
		return apperrors.Conflict("Email already exists")
	}
	return nil
}
