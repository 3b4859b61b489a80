package services

import (
	"context"
	"time"

	"crm/constants"
	"crm/dto"
	apperrors "crm/errors"
	"crm/models"
	"crm/services/logger"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AuthService struct {
	db      *gorm.DB
	tokens  *TokenService
	revoker Revoker
	google  GoogleVerifier
	logger  logger.Logger
}

type AuthServiceOptions struct {
	DB      *gorm.DB
	Tokens  *TokenService
	Revoker Revoker
	// Google may be nil when Google sign-in is not configured
	Google GoogleVerifier
	Logger logger.Logger
}

func NewAuthService(opts AuthServiceOptions) *AuthService {
	if opts.Revoker == nil {
		opts.Revoker = NoopRevoker{}
	}
	if opts.Logger == nil {
		opts.Logger = logger.Nop{}
	}
	return &AuthService{
		db:      opts.DB,
		tokens:  opts.Tokens,
		revoker: opts.Revoker,
		google:  opts.Google,
		logger:  opts.Logger,
	}
}

// Register creates an active account with role user.
func (s *AuthService) Register(ctx context.Context, input dto.RegisterInput) (models.User, error) {
	email := normalizeEmail(input.Email)

	var count int64
	if err := s.db.WithContext(ctx).Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return models.User{}, apperrors.Server("Could not check email", err)
	}
	if count > 0 {
		return models.User{}, apperrors.Conflict("User already exists")
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
		Role:     constants.RoleUser,
		Status:   constants.UserStatusActive,
	}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		if isDuplicate(err) {
			return models.User{}, apperrors.Conflict("User already exists")
		}
		return models.User{}, apperrors.Server("Could not create user", err)
	}

	s.logger.Info("registered user %d", user.ID)
	return user, nil
}

// Login checks the account status before the password, so suspended and
// rejected accounts learn their status even with a wrong password.
func (s *AuthService) Login(ctx context.Context, input dto.LoginInput) (dto.LoginResponse, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("email = ?", normalizeEmail(input.Email)).First(&user).Error
	if err != nil {
		if isNotFound(err) {
			loginAttempts.WithLabelValues("password", "not_found").Inc()
			return dto.LoginResponse{}, apperrors.NotFound("User not found")
		}
		return dto.LoginResponse{}, apperrors.Server("Could not load user", err)
	}

	if err := checkStatus(user); err != nil {
		loginAttempts.WithLabelValues("password", "blocked").Inc()
		return dto.LoginResponse{}, err
	}

	if !checkPassword(user.Password, input.Password) {
		loginAttempts.WithLabelValues("password", "bad_password").Inc()
		return dto.LoginResponse{}, apperrors.Unauthorized("Invalid credentials")
	}

	loginAttempts.WithLabelValues("password", "ok").Inc()
	return s.issue(user)
}

// LoginSuperAdmin only accepts the seeded superadmin account.
func (s *AuthService) LoginSuperAdmin(ctx context.Context, input dto.LoginInput) (dto.LoginResponse, error) {
	var user models.User
	err := s.db.WithContext(ctx).
		Where("email = ? AND role = ?", normalizeEmail(input.Email), constants.RoleSuperAdmin).
		First(&user).Error
	if err != nil && !isNotFound(err) {
		return dto.LoginResponse{}, apperrors.Server("Could not load user", err)
	}
	if err != nil || !checkPassword(user.Password, input.Password) {
		loginAttempts.WithLabelValues("superadmin", "bad_password").Inc()
		return dto.LoginResponse{}, apperrors.Unauthorized("Invalid superadmin credentials")
	}

	loginAttempts.WithLabelValues("superadmin", "ok").Inc()
	return s.issue(user)
}

// LoginWithGoogle signs in the owner of a verified Google ID token,
// creating a user account on first use.
func (s *AuthService) LoginWithGoogle(ctx context.Context, idToken string) (dto.LoginResponse, error) {
	if s.google == nil {
		return dto.LoginResponse{}, apperrors.Validation("Google sign-in is not enabled")
	}

	identity, err := s.google.Verify(ctx, idToken)
	if err != nil {
		loginAttempts.WithLabelValues("google", "bad_token").Inc()
		return dto.LoginResponse{}, err
	}

	email := normalizeEmail(identity.Email)
	var user models.User
	err = s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	switch {
	case isNotFound(err):
		hashed, err := HashPassword(uuid.NewString())
		if err != nil {
			return dto.LoginResponse{}, err
		}
		name := identity.Name
		if name == "" {
			name = email
		}
		user = models.User{
			Name:     name,
			Email:    email,
			Password: hashed,
			Role:     constants.RoleUser,
			Status:   constants.UserStatusActive,
		}
		if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
			if isDuplicate(err) {
				return dto.LoginResponse{}, apperrors.Conflict("User already exists")
			}
			return dto.LoginResponse{}, apperrors.Server("Could not create user", err)
		}
		s.logger.Info("created user %d from google sign-in", user.ID)
	case err != nil:
		return dto.LoginResponse{}, apperrors.Server("Could not load user", err)
	}

	if err := checkStatus(user); err != nil {
		loginAttempts.WithLabelValues("google", "blocked").Inc()
		return dto.LoginResponse{}, err
	}

	loginAttempts.WithLabelValues("google", "ok").Inc()
	return s.issue(user)
}

// Logout revokes the token until it would have expired anyway.
func (s *AuthService) Logout(ctx context.Context, claims *Claims) error {
	if claims == nil || claims.Id == "" {
		return nil
	}
	if err := s.revoker.Revoke(ctx, claims.Id, claims.ExpiresIn(time.Now())); err != nil {
		return apperrors.Server("Could not revoke token", err)
	}
	return nil
}

func (s *AuthService) Profile(ctx context.Context, id uint) (models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if isNotFound(err) {
			return models.User{}, apperrors.NotFound("User not found")
		}
		return models.User{}, apperrors.Server("Could not load user", err)
	}
	return user, nil
}

func (s *AuthService) issue(user models.User) (dto.LoginResponse, error) {
	token, err := s.tokens.GenerateToken(user.ID, user.Role)
	if err != nil {
		return dto.LoginResponse{}, err
	}
	return dto.LoginResponse{Token: token, User: dto.NewUserResponse(user)}, nil
}

func checkStatus(user models.User) error {
	switch user.Status {
	case constants.UserStatusSuspended:
		return apperrors.Forbidden("Your account has been suspended")
	case constants.UserStatusRejected:
		return apperrors.Forbidden("Your account has been rejected")
	}
	return nil
}
