// internal/services/auth_service.go
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/burim/garant-backend/internal/config"
	"github.com/burim/garant-backend/internal/models"
	"github.com/burim/garant-backend/internal/repository"
	"github.com/burim/garant-backend/internal/utils"
)

type AuthService struct {
	users repository.UserRepository
	cfg   *config.Config
}

type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,strong_password"`
	FirstName string `json:"first_name" validate:"required,min=1,max=100"`
	LastName  string `json:"last_name" validate:"omitempty,max=100"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	User         *models.User `json:"user"`
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	TokenType    string       `json:"token_type"`
	ExpiresIn    int          `json:"expires_in"` // in seconds
}

func NewAuthService(users repository.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		users: users,
		cfg:   cfg,
	}
}

func (s *AuthService) Register(ctx context.Context, req *RegisterRequest) (*AuthResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, ValidationError("validation.invalid", "invalid registration data", utils.GetValidationErrors(err))
	}

	if _, err := s.users.FindByEmail(ctx, req.Email); err == nil {
		return nil, ConflictError("auth.user_exists", "a user with this email already exists")
	}

	user := &models.User{
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      models.UserRoleUser,
	}
	if err := user.SetPassword(req.Password); err != nil {
		return nil, InternalError(fmt.Errorf("failed to hash password: %w", err))
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, InternalError(err)
	}

	return s.issueTokens(user)
}

func (s *AuthService) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, ValidationError("validation.invalid", "invalid login data", utils.GetValidationErrors(err))
	}

	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		// Same error for a missing user and a wrong password.
		return nil, ValidationError("auth.invalid_credentials", "invalid email or password", nil)
	}

	if err := user.CheckPassword(req.Password); err != nil {
		return nil, ValidationError("auth.invalid_credentials", "invalid email or password", nil)
	}

	now := time.Now()
	user.LastLoginAt = &now
	if err := s.users.Save(ctx, user); err != nil {
		return nil, InternalError(err)
	}

	return s.issueTokens(user)
}

func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*AuthResponse, error) {
	userID, err := utils.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, ForbiddenError("auth.invalid_token", "invalid refresh token")
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, wrapRepositoryError(err, "auth.user_not_found", "user not found")
	}

	return s.issueTokens(user)
}

// EmailAvailable reports whether the email can still be registered. Used by
// client-side form validation.
func (s *AuthService) EmailAvailable(ctx context.Context, email string) (bool, error) {
	_, err := s.users.FindByEmail(ctx, email)
	if err == nil {
		return false, nil
	}
	if serviceErr := wrapRepositoryError(err, "auth.user_not_found", "user not found"); serviceErr.Kind != KindNotFound {
		return false, serviceErr
	}
	return true, nil
}

func (s *AuthService) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, wrapRepositoryError(err, "auth.user_not_found", "user not found")
	}
	return user, nil
}

func (s *AuthService) issueTokens(user *models.User) (*AuthResponse, error) {
	accessToken, err := utils.GenerateJWT(user.ID, user.Email, string(user.Role), s.cfg.JWT.AccessTokenTTL)
	if err != nil {
		return nil, InternalError(fmt.Errorf("failed to generate access token: %w", err))
	}

	refreshToken, err := utils.GenerateRefreshToken(user.ID, s.cfg.JWT.RefreshTokenTTL)
	if err != nil {
		return nil, InternalError(fmt.Errorf("failed to generate refresh token: %w", err))
	}

	return &AuthResponse{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		ExpiresIn:    s.cfg.JWT.AccessTokenTTL * 3600,
	}, nil
}
