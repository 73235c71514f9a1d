package services

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"github.com/SAP-F-2025/student-service/internal/auth"
	"github.com/SAP-F-2025/student-service/internal/models"
	"github.com/SAP-F-2025/student-service/internal/repositories"
	"github.com/SAP-F-2025/student-service/internal/validator"
)

type authService struct {
	repo       repositories.Repository
	jwtManager *auth.Manager
	logger     *slog.Logger
	validator  *validator.Validator
}

func NewAuthService(repo repositories.Repository, jwtManager *auth.Manager, logger *slog.Logger, validator *validator.Validator) AuthService {
	return &authService{
		repo:       repo,
		jwtManager: jwtManager,
		logger:     logger,
		validator:  validator,
	}
}

func (s *authService) Signup(ctx context.Context, req *models.SignupRequest) (*models.User, error) {
	if errs := s.validator.Validate(req); errs != nil {
		return nil, errs
	}

	role := req.Role
	if role == "" {
		role = models.RoleStudent
	}

	exists, err := s.repo.User().ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return nil, NewConflictError("email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:    req.Email,
		Password: string(hash),
		Role:     role,
	}

	if err := s.repo.User().Create(ctx, user); err != nil {
		// Unique index may still trip under concurrent signups for the
		// same email
		if repositories.IsDuplicateError(err) {
			return nil, NewConflictError("email already registered")
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.Info("User registered", "user_id", user.ID, "role", user.Role)

	return user, nil
}

func (s *authService) Login(ctx context.Context, req *models.LoginRequest) (*models.TokenResponse, error) {
	if errs := s.validator.Validate(req); errs != nil {
		return nil, errs
	}

	user, err := s.repo.User().GetByEmail(ctx, req.Email)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			// Same response as a bad password; no account enumeration
			return nil, NewInvalidCredentialsError("invalid credentials")
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, NewInvalidCredentialsError("invalid credentials")
	}

	token, err := s.jwtManager.GenerateAccessToken(user.Email, string(user.Role))
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	s.logger.Info("User logged in", "user_id", user.ID, "role", user.Role)

	return &models.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		Role:        user.Role,
	}, nil
}

func (s *authService) ChangePassword(ctx context.Context, userID uint, req *models.PasswordChangeRequest) error {
	if errs := s.validator.Validate(req); errs != nil {
		return errs
	}

	user, err := s.repo.User().GetByID(ctx, userID)
	if err != nil {
		if repositories.IsNotFoundError(err) {
			return NewNotFoundError("user")
		}
		return fmt.Errorf("failed to get user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.CurrentPassword)); err != nil {
		return NewInvalidCredentialsError("current password is incorrect")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.repo.User().UpdatePassword(ctx, user.ID, string(hash)); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}

	s.logger.Info("Password changed", "user_id", user.ID)

	return nil
}
