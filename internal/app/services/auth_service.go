package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/melisd/campushub/internal/app/models"
	"github.com/melisd/campushub/internal/app/models/dto"
	"github.com/melisd/campushub/internal/app/repositories"
	"github.com/melisd/campushub/internal/pkg/apperrors"
	"github.com/melisd/campushub/internal/pkg/auth"
	"github.com/rs/zerolog"
)

var emailRegex = regexp.MustCompile(`^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`)

// AuthService handles the credential lifecycle: registration, login,
// profile reads and updates, and password changes.
type AuthService struct {
	userRepo          repositories.IUserRepository
	jwtService        *auth.JWTService
	hasher            *auth.PasswordHasher
	minPasswordLength int
	logger            zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	userRepo repositories.IUserRepository,
	jwtService *auth.JWTService,
	hasher *auth.PasswordHasher,
	minPasswordLength int,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		userRepo:          userRepo,
		jwtService:        jwtService,
		hasher:            hasher,
		minPasswordLength: minPasswordLength,
		logger:            logger,
	}
}

// normalizeEmail lowercases and trims an email address. Storage and lookup
// must agree on this normalization.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// validateEmail validates an email address
func (s *AuthService) validateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("%w: email cannot be empty", apperrors.ErrValidationFailed)
	}

	if !emailRegex.MatchString(email) {
		return apperrors.ErrInvalidEmail
	}

	return nil
}

// validatePassword checks if a password meets the minimum length requirement
func (s *AuthService) validatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("%w: password cannot be empty", apperrors.ErrValidationFailed)
	}

	if len(password) < s.minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters long",
			apperrors.ErrInvalidPassword, s.minPasswordLength)
	}

	return nil
}

// Register creates a new user account and returns a token for it.
// The IdentifierExists pre-check is only a fast path; the repository's
// unique constraints remain authoritative under concurrent registration.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" {
		return nil, fmt.Errorf("%w: username cannot be empty", apperrors.ErrValidationFailed)
	}

	email := normalizeEmail(req.Email)
	if err := s.validateEmail(email); err != nil {
		return nil, err
	}

	if err := s.validatePassword(req.Password); err != nil {
		return nil, err
	}

	if strings.TrimSpace(req.FullName) == "" {
		return nil, fmt.Errorf("%w: full name cannot be empty", apperrors.ErrValidationFailed)
	}

	role, err := models.ParseRole(req.Role)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidRole, err)
	}

	exists, err := s.userRepo.IdentifierExists(ctx, username, email)
	if err != nil {
		return nil, fmt.Errorf("error checking identifier: %w", err)
	}
	if exists {
		return nil, apperrors.ErrIdentifierExists
	}

	passwordHash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: passwordHash,
		FullName:     strings.TrimSpace(req.FullName),
		Role:         role,
		IsActive:     true,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return s.buildAuthResponse(user)
}

// Login authenticates a user by username or email. Unknown identifier,
// wrong password and disabled account all surface as the same
// invalid-credentials error so callers cannot enumerate accounts.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	identifier := strings.TrimSpace(req.Identifier)
	if identifier == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: identifier and password are required", apperrors.ErrValidationFailed)
	}

	user, err := s.userRepo.GetByIdentifier(ctx, identifier)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !s.hasher.Check(user.PasswordHash, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !user.IsActive {
		s.logger.Warn().Int64("userID", user.ID).Msg("Login refused for inactive account")
		return nil, apperrors.ErrInvalidCredentials
	}

	if err := s.userRepo.UpdateLastLogin(ctx, user.ID); err != nil {
		// Login still succeeds; the timestamp is informational.
		s.logger.Warn().Err(err).Int64("userID", user.ID).Msg("Failed to update last login time")
	}

	return s.buildAuthResponse(user)
}

// GetProfile retrieves the caller's own record, without the hash field.
func (s *AuthService) GetProfile(ctx context.Context, userID int64) (*dto.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user information: %w", err)
	}

	response := dto.NewUserResponse(user)
	return &response, nil
}

// UpdateProfile updates the caller's non-credential profile fields.
func (s *AuthService) UpdateProfile(ctx context.Context, userID int64, req *dto.UpdateProfileRequest) (*dto.UserResponse, error) {
	email := normalizeEmail(req.Email)
	if err := s.validateEmail(email); err != nil {
		return nil, err
	}

	if strings.TrimSpace(req.FullName) == "" {
		return nil, fmt.Errorf("%w: full name cannot be empty", apperrors.ErrValidationFailed)
	}

	if err := s.userRepo.UpdateProfile(ctx, userID, strings.TrimSpace(req.FullName), email); err != nil {
		return nil, err
	}

	return s.GetProfile(ctx, userID)
}

// ChangePassword replaces the caller's password after re-verifying the
// current one. A wrong current password leaves the stored hash untouched.
func (s *AuthService) ChangePassword(ctx context.Context, userID int64, req *dto.ChangePasswordRequest) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if !s.hasher.Check(user.PasswordHash, req.CurrentPassword) {
		return apperrors.ErrInvalidCredentials
	}

	if err := s.validatePassword(req.NewPassword); err != nil {
		return err
	}

	newHash, err := s.hasher.Hash(req.NewPassword)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	return s.userRepo.UpdatePassword(ctx, userID, newHash)
}

// buildAuthResponse creates the token plus user payload
func (s *AuthService) buildAuthResponse(user *models.User) (*dto.AuthResponse, error) {
	tokenString, expiresIn, err := s.jwtService.Generate(user.ID, string(user.Role))
	if err != nil {
		return nil, fmt.Errorf("token generation error: %w", err)
	}

	return &dto.AuthResponse{
		Token: dto.TokenResponse{
			AccessToken: tokenString,
			TokenType:   "Bearer",
			ExpiresIn:   expiresIn,
		},
		User: dto.NewUserResponse(user),
	}, nil
}
