package services

import (
	"context"
	"errors"
	"strings"

	"github.com/pragati-coe/facultyhub/internal/app/models"
	"github.com/pragati-coe/facultyhub/internal/app/models/dto"
	"github.com/pragati-coe/facultyhub/internal/app/repositories"
	"github.com/pragati-coe/facultyhub/internal/pkg/apperrors"
	"github.com/pragati-coe/facultyhub/internal/pkg/auth"
	"github.com/pragati-coe/facultyhub/internal/pkg/logger"
)

// AuthService defines the interface for authentication operations
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (int64, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
}

type authServiceImpl struct {
	userRepo   *repositories.UserRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new auth service instance
func NewAuthService(userRepo *repositories.UserRepository, jwtService *auth.JWTService) AuthService {
	return &authServiceImpl{
		userRepo:   userRepo,
		jwtService: jwtService,
	}
}

// Register creates an unapproved account. The account cannot log in until an
// IQAC actor approves it.
func (s *authServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (int64, error) {
	username := strings.TrimSpace(req.Username)
	email := strings.TrimSpace(strings.ToLower(req.Email))
	if username == "" || email == "" {
		return 0, apperrors.NewValidationError("username and email are required")
	}

	exists, err := s.userRepo.EmailExists(ctx, email)
	if err != nil {
		return 0, err
	}
	if exists {
		return 0, apperrors.NewCustomError(apperrors.ErrEmailAlreadyExists,
			"an account with this email already exists")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to hash password")
		return 0, err
	}

	roleToken := req.Role
	if roleToken == "" {
		roleToken = string(models.RoleFaculty)
	}

	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		RoleToken:    roleToken,
		Approved:     false,
	}

	id, err := s.userRepo.Create(ctx, user)
	if err != nil {
		return 0, err
	}

	logger.Info().Int64("userID", id).Str("email", email).Msg("Account registered, pending approval")
	return id, nil
}

// Login authenticates an account. The username, email and password must all
// belong to the same account, and the account must be approved.
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.userRepo.GetByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !strings.EqualFold(user.Email, strings.TrimSpace(req.Email)) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if !user.Approved {
		return nil, apperrors.ErrAccountNotApproved
	}

	if err := s.userRepo.UpdateLastLogin(ctx, user.ID); err != nil {
		// Login still succeeds when the stamp fails.
		logger.Warn().Err(err).Int64("userID", user.ID).Msg("Failed to update last login")
	}

	token, expiresIn, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, err
	}

	logger.Info().Int64("userID", user.ID).Str("role", string(user.Role())).Msg("User logged in")

	return &dto.TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   expiresIn,
		Role:        string(user.Role()),
		Username:    user.Username,
		Email:       user.Email,
	}, nil
}
