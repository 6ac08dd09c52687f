package services

import (
	"context"

	appauth "github.com/pragati-coe/facultyhub/internal/app/auth"
	"github.com/pragati-coe/facultyhub/internal/app/models"
	"github.com/pragati-coe/facultyhub/internal/app/repositories"
	"github.com/pragati-coe/facultyhub/internal/pkg/logger"
)

// UserService defines the interface for account management operations.
// Every operation is restricted to IQAC callers.
type UserService interface {
	ListUsers(ctx context.Context, ident appauth.Identity) ([]*models.User, error)
	ListPendingUsers(ctx context.Context, ident appauth.Identity) ([]*models.User, error)
	ApproveUser(ctx context.Context, ident appauth.Identity, userID int64) error
	RejectUser(ctx context.Context, ident appauth.Identity, userID int64) error
	UpdateUserRole(ctx context.Context, ident appauth.Identity, userID int64, roleToken string) error
	DeleteUser(ctx context.Context, ident appauth.Identity, userID int64) error
}

type userServiceImpl struct {
	userRepo *repositories.UserRepository
	authz    *appauth.Service
}

// NewUserService creates a new user service instance
func NewUserService(userRepo *repositories.UserRepository, authz *appauth.Service) UserService {
	return &userServiceImpl{
		userRepo: userRepo,
		authz:    authz,
	}
}

// ListUsers returns every account.
func (s *userServiceImpl) ListUsers(ctx context.Context, ident appauth.Identity) ([]*models.User, error) {
	if err := s.authz.Validate(ident, appauth.CapManageUsers); err != nil {
		return nil, err
	}
	return s.userRepo.List(ctx)
}

// ListPendingUsers returns accounts still awaiting approval.
func (s *userServiceImpl) ListPendingUsers(ctx context.Context, ident appauth.Identity) ([]*models.User, error) {
	if err := s.authz.Validate(ident, appauth.CapManageUsers); err != nil {
		return nil, err
	}
	return s.userRepo.ListPending(ctx)
}

// ApproveUser marks a pending account as approved.
func (s *userServiceImpl) ApproveUser(ctx context.Context, ident appauth.Identity, userID int64) error {
	if err := s.authz.Validate(ident, appauth.CapManageUsers); err != nil {
		return err
	}
	if err := s.userRepo.SetApproved(ctx, userID, true); err != nil {
		return err
	}
	logger.Info().Int64("userID", userID).Int64("approvedBy", ident.UserID).Msg("Account approved")
	return nil
}

// RejectUser removes a pending account. Rejection is a delete, not a flag.
func (s *userServiceImpl) RejectUser(ctx context.Context, ident appauth.Identity, userID int64) error {
	if err := s.authz.ValidateUserDeletion(ident, userID); err != nil {
		return err
	}
	if err := s.userRepo.Delete(ctx, userID); err != nil {
		return err
	}
	logger.Info().Int64("userID", userID).Int64("rejectedBy", ident.UserID).Msg("Account rejected")
	return nil
}

// UpdateUserRole changes the stored role token of an account.
func (s *userServiceImpl) UpdateUserRole(ctx context.Context, ident appauth.Identity, userID int64, roleToken string) error {
	if err := s.authz.Validate(ident, appauth.CapManageUsers); err != nil {
		return err
	}
	if err := s.userRepo.UpdateRole(ctx, userID, roleToken); err != nil {
		return err
	}
	logger.Info().Int64("userID", userID).Str("role", roleToken).Msg("Account role updated")
	return nil
}

// DeleteUser removes an account. Callers cannot delete themselves.
func (s *userServiceImpl) DeleteUser(ctx context.Context, ident appauth.Identity, userID int64) error {
	if err := s.authz.ValidateUserDeletion(ident, userID); err != nil {
		return err
	}
	if err := s.userRepo.Delete(ctx, userID); err != nil {
		return err
	}
	logger.Info().Int64("userID", userID).Int64("deletedBy", ident.UserID).Msg("Account deleted")
	return nil
}
