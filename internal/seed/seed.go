package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pragati-coe/facultyhub/internal/app/models"
	"github.com/pragati-coe/facultyhub/internal/app/repositories"
	"github.com/pragati-coe/facultyhub/internal/config"
	"github.com/pragati-coe/facultyhub/internal/pkg/apperrors"
	"github.com/pragati-coe/facultyhub/internal/pkg/auth"
	"github.com/pragati-coe/facultyhub/internal/pkg/logger"
)

// CreateDefaultAdmin ensures an approved IQAC account exists so the first
// deployment can sign in and approve everyone else. Nothing is created when
// the admin password is not configured or the email is already registered.
func CreateDefaultAdmin(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config) error {
	if cfg.Admin.Password == "" {
		logger.Warn().Msg("Admin password not configured, skipping default admin creation")
		return nil
	}

	userRepo := repositories.NewUserRepository(dbPool)

	existing, err := userRepo.GetByEmail(ctx, cfg.Admin.Email)
	if err != nil && !errors.Is(err, apperrors.ErrUserNotFound) {
		return err
	}
	if existing != nil {
		logger.Debug().Str("email", cfg.Admin.Email).Msg("Default admin already exists")
		return nil
	}

	hash, err := auth.HashPassword(cfg.Admin.Password)
	if err != nil {
		return err
	}

	admin := &models.User{
		Username:     cfg.Admin.Username,
		Email:        cfg.Admin.Email,
		PasswordHash: hash,
		RoleToken:    string(models.RoleIQAC),
		Approved:     true,
	}

	id, err := userRepo.Create(ctx, admin)
	if err != nil {
		return err
	}

	logger.Info().Int64("userID", id).Str("username", cfg.Admin.Username).Msg("Default IQAC admin created")
	return nil
}
