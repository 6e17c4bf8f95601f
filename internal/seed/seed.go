// Package seed creates the default accounts a fresh deployment needs.
package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	appModels "github.com/melisd/campushub/internal/app/models"
	appRepos "github.com/melisd/campushub/internal/app/repositories"
	"github.com/melisd/campushub/internal/config"
	"github.com/melisd/campushub/internal/pkg/apperrors"
	"github.com/melisd/campushub/internal/pkg/auth"
	"github.com/rs/zerolog"
)

// CreateDefaultAccounts seeds the administrative accounts when they do not
// exist yet. Passwords come from the environment so no credential is baked
// into the binary; an account whose password variable is unset is skipped.
func CreateDefaultAccounts(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)
	hasher := auth.NewPasswordHasher(cfg.Auth.BcryptCost)

	defaults := []struct {
		username    string
		email       string
		fullName    string
		role        appModels.Role
		passwordEnv string
	}{
		{"admin", "admin@campushub.local", "System Administrator", appModels.RoleAdmin, "SEED_ADMIN_PASSWORD"},
		{"headmistress", "headmistress@campushub.local", "Headmistress", appModels.RoleHeadmistress, "SEED_HEADMISTRESS_PASSWORD"},
	}

	var finalErr error
	for _, account := range defaults {
		password := config.GetEnv(account.passwordEnv, "")
		if password == "" {
			lgr.Debug().Str("username", account.username).Msg("Seed password not set, skipping account")
			continue
		}

		passwordHash, err := hasher.Hash(password)
		if err != nil {
			lgr.Error().Err(err).Str("username", account.username).Msg("Error hashing seed password")
			finalErr = errors.Join(finalErr, err)
			continue
		}

		user := &appModels.User{
			Username:     account.username,
			Email:        account.email,
			PasswordHash: passwordHash,
			FullName:     account.fullName,
			Role:         account.role,
			IsActive:     true,
		}

		err = userRepo.Create(ctx, user)
		if err != nil && !errors.Is(err, apperrors.ErrIdentifierExists) {
			lgr.Error().Err(err).Str("username", account.username).Msg("Error creating default account")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		if err == nil {
			lgr.Info().Str("username", account.username).Str("role", string(account.role)).Msg("Default account created")
		}
	}

	return finalErr
}
