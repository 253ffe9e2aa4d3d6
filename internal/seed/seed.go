package seed

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/umutk/registrar/internal/app/models"
	"github.com/umutk/registrar/internal/app/repositories"
	"github.com/umutk/registrar/internal/pkg/auth"
)

// Default admin credentials created on first startup. The password
// should be changed after the first login.
const (
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "admin123"
)

type adminStore interface {
	Exists(ctx context.Context) (bool, error)
	Create(ctx context.Context, admin *models.Admin) error
}

// CreateDefaultData seeds the default admin account when the store holds
// no admin at all, so a fresh database is usable immediately. It is safe
// to run on every startup.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	return createDefaultAdmin(ctx, repositories.NewAdminRepository(dbPool), lgr)
}

func createDefaultAdmin(ctx context.Context, store adminStore, lgr zerolog.Logger) error {
	exists, err := store.Exists(ctx)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking for existing admins")
		return err
	}
	if exists {
		lgr.Debug().Msg("An admin account already exists, skipping seed")
		return nil
	}

	hashed, err := auth.HashPassword(DefaultAdminPassword)
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing default admin password")
		return err
	}

	admin := &models.Admin{
		Username: DefaultAdminUsername,
		Password: hashed,
	}
	if err := store.Create(ctx, admin); err != nil {
		lgr.Error().Err(err).Msg("Error creating default admin")
		return err
	}

	lgr.Info().Str("username", DefaultAdminUsername).Msg("Created default admin account")
	return nil
}
