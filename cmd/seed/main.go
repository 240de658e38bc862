// Command seed provisions the administrator account. Students and agents
// sign up through the app; only the admin is created out of band.
package main

import (
	"context"
	"errors"

	"unistay/api/internal/config"
	"unistay/api/internal/database"
	"unistay/api/internal/ids"
	"unistay/api/internal/log"
	"unistay/api/internal/models"
	"unistay/api/internal/repository"
	"unistay/api/internal/security"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := log.New(cfg.Environment)

	ctx := context.Background()

	if err := database.Migrate(ctx, cfg.Postgres.DSN); err != nil {
		logger.Fatal().Err(err).Msg("migrations failed")
	}

	pool, err := database.NewPostgresPool(ctx, cfg.Postgres)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect postgres")
	}
	defer pool.Close()

	users := repository.NewUserRepository(pool)

	passwordHash, err := security.HashPassword(cfg.Seed.AdminPassword)
	if err != nil {
		logger.Fatal().Err(err).Msg("hash admin password failed")
	}

	name := cfg.Seed.AdminName
	admin := models.User{
		ID:           ids.New(),
		Email:        cfg.Seed.AdminEmail,
		PasswordHash: passwordHash,
		Name:         &name,
		Role:         models.RoleAdmin,
		IsVerified:   true, // the admin is always verified
	}

	if err := users.Create(ctx, admin); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			logger.Info().Str("email", admin.Email).Msg("admin already present, nothing to do")
			return
		}
		logger.Fatal().Err(err).Msg("create admin failed")
	}

	logger.Info().Str("email", admin.Email).Msg("admin user created")
}
