package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/tendant/chi-demo/app"

	"github.com/sycosoft/hireout/migrations"
	"github.com/sycosoft/hireout/pkg/bootstrap"
	"github.com/sycosoft/hireout/pkg/config"
	"github.com/sycosoft/hireout/pkg/user"
)

type Config struct {
	DbConfig    config.DatabaseConfig
	AdminConfig config.AdminConfig
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		AddSource: true,
	}))
	slog.SetDefault(logger)

	// Load .env file if it exists (before reading environment variables)
	if err := godotenv.Load(); err == nil {
		slog.Info("Loaded environment from .env file")
	}

	cfg := Config{}
	cleanenv.ReadEnv(&cfg)

	ctx := context.Background()

	pool, err := pgxpool.New(ctx, cfg.DbConfig.ToDatabaseURL())
	if err != nil {
		slog.Error("Failed creating dbpool", "db", cfg.DbConfig.Database, "host", cfg.DbConfig.Host,
			"port", cfg.DbConfig.Port, "user", cfg.DbConfig.User, "error", err)
		os.Exit(-1)
	}

	if err := migrations.Migrate(stdlib.OpenDBFromPool(pool)); err != nil {
		slog.Error("Failed migrating database", "error", err)
		os.Exit(-1)
	}

	svc := user.NewUserService(
		user.NewPostgresUserRepository(pool),
		user.NewPostgresRoleRepository(pool),
	)

	seedResult, err := bootstrap.Seed(ctx, bootstrap.SeedConfig{
		AdminFirstName: cfg.AdminConfig.FirstName,
		AdminLastName:  cfg.AdminConfig.LastName,
		AdminPassword:  cfg.AdminConfig.Password,
		UserService:    svc,
	})
	if err != nil {
		slog.Error("Failed seeding database", "error", err)
		os.Exit(-1)
	}
	if seedResult.AdminPassword != "" {
		// Printed once on first run; there is no other way to recover it.
		slog.Info("Generated admin password", "username", user.AdminUsername, "password", seedResult.AdminPassword)
	}

	server := app.DefaultWithoutRoutes()
	app.RoutesHealthz(server.R)
	app.RoutesHealthzReady(server.R)
	user.Routes(server.R, user.NewHandle(svc))
	server.Run()
}
