package main

import (
	"database/sql"

	"github.com/Nischal699/spotify-api/internal/config"
	"github.com/Nischal699/spotify-api/internal/handler"
	"github.com/Nischal699/spotify-api/internal/hub"
	"github.com/Nischal699/spotify-api/internal/repository/postgres"
	"github.com/Nischal699/spotify-api/internal/service"
)

// App is the main application container.
type App struct {
	Config  *config.Config
	Handler *handler.ChatHandler
	Hub     *hub.Hub
}

func providePostgresDB(cfg *config.Config) (*sql.DB, func(), error) {
	db, err := postgres.NewDB(cfg.PostgresURL)
	if err != nil {
		return nil, nil, err
	}
	if err := postgres.RunMigrations(db); err != nil {
		db.Close()
		return nil, nil, err
	}
	cleanup := func() { db.Close() }
	return db, cleanup, nil
}

func provideAuthService(cfg *config.Config) *service.AuthService {
	return service.NewAuthService(cfg.JWTSecret)
}
