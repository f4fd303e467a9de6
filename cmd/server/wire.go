//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/Nischal699/spotify-api/internal/config"
	"github.com/Nischal699/spotify-api/internal/handler"
	"github.com/Nischal699/spotify-api/internal/hub"
	"github.com/Nischal699/spotify-api/internal/repository/postgres"
	"github.com/Nischal699/spotify-api/internal/service"
)

// InitializeApp creates a new application.
func InitializeApp() (*App, func(), error) {
	wire.Build(
		config.Load,
		providePostgresDB,
		// Repository Providers
		wire.NewSet(
			postgres.NewUserRepository,
			wire.Bind(new(service.IUserRepository), new(*postgres.UserRepository)),

			postgres.NewMessageRepository,
			wire.Bind(new(service.IMessageRepository), new(*postgres.MessageRepository)),
		),
		// Service Providers
		wire.NewSet(
			service.NewUserService,
			wire.Bind(new(service.IUserService), new(*service.UserService)),

			service.NewMessageService,
			wire.Bind(new(service.IMessageService), new(*service.MessageService)),

			provideAuthService,
			wire.Bind(new(service.ITokenVerifier), new(*service.AuthService)),
		),
		// Hub Providers
		wire.NewSet(
			hub.NewRegistry,
			hub.NewDispatcher,
			hub.NewHub,
		),
		handler.NewChatHandler,
		// App Provider
		wire.Struct(new(App), "*"),
	)
	return nil, nil, nil
}
