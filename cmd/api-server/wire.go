//go:build wireinject
// +build wireinject

package main

import (
	"Pulse/config"
	"Pulse/dao"
	"Pulse/dao/cache"
	"Pulse/handler"
	"Pulse/pkg/client"
	"Pulse/pkg/database"
	"Pulse/pkg/server"
	"Pulse/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(
		database.NewDB,
		client.NewRedisClient,
		server.NewGinEngine,

		dao.ProviderSet,
		cache.ProviderSet,
		service.ProviderSet,

		wire.Struct(new(handler.Auth), "*"),
		wire.Struct(new(handler.Post), "*"),
		wire.Struct(new(handler.Comment), "*"),
		wire.Struct(new(handler.Like), "*"),
		wire.Struct(new(handler.Friendship), "*"),
		wire.Struct(new(handler.Message), "*"),
		wire.Struct(new(handler.Feed), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),
	)
	return nil
}
