//go:build wireinject

package cache

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewStore,
	wire.Bind(new(Store), new(*RedisStore)),
	NewPopularityStorage,
	NewFeedStorage,
)
