package bootstrap

import (
	"context"
	"log/slog"

	"stay-ledger/internal/domain/bookingcode"
	"stay-ledger/internal/infra/cache"
	"stay-ledger/internal/infra/readstore"
	"stay-ledger/internal/pkg/config"

	"go.uber.org/fx"
)

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewCodeChecker,
	),
)

// NewCodeChecker puts the Redis claim in front of the database lookup when
// Redis is enabled. A Redis outage at startup degrades to the database only.
func NewCodeChecker(lc fx.Lifecycle, cfg config.RedisConfig, store *readstore.BookingCodeStore, logger *slog.Logger) bookingcode.Checker {
	if !cfg.Enabled {
		return store
	}

	client, cleanup, err := cache.NewRedisClient(cfg)
	if err != nil {
		logger.Warn("redis unavailable, booking codes are checked against the database only",
			slog.String("addr", cfg.Addr),
			slog.String("error", err.Error()))
		return store
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	return cache.NewCodeClaimChecker(client, store, cfg.ClaimTTL, logger)
}
