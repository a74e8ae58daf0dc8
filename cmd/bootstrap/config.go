package bootstrap

import (
	"stay-ledger/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.RedisConfig { return cfg.Redis },
		func(cfg config.Config) config.BrokerConfig { return cfg.Broker },
		func(cfg config.Config) config.BookingCodeConfig { return cfg.BookingCode },
	),
)
