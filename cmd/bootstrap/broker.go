package bootstrap

import (
	"context"
	"log/slog"

	"stay-ledger/internal/infra/broker"
	"stay-ledger/internal/pkg/config"
	"stay-ledger/internal/usecase/shared"

	"go.uber.org/fx"
)

var BrokerModule = fx.Module("broker",
	fx.Provide(
		NewStatusPublisher,
	),
)

func NewStatusPublisher(lc fx.Lifecycle, cfg config.BrokerConfig, logger *slog.Logger) (shared.StatusPublisher, error) {
	if !cfg.Enabled {
		return broker.NewLogPublisher(logger), nil
	}

	ch, cleanup, err := broker.Dial(cfg)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	logger.Info("status events go to broker", slog.String("exchange", cfg.Exchange))
	return broker.NewAMQPPublisher(ch, cfg.Exchange, logger), nil
}
