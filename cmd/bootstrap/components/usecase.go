package components

import (
	"stay-ledger/internal/domain/bookingcode"
	"stay-ledger/internal/domain/lifecycle"
	"stay-ledger/internal/domain/pricing"
	"stay-ledger/internal/pkg/clock"
	"stay-ledger/internal/pkg/config"
	"stay-ledger/internal/usecase/commands"
	"stay-ledger/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	lifecycle.NewRegistry,
	fx.Annotate(
		pricing.NewCalculator,
		fx.As(new(commands.PriceCalculator)),
		fx.As(new(queries.Calculator)),
	),
	fx.Annotate(
		NewCodeGenerator,
		fx.As(new(commands.CodeGenerator)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingCommands,
		commands.NewTransitionCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
		queries.NewPricingQueries,
		queries.NewStateQueries,
	),
)

func NewCodeGenerator(checker bookingcode.Checker, clk clock.Clock, cfg config.BookingCodeConfig) *bookingcode.Generator {
	return bookingcode.NewGenerator(checker, clk,
		bookingcode.WithLength(cfg.Length),
		bookingcode.WithMaxAttempts(cfg.MaxAttempts),
		bookingcode.WithWidenEvery(cfg.WidenEvery),
	)
}
