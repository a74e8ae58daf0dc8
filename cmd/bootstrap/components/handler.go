package components

import (
	"stay-ledger/internal/handler"
	"stay-ledger/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewBookingHandler,
		api.NewQuoteHandler,
		api.NewTransitionHandler,
		api.NewStateHandler,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	bookings *api.BookingHandler,
	quotes *api.QuoteHandler,
	transitions *api.TransitionHandler,
	states *api.StateHandler,
) handler.Handlers {
	return handler.Handlers{
		Bookings:    bookings,
		Quotes:      quotes,
		Transitions: transitions,
		States:      states,
	}
}
