// Package lifecycle assembles the status machines of every billable entity.
package lifecycle

import (
	"stay-ledger/internal/domain/booking"
	"stay-ledger/internal/domain/folio"
	"stay-ledger/internal/domain/invoice"
	"stay-ledger/internal/domain/payment"
	sm "stay-ledger/internal/domain/statemachine"
)

func NewRegistry() (*sm.Registry, error) {
	return sm.NewRegistry(
		booking.StateMachine,
		folio.StateMachine,
		invoice.StateMachine,
		payment.StateMachine,
	)
}
