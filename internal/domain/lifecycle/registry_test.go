//go:build unit

package lifecycle_test

import (
	"testing"

	"stay-ledger/internal/domain/booking"
	"stay-ledger/internal/domain/folio"
	"stay-ledger/internal/domain/invoice"
	"stay-ledger/internal/domain/lifecycle"
	"stay-ledger/internal/domain/payment"
	sm "stay-ledger/internal/domain/statemachine"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type edge struct{ from, to sm.State }

// allowed lists every legal edge per domain. Any pair missing here must be rejected.
var allowed = map[sm.Domain][]edge{
	booking.Domain: {
		{booking.StatusPending, booking.StatusConfirmed},
		{booking.StatusPending, booking.StatusCancelled},
		{booking.StatusConfirmed, booking.StatusCheckedIn},
		{booking.StatusConfirmed, booking.StatusCancelled},
		{booking.StatusConfirmed, booking.StatusNoShow},
		{booking.StatusCheckedIn, booking.StatusCheckedOut},
	},
	folio.Domain: {
		{folio.StatusOpen, folio.StatusClosed},
		{folio.StatusClosed, folio.StatusInvoiced},
		{folio.StatusClosed, folio.StatusOpen},
		{folio.StatusInvoiced, folio.StatusOpen},
	},
	invoice.Domain: {
		{invoice.StatusDraft, invoice.StatusIssued},
		{invoice.StatusDraft, invoice.StatusCancelled},
		{invoice.StatusIssued, invoice.StatusPaid},
		{invoice.StatusIssued, invoice.StatusCancelled},
	},
	payment.Domain: {
		{payment.StatusPending, payment.StatusPaid},
		{payment.StatusPending, payment.StatusFailed},
		{payment.StatusPending, payment.StatusCancelled},
		{payment.StatusPaid, payment.StatusRefunded},
		{payment.StatusFailed, payment.StatusPending},
		{payment.StatusCancelled, payment.StatusPending},
	},
}

func TestNewRegistry(t *testing.T) {
	r, err := lifecycle.NewRegistry()
	require.NoError(t, err)

	assert.Equal(t, []sm.Domain{booking.Domain, folio.Domain, invoice.Domain, payment.Domain}, r.Domains())

	defaults := map[sm.Domain]sm.State{
		booking.Domain: booking.StatusPending,
		folio.Domain:   folio.StatusOpen,
		invoice.Domain: invoice.StatusDraft,
		payment.Domain: payment.StatusPending,
	}
	for domain, want := range defaults {
		got, err := r.Default(domain)
		require.NoError(t, err)
		assert.Equal(t, want, got, domain)
	}
}

func TestTransitionTables(t *testing.T) {
	r, err := lifecycle.NewRegistry()
	require.NoError(t, err)

	for domain, edges := range allowed {
		t.Run(domain.String(), func(t *testing.T) {
			m, err := r.Machine(domain)
			require.NoError(t, err)

			legal := make(map[edge]bool, len(edges))
			for _, e := range edges {
				legal[e] = true
			}

			for _, from := range m.States() {
				for _, to := range m.States() {
					assert.Equal(t, legal[edge{from, to}], r.CanTransition(domain, from, to),
						"%s: %s -> %s", domain, from, to)
				}
			}
		})
	}
}

func TestTerminalStates(t *testing.T) {
	terminal := map[sm.Domain][]sm.State{
		booking.Domain: {booking.StatusCheckedOut, booking.StatusCancelled, booking.StatusNoShow},
		folio.Domain:   {},
		invoice.Domain: {invoice.StatusPaid, invoice.StatusCancelled},
		payment.Domain: {payment.StatusRefunded},
	}

	r, err := lifecycle.NewRegistry()
	require.NoError(t, err)

	for domain, want := range terminal {
		m, err := r.Machine(domain)
		require.NoError(t, err)

		got := []sm.State{}
		for _, s := range m.States() {
			if m.IsTerminal(s) {
				got = append(got, s)
			}
		}
		assert.ElementsMatch(t, want, got, domain)
	}
}

func TestSharedTagsStayDomainScoped(t *testing.T) {
	r, err := lifecycle.NewRegistry()
	require.NoError(t, err)

	// "paid" is terminal for invoices but refundable for payments.
	invoicePaid, err := r.Resolve(invoice.Domain, "paid")
	require.NoError(t, err)
	paymentPaid, err := r.Resolve(payment.Domain, "paid")
	require.NoError(t, err)

	assert.False(t, r.CanTransition(invoice.Domain, invoicePaid, "refunded"))
	assert.True(t, r.CanTransition(payment.Domain, paymentPaid, "refunded"))

	_, err = r.Resolve(booking.Domain, "paid")
	var unknown *sm.UnknownStateError
	assert.ErrorAs(t, err, &unknown)
}

func TestLabelsAndColorsAreComplete(t *testing.T) {
	r, err := lifecycle.NewRegistry()
	require.NoError(t, err)

	for _, domain := range r.Domains() {
		m, err := r.Machine(domain)
		require.NoError(t, err)
		for _, s := range m.States() {
			assert.NotEmpty(t, m.Label(s), "%s/%s label", domain, s)
			assert.NotEmpty(t, m.Color(s), "%s/%s color", domain, s)
		}
	}
}

func TestBookingRetryIsIdempotent(t *testing.T) {
	res, err := booking.StateMachine.Transition(booking.StatusConfirmed, booking.StatusConfirmed)
	require.NoError(t, err)
	assert.False(t, res.Changed)

	_, err = booking.StateMachine.Transition(booking.StatusCheckedOut, booking.StatusCancelled)
	var invalid *sm.InvalidTransitionError
	assert.ErrorAs(t, err, &invalid)
}
