package booking

import sm "stay-ledger/internal/domain/statemachine"

const Domain sm.Domain = "booking"

const (
	StatusPending    sm.State = "pending"
	StatusConfirmed  sm.State = "confirmed"
	StatusCheckedIn  sm.State = "checked_in"
	StatusCheckedOut sm.State = "checked_out"
	StatusCancelled  sm.State = "cancelled"
	StatusNoShow     sm.State = "no_show"
)

// StateMachine: a guest who arrived can no longer be cancelled or marked as no-show.
var StateMachine = sm.MustNew(Domain, StatusPending,
	sm.Definition{State: StatusPending, Label: "Pending", Color: sm.ColorWarning, Next: []sm.State{StatusConfirmed, StatusCancelled}},
	sm.Definition{State: StatusConfirmed, Label: "Confirmed", Color: sm.ColorSuccess, Next: []sm.State{StatusCheckedIn, StatusCancelled, StatusNoShow}},
	sm.Definition{State: StatusCheckedIn, Label: "Checked in", Color: sm.ColorPrimary, Next: []sm.State{StatusCheckedOut}},
	sm.Definition{State: StatusCheckedOut, Label: "Checked out", Color: sm.ColorGray},
	sm.Definition{State: StatusCancelled, Label: "Cancelled", Color: sm.ColorDanger},
	sm.Definition{State: StatusNoShow, Label: "No show", Color: sm.ColorDanger},
)
