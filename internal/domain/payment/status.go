package payment

import sm "stay-ledger/internal/domain/statemachine"

const Domain sm.Domain = "payment"

const (
	StatusPending   sm.State = "pending"
	StatusPaid      sm.State = "paid"
	StatusFailed    sm.State = "failed"
	StatusCancelled sm.State = "cancelled"
	StatusRefunded  sm.State = "refunded"
)

// Failed and cancelled payments may be retried.
var StateMachine = sm.MustNew(Domain, StatusPending,
	sm.Definition{State: StatusPending, Label: "Pending", Color: sm.ColorWarning, Next: []sm.State{StatusPaid, StatusFailed, StatusCancelled}},
	sm.Definition{State: StatusPaid, Label: "Paid", Color: sm.ColorSuccess, Next: []sm.State{StatusRefunded}},
	sm.Definition{State: StatusFailed, Label: "Failed", Color: sm.ColorDanger, Next: []sm.State{StatusPending}},
	sm.Definition{State: StatusCancelled, Label: "Cancelled", Color: sm.ColorGray, Next: []sm.State{StatusPending}},
	sm.Definition{State: StatusRefunded, Label: "Refunded", Color: sm.ColorInfo},
)
