package invoice

import sm "stay-ledger/internal/domain/statemachine"

const Domain sm.Domain = "invoice"

const (
	StatusDraft     sm.State = "draft"
	StatusIssued    sm.State = "issued"
	StatusPaid      sm.State = "paid"
	StatusCancelled sm.State = "cancelled"
)

var StateMachine = sm.MustNew(Domain, StatusDraft,
	sm.Definition{State: StatusDraft, Label: "Draft", Color: sm.ColorGray, Next: []sm.State{StatusIssued, StatusCancelled}},
	sm.Definition{State: StatusIssued, Label: "Issued", Color: sm.ColorInfo, Next: []sm.State{StatusPaid, StatusCancelled}},
	sm.Definition{State: StatusPaid, Label: "Paid", Color: sm.ColorSuccess},
	sm.Definition{State: StatusCancelled, Label: "Cancelled", Color: sm.ColorDanger},
)
