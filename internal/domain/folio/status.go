package folio

import sm "stay-ledger/internal/domain/statemachine"

const Domain sm.Domain = "folio"

const (
	StatusOpen     sm.State = "open"
	StatusClosed   sm.State = "closed"
	StatusInvoiced sm.State = "invoiced"
)

// StateMachine: a closed folio can be reopened, and so can an invoiced one
// (the invoice has to be dealt with separately).
var StateMachine = sm.MustNew(Domain, StatusOpen,
	sm.Definition{State: StatusOpen, Label: "Open", Color: sm.ColorSuccess, Next: []sm.State{StatusClosed}},
	sm.Definition{State: StatusClosed, Label: "Closed", Color: sm.ColorWarning, Next: []sm.State{StatusInvoiced, StatusOpen}},
	sm.Definition{State: StatusInvoiced, Label: "Invoiced", Color: sm.ColorInfo, Next: []sm.State{StatusOpen}},
)
