package queries

import (
	sm "stay-ledger/internal/domain/statemachine"
)

type StateView struct {
	State    string   `json:"state"`
	Label    string   `json:"label"`
	Color    string   `json:"color"`
	Default  bool     `json:"default"`
	Terminal bool     `json:"terminal"`
	Next     []string `json:"next"`
}

type DomainStatesView struct {
	Domain string      `json:"domain"`
	States []StateView `json:"states"`
}

type StateQueries interface {
	Describe(domain sm.Domain) (*DomainStatesView, error)
	DescribeAll() []*DomainStatesView
}

type stateQueriesImpl struct {
	registry *sm.Registry
}

func NewStateQueries(registry *sm.Registry) StateQueries {
	return &stateQueriesImpl{registry: registry}
}

func (q *stateQueriesImpl) Describe(domain sm.Domain) (*DomainStatesView, error) {
	machine, err := q.registry.Machine(domain)
	if err != nil {
		return nil, err
	}
	return describeMachine(machine), nil
}

// DescribeAll lists domains in registry order.
func (q *stateQueriesImpl) DescribeAll() []*DomainStatesView {
	domains := q.registry.Domains()
	out := make([]*DomainStatesView, 0, len(domains))
	for _, d := range domains {
		machine, err := q.registry.Machine(d)
		if err != nil {
			continue
		}
		out = append(out, describeMachine(machine))
	}
	return out
}

func describeMachine(m *sm.Machine) *DomainStatesView {
	states := m.States()
	view := &DomainStatesView{
		Domain: m.Domain().String(),
		States: make([]StateView, 0, len(states)),
	}
	for _, s := range states {
		allowed := m.AllowedTransitions(s)
		next := make([]string, 0, len(allowed))
		for _, n := range allowed {
			next = append(next, n.String())
		}
		view.States = append(view.States, StateView{
			State:    s.String(),
			Label:    m.Label(s),
			Color:    string(m.Color(s)),
			Default:  s == m.Default(),
			Terminal: m.IsTerminal(s),
			Next:     next,
		})
	}
	return view
}
