package statemachine

import (
	"slices"

	"stay-ledger/internal/pkg/errs"
)

// Domain names an entity whose status is governed by its own transition table.
type Domain string

func (d Domain) String() string { return string(d) }

// State is the persisted tag of a status. Tags are stored data and must never be renamed.
type State string

func (s State) String() string { return string(s) }

type Color string

const (
	ColorGray    Color = "gray"
	ColorInfo    Color = "info"
	ColorPrimary Color = "primary"
	ColorSuccess Color = "success"
	ColorWarning Color = "warning"
	ColorDanger  Color = "danger"
)

// Definition is one row of a transition table.
type Definition struct {
	State State
	Label string
	Color Color
	Next  []State
}

type Result struct {
	Domain  Domain
	From    State
	To      State
	Changed bool
}

// Machine is immutable once built.
type Machine struct {
	domain  Domain
	initial State
	order   []State
	defs    map[State]Definition
	// states that are the target of at least one edge
	reachable map[State]struct{}
}

func New(domain Domain, initial State, defs ...Definition) (*Machine, error) {
	if domain == "" {
		return nil, errs.New("statemachine: empty domain")
	}

	m := &Machine{
		domain:    domain,
		initial:   initial,
		order:     make([]State, 0, len(defs)),
		defs:      make(map[State]Definition, len(defs)),
		reachable: make(map[State]struct{}),
	}

	for _, d := range defs {
		if _, dup := m.defs[d.State]; dup {
			return nil, errs.Newf("statemachine: %s declares %q twice", domain, d.State)
		}
		d.Next = slices.Clone(d.Next)
		m.defs[d.State] = d
		m.order = append(m.order, d.State)
	}

	if _, ok := m.defs[initial]; !ok {
		return nil, errs.Newf("statemachine: %s default %q is not declared", domain, initial)
	}

	for _, d := range defs {
		for _, next := range d.Next {
			if _, ok := m.defs[next]; !ok {
				return nil, errs.Newf("statemachine: %s edge %q -> %q targets an undeclared state", domain, d.State, next)
			}
			m.reachable[next] = struct{}{}
		}
	}

	return m, nil
}

// MustNew is for package-level tables.
func MustNew(domain Domain, initial State, defs ...Definition) *Machine {
	m, err := New(domain, initial, defs...)
	if err != nil {
		panic(err)
	}
	return m
}

func (m *Machine) Domain() Domain { return m.domain }
func (m *Machine) Default() State { return m.initial }

func (m *Machine) States() []State {
	return slices.Clone(m.order)
}

func (m *Machine) Definition(s State) (Definition, bool) {
	d, ok := m.defs[s]
	if !ok {
		return Definition{}, false
	}
	d.Next = slices.Clone(d.Next)
	return d, true
}

func (m *Machine) Label(s State) string {
	return m.defs[s].Label
}

func (m *Machine) Color(s State) Color {
	return m.defs[s].Color
}

// Parse resolves a persisted tag back to its state.
func (m *Machine) Parse(tag string) (State, error) {
	s := State(tag)
	if _, ok := m.defs[s]; !ok {
		return "", &UnknownStateError{Domain: m.domain, Tag: tag}
	}
	return s, nil
}

func (m *Machine) CanTransition(from, to State) bool {
	d, ok := m.defs[from]
	if !ok {
		return false
	}
	return slices.Contains(d.Next, to)
}

func (m *Machine) AllowedTransitions(from State) []State {
	d, ok := m.defs[from]
	if !ok {
		return []State{}
	}
	return slices.Clone(d.Next)
}

func (m *Machine) IsTerminal(s State) bool {
	d, ok := m.defs[s]
	return !ok || len(d.Next) == 0
}

// Transition decides whether from may become to. It has no side effects.
// Repeating a transition that already happened (current state equals the requested
// target and some edge leads into it) succeeds with Changed=false.
func (m *Machine) Transition(from, to State) (Result, error) {
	if m.CanTransition(from, to) {
		return Result{Domain: m.domain, From: from, To: to, Changed: true}, nil
	}
	if from == to {
		if _, ok := m.reachable[to]; ok {
			return Result{Domain: m.domain, From: from, To: to, Changed: false}, nil
		}
	}
	return Result{}, &InvalidTransitionError{Domain: m.domain, From: from, To: to}
}
