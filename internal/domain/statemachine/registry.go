package statemachine

import (
	"slices"

	"stay-ledger/internal/pkg/errs"
)

// Stateful is anything whose status lives in one of the registered domains.
type Stateful interface {
	StateDomain() Domain
	CurrentState() State
}

// Registry maps domains to their machines. Built once at startup and shared read-only.
type Registry struct {
	machines map[Domain]*Machine
	order    []Domain
}

func NewRegistry(machines ...*Machine) (*Registry, error) {
	r := &Registry{machines: make(map[Domain]*Machine, len(machines))}
	for _, m := range machines {
		if m == nil {
			return nil, errs.New("statemachine: nil machine")
		}
		if _, dup := r.machines[m.Domain()]; dup {
			return nil, errs.Newf("statemachine: domain %q registered twice", m.Domain())
		}
		r.machines[m.Domain()] = m
		r.order = append(r.order, m.Domain())
	}
	return r, nil
}

func (r *Registry) Machine(domain Domain) (*Machine, error) {
	m, ok := r.machines[domain]
	if !ok {
		return nil, &UnknownDomainError{Domain: domain}
	}
	return m, nil
}

func (r *Registry) Domains() []Domain {
	return slices.Clone(r.order)
}

func (r *Registry) Default(domain Domain) (State, error) {
	m, err := r.Machine(domain)
	if err != nil {
		return "", err
	}
	return m.Default(), nil
}

func (r *Registry) CanTransition(domain Domain, from, to State) bool {
	m, ok := r.machines[domain]
	if !ok {
		return false
	}
	return m.CanTransition(from, to)
}

// Resolve maps a persisted tag to its state within a domain. The same tag may exist
// in several domains ("paid"), so the domain is always part of the lookup.
func (r *Registry) Resolve(domain Domain, tag string) (State, error) {
	m, err := r.Machine(domain)
	if err != nil {
		return "", err
	}
	return m.Parse(tag)
}

func (r *Registry) Transition(entity Stateful, to State) (Result, error) {
	m, err := r.Machine(entity.StateDomain())
	if err != nil {
		return Result{}, err
	}
	from := entity.CurrentState()
	if _, err := m.Parse(string(from)); err != nil {
		return Result{}, err
	}
	if _, err := m.Parse(string(to)); err != nil {
		return Result{}, err
	}
	return m.Transition(from, to)
}
