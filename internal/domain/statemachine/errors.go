package statemachine

import "fmt"

type InvalidTransitionError struct {
	Domain Domain
	From   State
	To     State
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid %s transition from %q to %q", e.Domain, e.From, e.To)
}

type UnknownStateError struct {
	Domain Domain
	Tag    string
}

func (e *UnknownStateError) Error() string {
	return fmt.Sprintf("unknown %s state %q", e.Domain, e.Tag)
}

type UnknownDomainError struct {
	Domain Domain
}

func (e *UnknownDomainError) Error() string {
	return fmt.Sprintf("unknown state domain %q", e.Domain)
}
