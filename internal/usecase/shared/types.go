package shared

import (
	"context"
	"time"

	sm "stay-ledger/internal/domain/statemachine"

	"github.com/google/uuid"
)

// StatusChanged is recorded in the outbox for every applied transition and
// for the initial state of newly created entities (From is empty then).
type StatusChanged struct {
	ID         uuid.UUID `json:"id"`
	Domain     sm.Domain `json:"domain"`
	EntityID   uuid.UUID `json:"entity_id"`
	From       sm.State  `json:"from,omitempty"`
	To         sm.State  `json:"to"`
	OccurredAt time.Time `json:"occurred_at"`
}

func NewStatusChanged(domain sm.Domain, entityID uuid.UUID, from, to sm.State, at time.Time) StatusChanged {
	return StatusChanged{
		ID:         uuid.New(),
		Domain:     domain,
		EntityID:   entityID,
		From:       from,
		To:         to,
		OccurredAt: at,
	}
}

// RoutingKey is "status.changed.<domain>".
func (e StatusChanged) RoutingKey() string {
	return "status.changed." + e.Domain.String()
}

type StatusPublisher interface {
	Publish(ctx context.Context, ev StatusChanged) error
}
