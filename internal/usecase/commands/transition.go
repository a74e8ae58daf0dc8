package commands

import (
	"context"
	"log/slog"

	sm "stay-ledger/internal/domain/statemachine"
	"stay-ledger/internal/pkg/clock"
	"stay-ledger/internal/usecase/shared"

	"github.com/google/uuid"
)

type TransitionParams struct {
	Domain   sm.Domain
	EntityID uuid.UUID
	To       string
}

type TransitionResult struct {
	Domain   sm.Domain
	EntityID uuid.UUID
	From     sm.State
	To       sm.State
	Changed  bool
	Label    string
	// Next lists the transitions allowed from the resulting state.
	Next []sm.State
}

type TransitionCommands interface {
	Transition(ctx context.Context, params TransitionParams) (*TransitionResult, error)
}

type transitionCommandsImpl struct {
	uow       shared.UnitOfWork
	registry  *sm.Registry
	publisher shared.StatusPublisher
	clock     clock.Clock
	logger    *slog.Logger
}

func NewTransitionCommands(
	uow shared.UnitOfWork,
	registry *sm.Registry,
	publisher shared.StatusPublisher,
	clk clock.Clock,
	logger *slog.Logger,
) TransitionCommands {
	return &transitionCommandsImpl{
		uow:       uow,
		registry:  registry,
		publisher: publisher,
		clock:     clk,
		logger:    logger,
	}
}

// stored is the persisted status of one entity, as seen under its row lock.
type stored struct {
	domain sm.Domain
	state  sm.State
}

func (s stored) StateDomain() sm.Domain { return s.domain }
func (s stored) CurrentState() sm.State { return s.state }

func (c *transitionCommandsImpl) Transition(ctx context.Context, params TransitionParams) (*TransitionResult, error) {
	machine, err := c.registry.Machine(params.Domain)
	if err != nil {
		return nil, err
	}
	to, err := machine.Parse(params.To)
	if err != nil {
		return nil, err
	}

	var res sm.Result
	var event *shared.StatusChanged

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		event = nil

		tag, err := tx.Statuses().LockCurrent(ctx, params.Domain, params.EntityID)
		if err != nil {
			return err
		}
		from, err := c.registry.Resolve(params.Domain, tag)
		if err != nil {
			return err
		}

		res, err = c.registry.Transition(stored{domain: params.Domain, state: from}, to)
		if err != nil {
			return err
		}
		if !res.Changed {
			return nil
		}

		now := c.clock.Now()
		if err := tx.Statuses().Update(ctx, params.Domain, params.EntityID, res.To, now); err != nil {
			return err
		}
		ev := shared.NewStatusChanged(params.Domain, params.EntityID, res.From, res.To, now)
		if err := tx.StatusEvents().Append(ctx, ev); err != nil {
			return err
		}
		event = &ev
		return nil
	})
	if err != nil {
		return nil, err
	}

	if event != nil {
		c.logger.Info("status changed",
			slog.String("domain", params.Domain.String()),
			slog.String("entity_id", params.EntityID.String()),
			slog.String("from", res.From.String()),
			slog.String("to", res.To.String()))
		if err := c.publisher.Publish(ctx, *event); err != nil {
			c.logger.Warn("failed to publish status event",
				slog.String("domain", params.Domain.String()),
				slog.String("entity_id", params.EntityID.String()),
				slog.String("error", err.Error()))
		}
	}

	return &TransitionResult{
		Domain:   params.Domain,
		EntityID: params.EntityID,
		From:     res.From,
		To:       res.To,
		Changed:  res.Changed,
		Label:    machine.Label(res.To),
		Next:     machine.AllowedTransitions(res.To),
	}, nil
}
