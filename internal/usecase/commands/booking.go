package commands

import (
	"context"
	"log/slog"
	"time"

	"stay-ledger/internal/domain/booking"
	"stay-ledger/internal/domain/folio"
	"stay-ledger/internal/domain/pricing"
	sm "stay-ledger/internal/domain/statemachine"
	"stay-ledger/internal/pkg/clock"
	"stay-ledger/internal/pkg/errs"
	"stay-ledger/internal/usecase/queries"
	"stay-ledger/internal/usecase/shared"

	"github.com/google/uuid"
)

// MaxCodeInsertAttempts bounds how often a booking is re-inserted with a fresh
// code after losing a race on the unique code index.
const MaxCodeInsertAttempts = 3

var ErrCodeCollisionsExhausted = errs.New("booking code kept colliding on insert")

type CreateBookingParams struct {
	PropertyID uuid.UUID
	CheckIn    time.Time
	CheckOut   time.Time
	Guest      booking.Guest
	Selections []pricing.Selection
	Note       string
}

type CreateBookingResult struct {
	Booking *queries.BookingView
}

type PriceCalculator interface {
	Calculate(ctx context.Context, req pricing.Request) (*pricing.Breakdown, error)
}

type CodeGenerator interface {
	Generate(ctx context.Context) (string, error)
}

type BookingCommands interface {
	CreateBooking(ctx context.Context, params CreateBookingParams) (*CreateBookingResult, error)
}

type bookingCommandsImpl struct {
	uow        shared.UnitOfWork
	calculator PriceCalculator
	codes      CodeGenerator
	registry   *sm.Registry
	publisher  shared.StatusPublisher
	bookings   queries.BookingQueries
	clock      clock.Clock
	logger     *slog.Logger
}

func NewBookingCommands(
	uow shared.UnitOfWork,
	calculator PriceCalculator,
	codes CodeGenerator,
	registry *sm.Registry,
	publisher shared.StatusPublisher,
	bookings queries.BookingQueries,
	clk clock.Clock,
	logger *slog.Logger,
) BookingCommands {
	return &bookingCommandsImpl{
		uow:        uow,
		calculator: calculator,
		codes:      codes,
		registry:   registry,
		publisher:  publisher,
		bookings:   bookings,
		clock:      clk,
		logger:     logger,
	}
}

func (c *bookingCommandsImpl) CreateBooking(ctx context.Context, params CreateBookingParams) (*CreateBookingResult, error) {
	stay, err := pricing.NewStay(params.CheckIn, params.CheckOut)
	if err != nil {
		return nil, err
	}

	breakdown, err := c.calculator.Calculate(ctx, pricing.Request{
		PropertyID: params.PropertyID,
		Stay:       stay,
		Selections: params.Selections,
	})
	if err != nil {
		return nil, err
	}

	code, err := c.codes.Generate(ctx)
	if err != nil {
		return nil, err
	}

	now := c.clock.Now()
	entity, err := booking.New(code, params.PropertyID, params.Guest, stay, breakdown, params.Note, now)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	folioState, err := c.registry.Default(folio.Domain)
	if err != nil {
		return nil, err
	}
	folioRec := shared.FolioRecord{
		ID:        uuid.New(),
		BookingID: entity.ID(),
		Status:    folioState,
		Currency:  entity.Total().Currency(),
		CreatedAt: now,
	}

	events, err := c.persist(ctx, entity, folioRec, now)
	if err != nil {
		return nil, err
	}

	c.publish(ctx, events)

	view, err := c.bookings.GetByID(ctx, entity.ID())
	if err != nil {
		return nil, err
	}
	return &CreateBookingResult{Booking: view}, nil
}

// persist stores booking, folio and their initial status events together. A
// lost race on the code index regenerates the code and tries again.
func (c *bookingCommandsImpl) persist(ctx context.Context, entity *booking.Booking, folioRec shared.FolioRecord, now time.Time) ([]shared.StatusChanged, error) {
	for attempt := 1; ; attempt++ {
		events := []shared.StatusChanged{
			shared.NewStatusChanged(booking.Domain, entity.ID(), "", entity.Status(), now),
			shared.NewStatusChanged(folio.Domain, folioRec.ID, "", folioRec.Status, now),
		}

		err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			if err := tx.Bookings().Create(ctx, entity); err != nil {
				return err
			}
			if err := tx.Folios().Create(ctx, folioRec); err != nil {
				return err
			}
			for _, ev := range events {
				if err := tx.StatusEvents().Append(ctx, ev); err != nil {
					return err
				}
			}
			return nil
		})
		if err == nil {
			c.logger.Info("booking created",
				slog.String("booking_id", entity.ID().String()),
				slog.String("code", entity.Code()),
				slog.Int("insert_attempts", attempt))
			return events, nil
		}

		if !errs.Is(err, errs.ErrDuplicateBookingCode) {
			return nil, err
		}
		if attempt >= MaxCodeInsertAttempts {
			return nil, errs.Mark(err, ErrCodeCollisionsExhausted)
		}

		c.logger.Warn("booking code taken at insert, regenerating",
			slog.String("code", entity.Code()),
			slog.Int("attempt", attempt))

		code, genErr := c.codes.Generate(ctx)
		if genErr != nil {
			return nil, genErr
		}
		entity = entity.WithCode(code)
	}
}

func (c *bookingCommandsImpl) publish(ctx context.Context, events []shared.StatusChanged) {
	for _, ev := range events {
		if err := c.publisher.Publish(ctx, ev); err != nil {
			c.logger.Warn("failed to publish status event",
				slog.String("domain", ev.Domain.String()),
				slog.String("entity_id", ev.EntityID.String()),
				slog.String("error", err.Error()))
		}
	}
}
