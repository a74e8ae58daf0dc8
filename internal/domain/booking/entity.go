package booking

import (
	"strings"
	"time"

	"stay-ledger/internal/domain/money"
	"stay-ledger/internal/domain/pricing"
	sm "stay-ledger/internal/domain/statemachine"
	"stay-ledger/internal/pkg/errs"

	"github.com/google/uuid"
)

const (
	MaxGuestNameLength = 200
	MaxNoteLength      = 2000
)

var (
	ErrEmptyCode         = errs.New("booking code is required")
	ErrEmptyGuestName    = errs.New("guest name cannot be empty")
	ErrGuestNameTooLong  = errs.New("guest name exceeds maximum length")
	ErrNoteTooLong       = errs.New("note exceeds maximum length")
	ErrMissingProperty   = errs.New("property is required")
	ErrMissingBreakdown  = errs.New("price breakdown is required")
	ErrNonPositiveGuests = errs.New("guest count must be positive")
)

type Guest struct {
	Name  string
	Email string
	Count int
}

type Booking struct {
	id            uuid.UUID
	code          string
	propertyID    uuid.UUID
	guest         Guest
	stay          pricing.Stay
	status        sm.State
	accommodation money.Money
	services      money.Money
	total         money.Money
	lines         []pricing.LineItem
	note          string
	createdAt     time.Time
	updatedAt     time.Time
}

// New builds a booking in the domain default state. The code must already be
// generated; it is never regenerated afterwards.
func New(
	code string,
	propertyID uuid.UUID,
	guest Guest,
	stay pricing.Stay,
	breakdown *pricing.Breakdown,
	note string,
	now time.Time,
) (*Booking, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, ErrEmptyCode
	}
	if propertyID == uuid.Nil {
		return nil, ErrMissingProperty
	}
	if breakdown == nil {
		return nil, ErrMissingBreakdown
	}

	guest.Name = strings.TrimSpace(guest.Name)
	guest.Email = strings.TrimSpace(guest.Email)
	if guest.Name == "" {
		return nil, ErrEmptyGuestName
	}
	if len(guest.Name) > MaxGuestNameLength {
		return nil, ErrGuestNameTooLong
	}
	if guest.Count <= 0 {
		return nil, ErrNonPositiveGuests
	}

	note = strings.TrimSpace(note)
	if len(note) > MaxNoteLength {
		return nil, ErrNoteTooLong
	}

	return &Booking{
		id:            uuid.New(),
		code:          code,
		propertyID:    propertyID,
		guest:         guest,
		stay:          stay,
		status:        StateMachine.Default(),
		accommodation: breakdown.Accommodation,
		services:      breakdown.Services,
		total:         breakdown.Total,
		lines:         breakdown.ServiceDetails,
		note:          note,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func Reconstruct(
	id uuid.UUID,
	code string,
	propertyID uuid.UUID,
	guest Guest,
	stay pricing.Stay,
	status sm.State,
	accommodation, services, total money.Money,
	note string,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:            id,
		code:          code,
		propertyID:    propertyID,
		guest:         guest,
		stay:          stay,
		status:        status,
		accommodation: accommodation,
		services:      services,
		total:         total,
		note:          note,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// WithCode returns a copy carrying a different code; used when the first code
// lost a race at the storage unique index before the booking was ever persisted.
func (b *Booking) WithCode(code string) *Booking {
	cp := *b
	cp.code = code
	return &cp
}

func (b *Booking) StateDomain() sm.Domain     { return Domain }
func (b *Booking) CurrentState() sm.State     { return b.status }
func (b *Booking) ID() uuid.UUID              { return b.id }
func (b *Booking) Code() string               { return b.code }
func (b *Booking) PropertyID() uuid.UUID      { return b.propertyID }
func (b *Booking) Guest() Guest               { return b.guest }
func (b *Booking) Stay() pricing.Stay         { return b.stay }
func (b *Booking) Status() sm.State           { return b.status }
func (b *Booking) Accommodation() money.Money { return b.accommodation }
func (b *Booking) Services() money.Money      { return b.services }
func (b *Booking) Total() money.Money         { return b.total }
func (b *Booking) Lines() []pricing.LineItem  { return b.lines }
func (b *Booking) Note() string               { return b.note }
func (b *Booking) CreatedAt() time.Time       { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time       { return b.updatedAt }

func (b *Booking) IsActive() bool {
	return !StateMachine.IsTerminal(b.status)
}
