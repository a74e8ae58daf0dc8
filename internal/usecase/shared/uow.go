package shared

import (
	"context"
	"time"

	"stay-ledger/internal/domain/booking"
	"stay-ledger/internal/domain/money"
	sm "stay-ledger/internal/domain/statemachine"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx exposes repositories bound to one open transaction.
type Tx interface {
	Bookings() BookingRepository
	Folios() FolioRepository
	Statuses() StatusRepository
	StatusEvents() StatusEventRepository
}

type BookingRepository interface {
	// Create fails with errs.ErrDuplicateBookingCode when the code is already stored.
	Create(ctx context.Context, b *booking.Booking) error
}

type FolioRepository interface {
	Create(ctx context.Context, f FolioRecord) error
}

// StatusRepository reads and writes the status column of any registered domain.
type StatusRepository interface {
	// LockCurrent returns the stored tag and holds a row lock until the transaction ends.
	LockCurrent(ctx context.Context, domain sm.Domain, id uuid.UUID) (string, error)
	Update(ctx context.Context, domain sm.Domain, id uuid.UUID, to sm.State, at time.Time) error
}

type StatusEventRepository interface {
	Append(ctx context.Context, ev StatusChanged) error
}

type FolioRecord struct {
	ID        uuid.UUID
	BookingID uuid.UUID
	Status    sm.State
	Currency  money.Currency
	CreatedAt time.Time
}
