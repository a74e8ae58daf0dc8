package repository

import (
	"context"
	"log/slog"

	"stay-ledger/internal/domain/booking"
	"stay-ledger/internal/infra"
	"stay-ledger/internal/infra/repository/converter"
	"stay-ledger/internal/infra/sqlstore"
	"stay-ledger/internal/pkg/errs"
)

// ConstraintBookingCode is the unique index guarding booking codes.
const ConstraintBookingCode = "bookings_code_key"

type BookingWriteQueries interface {
	CreateBooking(ctx context.Context, db sqlstore.DBTX, arg sqlstore.CreateBookingParams) error
	CreateBookingServices(ctx context.Context, db sqlstore.DBTX, lines []sqlstore.BookingServices) error
}

type BookingRepository struct {
	queries BookingWriteQueries
	db      sqlstore.DBTX
	logger  *slog.Logger
}

func NewBookingRepository(queries BookingWriteQueries, db sqlstore.DBTX, logger *slog.Logger) *BookingRepository {
	return &BookingRepository{
		queries: queries,
		db:      db,
		logger:  logger,
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	if err := r.queries.CreateBooking(ctx, r.db, converter.BookingToCreateParams(b)); err != nil {
		wrapped := infra.Classify(r.logger, "failed to create booking", err)
		if infra.IsDuplicateOn(wrapped, ConstraintBookingCode) {
			return errs.Mark(wrapped, errs.ErrDuplicateBookingCode)
		}
		return wrapped
	}

	if err := r.queries.CreateBookingServices(ctx, r.db, converter.BookingLinesToInfra(b)); err != nil {
		return infra.Classify(r.logger, "failed to create booking services", err)
	}
	return nil
}
