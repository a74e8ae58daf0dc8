package readstore

import (
	"context"
	"log/slog"

	"stay-ledger/internal/infra"
	"stay-ledger/internal/infra/sqlstore"
)

type BookingCodeQueries interface {
	BookingCodeExists(ctx context.Context, db sqlstore.DBTX, code string) (bool, error)
}

// BookingCodeStore implements bookingcode.Checker against the bookings table.
type BookingCodeStore struct {
	queries BookingCodeQueries
	db      sqlstore.DBTX
	logger  *slog.Logger
}

func NewBookingCodeStore(queries BookingCodeQueries, db sqlstore.DBTX, logger *slog.Logger) *BookingCodeStore {
	return &BookingCodeStore{queries: queries, db: db, logger: logger}
}

func (s *BookingCodeStore) Exists(ctx context.Context, code string) (bool, error) {
	exists, err := s.queries.BookingCodeExists(ctx, s.db, code)
	if err != nil {
		return false, infra.Classify(s.logger, "failed to check booking code", err)
	}
	return exists, nil
}
