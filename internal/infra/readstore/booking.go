package readstore

import (
	"context"
	"log/slog"

	"stay-ledger/internal/domain/booking"
	"stay-ledger/internal/domain/money"
	sm "stay-ledger/internal/domain/statemachine"
	"stay-ledger/internal/infra"
	"stay-ledger/internal/infra/sqlstore"
	"stay-ledger/internal/pkg/pgconv"
	"stay-ledger/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingViewQueries interface {
	GetBookingViewByID(ctx context.Context, db sqlstore.DBTX, id uuid.UUID) (sqlstore.GetBookingViewByIDRow, error)
	ListBookingServices(ctx context.Context, db sqlstore.DBTX, bookingID uuid.UUID) ([]sqlstore.BookingServices, error)
}

type BookingReadStore struct {
	queries BookingViewQueries
	db      sqlstore.DBTX
	logger  *slog.Logger
}

func NewBookingReadStore(queries BookingViewQueries, db sqlstore.DBTX, logger *slog.Logger) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
		logger:  logger,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingViewByID(ctx, r.db, id)
	if err != nil {
		return nil, infra.Classify(r.logger, "failed to find booking by ID", err)
	}

	lines, err := r.queries.ListBookingServices(ctx, r.db, id)
	if err != nil {
		return nil, infra.Classify(r.logger, "failed to list booking services", err)
	}

	return rowToBookingView(row, lines), nil
}

func rowToBookingView(row sqlstore.GetBookingViewByIDRow, lines []sqlstore.BookingServices) *queries.BookingView {
	cur := money.Currency(row.Currency)
	checkIn := pgconv.DateFromPgtype(row.CheckIn)
	checkOut := pgconv.DateFromPgtype(row.CheckOut)

	view := &queries.BookingView{
		ID:            row.ID,
		Code:          row.Code,
		PropertyID:    row.PropertyID,
		PropertyName:  row.PropertyName,
		GuestName:     row.GuestName,
		GuestEmail:    pgconv.TextFromPgtype(row.GuestEmail),
		GuestCount:    int(row.GuestCount),
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		Nights:        int(checkOut.Sub(checkIn).Hours() / 24),
		Status:        row.Status,
		StatusLabel:   booking.StateMachine.Label(sm.State(row.Status)),
		Accommodation: money.New(row.AccommodationAmount, cur),
		Services:      money.New(row.ServicesAmount, cur),
		Total:         money.New(row.TotalAmount, cur),
		Lines:         make([]queries.BookingLineView, 0, len(lines)),
		FolioID:       pgconv.UUIDPtrFromPgtype(row.FolioID),
		FolioStatus:   pgconv.TextFromPgtype(row.FolioStatus),
		Note:          pgconv.TextFromPgtype(row.Note),
		CreatedAt:     pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:     pgconv.TimeFromPgtype(row.UpdatedAt),
	}

	for _, l := range lines {
		view.Lines = append(view.Lines, queries.BookingLineView{
			ServiceID: l.ServiceID,
			Name:      l.Name,
			PriceType: l.PriceType,
			UnitPrice: money.New(l.UnitPrice, cur),
			Quantity:  int(l.Quantity),
			LineTotal: money.New(l.LineTotal, cur),
		})
	}
	return view
}
