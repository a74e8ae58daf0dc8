package sqlstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const createBooking = `
INSERT INTO bookings (
    id, code, property_id, guest_name, guest_email, guest_count,
    check_in, check_out, status, currency,
    accommodation_amount, services_amount, total_amount, note,
    created_at, updated_at
) VALUES (
    $1, $2, $3, $4, $5, $6,
    $7, $8, $9, $10,
    $11, $12, $13, $14,
    $15, $15
)`

type CreateBookingParams struct {
	ID                  uuid.UUID
	Code                string
	PropertyID          uuid.UUID
	GuestName           string
	GuestEmail          pgtype.Text
	GuestCount          int32
	CheckIn             pgtype.Date
	CheckOut            pgtype.Date
	Status              string
	Currency            string
	AccommodationAmount int64
	ServicesAmount      int64
	TotalAmount         int64
	Note                pgtype.Text
	CreatedAt           pgtype.Timestamptz
}

func (q *Queries) CreateBooking(ctx context.Context, db DBTX, arg CreateBookingParams) error {
	_, err := db.Exec(ctx, createBooking,
		arg.ID,
		arg.Code,
		arg.PropertyID,
		arg.GuestName,
		arg.GuestEmail,
		arg.GuestCount,
		arg.CheckIn,
		arg.CheckOut,
		arg.Status,
		arg.Currency,
		arg.AccommodationAmount,
		arg.ServicesAmount,
		arg.TotalAmount,
		arg.Note,
		arg.CreatedAt,
	)
	return err
}

const createBookingService = `
INSERT INTO booking_services (
    booking_id, position, service_id, name, price_type, unit_price, quantity, line_total
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

// CreateBookingServices inserts all lines in one round trip.
func (q *Queries) CreateBookingServices(ctx context.Context, db DBTX, lines []BookingServices) error {
	if len(lines) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, l := range lines {
		batch.Queue(createBookingService,
			l.BookingID, l.Position, l.ServiceID, l.Name, l.PriceType, l.UnitPrice, l.Quantity, l.LineTotal)
	}

	results := db.SendBatch(ctx, batch)
	for range lines {
		if _, err := results.Exec(); err != nil {
			_ = results.Close()
			return err
		}
	}
	return results.Close()
}

const getBookingViewByID = `
SELECT b.id, b.code, b.property_id, p.name, b.guest_name, b.guest_email, b.guest_count,
       b.check_in, b.check_out, b.status, b.currency,
       b.accommodation_amount, b.services_amount, b.total_amount, b.note,
       b.created_at, b.updated_at,
       f.id, f.status
FROM bookings b
JOIN properties p ON p.id = b.property_id
LEFT JOIN folios f ON f.booking_id = b.id
WHERE b.id = $1`

type GetBookingViewByIDRow struct {
	Bookings
	PropertyName string
	FolioID      pgtype.UUID
	FolioStatus  pgtype.Text
}

func (q *Queries) GetBookingViewByID(ctx context.Context, db DBTX, id uuid.UUID) (GetBookingViewByIDRow, error) {
	row := db.QueryRow(ctx, getBookingViewByID, id)
	var i GetBookingViewByIDRow
	err := row.Scan(
		&i.ID,
		&i.Code,
		&i.PropertyID,
		&i.PropertyName,
		&i.GuestName,
		&i.GuestEmail,
		&i.GuestCount,
		&i.CheckIn,
		&i.CheckOut,
		&i.Status,
		&i.Currency,
		&i.AccommodationAmount,
		&i.ServicesAmount,
		&i.TotalAmount,
		&i.Note,
		&i.CreatedAt,
		&i.UpdatedAt,
		&i.FolioID,
		&i.FolioStatus,
	)
	return i, err
}

const listBookingServices = `
SELECT booking_id, position, service_id, name, price_type, unit_price, quantity, line_total
FROM booking_services
WHERE booking_id = $1
ORDER BY position`

func (q *Queries) ListBookingServices(ctx context.Context, db DBTX, bookingID uuid.UUID) ([]BookingServices, error) {
	rows, err := db.Query(ctx, listBookingServices, bookingID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []BookingServices{}
	for rows.Next() {
		var i BookingServices
		if err := rows.Scan(
			&i.BookingID,
			&i.Position,
			&i.ServiceID,
			&i.Name,
			&i.PriceType,
			&i.UnitPrice,
			&i.Quantity,
			&i.LineTotal,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const bookingCodeExists = `SELECT EXISTS (SELECT 1 FROM bookings WHERE code = $1)`

func (q *Queries) BookingCodeExists(ctx context.Context, db DBTX, code string) (bool, error) {
	var exists bool
	err := db.QueryRow(ctx, bookingCodeExists, code).Scan(&exists)
	return exists, err
}
