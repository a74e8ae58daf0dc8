package sqlstore

import (
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type Bookings struct {
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
	UpdatedAt           pgtype.Timestamptz
}

type BookingServices struct {
	BookingID uuid.UUID
	Position  int32
	ServiceID uuid.UUID
	Name      string
	PriceType string
	UnitPrice int64
	Quantity  int32
	LineTotal int64
}

type Folios struct {
	ID        uuid.UUID
	BookingID uuid.UUID
	Status    string
	Currency  string
	CreatedAt pgtype.Timestamptz
	UpdatedAt pgtype.Timestamptz
}

type Services struct {
	ID          uuid.UUID
	Name        string
	PriceType   string
	UnitPrice   int64
	Currency    string
	IsActive    bool
	MaxQuantity int32
}

type PropertyRate struct {
	ID              uuid.UUID
	Name            string
	BaseNightlyRate int64
	Currency        string
	IsActive        bool
}

type Seasons struct {
	Name        string
	StartsOn    pgtype.Date
	EndsOn      pgtype.Date
	NightlyRate int64
}

type StatusEvents struct {
	ID         uuid.UUID
	Domain     string
	EntityID   uuid.UUID
	FromStatus pgtype.Text
	ToStatus   string
	OccurredAt pgtype.Timestamptz
}
