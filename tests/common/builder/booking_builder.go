//go:build unit || e2e

package builder

import (
	"time"

	"stay-ledger/internal/domain/booking"
	"stay-ledger/internal/domain/money"
	"stay-ledger/internal/domain/pricing"
	reqdto "stay-ledger/internal/handler/dto/request"
	"stay-ledger/internal/infra/sqlstore"
	"stay-ledger/internal/usecase/commands"
	"stay-ledger/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type BookingBuilder struct {
	Code         string
	PropertyID   uuid.UUID
	PropertyName string
	Guest        booking.Guest
	CheckIn      time.Time
	CheckOut     time.Time
	NightlyRate  int64
	Currency     money.Currency
	Lines        []pricing.LineItem
	Note         string
	CreatedAt    time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		Code:         "BK-7Q2M4X",
		PropertyID:   uuid.New(),
		PropertyName: "Chata Pod Lesem",
		Guest: booking.Guest{
			Name:  "Jana Novakova",
			Email: "jana@example.com",
			Count: 2,
		},
		CheckIn:     time.Date(2026, 7, 10, 0, 0, 0, 0, time.UTC),
		CheckOut:    time.Date(2026, 7, 13, 0, 0, 0, 0, time.UTC),
		NightlyRate: 250000,
		Currency:    money.CZK,
		CreatedAt:   time.Date(2026, 6, 1, 9, 30, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithCode(code string) *BookingBuilder {
	b.Code = code
	return b
}

func (b *BookingBuilder) WithStay(checkIn, checkOut time.Time) *BookingBuilder {
	b.CheckIn = checkIn
	b.CheckOut = checkOut
	return b
}

func (b *BookingBuilder) WithGuest(guest booking.Guest) *BookingBuilder {
	b.Guest = guest
	return b
}

// WithLine adds a priced service line; the total follows the price type.
func (b *BookingBuilder) WithLine(name string, pt pricing.PriceType, unit int64, quantity int) *BookingBuilder {
	factor := int64(quantity)
	if pt == pricing.PerNight {
		factor *= int64(b.nights())
	}
	b.Lines = append(b.Lines, pricing.LineItem{
		ServiceID: uuid.New(),
		Name:      name,
		PriceType: pt,
		UnitPrice: money.New(unit, b.Currency),
		Quantity:  quantity,
		LineTotal: money.New(unit*factor, b.Currency),
	})
	return b
}

func (b *BookingBuilder) WithNote(note string) *BookingBuilder {
	b.Note = note
	return b
}

func (b *BookingBuilder) nights() int {
	return int(b.CheckOut.Sub(b.CheckIn).Hours() / 24)
}

func (b *BookingBuilder) BuildStay() pricing.Stay {
	stay, err := pricing.NewStay(b.CheckIn, b.CheckOut)
	if err != nil {
		panic(err)
	}
	return stay
}

func (b *BookingBuilder) BuildBreakdown() *pricing.Breakdown {
	accommodation := money.New(b.NightlyRate*int64(b.nights()), b.Currency)
	services := money.Zero(b.Currency)
	for _, l := range b.Lines {
		services = money.New(services.Amount()+l.LineTotal.Amount(), b.Currency)
	}
	return &pricing.Breakdown{
		Nights:         b.nights(),
		Accommodation:  accommodation,
		Services:       services,
		Total:          money.New(accommodation.Amount()+services.Amount(), b.Currency),
		ServiceDetails: append([]pricing.LineItem(nil), b.Lines...),
	}
}

func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	return booking.New(b.Code, b.PropertyID, b.Guest, b.BuildStay(), b.BuildBreakdown(), b.Note, b.CreatedAt)
}

func (b *BookingBuilder) BuildSelections() []pricing.Selection {
	out := make([]pricing.Selection, 0, len(b.Lines))
	for _, l := range b.Lines {
		out = append(out, pricing.Selection{ServiceID: l.ServiceID, Quantity: l.Quantity})
	}
	return out
}

func (b *BookingBuilder) BuildCreateParams() commands.CreateBookingParams {
	return commands.CreateBookingParams{
		PropertyID: b.PropertyID,
		CheckIn:    b.CheckIn,
		CheckOut:   b.CheckOut,
		Guest:      b.Guest,
		Selections: b.BuildSelections(),
		Note:       b.Note,
	}
}

func (b *BookingBuilder) BuildQuoteRequestDTO() reqdto.QuoteRequest {
	services := make([]reqdto.ServiceSelectionRequest, 0, len(b.Lines))
	for _, l := range b.Lines {
		services = append(services, reqdto.ServiceSelectionRequest{ServiceID: l.ServiceID, Quantity: l.Quantity})
	}
	return reqdto.QuoteRequest{
		PropertyID: b.PropertyID,
		CheckIn:    b.CheckIn.Format(time.DateOnly),
		CheckOut:   b.CheckOut.Format(time.DateOnly),
		Services:   services,
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		QuoteRequest: b.BuildQuoteRequestDTO(),
		GuestName:    b.Guest.Name,
		GuestEmail:   b.Guest.Email,
		GuestCount:   b.Guest.Count,
		Note:         b.Note,
	}
}

// BuildViewRow is the joined row the read store loads for a freshly created booking.
func (b *BookingBuilder) BuildViewRow(id uuid.UUID) sqlstore.GetBookingViewByIDRow {
	bd := b.BuildBreakdown()
	return sqlstore.GetBookingViewByIDRow{
		Bookings: sqlstore.Bookings{
			ID:                  id,
			Code:                b.Code,
			PropertyID:          b.PropertyID,
			GuestName:           b.Guest.Name,
			GuestEmail:          pgtype.Text{String: b.Guest.Email, Valid: b.Guest.Email != ""},
			GuestCount:          int32(b.Guest.Count),
			CheckIn:             pgtype.Date{Time: b.CheckIn, Valid: true},
			CheckOut:            pgtype.Date{Time: b.CheckOut, Valid: true},
			Status:              booking.StatusPending.String(),
			Currency:            b.Currency.String(),
			AccommodationAmount: bd.Accommodation.Amount(),
			ServicesAmount:      bd.Services.Amount(),
			TotalAmount:         bd.Total.Amount(),
			Note:                pgtype.Text{String: b.Note, Valid: b.Note != ""},
			CreatedAt:           pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
			UpdatedAt:           pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		},
		PropertyName: b.PropertyName,
	}
}

func (b *BookingBuilder) BuildInfraLines(bookingID uuid.UUID) []sqlstore.BookingServices {
	out := make([]sqlstore.BookingServices, 0, len(b.Lines))
	for i, l := range b.Lines {
		out = append(out, sqlstore.BookingServices{
			BookingID: bookingID,
			Position:  int32(i + 1),
			ServiceID: l.ServiceID,
			Name:      l.Name,
			PriceType: l.PriceType.String(),
			UnitPrice: l.UnitPrice.Amount(),
			Quantity:  int32(l.Quantity),
			LineTotal: l.LineTotal.Amount(),
		})
	}
	return out
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	bd := b.BuildBreakdown()
	lines := make([]queries.BookingLineView, 0, len(b.Lines))
	for _, l := range b.Lines {
		lines = append(lines, queries.BookingLineView{
			ServiceID: l.ServiceID,
			Name:      l.Name,
			PriceType: l.PriceType.String(),
			UnitPrice: l.UnitPrice,
			Quantity:  l.Quantity,
			LineTotal: l.LineTotal,
		})
	}
	folioID := uuid.New()
	return &queries.BookingView{
		ID:            uuid.New(),
		Code:          b.Code,
		PropertyID:    b.PropertyID,
		PropertyName:  b.PropertyName,
		GuestName:     b.Guest.Name,
		GuestEmail:    b.Guest.Email,
		GuestCount:    b.Guest.Count,
		CheckIn:       b.CheckIn,
		CheckOut:      b.CheckOut,
		Nights:        bd.Nights,
		Status:        booking.StatusPending.String(),
		StatusLabel:   "Pending",
		Accommodation: bd.Accommodation,
		Services:      bd.Services,
		Total:         bd.Total,
		Lines:         lines,
		FolioID:       &folioID,
		FolioStatus:   "open",
		Note:          b.Note,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.CreatedAt,
	}
}
