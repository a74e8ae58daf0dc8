package converter

import (
	"math"

	"stay-ledger/internal/domain/booking"
	"stay-ledger/internal/infra/sqlstore"
	"stay-ledger/internal/pkg/pgconv"
)

func BookingToCreateParams(b *booking.Booking) sqlstore.CreateBookingParams {
	guest := b.Guest()
	stay := b.Stay()

	return sqlstore.CreateBookingParams{
		ID:                  b.ID(),
		Code:                b.Code(),
		PropertyID:          b.PropertyID(),
		GuestName:           guest.Name,
		GuestEmail:          pgconv.TextToPgtype(guest.Email),
		GuestCount:          clampInt32(guest.Count),
		CheckIn:             pgconv.DateToPgtype(stay.CheckIn()),
		CheckOut:            pgconv.DateToPgtype(stay.CheckOut()),
		Status:              b.Status().String(),
		Currency:            b.Total().Currency().String(),
		AccommodationAmount: b.Accommodation().Amount(),
		ServicesAmount:      b.Services().Amount(),
		TotalAmount:         b.Total().Amount(),
		Note:                pgconv.TextToPgtype(b.Note()),
		CreatedAt:           pgconv.TimeToPgtype(b.CreatedAt()),
	}
}

func BookingLinesToInfra(b *booking.Booking) []sqlstore.BookingServices {
	lines := b.Lines()
	out := make([]sqlstore.BookingServices, 0, len(lines))
	for i, l := range lines {
		out = append(out, sqlstore.BookingServices{
			BookingID: b.ID(),
			Position:  clampInt32(i + 1),
			ServiceID: l.ServiceID,
			Name:      l.Name,
			PriceType: l.PriceType.String(),
			UnitPrice: l.UnitPrice.Amount(),
			Quantity:  clampInt32(l.Quantity),
			LineTotal: l.LineTotal.Amount(),
		})
	}
	return out
}

// Domain validation keeps counts far below int32 limits.
func clampInt32(v int) int32 {
	if v > math.MaxInt32 {
		return math.MaxInt32
	}
	if v < math.MinInt32 {
		return math.MinInt32
	}
	return int32(v)
}
