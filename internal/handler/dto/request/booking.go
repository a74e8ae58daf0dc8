package request

import (
	"time"

	"stay-ledger/internal/domain/booking"
	"stay-ledger/internal/domain/pricing"
	"stay-ledger/internal/usecase/commands"
	"stay-ledger/internal/usecase/queries"

	"github.com/google/uuid"
)

type ServiceSelectionRequest struct {
	ServiceID uuid.UUID `json:"service_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"max=10000"`
}

type QuoteRequest struct {
	PropertyID uuid.UUID                 `json:"property_id" binding:"required"`
	CheckIn    string                    `json:"check_in" binding:"required,datetime=2006-01-02"`
	CheckOut   string                    `json:"check_out" binding:"required,datetime=2006-01-02"`
	Services   []ServiceSelectionRequest `json:"services" binding:"omitempty,dive"`
}

type CreateBookingRequest struct {
	QuoteRequest
	GuestName  string `json:"guest_name" binding:"required,max=200"`
	GuestEmail string `json:"guest_email" binding:"omitempty,email"`
	GuestCount int    `json:"guest_count" binding:"required,min=1"`
	Note       string `json:"note" binding:"max=2000"`
}

type TransitionRequest struct {
	To string `json:"to" binding:"required"`
}

func (r *QuoteRequest) ToParams() (queries.QuoteParams, error) {
	checkIn, checkOut, err := r.dates()
	if err != nil {
		return queries.QuoteParams{}, err
	}
	return queries.QuoteParams{
		PropertyID: r.PropertyID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Selections: r.selections(),
	}, nil
}

func (r *CreateBookingRequest) ToParams() (commands.CreateBookingParams, error) {
	checkIn, checkOut, err := r.dates()
	if err != nil {
		return commands.CreateBookingParams{}, err
	}
	return commands.CreateBookingParams{
		PropertyID: r.PropertyID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Guest: booking.Guest{
			Name:  r.GuestName,
			Email: r.GuestEmail,
			Count: r.GuestCount,
		},
		Selections: r.selections(),
		Note:       r.Note,
	}, nil
}

func (r *QuoteRequest) dates() (time.Time, time.Time, error) {
	checkIn, err := time.Parse(time.DateOnly, r.CheckIn)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	checkOut, err := time.Parse(time.DateOnly, r.CheckOut)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return checkIn, checkOut, nil
}

func (r *QuoteRequest) selections() []pricing.Selection {
	out := make([]pricing.Selection, 0, len(r.Services))
	for _, s := range r.Services {
		out = append(out, pricing.Selection{ServiceID: s.ServiceID, Quantity: s.Quantity})
	}
	return out
}
