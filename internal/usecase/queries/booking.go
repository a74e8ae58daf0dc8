package queries

import (
	"context"
	"time"

	"stay-ledger/internal/domain/money"
	"stay-ledger/internal/infra"
	"stay-ledger/internal/pkg/errs"

	"github.com/google/uuid"
)

type BookingLineView struct {
	ServiceID uuid.UUID   `json:"service_id"`
	Name      string      `json:"name"`
	PriceType string      `json:"price_type"`
	UnitPrice money.Money `json:"unit_price"`
	Quantity  int         `json:"quantity"`
	LineTotal money.Money `json:"line_total"`
}

type BookingView struct {
	ID            uuid.UUID         `json:"id"`
	Code          string            `json:"code"`
	PropertyID    uuid.UUID         `json:"property_id"`
	PropertyName  string            `json:"property_name"`
	GuestName     string            `json:"guest_name"`
	GuestEmail    string            `json:"guest_email,omitempty"`
	GuestCount    int               `json:"guest_count"`
	CheckIn       time.Time         `json:"check_in"`
	CheckOut      time.Time         `json:"check_out"`
	Nights        int               `json:"nights"`
	Status        string            `json:"status"`
	StatusLabel   string            `json:"status_label"`
	Accommodation money.Money       `json:"accommodation"`
	Services      money.Money       `json:"services"`
	Total         money.Money       `json:"total"`
	Lines         []BookingLineView `json:"lines"`
	FolioID       *uuid.UUID        `json:"folio_id,omitempty"`
	FolioStatus   string            `json:"folio_status,omitempty"`
	Note          string            `json:"note,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
}

type bookingQueriesImpl struct {
	repo BookingReadStore
}

func NewBookingQueries(repo BookingReadStore) BookingQueries {
	return &bookingQueriesImpl{repo: repo}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrBookingNotFound)
		}
		return nil, err
	}
	return view, nil
}
