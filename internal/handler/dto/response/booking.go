package response

import (
	"time"

	"stay-ledger/internal/domain/money"
	"stay-ledger/internal/domain/pricing"
	"stay-ledger/internal/usecase/commands"
	"stay-ledger/internal/usecase/queries"
)

type LineItemResponse struct {
	ServiceID string      `json:"service_id"`
	Name      string      `json:"name"`
	PriceType string      `json:"price_type"`
	UnitPrice money.Money `json:"unit_price"`
	Quantity  int         `json:"quantity"`
	LineTotal money.Money `json:"line_total"`
}

type BreakdownResponse struct {
	Nights        int                `json:"nights"`
	Accommodation money.Money        `json:"accommodation"`
	Services      money.Money        `json:"services"`
	Total         money.Money        `json:"total"`
	Lines         []LineItemResponse `json:"lines"`
}

func FromBreakdown(b *pricing.Breakdown) *BreakdownResponse {
	lines := make([]LineItemResponse, len(b.ServiceDetails))
	for i, l := range b.ServiceDetails {
		lines[i] = LineItemResponse{
			ServiceID: l.ServiceID.String(),
			Name:      l.Name,
			PriceType: l.PriceType.String(),
			UnitPrice: l.UnitPrice,
			Quantity:  l.Quantity,
			LineTotal: l.LineTotal,
		}
	}
	return &BreakdownResponse{
		Nights:        b.Nights,
		Accommodation: b.Accommodation,
		Services:      b.Services,
		Total:         b.Total,
		Lines:         lines,
	}
}

type BookingResponse struct {
	ID            string             `json:"id"`
	Code          string             `json:"code"`
	PropertyID    string             `json:"property_id"`
	PropertyName  string             `json:"property_name"`
	GuestName     string             `json:"guest_name"`
	GuestEmail    string             `json:"guest_email,omitempty"`
	GuestCount    int                `json:"guest_count"`
	CheckIn       string             `json:"check_in"`
	CheckOut      string             `json:"check_out"`
	Nights        int                `json:"nights"`
	Status        string             `json:"status"`
	StatusLabel   string             `json:"status_label"`
	Accommodation money.Money        `json:"accommodation"`
	Services      money.Money        `json:"services"`
	Total         money.Money        `json:"total"`
	Lines         []LineItemResponse `json:"lines"`
	FolioID       string             `json:"folio_id,omitempty"`
	FolioStatus   string             `json:"folio_status,omitempty"`
	Note          string             `json:"note,omitempty"`
	CreatedAt     int64              `json:"created_at"`
	UpdatedAt     int64              `json:"updated_at"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	lines := make([]LineItemResponse, len(v.Lines))
	for i, l := range v.Lines {
		lines[i] = LineItemResponse{
			ServiceID: l.ServiceID.String(),
			Name:      l.Name,
			PriceType: l.PriceType,
			UnitPrice: l.UnitPrice,
			Quantity:  l.Quantity,
			LineTotal: l.LineTotal,
		}
	}

	res := &BookingResponse{
		ID:            v.ID.String(),
		Code:          v.Code,
		PropertyID:    v.PropertyID.String(),
		PropertyName:  v.PropertyName,
		GuestName:     v.GuestName,
		GuestEmail:    v.GuestEmail,
		GuestCount:    v.GuestCount,
		CheckIn:       v.CheckIn.Format(time.DateOnly),
		CheckOut:      v.CheckOut.Format(time.DateOnly),
		Nights:        v.Nights,
		Status:        v.Status,
		StatusLabel:   v.StatusLabel,
		Accommodation: v.Accommodation,
		Services:      v.Services,
		Total:         v.Total,
		Lines:         lines,
		FolioStatus:   v.FolioStatus,
		Note:          v.Note,
		CreatedAt:     v.CreatedAt.Unix(),
		UpdatedAt:     v.UpdatedAt.Unix(),
	}
	if v.FolioID != nil {
		res.FolioID = v.FolioID.String()
	}
	return res
}

type TransitionResponse struct {
	Domain   string   `json:"domain"`
	EntityID string   `json:"entity_id"`
	From     string   `json:"from"`
	To       string   `json:"to"`
	Changed  bool     `json:"changed"`
	Label    string   `json:"label"`
	Next     []string `json:"next"`
}

func FromTransitionResult(r *commands.TransitionResult) *TransitionResponse {
	next := make([]string, len(r.Next))
	for i, s := range r.Next {
		next[i] = s.String()
	}
	return &TransitionResponse{
		Domain:   r.Domain.String(),
		EntityID: r.EntityID.String(),
		From:     r.From.String(),
		To:       r.To.String(),
		Changed:  r.Changed,
		Label:    r.Label,
		Next:     next,
	}
}
