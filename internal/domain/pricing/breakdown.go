package pricing

import (
	"stay-ledger/internal/domain/money"
	"stay-ledger/internal/pkg/errs"

	"github.com/google/uuid"
)

type Service struct {
	ID        uuid.UUID
	Name      string
	PriceType PriceType
	UnitPrice money.Money
	Active    bool
	// 0 means no cap
	MaxQuantity int
}

type Selection struct {
	ServiceID uuid.UUID
	Quantity  int
}

type LineItem struct {
	ServiceID uuid.UUID
	Name      string
	PriceType PriceType
	UnitPrice money.Money
	Quantity  int
	LineTotal money.Money
}

// Breakdown satisfies Total == Accommodation + Services.
type Breakdown struct {
	Nights         int
	Accommodation  money.Money
	Services       money.Money
	Total          money.Money
	ServiceDetails []LineItem
}

// Combine prices the selections against the catalog and adds them to the
// accommodation amount. Either the whole breakdown is returned or an error.
func Combine(accommodation money.Money, stay Stay, catalog map[uuid.UUID]Service, selections []Selection) (*Breakdown, error) {
	nights := stay.Nights()
	details := make([]LineItem, 0, len(selections))
	services := money.Zero(accommodation.Currency())

	for _, sel := range selections {
		line, err := priceSelection(catalog, sel, nights)
		if err != nil {
			return nil, err
		}
		services, err = services.Add(line.LineTotal)
		if errs.Is(err, money.ErrAmountOverflow) {
			return nil, overflowError(sel)
		}
		if err != nil {
			return nil, err
		}
		details = append(details, line)
	}

	total, err := accommodation.Add(services)
	if err != nil {
		return nil, err
	}

	return &Breakdown{
		Nights:         nights,
		Accommodation:  accommodation,
		Services:       services,
		Total:          total,
		ServiceDetails: details,
	}, nil
}

func priceSelection(catalog map[uuid.UUID]Service, sel Selection, nights int) (LineItem, error) {
	svc, ok := catalog[sel.ServiceID]
	if !ok {
		return LineItem{}, &ServiceSelectionError{ServiceID: sel.ServiceID, Constraint: ConstraintNotFound, Quantity: sel.Quantity}
	}
	if !svc.Active {
		return LineItem{}, &ServiceSelectionError{ServiceID: sel.ServiceID, Constraint: ConstraintInactive, Quantity: sel.Quantity}
	}
	if sel.Quantity < 0 {
		return LineItem{}, &ServiceSelectionError{ServiceID: sel.ServiceID, Constraint: ConstraintNegativeQuantity, Quantity: sel.Quantity}
	}
	if svc.MaxQuantity > 0 && sel.Quantity > svc.MaxQuantity {
		return LineItem{}, &ServiceSelectionError{
			ServiceID:  sel.ServiceID,
			Constraint: ConstraintExceedsMaximum,
			Quantity:   sel.Quantity,
			Max:        svc.MaxQuantity,
		}
	}

	factor, ok := money.MulInt64(int64(sel.Quantity), svc.PriceType.units(nights))
	if !ok {
		return LineItem{}, overflowError(sel)
	}
	lineTotal, err := svc.UnitPrice.Mul(factor)
	if err != nil {
		return LineItem{}, overflowError(sel)
	}

	return LineItem{
		ServiceID: svc.ID,
		Name:      svc.Name,
		PriceType: svc.PriceType,
		UnitPrice: svc.UnitPrice,
		Quantity:  sel.Quantity,
		LineTotal: lineTotal,
	}, nil
}

func overflowError(sel Selection) error {
	return &ServiceSelectionError{ServiceID: sel.ServiceID, Constraint: ConstraintAmountOverflow, Quantity: sel.Quantity}
}
