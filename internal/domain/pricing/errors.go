package pricing

import (
	"fmt"
	"time"

	"stay-ledger/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrUnknownPriceType = errs.New("unknown service price type")

type DateRangeError struct {
	CheckIn  time.Time
	CheckOut time.Time
}

func (e *DateRangeError) Error() string {
	return fmt.Sprintf("check-out %s must be after check-in %s",
		e.CheckOut.Format(time.DateOnly), e.CheckIn.Format(time.DateOnly))
}

type Constraint string

const (
	ConstraintNotFound         Constraint = "not_found"
	ConstraintInactive         Constraint = "inactive"
	ConstraintNegativeQuantity Constraint = "negative_quantity"
	ConstraintExceedsMaximum   Constraint = "exceeds_maximum"
	ConstraintAmountOverflow   Constraint = "amount_overflow"
)

type ServiceSelectionError struct {
	ServiceID  uuid.UUID
	Constraint Constraint
	Quantity   int
	Max        int
}

func (e *ServiceSelectionError) Error() string {
	switch e.Constraint {
	case ConstraintExceedsMaximum:
		return fmt.Sprintf("service %s: quantity %d exceeds maximum %d", e.ServiceID, e.Quantity, e.Max)
	case ConstraintAmountOverflow:
		return fmt.Sprintf("service %s: quantity %d overflows the price", e.ServiceID, e.Quantity)
	case ConstraintNegativeQuantity:
		return fmt.Sprintf("service %s: negative quantity %d", e.ServiceID, e.Quantity)
	default:
		return fmt.Sprintf("service %s: %s", e.ServiceID, e.Constraint)
	}
}
