package money

import (
	"fmt"

	"stay-ledger/internal/pkg/errs"
)

var (
	ErrMalformedAmount = errs.New("malformed money amount")
	ErrAmountOverflow  = errs.New("money amount overflows int64")
	ErrInvalidCurrency = errs.New("invalid currency code")
)

// PrecisionLossError is returned whenever a floating point value reaches a
// money boundary.
type PrecisionLossError struct {
	Value any
}

func (e *PrecisionLossError) Error() string {
	return fmt.Sprintf("precision loss: %v (%T) is not an integer amount of minor units", e.Value, e.Value)
}

type CurrencyMismatchError struct {
	Left  Currency
	Right Currency
}

func (e *CurrencyMismatchError) Error() string {
	return fmt.Sprintf("currency mismatch: %s vs %s", e.Left, e.Right)
}
