package money

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strings"

	"stay-ledger/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

type Currency string

const (
	CZK Currency = "CZK"
	EUR Currency = "EUR"
	USD Currency = "USD"

	DefaultCurrency = CZK

	// minor units per major unit for every supported currency
	minorExponent = -2
)

var currencyRegex = regexp.MustCompile(`^[A-Z]{3}$`)

func ParseCurrency(s string) (Currency, error) {
	c := strings.ToUpper(strings.TrimSpace(s))
	if !currencyRegex.MatchString(c) {
		return "", ErrInvalidCurrency
	}
	return Currency(c), nil
}

func (c Currency) String() string { return string(c) }

// Money is an amount of minor currency units. The zero value is 0 in no currency;
// use Zero or New to get a usable value.
type Money struct {
	amount   int64
	currency Currency
}

func New(amount int64, currency Currency) Money {
	return Money{amount: amount, currency: currency}
}

func Zero(currency Currency) Money {
	return Money{currency: currency}
}

// Parse accepts an optional leading '-' followed by decimal digits only.
func Parse(s string, currency Currency) (Money, error) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return Money{}, ErrMalformedAmount
	}
	if strings.ContainsAny(raw, ".eE") {
		return Money{}, &PrecisionLossError{Value: s}
	}

	digits := raw
	negative := false
	if strings.HasPrefix(digits, "-") {
		negative = true
		digits = digits[1:]
	}
	if digits == "" {
		return Money{}, ErrMalformedAmount
	}

	// accumulated as a non-positive value so MinInt64 parses
	var amount int64
	for _, r := range digits {
		if r < '0' || r > '9' {
			return Money{}, ErrMalformedAmount
		}
		d := int64(r - '0')
		if amount < (math.MinInt64+d)/10 {
			return Money{}, ErrAmountOverflow
		}
		amount = amount*10 - d
	}
	if !negative {
		if amount == math.MinInt64 {
			return Money{}, ErrAmountOverflow
		}
		amount = -amount
	}
	return Money{amount: amount, currency: currency}, nil
}

// From converts an untyped boundary value. Floating point input is always rejected,
// including whole numbers such as 100.0.
func From(v any, currency Currency) (Money, error) {
	switch x := v.(type) {
	case Money:
		return x, nil
	case *Money:
		if x == nil {
			return Money{}, ErrMalformedAmount
		}
		return *x, nil
	case int:
		return New(int64(x), currency), nil
	case int8:
		return New(int64(x), currency), nil
	case int16:
		return New(int64(x), currency), nil
	case int32:
		return New(int64(x), currency), nil
	case int64:
		return New(x, currency), nil
	case uint:
		return fromUnsigned(uint64(x), currency)
	case uint8:
		return New(int64(x), currency), nil
	case uint16:
		return New(int64(x), currency), nil
	case uint32:
		return New(int64(x), currency), nil
	case uint64:
		return fromUnsigned(x, currency)
	case float32, float64:
		return Money{}, &PrecisionLossError{Value: x}
	case json.Number:
		return Parse(x.String(), currency)
	case string:
		return Parse(x, currency)
	case []byte:
		return Parse(string(x), currency)
	default:
		return Money{}, fmt.Errorf("%w: unsupported type %T", ErrMalformedAmount, v)
	}
}

func fromUnsigned(v uint64, currency Currency) (Money, error) {
	if v > math.MaxInt64 {
		return Money{}, ErrAmountOverflow
	}
	return New(int64(v), currency), nil
}

func (m Money) Amount() int64      { return m.amount }
func (m Money) Currency() Currency { return m.currency }
func (m Money) IsZero() bool       { return m.amount == 0 }
func (m Money) IsNegative() bool   { return m.amount < 0 }

func (m Money) Equal(other Money) bool {
	return m.amount == other.amount && m.currency == other.currency
}

func (m Money) Add(other Money) (Money, error) {
	if m.currency != other.currency {
		return Money{}, &CurrencyMismatchError{Left: m.currency, Right: other.currency}
	}
	sum := m.amount + other.amount
	if (other.amount > 0 && sum < m.amount) || (other.amount < 0 && sum > m.amount) {
		return Money{}, ErrAmountOverflow
	}
	return Money{amount: sum, currency: m.currency}, nil
}

func (m Money) Sub(other Money) (Money, error) {
	if m.currency != other.currency {
		return Money{}, &CurrencyMismatchError{Left: m.currency, Right: other.currency}
	}
	diff := m.amount - other.amount
	if (other.amount > 0 && diff > m.amount) || (other.amount < 0 && diff < m.amount) {
		return Money{}, ErrAmountOverflow
	}
	return Money{amount: diff, currency: m.currency}, nil
}

// Mul fails with ErrAmountOverflow instead of wrapping.
func (m Money) Mul(factor int64) (Money, error) {
	product, ok := MulInt64(m.amount, factor)
	if !ok {
		return Money{}, ErrAmountOverflow
	}
	return Money{amount: product, currency: m.currency}, nil
}

// MulInt64 multiplies two int64 values and reports false when the product
// does not fit.
func MulInt64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, false
	}
	product := a * b
	if product/b != a {
		return 0, false
	}
	return product, true
}

func (m Money) Neg() (Money, error) {
	if m.amount == math.MinInt64 {
		return Money{}, ErrAmountOverflow
	}
	return Money{amount: -m.amount, currency: m.currency}, nil
}

// Cmp returns -1, 0 or 1. Currencies must match.
func (m Money) Cmp(other Money) (int, error) {
	if m.currency != other.currency {
		return 0, &CurrencyMismatchError{Left: m.currency, Right: other.currency}
	}
	switch {
	case m.amount < other.amount:
		return -1, nil
	case m.amount > other.amount:
		return 1, nil
	default:
		return 0, nil
	}
}

func Sum(currency Currency, items ...Money) (Money, error) {
	total := Zero(currency)
	for _, item := range items {
		var err error
		total, err = total.Add(item)
		if err != nil {
			return Money{}, err
		}
	}
	return total, nil
}

// Format renders major units with two decimals. Display only.
func (m Money) Format() string {
	return decimal.New(m.amount, minorExponent).StringFixed(-minorExponent)
}

func (m Money) String() string {
	if m.currency == "" {
		return m.Format()
	}
	return m.Format() + " " + string(m.currency)
}

type jsonMoney struct {
	Amount    json.Number `json:"amount"`
	Currency  Currency    `json:"currency"`
	Formatted string      `json:"formatted,omitempty"`
}

func (m Money) MarshalJSON() ([]byte, error) {
	return json.Marshal(jsonMoney{
		Amount:    json.Number(fmt.Sprintf("%d", m.amount)),
		Currency:  m.currency,
		Formatted: m.Format(),
	})
}

// UnmarshalJSON leaves m untouched on null, like encoding/json does for
// other types.
func (m *Money) UnmarshalJSON(data []byte) error {
	if strings.TrimSpace(string(data)) == "null" {
		return nil
	}
	dec := json.NewDecoder(strings.NewReader(string(data)))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return errs.Mark(err, ErrMalformedAmount)
	}

	var payload jsonMoney
	switch v := raw.(type) {
	case json.Number:
		payload.Amount = v
	case string:
		payload.Amount = json.Number(v)
	case map[string]any:
		if n, ok := v["amount"].(json.Number); ok {
			payload.Amount = n
		} else if s, ok := v["amount"].(string); ok {
			payload.Amount = json.Number(s)
		}
		if c, ok := v["currency"].(string); ok {
			payload.Currency = Currency(c)
		}
	default:
		return ErrMalformedAmount
	}

	currency := DefaultCurrency
	if payload.Currency != "" {
		c, err := ParseCurrency(string(payload.Currency))
		if err != nil {
			return err
		}
		currency = c
	}

	parsed, err := Parse(payload.Amount.String(), currency)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// Scan reads an amount column. The currency lives in its own column and is kept
// as is, falling back to DefaultCurrency.
func (m *Money) Scan(src any) error {
	currency := m.currency
	if currency == "" {
		currency = DefaultCurrency
	}
	if src == nil {
		return ErrMalformedAmount
	}
	parsed, err := From(src, currency)
	if err != nil {
		return err
	}
	m.amount = parsed.amount
	m.currency = currency
	return nil
}

func (m Money) Value() (driver.Value, error) {
	return m.amount, nil
}
