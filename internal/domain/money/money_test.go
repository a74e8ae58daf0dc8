//go:build unit

package money_test

import (
	"encoding/json"
	"math"
	"testing"

	"stay-ledger/internal/domain/money"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoney_Arithmetic(t *testing.T) {
	t.Run("same currency addition", func(t *testing.T) {
		sum, err := money.New(100, money.CZK).Add(money.New(50, money.CZK))
		require.NoError(t, err)
		assert.True(t, sum.Equal(money.New(150, money.CZK)))
	})

	t.Run("mismatched currency addition fails", func(t *testing.T) {
		_, err := money.New(100, money.CZK).Add(money.New(50, money.EUR))

		var mismatch *money.CurrencyMismatchError
		require.ErrorAs(t, err, &mismatch)
		assert.Equal(t, money.CZK, mismatch.Left)
		assert.Equal(t, money.EUR, mismatch.Right)
	})

	t.Run("mismatched currency subtraction fails", func(t *testing.T) {
		_, err := money.New(100, money.CZK).Sub(money.New(50, money.USD))

		var mismatch *money.CurrencyMismatchError
		require.ErrorAs(t, err, &mismatch)
	})

	t.Run("subtraction can go negative", func(t *testing.T) {
		diff, err := money.New(50, money.EUR).Sub(money.New(80, money.EUR))
		require.NoError(t, err)
		assert.Equal(t, int64(-30), diff.Amount())
		assert.True(t, diff.IsNegative())
	})

	t.Run("multiplication is exact", func(t *testing.T) {
		product, err := money.New(200, money.CZK).Mul(3)
		require.NoError(t, err)
		assert.Equal(t, int64(600), product.Amount())
	})

	t.Run("sum of empty list is zero", func(t *testing.T) {
		total, err := money.Sum(money.EUR)
		require.NoError(t, err)
		assert.True(t, total.IsZero())
		assert.Equal(t, money.EUR, total.Currency())
	})

	t.Run("sum rejects mixed currencies", func(t *testing.T) {
		_, err := money.Sum(money.CZK, money.New(1, money.CZK), money.New(1, money.EUR))

		var mismatch *money.CurrencyMismatchError
		require.ErrorAs(t, err, &mismatch)
	})

	t.Run("compare", func(t *testing.T) {
		c, err := money.New(1, money.CZK).Cmp(money.New(2, money.CZK))
		require.NoError(t, err)
		assert.Equal(t, -1, c)

		_, err = money.New(1, money.CZK).Cmp(money.New(2, money.EUR))
		require.Error(t, err)
	})

	t.Run("arithmetic does not mutate operands", func(t *testing.T) {
		a := money.New(100, money.CZK)
		_, err := a.Add(money.New(1, money.CZK))
		require.NoError(t, err)
		assert.Equal(t, int64(100), a.Amount())
	})
}

func TestMoney_Overflow(t *testing.T) {
	maxCZK := money.New(math.MaxInt64, money.CZK)
	minCZK := money.New(math.MinInt64, money.CZK)

	testCases := []struct {
		name string
		op   func() (money.Money, error)
	}{
		{name: "add past max", op: func() (money.Money, error) { return maxCZK.Add(money.New(1, money.CZK)) }},
		{name: "add past min", op: func() (money.Money, error) { return minCZK.Add(money.New(-1, money.CZK)) }},
		{name: "sub past min", op: func() (money.Money, error) { return minCZK.Sub(money.New(1, money.CZK)) }},
		{name: "sub past max", op: func() (money.Money, error) { return maxCZK.Sub(money.New(-1, money.CZK)) }},
		{name: "mul past max", op: func() (money.Money, error) { return money.New(20000, money.CZK).Mul(3 << 58) }},
		{name: "mul min by -1", op: func() (money.Money, error) { return minCZK.Mul(-1) }},
		{name: "neg min", op: func() (money.Money, error) { return minCZK.Neg() }},
		{name: "sum past max", op: func() (money.Money, error) {
			return money.Sum(money.CZK, maxCZK, money.New(1, money.CZK))
		}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual, err := tc.op()
			require.ErrorIs(t, err, money.ErrAmountOverflow)
			assert.True(t, actual.IsZero())
		})
	}

	t.Run("results at the bounds are kept", func(t *testing.T) {
		sum, err := money.New(math.MaxInt64-1, money.CZK).Add(money.New(1, money.CZK))
		require.NoError(t, err)
		assert.Equal(t, int64(math.MaxInt64), sum.Amount())

		diff, err := money.New(math.MinInt64+1, money.CZK).Sub(money.New(1, money.CZK))
		require.NoError(t, err)
		assert.Equal(t, int64(math.MinInt64), diff.Amount())

		product, err := money.New(-1, money.CZK).Mul(math.MinInt64 + 1)
		require.NoError(t, err)
		assert.Equal(t, int64(math.MaxInt64), product.Amount())

		neg, err := maxCZK.Neg()
		require.NoError(t, err)
		assert.Equal(t, int64(-math.MaxInt64), neg.Amount())
	})
}

func TestMoney_From(t *testing.T) {
	testCases := []struct {
		name      string
		input     any
		expected  int64
		precision bool
		errIs     error
	}{
		{name: "int", input: 1999, expected: 1999},
		{name: "negative int64", input: int64(-25), expected: -25},
		{name: "uint32", input: uint32(7), expected: 7},
		{name: "digit string", input: "1999", expected: 1999},
		{name: "signed digit string", input: "-40", expected: -40},
		{name: "json number", input: json.Number("300"), expected: 300},
		{name: "float64", input: 19.99, precision: true},
		{name: "whole float64", input: 100.0, precision: true},
		{name: "float32", input: float32(1), precision: true},
		{name: "decimal string", input: "19.99", precision: true},
		{name: "exponent string", input: "1e3", precision: true},
		{name: "fractional json number", input: json.Number("19.99"), precision: true},
		{name: "letters", input: "12a", errIs: money.ErrMalformedAmount},
		{name: "empty string", input: "", errIs: money.ErrMalformedAmount},
		{name: "lone minus", input: "-", errIs: money.ErrMalformedAmount},
		{name: "overflow", input: "99999999999999999999", errIs: money.ErrAmountOverflow},
		{name: "max int64 string", input: "9223372036854775807", expected: math.MaxInt64},
		{name: "min int64 string", input: "-9223372036854775808", expected: math.MinInt64},
		{name: "one past max int64", input: "9223372036854775808", errIs: money.ErrAmountOverflow},
		{name: "one past min int64", input: "-9223372036854775809", errIs: money.ErrAmountOverflow},
		{name: "huge uint64", input: uint64(math.MaxUint64), errIs: money.ErrAmountOverflow},
		{name: "unsupported type", input: struct{}{}, errIs: money.ErrMalformedAmount},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual, err := money.From(tc.input, money.CZK)

			switch {
			case tc.precision:
				var precision *money.PrecisionLossError
				require.ErrorAs(t, err, &precision)
			case tc.errIs != nil:
				require.ErrorIs(t, err, tc.errIs)
			default:
				require.NoError(t, err)
				assert.Equal(t, tc.expected, actual.Amount())
				assert.Equal(t, money.CZK, actual.Currency())
			}
		})
	}

	t.Run("copy keeps original currency", func(t *testing.T) {
		actual, err := money.From(money.New(5, money.EUR), money.CZK)
		require.NoError(t, err)
		assert.True(t, actual.Equal(money.New(5, money.EUR)))
	})
}

func TestMoney_Format(t *testing.T) {
	testCases := []struct {
		amount   int64
		expected string
	}{
		{amount: 0, expected: "0.00"},
		{amount: 5, expected: "0.05"},
		{amount: 1999, expected: "19.99"},
		{amount: -1999, expected: "-19.99"},
		{amount: 360000, expected: "3600.00"},
	}

	for _, tc := range testCases {
		t.Run(tc.expected, func(t *testing.T) {
			assert.Equal(t, tc.expected, money.New(tc.amount, money.CZK).Format())
		})
	}

	assert.Equal(t, "19.99 CZK", money.New(1999, money.CZK).String())
}

func TestMoney_JSON(t *testing.T) {
	t.Run("marshal", func(t *testing.T) {
		b, err := json.Marshal(money.New(3600, money.CZK))
		require.NoError(t, err)
		assert.JSONEq(t, `{"amount":3600,"currency":"CZK","formatted":"36.00"}`, string(b))
	})

	t.Run("unmarshal object", func(t *testing.T) {
		var m money.Money
		require.NoError(t, json.Unmarshal([]byte(`{"amount":1999,"currency":"eur"}`), &m))
		assert.True(t, m.Equal(money.New(1999, money.EUR)))
	})

	t.Run("unmarshal bare integer uses default currency", func(t *testing.T) {
		var m money.Money
		require.NoError(t, json.Unmarshal([]byte(`250`), &m))
		assert.True(t, m.Equal(money.New(250, money.DefaultCurrency)))
	})

	t.Run("unmarshal fractional amount fails", func(t *testing.T) {
		var m money.Money
		err := json.Unmarshal([]byte(`{"amount":19.99,"currency":"CZK"}`), &m)

		var precision *money.PrecisionLossError
		require.ErrorAs(t, err, &precision)
	})

	t.Run("unmarshal null leaves the value untouched", func(t *testing.T) {
		m := money.New(700, money.EUR)
		require.NoError(t, json.Unmarshal([]byte(`null`), &m))
		assert.True(t, m.Equal(money.New(700, money.EUR)))

		var payload struct {
			Deposit *money.Money `json:"deposit"`
		}
		require.NoError(t, json.Unmarshal([]byte(`{"deposit":null}`), &payload))
		assert.Nil(t, payload.Deposit)
	})

	t.Run("unmarshal invalid currency fails", func(t *testing.T) {
		var m money.Money
		err := json.Unmarshal([]byte(`{"amount":1,"currency":"C1"}`), &m)
		require.ErrorIs(t, err, money.ErrInvalidCurrency)
	})
}

func TestMoney_SQL(t *testing.T) {
	t.Run("scan integer", func(t *testing.T) {
		m := money.Zero(money.EUR)
		require.NoError(t, m.Scan(int64(4200)))
		assert.True(t, m.Equal(money.New(4200, money.EUR)))
	})

	t.Run("scan numeric text", func(t *testing.T) {
		var m money.Money
		require.NoError(t, m.Scan([]byte("12")))
		assert.True(t, m.Equal(money.New(12, money.DefaultCurrency)))
	})

	t.Run("scan float fails like every other boundary", func(t *testing.T) {
		var m money.Money
		err := m.Scan(float64(42))

		var precision *money.PrecisionLossError
		require.ErrorAs(t, err, &precision)
	})

	t.Run("scan nil fails", func(t *testing.T) {
		var m money.Money
		require.ErrorIs(t, m.Scan(nil), money.ErrMalformedAmount)
	})

	t.Run("value is integer minor units", func(t *testing.T) {
		v, err := money.New(1999, money.CZK).Value()
		require.NoError(t, err)
		assert.Equal(t, int64(1999), v)
	})
}

func TestParseCurrency(t *testing.T) {
	c, err := money.ParseCurrency(" czk ")
	require.NoError(t, err)
	assert.Equal(t, money.CZK, c)

	_, err = money.ParseCurrency("EURO")
	require.ErrorIs(t, err, money.ErrInvalidCurrency)
}
