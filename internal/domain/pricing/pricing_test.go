//go:build unit

package pricing_test

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"stay-ledger/internal/domain/money"
	"stay-ledger/internal/domain/pricing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func czk(amount int64) money.Money { return money.New(amount, money.CZK) }

func mustStay(t *testing.T, in, out time.Time) pricing.Stay {
	t.Helper()
	s, err := pricing.NewStay(in, out)
	require.NoError(t, err)
	return s
}

func TestNewStay(t *testing.T) {
	t.Run("counts calendar nights", func(t *testing.T) {
		s := mustStay(t, date(2026, 3, 1), date(2026, 3, 4))
		assert.Equal(t, 3, s.Nights())
	})

	t.Run("ignores time of day", func(t *testing.T) {
		s := mustStay(t,
			time.Date(2026, 3, 1, 23, 30, 0, 0, time.UTC),
			time.Date(2026, 3, 2, 6, 0, 0, 0, time.UTC))
		assert.Equal(t, 1, s.Nights())
		assert.Equal(t, date(2026, 3, 1), s.CheckIn())
	})

	t.Run("spans a DST change", func(t *testing.T) {
		s := mustStay(t, date(2026, 3, 28), date(2026, 3, 31))
		assert.Equal(t, 3, s.Nights())
	})

	for _, tc := range []struct {
		name    string
		in, out time.Time
	}{
		{name: "same day", in: date(2026, 3, 1), out: date(2026, 3, 1)},
		{name: "reversed", in: date(2026, 3, 5), out: date(2026, 3, 1)},
		{name: "same day different hours", in: date(2026, 3, 1), out: date(2026, 3, 1).Add(20 * time.Hour)},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := pricing.NewStay(tc.in, tc.out)
			var rangeErr *pricing.DateRangeError
			assert.ErrorAs(t, err, &rangeErr)
		})
	}

	t.Run("each night", func(t *testing.T) {
		s := mustStay(t, date(2026, 12, 30), date(2027, 1, 2))
		var nights []time.Time
		s.EachNight(func(n time.Time) { nights = append(nights, n) })
		assert.Equal(t, []time.Time{date(2026, 12, 30), date(2026, 12, 31), date(2027, 1, 1)}, nights)
	})
}

func TestParsePriceType(t *testing.T) {
	tests := []struct {
		in      string
		want    pricing.PriceType
		wantErr bool
	}{
		{in: "per_person", want: pricing.PerPerson},
		{in: "per_night", want: pricing.PerNight},
		{in: "per_stay", want: pricing.PerStay},
		{in: "fixed", want: pricing.Fixed},
		{in: "per_hour", want: pricing.PerHour},
		{in: " PER_NIGHT ", want: pricing.PerNight},
		{in: "per_day", want: pricing.PerNight},
		{in: "flat", want: pricing.Fixed},
		{in: "per_week", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := pricing.ParsePriceType(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, pricing.ErrUnknownPriceType)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCombine(t *testing.T) {
	stay := mustStay(t, date(2026, 7, 10), date(2026, 7, 13))

	breakfast := pricing.Service{ID: uuid.New(), Name: "Breakfast", PriceType: pricing.PerNight, UnitPrice: czk(200), Active: true}
	cleaning := pricing.Service{ID: uuid.New(), Name: "Cleaning", PriceType: pricing.PerStay, UnitPrice: czk(500), Active: true, MaxQuantity: 2}
	towels := pricing.Service{ID: uuid.New(), Name: "Towels", PriceType: pricing.PerPerson, UnitPrice: czk(50), Active: true}
	sauna := pricing.Service{ID: uuid.New(), Name: "Sauna", PriceType: pricing.PerHour, UnitPrice: czk(300), Active: false}

	catalog := map[uuid.UUID]pricing.Service{
		breakfast.ID: breakfast,
		cleaning.ID:  cleaning,
		towels.ID:    towels,
		sauna.ID:     sauna,
	}

	t.Run("per night service is multiplied by nights", func(t *testing.T) {
		b, err := pricing.Combine(czk(3000), stay, catalog, []pricing.Selection{{ServiceID: breakfast.ID, Quantity: 1}})
		require.NoError(t, err)

		assert.Equal(t, 3, b.Nights)
		assert.True(t, b.Services.Equal(czk(600)))
		assert.True(t, b.Total.Equal(czk(3600)))
		require.Len(t, b.ServiceDetails, 1)
		assert.Equal(t, "Breakfast", b.ServiceDetails[0].Name)
		assert.True(t, b.ServiceDetails[0].LineTotal.Equal(czk(600)))
	})

	t.Run("per stay service ignores nights", func(t *testing.T) {
		b, err := pricing.Combine(czk(3000), stay, catalog, []pricing.Selection{{ServiceID: cleaning.ID, Quantity: 2}})
		require.NoError(t, err)
		assert.True(t, b.Services.Equal(czk(1000)))
		assert.True(t, b.Total.Equal(czk(4000)))
	})

	t.Run("zero quantity contributes nothing", func(t *testing.T) {
		b, err := pricing.Combine(czk(3000), stay, catalog, []pricing.Selection{{ServiceID: towels.ID, Quantity: 0}})
		require.NoError(t, err)
		assert.True(t, b.Services.IsZero())
		require.Len(t, b.ServiceDetails, 1)
	})

	t.Run("no selections", func(t *testing.T) {
		b, err := pricing.Combine(czk(3000), stay, catalog, nil)
		require.NoError(t, err)
		assert.True(t, b.Total.Equal(czk(3000)))
		assert.Empty(t, b.ServiceDetails)
	})

	t.Run("total always equals accommodation plus services", func(t *testing.T) {
		b, err := pricing.Combine(czk(2999), stay, catalog, []pricing.Selection{
			{ServiceID: breakfast.ID, Quantity: 2},
			{ServiceID: cleaning.ID, Quantity: 1},
			{ServiceID: towels.ID, Quantity: 3},
		})
		require.NoError(t, err)

		sum, err := b.Accommodation.Add(b.Services)
		require.NoError(t, err)
		assert.True(t, b.Total.Equal(sum))
		assert.True(t, b.Services.Equal(czk(1200+500+150)))
	})

	selectionErrors := []struct {
		name       string
		selection  pricing.Selection
		constraint pricing.Constraint
	}{
		{name: "over maximum", selection: pricing.Selection{ServiceID: cleaning.ID, Quantity: 3}, constraint: pricing.ConstraintExceedsMaximum},
		{name: "negative", selection: pricing.Selection{ServiceID: towels.ID, Quantity: -1}, constraint: pricing.ConstraintNegativeQuantity},
		{name: "inactive", selection: pricing.Selection{ServiceID: sauna.ID, Quantity: 1}, constraint: pricing.ConstraintInactive},
		{name: "unknown", selection: pricing.Selection{ServiceID: uuid.New(), Quantity: 1}, constraint: pricing.ConstraintNotFound},
	}
	for _, tc := range selectionErrors {
		t.Run("rejects "+tc.name, func(t *testing.T) {
			b, err := pricing.Combine(czk(3000), stay, catalog, []pricing.Selection{
				{ServiceID: breakfast.ID, Quantity: 1},
				tc.selection,
			})
			assert.Nil(t, b)

			var selErr *pricing.ServiceSelectionError
			require.ErrorAs(t, err, &selErr)
			assert.Equal(t, tc.constraint, selErr.Constraint)
			assert.Equal(t, tc.selection.ServiceID, selErr.ServiceID)
		})
	}

	t.Run("exceeds maximum reports the cap", func(t *testing.T) {
		_, err := pricing.Combine(czk(3000), stay, catalog, []pricing.Selection{{ServiceID: cleaning.ID, Quantity: 5}})
		var selErr *pricing.ServiceSelectionError
		require.ErrorAs(t, err, &selErr)
		assert.Equal(t, 2, selErr.Max)
		assert.Equal(t, 5, selErr.Quantity)
	})

	hall := pricing.Service{ID: uuid.New(), Name: "Event hall", PriceType: pricing.Fixed, UnitPrice: czk(math.MaxInt64/2 + 1), Active: true}
	large := map[uuid.UUID]pricing.Service{breakfast.ID: breakfast, hall.ID: hall}

	overflows := []struct {
		name       string
		selections []pricing.Selection
		serviceID  uuid.UUID
	}{
		{
			name:       "quantity times nights",
			selections: []pricing.Selection{{ServiceID: breakfast.ID, Quantity: math.MaxInt}},
			serviceID:  breakfast.ID,
		},
		{
			name:       "line total",
			selections: []pricing.Selection{{ServiceID: breakfast.ID, Quantity: 1 << 58}},
			serviceID:  breakfast.ID,
		},
		{
			name: "services total",
			selections: []pricing.Selection{
				{ServiceID: hall.ID, Quantity: 1},
				{ServiceID: hall.ID, Quantity: 1},
			},
			serviceID: hall.ID,
		},
	}
	for _, tc := range overflows {
		t.Run("rejects overflowing "+tc.name, func(t *testing.T) {
			b, err := pricing.Combine(czk(3000), stay, large, tc.selections)
			assert.Nil(t, b)

			var selErr *pricing.ServiceSelectionError
			require.ErrorAs(t, err, &selErr)
			assert.Equal(t, pricing.ConstraintAmountOverflow, selErr.Constraint)
			assert.Equal(t, tc.serviceID, selErr.ServiceID)
		})
	}

	t.Run("rejects a total that does not fit", func(t *testing.T) {
		b, err := pricing.Combine(czk(math.MaxInt64), stay, large, []pricing.Selection{{ServiceID: breakfast.ID, Quantity: 1}})
		assert.Nil(t, b)
		require.ErrorIs(t, err, money.ErrAmountOverflow)
	})

	t.Run("currency mismatch between accommodation and services", func(t *testing.T) {
		_, err := pricing.Combine(money.New(100, money.EUR), stay, catalog, []pricing.Selection{{ServiceID: breakfast.ID, Quantity: 1}})
		var mismatch *money.CurrencyMismatchError
		assert.ErrorAs(t, err, &mismatch)
	})
}

type fakeRates struct {
	price money.Money
	err   error
}

func (f fakeRates) AccommodationPrice(context.Context, uuid.UUID, pricing.Stay) (money.Money, error) {
	return f.price, f.err
}

type fakeCatalog struct {
	services map[uuid.UUID]pricing.Service
	gotIDs   []uuid.UUID
	calls    int
}

func (f *fakeCatalog) ServicesByIDs(_ context.Context, ids []uuid.UUID) (map[uuid.UUID]pricing.Service, error) {
	f.calls++
	f.gotIDs = ids
	out := make(map[uuid.UUID]pricing.Service, len(ids))
	for _, id := range ids {
		if s, ok := f.services[id]; ok {
			out[id] = s
		}
	}
	return out, nil
}

func TestCalculator(t *testing.T) {
	stay := mustStay(t, date(2026, 7, 10), date(2026, 7, 12))
	breakfast := pricing.Service{ID: uuid.New(), Name: "Breakfast", PriceType: pricing.PerNight, UnitPrice: czk(150), Active: true}

	t.Run("fetches each selected service once", func(t *testing.T) {
		catalog := &fakeCatalog{services: map[uuid.UUID]pricing.Service{breakfast.ID: breakfast}}
		calc := pricing.NewCalculator(fakeRates{price: czk(4000)}, catalog)

		b, err := calc.Calculate(context.Background(), pricing.Request{
			PropertyID: uuid.New(),
			Stay:       stay,
			Selections: []pricing.Selection{
				{ServiceID: breakfast.ID, Quantity: 1},
				{ServiceID: breakfast.ID, Quantity: 1},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{breakfast.ID}, catalog.gotIDs)
		assert.True(t, b.Services.Equal(czk(600)))
		assert.True(t, b.Total.Equal(czk(4600)))
	})

	t.Run("skips the catalog without selections", func(t *testing.T) {
		catalog := &fakeCatalog{}
		calc := pricing.NewCalculator(fakeRates{price: czk(4000)}, catalog)

		b, err := calc.Calculate(context.Background(), pricing.Request{PropertyID: uuid.New(), Stay: stay})
		require.NoError(t, err)
		assert.Zero(t, catalog.calls)
		assert.True(t, b.Total.Equal(czk(4000)))
	})

	t.Run("propagates accommodation errors", func(t *testing.T) {
		boom := errors.New("rates unavailable")
		calc := pricing.NewCalculator(fakeRates{err: boom}, &fakeCatalog{})

		_, err := calc.Calculate(context.Background(), pricing.Request{PropertyID: uuid.New(), Stay: stay})
		assert.ErrorIs(t, err, boom)
	})
}

func TestSeasonalRates(t *testing.T) {
	rates := pricing.SeasonalRates{
		Base: czk(1000),
		Seasons: []pricing.Season{
			{Name: "summer", Start: date(2026, 7, 1), End: date(2026, 9, 1), NightlyRate: czk(1500)},
			{Name: "overlap ignored", Start: date(2026, 7, 1), End: date(2026, 7, 31), NightlyRate: czk(9999)},
		},
	}

	assert.True(t, rates.RateFor(date(2026, 6, 30)).Equal(czk(1000)))
	assert.True(t, rates.RateFor(date(2026, 7, 1)).Equal(czk(1500)))
	assert.True(t, rates.RateFor(date(2026, 9, 1)).Equal(czk(1000)))

	t.Run("stay across season boundary", func(t *testing.T) {
		stay := mustStay(t, date(2026, 8, 30), date(2026, 9, 2))
		total, err := rates.Price(stay)
		require.NoError(t, err)
		assert.True(t, total.Equal(czk(1500+1500+1000)))
	})

	t.Run("mixed currencies fail", func(t *testing.T) {
		broken := pricing.SeasonalRates{
			Base:    czk(1000),
			Seasons: []pricing.Season{{Start: date(2026, 1, 1), End: date(2027, 1, 1), NightlyRate: money.New(50, money.EUR)}},
		}
		_, err := broken.Price(mustStay(t, date(2026, 2, 1), date(2026, 2, 3)))
		var mismatch *money.CurrencyMismatchError
		assert.ErrorAs(t, err, &mismatch)
	})
}
