package pricing

import (
	"time"

	"stay-ledger/internal/domain/money"
)

// Season applies its nightly rate to nights in [Start, End).
type Season struct {
	Name        string
	Start       time.Time
	End         time.Time
	NightlyRate money.Money
}

func (s Season) covers(night time.Time) bool {
	return !night.Before(truncateToDate(s.Start)) && night.Before(truncateToDate(s.End))
}

// SeasonalRates prices each night at the first season covering it, or at the base rate.
type SeasonalRates struct {
	Base    money.Money
	Seasons []Season
}

func (r SeasonalRates) RateFor(night time.Time) money.Money {
	for _, s := range r.Seasons {
		if s.covers(night) {
			return s.NightlyRate
		}
	}
	return r.Base
}

func (r SeasonalRates) Price(stay Stay) (money.Money, error) {
	total := money.Zero(r.Base.Currency())
	var err error
	stay.EachNight(func(night time.Time) {
		if err != nil {
			return
		}
		total, err = total.Add(r.RateFor(night))
	})
	if err != nil {
		return money.Money{}, err
	}
	return total, nil
}
