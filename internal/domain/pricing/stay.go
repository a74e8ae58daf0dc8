package pricing

import "time"

// Stay is a [checkIn, checkOut) range of calendar dates.
type Stay struct {
	checkIn  time.Time
	checkOut time.Time
}

func NewStay(checkIn, checkOut time.Time) (Stay, error) {
	in := truncateToDate(checkIn)
	out := truncateToDate(checkOut)
	if !out.After(in) {
		return Stay{}, &DateRangeError{CheckIn: in, CheckOut: out}
	}
	return Stay{checkIn: in, checkOut: out}, nil
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (s Stay) CheckIn() time.Time  { return s.checkIn }
func (s Stay) CheckOut() time.Time { return s.checkOut }

func (s Stay) Nights() int {
	return int(s.checkOut.Sub(s.checkIn).Hours() / 24)
}

// EachNight calls fn with the date of every night, in order.
func (s Stay) EachNight(fn func(night time.Time)) {
	for d := s.checkIn; d.Before(s.checkOut); d = d.AddDate(0, 0, 1) {
		fn(d)
	}
}
