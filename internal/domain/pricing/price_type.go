package pricing

import "strings"

type PriceType string

const (
	PerPerson PriceType = "per_person"
	PerNight  PriceType = "per_night"
	PerStay   PriceType = "per_stay"
	Fixed     PriceType = "fixed"
	PerHour   PriceType = "per_hour"
)

// legacy tags still present in older catalog rows
var priceTypeAliases = map[string]PriceType{
	"per_day": PerNight,
	"flat":    Fixed,
}

func ParsePriceType(s string) (PriceType, error) {
	tag := strings.ToLower(strings.TrimSpace(s))
	if alias, ok := priceTypeAliases[tag]; ok {
		return alias, nil
	}
	pt := PriceType(tag)
	if !pt.IsValid() {
		return "", ErrUnknownPriceType
	}
	return pt, nil
}

func (p PriceType) IsValid() bool {
	switch p {
	case PerPerson, PerNight, PerStay, Fixed, PerHour:
		return true
	default:
		return false
	}
}

func (p PriceType) String() string { return string(p) }

// units is the multiplier applied to unit price × quantity.
func (p PriceType) units(nights int) int64 {
	if p == PerNight {
		return int64(nights)
	}
	return 1
}
