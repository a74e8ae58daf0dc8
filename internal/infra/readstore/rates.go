package readstore

import (
	"context"
	"log/slog"

	"stay-ledger/internal/domain/money"
	"stay-ledger/internal/domain/pricing"
	"stay-ledger/internal/infra"
	"stay-ledger/internal/infra/sqlstore"
	"stay-ledger/internal/pkg/errs"
	"stay-ledger/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type RateQueries interface {
	GetPropertyRate(ctx context.Context, db sqlstore.DBTX, id uuid.UUID) (sqlstore.PropertyRate, error)
	ListSeasonsOverlapping(ctx context.Context, db sqlstore.DBTX, arg sqlstore.ListSeasonsOverlappingParams) ([]sqlstore.Seasons, error)
}

// RateStore prices accommodation from the property base rate and its seasons.
type RateStore struct {
	queries RateQueries
	db      sqlstore.DBTX
	logger  *slog.Logger
}

func NewRateStore(queries RateQueries, db sqlstore.DBTX, logger *slog.Logger) *RateStore {
	return &RateStore{queries: queries, db: db, logger: logger}
}

func (s *RateStore) AccommodationPrice(ctx context.Context, propertyID uuid.UUID, stay pricing.Stay) (money.Money, error) {
	rates, err := s.SeasonalRates(ctx, propertyID, stay)
	if err != nil {
		return money.Money{}, err
	}
	return rates.Price(stay)
}

// SeasonalRates loads the base rate plus every season touching the stay.
func (s *RateStore) SeasonalRates(ctx context.Context, propertyID uuid.UUID, stay pricing.Stay) (pricing.SeasonalRates, error) {
	prop, err := s.queries.GetPropertyRate(ctx, s.db, propertyID)
	if err != nil {
		wrapped := infra.Classify(s.logger, "failed to load property rate", err)
		if infra.IsKind(wrapped, infra.KindNotFound) {
			return pricing.SeasonalRates{}, errs.Mark(wrapped, errs.ErrPropertyNotFound)
		}
		return pricing.SeasonalRates{}, wrapped
	}
	if !prop.IsActive {
		return pricing.SeasonalRates{}, errs.Mark(errs.Newf("property %s is inactive", propertyID), errs.ErrPropertyNotFound)
	}

	cur, err := money.ParseCurrency(prop.Currency)
	if err != nil {
		return pricing.SeasonalRates{}, errs.Wrapf(err, "property %s", propertyID)
	}

	rows, err := s.queries.ListSeasonsOverlapping(ctx, s.db, sqlstore.ListSeasonsOverlappingParams{
		PropertyID: propertyID,
		From:       pgconv.DateToPgtype(stay.CheckIn()),
		To:         pgconv.DateToPgtype(stay.CheckOut()),
	})
	if err != nil {
		return pricing.SeasonalRates{}, infra.Classify(s.logger, "failed to load seasons", err)
	}

	rates := pricing.SeasonalRates{
		Base:    money.New(prop.BaseNightlyRate, cur),
		Seasons: make([]pricing.Season, 0, len(rows)),
	}
	for _, row := range rows {
		rates.Seasons = append(rates.Seasons, pricing.Season{
			Name:        row.Name,
			Start:       pgconv.DateFromPgtype(row.StartsOn),
			End:         pgconv.DateFromPgtype(row.EndsOn),
			NightlyRate: money.New(row.NightlyRate, cur),
		})
	}
	return rates, nil
}
