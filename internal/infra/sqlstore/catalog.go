package sqlstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const getServicesByIDs = `
SELECT id, name, price_type, unit_price, currency, is_active, max_quantity
FROM services
WHERE id = ANY($1::uuid[])`

func (q *Queries) GetServicesByIDs(ctx context.Context, db DBTX, ids []uuid.UUID) ([]Services, error) {
	rows, err := db.Query(ctx, getServicesByIDs, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []Services{}
	for rows.Next() {
		var i Services
		if err := rows.Scan(
			&i.ID,
			&i.Name,
			&i.PriceType,
			&i.UnitPrice,
			&i.Currency,
			&i.IsActive,
			&i.MaxQuantity,
		); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}

const getPropertyRate = `
SELECT id, name, base_nightly_rate, currency, is_active
FROM properties
WHERE id = $1`

func (q *Queries) GetPropertyRate(ctx context.Context, db DBTX, id uuid.UUID) (PropertyRate, error) {
	var i PropertyRate
	err := db.QueryRow(ctx, getPropertyRate, id).Scan(
		&i.ID,
		&i.Name,
		&i.BaseNightlyRate,
		&i.Currency,
		&i.IsActive,
	)
	return i, err
}

// Seasons overlapping [from, to), highest priority first.
const listSeasonsOverlapping = `
SELECT name, starts_on, ends_on, nightly_rate
FROM seasons
WHERE property_id = $1 AND starts_on < $3 AND ends_on > $2
ORDER BY priority DESC, starts_on`

type ListSeasonsOverlappingParams struct {
	PropertyID uuid.UUID
	From       pgtype.Date
	To         pgtype.Date
}

func (q *Queries) ListSeasonsOverlapping(ctx context.Context, db DBTX, arg ListSeasonsOverlappingParams) ([]Seasons, error) {
	rows, err := db.Query(ctx, listSeasonsOverlapping, arg.PropertyID, arg.From, arg.To)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []Seasons{}
	for rows.Next() {
		var i Seasons
		if err := rows.Scan(&i.Name, &i.StartsOn, &i.EndsOn, &i.NightlyRate); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	return items, rows.Err()
}
