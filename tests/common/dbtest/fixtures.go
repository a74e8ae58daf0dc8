//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// Reference rows every e2e test can rely on after ResetDB.
var (
	DefaultPropertyID = uuid.MustParse("6f1c2b1e-4a8d-4d0c-9a51-3c7e5b2d9f01")
	BreakfastID       = uuid.MustParse("0b7d6a52-1f3e-4c8a-b6d2-7e9f1a2c3d01")
	ParkingID         = uuid.MustParse("0b7d6a52-1f3e-4c8a-b6d2-7e9f1a2c3d02")
	CleaningID        = uuid.MustParse("0b7d6a52-1f3e-4c8a-b6d2-7e9f1a2c3d03")
	SaunaID           = uuid.MustParse("0b7d6a52-1f3e-4c8a-b6d2-7e9f1a2c3d04")
)

const (
	DefaultPropertyName = "Chata Pod Lesem"
	DefaultNightlyRate  = int64(250000)
)

// SeedReferenceData inserts the default property and its service catalog.
// Parking and cleaning keep the legacy price type tags.
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO properties (id, name, base_nightly_rate, currency)
		VALUES ($1, $2, $3, 'CZK')
		ON CONFLICT (id) DO NOTHING`,
		DefaultPropertyID, DefaultPropertyName, DefaultNightlyRate)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		INSERT INTO services (id, name, price_type, unit_price, currency, is_active, max_quantity) VALUES
		    ($1, 'Breakfast', 'per_person', 35000, 'CZK', TRUE, 10),
		    ($2, 'Parking', 'per_day', 15000, 'CZK', TRUE, 2),
		    ($3, 'Final cleaning', 'flat', 120000, 'CZK', TRUE, 1),
		    ($4, 'Sauna', 'per_stay', 80000, 'CZK', FALSE, 0)
		ON CONFLICT (id) DO NOTHING`,
		BreakfastID, ParkingID, CleaningID, SaunaID)
	return err
}

func CreateTestProperty(t *testing.T, db DBLike, name string, nightlyRate int64) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(), `
		INSERT INTO properties (name, base_nightly_rate, currency)
		VALUES ($1, $2, 'CZK')
		RETURNING id`, name, nightlyRate).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateTestSeason(t *testing.T, db DBLike, propertyID uuid.UUID, name string, startsOn, endsOn time.Time, nightlyRate int64, priority int) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(), `
		INSERT INTO seasons (property_id, name, starts_on, ends_on, nightly_rate, priority)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`,
		propertyID, name, startsOn.Format(time.DateOnly), endsOn.Format(time.DateOnly), nightlyRate, priority).Scan(&id)
	require.NoError(t, err)
	return id
}

func CreateTestService(t *testing.T, db DBLike, name, priceType string, unitPrice int64, maxQuantity int, active bool) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(), `
		INSERT INTO services (name, price_type, unit_price, currency, is_active, max_quantity)
		VALUES ($1, $2, $3, 'CZK', $4, $5)
		RETURNING id`, name, priceType, unitPrice, active, maxQuantity).Scan(&id)
	require.NoError(t, err)
	return id
}

// CreateTestInvoice attaches a draft invoice to folioID.
func CreateTestInvoice(t *testing.T, db DBLike, folioID uuid.UUID, number string, amount int64) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(), `
		INSERT INTO invoices (folio_id, number, currency, amount)
		VALUES ($1, $2, 'CZK', $3)
		RETURNING id`, folioID, number, amount).Scan(&id)
	require.NoError(t, err)
	return id
}

// CreateTestPayment records a pending payment against folioID.
func CreateTestPayment(t *testing.T, db DBLike, folioID uuid.UUID, amount int64) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(context.Background(), `
		INSERT INTO payments (folio_id, currency, amount)
		VALUES ($1, 'CZK', $2)
		RETURNING id`, folioID, amount).Scan(&id)
	require.NoError(t, err)
	return id
}

// StatusOf reads the stored status tag of one row in table.
func StatusOf(t *testing.T, db DBLike, table string, id uuid.UUID) string {
	t.Helper()

	var status string
	err := db.QueryRow(context.Background(), "SELECT status FROM "+table+" WHERE id = $1", id).Scan(&status)
	require.NoError(t, err)
	return status
}

func CountStatusEvents(t *testing.T, db DBLike, domain string, entityID uuid.UUID) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM status_events WHERE domain = $1 AND entity_id = $2", domain, entityID).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// ResetDB truncates all tables and reseeds reference data.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
