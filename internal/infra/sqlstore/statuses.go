package sqlstore

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// StatusTable is one of the tables carrying a lifecycle status column.
type StatusTable string

const (
	TableBookings StatusTable = "bookings"
	TableFolios   StatusTable = "folios"
	TableInvoices StatusTable = "invoices"
	TablePayments StatusTable = "payments"
)

type statusStatements struct {
	lock   string
	update string
}

// Table names cannot be bound as parameters, so statements are prepared per table.
var statusSQL = func() map[StatusTable]statusStatements {
	out := make(map[StatusTable]statusStatements, 4)
	for _, t := range []StatusTable{TableBookings, TableFolios, TableInvoices, TablePayments} {
		out[t] = statusStatements{
			lock:   fmt.Sprintf(`SELECT status FROM %s WHERE id = $1 FOR UPDATE`, t),
			update: fmt.Sprintf(`UPDATE %s SET status = $2, updated_at = $3 WHERE id = $1`, t),
		}
	}
	return out
}()

func (q *Queries) LockStatus(ctx context.Context, db DBTX, table StatusTable, id uuid.UUID) (string, error) {
	stmts, ok := statusSQL[table]
	if !ok {
		return "", fmt.Errorf("sqlstore: table %q has no status column", table)
	}
	var status string
	err := db.QueryRow(ctx, stmts.lock, id).Scan(&status)
	return status, err
}

type UpdateStatusParams struct {
	ID        uuid.UUID
	Status    string
	UpdatedAt pgtype.Timestamptz
}

// UpdateStatus returns the number of rows touched.
func (q *Queries) UpdateStatus(ctx context.Context, db DBTX, table StatusTable, arg UpdateStatusParams) (int64, error) {
	stmts, ok := statusSQL[table]
	if !ok {
		return 0, fmt.Errorf("sqlstore: table %q has no status column", table)
	}
	tag, err := db.Exec(ctx, stmts.update, arg.ID, arg.Status, arg.UpdatedAt)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const insertStatusEvent = `
INSERT INTO status_events (id, domain, entity_id, from_status, to_status, occurred_at)
VALUES ($1, $2, $3, $4, $5, $6)`

func (q *Queries) InsertStatusEvent(ctx context.Context, db DBTX, arg StatusEvents) error {
	_, err := db.Exec(ctx, insertStatusEvent,
		arg.ID, arg.Domain, arg.EntityID, arg.FromStatus, arg.ToStatus, arg.OccurredAt)
	return err
}
