package sqlstore

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const createFolio = `
INSERT INTO folios (id, booking_id, status, currency, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $5)`

type CreateFolioParams struct {
	ID        uuid.UUID
	BookingID uuid.UUID
	Status    string
	Currency  string
	CreatedAt pgtype.Timestamptz
}

func (q *Queries) CreateFolio(ctx context.Context, db DBTX, arg CreateFolioParams) error {
	_, err := db.Exec(ctx, createFolio, arg.ID, arg.BookingID, arg.Status, arg.Currency, arg.CreatedAt)
	return err
}
