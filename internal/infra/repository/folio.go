package repository

import (
	"context"
	"log/slog"

	"stay-ledger/internal/infra"
	"stay-ledger/internal/infra/sqlstore"
	"stay-ledger/internal/pkg/pgconv"
	"stay-ledger/internal/usecase/shared"
)

type FolioWriteQueries interface {
	CreateFolio(ctx context.Context, db sqlstore.DBTX, arg sqlstore.CreateFolioParams) error
}

type FolioRepository struct {
	queries FolioWriteQueries
	db      sqlstore.DBTX
	logger  *slog.Logger
}

func NewFolioRepository(queries FolioWriteQueries, db sqlstore.DBTX, logger *slog.Logger) *FolioRepository {
	return &FolioRepository{queries: queries, db: db, logger: logger}
}

func (r *FolioRepository) Create(ctx context.Context, f shared.FolioRecord) error {
	err := r.queries.CreateFolio(ctx, r.db, sqlstore.CreateFolioParams{
		ID:        f.ID,
		BookingID: f.BookingID,
		Status:    f.Status.String(),
		Currency:  f.Currency.String(),
		CreatedAt: pgconv.TimeToPgtype(f.CreatedAt),
	})
	return infra.Classify(r.logger, "failed to create folio", err)
}
