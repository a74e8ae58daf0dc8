package repository

import (
	"context"
	"log/slog"

	"stay-ledger/internal/infra"
	"stay-ledger/internal/infra/sqlstore"
	"stay-ledger/internal/pkg/pgconv"
	"stay-ledger/internal/usecase/shared"
)

type StatusEventQueries interface {
	InsertStatusEvent(ctx context.Context, db sqlstore.DBTX, arg sqlstore.StatusEvents) error
}

type StatusEventRepository struct {
	queries StatusEventQueries
	db      sqlstore.DBTX
	logger  *slog.Logger
}

func NewStatusEventRepository(queries StatusEventQueries, db sqlstore.DBTX, logger *slog.Logger) *StatusEventRepository {
	return &StatusEventRepository{queries: queries, db: db, logger: logger}
}

func (r *StatusEventRepository) Append(ctx context.Context, ev shared.StatusChanged) error {
	err := r.queries.InsertStatusEvent(ctx, r.db, sqlstore.StatusEvents{
		ID:         ev.ID,
		Domain:     ev.Domain.String(),
		EntityID:   ev.EntityID,
		FromStatus: pgconv.TextToPgtype(ev.From.String()),
		ToStatus:   ev.To.String(),
		OccurredAt: pgconv.TimeToPgtype(ev.OccurredAt),
	})
	return infra.Classify(r.logger, "failed to append status event", err)
}
