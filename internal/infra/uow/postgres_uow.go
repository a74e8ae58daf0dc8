package uow

import (
	"context"
	"log/slog"

	"stay-ledger/internal/infra/repository"
	"stay-ledger/internal/infra/sqlstore"
	"stay-ledger/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
)

// Queries is the subset of sqlstore.Queries the write repositories use.
type Queries interface {
	repository.BookingWriteQueries
	repository.FolioWriteQueries
	repository.StatusQueries
	repository.StatusEventQueries
}

type PostgresUoW struct {
	db         shared.TxBeginner
	q          Queries
	logger     *slog.Logger
	maxRetries int
}

func NewPostgresUoW(db shared.TxBeginner, q Queries, logger *slog.Logger) shared.UnitOfWork {
	return &PostgresUoW{
		db:         db,
		q:          q,
		logger:     logger,
		maxRetries: shared.DefaultMaxRetries,
	}
}

// ReadCommitted plus row locks taken by the status repository is enough to
// serialize concurrent transitions of the same entity.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	_, err := shared.RunInTxWithRetry(ctx, u.db, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, u.maxRetries,
		func(pgxTx pgx.Tx) (struct{}, error) {
			return struct{}{}, fn(ctx, &pgTx{dbtx: pgxTx, uow: u})
		})
	return err
}

type pgTx struct {
	dbtx sqlstore.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	bookingRepo     shared.BookingRepository
	folioRepo       shared.FolioRepository
	statusRepo      shared.StatusRepository
	statusEventRepo shared.StatusEventRepository
}

func (t *pgTx) Bookings() shared.BookingRepository {
	if t.bookingRepo == nil {
		t.bookingRepo = repository.NewBookingRepository(t.uow.q, t.dbtx, t.uow.logger)
	}
	return t.bookingRepo
}

func (t *pgTx) Folios() shared.FolioRepository {
	if t.folioRepo == nil {
		t.folioRepo = repository.NewFolioRepository(t.uow.q, t.dbtx, t.uow.logger)
	}
	return t.folioRepo
}

func (t *pgTx) Statuses() shared.StatusRepository {
	if t.statusRepo == nil {
		t.statusRepo = repository.NewStatusRepository(t.uow.q, t.dbtx, t.uow.logger)
	}
	return t.statusRepo
}

func (t *pgTx) StatusEvents() shared.StatusEventRepository {
	if t.statusEventRepo == nil {
		t.statusEventRepo = repository.NewStatusEventRepository(t.uow.q, t.dbtx, t.uow.logger)
	}
	return t.statusEventRepo
}
