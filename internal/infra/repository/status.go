package repository

import (
	"context"
	"log/slog"
	"time"

	"stay-ledger/internal/domain/booking"
	"stay-ledger/internal/domain/folio"
	"stay-ledger/internal/domain/invoice"
	"stay-ledger/internal/domain/payment"
	sm "stay-ledger/internal/domain/statemachine"
	"stay-ledger/internal/infra"
	"stay-ledger/internal/infra/sqlstore"
	"stay-ledger/internal/pkg/errs"
	"stay-ledger/internal/pkg/pgconv"

	"github.com/google/uuid"
)

var domainTables = map[sm.Domain]sqlstore.StatusTable{
	booking.Domain: sqlstore.TableBookings,
	folio.Domain:   sqlstore.TableFolios,
	invoice.Domain: sqlstore.TableInvoices,
	payment.Domain: sqlstore.TablePayments,
}

type StatusQueries interface {
	LockStatus(ctx context.Context, db sqlstore.DBTX, table sqlstore.StatusTable, id uuid.UUID) (string, error)
	UpdateStatus(ctx context.Context, db sqlstore.DBTX, table sqlstore.StatusTable, arg sqlstore.UpdateStatusParams) (int64, error)
}

type StatusRepository struct {
	queries StatusQueries
	db      sqlstore.DBTX
	logger  *slog.Logger
}

func NewStatusRepository(queries StatusQueries, db sqlstore.DBTX, logger *slog.Logger) *StatusRepository {
	return &StatusRepository{queries: queries, db: db, logger: logger}
}

func (r *StatusRepository) LockCurrent(ctx context.Context, domain sm.Domain, id uuid.UUID) (string, error) {
	table, err := tableFor(domain)
	if err != nil {
		return "", err
	}

	tag, err := r.queries.LockStatus(ctx, r.db, table, id)
	if err != nil {
		wrapped := infra.Classify(r.logger, "failed to lock "+string(table)+" status", err)
		if infra.IsKind(wrapped, infra.KindNotFound) {
			return "", errs.Mark(wrapped, errs.ErrEntityNotFound)
		}
		return "", wrapped
	}
	return tag, nil
}

func (r *StatusRepository) Update(ctx context.Context, domain sm.Domain, id uuid.UUID, to sm.State, at time.Time) error {
	table, err := tableFor(domain)
	if err != nil {
		return err
	}

	n, err := r.queries.UpdateStatus(ctx, r.db, table, sqlstore.UpdateStatusParams{
		ID:        id,
		Status:    to.String(),
		UpdatedAt: pgconv.TimeToPgtype(at),
	})
	if err != nil {
		return infra.Classify(r.logger, "failed to update "+string(table)+" status", err)
	}
	if n == 0 {
		return errs.Mark(infra.WrapRepoErr(r.logger, infra.KindNotFound, string(table)+" row vanished during update", nil), errs.ErrEntityNotFound)
	}
	return nil
}

func tableFor(domain sm.Domain) (sqlstore.StatusTable, error) {
	table, ok := domainTables[domain]
	if !ok {
		return "", &sm.UnknownDomainError{Domain: domain}
	}
	return table, nil
}
