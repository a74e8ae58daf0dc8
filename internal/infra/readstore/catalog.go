package readstore

import (
	"context"
	"log/slog"

	"stay-ledger/internal/domain/money"
	"stay-ledger/internal/domain/pricing"
	"stay-ledger/internal/infra"
	"stay-ledger/internal/infra/sqlstore"
	"stay-ledger/internal/pkg/errs"

	"github.com/google/uuid"
)

type ServiceCatalogQueries interface {
	GetServicesByIDs(ctx context.Context, db sqlstore.DBTX, ids []uuid.UUID) ([]sqlstore.Services, error)
}

// ServiceCatalogStore implements pricing.ServiceCatalog on the services table.
// Inactive rows are returned so the calculator can reject them explicitly.
type ServiceCatalogStore struct {
	queries ServiceCatalogQueries
	db      sqlstore.DBTX
	logger  *slog.Logger
}

func NewServiceCatalogStore(queries ServiceCatalogQueries, db sqlstore.DBTX, logger *slog.Logger) *ServiceCatalogStore {
	return &ServiceCatalogStore{queries: queries, db: db, logger: logger}
}

func (s *ServiceCatalogStore) ServicesByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]pricing.Service, error) {
	rows, err := s.queries.GetServicesByIDs(ctx, s.db, ids)
	if err != nil {
		return nil, infra.Classify(s.logger, "failed to load services", err)
	}

	out := make(map[uuid.UUID]pricing.Service, len(rows))
	for _, row := range rows {
		svc, err := rowToService(row)
		if err != nil {
			return nil, err
		}
		out[row.ID] = svc
	}
	return out, nil
}

func rowToService(row sqlstore.Services) (pricing.Service, error) {
	pt, err := pricing.ParsePriceType(row.PriceType)
	if err != nil {
		return pricing.Service{}, errs.Wrapf(err, "service %s has price type %q", row.ID, row.PriceType)
	}
	cur, err := money.ParseCurrency(row.Currency)
	if err != nil {
		return pricing.Service{}, errs.Wrapf(err, "service %s", row.ID)
	}

	return pricing.Service{
		ID:          row.ID,
		Name:        row.Name,
		PriceType:   pt,
		UnitPrice:   money.New(row.UnitPrice, cur),
		Active:      row.IsActive,
		MaxQuantity: int(row.MaxQuantity),
	}, nil
}
