package components

import (
	"stay-ledger/internal/domain/pricing"
	"stay-ledger/internal/infra/readstore"
	"stay-ledger/internal/infra/sqlstore"
	"stay-ledger/internal/infra/uow"
	"stay-ledger/internal/usecase/queries"
	"stay-ledger/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	repositoryModule,
)

var baseOption = fx.Provide(
	NewDBTX,
	NewTxBeginner,
	fx.Annotate(
		NewSQLQueries,
		fx.As(new(readstore.BookingViewQueries)),
		fx.As(new(readstore.ServiceCatalogQueries)),
		fx.As(new(readstore.RateQueries)),
		fx.As(new(readstore.BookingCodeQueries)),
		fx.As(new(uow.Queries)),
	),
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		fx.Annotate(
			readstore.NewServiceCatalogStore,
			fx.As(new(pricing.ServiceCatalog)),
		),
		fx.Annotate(
			readstore.NewRateStore,
			fx.As(new(pricing.AccommodationPricer)),
		),
		// consumed by the code checker chain in bootstrap
		readstore.NewBookingCodeStore,
	),
)

var repositoryModule = fx.Module("persistence/repository",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlstore.Queries {
	return sqlstore.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlstore.DBTX {
	return pool
}

func NewTxBeginner(pool *pgxpool.Pool) shared.TxBeginner {
	return pool
}
