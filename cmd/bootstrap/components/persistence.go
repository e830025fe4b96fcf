package components

import (
	"place-booking/internal/infra/memstore"
	"place-booking/internal/infra/readstore"
	sqlc "place-booking/internal/infra/sqlc/generated"
	"place-booking/internal/infra/uow"
	"place-booking/internal/usecase/queries"
	"place-booking/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

// Write repositories are not provided here: they are bound to a transaction
// and built by the unit of work.
var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	unitOfWorkModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Booking
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.BookingViewQueries)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingViewRepo)),
		),
		// Taxonomy
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.TaxonomyViewQueries)),
		),
		fx.Annotate(
			readstore.NewTaxonomyReadStore,
			fx.As(new(queries.TaxonomyViewRepo)),
		),
	),
)

var unitOfWorkModule = fx.Module("persistence/uow",
	fx.Provide(
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
	),
)

// MemoryPersistenceModule serves every port from one in-process store.
var MemoryPersistenceModule = fx.Module("persistence/memory",
	fx.Provide(
		memstore.New,
		func(s *memstore.Store) shared.UnitOfWork { return s },
		func(s *memstore.Store) queries.BookingViewRepo { return s.BookingViews() },
		func(s *memstore.Store) queries.TaxonomyViewRepo { return s.TaxonomyViews() },
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
