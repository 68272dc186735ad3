package components

import (
	"quinta-booking/internal/infra/db"
	"quinta-booking/internal/infra/readstore"
	"quinta-booking/internal/infra/repository"
	"quinta-booking/internal/usecase"
	"quinta-booking/internal/usecase/commands"
	"quinta-booking/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var RepositoryModule = fx.Module("repository",
	fx.Provide(
		NewDBTX,
		// Write side
		fx.Annotate(
			repository.NewBookingRepository,
			fx.As(new(commands.BookingRepository)),
		),
		fx.Annotate(
			repository.NewBlockedDateRepository,
			fx.As(new(commands.BlockedDateRepository)),
		),
		fx.Annotate(
			repository.NewPricingRepository,
			fx.As(new(commands.PricingRepository)),
		),
		fx.Annotate(
			repository.NewPropertyRepository,
			fx.As(new(commands.PropertyRepository)),
		),
		fx.Annotate(
			repository.NewUserRepository,
			fx.As(new(usecase.UserRepository)),
		),
		// Read side
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingViewRepo)),
			fx.As(new(commands.BookingCommandReads)),
		),
		fx.Annotate(
			readstore.NewCalendarReadStore,
			fx.As(new(queries.CalendarViewRepo)),
		),
		fx.Annotate(
			readstore.NewPricingReadStore,
			fx.As(new(queries.PricingViewRepo)),
			fx.As(new(commands.PricingCommandReads)),
		),
		fx.Annotate(
			readstore.NewPropertyReadStore,
			fx.As(new(queries.PropertyViewRepo)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
