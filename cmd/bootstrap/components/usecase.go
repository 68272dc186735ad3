package components

import (
	"quinta-booking/internal/pkg/clock"
	"quinta-booking/internal/usecase"
	"quinta-booking/internal/usecase/commands"
	"quinta-booking/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingUseCase,
		commands.NewCalendarUseCase,
		commands.NewPricingUseCase,
		commands.NewPropertyUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewBookingQueries,
		queries.NewAvailabilityQueries,
		queries.NewPricingQueries,
		queries.NewPropertyQueries,
		queries.NewUserQueries,
		usecase.NewAuthUseCase,
		usecase.NewAssistantUseCase,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
