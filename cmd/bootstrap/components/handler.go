package components

import (
	"quinta-booking/internal/handler"
	"quinta-booking/internal/handler/api"
	"quinta-booking/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewBookingHandler,
		api.NewAvailabilityHandler,
		api.NewPricingHandler,
		api.NewPropertyHandler,
		api.NewAssistantHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
