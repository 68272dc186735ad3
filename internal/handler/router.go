package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"quinta-booking/internal/handler/api"
	"quinta-booking/internal/handler/middleware"
	"quinta-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	bookingHandler *api.BookingHandler,
	availabilityHandler *api.AvailabilityHandler,
	pricingHandler *api.PricingHandler,
	propertyHandler *api.PropertyHandler,
	assistantHandler *api.AssistantHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, bookingHandler, availabilityHandler, pricingHandler, propertyHandler, assistantHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	bookingHandler *api.BookingHandler,
	availabilityHandler *api.AvailabilityHandler,
	pricingHandler *api.PricingHandler,
	propertyHandler *api.PropertyHandler,
	assistantHandler *api.AssistantHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: authHandler.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: authHandler.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: authHandler.Me},
			})
		}

		// Public surface: the landing page works without an account
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/property", Handler: propertyHandler.Get},
			{Method: http.MethodGet, Path: "/availability", Handler: availabilityHandler.Calendar},
			{Method: http.MethodPost, Path: "/pricing/quote", Handler: pricingHandler.Quote},
			{Method: http.MethodPost, Path: "/bookings", Handler: bookingHandler.Submit},
			{Method: http.MethodPost, Path: "/assistant/chat", Handler: assistantHandler.Chat},
		})

		// Owner surface
		admin := apiGroup.Group("")
		admin.Use(authMiddleware.RequireAuth())
		addRoutes(admin, []route{
			{Method: http.MethodGet, Path: "/bookings", Handler: bookingHandler.List},
			{Method: http.MethodGet, Path: "/bookings/:id", Handler: bookingHandler.Get},
			{Method: http.MethodPatch, Path: "/bookings/:id/status", Handler: bookingHandler.UpdateStatus},
			{Method: http.MethodPatch, Path: "/bookings/:id/payment", Handler: bookingHandler.UpdatePayment},
			{Method: http.MethodPatch, Path: "/bookings/:id/deposit", Handler: bookingHandler.UpdateDeposit},
			{Method: http.MethodPost, Path: "/bookings/manual", Handler: bookingHandler.CreateManual},
			{Method: http.MethodGet, Path: "/pricing/rules", Handler: pricingHandler.GetRules},
			{Method: http.MethodPut, Path: "/pricing/rules", Handler: pricingHandler.UpdateRules},
			{Method: http.MethodPost, Path: "/calendar/blocked/:date/toggle", Handler: availabilityHandler.ToggleBlocked},
			{Method: http.MethodPut, Path: "/property", Handler: propertyHandler.Update},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
