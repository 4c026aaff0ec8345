package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"parklot/internal/handler/api"
	"parklot/internal/handler/middleware"
	"parklot/internal/pkg/config"
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
	ticketHandler *api.TicketHandler,
	reservationHandler *api.ReservationHandler,
	lotHandler *api.LotHandler,
	reportHandler *api.ReportHandler,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, ticketHandler, reservationHandler, lotHandler, reportHandler)
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
	ticketHandler *api.TicketHandler,
	reservationHandler *api.ReservationHandler,
	lotHandler *api.LotHandler,
	reportHandler *api.ReportHandler,
) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		tickets := apiGroup.Group("/tickets")
		{
			addRoutes(tickets, []route{
				{Method: http.MethodPost, Path: "/check-in", Handler: ticketHandler.CheckIn},
				{Method: http.MethodGet, Path: "/open", Handler: ticketHandler.ListOpenTickets},
				{Method: http.MethodPost, Path: "/:id/check-out", Handler: ticketHandler.CheckOut},
				{Method: http.MethodGet, Path: "/:id", Handler: ticketHandler.GetTicket},
			})
		}

		reservations := apiGroup.Group("/reservations")
		{
			addRoutes(reservations, []route{
				{Method: http.MethodPost, Path: "", Handler: reservationHandler.CreateReservation},
				{Method: http.MethodGet, Path: "/active", Handler: reservationHandler.ListActiveReservations},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: reservationHandler.CancelReservation},
				{Method: http.MethodPost, Path: "/:id/use", Handler: reservationHandler.MarkReservationUsed},
				{Method: http.MethodGet, Path: "/:id", Handler: reservationHandler.GetReservation},
			})
		}

		lot := apiGroup.Group("/lot")
		{
			addRoutes(lot, []route{
				{Method: http.MethodGet, Path: "/occupancy", Handler: lotHandler.GetOccupancy},
				{Method: http.MethodGet, Path: "/config", Handler: lotHandler.GetConfiguration},
				{Method: http.MethodPut, Path: "/config", Handler: lotHandler.SaveConfiguration},
			})
		}

		tariffs := apiGroup.Group("/tariffs")
		{
			addRoutes(tariffs, []route{
				{Method: http.MethodPost, Path: "/calculate", Handler: lotHandler.CalculateTariff},
				{Method: http.MethodGet, Path: "/suggest", Handler: lotHandler.SuggestTariff},
			})
		}

		reports := apiGroup.Group("/reports")
		{
			addRoutes(reports, []route{
				{Method: http.MethodGet, Path: "/revenue", Handler: reportHandler.GetRevenueReport},
				{Method: http.MethodGet, Path: "/stalls", Handler: reportHandler.GetStallUsageReport},
			})
		}
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
