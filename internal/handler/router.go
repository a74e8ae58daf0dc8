package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"stay-ledger/internal/domain/booking"
	"stay-ledger/internal/domain/folio"
	"stay-ledger/internal/domain/invoice"
	"stay-ledger/internal/domain/payment"
	sm "stay-ledger/internal/domain/statemachine"
	"stay-ledger/internal/handler/api"
	"stay-ledger/internal/handler/middleware"
	"stay-ledger/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers groups everything the router mounts.
type Handlers struct {
	Bookings    *api.BookingHandler
	Quotes      *api.QuoteHandler
	Transitions *api.TransitionHandler
	States      *api.StateHandler
}

// transitionPaths maps the URL collection name of each lifecycle to its domain.
var transitionPaths = []struct {
	collection string
	domain     sm.Domain
}{
	{"bookings", booking.Domain},
	{"folios", folio.Domain},
	{"invoices", invoice.Domain},
	{"payments", payment.Domain},
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		addRoutes(apiGroup, []route{
			{Method: http.MethodGet, Path: "/states", Handler: h.States.List},
			{Method: http.MethodGet, Path: "/states/:domain", Handler: h.States.Get},
			{Method: http.MethodPost, Path: "/quotes", Handler: h.Quotes.Quote},
			{Method: http.MethodPost, Path: "/bookings", Handler: h.Bookings.Create},
			{Method: http.MethodGet, Path: "/bookings/:id", Handler: h.Bookings.Get},
		})

		transitions := make([]route, 0, len(transitionPaths))
		for _, tp := range transitionPaths {
			transitions = append(transitions, route{
				Method:  http.MethodPost,
				Path:    "/" + tp.collection + "/:id/transitions",
				Handler: h.Transitions.Transition(tp.domain),
			})
		}
		addRoutes(apiGroup, transitions)
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
