package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"slotbook/internal/handler/api"
	"slotbook/internal/handler/middleware"
	"slotbook/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, wizardHandler *api.WizardHandler, boardHandler *api.BoardHandler) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, wizardHandler, boardHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, wizardHandler *api.WizardHandler, boardHandler *api.BoardHandler) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(middleware.RequireCredential())
	{
		wizards := apiGroup.Group("/wizards")
		{
			addRoutes(wizards, []route{
				{Method: http.MethodPost, Path: "", Handler: wizardHandler.Create},
				{Method: http.MethodGet, Path: "/:id", Handler: wizardHandler.Get},
				{Method: http.MethodPost, Path: "/:id/advance", Handler: wizardHandler.Advance},
				{Method: http.MethodPost, Path: "/:id/back", Handler: wizardHandler.Back},
				{Method: http.MethodPost, Path: "/:id/date", Handler: wizardHandler.PickDate},
				{Method: http.MethodPost, Path: "/:id/time", Handler: wizardHandler.PickTime},
				{Method: http.MethodPost, Path: "/:id/note", Handler: wizardHandler.SetNote},
				{Method: http.MethodPost, Path: "/:id/submit", Handler: wizardHandler.Submit},
				{Method: http.MethodPost, Path: "/:id/reset", Handler: wizardHandler.Reset},
			})
		}

		boards := apiGroup.Group("/boards")
		{
			addRoutes(boards, []route{
				{Method: http.MethodPost, Path: "", Handler: boardHandler.Create},
				{Method: http.MethodPost, Path: "/:id/refresh", Handler: boardHandler.Refresh},
				{Method: http.MethodGet, Path: "/:id/page", Handler: boardHandler.Page},
				{Method: http.MethodPatch, Path: "/:id/reservations/:rid/status", Handler: boardHandler.ChangeStatus},
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
