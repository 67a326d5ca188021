package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"coachdesk/internal/handler/api"
	"coachdesk/internal/handler/middleware"
	"coachdesk/internal/pkg/config"
)

const maxIntakeBodyBytes = 256 << 10

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, notificationHandler *api.NotificationHandler) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, notificationHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, notificationHandler *api.NotificationHandler) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		notifications := apiGroup.Group("/notifications")
		{
			intakeLimit := []gin.HandlerFunc{middleware.MaxBodySize(maxIntakeBodyBytes)}
			addRoutes(notifications, []route{
				{Method: http.MethodPost, Path: "/job-recommendations", Handler: notificationHandler.JobRecommendation, Mw: intakeLimit},
				{Method: http.MethodPost, Path: "/file-uploads", Handler: notificationHandler.FileUpload, Mw: intakeLimit},
				{Method: http.MethodPost, Path: "/messages", Handler: notificationHandler.Message, Mw: intakeLimit},
				{Method: http.MethodPost, Path: "/task-assignments", Handler: notificationHandler.TaskAssignment, Mw: intakeLimit},
			})

			addRoutes(notifications, []route{
				{Method: http.MethodPost, Path: "/flush", Handler: notificationHandler.FlushAll},
				{Method: http.MethodPost, Path: "/recipients/:id/flush", Handler: notificationHandler.FlushRecipient},
				{Method: http.MethodGet, Path: "/recipients/:id/deliveries", Handler: notificationHandler.ListDeliveries},
				{Method: http.MethodGet, Path: "/status", Handler: notificationHandler.Status},
				{Method: http.MethodGet, Path: "/channel", Handler: notificationHandler.GetChannel},
				{Method: http.MethodPut, Path: "/channel", Handler: notificationHandler.ConfigureChannel},
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
