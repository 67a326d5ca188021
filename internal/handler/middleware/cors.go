package middleware

import (
	"log/slog"
	"slices"

	"coachdesk/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware always allows the caller header and exposes the request id
// so browser-based admin tools can correlate requests with server logs.
func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	allowHeaders := appendMissing(cfg.AllowHeaders, CallerHeader)
	exposeHeaders := appendMissing(cfg.ExposeHeaders, RequestIDHeader)

	slog.Info("CORS middleware initialized",
		slog.Any("allow_origins", cfg.AllowOrigins),
		slog.Any("allow_headers", allowHeaders))

	return cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     allowHeaders,
		ExposeHeaders:    exposeHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	})
}

func appendMissing(list []string, header string) []string {
	out := slices.Clone(list)
	if !slices.Contains(out, header) {
		out = append(out, header)
	}
	return out
}
