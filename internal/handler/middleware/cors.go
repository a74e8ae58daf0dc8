package middleware

import (
	"log/slog"
	"slices"

	"stay-ledger/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware accepts "*" in the origin list; it then allows every
// origin and drops credentials, which browsers refuse to combine.
func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     appendMissing(cfg.AllowHeaders, RequestIDHeader),
		ExposeHeaders:    appendMissing(cfg.ExposeHeaders, RequestIDHeader),
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	if slices.Contains(cfg.AllowOrigins, "*") {
		corsCfg.AllowOrigins = nil
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowCredentials = false
	}

	slog.Info("CORS middleware initialized",
		slog.Any("allow_origins", cfg.AllowOrigins),
		slog.Bool("allow_all_origins", corsCfg.AllowAllOrigins))
	return cors.New(corsCfg)
}

func appendMissing(list []string, v string) []string {
	if slices.Contains(list, v) {
		return list
	}
	return append(slices.Clone(list), v)
}
