package v1

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// EngineConfig configures the gin engine around the handler
type EngineConfig struct {
	Handler *Handler
	// StaticDir is served at / when set
	StaticDir string
	// AllowOrigins lists CORS origins; empty allows all
	AllowOrigins []string
}

// NewEngine builds the gin engine with CORS, recovery, request logging, the
// /api routes and the static front end.
func NewEngine(cfg *EngineConfig) *gin.Engine {
	e := gin.New()
	e.Use(gin.Recovery(), requestLogger())

	cc := cors.DefaultConfig()
	if len(cfg.AllowOrigins) == 0 {
		cc.AllowAllOrigins = true
	} else {
		cc.AllowOrigins = cfg.AllowOrigins
	}
	cc.ExposeHeaders = []string{"Content-Disposition"}
	e.Use(cors.New(cc))

	cfg.Handler.Routers(e.Group("/api"))

	if cfg.StaticDir != "" {
		static := http.Dir(cfg.StaticDir)
		e.NoRoute(func(c *gin.Context) {
			if c.Request.Method != http.MethodGet {
				c.Status(http.StatusNotFound)
				return
			}
			name := filepath.Join(cfg.StaticDir, filepath.FromSlash(filepath.Clean("/"+c.Request.URL.Path)))
			if info, err := os.Stat(name); err != nil || info.IsDir() {
				c.FileFromFS("/", static)
				return
			}
			c.FileFromFS(c.Request.URL.Path, static)
		})
	}

	return e
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		slog.DebugContext(c.Request.Context(), "http request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start))
	}
}
