package server

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"pokedex/internal/pokemon"
)

type Options struct {
	IndexPath string // page served at GET /
	StaticDir string // served under /static
}

// NewRouter wires the HTTP API around an already loaded catalog.
func NewRouter(catalog *pokemon.Catalog, opts Options, log *zap.Logger) *gin.Engine {
	if log == nil {
		log = zap.NewNop()
	}

	router := gin.New()
	router.Use(RequestID(), Logger(log), gin.Recovery())
	_ = router.SetTrustedProxies([]string{"127.0.0.1"})

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "pokemon": catalog.Len()})
	})

	router.GET("/ready", func(c *gin.Context) {
		if !catalog.Loaded() {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":     "not_ready",
				"load_error": catalog.LoadErr().Error(),
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready", "pokemon": catalog.Len()})
	})

	if opts.IndexPath != "" {
		router.GET("/", func(c *gin.Context) {
			if _, err := os.Stat(opts.IndexPath); err != nil {
				c.JSON(http.StatusNotFound, gin.H{"error": "index page not found"})
				return
			}
			c.File(opts.IndexPath)
		})
	}
	if opts.StaticDir != "" {
		router.Static("/static", opts.StaticDir)
	}

	h := pokemon.NewHandler(catalog, log)
	h.RegisterRoutes(router.Group("/api"))

	return router
}
