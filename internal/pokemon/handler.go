package pokemon

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"pokedex/pkg/models"
)

type Handler struct {
	Catalog *Catalog
	Logger  *zap.Logger
}

func NewHandler(catalog *Catalog, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{Catalog: catalog, Logger: logger}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/pokemon", h.list)               // GET /api/pokemon
	rg.GET("/pokemon/:id", h.getByID)        // GET /api/pokemon/:id
	rg.GET("/debug", h.debug)                // GET /api/debug
	rg.GET("/debug/sprites", h.debugSprites) // GET /api/debug/sprites
}

func (h *Handler) list(c *gin.Context) {
	f := ParseFilter(c.Request.URL.Query())
	items := h.Catalog.Query(f)
	c.JSON(http.StatusOK, items)
}

func (h *Handler) getByID(c *gin.Context) {
	id := c.Param("id")
	p, err := h.Catalog.FindByID(id)
	if errors.Is(err, ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Pokemon not found"})
		return
	}
	if err != nil {
		h.Logger.Error("lookup failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "lookup failed"})
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) debug(c *gin.Context) {
	var loadErr any
	if err := h.Catalog.LoadErr(); err != nil {
		loadErr = err.Error()
	}

	c.JSON(http.StatusOK, gin.H{
		"pokemon_count":             h.Catalog.Len(),
		"loaded":                    h.Catalog.Loaded(),
		"load_error":                loadErr,
		"first_pokemon_transformed": h.Catalog.First(),
		"file_exists":               h.Catalog.SourceExists(),
		"transformation_keys": gin.H{
			"original":    models.SourceFields(),
			"transformed": models.CanonicalFields(),
		},
	})
}

func (h *Handler) debugSprites(c *gin.Context) {
	first := h.Catalog.First()
	if first == nil {
		c.JSON(http.StatusOK, gin.H{"error": "No Pokemon data available"})
		return
	}

	raw, _ := h.Catalog.RawFirstSprites()
	_, isString := raw.(string)

	c.JSON(http.StatusOK, gin.H{
		"pokemon_name":        first.Name,
		"sprites_raw":         raw,
		"sprites_transformed": first.Sprites,
		"is_string":           isString,
	})
}
