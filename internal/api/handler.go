package api

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ibrahimsalihaldhubayb/al-zumuruda-system/internal/override"
	"github.com/ibrahimsalihaldhubayb/al-zumuruda-system/internal/service/inventory"
	"github.com/ibrahimsalihaldhubayb/al-zumuruda-system/internal/service/quote"
)

// Handler wires the sales API together.
type Handler struct {
	cache       *inventory.Cache
	override    *override.Client
	renderer    *quote.Renderer
	officeFee   float64
	downloadTTL time.Duration
	downloads   *downloadStore
}

// NewHandler creates the API handler.
func NewHandler(cache *inventory.Cache, override *override.Client, renderer *quote.Renderer, officeFee float64, downloadTTL time.Duration) *Handler {
	return &Handler{
		cache:       cache,
		override:    override,
		renderer:    renderer,
		officeFee:   officeFee,
		downloadTTL: downloadTTL,
		downloads:   newDownloadStore(),
	}
}

// RegisterRoutes registers the API routes.
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	// System state
	router.GET("/status", h.GetStatus)

	// Unit lookup
	router.GET("/units/:id", h.GetUnit)

	// Quote generation and download
	router.POST("/quotes", h.CreateQuote)
	router.GET("/quotes/download/:token", h.DownloadQuote)

	// Administrative path
	router.PUT("/units/:id/status", h.SetUnitStatus)
	router.POST("/refresh", h.Refresh)
}
