// Package handlers implements HTTP request handlers for the Stremio addon API.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amaumene/nzbio/internal/config"
	"github.com/amaumene/nzbio/internal/services"
)

// Handler handles HTTP requests for the Stremio addon.
type Handler struct {
	services *services.Container
	config   config.Config
}

// New creates a new Handler with the provided services and configuration.
func New(services *services.Container, cfg config.Config) *Handler {
	return &Handler{
		services: services,
		config:   cfg,
	}
}

// RegisterRoutes registers all HTTP routes for the Stremio addon.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", h.handleManifest)
	r.GET("/manifest.json", h.handleManifest)
	r.GET("/stream/:type/:id", h.handleStreamWrapper)
	r.GET("/health", h.handleHealth)

	// Unknown paths answer with the manifest so misconfigured clients still install.
	r.NoRoute(h.handleManifest)
}

func (h *Handler) handleStreamWrapper(c *gin.Context) {
	stripJSONExtension(c, "id")
	h.handleStream(c)
}

func (h *Handler) handleHealth(c *gin.Context) {
	writeJSON(c, http.StatusOK, gin.H{"status": "ok"})
}
