package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amaumene/nzbio/internal/constants"
	"github.com/amaumene/nzbio/internal/models"
)

func (h *Handler) handleManifest(c *gin.Context) {
	writeJSON(c, http.StatusOK, createManifest())
}

func createManifest() models.Manifest {
	return models.Manifest{
		ID:          constants.AddonID,
		Version:     constants.AddonVersion,
		Name:        constants.AddonName,
		Description: constants.AddonDescription,
		Types:       constants.SupportedTypes,
		Resources:   []string{"stream"},
		Catalogs:    []models.Catalog{},
		BehaviorHints: models.BehaviorHints{
			Configurable:          false,
			ConfigurationRequired: false,
		},
		IDPrefixes: []string{constants.IMDBPrefix},
		Background: constants.AddonBackground,
		Logo:       constants.AddonLogo,
	}
}
