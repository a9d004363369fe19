// Package services provides the outbound clients and search orchestration of the addon.
package services

import (
	"context"

	"github.com/amaumene/nzbio/internal/config"
	"github.com/amaumene/nzbio/internal/metrics"
	"github.com/amaumene/nzbio/internal/models"
	"github.com/amaumene/nzbio/pkg/logger"
)

// Container holds all application services for dependency injection.
type Container struct {
	Metadata MetadataService
	Search   SearchService
	Logger   logger.Logger
	Metrics  *metrics.Metrics
}

// MetadataService resolves an external id to title/year metadata.
type MetadataService interface {
	Resolve(ctx context.Context, externalID string) (*models.ResolvedMetadata, error)
}

// SearchService finds fresh candidate releases for resolved metadata.
type SearchService interface {
	Search(ctx context.Context, meta models.ResolvedMetadata, ref models.MediaReference) []models.CandidateItem
}

// NewContainer wires the TMDB resolver and the newznab searcher from cfg.
func NewContainer(cfg config.Config, log logger.Logger, m *metrics.Metrics) *Container {
	tmdb := NewTMDB(cfg.TMDBAPIKey, cfg.TMDBBaseURL, cfg.MetadataTimeout, log)
	tmdb.SetMetrics(m)

	indexer := NewNewznab(cfg.HydraAPIURL(), cfg.HydraAPIKey, cfg.SearchTimeout, log)
	indexer.SetMetrics(m)

	searcher := NewSearcher(indexer, SearchOptions{
		RetentionDays:      cfg.RetentionDays,
		StrictMatch:        cfg.StrictMatch,
		TransliterateQuery: cfg.TransliterateQuery,
	}, log)

	return &Container{
		Metadata: tmdb,
		Search:   searcher,
		Logger:   log,
		Metrics:  m,
	}
}
