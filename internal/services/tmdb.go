package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"time"

	"github.com/amaumene/nzbio/internal/constants"
	apperrors "github.com/amaumene/nzbio/internal/errors"
	"github.com/amaumene/nzbio/internal/metrics"
	"github.com/amaumene/nzbio/internal/models"
	"github.com/amaumene/nzbio/pkg/httputil"
	"github.com/amaumene/nzbio/pkg/logger"
	"github.com/amaumene/nzbio/pkg/security"
)

var releaseYearRegex = regexp.MustCompile(`^\s*(\d{4})`)

// TMDB resolves IMDB ids to title and year through the /find endpoint.
type TMDB struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     logger.Logger
	metrics    *metrics.Metrics
}

func NewTMDB(apiKey, baseURL string, timeout time.Duration, log logger.Logger) *TMDB {
	if baseURL == "" {
		baseURL = constants.DefaultTMDBBaseURL
	}
	if log == nil {
		log = logger.NewNop()
	}

	return &TMDB{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: httputil.NewHTTPClient(timeout),
		logger:     log,
	}
}

func (t *TMDB) SetMetrics(m *metrics.Metrics) {
	t.metrics = m
}

// Resolve looks up imdbID. Movies are preferred over series when both match.
// A lookup without matches returns an error matching errors.ErrNotFound.
func (t *TMDB) Resolve(ctx context.Context, imdbID string) (*models.ResolvedMetadata, error) {
	apiURL := fmt.Sprintf("%s/find/%s?api_key=%s&external_source=imdb_id",
		t.baseURL, url.PathEscape(imdbID), url.QueryEscape(t.apiKey))

	t.logger.Debugf("[TMDB] fetching info for %s - URL: %s", imdbID, security.MaskURL(apiURL))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, apperrors.NewMetadataError("failed to build TMDB request", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, transportError(t.metrics, metrics.UpstreamTMDB, "TMDB lookup", err, apperrors.NewMetadataError)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.metrics.ObserveUpstream(metrics.UpstreamTMDB, metrics.OutcomeError)
		return nil, apperrors.NewMetadataError(fmt.Sprintf("TMDB API error: status %d", resp.StatusCode), nil)
	}

	var findResp models.TMDBFindResponse
	if err := json.NewDecoder(resp.Body).Decode(&findResp); err != nil {
		t.metrics.ObserveUpstream(metrics.UpstreamTMDB, metrics.OutcomeError)
		return nil, apperrors.NewMetadataError("failed to decode TMDB response", err)
	}

	meta, ok := resolveFindResponse(&findResp)
	if !ok {
		t.metrics.ObserveUpstream(metrics.UpstreamTMDB, metrics.OutcomeNotFound)
		return nil, apperrors.NewNotFoundError(imdbID)
	}

	t.metrics.ObserveUpstream(metrics.UpstreamTMDB, metrics.OutcomeSuccess)
	return meta, nil
}

func resolveFindResponse(resp *models.TMDBFindResponse) (*models.ResolvedMetadata, bool) {
	if len(resp.MovieResults) > 0 {
		movie := resp.MovieResults[0]
		return &models.ResolvedMetadata{
			TMDBID: movie.ID,
			Title:  movie.Title,
			Year:   releaseYear(movie.ReleaseDate),
			Kind:   constants.TypeMovie,
		}, true
	}

	if len(resp.TVResults) > 0 {
		show := resp.TVResults[0]
		return &models.ResolvedMetadata{
			TMDBID: show.ID,
			Title:  show.Name,
			Year:   releaseYear(show.FirstAirDate),
			Kind:   constants.TypeSeries,
		}, true
	}

	return nil, false
}

// releaseYear extracts the leading four-digit year of a TMDB date, or "".
func releaseYear(date string) string {
	m := releaseYearRegex.FindStringSubmatch(date)
	if m == nil {
		return ""
	}
	return m[1]
}
