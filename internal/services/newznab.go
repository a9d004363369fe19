package services

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	apperrors "github.com/amaumene/nzbio/internal/errors"
	"github.com/amaumene/nzbio/internal/feed"
	"github.com/amaumene/nzbio/internal/metrics"
	"github.com/amaumene/nzbio/internal/models"
	"github.com/amaumene/nzbio/pkg/httputil"
	"github.com/amaumene/nzbio/pkg/logger"
	"github.com/amaumene/nzbio/pkg/security"
)

// maxFeedBytes caps how much of an indexer response is read.
const maxFeedBytes = 16 << 20

// Newznab searches a newznab-compatible indexer (NZBHydra, Prowlarr, ...).
type Newznab struct {
	apiURL     string
	apiKey     string
	httpClient *http.Client
	logger     logger.Logger
	metrics    *metrics.Metrics
}

// NewNewznab creates a client for apiURL, the indexer's /api endpoint.
func NewNewznab(apiURL, apiKey string, timeout time.Duration, log logger.Logger) *Newznab {
	if log == nil {
		log = logger.NewNop()
	}
	return &Newznab{
		apiURL:     apiURL,
		apiKey:     apiKey,
		httpClient: httputil.NewHTTPClient(timeout),
		logger:     log,
	}
}

func (n *Newznab) SetMetrics(m *metrics.Metrics) {
	n.metrics = m
}

// Search runs a t=search text query and returns the parsed feed items in feed order.
func (n *Newznab) Search(ctx context.Context, query string) ([]models.CandidateItem, error) {
	params := url.Values{}
	params.Set("apikey", n.apiKey)
	params.Set("t", "search")
	params.Set("q", query)
	searchURL := n.apiURL + "?" + params.Encode()

	n.logger.Debugf("[Newznab] API call to search - URL: %s", security.MaskURL(searchURL))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, apperrors.NewIndexerError("failed to build search request", err)
	}
	httputil.SetBrowserHeaders(req)

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return nil, transportError(n.metrics, metrics.UpstreamIndexer, "indexer search", err, apperrors.NewIndexerError)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		n.metrics.ObserveUpstream(metrics.UpstreamIndexer, metrics.OutcomeError)
		return nil, apperrors.NewIndexerError(fmt.Sprintf("indexer API error: status %d", resp.StatusCode), nil)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxFeedBytes))
	if err != nil {
		return nil, transportError(n.metrics, metrics.UpstreamIndexer, "reading indexer response", err, apperrors.NewIndexerError)
	}

	items := feed.Parse(string(body))
	n.metrics.ObserveUpstream(metrics.UpstreamIndexer, metrics.OutcomeSuccess)
	n.logger.Debugf("[Newznab] API call completed - found %d items for %q", len(items), query)

	return items, nil
}
