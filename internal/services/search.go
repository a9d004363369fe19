package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/cehbz/torrentname"
	"github.com/mozillazg/go-unidecode"

	"github.com/amaumene/nzbio/internal/feed"
	"github.com/amaumene/nzbio/internal/models"
	"github.com/amaumene/nzbio/pkg/logger"
)

// Indexer is anything that answers a text search with feed items.
type Indexer interface {
	Search(ctx context.Context, query string) ([]models.CandidateItem, error)
}

// SearchOptions tunes the orchestration around the indexer call.
type SearchOptions struct {
	RetentionDays int
	// StrictMatch drops releases whose parsed season/episode or year contradicts the request.
	StrictMatch bool
	// TransliterateQuery folds the title to ASCII before querying.
	TransliterateQuery bool
}

// Searcher builds the indexer query for a resolved title and filters what comes back.
type Searcher struct {
	indexer Indexer
	opts    SearchOptions
	logger  logger.Logger
	now     func() time.Time
}

func NewSearcher(indexer Indexer, opts SearchOptions, log logger.Logger) *Searcher {
	if log == nil {
		log = logger.NewNop()
	}
	return &Searcher{
		indexer: indexer,
		opts:    opts,
		logger:  log,
		now:     time.Now,
	}
}

// Search never fails: indexer errors are logged and yield an empty list.
func (s *Searcher) Search(ctx context.Context, meta models.ResolvedMetadata, ref models.MediaReference) []models.CandidateItem {
	query := BuildQuery(meta, ref, s.opts.TransliterateQuery)
	s.logger.Infof("[Search] searching indexer for: %s", query)

	items, err := s.indexer.Search(ctx, query)
	if err != nil {
		s.logger.Errorf("[Search] indexer search failed for %q: %v", query, err)
		return []models.CandidateItem{}
	}

	fresh := FilterByRetention(items, s.now(), s.opts.RetentionDays)
	if dropped := len(items) - len(fresh); dropped > 0 {
		s.logger.Debugf("[Search] retention filter dropped %d of %d items", dropped, len(items))
	}

	if s.opts.StrictMatch {
		matched := FilterByRelease(fresh, meta, ref)
		s.logger.Debugf("[Search] strict matching: %d -> %d items", len(fresh), len(matched))
		fresh = matched
	}

	return fresh
}

// BuildQuery returns "{title} {year}" for movies and "{title} SxxEyy" for episodes.
func BuildQuery(meta models.ResolvedMetadata, ref models.MediaReference, transliterate bool) string {
	title := meta.Title
	if transliterate {
		title = unidecode.Unidecode(title)
	}

	if ref.HasEpisode {
		return fmt.Sprintf("%s S%02dE%02d", title, ref.Season, ref.Episode)
	}
	return fmt.Sprintf("%s %s", title, meta.Year)
}

// FilterByRetention keeps items published at or after now minus retentionDays.
// Items without a usable publish date are kept.
func FilterByRetention(items []models.CandidateItem, now time.Time, retentionDays int) []models.CandidateItem {
	cutoff := now.Add(-time.Duration(retentionDays) * 24 * time.Hour)

	kept := make([]models.CandidateItem, 0, len(items))
	for _, item := range items {
		published, ok := feed.ParsePubDate(item.PubDate)
		if ok && published.Before(cutoff) {
			continue
		}
		kept = append(kept, item)
	}
	return kept
}

// FilterByRelease drops items whose release name clearly names another episode or year.
func FilterByRelease(items []models.CandidateItem, meta models.ResolvedMetadata, ref models.MediaReference) []models.CandidateItem {
	kept := make([]models.CandidateItem, 0, len(items))
	for _, item := range items {
		if matchesRelease(item.Title, meta, ref) {
			kept = append(kept, item)
		}
	}
	return kept
}

func matchesRelease(title string, meta models.ResolvedMetadata, ref models.MediaReference) bool {
	parsed := torrentname.Parse(title)
	if parsed == nil {
		return true
	}

	if ref.HasEpisode {
		if parsed.Season > 0 && parsed.Episode > 0 {
			return parsed.Season == ref.Season && parsed.Episode == ref.Episode
		}
		return true
	}

	year, err := strconv.Atoi(meta.Year)
	if err != nil || parsed.Year == 0 {
		return true
	}
	return parsed.Year == year
}
