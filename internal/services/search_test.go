package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amaumene/nzbio/internal/models"
)

type fakeIndexer struct {
	items   []models.CandidateItem
	err     error
	queries []string
}

func (f *fakeIndexer) Search(ctx context.Context, query string) ([]models.CandidateItem, error) {
	f.queries = append(f.queries, query)
	return f.items, f.err
}

func TestBuildQuery(t *testing.T) {
	shawshank := models.ResolvedMetadata{Title: "The Shawshank Redemption", Year: "1994", Kind: "movie"}
	got := BuildQuery(shawshank, models.MediaReference{ExternalID: "tt0111161", Kind: "movie"}, false)
	assert.Equal(t, "The Shawshank Redemption 1994", got)

	thrones := models.ResolvedMetadata{Title: "Game of Thrones", Year: "2011", Kind: "series"}
	ref := models.MediaReference{ExternalID: "tt0944947", Kind: "series", Season: 1, Episode: 1, HasEpisode: true}
	assert.Equal(t, "Game of Thrones S01E01", BuildQuery(thrones, ref, false))

	ref.Season, ref.Episode = 10, 123
	assert.Equal(t, "Game of Thrones S10E123", BuildQuery(thrones, ref, false))

	amelie := models.ResolvedMetadata{Title: "Le Fabuleux Destin d'Amélie Poulain", Year: "2001"}
	assert.Equal(t, "Le Fabuleux Destin d'Amelie Poulain 2001", BuildQuery(amelie, models.MediaReference{}, true))
	assert.Equal(t, "Le Fabuleux Destin d'Amélie Poulain 2001", BuildQuery(amelie, models.MediaReference{}, false))

	noYear := models.ResolvedMetadata{Title: "Untitled"}
	assert.Equal(t, "Untitled ", BuildQuery(noYear, models.MediaReference{}, false))
}

func TestFilterByRetention(t *testing.T) {
	now := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
	cutoff := now.Add(-365 * 24 * time.Hour)

	items := []models.CandidateItem{
		{Title: "recent", PubDate: now.Add(-24 * time.Hour).Format(time.RFC1123Z)},
		{Title: "boundary", PubDate: cutoff.Format(time.RFC1123Z)},
		{Title: "too old", PubDate: cutoff.Add(-time.Second).Format(time.RFC1123Z)},
		{Title: "no date", PubDate: ""},
		{Title: "garbage date", PubDate: "last tuesday"},
	}

	kept := FilterByRetention(items, now, 365)

	var titles []string
	for _, item := range kept {
		titles = append(titles, item.Title)
	}
	assert.Equal(t, []string{"recent", "boundary", "no date", "garbage date"}, titles)
}

func TestFilterByRetentionEmpty(t *testing.T) {
	kept := FilterByRetention(nil, time.Now(), 365)
	assert.NotNil(t, kept)
	assert.Empty(t, kept)
}

func TestSearcherSearch(t *testing.T) {
	now := time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)
	indexer := &fakeIndexer{items: []models.CandidateItem{
		{Title: "A.1080p", PubDate: now.Add(-time.Hour).Format(time.RFC1123Z)},
		{Title: "B.720p", PubDate: now.Add(-400 * 24 * time.Hour).Format(time.RFC1123Z)},
		{Title: "C.480p"},
	}}

	s := NewSearcher(indexer, SearchOptions{RetentionDays: 365}, nil)
	s.now = func() time.Time { return now }

	meta := models.ResolvedMetadata{Title: "Movie", Year: "2020", Kind: "movie"}
	items := s.Search(context.Background(), meta, models.MediaReference{ExternalID: "tt1", Kind: "movie"})

	require.Len(t, items, 2)
	assert.Equal(t, "A.1080p", items[0].Title)
	assert.Equal(t, "C.480p", items[1].Title)
	assert.Equal(t, []string{"Movie 2020"}, indexer.queries)
}

func TestSearcherSearchIndexerError(t *testing.T) {
	indexer := &fakeIndexer{err: errors.New("connection refused")}
	s := NewSearcher(indexer, SearchOptions{RetentionDays: 365}, nil)

	items := s.Search(context.Background(), models.ResolvedMetadata{Title: "X"}, models.MediaReference{})
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestSearcherStrictMatch(t *testing.T) {
	indexer := &fakeIndexer{items: []models.CandidateItem{
		{Title: "Breaking.Bad.S01E01.1080p.BluRay.x264"},
		{Title: "Breaking.Bad.S01E02.720p.WEB-DL"},
		{Title: "Breaking.Bad.S02E01"},
	}}
	ref := models.MediaReference{ExternalID: "tt0903747", Kind: "series", Season: 1, Episode: 1, HasEpisode: true}
	meta := models.ResolvedMetadata{Title: "Breaking Bad", Year: "2008", Kind: "series"}

	loose := NewSearcher(indexer, SearchOptions{RetentionDays: 365}, nil)
	assert.Len(t, loose.Search(context.Background(), meta, ref), 3)

	strict := NewSearcher(indexer, SearchOptions{RetentionDays: 365, StrictMatch: true}, nil)
	items := strict.Search(context.Background(), meta, ref)
	require.Len(t, items, 1)
	assert.Equal(t, "Breaking.Bad.S01E01.1080p.BluRay.x264", items[0].Title)
}

func TestFilterByReleaseYear(t *testing.T) {
	items := []models.CandidateItem{
		{Title: "The.Matrix.1999.1080p.BluRay.x264-SPARKS"},
		{Title: "The.Matrix.2021.1080p.WEB-DL.x264"},
	}
	meta := models.ResolvedMetadata{Title: "The Matrix", Year: "1999", Kind: "movie"}

	kept := FilterByRelease(items, meta, models.MediaReference{Kind: "movie"})
	require.Len(t, kept, 1)
	assert.Equal(t, "The.Matrix.1999.1080p.BluRay.x264-SPARKS", kept[0].Title)

	// without a resolved year nothing is dropped
	meta.Year = ""
	assert.Len(t, FilterByRelease(items, meta, models.MediaReference{Kind: "movie"}), 2)
}
