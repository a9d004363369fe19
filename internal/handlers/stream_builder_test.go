package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amaumene/nzbio/internal/models"
)

func TestBuildStreamsSingleItem(t *testing.T) {
	meta := models.ResolvedMetadata{Title: "The Shawshank Redemption", Year: "1994", Kind: "movie"}
	items := []models.CandidateItem{{
		Title:       "The.Shawshank.Redemption.1994.1080p.BluRay.x264",
		Link:        "https://hydra.local/getnzb/abc",
		SizeInBytes: 2147483648,
		Size:        "2.00 GB",
		Quality:     "1080p BluRay x264",
		QualityTags: []string{"1080p", "BluRay", "x264"},
		Category:    "Movies HD",
	}}

	streams := BuildStreams(items, meta)
	require.Len(t, streams, 1)

	s := streams[0]
	assert.Equal(t, "NZBio 1080p", s.Name)
	assert.Equal(t, "📁 The Shawshank Redemption\n🎥 Movies HD\n📦 2.00 GB\n🎬 1080p BluRay x264", s.Description)
	assert.Equal(t, "https://hydra.local/getnzb/abc", s.URL)
	assert.True(t, s.BehaviorHints.NotWebReady)
	assert.Equal(t, "The.Shawshank.Redemption.1994.1080p.BluRay.x264", s.BehaviorHints.Filename)
	assert.Equal(t, int64(2147483648), s.BehaviorHints.VideoSize)
	assert.Equal(t, "org.stremio.nzbio|1080p|movies-hd", s.BehaviorHints.BingeGroup)
}

func TestBuildStreamsWithoutQuality(t *testing.T) {
	meta := models.ResolvedMetadata{Title: "Some Show"}
	items := []models.CandidateItem{{
		Title:    "Some.Show.S01E01",
		Size:     "Unknown",
		Category: "TV  \t SD",
	}}

	streams := BuildStreams(items, meta)
	require.Len(t, streams, 1)
	assert.Equal(t, "NZBio SD", streams[0].Name)
	assert.Equal(t, "📁 Some Show\n🎥 TV  \t SD\n📦 Unknown", streams[0].Description)
	assert.Equal(t, "org.stremio.nzbio|sd|tv-sd", streams[0].BehaviorHints.BingeGroup)
	assert.Zero(t, streams[0].BehaviorHints.VideoSize)
}

func TestBuildStreamsCanonicalLabel(t *testing.T) {
	streams := BuildStreams([]models.CandidateItem{{Title: "x", Quality: "4k HEVC", Category: "Movies"}}, models.ResolvedMetadata{})
	require.Len(t, streams, 1)
	assert.Equal(t, "NZBio 4K", streams[0].Name)
	assert.Equal(t, "org.stremio.nzbio|4k|movies", streams[0].BehaviorHints.BingeGroup)
}

func TestBuildStreamsUppercaseTierIsRanked(t *testing.T) {
	items := []models.CandidateItem{
		{Title: "sd", Quality: "HDTV"},
		{Title: "upper", Quality: "1080P WEB-DL", Category: "Movies"},
	}

	streams := BuildStreams(items, models.ResolvedMetadata{})
	require.Len(t, streams, 2)
	assert.Equal(t, "NZBio 1080p", streams[0].Name)
	assert.Equal(t, "upper", streams[0].BehaviorHints.Filename)
	assert.Equal(t, "org.stremio.nzbio|1080p|movies", streams[0].BehaviorHints.BingeGroup)
}

func TestBuildStreamsOrdering(t *testing.T) {
	items := []models.CandidateItem{
		{Title: "sd-1", Quality: "HDTV"},
		{Title: "720-1", Quality: "720p"},
		{Title: "4k-1", Quality: "4K"},
		{Title: "1080-1", Quality: "1080p"},
		{Title: "uhd-1", Quality: "2160p"},
		{Title: "720-2", Quality: "720p WEB-DL"},
		{Title: "480-1", Quality: "480p"},
		{Title: "sd-2"},
	}

	streams := BuildStreams(items, models.ResolvedMetadata{Title: "T"})
	require.Len(t, streams, len(items))

	var order []string
	for _, s := range streams {
		order = append(order, s.BehaviorHints.Filename)
	}
	// 1080p and 720p share a rank, so feed order decides between them
	assert.Equal(t, []string{"uhd-1", "4k-1", "720-1", "1080-1", "720-2", "480-1", "sd-1", "sd-2"}, order)
}

func TestBuildStreamsFirstTierWins(t *testing.T) {
	streams := BuildStreams([]models.CandidateItem{{Title: "x", Quality: "720p 2160p"}}, models.ResolvedMetadata{})
	require.Len(t, streams, 1)
	assert.Equal(t, "NZBio 720p", streams[0].Name)
}

func TestBuildStreamsEmpty(t *testing.T) {
	streams := BuildStreams(nil, models.ResolvedMetadata{})
	assert.NotNil(t, streams)
	assert.Empty(t, streams)
}
