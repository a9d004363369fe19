package handlers

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/amaumene/nzbio/internal/constants"
	"github.com/amaumene/nzbio/internal/feed"
	"github.com/amaumene/nzbio/internal/models"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

type rankedStream struct {
	stream models.Stream
	rank   int
}

// BuildStreams turns surviving candidates into stream descriptors, best tier first.
// Candidates of equal rank keep their feed order.
func BuildStreams(items []models.CandidateItem, meta models.ResolvedMetadata) []models.Stream {
	ranked := make([]rankedStream, 0, len(items))
	for _, item := range items {
		label, rank := feed.Tier(item.Quality)
		ranked = append(ranked, rankedStream{stream: buildStream(item, meta, label), rank: rank})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].rank < ranked[j].rank
	})

	streams := make([]models.Stream, 0, len(ranked))
	for _, r := range ranked {
		streams = append(streams, r.stream)
	}
	return streams
}

func buildStream(item models.CandidateItem, meta models.ResolvedMetadata, label string) models.Stream {
	return models.Stream{
		Name:        fmt.Sprintf("%s %s", constants.AddonName, label),
		Description: buildDescription(item, meta),
		URL:         item.Link,
		BehaviorHints: models.StreamBehaviorHints{
			NotWebReady: true,
			Filename:    item.Title,
			VideoSize:   item.SizeInBytes,
			BingeGroup:  bingeGroup(label, item.Category),
		},
	}
}

func buildDescription(item models.CandidateItem, meta models.ResolvedMetadata) string {
	lines := []struct {
		icon  string
		value string
	}{
		{"📁", meta.Title},
		{"🎥", item.Category},
		{"📦", item.Size},
		{"🎬", item.Quality},
	}

	parts := make([]string, 0, len(lines))
	for _, l := range lines {
		if l.value == "" {
			continue
		}
		parts = append(parts, l.icon+" "+l.value)
	}
	return strings.Join(parts, "\n")
}

// bingeGroup lets the client chain streams of the same tier and category across episodes.
func bingeGroup(label, category string) string {
	slug := whitespaceRun.ReplaceAllString(strings.ToLower(category), "-")
	return fmt.Sprintf("%s|%s|%s", constants.BingeGroupNamespace, strings.ToLower(label), slug)
}
