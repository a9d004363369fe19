package feed

import (
	"regexp"
	"strings"
)

// Tier label and rank for releases without a recognised resolution token.
const (
	UnrankedLabel = "SD"
	UnrankedRank  = 999
)

// qualityToken is one entry of the quality vocabulary. Tier tokens carry a
// non-zero rank; lower ranks are preferred.
type qualityToken struct {
	Token string
	Rank  int
}

// qualityTable drives both tag extraction and tier ranking, so the two can
// never disagree about which tokens exist. Order matters for the regex
// alternation: earlier entries win when two tokens start at the same offset.
var qualityTable = []qualityToken{
	{Token: "4K", Rank: 2},
	{Token: "2160p", Rank: 1},
	{Token: "1080p", Rank: 3},
	{Token: "720p", Rank: 3},
	{Token: "480p", Rank: 4},
	{Token: "HDTV"},
	{Token: "WEB-DL"},
	{Token: "BluRay"},
	{Token: "HEVC"},
	{Token: "x265"},
	{Token: "H.265"},
	{Token: "H264"},
	{Token: "x264"},
}

var (
	qualityRegex = buildTokenRegex(func(qualityToken) bool { return true })
	tierRegex    = buildTokenRegex(func(q qualityToken) bool { return q.Rank > 0 })
	tierByToken  = buildTierIndex()
)

func buildTokenRegex(include func(qualityToken) bool) *regexp.Regexp {
	var alternatives []string
	for _, q := range qualityTable {
		if include(q) {
			alternatives = append(alternatives, regexp.QuoteMeta(q.Token))
		}
	}
	return regexp.MustCompile(`(?i)(` + strings.Join(alternatives, "|") + `)`)
}

func buildTierIndex() map[string]qualityToken {
	index := make(map[string]qualityToken)
	for _, q := range qualityTable {
		if q.Rank > 0 {
			index[strings.ToLower(q.Token)] = q
		}
	}
	return index
}

// ExtractQualityTags returns every quality token found in title, in order of
// appearance and spelled as they appear in the title.
func ExtractQualityTags(title string) []string {
	matches := qualityRegex.FindAllString(title, -1)
	if matches == nil {
		return []string{}
	}
	return matches
}

// Tier returns the canonical tier label and rank of a quality string. The
// first tier token by position wins; without one the release is unranked.
func Tier(quality string) (string, int) {
	match := tierRegex.FindString(quality)
	if match == "" {
		return UnrankedLabel, UnrankedRank
	}
	q := tierByToken[strings.ToLower(match)]
	return q.Token, q.Rank
}
