// Package feed parses newznab/RSS search feeds into candidate releases.
//
// The parser is deliberately permissive: indexers return everything from
// clean RSS to half-broken XML, so missing tags fall back to defaults and
// well-formedness is never checked.
package feed

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/amaumene/nzbio/internal/models"
)

// UnknownCategory is used when an item has no category tag.
const UnknownCategory = "Unknown"

var (
	itemRegex      = regexp.MustCompile(`(?is)<item>(.*?)</item>`)
	enclosureRegex = regexp.MustCompile(`(?i)<enclosure[^>]*length="(\d+)"[^>]*>`)

	tagRegexes = map[string]*regexp.Regexp{
		"title":    tagRegex("title"),
		"link":     tagRegex("link"),
		"pubDate":  tagRegex("pubDate"),
		"category": tagRegex("category"),
	}
)

func tagRegex(tag string) *regexp.Regexp {
	return regexp.MustCompile(`(?is)<` + tag + `[^>]*>(.*?)</` + tag + `>`)
}

// Parse extracts every <item> block of text, in feed order.
func Parse(text string) []models.CandidateItem {
	blocks := itemRegex.FindAllStringSubmatch(text, -1)
	items := make([]models.CandidateItem, 0, len(blocks))

	for _, block := range blocks {
		items = append(items, parseItem(block[1]))
	}

	return items
}

func parseItem(content string) models.CandidateItem {
	title := extractTag(content, "title")
	sizeInBytes := extractEnclosureLength(content)
	tags := ExtractQualityTags(title)

	category := extractTag(content, "category")
	if category == "" {
		category = UnknownCategory
	}

	return models.CandidateItem{
		Title:       title,
		Link:        extractTag(content, "link"),
		PubDate:     extractTag(content, "pubDate"),
		SizeInBytes: sizeInBytes,
		Size:        FormatSize(sizeInBytes),
		Quality:     strings.Join(tags, " "),
		QualityTags: tags,
		Category:    category,
	}
}

// extractTag returns the trimmed inner text of the first tag element, or "".
func extractTag(content, tag string) string {
	m := tagRegexes[tag].FindStringSubmatch(content)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

func extractEnclosureLength(content string) int64 {
	m := enclosureRegex.FindStringSubmatch(content)
	if m == nil {
		return 0
	}
	n, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0
	}
	return n
}
