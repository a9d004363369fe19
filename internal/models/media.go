package models

import "fmt"

// MediaReference is the parsed form of an inbound stream id.
type MediaReference struct {
	ExternalID string
	Kind       string
	Season     int
	Episode    int
	HasEpisode bool
}

func (r MediaReference) String() string {
	if r.HasEpisode {
		return fmt.Sprintf("%s %s S%02dE%02d", r.Kind, r.ExternalID, r.Season, r.Episode)
	}
	return fmt.Sprintf("%s %s", r.Kind, r.ExternalID)
}

// ResolvedMetadata is the catalog's answer for an external id.
type ResolvedMetadata struct {
	TMDBID int
	Title  string
	Year   string
	Kind   string
}

// CandidateItem is one release parsed out of an indexer feed.
type CandidateItem struct {
	Title       string
	Link        string
	PubDate     string
	SizeInBytes int64
	Size        string
	Quality     string
	QualityTags []string
	Category    string
}
