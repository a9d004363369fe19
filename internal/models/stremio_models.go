package models

type Manifest struct {
	ID            string        `json:"id"`
	Version       string        `json:"version"`
	Name          string        `json:"name"`
	Description   string        `json:"description"`
	Types         []string      `json:"types"`
	Resources     []string      `json:"resources"`
	Catalogs      []Catalog     `json:"catalogs"`
	BehaviorHints BehaviorHints `json:"behaviorHints"`
	IDPrefixes    []string      `json:"idPrefixes,omitempty"`
	Background    string        `json:"background,omitempty"`
	Logo          string        `json:"logo,omitempty"`
}

type BehaviorHints struct {
	Configurable          bool `json:"configurable"`
	ConfigurationRequired bool `json:"configurationRequired"`
}

type Catalog struct {
	Type string `json:"type"`
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Stream represents a single stream descriptor in Stremio format.
type Stream struct {
	Name          string              `json:"name"`
	Description   string              `json:"description"`
	URL           string              `json:"url"`
	BehaviorHints StreamBehaviorHints `json:"behaviorHints"`
}

// StreamBehaviorHints tells the client how to treat a stream.
type StreamBehaviorHints struct {
	NotWebReady bool   `json:"notWebReady"`
	Filename    string `json:"filename,omitempty"`
	VideoSize   int64  `json:"videoSize,omitempty"`
	BingeGroup  string `json:"bingeGroup,omitempty"`
}

// StreamResponse is the response format for stream endpoints.
type StreamResponse struct {
	Streams []Stream `json:"streams"`
}

// EmptyStreamResponse is what every failed lookup answers with.
func EmptyStreamResponse() StreamResponse {
	return StreamResponse{Streams: []Stream{}}
}
