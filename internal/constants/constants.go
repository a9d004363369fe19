// Package constants defines application-wide constants and default values.
package constants

const (
	// Addon metadata
	AddonID          = "org.stremio.nzbio.deploycx"
	AddonVersion     = "2.0.0"
	AddonName        = "NZBio"
	AddonDescription = "Stream movies and series directly from Usenet via NZB sources"
	AddonLogo        = "https://i.imgur.com/GgJcJVw.png"
	AddonBackground  = "https://i.imgur.com/yqlDCaC.jpg"

	// BingeGroupNamespace prefixes every stream's binge grouping key.
	BingeGroupNamespace = "org.stremio.nzbio"

	// IMDBPrefix is the only external id prefix the addon answers for.
	IMDBPrefix = "tt"

	// Default configuration values
	DefaultPort          = "3000"
	DefaultLogLevel      = "info"
	DefaultHydraURL      = "http://localhost:5076"
	DefaultTMDBBaseURL   = "https://api.themoviedb.org/3"
	DefaultRetentionDays = 365
	DefaultConfigFile    = "config.json"
)

// Media kinds as used in stream routes and manifests.
const (
	TypeMovie  = "movie"
	TypeSeries = "series"
)

// SupportedTypes lists the content kinds advertised in the manifest.
var SupportedTypes = []string{TypeMovie, TypeSeries}
