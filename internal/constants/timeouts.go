package constants

import "time"

// Timeout constants for various operations
const (
	// Request timeout for the entire stream request
	RequestTimeout = 30 * time.Second

	// Search timeout for the indexer search call
	SearchTimeout = 15 * time.Second

	// Metadata timeout for the TMDB lookup call
	MetadataTimeout = 10 * time.Second

	// Graceful shutdown window for the HTTP server
	ShutdownTimeout = 10 * time.Second
)
