package feed

import "fmt"

const (
	bytesPerMB = 1 << 20
	bytesPerGB = 1 << 30

	// UnknownSize is shown for releases of a megabyte or less.
	UnknownSize = "Unknown"
)

// FormatSize renders a byte count as "X.XX GB", "X.XX MB" or "Unknown".
func FormatSize(bytes int64) string {
	switch {
	case bytes > bytesPerGB:
		return fmt.Sprintf("%.2f GB", float64(bytes)/bytesPerGB)
	case bytes > bytesPerMB:
		return fmt.Sprintf("%.2f MB", float64(bytes)/bytesPerMB)
	default:
		return UnknownSize
	}
}
