// Package cdn rewrites image delivery URLs to request optimized variants.
package cdn

import (
	"fmt"
	"strings"
)

const (
	// DefaultWidth is used when the caller does not ask for a specific width.
	DefaultWidth = 500

	uploadMarker = "/upload/"
)

// ImageURL inserts a delivery transform segment (target width, automatic
// quality and format) after the first "/upload/" marker in rawURL. URLs
// without the marker are returned unchanged. A non-positive width selects
// DefaultWidth.
func ImageURL(rawURL string, width int) string {
	if width <= 0 {
		width = DefaultWidth
	}

	prefix, suffix, found := strings.Cut(rawURL, uploadMarker)
	if !found {
		return rawURL
	}

	return prefix + uploadMarker + fmt.Sprintf("w_%d,q_auto,f_auto", width) + "/" + suffix
}
