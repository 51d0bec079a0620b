package impl

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var namePolicy = bluemonday.StrictPolicy()

// sanitizeName strips markup from a display name and trims it.
// The policy escapes entities, so they are decoded again to keep "Tom & Jerry" intact.
func sanitizeName(name string) string {
	return strings.TrimSpace(html.UnescapeString(namePolicy.Sanitize(name)))
}
