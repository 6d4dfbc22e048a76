package portfolio

import (
	"io/fs"

	"github.com/goliatone/go-portfolio/pkg/site"
)

// EmbeddedTemplates exposes the built-in page templates so callers can reuse
// or extend them without importing the site package directly.
func EmbeddedTemplates() fs.FS {
	return site.TemplatesFS()
}
