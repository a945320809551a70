// Package translations embeds the site message catalogs.
package translations

import (
	"embed"
	"io/fs"
)

//go:embed *.yaml
var files embed.FS

// FS returns the catalog filesystem ({locale}.yaml files at the root).
func FS() fs.FS {
	return files
}
