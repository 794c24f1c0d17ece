package errgen

import (
	"io/fs"

	"github.com/goliatone/go-errgen/pkg/renderers/catalog"
)

// CatalogStylesheetName is the asset file themes override to restyle the
// generated error catalog.
const CatalogStylesheetName = catalog.StylesheetName

// CatalogAssetsFS exposes the embedded catalog assets (CSS) so Go
// applications can serve them next to a rendered catalog page.
//
// Typical mount:
//
//	mux.Handle("/catalog-assets/",
//	  http.StripPrefix("/catalog-assets/",
//	    http.FileServerFS(errgen.CatalogAssetsFS()),
//	  ),
//	)
func CatalogAssetsFS() fs.FS {
	return catalog.AssetsFS()
}
