package resolver

import (
	"context"
	"path"
	"strings"

	"github.com/pkg/errors"
	"github.com/viant/afs"
	"github.com/viant/afs/url"
)

//LibraryLayout locates a runtime library unit within an SDK directory,
//returning a location relative to the SDK base URL.
type LibraryLayout func(unit string) string

//DefaultLibraryLayout follows the standard SDK layout: lib/<unit>/<unit>.src
func DefaultLibraryLayout(unit string) string {
	return path.Join("lib", unit, unit+".src")
}

//library resolves runtime library units against a real SDK directory; units
//are located lazily on each lookup, no state is cached across calls.
type library struct {
	fs     afs.Service
	sdkURL string
	layout LibraryLayout
}

func (r *library) CanResolve(URL string) bool {
	return strings.HasPrefix(URL, LibraryScheme+":")
}

func (r *library) Resolve(ctx context.Context, URL string) ([]byte, error) {
	unit := strings.TrimPrefix(URL, LibraryScheme+":")
	if unit == "" {
		return nil, NotFound(URL)
	}
	location := url.Join(r.sdkURL, r.layout(unit))
	if ok, _ := r.fs.Exists(ctx, location); !ok {
		return nil, NotFound(URL)
	}
	data, err := r.fs.DownloadWithURL(ctx, location)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load library unit %v", URL)
	}
	return data, nil
}

//NewLibrary creates a storage backed runtime library resolver rooted at sdkURL
func NewLibrary(fs afs.Service, sdkURL string, layout LibraryLayout) Resolver {
	if layout == nil {
		layout = DefaultLibraryLayout
	}
	return &library{fs: fs, sdkURL: sdkURL, layout: layout}
}
