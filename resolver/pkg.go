package resolver

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/viant/afs"
	"github.com/viant/afs/url"
)

//RootLocator matches a package relative location against candidate roots.
type RootLocator interface {
	//Locate returns the URL of the first root containing location
	Locate(ctx context.Context, location string, rootURLs []string) (string, error)
}

//afsLocator probes each root in order, first existing match wins
type afsLocator struct {
	fs afs.Service
}

func (l *afsLocator) Locate(ctx context.Context, location string, rootURLs []string) (string, error) {
	for _, rootURL := range rootURLs {
		candidate := url.Join(rootURL, location)
		if ok, _ := l.fs.Exists(ctx, candidate); ok {
			return candidate, nil
		}
	}
	return "", NotFound(location)
}

//NewRootLocator creates the default storage backed root locator
func NewRootLocator(fs afs.Service) RootLocator {
	return &afsLocator{fs: fs}
}

//packageResolver resolves module package units against one or more base roots;
//root order is fixed at construction, actual matching is delegated to the
//locator.
type packageResolver struct {
	fs       afs.Service
	rootURLs []string
	locator  RootLocator
}

func (r *packageResolver) CanResolve(URL string) bool {
	return strings.HasPrefix(URL, PackageScheme+":")
}

func (r *packageResolver) Resolve(ctx context.Context, URL string) ([]byte, error) {
	location := strings.TrimPrefix(URL, PackageScheme+":")
	if location == "" {
		return nil, NotFound(URL)
	}
	match, err := r.locator.Locate(ctx, location, r.rootURLs)
	if err != nil {
		return nil, NotFound(URL)
	}
	data, err := r.fs.DownloadWithURL(ctx, match)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load package unit %v", URL)
	}
	return data, nil
}

//NewPackage creates a module package resolver with a single base root
func NewPackage(fs afs.Service, rootURL string) Resolver {
	return NewMultiRootPackage(fs, []string{rootURL}, nil)
}

//NewMultiRootPackage creates a module package resolver trying each root in order
func NewMultiRootPackage(fs afs.Service, rootURLs []string, locator RootLocator) Resolver {
	if locator == nil {
		locator = NewRootLocator(fs)
	}
	roots := make([]string, len(rootURLs))
	copy(roots, rootURLs)
	return &packageResolver{fs: fs, rootURLs: roots, locator: locator}
}
