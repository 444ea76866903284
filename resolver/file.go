package resolver

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/viant/afs"
)

//fileResolver passes file scheme identifiers straight through to storage; no
//content is ever cached at this layer.
type fileResolver struct {
	fs afs.Service
}

func (r *fileResolver) CanResolve(URL string) bool {
	return strings.HasPrefix(URL, "file://") || strings.HasPrefix(URL, "mem://")
}

func (r *fileResolver) Resolve(ctx context.Context, URL string) ([]byte, error) {
	if ok, _ := r.fs.Exists(ctx, URL); !ok {
		return nil, NotFound(URL)
	}
	data, err := r.fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load file %v", URL)
	}
	return data, nil
}

//NewFile creates a passthrough file resolver
func NewFile(fs afs.Service) Resolver {
	return &fileResolver{fs: fs}
}
