package resolver

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/viant/afs"
	"github.com/viant/afs/file"
)

//EntryURL is the well known synthetic host document location
const EntryURL = "mem://localhost/statily/entry/main.ent"

//entryResolver serves the synthesized host document; it claims exactly the
//synthetic entry location and nothing else.
type entryResolver struct {
	fs afs.Service
}

func (r *entryResolver) CanResolve(URL string) bool {
	return URL == EntryURL
}

func (r *entryResolver) Resolve(ctx context.Context, URL string) ([]byte, error) {
	data, err := r.fs.DownloadWithURL(ctx, EntryURL)
	if err != nil {
		return nil, NotFound(URL)
	}
	return data, nil
}

//NewEntry synthesizes a host document with a single embed reference to
//entryPointURL and registers it at EntryURL in the in memory scheme. The
//resolver is an addition to the chain, never a replacement of the file
//resolver.
func NewEntry(ctx context.Context, fs afs.Service, entryPointURL string) (Resolver, error) {
	content := fmt.Sprintf("embed %q\n", entryPointURL)
	if err := fs.Upload(ctx, EntryURL, file.DefaultFileOsMode, strings.NewReader(content)); err != nil {
		return nil, errors.Wrapf(err, "failed to register entry document %v", EntryURL)
	}
	return &entryResolver{fs: fs}, nil
}
