package resolver

import (
	"context"
	"strings"
)

//mockLibrary answers runtime library lookups from an in memory environment;
//the backing map is copied at construction and never mutated afterwards, so
//lookups are safe for concurrent use and never touch the filesystem.
type mockLibrary struct {
	content       map[string]string
	reportMissing bool
}

func (r *mockLibrary) CanResolve(URL string) bool {
	return strings.HasPrefix(URL, LibraryScheme+":")
}

func (r *mockLibrary) Resolve(ctx context.Context, URL string) ([]byte, error) {
	text, ok := r.content[URL]
	if !ok {
		if r.reportMissing {
			return nil, NotFound(URL)
		}
		return []byte{}, nil
	}
	return []byte(text), nil
}

//NewMockLibrary creates a mock runtime library resolver; with reportMissing set
//absent units fail explicitly, otherwise they resolve to empty content.
func NewMockLibrary(content map[string]string, reportMissing bool) Resolver {
	cloned := make(map[string]string, len(content))
	for k, v := range content {
		cloned[k] = v
	}
	return &mockLibrary{content: cloned, reportMissing: reportMissing}
}
