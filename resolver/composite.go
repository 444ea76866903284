package resolver

import (
	"context"

	"github.com/pkg/errors"
)

//Composite dispatches identifiers to an ordered resolver chain. The first
//entry claiming the scheme is used exclusively; a miss there is final and no
//later entry is consulted, even if it could serve the same scheme.
type Composite struct {
	entries []Resolver
}

func (c *Composite) CanResolve(URL string) bool {
	for _, entry := range c.entries {
		if entry.CanResolve(URL) {
			return true
		}
	}
	return false
}

func (c *Composite) Resolve(ctx context.Context, URL string) ([]byte, error) {
	for _, entry := range c.entries {
		if entry.CanResolve(URL) {
			return entry.Resolve(ctx, URL)
		}
	}
	return nil, SchemeUnhandled(URL)
}

//Entries returns a copy of the chain in dispatch order
func (c *Composite) Entries() []Resolver {
	result := make([]Resolver, len(c.entries))
	copy(result, c.entries)
	return result
}

//Size returns the chain length
func (c *Composite) Size() int {
	return len(c.entries)
}

//NewComposite creates an immutable composite resolver; the chain may not be
//empty and its order is fixed at construction.
func NewComposite(entries ...Resolver) (*Composite, error) {
	if len(entries) == 0 {
		return nil, errors.New("resolver chain was empty")
	}
	chain := make([]Resolver, len(entries))
	copy(chain, entries)
	return &Composite{entries: chain}, nil
}
