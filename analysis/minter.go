package analysis

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pkg/errors"
	"github.com/statily/statily/config"
	"github.com/statily/statily/resolver"
)

//EngineContext is the raw engine context capability consumed by this layer.
//Resolved unit caching and eviction beyond the configured bound is the
//engine's concern, not the resolver chain's.
type EngineContext interface {
	//Resolve fetches source content for the supplied identifier
	Resolve(ctx context.Context, URL string) ([]byte, error)
}

//ContextOptions is the fully configured, immutable engine context input,
//consumed exactly once at minting time.
type ContextOptions struct {
	chain         *resolver.Composite
	unitCacheSize int
}

//Chain returns the composite resolver
func (o ContextOptions) Chain() *resolver.Composite {
	return o.chain
}

//UnitCacheSize returns the resolved unit cache bound
func (o ContextOptions) UnitCacheSize() int {
	return o.unitCacheSize
}

//NewContextOptions builds an immutable engine context options value
func NewContextOptions(chain *resolver.Composite, unitCacheSize int) (ContextOptions, error) {
	if chain == nil {
		return ContextOptions{}, errors.New("resolver chain was empty")
	}
	if unitCacheSize <= 0 {
		unitCacheSize = config.DefaultUnitCacheSize
	}
	return ContextOptions{chain: chain, unitCacheSize: unitCacheSize}, nil
}

//Minter mints raw engine contexts; it is injected rather than reached through
//process wide state so tests can substitute fakes.
type Minter interface {
	Mint(options ContextOptions) (EngineContext, error)
}

type defaultMinter struct{}

func (m *defaultMinter) Mint(options ContextOptions) (EngineContext, error) {
	units, err := lru.New[string, []byte](options.UnitCacheSize())
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create unit cache: %v", options.UnitCacheSize())
	}
	return &engineContext{chain: options.Chain(), units: units}, nil
}

//NewMinter creates the default engine context minter
func NewMinter() Minter {
	return &defaultMinter{}
}

//engineContext is the in process engine context; it memoizes resolved units in
//a bounded LRU.
type engineContext struct {
	chain *resolver.Composite
	units *lru.Cache[string, []byte]
}

func (e *engineContext) Resolve(ctx context.Context, URL string) ([]byte, error) {
	if data, ok := e.units.Get(URL); ok {
		return data, nil
	}
	data, err := e.chain.Resolve(ctx, URL)
	if err != nil {
		return nil, err
	}
	e.units.Add(URL, data)
	return data, nil
}
