package analysis

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"github.com/statily/statily/config"
	"github.com/statily/statily/logger"
	"github.com/statily/statily/resolver"
)

//State represents the context lifecycle state
type State int32

const (
	//StateUnconfigured means no resolver chain is attached yet
	StateUnconfigured = State(iota)
	//StateConfigured means the chain and hook are attached, still replaceable
	StateConfigured
	//StateSealed means the first resolution froze the chain and hook
	StateSealed
	//StateDisposed means the context was released
	StateDisposed
)

var (
	//ErrSealed indicates a resolver or hook mutation attempt after sealing
	ErrSealed = errors.New("analysis context is sealed")

	//ErrDisposed indicates use after disposal
	ErrDisposed = errors.New("analysis context is disposed")
)

//Context owns exactly one composite resolver and one inference strategy per
//session. The first resolution call seals it; once sealed the chain and hook
//are immutable and lookups are pure, safe for concurrent use.
type Context struct {
	mux              sync.Mutex
	state            int32
	cfg              *config.Config
	chain            *resolver.Composite
	engine           EngineContext
	minter           Minter
	inferenceFactory InferenceFactory
	inferOnce        sync.Once
	inference        Inference
	counter          *logger.Adapter
}

//State returns the lifecycle state
func (c *Context) State() State {
	return State(atomic.LoadInt32(&c.state))
}

//Resolver returns the attached composite resolver
func (c *Context) Resolver() *resolver.Composite {
	c.mux.Lock()
	defer c.mux.Unlock()
	return c.chain
}

//Resolve fetches content for the supplied identifier; the first call seals the
//context.
func (c *Context) Resolve(ctx context.Context, URL string) ([]byte, error) {
	switch c.State() {
	case StateUnconfigured:
		return nil, errors.Errorf("analysis context was not configured")
	case StateDisposed:
		return nil, errors.Wrapf(ErrDisposed, "failed to resolve %v", URL)
	}
	atomic.CompareAndSwapInt32(&c.state, int32(StateConfigured), int32(StateSealed))
	c.mux.Lock()
	engine := c.engine
	c.mux.Unlock()
	onDone := c.counter.Begin(time.Now())
	data, err := engine.Resolve(ctx, URL)
	onDone(time.Now(), err)
	return data, err
}

//SetResolver replaces the resolver chain; permitted only before sealing
func (c *Context) SetResolver(chain *resolver.Composite) error {
	c.mux.Lock()
	defer c.mux.Unlock()
	switch c.State() {
	case StateSealed:
		return errors.Wrap(ErrSealed, "failed to replace resolver chain")
	case StateDisposed:
		return errors.Wrap(ErrDisposed, "failed to replace resolver chain")
	}
	options, err := NewContextOptions(chain, c.cfg.UnitCacheSize)
	if err != nil {
		return err
	}
	engine, err := c.minter.Mint(options)
	if err != nil {
		return err
	}
	c.chain = chain
	c.engine = engine
	return nil
}

//SetInferenceFactory replaces the library resolution hook; permitted only
//before sealing
func (c *Context) SetInferenceFactory(factory InferenceFactory) error {
	c.mux.Lock()
	defer c.mux.Unlock()
	switch c.State() {
	case StateSealed:
		return errors.Wrap(ErrSealed, "failed to replace inference factory")
	case StateDisposed:
		return errors.Wrap(ErrDisposed, "failed to replace inference factory")
	}
	c.inferenceFactory = factory
	return nil
}

//Inference returns the library resolution strategy, invoking the installed
//factory lazily, exactly once.
func (c *Context) Inference() Inference {
	c.inferOnce.Do(func() {
		c.mux.Lock()
		factory := c.inferenceFactory
		c.mux.Unlock()
		c.inference = factory(c.cfg)
	})
	return c.inference
}

//Dispose releases the context; further resolution fails
func (c *Context) Dispose() {
	atomic.StoreInt32(&c.state, int32(StateDisposed))
}

func (c *Context) configure(chain *resolver.Composite, engine EngineContext, factory InferenceFactory) {
	c.chain = chain
	c.engine = engine
	c.inferenceFactory = factory
	atomic.StoreInt32(&c.state, int32(StateConfigured))
}
