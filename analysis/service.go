package analysis

import (
	"context"

	"github.com/statily/statily/config"
	"github.com/statily/statily/logger"
)

//New assembles an analysis context: validates the configuration, composes the
//resolver chain, mints the engine context with the unit cache bound and
//installs the inference hook. Assembly is atomic; a failure leaves no
//partially configured context behind. Identical inputs yield identical
//resolution behavior.
func New(ctx context.Context, cfg *config.Config, opts ...Option) (*Context, error) {
	if cfg == nil {
		return nil, config.NewError("Config", "was empty")
	}
	cfg.Init()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	options := NewOptions(opts)
	chain, err := Compose(ctx, cfg, options)
	if err != nil {
		return nil, err
	}
	ctxOptions, err := NewContextOptions(chain, cfg.UnitCacheSize)
	if err != nil {
		return nil, err
	}
	engine, err := options.minter.Mint(ctxOptions)
	if err != nil {
		return nil, err
	}
	result := &Context{
		state:   int32(StateUnconfigured),
		cfg:     cfg,
		minter:  options.minter,
		counter: logger.NewResolutionCounter(options.metrics, "resolution"),
	}
	result.configure(chain, engine, options.inferenceFactory)
	return result, nil
}
