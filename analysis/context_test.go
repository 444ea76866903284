package analysis

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/statily/statily/config"
	"github.com/statily/statily/resolver"
	"github.com/stretchr/testify/assert"
	"github.com/viant/afs"
	"github.com/viant/afs/file"
)

//recordingMinter captures minting inputs and delegates to the default minter
type recordingMinter struct {
	captured ContextOptions
	minted   int
}

func (m *recordingMinter) Mint(options ContextOptions) (EngineContext, error) {
	m.captured = options
	m.minted++
	return NewMinter().Mint(options)
}

func TestContext_Sealing(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{UseMockRuntime: true}
	aContext, err := New(ctx, cfg, WithMockContent(map[string]string{"lib:core": "unit A"}))
	if !assert.Nil(t, err) {
		return
	}
	assert.EqualValues(t, StateConfigured, aContext.State())

	//chain replacement is permitted while configured
	replacement, err := resolver.NewComposite(resolver.NewMockLibrary(map[string]string{"lib:core": "unit B"}, true))
	if !assert.Nil(t, err) {
		return
	}
	err = aContext.SetResolver(replacement)
	assert.Nil(t, err)

	data, err := aContext.Resolve(ctx, "lib:core")
	assert.Nil(t, err)
	assert.EqualValues(t, "unit B", string(data))
	assert.EqualValues(t, StateSealed, aContext.State())

	//the first resolution sealed the context, mutation now fails
	err = aContext.SetResolver(replacement)
	assert.True(t, errors.Is(err, ErrSealed))
	err = aContext.SetInferenceFactory(NewInference)
	assert.True(t, errors.Is(err, ErrSealed))
}

func TestContext_Dispose(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{UseMockRuntime: true}
	aContext, err := New(ctx, cfg, WithMockContent(map[string]string{"lib:core": "unit A"}))
	if !assert.Nil(t, err) {
		return
	}
	aContext.Dispose()
	assert.EqualValues(t, StateDisposed, aContext.State())
	_, err = aContext.Resolve(ctx, "lib:core")
	assert.True(t, errors.Is(err, ErrDisposed))
	err = aContext.SetResolver(aContext.Resolver())
	assert.True(t, errors.Is(err, ErrDisposed))
}

func TestContext_InferenceFactoryInvokedLazilyOnce(t *testing.T) {
	ctx := context.Background()
	invoked := 0
	factory := func(cfg *config.Config) Inference {
		invoked++
		return NewInference(cfg)
	}
	cfg := &config.Config{UseMockRuntime: true}
	aContext, err := New(ctx, cfg,
		WithMockContent(map[string]string{"lib:core": "unit A"}),
		WithInferenceFactory(factory))
	if !assert.Nil(t, err) {
		return
	}
	assert.EqualValues(t, 0, invoked)

	_, err = aContext.Resolve(ctx, "lib:core")
	assert.Nil(t, err)

	inference := aContext.Inference()
	assert.NotNil(t, inference)
	assert.EqualValues(t, "lib:core", inference.CanonicalURL("core"))
	aContext.Inference()
	assert.EqualValues(t, 1, invoked)
}

func TestContext_UnitCacheBound(t *testing.T) {
	ctx := context.Background()
	minter := &recordingMinter{}
	cfg := &config.Config{UseMockRuntime: true, UnitCacheSize: 64}
	_, err := New(ctx, cfg,
		WithMockContent(map[string]string{"lib:core": "unit A"}),
		WithMinter(minter))
	if !assert.Nil(t, err) {
		return
	}
	assert.EqualValues(t, 1, minter.minted)
	assert.EqualValues(t, 64, minter.captured.UnitCacheSize())
	assert.NotNil(t, minter.captured.Chain())
}

func TestContext_ResolvedUnitsAreMemoized(t *testing.T) {
	ctx := context.Background()
	fs := afs.New()
	URL := "mem://localhost/context/case001/main.src"
	err := fs.Upload(ctx, URL, file.DefaultFileOsMode, strings.NewReader("original"))
	assert.Nil(t, err)

	cfg := &config.Config{UseMockRuntime: true}
	aContext, err := New(ctx, cfg, WithFS(fs), WithMockContent(map[string]string{}), WithReportMissing(false))
	if !assert.Nil(t, err) {
		return
	}
	data, err := aContext.Resolve(ctx, URL)
	assert.Nil(t, err)
	assert.EqualValues(t, "original", string(data))

	//the engine serves subsequent lookups from its unit cache
	err = fs.Upload(ctx, URL, file.DefaultFileOsMode, strings.NewReader("mutated"))
	assert.Nil(t, err)
	data, err = aContext.Resolve(ctx, URL)
	assert.Nil(t, err)
	assert.EqualValues(t, "original", string(data))
}

func TestContext_ConcurrentResolution(t *testing.T) {
	ctx := context.Background()
	cfg := &config.Config{UseMockRuntime: true}
	aContext, err := New(ctx, cfg, WithMockContent(map[string]string{
		"lib:core": "unit A",
		"lib:math": "unit B",
	}))
	if !assert.Nil(t, err) {
		return
	}
	done := make(chan bool)
	for i := 0; i < 8; i++ {
		go func() {
			defer func() { done <- true }()
			for j := 0; j < 50; j++ {
				data, err := aContext.Resolve(ctx, "lib:core")
				assert.Nil(t, err)
				assert.EqualValues(t, "unit A", string(data))
			}
		}()
	}
	for i := 0; i < 8; i++ {
		<-done
	}
	assert.EqualValues(t, StateSealed, aContext.State())
}
