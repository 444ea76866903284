package analysis

import (
	"github.com/statily/statily/resolver"
	"github.com/viant/afs"
	"github.com/viant/gmetric"
)

var trueValue = true

//Options configures analysis context assembly
type Options struct {
	fs               afs.Service
	runtimeResolver  resolver.Resolver
	fileResolvers    []resolver.Resolver
	mockContent      map[string]string
	reportMissing    *bool
	layout           resolver.LibraryLayout
	locator          resolver.RootLocator
	minter           Minter
	metrics          *gmetric.Service
	inferenceFactory InferenceFactory
}

func (o *Options) Apply(opts ...Option) {
	for _, opt := range opts {
		opt(o)
	}
	o.init()
}

func (o *Options) init() {
	if o.fs == nil {
		o.fs = afs.New()
	}
	if o.minter == nil {
		o.minter = NewMinter()
	}
	if o.inferenceFactory == nil {
		o.inferenceFactory = NewInference
	}
	if o.reportMissing == nil {
		o.reportMissing = &trueValue
	}
}

//ReportMissing returns true if the mock runtime library fails explicitly on absent units
func (o *Options) ReportMissing() bool {
	if o.reportMissing == nil {
		return true
	}
	return *o.reportMissing
}

//NewOptions creates assembly options
func NewOptions(opts []Option) *Options {
	result := &Options{}
	result.Apply(opts...)
	return result
}

//Option represents an assembly option
type Option func(o *Options)

//WithFS sets the storage service backing the file, package and entry resolvers
func WithFS(fs afs.Service) Option {
	return func(o *Options) {
		o.fs = fs
	}
}

//WithRuntimeResolver overrides the runtime library resolver; an explicitly
//supplied override always takes precedence over the default construction path.
func WithRuntimeResolver(aResolver resolver.Resolver) Option {
	return func(o *Options) {
		o.runtimeResolver = aResolver
	}
}

//WithFileResolvers replaces the default file and package resolver pair with
//the supplied sequence, appended to the chain verbatim.
func WithFileResolvers(resolvers ...resolver.Resolver) Option {
	return func(o *Options) {
		o.fileResolvers = resolvers
	}
}

//WithMockContent sets the mock runtime library environment
func WithMockContent(content map[string]string) Option {
	return func(o *Options) {
		o.mockContent = content
	}
}

//WithReportMissing controls whether the mock runtime library fails explicitly
//on absent units
func WithReportMissing(flag bool) Option {
	return func(o *Options) {
		o.reportMissing = &flag
	}
}

//WithLibraryLayout overrides SDK layout discovery
func WithLibraryLayout(layout resolver.LibraryLayout) Option {
	return func(o *Options) {
		o.layout = layout
	}
}

//WithRootLocator overrides multi root package matching
func WithRootLocator(locator resolver.RootLocator) Option {
	return func(o *Options) {
		o.locator = locator
	}
}

//WithMinter substitutes the engine context factory
func WithMinter(minter Minter) Option {
	return func(o *Options) {
		o.minter = minter
	}
}

//WithMetrics sets a metrics service
func WithMetrics(metrics *gmetric.Service) Option {
	return func(o *Options) {
		o.metrics = metrics
	}
}

//WithInferenceFactory installs a custom library resolution strategy factory
func WithInferenceFactory(factory InferenceFactory) Option {
	return func(o *Options) {
		o.inferenceFactory = factory
	}
}
