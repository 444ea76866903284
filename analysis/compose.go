package analysis

import (
	"context"

	"github.com/statily/statily/config"
	"github.com/statily/statily/resolver"
)

//Compose builds the immutable resolver chain: the runtime library resolver
//always first, then the implicit entry resolver when enabled, then either the
//caller supplied sequence verbatim or the default file and package pair.
func Compose(ctx context.Context, cfg *config.Config, options *Options) (*resolver.Composite, error) {
	runtime := options.runtimeResolver
	if runtime == nil {
		if cfg.UseMockRuntime {
			runtime = resolver.NewMockLibrary(options.mockContent, options.ReportMissing())
		} else {
			runtime = resolver.NewLibrary(options.fs, cfg.RuntimeURL, options.layout)
		}
	}
	entries := make([]resolver.Resolver, 0, 4)
	entries = append(entries, runtime)
	if cfg.UseImplicitEntry {
		entry, err := resolver.NewEntry(ctx, options.fs, cfg.EntryPointURL)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	if len(options.fileResolvers) > 0 {
		entries = append(entries, options.fileResolvers...)
	} else {
		entries = append(entries, resolver.NewFile(options.fs))
		if cfg.UseMultiRoot {
			entries = append(entries, resolver.NewMultiRootPackage(options.fs, cfg.PackageRootURLs, options.locator))
		} else if cfg.PackageRootURL != "" {
			entries = append(entries, resolver.NewPackage(options.fs, cfg.PackageRootURL))
		}
	}
	return resolver.NewComposite(entries...)
}
