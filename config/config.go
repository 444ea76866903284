package config

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
	"github.com/viant/afs"
	"github.com/viant/toolbox"
	"gopkg.in/yaml.v3"
)

//DefaultUnitCacheSize bounds how many resolved units the engine retains
const DefaultUnitCacheSize = 512

//Config describes the desired analysis environment: mock or real runtime
//library, package layout and the optional implicit entry document. A config is
//validated eagerly and never handed downstream partially valid.
type Config struct {
	UseMockRuntime   bool
	RuntimeURL       string
	UseImplicitEntry bool
	EntryPointURL    string
	UseMultiRoot     bool
	PackageRootURLs  []string
	PackageRootURL   string
	UnitCacheSize    int
}

//Init fills configuration defaults
func (c *Config) Init() {
	if c.UnitCacheSize == 0 {
		c.UnitCacheSize = DefaultUnitCacheSize
	}
}

//Validate checks required field combinations for the selected modes
func (c *Config) Validate() error {
	if !c.UseMockRuntime && c.RuntimeURL == "" {
		return NewError("RuntimeURL", "was empty, required unless UseMockRuntime is set")
	}
	if c.UseMockRuntime && c.RuntimeURL != "" {
		return NewError("RuntimeURL", "cannot be combined with UseMockRuntime")
	}
	if c.UseImplicitEntry && c.EntryPointURL == "" {
		return NewError("EntryPointURL", "was empty, required with UseImplicitEntry")
	}
	if !c.UseImplicitEntry && c.EntryPointURL != "" {
		return NewError("EntryPointURL", "requires UseImplicitEntry")
	}
	if c.UseMultiRoot {
		if len(c.PackageRootURLs) == 0 {
			return NewError("PackageRootURLs", "were empty, required with UseMultiRoot")
		}
		if c.PackageRootURL != "" {
			return NewError("PackageRootURL", "cannot be combined with UseMultiRoot")
		}
	} else if len(c.PackageRootURLs) > 0 {
		return NewError("PackageRootURLs", "require UseMultiRoot")
	}
	if c.UnitCacheSize < 0 {
		return NewError("UnitCacheSize", "was negative")
	}
	return nil
}

//NewConfigFromURL loads, converts and validates a configuration document
func NewConfigFromURL(ctx context.Context, URL string) (*Config, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load config %v", URL)
	}
	aMap := map[string]interface{}{}
	if strings.HasSuffix(URL, "yaml") || strings.HasSuffix(URL, "yml") {
		if err := yaml.Unmarshal(data, &aMap); err != nil {
			return nil, err
		}
	} else {
		if err := json.Unmarshal(data, &aMap); err != nil {
			return nil, err
		}
	}
	cfg := &Config{}
	if err := toolbox.DefaultConverter.AssignConverted(cfg, aMap); err != nil {
		return nil, err
	}
	cfg.Init()
	return cfg, cfg.Validate()
}
