package analysis

import (
	"github.com/statily/statily/config"
	"github.com/statily/statily/resolver"
)

//Inference is the library resolution strategy layered onto the engine
//defaults; the installed factory produces it lazily, once, on first library
//resolution.
type Inference interface {
	//CanonicalURL returns the resolver identifier for a runtime library unit
	CanonicalURL(unit string) string
}

//InferenceFactory produces an inference strategy parameterized by configuration
type InferenceFactory func(cfg *config.Config) Inference

type defaultInference struct {
	cfg *config.Config
}

func (i *defaultInference) CanonicalURL(unit string) string {
	return resolver.LibraryScheme + ":" + unit
}

//NewInference creates the default inference strategy
func NewInference(cfg *config.Config) Inference {
	return &defaultInference{cfg: cfg}
}
