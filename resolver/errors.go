package resolver

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	//ErrNotFound indicates the claiming resolver could not locate content
	ErrNotFound = errors.New("source not found")

	//ErrSchemeUnhandled indicates no resolver in the chain claims the identifier scheme
	ErrSchemeUnhandled = errors.New("unhandled scheme")
)

//NotFound returns a not found error for the supplied identifier
func NotFound(URL string) error {
	return fmt.Errorf("%w: %v", ErrNotFound, URL)
}

//SchemeUnhandled returns an unhandled scheme error for the supplied identifier
func SchemeUnhandled(URL string) error {
	return fmt.Errorf("%w: %v", ErrSchemeUnhandled, URL)
}
