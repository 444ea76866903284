package resolver

import "context"

// Scheme prefixes claimed by the built-in resolvers.
const (
	//LibraryScheme identifies runtime library units, i.e. lib:core
	LibraryScheme = "lib"
	//PackageScheme identifies module package units, i.e. pkg:collections/list.src
	PackageScheme = "pkg"
)

//Resolver maps a source identifier within a claimed scheme to source content.
type Resolver interface {
	//CanResolve returns true if this resolver claims the supplied identifier scheme
	CanResolve(URL string) bool

	//Resolve returns source content for the supplied identifier
	Resolve(ctx context.Context, URL string) ([]byte, error)
}
