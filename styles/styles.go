// Package styles ships the built-in formatting styles. A style bundles a
// default configuration with custom renderers for the node kinds it cares
// about; everything else falls through to the structural default.
package styles

import "github.com/gibiansky/hindent/pretty"

// All returns the built-in styles in display order.
func All() []*pretty.Style {
	return []*pretty.Style{
		Fundamental(),
		Gibiansky(),
	}
}

// Lookup returns the built-in style with the given name.
func Lookup(name string) (*pretty.Style, bool) {
	for _, s := range All() {
		if s.Name == name {
			return s, true
		}
	}
	return nil, false
}
