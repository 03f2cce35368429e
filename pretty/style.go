// Package pretty implements renderer dispatch over AST node kinds: a Style
// bundles a default configuration with an ordered list of per-kind custom
// renderers ("extenders"), and the shared structural default renderer
// covers every node shape no extender claims.
package pretty

import (
	"github.com/hashicorp/go-multierror"

	"github.com/gibiansky/hindent/ast"
	"github.com/gibiansky/hindent/errz"
	"github.com/gibiansky/hindent/printer"
)

// RenderFunc renders one node. Its only observable effect is the mutation
// it performs on the printer threaded through the context; it may use the
// context's cursor accessors to observe positions for alignment math.
type RenderFunc func(c *Context, n ast.Node) error

// Extender registers a custom renderer for one node kind. The renderer
// receives every node of that kind and calls Context.Default for shapes it
// does not special-case.
type Extender struct {
	Kind   ast.Kind
	Render RenderFunc
}

// Style is a named bundle of layout configuration and custom renderers.
// A Style is created once and read-only during rendering.
type Style struct {
	Name        string
	Description string
	Author      string
	Config      printer.Config
	// State is the initial style-specific extra state threaded through a
	// render; nil if the style keeps no state.
	State printer.StyleState
	// Extenders is the ordered renderer list; for any kind the first
	// matching entry wins.
	Extenders []Extender
}

// Validate reports every problem with the style definition at once.
func (s *Style) Validate() error {
	var result *multierror.Error
	if s.Name == "" {
		result = multierror.Append(result, errz.New(errz.ErrStyle, "style has no name"))
	}
	if s.Config.MaxColumns <= 0 {
		result = multierror.Append(result,
			errz.New(errz.ErrConfig, "style %q: max columns must be positive, got %d", s.Name, s.Config.MaxColumns))
	}
	if s.Config.IndentSpaces < 0 {
		result = multierror.Append(result,
			errz.New(errz.ErrConfig, "style %q: indent spaces must be non-negative, got %d", s.Name, s.Config.IndentSpaces))
	}
	seen := map[ast.Kind]bool{}
	for _, ext := range s.Extenders {
		if ext.Render == nil {
			result = multierror.Append(result,
				errz.New(errz.ErrStyle, "style %q: nil renderer for %s nodes", s.Name, ext.Kind))
		}
		if seen[ext.Kind] {
			result = multierror.Append(result,
				errz.New(errz.ErrStyle, "style %q: duplicate renderer for %s nodes", s.Name, ext.Kind))
		}
		seen[ext.Kind] = true
	}
	return result.ErrorOrNil()
}
