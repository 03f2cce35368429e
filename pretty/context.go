package pretty

import (
	"github.com/gibiansky/hindent/ast"
	"github.com/gibiansky/hindent/errz"
	"github.com/gibiansky/hindent/internal/token"
	"github.com/gibiansky/hindent/printer"
)

// Context threads the printer through a render along with the style's
// renderer registry. All rendering goes through Render, which dispatches
// to the style's extender for the node's kind or to the structural
// default.
type Context struct {
	*printer.Printer
	style     *Style
	extenders map[ast.Kind]RenderFunc
}

// NewContext creates a render context for one top-level render call.
// The configuration may differ from the style's default when the caller
// overrides individual settings.
func NewContext(style *Style, cfg printer.Config) *Context {
	extenders := make(map[ast.Kind]RenderFunc, len(style.Extenders))
	for _, ext := range style.Extenders {
		// Ordered list, first match wins.
		if _, ok := extenders[ext.Kind]; !ok {
			extenders[ext.Kind] = ext.Render
		}
	}
	var state printer.StyleState
	if style.State != nil {
		state = style.State.Clone()
	}
	return &Context{
		Printer:   printer.New(cfg, state),
		style:     style,
		extenders: extenders,
	}
}

// Style returns the style driving this render.
func (c *Context) Style() *Style { return c.style }

// Render renders a node, preferring the style's extender for the node's
// kind and falling back to the structural default renderer.
func (c *Context) Render(n ast.Node) error {
	if n == nil {
		return errz.New(errz.ErrUnhandledNode, "nil node")
	}
	if render, ok := c.extenders[n.Kind()]; ok {
		return render(c, n)
	}
	return c.Default(n)
}

// Sandbox runs body with a context bound to an independent copy of the
// printer state, leaving the live state untouched. The copy is returned
// for inspection of its resulting line and column.
func (c *Context) Sandbox(body func(*Context) error) (*printer.Printer, error) {
	return c.Printer.Sandbox(func(dup *printer.Printer) error {
		return body(&Context{Printer: dup, style: c.style, extenders: c.extenders})
	})
}

// RendersOnOneLine reports whether rendering n from the current state
// stays on the current line. Measured speculatively; the live state is
// not affected.
func (c *Context) RendersOnOneLine(n ast.Node) (bool, error) {
	before := c.Line()
	sb, err := c.Sandbox(func(sc *Context) error {
		return sc.Render(n)
	})
	if err != nil {
		return false, err
	}
	return sb.Line() == before, nil
}

// MeasureWidth returns the printed width of n rendered from the current
// state. Measured speculatively; the live state is not affected.
func (c *Context) MeasureWidth(n ast.Node) (int, error) {
	before := c.Column()
	sb, err := c.Sandbox(func(sc *Context) error {
		return sc.Render(n)
	})
	if err != nil {
		return 0, err
	}
	return sb.Column() - before, nil
}

func location(n ast.Node) errz.SourceLocation {
	return position(n.Pos())
}

func position(p token.Position) errz.SourceLocation {
	return errz.SourceLocation{
		Filename: p.File,
		Line:     p.LineNumber(),
		Column:   p.ColumnNumber(),
	}
}
