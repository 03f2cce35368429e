// Package hindent pretty-prints Haskell source code from its abstract
// syntax tree. A render is driven by a Style: a named bundle of layout
// configuration and per-node-kind custom renderers that override the
// structural default. Parsing source text into the AST is the caller's
// concern; the printer treats the tree as read-only input.
package hindent

import (
	"strings"

	"github.com/gibiansky/hindent/ast"
	"github.com/gibiansky/hindent/errz"
	"github.com/gibiansky/hindent/pretty"
	"github.com/gibiansky/hindent/printer"
	"github.com/gibiansky/hindent/styles"
)

// Option configures a single render.
type Option func(*options)

type options struct {
	style           *pretty.Style
	maxColumns      *int
	indentSpaces    *int
	clearEmptyLines *bool
}

func collectOptions(opts ...Option) *options {
	o := &options{}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	return o
}

// WithStyle selects the style driving the render. The default is the
// gibiansky style.
func WithStyle(style *pretty.Style) Option {
	return func(o *options) {
		o.style = style
	}
}

// WithMaxColumns overrides the style's column budget.
func WithMaxColumns(n int) Option {
	return func(o *options) {
		o.maxColumns = &n
	}
}

// WithIndentSpaces overrides the style's indentation width.
func WithIndentSpaces(n int) Option {
	return func(o *options) {
		o.indentSpaces = &n
	}
}

// WithClearEmptyLines overrides whether whitespace-only output lines are
// reduced to empty lines.
func WithClearEmptyLines(clear bool) Option {
	return func(o *options) {
		o.clearEmptyLines = &clear
	}
}

func (o *options) config(style *pretty.Style) printer.Config {
	cfg := style.Config
	if o.maxColumns != nil {
		cfg.MaxColumns = *o.maxColumns
	}
	if o.indentSpaces != nil {
		cfg.IndentSpaces = *o.indentSpaces
	}
	if o.clearEmptyLines != nil {
		cfg.ClearEmptyLines = *o.clearEmptyLines
	}
	return cfg
}

// Format renders node and returns the formatted text, which always ends
// with a newline. Rendering either fully succeeds or returns an error
// with no usable output.
func Format(node ast.Node, opts ...Option) (string, error) {
	out, _, err := FormatWithState(node, opts...)
	return out, err
}

// FormatWithState renders node and additionally returns the final printer
// state for diagnostics and tooling.
func FormatWithState(node ast.Node, opts ...Option) (string, *printer.Printer, error) {
	o := collectOptions(opts...)
	style := o.style
	if style == nil {
		style = styles.Gibiansky()
	}
	if err := style.Validate(); err != nil {
		return "", nil, err
	}
	cfg := o.config(style)
	if cfg.MaxColumns <= 0 {
		return "", nil, errz.New(errz.ErrConfig, "max columns must be positive, got %d", cfg.MaxColumns)
	}
	if cfg.IndentSpaces < 0 {
		return "", nil, errz.New(errz.ErrConfig, "indent spaces must be non-negative, got %d", cfg.IndentSpaces)
	}
	ctx := pretty.NewContext(style, cfg)
	if err := ctx.Render(node); err != nil {
		return "", nil, err
	}
	out := ctx.Output()
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	return out, ctx.Printer, nil
}

// Styles returns the built-in styles.
func Styles() []*pretty.Style {
	return styles.All()
}

// Lookup returns the built-in style with the given name.
func Lookup(name string) (*pretty.Style, bool) {
	return styles.Lookup(name)
}
