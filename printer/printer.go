// Package printer implements the stateful rendering engine underneath the
// pretty-printer: a cursor that tracks the current line and column, a LIFO
// stack of indentation guides, speculative (sandboxed) execution against a
// disposable copy of the state, and the attempt-single-line decision
// procedure that commits a compact rendering only when it fits the
// configured column budget.
//
// The output buffer is strictly append-only. Rolling back a rejected
// compact attempt truncates the buffer to its snapshot length, which makes
// rollback byte-for-byte indistinguishable from never having run the
// attempt.
package printer

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Config holds the layout settings for one render. It is immutable for the
// duration of the render.
type Config struct {
	// MaxColumns is the column budget a line should not exceed. Lines may
	// still overflow when a single atomic token is longer than the budget.
	MaxColumns int
	// IndentSpaces is the number of columns added per indentation level.
	IndentSpaces int
	// ClearEmptyLines strips whitespace-only output lines down to empty
	// lines.
	ClearEmptyLines bool
}

// DefaultConfig returns the configuration used when a style does not
// override it.
func DefaultConfig() Config {
	return Config{
		MaxColumns:      100,
		IndentSpaces:    2,
		ClearEmptyLines: true,
	}
}

// StyleState is opaque extra state a style may thread through a render.
// Clone must return a deep copy: sandboxed execution and rollback rely on
// it to isolate speculative mutations.
type StyleState interface {
	Clone() StyleState
}

// Printer owns the mutable render state. It is exclusively owned by one
// render call and is not safe for concurrent use; sandboxes operate on
// independent copies, so nested speculative attempts never interfere.
type Printer struct {
	cfg        Config
	buf        []byte
	line       int
	col        int
	guides     []int
	eolComment bool
	state      StyleState
}

// New creates a Printer with the given configuration and initial style
// state (which may be nil).
func New(cfg Config, state StyleState) *Printer {
	return &Printer{cfg: cfg, state: state}
}

// Config returns the layout configuration for this render.
func (p *Printer) Config() Config { return p.cfg }

// State returns the style-defined extra state, or nil.
func (p *Printer) State() StyleState { return p.state }

// Line returns the 0-indexed current line number.
func (p *Printer) Line() int { return p.line }

// Column returns the current cursor column.
func (p *Printer) Column() int { return p.col }

// GuideDepth returns the current depth of the indentation guide stack.
func (p *Printer) GuideDepth() int { return len(p.guides) }

// guide returns the active indentation guide, or 0 if none is in scope.
func (p *Printer) guide() int {
	if len(p.guides) == 0 {
		return 0
	}
	return p.guides[len(p.guides)-1]
}

// Write appends text to the output and advances the column by the text's
// display width. The text must not contain a newline; line breaks go
// through Newline. If an end-of-line comment is pending, the write is
// preceded by a line break so the comment keeps the rest of its line.
func (p *Printer) Write(text string) {
	if p.eolComment {
		p.Newline()
	}
	p.buf = append(p.buf, text...)
	p.col += uniseg.StringWidth(text)
}

// Space writes a single space.
func (p *Printer) Space() {
	p.Write(" ")
}

// Pad writes n spaces; non-positive n writes nothing.
func (p *Printer) Pad(n int) {
	if n > 0 {
		p.Write(strings.Repeat(" ", n))
	}
}

// EolComment writes an end-of-line comment ("-- text") and marks it
// pending: any subsequent write on this line is forced onto a new line so
// the comment stays attached to what precedes it.
func (p *Printer) EolComment(text string) {
	p.Write("-- " + text)
	p.eolComment = true
}

// Newline appends a line break and resumes at the active indentation
// guide: the column resets to the guide's value and that many spaces are
// emitted so the next write lands at the guide.
func (p *Printer) Newline() {
	p.eolComment = false
	p.buf = append(p.buf, '\n')
	p.line++
	p.col = p.guide()
	for i := 0; i < p.col; i++ {
		p.buf = append(p.buf, ' ')
	}
}

// BlankLines emits n empty lines followed by a line break resuming at the
// active guide. Non-positive n emits a single line break.
func (p *Printer) BlankLines(n int) {
	for i := 0; i < n; i++ {
		p.eolComment = false
		p.buf = append(p.buf, '\n')
		p.line++
	}
	p.Newline()
}

// Indented pushes an indentation guide at the current column plus n, runs
// body, and pops the guide on every exit path.
func (p *Printer) Indented(n int, body func() error) error {
	return p.AtColumn(p.col+n, body)
}

// AtColumn pushes an absolute-column indentation guide, runs body, and
// pops the guide on every exit path. Negative columns are clamped to 0.
func (p *Printer) AtColumn(col int, body func() error) error {
	if col < 0 {
		col = 0
	}
	p.guides = append(p.guides, col)
	defer func() {
		p.guides = p.guides[:len(p.guides)-1]
	}()
	return body()
}

// snapshot captures everything needed to restore the printer exactly.
// The buffer is append-only, so its length alone identifies its content.
type snapshot struct {
	bufLen     int
	line       int
	col        int
	guides     []int
	eolComment bool
	state      StyleState
}

func (p *Printer) snap() snapshot {
	guides := make([]int, len(p.guides))
	copy(guides, p.guides)
	var state StyleState
	if p.state != nil {
		state = p.state.Clone()
	}
	return snapshot{
		bufLen:     len(p.buf),
		line:       p.line,
		col:        p.col,
		guides:     guides,
		eolComment: p.eolComment,
		state:      state,
	}
}

func (p *Printer) restore(s snapshot) {
	p.buf = p.buf[:s.bufLen]
	p.line = s.line
	p.col = s.col
	p.guides = p.guides[:0]
	p.guides = append(p.guides, s.guides...)
	p.eolComment = s.eolComment
	p.state = s.state
}

// AttemptSingleLine runs compact against the live state and commits it if
// the resulting column fits within MaxColumns. On overflow the state is
// restored exactly as it was and expanded runs instead. Errors from either
// branch propagate unchanged; only overflow triggers the fallback.
func (p *Printer) AttemptSingleLine(compact, expanded func() error) error {
	s := p.snap()
	if err := compact(); err != nil {
		return err
	}
	if p.col <= p.cfg.MaxColumns {
		return nil
	}
	p.restore(s)
	return expanded()
}

// Sandbox runs body against an independent copy of the printer and returns
// the copy for inspection, leaving the live state untouched. Useful for
// measuring what a sub-render would do (resulting line, column, width)
// before committing to a layout.
func (p *Printer) Sandbox(body func(*Printer) error) (*Printer, error) {
	dup := p.clone()
	err := body(dup)
	return dup, err
}

func (p *Printer) clone() *Printer {
	buf := make([]byte, len(p.buf))
	copy(buf, p.buf)
	guides := make([]int, len(p.guides))
	copy(guides, p.guides)
	var state StyleState
	if p.state != nil {
		state = p.state.Clone()
	}
	return &Printer{
		cfg:        p.cfg,
		buf:        buf,
		line:       p.line,
		col:        p.col,
		guides:     guides,
		eolComment: p.eolComment,
		state:      state,
	}
}

// Output returns the accumulated text. With ClearEmptyLines set,
// whitespace-only lines are reduced to empty lines; indentation emitted
// ahead of a line that never received text would otherwise linger as
// trailing whitespace.
func (p *Printer) Output() string {
	out := string(p.buf)
	if !p.cfg.ClearEmptyLines {
		return out
	}
	lines := strings.Split(out, "\n")
	for i, line := range lines {
		if strings.TrimRight(line, " \t") == "" {
			lines[i] = ""
		}
	}
	return strings.Join(lines, "\n")
}
