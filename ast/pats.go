package ast

import "github.com/gibiansky/hindent/internal/token"

// PVar is a variable pattern.
type PVar struct {
	NamePos token.Position
	Name    string
}

func (p *PVar) patNode() {}

func (p *PVar) Kind() Kind          { return KindPat }
func (p *PVar) Pos() token.Position { return p.NamePos }
func (p *PVar) End() token.Position { return p.NamePos.Advance(len(p.Name)) }

// PLit is a literal pattern carried as its exact source text.
type PLit struct {
	LitPos token.Position
	Text   string
}

func (p *PLit) patNode() {}

func (p *PLit) Kind() Kind          { return KindPat }
func (p *PLit) Pos() token.Position { return p.LitPos }
func (p *PLit) End() token.Position { return p.LitPos.Advance(len(p.Text)) }

// PWild is the wildcard pattern "_".
type PWild struct {
	UnderscorePos token.Position
}

func (p *PWild) patNode() {}

func (p *PWild) Kind() Kind          { return KindPat }
func (p *PWild) Pos() token.Position { return p.UnderscorePos }
func (p *PWild) End() token.Position { return p.UnderscorePos.Advance(1) }

// PCon is a constructor pattern, e.g. "Just x".
type PCon struct {
	NamePos token.Position
	Name    string
	Pats    []Pat
}

func (p *PCon) patNode() {}

func (p *PCon) Kind() Kind          { return KindPat }
func (p *PCon) Pos() token.Position { return p.NamePos }

func (p *PCon) End() token.Position {
	if len(p.Pats) > 0 {
		return p.Pats[len(p.Pats)-1].End()
	}
	return p.NamePos.Advance(len(p.Name))
}

// PTuple is a tuple pattern, e.g. "(a, b)".
type PTuple struct {
	Lparen token.Position
	Pats   []Pat
	Rparen token.Position
}

func (p *PTuple) patNode() {}

func (p *PTuple) Kind() Kind          { return KindPat }
func (p *PTuple) Pos() token.Position { return p.Lparen }
func (p *PTuple) End() token.Position { return p.Rparen.Advance(1) }

// PList is a list pattern, e.g. "[x, y]".
type PList struct {
	Lbrack token.Position
	Pats   []Pat
	Rbrack token.Position
}

func (p *PList) patNode() {}

func (p *PList) Kind() Kind          { return KindPat }
func (p *PList) Pos() token.Position { return p.Lbrack }
func (p *PList) End() token.Position { return p.Rbrack.Advance(1) }

// PParen is an explicitly parenthesized pattern.
type PParen struct {
	Lparen token.Position
	X      Pat
	Rparen token.Position
}

func (p *PParen) patNode() {}

func (p *PParen) Kind() Kind          { return KindPat }
func (p *PParen) Pos() token.Position { return p.Lparen }
func (p *PParen) End() token.Position { return p.Rparen.Advance(1) }
