package styles

import (
	"github.com/gibiansky/hindent/pretty"
	"github.com/gibiansky/hindent/printer"
)

// Fundamental is the baseline style: no extenders, so every node renders
// through the structural default.
func Fundamental() *pretty.Style {
	return &pretty.Style{
		Name:        "fundamental",
		Description: "Structural rendering with no layout opinions beyond the grammar.",
		Author:      "Chris Done",
		Config:      printer.DefaultConfig(),
	}
}
