package codegen

import (
	"github.com/hirosystems/clarity-wasm-go/builder"
	"github.com/hirosystems/clarity-wasm-go/clarity"
	"github.com/hirosystems/clarity-wasm-go/errors"
)

// lowerAtom reads an identifier bound in the current per-function
// environment: one local per lowered slot. Constants and contract-global
// keywords are acknowledged as future work (see SPEC_FULL.md §9) and are
// reported as NotImplemented rather than silently mishandled.
func (g *Generator) lowerAtom(seq *builder.Seq, e clarity.Expr) error {
	locals, ok := g.curEnv()[e.Atom]
	if !ok {
		return errors.NotImplemented(errors.PhaseAssemble, []string{e.Atom}, "constant, keyword, or unbound identifier")
	}
	for _, idx := range locals {
		seq.LocalGet(idx)
	}
	return nil
}
