package codegen

import (
	"github.com/hirosystems/clarity-wasm-go/builder"
	"github.com/hirosystems/clarity-wasm-go/clarity"
)

// lowerUserCall lowers a call to a user-defined function: each argument is
// lowered in order, then a call to the function resolved by source name.
// A missing function is a type-checker-bug-class violation: the checker
// should never have accepted a call to an undefined function, so this
// panics rather than returning an error (SPEC_FULL.md §7).
func (g *Generator) lowerUserCall(seq *builder.Seq, e clarity.Expr) error {
	for _, arg := range e.Args {
		if err := g.lowerExpr(seq, arg); err != nil {
			return err
		}
	}
	funcIdx, ok := g.funcIndex[e.Head]
	if !ok {
		panic("codegen: call to undefined function " + e.Head + ": type checker should have rejected this")
	}
	seq.Call(funcIdx)
	return nil
}
