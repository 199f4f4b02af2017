package codegen

import (
	"github.com/hirosystems/clarity-wasm-go/builder"
	"github.com/hirosystems/clarity-wasm-go/clarity"
	"github.com/hirosystems/clarity-wasm-go/errors"
	"github.com/hirosystems/clarity-wasm-go/lower"
)

// lowerIf lowers (if cond then else): cond (one i32 slot) drives a
// structured if/else whose block type is lowered-slots(type-of(expr)).
// SPEC_FULL.md §4.D addition: not exercised by the original source's
// excerpted file, built in the same idiom as fold's loop and ok/err's
// discriminant push.
func (g *Generator) lowerIf(seq *builder.Seq, e clarity.Expr) error {
	if len(e.Args) != 3 {
		return errors.Internal(errors.PhaseAssemble, "if takes exactly three arguments")
	}
	cond, then, els := e.Args[0], e.Args[1], e.Args[2]

	if err := g.lowerExpr(seq, cond); err != nil {
		return err
	}

	blockType := builder.BlockType(g.mod, lower.LoweredSlots(e.Type))

	var lowerErr error
	seq.If(blockType,
		func(thenSeq *builder.Seq) {
			if err := g.lowerExpr(thenSeq, then); err != nil {
				lowerErr = err
			}
		},
		func(elseSeq *builder.Seq) {
			if lowerErr != nil {
				return
			}
			if err := g.lowerExpr(elseSeq, els); err != nil {
				lowerErr = err
			}
		},
	)
	return lowerErr
}

// lowerBegin lowers (begin e1 ... en): e1..e(n-1) are lowered for effect
// and their produced slots dropped; en is lowered for value. SPEC_FULL.md
// §4.D addition, needed by §8's round-trip law #3.
func (g *Generator) lowerBegin(seq *builder.Seq, e clarity.Expr) error {
	if len(e.Args) == 0 {
		return errors.Internal(errors.PhaseAssemble, "begin with no forms")
	}
	for _, sub := range e.Args[:len(e.Args)-1] {
		if err := g.lowerExpr(seq, sub); err != nil {
			return err
		}
		g.dropSlots(seq, sub.Type)
	}
	last := e.Args[len(e.Args)-1]
	return g.lowerExpr(seq, last)
}
