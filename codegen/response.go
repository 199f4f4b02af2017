package codegen

import (
	"github.com/hirosystems/clarity-wasm-go/builder"
	"github.com/hirosystems/clarity-wasm-go/clarity"
	"github.com/hirosystems/clarity-wasm-go/errors"
	"github.com/hirosystems/clarity-wasm-go/lower"
	"github.com/hirosystems/clarity-wasm-go/wasm"
)

// lowerResponse lowers (ok v) / (err v): a discriminant, then both arms'
// slots, materializing a placeholder zero for the arm that isn't live.
// Non-response type is a type-checker-bug-class violation: it panics
// rather than returning an error, per SPEC_FULL.md §7.
func (g *Generator) lowerResponse(seq *builder.Seq, nf clarity.NativeFunctions, e clarity.Expr) error {
	if e.Type.Kind != clarity.ResponseTypeKind {
		panic("codegen: ok/err at a non-response type: type checker should have rejected this")
	}
	if len(e.Args) != 1 {
		return errors.Internal(errors.PhaseAssemble, "ok/err takes exactly one argument")
	}

	okTy, errTy := e.Type.Response.OkType, e.Type.Response.ErrType
	value := e.Args[0]

	switch nf {
	case clarity.Ok:
		seq.I32Const(1)
		if err := g.lowerExpr(seq, value); err != nil {
			return err
		}
		pushZeros(seq, errTy)
	case clarity.ErrF:
		seq.I32Const(0)
		pushZeros(seq, okTy)
		if err := g.lowerExpr(seq, value); err != nil {
			return err
		}
	default:
		return errors.Internal(errors.PhaseAssemble, "unreachable response native")
	}
	return nil
}

// pushZeros emits a zero constant for each slot of ty, the placeholder
// value materialized for the dead arm of a response.
func pushZeros(seq *builder.Seq, ty clarity.TypeSignature) {
	for _, slot := range lower.LoweredSlots(ty) {
		if slot == wasm.ValI64 {
			seq.I64Const(0)
		} else {
			seq.I32Const(0)
		}
	}
}
