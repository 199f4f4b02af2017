package codegen

import (
	"github.com/hirosystems/clarity-wasm-go/builder"
	"github.com/hirosystems/clarity-wasm-go/clarity"
	"github.com/hirosystems/clarity-wasm-go/errors"
	"github.com/hirosystems/clarity-wasm-go/lower"
)

// lowerExpr emits instructions for e onto seq such that, on return, the
// value-stack delta equals lower.LoweredSlots(e.Type) (or is empty for
// statement-form effects, e.g. var-set).
func (g *Generator) lowerExpr(seq *builder.Seq, e clarity.Expr) error {
	switch e.Kind {
	case clarity.ExprLiteral:
		return g.lowerLiteral(seq, e)
	case clarity.ExprAtom:
		return g.lowerAtom(seq, e)
	case clarity.ExprList:
		return g.lowerList(seq, e)
	default:
		return errors.Internal(errors.PhaseAssemble, "unrecognized expression kind")
	}
}

// lowerList dispatches a list-form expression: a native form, or a call
// to a user-defined function.
func (g *Generator) lowerList(seq *builder.Seq, e clarity.Expr) error {
	if nf, ok := e.Native(); ok {
		switch nf {
		case clarity.Add, clarity.Subtract, clarity.Multiply, clarity.Divide, clarity.Modulo:
			return g.lowerArithmetic(seq, nf, e)
		case clarity.Ok, clarity.ErrF:
			return g.lowerResponse(seq, nf, e)
		case clarity.Concat:
			return g.lowerConcat(seq, e)
		case clarity.ListCons:
			return g.lowerListCons(seq, e)
		case clarity.Fold:
			return g.lowerFold(seq, e)
		case clarity.VarGet:
			return g.lowerVarGet(seq, e)
		case clarity.VarSet:
			return g.lowerVarSet(seq, e)
		case clarity.If:
			return g.lowerIf(seq, e)
		case clarity.Begin:
			return g.lowerBegin(seq, e)
		}
	}
	return g.lowerUserCall(seq, e)
}

// dropSlots discards the value-stack slots a value of ty occupies, one
// Drop per slot (OpDrop is type-agnostic, so this works regardless of
// whether the slots are i32 or i64).
func (g *Generator) dropSlots(seq *builder.Seq, ty clarity.TypeSignature) {
	for range lower.LoweredSlots(ty) {
		seq.Drop()
	}
}
