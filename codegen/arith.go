package codegen

import (
	"github.com/hirosystems/clarity-wasm-go/builder"
	"github.com/hirosystems/clarity-wasm-go/clarity"
	"github.com/hirosystems/clarity-wasm-go/errors"
)

var arithHelperNames = map[clarity.NativeFunctions]string{
	clarity.Add:      "add",
	clarity.Subtract: "sub",
	clarity.Multiply: "mul",
	clarity.Divide:   "div",
	clarity.Modulo:   "mod",
}

// lowerArithmetic lowers {+, -, *, /, mod}: emit operand 0, then for each
// remaining operand emit it and call the resolved "<op>-<suffix>" helper,
// folding left to right.
func (g *Generator) lowerArithmetic(seq *builder.Seq, nf clarity.NativeFunctions, e clarity.Expr) error {
	var suffix string
	switch e.Type.Kind {
	case clarity.IntType:
		suffix = "int"
	case clarity.UIntType:
		suffix = "uint"
	default:
		return errors.Internal(errors.PhaseAssemble, "arithmetic result type is not int or uint")
	}

	helperName := arithHelperNames[nf] + "-" + suffix
	helperIdx, err := g.resolveHelper(helperName)
	if err != nil {
		return err
	}

	if len(e.Args) == 0 {
		return errors.Internal(errors.PhaseAssemble, "arithmetic form with no operands")
	}

	if err := g.lowerExpr(seq, e.Args[0]); err != nil {
		return err
	}
	for _, arg := range e.Args[1:] {
		if err := g.lowerExpr(seq, arg); err != nil {
			return err
		}
		seq.Call(helperIdx)
	}
	return nil
}
