package codegen

import (
	"github.com/hirosystems/clarity-wasm-go/builder"
	"github.com/hirosystems/clarity-wasm-go/clarity"
	"github.com/hirosystems/clarity-wasm-go/errors"
	"github.com/hirosystems/clarity-wasm-go/lower"
	"github.com/hirosystems/clarity-wasm-go/wasm"
)

// lowerFold lowers (fold func seq initial): a structured loop walking the
// list's fixed-width elements, calling func as (accumulator, element) ->
// new-accumulator once per element.
func (g *Generator) lowerFold(seq *builder.Seq, e clarity.Expr) error {
	if len(e.Args) != 3 {
		return errors.Internal(errors.PhaseAssemble, "fold takes exactly three arguments")
	}
	funcRef, listExpr, initial := e.Args[0], e.Args[1], e.Args[2]

	if !listExpr.Type.IsList() {
		return errors.Internal(errors.PhaseAssemble, "fold's second argument is not a list")
	}
	listData := listExpr.Type.Sequence.List
	if !listData.EntryType.IsInt128() {
		return errors.NotImplemented(errors.PhaseAssemble, nil, "fold over non-integer list elements")
	}
	elemWidth, err := lower.ByteWidth(listData.EntryType)
	if err != nil {
		return err
	}

	funcIdx, err := g.resolveFoldFunc(funcRef.Atom, e.Type)
	if err != nil {
		return err
	}

	if err := g.lowerExpr(seq, listExpr); err != nil {
		return err
	}
	fr := g.curFrame()
	offsetLocal := fr.alloc(wasm.ValI32)
	seq.Drop() // discard length, list elements are fixed-width
	seq.LocalSet(offsetLocal)

	endOffsetLocal := fr.alloc(wasm.ValI32)
	seq.LocalGet(offsetLocal)
	seq.I32Const(int32(listData.MaxLength * elemWidth))
	seq.Op(wasm.OpI32Add)
	seq.LocalSet(endOffsetLocal)

	if err := g.lowerExpr(seq, initial); err != nil {
		return err
	}

	if listData.MaxLength == 0 {
		return nil
	}

	resultSlots := lower.LoweredSlots(e.Type)
	blockType := builder.BlockTypeWithParams(g.mod, resultSlots, resultSlots)

	seq.Loop(blockType, func(body *builder.Seq) {
		readInt128(body, localAddr(offsetLocal), 0, 8)
		body.Call(funcIdx)

		body.LocalGet(offsetLocal)
		body.I32Const(int32(elemWidth))
		body.Op(wasm.OpI32Add)
		body.LocalSet(offsetLocal)

		body.LocalGet(offsetLocal)
		body.LocalGet(endOffsetLocal)
		body.Op(wasm.OpI32LtU)
		body.BrIf(0)
	})
	return nil
}

// resolveFoldFunc resolves fold's function-reference argument: either a
// native arithmetic op's "<op>-<suffix>" helper (the concrete scenario
// `(fold + (list ...) 0)`) or a user-defined function by name. Both share
// the same (accumulator, element) -> accumulator call shape when the
// accumulator and element types agree.
func (g *Generator) resolveFoldFunc(name string, accType clarity.TypeSignature) (uint32, error) {
	if nf, ok := clarity.LookupNative(name); ok {
		if suffix, ok := arithSuffix(nf, accType); ok {
			return g.resolveHelper(suffix)
		}
	}
	idx, ok := g.funcIndex[name]
	if !ok {
		panic("codegen: fold references unknown function " + name + ": type checker should have rejected this")
	}
	return idx, nil
}

func arithSuffix(nf clarity.NativeFunctions, ty clarity.TypeSignature) (string, bool) {
	name, ok := arithHelperNames[nf]
	if !ok {
		return "", false
	}
	switch ty.Kind {
	case clarity.IntType:
		return name + "-int", true
	case clarity.UIntType:
		return name + "-uint", true
	default:
		return "", false
	}
}
