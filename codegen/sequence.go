package codegen

import (
	"github.com/hirosystems/clarity-wasm-go/builder"
	"github.com/hirosystems/clarity-wasm-go/clarity"
	"github.com/hirosystems/clarity-wasm-go/errors"
	"github.com/hirosystems/clarity-wasm-go/lower"
	"github.com/hirosystems/clarity-wasm-go/wasm"
)

// lowerConcat lowers (concat a b): allocate a destination frame slot,
// memcpy each operand into it back to back, and push (offset, size).
func (g *Generator) lowerConcat(seq *builder.Seq, e clarity.Expr) error {
	if len(e.Args) != 2 {
		return errors.Internal(errors.PhaseAssemble, "concat takes exactly two arguments")
	}
	memcpyIdx, err := g.resolveHelper("memcpy")
	if err != nil {
		return err
	}

	destLocal, _, err := g.PushFrameLocal(seq, e.Type)
	if err != nil {
		return err
	}

	fr := g.curFrame()
	endLocal := fr.alloc(wasm.ValI32)
	sizeLocal := fr.alloc(wasm.ValI32)

	if err := g.lowerExpr(seq, e.Args[0]); err != nil {
		return err
	}
	seq.LocalGet(destLocal)
	seq.Call(memcpyIdx)
	seq.LocalSet(endLocal)

	if err := g.lowerExpr(seq, e.Args[1]); err != nil {
		return err
	}
	seq.LocalGet(endLocal)
	seq.Call(memcpyIdx)
	seq.LocalSet(endLocal)

	seq.LocalGet(endLocal).LocalGet(destLocal).Op(wasm.OpI32Sub)
	seq.LocalSet(sizeLocal)

	seq.LocalGet(destLocal)
	seq.LocalGet(sizeLocal)
	return nil
}

// lowerListCons lowers (list e1 ... en): allocates a frame slot sized to
// the whole list and writes each element to its fixed-width slot. Only
// int/uint elements are supported, matching write-to-memory's scope
// (SPEC_FULL.md §9).
func (g *Generator) lowerListCons(seq *builder.Seq, e clarity.Expr) error {
	if !e.Type.IsList() {
		return errors.Internal(errors.PhaseAssemble, "list construction at a non-list type")
	}
	listData := e.Type.Sequence.List
	if uint32(len(e.Args)) != listData.MaxLength {
		return errors.Internal(errors.PhaseAssemble, "list literal arity does not match its declared length")
	}
	if !listData.EntryType.IsInt128() {
		return errors.NotImplemented(errors.PhaseAssemble, nil, "list construction of non-integer element type")
	}

	elemWidth, err := lower.ByteWidth(listData.EntryType)
	if err != nil {
		return err
	}

	offsetLocal, totalSize, err := g.PushFrameLocal(seq, e.Type)
	if err != nil {
		return err
	}

	for i, elem := range e.Args {
		if err := g.lowerExpr(seq, elem); err != nil {
			return err
		}
		disp := uint64(i) * uint64(elemWidth)
		g.writeInt128(seq, localAddr(offsetLocal), disp, disp+8)
	}

	seq.LocalGet(offsetLocal)
	seq.I32Const(int32(totalSize))
	return nil
}
