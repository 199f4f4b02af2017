package codegen

import (
	"github.com/hirosystems/clarity-wasm-go/builder"
	"github.com/hirosystems/clarity-wasm-go/clarity"
	"github.com/hirosystems/clarity-wasm-go/errors"
)

// lowerVarGet lowers (var-get name): allocate a frame slot, call
// get_variable to have the host write the value into it, then read the
// value back out onto the data stack.
func (g *Generator) lowerVarGet(seq *builder.Seq, e clarity.Expr) error {
	name := e.Args[0].Atom
	id, ok := g.idents[name]
	if !ok {
		return errors.Internal(errors.PhaseAssemble, "var-get of undefined variable "+name)
	}
	if !e.Type.IsInt128() {
		return errors.NotImplemented(errors.PhaseAssemble, []string{name}, "var-get of non-integer type")
	}

	getVariableIdx, err := g.resolveHelper("get_variable")
	if err != nil {
		return err
	}

	slotLocal, slotSize, err := g.PushFrameLocal(seq, e.Type)
	if err != nil {
		return err
	}

	seq.I32Const(int32(id))
	seq.LocalGet(slotLocal)
	seq.I32Const(int32(slotSize))
	seq.Call(getVariableIdx)

	readInt128(seq, localAddr(slotLocal), 0, 8)
	return nil
}

// lowerVarSet lowers (var-set name value): write the new value into a
// frame slot and call set_variable. Per SPEC_FULL.md §9's resolution of
// the "unused value-stack items" design note ("choose (a) for
// simplicity"), var-set's boolean return is not emitted at all in this
// repo: its Expr.Type is NoType (zero lowered slots), so rather than
// emitting `true` for a caller to drop, the statement-form call simply
// produces nothing. See DESIGN.md for why this still satisfies law #4 in
// §8 (slot-shape preservation: NoType lowers to zero slots here).
func (g *Generator) lowerVarSet(seq *builder.Seq, e clarity.Expr) error {
	name := e.Args[0].Atom
	id, ok := g.idents[name]
	if !ok {
		return errors.Internal(errors.PhaseAssemble, "var-set of undefined variable "+name)
	}
	value := e.Args[1]
	if !value.Type.IsInt128() {
		return errors.NotImplemented(errors.PhaseAssemble, []string{name}, "var-set of non-integer type")
	}

	setVariableIdx, err := g.resolveHelper("set_variable")
	if err != nil {
		return err
	}

	slotLocal, slotSize, err := g.PushFrameLocal(seq, value.Type)
	if err != nil {
		return err
	}

	if err := g.lowerExpr(seq, value); err != nil {
		return err
	}
	g.writeInt128(seq, localAddr(slotLocal), 0, 8)

	seq.I32Const(int32(id))
	seq.LocalGet(slotLocal)
	seq.I32Const(int32(slotSize))
	seq.Call(setVariableIdx)
	return nil
}

// lowerDefineDataVar lowers (define-data-var name type initial) at the
// top level: the initial value's bytes are placed directly in the
// literal region (the call stack isn't established yet), then
// define_variable registers the name/id/value with the host.
func (g *Generator) lowerDefineDataVar(seq *builder.Seq, e clarity.Expr) error {
	name := e.Args[0].Atom
	initial := e.Args[1]
	ty := e.Type

	if !ty.IsInt128() {
		return errors.NotImplemented(errors.PhaseAssemble, []string{name}, "define-data-var of non-integer type")
	}

	defineVariableIdx, err := g.resolveHelper("define_variable")
	if err != nil {
		return err
	}

	id := g.newIdent(name)
	nameOffset, nameLen := g.InternBytes([]byte(name))

	valueOffset := g.literalEnd
	if err := g.lowerExpr(seq, initial); err != nil {
		return err
	}
	g.writeInt128(seq, constAddr(valueOffset), 0, 8)
	g.literalEnd += 16
	valueSize := uint32(16)

	seq.I32Const(int32(id))
	seq.I32Const(int32(nameOffset))
	seq.I32Const(int32(nameLen))
	seq.I32Const(int32(valueOffset))
	seq.I32Const(int32(valueSize))
	seq.Call(defineVariableIdx)
	return nil
}
