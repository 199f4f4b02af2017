package codegen

import (
	"github.com/hirosystems/clarity-wasm-go/builder"
	"github.com/hirosystems/clarity-wasm-go/clarity"
	"github.com/hirosystems/clarity-wasm-go/lower"
	"github.com/hirosystems/clarity-wasm-go/wasm"
)

// InternBytes appends payload to the module's single data segment at the
// current literal-memory cursor, advances the cursor, and returns the
// (offset, length) pair callers address it by. literalEnd only grows.
func (g *Generator) InternBytes(payload []byte) (offset, length uint32) {
	offset = g.literalEnd
	length = uint32(len(payload))

	if len(g.mod.Data) == 0 {
		g.mod.Data = append(g.mod.Data, wasm.DataSegment{
			Offset: wasm.EncodeInstructions([]wasm.Instruction{
				{Opcode: wasm.OpI32Const, Imm: wasm.I32Imm{Value: 0}},
				{Opcode: wasm.OpEnd},
			}),
		})
	}
	seg := &g.mod.Data[0]
	seg.Init = append(seg.Init, payload...)

	g.literalEnd += length
	return offset, length
}

// PushFrameLocal emits instructions that capture the current stack
// pointer into a newly allocated i32 local (the base of a new frame
// slot), then increments the stack-pointer global by ty's byte width.
// The returned local index addresses the slot for the rest of the
// enclosing function body.
func (g *Generator) PushFrameLocal(seq *builder.Seq, ty clarity.TypeSignature) (localIdx uint32, size uint32, err error) {
	size, err = lower.ByteWidth(ty)
	if err != nil {
		return 0, 0, err
	}

	fr := g.curFrame()
	localIdx = fr.alloc(wasm.ValI32)

	seq.GlobalGet(g.spGlobalIdx).LocalSet(localIdx)
	seq.GlobalGet(g.spGlobalIdx).I32Const(int32(size)).Op(wasm.OpI32Add)
	seq.GlobalSet(g.spGlobalIdx)

	return localIdx, size, nil
}

// frameReset restores the stack pointer from a local saved at function
// entry, releasing every frame slot allocated since.
func (g *Generator) frameReset(seq *builder.Seq, savedLocalIdx uint32) {
	seq.LocalGet(savedLocalIdx)
	seq.GlobalSet(g.spGlobalIdx)
}

// writeInt128 pops two i64 values (the low word, then the high word) off
// the data stack and stores them into memory at the address pushAddr
// emits, at byte displacements dispHigh/dispLow. This is the only
// write-to-memory shape this repo implements (per SPEC_FULL.md §9,
// write-to-memory is defined only for 128-bit integers).
func (g *Generator) writeInt128(seq *builder.Seq, pushAddr func(*builder.Seq), dispHigh, dispLow uint64) {
	fr := g.curFrame()
	lowLocal := fr.alloc(wasm.ValI64)
	highLocal := fr.alloc(wasm.ValI64)

	seq.LocalSet(lowLocal)
	seq.LocalSet(highLocal)

	pushAddr(seq)
	seq.LocalGet(highLocal)
	seq.Store(wasm.OpI64Store, dispHigh, 3)

	pushAddr(seq)
	seq.LocalGet(lowLocal)
	seq.Store(wasm.OpI64Store, dispLow, 3)
}

// readInt128 pushes the 128-bit integer stored at the address pushAddr
// emits, high word then low word, matching LoweredSlots(int/uint).
func readInt128(seq *builder.Seq, pushAddr func(*builder.Seq), dispHigh, dispLow uint64) {
	pushAddr(seq)
	seq.Load(wasm.OpI64Load, dispHigh, 3)
	pushAddr(seq)
	seq.Load(wasm.OpI64Load, dispLow, 3)
}

func localAddr(localIdx uint32) func(*builder.Seq) {
	return func(s *builder.Seq) { s.LocalGet(localIdx) }
}

func constAddr(offset uint32) func(*builder.Seq) {
	return func(s *builder.Seq) { s.I32Const(int32(offset)) }
}
