// Package builder provides a small fluent instruction-sequence builder,
// the Go analogue of walrus's InstrSeqBuilder: a mutable cursor that
// appends WASM instructions, with helpers for the structured control-flow
// forms (block/loop/if) that need their bodies built before the
// instruction itself can be appended.
package builder

import "github.com/hirosystems/clarity-wasm-go/wasm"

// Seq accumulates a flat instruction sequence for one function body or
// control-flow arm.
type Seq struct {
	instrs []wasm.Instruction
}

// New returns an empty sequence.
func New() *Seq {
	return &Seq{}
}

// Instrs returns the accumulated instructions.
func (s *Seq) Instrs() []wasm.Instruction {
	return s.instrs
}

// Bytes encodes the accumulated instructions, including a trailing End.
func (s *Seq) Bytes() []byte {
	return wasm.EncodeInstructions(append(append([]wasm.Instruction{}, s.instrs...), wasm.Instruction{Opcode: wasm.OpEnd}))
}

func (s *Seq) push(instr wasm.Instruction) *Seq {
	s.instrs = append(s.instrs, instr)
	return s
}

// Op appends a bare opcode with no immediate (arithmetic/comparison ops,
// unreachable, drop, return, nop, ...).
func (s *Seq) Op(opcode byte) *Seq { return s.push(wasm.Instruction{Opcode: opcode}) }

func (s *Seq) Drop() *Seq   { return s.Op(wasm.OpDrop) }
func (s *Seq) Return() *Seq { return s.Op(wasm.OpReturn) }

func (s *Seq) I32Const(v int32) *Seq {
	return s.push(wasm.Instruction{Opcode: wasm.OpI32Const, Imm: wasm.I32Imm{Value: v}})
}

func (s *Seq) I64Const(v int64) *Seq {
	return s.push(wasm.Instruction{Opcode: wasm.OpI64Const, Imm: wasm.I64Imm{Value: v}})
}

func (s *Seq) LocalGet(idx uint32) *Seq {
	return s.push(wasm.Instruction{Opcode: wasm.OpLocalGet, Imm: wasm.LocalImm{LocalIdx: idx}})
}

func (s *Seq) LocalSet(idx uint32) *Seq {
	return s.push(wasm.Instruction{Opcode: wasm.OpLocalSet, Imm: wasm.LocalImm{LocalIdx: idx}})
}

func (s *Seq) LocalTee(idx uint32) *Seq {
	return s.push(wasm.Instruction{Opcode: wasm.OpLocalTee, Imm: wasm.LocalImm{LocalIdx: idx}})
}

func (s *Seq) GlobalGet(idx uint32) *Seq {
	return s.push(wasm.Instruction{Opcode: wasm.OpGlobalGet, Imm: wasm.GlobalImm{GlobalIdx: idx}})
}

func (s *Seq) GlobalSet(idx uint32) *Seq {
	return s.push(wasm.Instruction{Opcode: wasm.OpGlobalSet, Imm: wasm.GlobalImm{GlobalIdx: idx}})
}

func (s *Seq) Call(idx uint32) *Seq {
	return s.push(wasm.Instruction{Opcode: wasm.OpCall, Imm: wasm.CallImm{FuncIdx: idx}})
}

func (s *Seq) Br(label uint32) *Seq {
	return s.push(wasm.Instruction{Opcode: wasm.OpBr, Imm: wasm.BranchImm{LabelIdx: label}})
}

func (s *Seq) BrIf(label uint32) *Seq {
	return s.push(wasm.Instruction{Opcode: wasm.OpBrIf, Imm: wasm.BranchImm{LabelIdx: label}})
}

func (s *Seq) Load(opcode byte, offset uint64, align uint32) *Seq {
	return s.push(wasm.Instruction{Opcode: opcode, Imm: wasm.MemoryImm{Offset: offset, Align: align}})
}

func (s *Seq) Store(opcode byte, offset uint64, align uint32) *Seq {
	return s.push(wasm.Instruction{Opcode: opcode, Imm: wasm.MemoryImm{Offset: offset, Align: align}})
}

func (s *Seq) MemoryCopy() *Seq {
	return s.push(wasm.Instruction{Opcode: wasm.OpPrefixMisc, Imm: wasm.MiscImm{
		SubOpcode: wasm.MiscMemoryCopy, Operands: []uint32{0, 0},
	}})
}

// Block appends a structured block instruction whose body is built by fn
// against a fresh sequence, followed by End.
func (s *Seq) Block(blockType int32, fn func(*Seq)) *Seq {
	return s.structured(wasm.OpBlock, blockType, fn)
}

// Loop appends a structured loop instruction.
func (s *Seq) Loop(blockType int32, fn func(*Seq)) *Seq {
	return s.structured(wasm.OpLoop, blockType, fn)
}

func (s *Seq) structured(opcode byte, blockType int32, fn func(*Seq)) *Seq {
	body := New()
	fn(body)
	s.push(wasm.Instruction{Opcode: opcode, Imm: wasm.BlockImm{Type: blockType}})
	s.instrs = append(s.instrs, body.instrs...)
	s.Op(wasm.OpEnd)
	return s
}

// If appends a structured if instruction. els may be nil for an if with no
// else arm.
func (s *Seq) If(blockType int32, then func(*Seq), els func(*Seq)) *Seq {
	thenSeq := New()
	then(thenSeq)
	s.push(wasm.Instruction{Opcode: wasm.OpIf, Imm: wasm.BlockImm{Type: blockType}})
	s.instrs = append(s.instrs, thenSeq.instrs...)
	if els != nil {
		s.Op(wasm.OpElse)
		elseSeq := New()
		els(elseSeq)
		s.instrs = append(s.instrs, elseSeq.instrs...)
	}
	s.Op(wasm.OpEnd)
	return s
}

// BlockType returns the raw block-type encoding for a result signature:
// the single-value shorthand when len(results) <= 1, or a function type
// index (added to mod if not already present) for multi-value blocks.
func BlockType(mod *wasm.Module, results []wasm.ValType) int32 {
	switch len(results) {
	case 0:
		return wasm.BlockTypeVoid
	case 1:
		switch results[0] {
		case wasm.ValI32:
			return wasm.BlockTypeI32
		case wasm.ValI64:
			return wasm.BlockTypeI64
		case wasm.ValF32:
			return -3
		case wasm.ValF64:
			return -4
		}
	}
	idx := mod.AddType(wasm.FuncType{Results: results})
	return int32(idx)
}

// BlockTypeWithParams returns a block-type encoding for a control-flow
// construct that both consumes params and produces results, such as a fold
// loop whose accumulator sits on the stack across iterations. Block types
// with nonempty params always need a function-type index; there is no
// shorthand for them.
func BlockTypeWithParams(mod *wasm.Module, params, results []wasm.ValType) int32 {
	if len(params) == 0 {
		return BlockType(mod, results)
	}
	idx := mod.AddType(wasm.FuncType{Params: params, Results: results})
	return int32(idx)
}

// Append splices another sequence's instructions onto the end of s.
func (s *Seq) Append(other *Seq) *Seq {
	s.instrs = append(s.instrs, other.instrs...)
	return s
}
