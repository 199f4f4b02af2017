// Package lower implements type lowering: mapping a Clarity TypeSignature
// to the WASM value-type slots a value of that type occupies on the stack
// or in a local, and to the byte width it occupies in linear memory.
package lower

import (
	"github.com/hirosystems/clarity-wasm-go/clarity"
	"github.com/hirosystems/clarity-wasm-go/errors"
	"github.com/hirosystems/clarity-wasm-go/wasm"
)

// LoweredSlots returns the sequence of WASM value types a value of ty
// occupies, in stack/local order. int and uint are two i64 slots
// (high/low), matching the 128-bit-via-two-i64 representation used
// throughout this generator. A response is the flattened concatenation of
// an i32 discriminant followed by both arms' slots, since both arms must be
// materialized regardless of which one is live (see the module design
// notes on response lowering). A sequence (string or list) is an
// (offset, length) pair of i32s into linear memory. bool is a single i32.
func LoweredSlots(ty clarity.TypeSignature) []wasm.ValType {
	switch ty.Kind {
	case clarity.NoType:
		// The original generator this was adapted from lowers NoType to a
		// single i32 with an open question about whether it should be
		// empty instead. This repo resolves that question as empty: a
		// NoType expression (a statement-form effect, e.g. var-set)
		// produces no value-stack slots, so sequence-form drop logic
		// never over- or under-consumes its neighbors.
		return nil
	case clarity.IntType, clarity.UIntType:
		return []wasm.ValType{wasm.ValI64, wasm.ValI64}
	case clarity.BoolType:
		return []wasm.ValType{wasm.ValI32}
	case clarity.SequenceTypeKind:
		return []wasm.ValType{wasm.ValI32, wasm.ValI32}
	case clarity.ResponseTypeKind:
		slots := []wasm.ValType{wasm.ValI32}
		slots = append(slots, LoweredSlots(ty.Response.OkType)...)
		slots = append(slots, LoweredSlots(ty.Response.ErrType)...)
		return slots
	default:
		return nil
	}
}

// ByteWidth returns the number of bytes a value of ty occupies when copied
// into linear memory. Only int, uint, and fixed-length sequences have a
// defined byte width in this repo's supported operations; bool and
// response values are never written to memory directly, matching the
// original generator's scope (it only ever calls get_type_size for
// int/uint/string/list).
func ByteWidth(ty clarity.TypeSignature) (uint32, error) {
	switch ty.Kind {
	case clarity.IntType, clarity.UIntType:
		return 16, nil
	case clarity.SequenceTypeKind:
		if ty.Sequence.IsString {
			return ty.Sequence.MaxLength, nil
		}
		entryWidth, err := ByteWidth(ty.Sequence.List.EntryType)
		if err != nil {
			return 0, err
		}
		return ty.Sequence.List.MaxLength * entryWidth, nil
	default:
		return 0, errors.Unsupported(errors.PhaseLower, nil, "byte width of "+ty.String())
	}
}
