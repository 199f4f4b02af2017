package codegen

import (
	"math/big"

	"github.com/hirosystems/clarity-wasm-go/builder"
	"github.com/hirosystems/clarity-wasm-go/clarity"
	"github.com/hirosystems/clarity-wasm-go/errors"
)

var (
	mask64 = new(big.Int).SetUint64(^uint64(0))
)

// lowerLiteral pushes a literal's lowered representation: int/uint push
// (high, low) 64-bit halves, bool pushes a single i32, and string literals
// are interned and pushed as (offset, length).
func (g *Generator) lowerLiteral(seq *builder.Seq, e clarity.Expr) error {
	v := e.Literal
	switch v.Kind {
	case clarity.IntValue, clarity.UIntValue:
		high, low := split128(v.Int)
		seq.I64Const(high)
		seq.I64Const(low)
		return nil
	case clarity.BoolValue:
		if v.Bool {
			seq.I32Const(1)
		} else {
			seq.I32Const(0)
		}
		return nil
	case clarity.StringValue:
		offset, length := g.InternBytes([]byte(v.String))
		seq.I32Const(int32(offset))
		seq.I32Const(int32(length))
		return nil
	default:
		return errors.NotImplemented(errors.PhaseAssemble, nil, "literal kind")
	}
}

// split128 splits a (possibly negative, two's-complement 128-bit) integer
// into its high and low 64-bit halves, matching the literal-lowering rule
// "push (i >> 64) and (i & mask) as two 64-bit constants (high, then low)".
func split128(v *big.Int) (high, low int64) {
	u := new(big.Int).Set(v)
	if u.Sign() < 0 {
		twoPow128 := new(big.Int).Lsh(big.NewInt(1), 128)
		u.Add(u, twoPow128)
	}
	lowBig := new(big.Int).And(u, mask64)
	highBig := new(big.Int).Rsh(u, 64)
	highBig.And(highBig, mask64)
	return int64(highBig.Uint64()), int64(lowBig.Uint64())
}
