package clarity

import "math/big"

// Value is a literal Clarity value, as it appears embedded in the typed AST.
// Exactly one field is meaningful, selected by Kind.
type Value struct {
	Int    *big.Int
	String string
	Kind   ValueKind
	Bool   bool
}

// ValueKind discriminates Value.
type ValueKind byte

const (
	IntValue ValueKind = iota
	UIntValue
	BoolValue
	StringValue
)

// IntVal wraps an int128 literal.
func IntVal(v int64) Value { return Value{Kind: IntValue, Int: big.NewInt(v)} }

// UIntVal wraps a uint128 literal.
func UIntVal(v uint64) Value { return Value{Kind: UIntValue, Int: new(big.Int).SetUint64(v)} }

// BoolVal wraps a boolean literal.
func BoolVal(v bool) Value { return Value{Kind: BoolValue, Bool: v} }

// StringVal wraps a string literal (ASCII or UTF8, the AST node's type
// carries which).
func StringVal(v string) Value { return Value{Kind: StringValue, String: v} }
