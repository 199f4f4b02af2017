// Package clarity defines the typed AST and type-system contract the
// generator lowers. The lexer, parser, and static type checker that produce
// these values live outside this repo; this package only fixes the shape a
// checked contract must take to reach the generator.
package clarity

// TypeSignature is a Clarity type. Exactly one of the typed fields is
// meaningful, selected by Kind.
type TypeSignature struct {
	Sequence *SequenceSubtype
	Response *ResponseTypeData
	Kind     TypeKind
}

// TypeKind discriminates TypeSignature.
type TypeKind byte

const (
	// NoType is the type of expressions that never produce a value
	// (e.g. the unreachable arm of a response).
	NoType TypeKind = iota
	IntType
	UIntType
	BoolType
	SequenceTypeKind
	ResponseTypeKind
)

// SequenceSubtype is the payload for SequenceTypeKind.
type SequenceSubtype struct {
	List *ListTypeData
	// StringASCII is true for (string-ascii n), false for (string-utf8 n).
	StringASCII  bool
	IsString     bool
	MaxLength    uint32
}

// ListTypeData describes (list n entry-type).
type ListTypeData struct {
	EntryType   TypeSignature
	MaxLength   uint32
}

// ResponseTypeData describes (response ok-type err-type).
type ResponseTypeData struct {
	OkType  TypeSignature
	ErrType TypeSignature
}

// Int returns the int128 type.
func Int() TypeSignature { return TypeSignature{Kind: IntType} }

// UInt returns the uint128 type.
func UInt() TypeSignature { return TypeSignature{Kind: UIntType} }

// Bool returns the boolean type.
func Bool() TypeSignature { return TypeSignature{Kind: BoolType} }

// StringASCII returns (string-ascii maxLength).
func StringASCII(maxLength uint32) TypeSignature {
	return TypeSignature{Kind: SequenceTypeKind, Sequence: &SequenceSubtype{
		IsString: true, StringASCII: true, MaxLength: maxLength,
	}}
}

// StringUTF8 returns (string-utf8 maxLength).
func StringUTF8(maxLength uint32) TypeSignature {
	return TypeSignature{Kind: SequenceTypeKind, Sequence: &SequenceSubtype{
		IsString: true, StringASCII: false, MaxLength: maxLength,
	}}
}

// List returns (list maxLength entryType).
func List(maxLength uint32, entry TypeSignature) TypeSignature {
	return TypeSignature{Kind: SequenceTypeKind, Sequence: &SequenceSubtype{
		List: &ListTypeData{EntryType: entry, MaxLength: maxLength},
	}}
}

// Response returns (response okType errType).
func Response(ok, err TypeSignature) TypeSignature {
	return TypeSignature{Kind: ResponseTypeKind, Response: &ResponseTypeData{OkType: ok, ErrType: err}}
}

// IsInt128 reports whether ty is int or uint — the two 128-bit numeric types
// sharing a two-i64-slot lowering.
func (ty TypeSignature) IsInt128() bool {
	return ty.Kind == IntType || ty.Kind == UIntType
}

// IsSequence reports whether ty is a string or list sequence type.
func (ty TypeSignature) IsSequence() bool {
	return ty.Kind == SequenceTypeKind
}

// IsList reports whether ty is (list ...), as opposed to a string sequence.
func (ty TypeSignature) IsList() bool {
	return ty.Kind == SequenceTypeKind && ty.Sequence != nil && ty.Sequence.List != nil
}

// String renders ty for diagnostics; not a parser for the type grammar.
func (ty TypeSignature) String() string {
	switch ty.Kind {
	case NoType:
		return "NoType"
	case IntType:
		return "int"
	case UIntType:
		return "uint"
	case BoolType:
		return "bool"
	case SequenceTypeKind:
		if ty.Sequence.IsString {
			if ty.Sequence.StringASCII {
				return "string-ascii"
			}
			return "string-utf8"
		}
		return "list"
	case ResponseTypeKind:
		return "response"
	default:
		return "unknown"
	}
}
