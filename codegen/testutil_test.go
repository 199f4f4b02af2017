package codegen

import "github.com/hirosystems/clarity-wasm-go/clarity"

// fakeAnalysis is a minimal clarity.Analysis for tests: a fixed list of
// top-level expressions plus the three function-type registries, keyed by
// name. TypeOf trusts each Expr's own Type field, matching the generator's
// assumption that the checker has already annotated every node.
type fakeAnalysis struct {
	exprs      []clarity.Expr
	private    map[string]*clarity.FunctionType
	readOnly   map[string]*clarity.FunctionType
	public     map[string]*clarity.FunctionType
}

func (a *fakeAnalysis) Expressions() []clarity.Expr { return a.exprs }

func (a *fakeAnalysis) TypeOf(e clarity.Expr) (clarity.TypeSignature, bool) {
	return e.Type, true
}

func (a *fakeAnalysis) PrivateFunction(name string) (*clarity.FunctionType, bool) {
	ft, ok := a.private[name]
	return ft, ok
}

func (a *fakeAnalysis) ReadOnlyFunction(name string) (*clarity.FunctionType, bool) {
	ft, ok := a.readOnly[name]
	return ft, ok
}

func (a *fakeAnalysis) PublicFunction(name string) (*clarity.FunctionType, bool) {
	ft, ok := a.public[name]
	return ft, ok
}

// atom builds an atom-reference Expr.
func atom(name string, ty clarity.TypeSignature) clarity.Expr {
	return clarity.Expr{Kind: clarity.ExprAtom, Atom: name, Type: ty}
}

// lit builds a literal Expr.
func lit(v clarity.Value, ty clarity.TypeSignature) clarity.Expr {
	return clarity.Expr{Kind: clarity.ExprLiteral, Literal: v, Type: ty}
}

// call builds a list-form Expr with the given head and arguments.
func call(head string, ty clarity.TypeSignature, args ...clarity.Expr) clarity.Expr {
	return clarity.Expr{Kind: clarity.ExprList, Head: head, Args: args, Type: ty}
}

// rawAtom builds a bare identifier-name Expr used for the first argument
// of fold/var-get/var-set/define-data-var, which name a function or a
// persistent variable rather than a local binding.
func rawAtom(name string) clarity.Expr {
	return clarity.Expr{Kind: clarity.ExprAtom, Atom: name}
}
