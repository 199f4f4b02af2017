package codegen

import (
	"testing"

	"github.com/hirosystems/clarity-wasm-go/clarity"
	"github.com/hirosystems/clarity-wasm-go/wasm"
)

func mustGenerator(t *testing.T) *Generator {
	t.Helper()
	g, err := NewGenerator()
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}
	return g
}

func TestNewGenerator_ResolvesStackPointer(t *testing.T) {
	g := mustGenerator(t)
	if _, ok := g.mod.GlobalExportByName("stack-pointer"); !ok {
		t.Fatal("expected stack-pointer export to resolve")
	}
}

func TestGenerate_EmptyContractExportsTopLevel(t *testing.T) {
	g := mustGenerator(t)
	mod, err := g.Generate(&fakeAnalysis{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	idx, ok := mod.FuncExportByName(TopLevelExport)
	if !ok {
		t.Fatalf("expected %s export", TopLevelExport)
	}
	ft := mod.GetFuncType(idx)
	if len(ft.Params) != 0 || len(ft.Results) != 0 {
		t.Fatalf("expected .top-level to be []->[], got %+v", ft)
	}
}

func TestGenerate_SecondCallFails(t *testing.T) {
	g := mustGenerator(t)
	if _, err := g.Generate(&fakeAnalysis{}); err != nil {
		t.Fatalf("first Generate: %v", err)
	}
	if _, err := g.Generate(&fakeAnalysis{}); err == nil {
		t.Fatal("expected second Generate call to fail")
	}
}

func TestGenerate_VariadicArithmeticEmitsTopLevelBody(t *testing.T) {
	g := mustGenerator(t)
	one := lit(clarity.IntVal(1), clarity.Int())
	two := lit(clarity.IntVal(2), clarity.Int())
	three := lit(clarity.IntVal(3), clarity.Int())
	four := lit(clarity.IntVal(4), clarity.Int())
	sum := call("+", clarity.Int(), one, two, three, four)

	mod, err := g.Generate(&fakeAnalysis{exprs: []clarity.Expr{sum}})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	idx, _ := mod.FuncExportByName(TopLevelExport)
	body := mod.Code[idx-uint32(mod.NumImportedFuncs())]
	if len(body.Code) == 0 {
		t.Fatal("expected non-empty top-level body")
	}
}

func TestGenerate_DefinePublicExportsFunction(t *testing.T) {
	g := mustGenerator(t)
	a := atom("a", clarity.Int())
	b := atom("b", clarity.Int())
	body := call("*", clarity.Int(), a, b)
	def := call(clarity.DefinePublic, clarity.TypeSignature{}, rawAtom("f"), body)

	analysis := &fakeAnalysis{
		exprs: []clarity.Expr{def},
		public: map[string]*clarity.FunctionType{
			"f": {
				Args:    []clarity.FunctionArg{{Name: "a", Type: clarity.Int()}, {Name: "b", Type: clarity.Int()}},
				Returns: clarity.Int(),
			},
		},
	}

	mod, err := g.Generate(analysis)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	idx, ok := mod.FuncExportByName("f")
	if !ok {
		t.Fatal("expected export \"f\"")
	}
	ft := mod.GetFuncType(idx)
	if len(ft.Params) != 4 || len(ft.Results) != 2 {
		t.Fatalf("expected f: [i64 i64 i64 i64]->[i64 i64], got %+v", ft)
	}
}

func TestGenerate_DefinePrivateNotExported(t *testing.T) {
	g := mustGenerator(t)
	body := lit(clarity.IntVal(1), clarity.Int())
	def := call(clarity.DefinePrivate, clarity.TypeSignature{}, rawAtom("helper"), body)

	analysis := &fakeAnalysis{
		exprs: []clarity.Expr{def},
		private: map[string]*clarity.FunctionType{
			"helper": {Returns: clarity.Int()},
		},
	}

	mod, err := g.Generate(analysis)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if _, ok := mod.FuncExportByName("helper"); ok {
		t.Fatal("private function must not be exported")
	}
}

func TestGenerate_DefineDataVarRegistersIdentifier(t *testing.T) {
	g := mustGenerator(t)
	initial := lit(clarity.UIntVal(100), clarity.UInt())
	def := call(clarity.DefineDataVar, clarity.UInt(), rawAtom("x"), initial)

	_, err := g.Generate(&fakeAnalysis{exprs: []clarity.Expr{def}})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if id, ok := g.idents["x"]; !ok || id != 0 {
		t.Fatalf("expected identifier 0 assigned to x, got %v %v", id, ok)
	}
}

func TestGenerate_UnboundAtomIsNotImplemented(t *testing.T) {
	g := mustGenerator(t)
	e := atom("unbound", clarity.Int())
	_, err := g.Generate(&fakeAnalysis{exprs: []clarity.Expr{e}})
	if err == nil {
		t.Fatal("expected an error")
	}
	if !IsNotImplemented(err) {
		t.Fatalf("expected NotImplemented, got %v", err)
	}
}

func TestGenerate_IfProducesStructuredControlFlow(t *testing.T) {
	g := mustGenerator(t)
	cond := lit(clarity.BoolVal(true), clarity.Bool())
	then := lit(clarity.IntVal(42), clarity.Int())
	els := lit(clarity.IntVal(-1), clarity.Int())
	ifExpr := call(string(nativeName(clarity.If)), clarity.Int(), cond, then, els)

	mod, err := g.Generate(&fakeAnalysis{exprs: []clarity.Expr{ifExpr}})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	idx, _ := mod.FuncExportByName(TopLevelExport)
	body := mod.Code[idx-uint32(mod.NumImportedFuncs())]
	foundIf := false
	for _, b := range body.Code {
		if b == wasm.OpIf {
			foundIf = true
		}
	}
	if !foundIf {
		t.Fatal("expected an OpIf byte in the generated top-level body")
	}
}

// nativeName is the inverse of clarity.LookupNative, used only to keep
// this test's literal head strings in sync with package clarity without
// hardcoding "if" twice.
func nativeName(nf clarity.NativeFunctions) string {
	names := map[clarity.NativeFunctions]string{
		clarity.If: "if", clarity.Begin: "begin", clarity.Concat: "concat",
		clarity.ListCons: "list", clarity.Fold: "fold",
		clarity.VarGet: "var-get", clarity.VarSet: "var-set",
		clarity.Ok: "ok", clarity.ErrF: "err",
	}
	return names[nf]
}
