package wasm_test

import (
	"testing"

	"github.com/hirosystems/clarity-wasm-go/stdlib"
	"github.com/hirosystems/clarity-wasm-go/wasm"
)

func TestParseMinimalModule(t *testing.T) {
	data := []byte{0x00, 0x61, 0x73, 0x6D, 0x01, 0x00, 0x00, 0x00}
	m, err := wasm.ParseModule(data)
	if err != nil {
		t.Fatalf("ParseModule: %v", err)
	}
	if m == nil {
		t.Fatal("expected non-nil module")
	}
}

func TestParseInvalidMagic(t *testing.T) {
	data := []byte{0x00, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00}
	_, err := wasm.ParseModule(data)
	if err == nil {
		t.Error("expected error for invalid magic")
	}
}

func TestParseInvalidVersion(t *testing.T) {
	data := []byte{0x00, 0x61, 0x73, 0x6D, 0x02, 0x00, 0x00, 0x00}
	_, err := wasm.ParseModule(data)
	if err == nil {
		t.Error("expected error for invalid version")
	}
}

func TestParseTruncatedHeader(t *testing.T) {
	data := []byte{0x00, 0x61, 0x73}
	_, err := wasm.ParseModule(data)
	if err == nil {
		t.Error("expected error for truncated header")
	}
}

func TestParseSectionOrdering(t *testing.T) {
	m := &wasm.Module{
		Types:    []wasm.FuncType{{Params: nil, Results: nil}},
		Funcs:    []uint32{0},
		Memories: []wasm.MemoryType{{Limits: wasm.Limits{Min: 1}}},
	}
	data := m.Encode()

	parsed, err := wasm.ParseModule(data)
	if err != nil {
		t.Fatalf("ParseModule: %v", err)
	}

	if len(parsed.Types) != 1 {
		t.Errorf("expected 1 type, got %d", len(parsed.Types))
	}
	if len(parsed.Funcs) != 1 {
		t.Errorf("expected 1 func, got %d", len(parsed.Funcs))
	}
	if len(parsed.Memories) != 1 {
		t.Errorf("expected 1 memory, got %d", len(parsed.Memories))
	}
}

func TestParseDataCountSection(t *testing.T) {
	count := uint32(2)
	m := &wasm.Module{
		Memories:  []wasm.MemoryType{{Limits: wasm.Limits{Min: 1}}},
		DataCount: &count,
		Data: []wasm.DataSegment{
			{Flags: 1, Init: []byte{1, 2, 3}},
			{Flags: 1, Init: []byte{4, 5, 6}},
		},
	}

	data := m.Encode()
	parsed, err := wasm.ParseModule(data)
	if err != nil {
		t.Fatalf("ParseModule: %v", err)
	}

	if parsed.DataCount == nil {
		t.Fatal("DataCount should not be nil")
	}
	if *parsed.DataCount != 2 {
		t.Errorf("expected DataCount=2, got %d", *parsed.DataCount)
	}
	if len(parsed.Data) != 2 {
		t.Errorf("expected 2 data segments, got %d", len(parsed.Data))
	}
}

func TestParseCustomSection(t *testing.T) {
	m := &wasm.Module{
		CustomSections: []wasm.CustomSection{
			{Name: "test", Data: []byte{1, 2, 3}},
		},
	}

	data := m.Encode()
	parsed, err := wasm.ParseModule(data)
	if err != nil {
		t.Fatalf("ParseModule: %v", err)
	}

	if len(parsed.CustomSections) != 1 {
		t.Fatalf("expected 1 custom section, got %d", len(parsed.CustomSections))
	}
	if parsed.CustomSections[0].Name != "test" {
		t.Errorf("expected name 'test', got %q", parsed.CustomSections[0].Name)
	}
}

func TestParseImports(t *testing.T) {
	m := &wasm.Module{
		Types: []wasm.FuncType{{Params: []wasm.ValType{wasm.ValI32}, Results: []wasm.ValType{wasm.ValI32}}},
		Imports: []wasm.Import{
			{Module: "env", Name: "add", Desc: wasm.ImportDesc{Kind: wasm.KindFunc, TypeIdx: 0}},
			{Module: "env", Name: "mem", Desc: wasm.ImportDesc{Kind: wasm.KindMemory, Memory: &wasm.MemoryType{Limits: wasm.Limits{Min: 1}}}},
		},
	}

	data := m.Encode()
	parsed, err := wasm.ParseModule(data)
	if err != nil {
		t.Fatalf("ParseModule: %v", err)
	}

	if len(parsed.Imports) != 2 {
		t.Fatalf("expected 2 imports, got %d", len(parsed.Imports))
	}
	if parsed.Imports[0].Module != "env" || parsed.Imports[0].Name != "add" {
		t.Errorf("unexpected import[0]: %+v", parsed.Imports[0])
	}
}

func TestParseExports(t *testing.T) {
	m := &wasm.Module{
		Types: []wasm.FuncType{{Params: nil, Results: nil}},
		Funcs: []uint32{0},
		Exports: []wasm.Export{
			{Name: "main", Kind: wasm.KindFunc, Idx: 0},
		},
	}

	data := m.Encode()
	parsed, err := wasm.ParseModule(data)
	if err != nil {
		t.Fatalf("ParseModule: %v", err)
	}

	if len(parsed.Exports) != 1 {
		t.Fatalf("expected 1 export, got %d", len(parsed.Exports))
	}
	if parsed.Exports[0].Name != "main" {
		t.Errorf("expected export name 'main', got %q", parsed.Exports[0].Name)
	}
}

func TestParseGlobals(t *testing.T) {
	m := &wasm.Module{
		Globals: []wasm.Global{
			{Type: wasm.GlobalType{ValType: wasm.ValI32, Mutable: true}, Init: []byte{wasm.OpI32Const, 0x2a, wasm.OpEnd}},
		},
	}

	data := m.Encode()
	parsed, err := wasm.ParseModule(data)
	if err != nil {
		t.Fatalf("ParseModule: %v", err)
	}

	if len(parsed.Globals) != 1 {
		t.Fatalf("expected 1 global, got %d", len(parsed.Globals))
	}
	if parsed.Globals[0].Type.ValType != wasm.ValI32 {
		t.Errorf("expected i32, got %v", parsed.Globals[0].Type.ValType)
	}
	if !parsed.Globals[0].Type.Mutable {
		t.Error("expected mutable global")
	}
}

func TestParseStartSection(t *testing.T) {
	startIdx := uint32(0)
	m := &wasm.Module{
		Types: []wasm.FuncType{{Params: nil, Results: nil}},
		Funcs: []uint32{0},
		Code:  []wasm.FuncBody{{Locals: nil, Code: []byte{wasm.OpEnd}}},
		Start: &startIdx,
	}

	data := m.Encode()
	parsed, err := wasm.ParseModule(data)
	if err != nil {
		t.Fatalf("ParseModule: %v", err)
	}

	if parsed.Start == nil {
		t.Fatal("expected start function")
	}
	if *parsed.Start != 0 {
		t.Errorf("expected start=0, got %d", *parsed.Start)
	}
}

func TestParseTables(t *testing.T) {
	m := &wasm.Module{
		Tables: []wasm.TableType{
			{ElemType: byte(wasm.ValFuncRef), Limits: wasm.Limits{Min: 10}},
		},
	}

	data := m.Encode()
	parsed, err := wasm.ParseModule(data)
	if err != nil {
		t.Fatalf("ParseModule: %v", err)
	}

	if len(parsed.Tables) != 1 {
		t.Fatalf("expected 1 table, got %d", len(parsed.Tables))
	}
	if parsed.Tables[0].Limits.Min != 10 {
		t.Errorf("expected min=10, got %d", parsed.Tables[0].Limits.Min)
	}
}

func TestParseElements(t *testing.T) {
	m := &wasm.Module{
		Types:  []wasm.FuncType{{Params: nil, Results: nil}},
		Funcs:  []uint32{0},
		Tables: []wasm.TableType{{ElemType: byte(wasm.ValFuncRef), Limits: wasm.Limits{Min: 1}}},
		Elements: []wasm.Element{
			{Flags: 0, Offset: []byte{wasm.OpI32Const, 0, wasm.OpEnd}, FuncIdxs: []uint32{0}},
		},
	}

	data := m.Encode()
	parsed, err := wasm.ParseModule(data)
	if err != nil {
		t.Fatalf("ParseModule: %v", err)
	}

	if len(parsed.Elements) != 1 {
		t.Fatalf("expected 1 element, got %d", len(parsed.Elements))
	}
}

func TestParseMemoryLimits(t *testing.T) {
	max := uint64(10)
	m := &wasm.Module{
		Memories: []wasm.MemoryType{
			{Limits: wasm.Limits{Min: 1, Max: &max}},
		},
	}

	data := m.Encode()
	parsed, err := wasm.ParseModule(data)
	if err != nil {
		t.Fatalf("ParseModule: %v", err)
	}

	if len(parsed.Memories) != 1 {
		t.Fatalf("expected 1 memory, got %d", len(parsed.Memories))
	}
	if parsed.Memories[0].Limits.Min != 1 {
		t.Errorf("expected min=1, got %d", parsed.Memories[0].Limits.Min)
	}
	if parsed.Memories[0].Limits.Max == nil || *parsed.Memories[0].Limits.Max != 10 {
		t.Errorf("expected max=10")
	}
}

func TestParseSectionOutOfOrder(t *testing.T) {
	// Memory section (5) followed by Function section (3) - invalid order.
	data := []byte{
		0x00, 0x61, 0x73, 0x6D, // magic
		0x01, 0x00, 0x00, 0x00, // version
		0x05, 0x03, 0x01, 0x00, 0x01, // memory section: 1 memory, no max, 1 page
		0x03, 0x02, 0x01, 0x00, // function section: 1 function with type 0
	}

	_, err := wasm.ParseModule(data)
	if err == nil {
		t.Error("expected error for out-of-order sections")
	}
}

func TestParseTruncatedSectionSize(t *testing.T) {
	data := []byte{
		0x00, 0x61, 0x73, 0x6D,
		0x01, 0x00, 0x00, 0x00,
		0x01, // type section ID, no size
	}

	_, err := wasm.ParseModule(data)
	if err == nil {
		t.Error("expected error for truncated section size")
	}
}

func TestParseTruncatedSectionData(t *testing.T) {
	// Section claims 100 bytes but only has 2.
	data := []byte{
		0x00, 0x61, 0x73, 0x6D,
		0x01, 0x00, 0x00, 0x00,
		0x01, 0x64, // type section, size=100
		0x01, 0x60, // only 2 bytes
	}

	_, err := wasm.ParseModule(data)
	if err == nil {
		t.Error("expected error for truncated section data")
	}
}

func TestParseInvalidTypeForm(t *testing.T) {
	// Type section with invalid type form (not 0x60).
	data := []byte{
		0x00, 0x61, 0x73, 0x6D,
		0x01, 0x00, 0x00, 0x00,
		0x01, 0x04, // type section, size=4
		0x01,       // 1 type
		0x99,       // invalid form
		0x00, 0x00, // params/results
	}

	_, err := wasm.ParseModule(data)
	if err == nil {
		t.Error("expected error for invalid type form")
	}
}

func TestParseEmptyModule(t *testing.T) {
	data := []byte{
		0x00, 0x61, 0x73, 0x6D,
		0x01, 0x00, 0x00, 0x00,
	}

	m, err := wasm.ParseModule(data)
	if err != nil {
		t.Fatalf("ParseModule: %v", err)
	}
	if m == nil {
		t.Fatal("expected non-nil module")
	}
}

func TestParseMultipleCustomSections(t *testing.T) {
	m := &wasm.Module{
		CustomSections: []wasm.CustomSection{
			{Name: "name", Data: []byte{1, 2, 3}},
			{Name: "debug", Data: []byte{4, 5, 6}},
			{Name: "sourcemap", Data: []byte{7, 8, 9}},
		},
	}

	data := m.Encode()
	parsed, err := wasm.ParseModule(data)
	if err != nil {
		t.Fatalf("ParseModule: %v", err)
	}

	if len(parsed.CustomSections) != 3 {
		t.Fatalf("expected 3 custom sections, got %d", len(parsed.CustomSections))
	}
}

func TestParseCodeWithLocals(t *testing.T) {
	m := &wasm.Module{
		Types: []wasm.FuncType{{Params: nil, Results: []wasm.ValType{wasm.ValI32}}},
		Funcs: []uint32{0},
		Code: []wasm.FuncBody{
			{
				Locals: []wasm.LocalEntry{
					{Count: 3, ValType: wasm.ValI32},
					{Count: 2, ValType: wasm.ValI64},
					{Count: 1, ValType: wasm.ValF32},
				},
				Code: []byte{wasm.OpI32Const, 42, wasm.OpEnd},
			},
		},
	}

	data := m.Encode()
	parsed, err := wasm.ParseModule(data)
	if err != nil {
		t.Fatalf("ParseModule: %v", err)
	}

	if len(parsed.Code) != 1 {
		t.Fatalf("expected 1 code body, got %d", len(parsed.Code))
	}
	if len(parsed.Code[0].Locals) != 3 {
		t.Errorf("expected 3 local entries, got %d", len(parsed.Code[0].Locals))
	}
	total := uint32(0)
	for _, l := range parsed.Code[0].Locals {
		total += l.Count
	}
	if total != 6 {
		t.Errorf("expected 6 total locals, got %d", total)
	}
}

// TestParseModuleRoundTripsStandardLibrary decodes the actual standard
// library module codegen links every contract against, the same round trip
// codegen's own end-to-end tests exercise per generated contract.
func TestParseModuleRoundTripsStandardLibrary(t *testing.T) {
	mod := stdlib.Build()
	data := mod.Encode()

	parsed, err := wasm.ParseModule(data)
	if err != nil {
		t.Fatalf("ParseModule: %v", err)
	}
	if err := parsed.Validate(); err != nil {
		t.Fatalf("decoded standard library failed validation: %v", err)
	}

	if len(parsed.Exports) != len(mod.Exports) {
		t.Fatalf("decoded module has %d exports, want %d", len(parsed.Exports), len(mod.Exports))
	}
	if got := parsed.NumImportedFuncs(); got != mod.NumImportedFuncs() {
		t.Fatalf("decoded module has %d imported funcs, want %d", got, mod.NumImportedFuncs())
	}
	if _, ok := parsed.FuncExportByName("add-int"); !ok {
		t.Error("decoded module lost the add-int export")
	}
	if _, ok := parsed.ImportFuncByName("get_variable"); !ok {
		t.Error("decoded module lost the get_variable import")
	}
}

func TestValidateCatchesDanglingExport(t *testing.T) {
	m := &wasm.Module{
		Exports: []wasm.Export{{Name: "missing", Kind: wasm.KindFunc, Idx: 0}},
	}
	if err := m.Validate(); err == nil {
		t.Error("expected Validate to reject an export referencing a nonexistent function")
	}
}

func TestValidateCatchesDuplicateExportName(t *testing.T) {
	m := &wasm.Module{
		Types: []wasm.FuncType{{}},
		Funcs: []uint32{0, 0},
		Exports: []wasm.Export{
			{Name: "run", Kind: wasm.KindFunc, Idx: 0},
			{Name: "run", Kind: wasm.KindFunc, Idx: 1},
		},
	}
	if err := m.Validate(); err == nil {
		t.Error("expected Validate to reject duplicate export names")
	}
}
