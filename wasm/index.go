package wasm

// FuncExportByName returns the function index of the export named name,
// if one exists and it is a function export.
func (m *Module) FuncExportByName(name string) (uint32, bool) {
	for _, exp := range m.Exports {
		if exp.Kind == KindFunc && exp.Name == name {
			return exp.Idx, true
		}
	}
	return 0, false
}

// GlobalExportByName returns the global index of the export named name, if
// one exists and it is a global export.
func (m *Module) GlobalExportByName(name string) (uint32, bool) {
	for _, exp := range m.Exports {
		if exp.Kind == KindGlobal && exp.Name == name {
			return exp.Idx, true
		}
	}
	return 0, false
}

// ImportFuncByName returns the function index assigned to the imported
// function named name, searching across all import modules. Imported
// functions occupy the low end of the function index space, in import
// declaration order, ahead of every locally defined function.
func (m *Module) ImportFuncByName(name string) (uint32, bool) {
	var idx uint32
	for _, imp := range m.Imports {
		if imp.Desc.Kind != KindFunc {
			continue
		}
		if imp.Name == name {
			return idx, true
		}
		idx++
	}
	return 0, false
}
