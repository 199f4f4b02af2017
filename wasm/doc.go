// Package wasm is the WebAssembly binary substrate the rest of this repo
// assembles modules on top of: the Module struct, the instruction builder's
// opcode/block-type vocabulary, and the Encode/ParseModule/Validate trio
// codegen uses to produce, round-trip, and sanity-check a compiled contract
// before handing it back to the caller.
//
// codegen and stdlib build a Module in memory (types, funcs, code, globals,
// exports, host-function imports), call Validate to catch a malformed
// assembly before it ever reaches a runtime, and Encode it to the binary
// that gets instantiated. ParseModule exists for the same reason a compiler
// that writes object files usually also reads them back: codegen's own
// tests decode a just-encoded module to confirm Encode and ParseModule
// agree on what was produced.
//
// # Module Structure
//
//	module.Types      []FuncType    // Function signatures
//	module.Funcs      []uint32      // Type indices for functions
//	module.Tables     []TableType   // Table definitions
//	module.Memories   []MemoryType  // Memory definitions
//	module.Globals    []Global      // Global definitions
//	module.Imports    []Import      // Imported definitions
//	module.Exports    []Export      // Exported definitions
//	module.Code       []FuncBody    // Function bodies
//	module.Data       []DataSegment // Data segments
//	module.Elements   []Element     // Element segments
//
// # Encoding
//
//	encoded := module.Encode()
//
// # Parsing
//
//	module, err := wasm.ParseModule(data)
//
// # Validation
//
//	if err := module.Validate(); err != nil {
//	    log.Printf("invalid module: %v", err)
//	}
//
// Validation checks type/function/table/memory/global/tag index bounds,
// export name uniqueness, the start function's signature, and memory
// limits — the class of mistake a hand-assembled module can make that a
// WASM runtime would otherwise reject with a much less specific error.
//
// # Instructions
//
// The builder package emits instructions through this package's opcode
// constants and block-type encoding; decode-side instruction support
// exists for the same round-trip reason ParseModule does:
//
//	instructions, err := wasm.DecodeInstructions(code)
//	encoded := wasm.EncodeInstructions(instructions)
//
// # LEB128 Encoding
//
// The package provides the LEB128 utilities the binary format requires
// for all of its variable-length integers:
//
//	n, err := wasm.ReadLEB128u(r)  // Unsigned; r is an io.ByteReader
//	n, err := wasm.ReadLEB128s(r)  // Signed
package wasm
