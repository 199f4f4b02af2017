package codegen

import "github.com/hirosystems/clarity-wasm-go/wasm"

// frame accumulates the local-variable declarations for one function body
// (or the synthesized top-level function), in the order emitted code
// refers to them by index.
type frame struct {
	localEntries []wasm.LocalEntry
	next         uint32
}

// alloc declares one new local of the given type and returns its index.
func (fr *frame) alloc(ty wasm.ValType) uint32 {
	idx := fr.next
	fr.next++
	fr.localEntries = append(fr.localEntries, wasm.LocalEntry{Count: 1, ValType: ty})
	return idx
}

func (g *Generator) pushFrame(numParams uint32) *frame {
	fr := &frame{next: numParams}
	g.frameStack = append(g.frameStack, fr)
	return fr
}

func (g *Generator) popFrame() {
	g.frameStack = g.frameStack[:len(g.frameStack)-1]
}

func (g *Generator) curFrame() *frame {
	return g.frameStack[len(g.frameStack)-1]
}

func (g *Generator) pushEnv(env map[string][]uint32) {
	g.envStack = append(g.envStack, env)
}

func (g *Generator) popEnv() {
	g.envStack = g.envStack[:len(g.envStack)-1]
}

func (g *Generator) curEnv() map[string][]uint32 {
	return g.envStack[len(g.envStack)-1]
}
