package codegen

import (
	"go.uber.org/zap"

	"github.com/hirosystems/clarity-wasm-go/builder"
	"github.com/hirosystems/clarity-wasm-go/clarity"
	"github.com/hirosystems/clarity-wasm-go/errors"
	"github.com/hirosystems/clarity-wasm-go/lower"
	"github.com/hirosystems/clarity-wasm-go/wasm"
)

type funcKind byte

const (
	funcKindPrivate funcKind = iota
	funcKindReadOnly
	funcKindPublic
)

// lowerDefineFunction dispatches define-private / define-read-only /
// define-public to function lowering (§4.E) and exports the result when
// kind warrants it.
func (g *Generator) lowerDefineFunction(analysis clarity.Analysis, e clarity.Expr, kind funcKind) (uint32, error) {
	name := e.Args[0].Atom
	body := e.Args[1]

	sig, ok := g.lookupFunctionType(analysis, name, kind)
	if !ok {
		return 0, errors.Internal(errors.PhaseAssemble, "missing or non-fixed function type for "+name)
	}

	funcIdx, err := g.lowerFunctionLike(sig, body)
	if err != nil {
		return 0, err
	}
	g.funcIndex[name] = funcIdx

	if kind == funcKindPublic || kind == funcKindReadOnly {
		g.mod.Exports = append(g.mod.Exports, wasm.Export{Name: name, Kind: wasm.KindFunc, Idx: funcIdx})
	}

	g.logger.Debug("lowered function", zap.String("name", name))
	return funcIdx, nil
}

func (g *Generator) lookupFunctionType(analysis clarity.Analysis, name string, kind funcKind) (*clarity.FunctionType, bool) {
	switch kind {
	case funcKindPrivate:
		return analysis.PrivateFunction(name)
	case funcKindReadOnly:
		return analysis.ReadOnlyFunction(name)
	case funcKindPublic:
		return analysis.PublicFunction(name)
	default:
		return nil, false
	}
}

// lowerFunctionLike implements §4.E: build the parameter environment,
// save/restore the stack pointer across the body, save/restore the outer
// local environment, and register the function.
//
// Known limitation (SPEC_FULL.md §4.E / §9): early exits from the body are
// not implemented. The supported AST has no return/non-local-exit form
// (§3), so the postlude always runs on the body's only exit path; this
// repo does not need — and does not attempt — the labeled-block rework
// the design note describes for a language that did have early exits.
func (g *Generator) lowerFunctionLike(sig *clarity.FunctionType, body clarity.Expr) (uint32, error) {
	var params []wasm.ValType
	env := make(map[string][]uint32)
	var paramLocal uint32

	for _, arg := range sig.Args {
		slots := lower.LoweredSlots(arg.Type)
		indices := make([]uint32, len(slots))
		for i, slot := range slots {
			indices[i] = paramLocal
			params = append(params, slot)
			paramLocal++
		}
		env[arg.Name] = indices
	}

	returns := lower.LoweredSlots(sig.Returns)
	typeIdx := g.mod.AddType(wasm.FuncType{Params: params, Results: returns})

	fr := g.pushFrame(paramLocal)
	spSavedLocal := fr.alloc(wasm.ValI32)

	g.pushEnv(env)

	seq := builder.New()
	seq.GlobalGet(g.spGlobalIdx)
	seq.LocalSet(spSavedLocal)

	bodySeq := builder.New()
	if err := g.lowerExpr(bodySeq, body); err != nil {
		g.popEnv()
		g.popFrame()
		return 0, err
	}

	blockType := builder.BlockType(g.mod, returns)
	seq.Block(blockType, func(inner *builder.Seq) {
		inner.Append(bodySeq)
	})

	g.frameReset(seq, spSavedLocal)

	g.popEnv()

	funcIdx := uint32(g.mod.NumImportedFuncs() + len(g.mod.Funcs))
	g.mod.Funcs = append(g.mod.Funcs, typeIdx)
	g.mod.Code = append(g.mod.Code, wasm.FuncBody{
		Locals: fr.localEntries,
		Code:   seq.Bytes(),
	})
	g.popFrame()

	return funcIdx, nil
}
