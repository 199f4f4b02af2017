// Package codegen lowers a checked clarity.Analysis into a WebAssembly
// module: one exported .top-level function running all top-level forms,
// plus one exported function per public/read-only definition, linked
// against a standard-library module supplying 128-bit arithmetic, memcpy,
// and the persistent-state host imports.
package codegen

import (
	"go.uber.org/zap"

	"github.com/hirosystems/clarity-wasm-go/builder"
	"github.com/hirosystems/clarity-wasm-go/clarity"
	"github.com/hirosystems/clarity-wasm-go/errors"
	"github.com/hirosystems/clarity-wasm-go/log"
	"github.com/hirosystems/clarity-wasm-go/stdlib"
	"github.com/hirosystems/clarity-wasm-go/wasm"
)

// state is the generator's lifecycle state.
type state byte

const (
	stateFresh state = iota
	stateGenerating
	stateFinalized
	stateFailed
)

// TopLevelExport is the name the synthesized top-level function is
// exported under.
const TopLevelExport = ".top-level"

// Generator lowers a single checked contract into a WASM module. It is
// single-use: Generate consumes it and it must not be reused afterward.
type Generator struct {
	mod *wasm.Module

	spGlobalIdx uint32

	idents    map[string]uint32
	nextIdent uint32

	funcIndex map[string]uint32

	literalEnd uint32

	envStack   []map[string][]uint32
	frameStack []*frame

	state  state
	logger *zap.Logger
}

// Option configures a Generator at construction time.
type Option func(*Generator)

// WithLogger overrides the generator's logger. Defaults to log.Logger().
func WithLogger(l *zap.Logger) Option {
	return func(g *Generator) { g.logger = l }
}

// WithStandardLibrary overrides the prebuilt standard-library module the
// generator links against. Defaults to stdlib.Build().
func WithStandardLibrary(mod *wasm.Module) Option {
	return func(g *Generator) { g.mod = mod }
}

// NewGenerator constructs a Generator, resolving the stack-pointer global
// against the standard library. Failure to resolve it is a fatal
// configuration error, per the module-assembly component's contract.
func NewGenerator(opts ...Option) (*Generator, error) {
	g := &Generator{
		idents:    make(map[string]uint32),
		funcIndex: make(map[string]uint32),
		logger:    log.Logger(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.mod == nil {
		g.mod = stdlib.Build()
	}

	spIdx, ok := g.mod.GlobalExportByName("stack-pointer")
	if !ok {
		return nil, errors.Internal(errors.PhaseAssemble, "standard library does not export a \"stack-pointer\" global")
	}
	g.spGlobalIdx = spIdx

	g.state = stateFresh
	return g, nil
}

// Generate lowers analysis into a complete WASM module. It may be called
// at most once; the Generator is consumed on return.
func (g *Generator) Generate(analysis clarity.Analysis) (*wasm.Module, error) {
	if g.state != stateFresh {
		return nil, errors.Internal(errors.PhaseAssemble, "Generate called more than once on the same Generator")
	}
	g.state = stateGenerating

	mod, err := g.generate(analysis)
	if err != nil {
		g.state = stateFailed
		return nil, err
	}
	g.state = stateFinalized
	return mod, nil
}

func (g *Generator) generate(analysis clarity.Analysis) (*wasm.Module, error) {
	g.pushEnv(map[string][]uint32{})
	defer g.popEnv()

	topFrame := g.pushFrame(0)
	defer g.popFrame()

	topSeq := builder.New()

	exprs := analysis.Expressions()
	for _, e := range exprs {
		if err := g.lowerTopLevel(analysis, topSeq, e); err != nil {
			return nil, err
		}
	}

	topSeq.I32Const(int32(g.literalEnd))
	topSeq.GlobalSet(g.spGlobalIdx)

	funcIdx := uint32(g.mod.NumImportedFuncs() + len(g.mod.Funcs))
	typeIdx := g.mod.AddType(wasm.FuncType{})
	g.mod.Funcs = append(g.mod.Funcs, typeIdx)
	g.mod.Code = append(g.mod.Code, wasm.FuncBody{
		Locals: topFrame.localEntries,
		Code:   topSeq.Bytes(),
	})
	g.mod.Exports = append(g.mod.Exports, wasm.Export{Name: TopLevelExport, Kind: wasm.KindFunc, Idx: funcIdx})

	if err := g.mod.Validate(); err != nil {
		return nil, errors.Wrap(errors.PhaseAssemble, errors.KindInternal, err, "assembled module failed validation")
	}

	g.logger.Info("generated module",
		zap.Int("top_level_forms", len(exprs)),
		zap.Uint32("literal_bytes", g.literalEnd),
		zap.Int("functions", len(g.mod.Funcs)),
	)

	return g.mod, nil
}

// lowerTopLevel dispatches a top-level form: the define-* forms (handled
// specially, since they have no ordinary expression type) or an ordinary
// effectful expression evaluated for side effect with its value dropped.
func (g *Generator) lowerTopLevel(analysis clarity.Analysis, seq *builder.Seq, e clarity.Expr) error {
	if e.Kind == clarity.ExprList {
		switch e.Head {
		case clarity.DefineDataVar:
			return g.lowerDefineDataVar(seq, e)
		case clarity.DefinePrivate:
			_, err := g.lowerDefineFunction(analysis, e, funcKindPrivate)
			return err
		case clarity.DefineReadOnly:
			_, err := g.lowerDefineFunction(analysis, e, funcKindReadOnly)
			return err
		case clarity.DefinePublic:
			_, err := g.lowerDefineFunction(analysis, e, funcKindPublic)
			return err
		}
	}

	if err := g.lowerExpr(seq, e); err != nil {
		return err
	}
	g.dropSlots(seq, e.Type)
	return nil
}

func (g *Generator) newIdent(name string) uint32 {
	id := g.nextIdent
	g.nextIdent++
	g.idents[name] = id
	return id
}

// resolveHelper resolves a standard-library function by name: either an
// exported helper (the arithmetic and memcpy functions) or a host import
// (define_variable/get_variable/set_variable, which the standard library
// declares as imports, not exports). Failure is an internal error: the
// caller asked for a helper the type checker's output implies must exist.
func (g *Generator) resolveHelper(name string) (uint32, error) {
	if idx, ok := g.mod.FuncExportByName(name); ok {
		return idx, nil
	}
	if idx, ok := g.mod.ImportFuncByName(name); ok {
		return idx, nil
	}
	return 0, errors.Internal(errors.PhaseAssemble, "standard library does not provide helper "+name)
}
