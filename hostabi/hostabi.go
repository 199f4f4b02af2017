// Package hostabi provides a minimal wazero-hosted implementation of the
// three persistent-state functions generated code calls by import:
// define_variable, get_variable, and set_variable. It exists for this
// repo's own executable round-trip tests (codegen/e2e_test.go); it is not
// a production host runtime (the real one lives outside this repo's
// scope, per spec.md's out-of-scope item iii).
package hostabi

import (
	"context"
	"fmt"
	"sync"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
)

// Store backs the three host functions with an in-memory table keyed by
// the generator's persistent-state identifier.
type Store struct {
	mu    sync.Mutex
	byID  map[uint32][]byte
	names map[uint32]string
}

// NewStore returns an empty Store.
func NewStore() *Store {
	return &Store{
		byID:  make(map[uint32][]byte),
		names: make(map[uint32]string),
	}
}

// Get returns the raw bytes currently stored for id, if any.
func (s *Store) Get(id uint32) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.byID[id]
	return v, ok
}

// Name returns the variable name registered for id, if any.
func (s *Store) Name(id uint32) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.names[id]
	return n, ok
}

// Instantiate registers the "clarity-host" host module backing s against
// r, for a guest module to import. The host module name must match the import
// module name the generated code expects ("clarity-host", per package
// stdlib).
func Instantiate(ctx context.Context, r wazero.Runtime, s *Store) error {
	_, err := r.NewHostModuleBuilder("clarity-host").
		NewFunctionBuilder().WithFunc(s.defineVariable).Export("define_variable").
		NewFunctionBuilder().WithFunc(s.getVariable).Export("get_variable").
		NewFunctionBuilder().WithFunc(s.setVariable).Export("set_variable").
		Instantiate(ctx)
	return err
}

func (s *Store) defineVariable(ctx context.Context, mod api.Module, id, nameOffset, nameLength, valueOffset, valueSize uint32) {
	name, ok := mod.Memory().Read(nameOffset, nameLength)
	if !ok {
		panic(fmt.Sprintf("hostabi: define_variable: name out of range (%d, %d)", nameOffset, nameLength))
	}
	value, ok := mod.Memory().Read(valueOffset, valueSize)
	if !ok {
		panic(fmt.Sprintf("hostabi: define_variable: value out of range (%d, %d)", valueOffset, valueSize))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.names[id] = string(name)
	stored := make([]byte, len(value))
	copy(stored, value)
	s.byID[id] = stored
}

func (s *Store) getVariable(ctx context.Context, mod api.Module, id, bufferOffset, bufferSize uint32) {
	s.mu.Lock()
	value, ok := s.byID[id]
	s.mu.Unlock()
	if !ok {
		panic(fmt.Sprintf("hostabi: get_variable: unknown id %d", id))
	}
	if uint32(len(value)) > bufferSize {
		panic(fmt.Sprintf("hostabi: get_variable: value larger than buffer (%d > %d)", len(value), bufferSize))
	}
	if !mod.Memory().Write(bufferOffset, value) {
		panic(fmt.Sprintf("hostabi: get_variable: buffer out of range (%d, %d)", bufferOffset, bufferSize))
	}
}

func (s *Store) setVariable(ctx context.Context, mod api.Module, id, bufferOffset, bufferSize uint32) {
	value, ok := mod.Memory().Read(bufferOffset, bufferSize)
	if !ok {
		panic(fmt.Sprintf("hostabi: set_variable: buffer out of range (%d, %d)", bufferOffset, bufferSize))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	stored := make([]byte, len(value))
	copy(stored, value)
	s.byID[id] = stored
}
