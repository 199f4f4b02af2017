package log_test

import (
	"testing"

	"go.uber.org/zap"

	"github.com/hirosystems/clarity-wasm-go/log"
)

func TestLoggerDefaultsToNonNil(t *testing.T) {
	if l := log.Logger(); l == nil {
		t.Fatal("Logger() returned nil, want a default no-op logger")
	}
}

func TestSetLoggerOverridesInstance(t *testing.T) {
	custom := zap.NewExample()
	log.SetLogger(custom)

	if got := log.Logger(); got != custom {
		t.Fatalf("Logger() = %p, want the logger passed to SetLogger (%p)", got, custom)
	}
}

func TestSetLoggerNilRestoresNop(t *testing.T) {
	log.SetLogger(zap.NewExample())
	log.SetLogger(nil)

	if got := log.Logger(); got == nil {
		t.Fatal("Logger() returned nil after SetLogger(nil), want the no-op default")
	}
}
