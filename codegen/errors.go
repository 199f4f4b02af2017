package codegen

import (
	stderrors "errors"

	"github.com/hirosystems/clarity-wasm-go/errors"
)

// IsNotImplemented reports whether err is a recognized-but-unlowered-form
// error, per §7's NotImplemented/InternalError split.
func IsNotImplemented(err error) bool {
	var e *errors.Error
	return stderrors.As(err, &e) && e.Kind == errors.KindNotImplemented
}

// IsInternalError reports whether err is an invariant-violation error.
func IsInternalError(err error) bool {
	var e *errors.Error
	return stderrors.As(err, &e) && e.Kind == errors.KindInternal
}
