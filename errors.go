package client

import (
	xerrors "github.com/omnidex-ai/omnidex/client/internal/errors"
)

// ModelError is the typed boundary error carried by every decode and
// construction failure; it names the model and wire field that were
// rejected.
type ModelError = xerrors.Error

// IsDecodeError reports whether err is (or wraps) a wire decode
// failure.
func IsDecodeError(err error) bool { return xerrors.IsDecode(err) }

// IsConstructionError reports whether err is (or wraps) a
// construction-time validation failure.
func IsConstructionError(err error) bool { return xerrors.IsConstruction(err) }

// AsModelError extracts the typed boundary error from an error chain.
func AsModelError(err error) (*ModelError, bool) { return xerrors.AsError(err) }
