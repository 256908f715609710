package scalar

import "errors"

// Sentinel errors returned by scalar conversions.
var (
	// ErrOverflow is returned when a value does not fit the requested kind.
	ErrOverflow = errors.New("scalar overflow")

	// ErrUnknownKind is returned for kind names or values outside Kinds.
	ErrUnknownKind = errors.New("unknown scalar kind")
)
