package blocks

import "errors"

var (
	// ErrInvalidConfig signals an invalid engine configuration.
	ErrInvalidConfig = errors.New("blocks: invalid configuration")
	// ErrIndexOutOfBounds signals an invalid positional index.
	ErrIndexOutOfBounds = errors.New("blocks: index out of bounds")
	// ErrStaleLocation signals a location whose block or element has been
	// released or restructured since the location was created.
	ErrStaleLocation = errors.New("blocks: stale location")
	// ErrCorrupted is reported by the invariant checker.
	ErrCorrupted = errors.New("blocks: structure corrupted")
)
