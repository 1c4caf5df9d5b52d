package splay

import "errors"

var (
	// ErrInvalidConfig signals an invalid tree configuration.
	ErrInvalidConfig = errors.New("splay: invalid configuration")
	// ErrIndexOutOfBounds signals a position or range outside the
	// currently valid sequence bounds. Empty ranges (l > r) are not an
	// error; they are defined no-ops.
	ErrIndexOutOfBounds = errors.New("splay: index out of bounds")
	// ErrCapacityExceeded signals that the arena's fixed lifetime
	// capacity is exhausted. Deleted elements are never recycled, so
	// capacity bounds total allocations, not the live element count.
	ErrCapacityExceeded = errors.New("splay: arena capacity exceeded")
)
