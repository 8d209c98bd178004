package lhs

import "errors"

var (
	// ErrBadShape indicates a non-positive point or dimension count.
	ErrBadShape = errors.New("lhs: npoints and ndim must be positive")
	// ErrBadOptions indicates an invalid Options field (negative budget,
	// patience, or epsilon).
	ErrBadOptions = errors.New("lhs: invalid options")
)
