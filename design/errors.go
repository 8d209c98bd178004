package design

import "errors"

var (
	// ErrUnknownBeamEnergy indicates a beam energy with no norm-range entry.
	ErrUnknownBeamEnergy = errors.New("design: beam energy has no norm range")
	// ErrUnknownCrossSection indicates a beam energy with no nucleon
	// cross-section entry.
	ErrUnknownCrossSection = errors.New("design: beam energy has no cross section")
	// ErrBadSpec indicates an invalid parameter specification (empty key or
	// min > max).
	ErrBadSpec = errors.New("design: invalid parameter spec")
	// ErrDuplicateKey indicates two specs or derived specs sharing a key.
	ErrDuplicateKey = errors.New("design: duplicate parameter key")
	// ErrEmptySpace indicates a parameter space with no active parameters.
	ErrEmptySpace = errors.New("design: parameter space has no active parameters")
	// ErrBadKind indicates a design kind other than Main or Validation.
	ErrBadKind = errors.New("design: unknown design kind")
	// ErrMissingParam indicates a derived-parameter transform referencing a
	// key absent from the sampled values.
	ErrMissingParam = errors.New("design: derived parameter references missing key")
	// ErrBadConfig indicates an invalid campaign configuration.
	ErrBadConfig = errors.New("design: invalid campaign config")
)
