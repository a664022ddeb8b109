// SPDX-License-Identifier: MIT
// Package crystal: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// crystal package. Callers MUST branch with errors.Is; context is attached
// at the return site via fmt.Errorf("ctx: %w", ErrX) and never baked into
// the sentinel itself.

package crystal

import "errors"

var (
	// ErrUnknownSystem indicates a crystal-system string outside the nine
	// recognized crystallographic systems. Parsing is case-insensitive,
	// so this fires only for genuinely unknown names.
	ErrUnknownSystem = errors.New("crystal: unknown crystal system")

	// ErrMissingAxis indicates that a Descriptor's coefficient map does
	// not carry exactly the axis keys its axiality class requires
	// ({iso}, {o,e} or {a,b,c}).
	ErrMissingAxis = errors.New("crystal: coefficient axis set does not match axiality")

	// ErrCoefficientCount indicates that a coefficient vector's length
	// does not match what the Descriptor's dispersion form consumes.
	ErrCoefficientCount = errors.New("crystal: coefficient vector has wrong length")

	// ErrBadRange indicates a validity interval that is unordered,
	// non-positive, or otherwise not a usable closed interval in microns.
	ErrBadRange = errors.New("crystal: invalid wavelength range")

	// ErrBadForm indicates that the Descriptor carries an unknown
	// dispersion-form tag.
	ErrBadForm = errors.New("crystal: unknown dispersion form")
)
