package refract

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/crystalline/crystal"
	"github.com/katalvlaran/crystalline/sellmeier"
)

// Sentinel errors for index evaluation.
var (
	// ErrNilDescriptor indicates a nil *crystal.Descriptor argument.
	ErrNilDescriptor = errors.New("refract: descriptor is nil")

	// ErrOutOfRange indicates a wavelength outside the material's fitted
	// approximation interval. Bounds are inclusive; the wrapped context
	// reports the requested value and both bounds.
	ErrOutOfRange = errors.New("refract: wavelength outside valid range")

	// ErrInvalidPolarization indicates a polarization variant that is
	// not meaningful for the material's axiality class. The wrapped
	// context names the rejected value and the axiality.
	ErrInvalidPolarization = errors.New("refract: polarization not valid for axiality")

	// ErrNegativeIndex indicates a negative squared index inside the
	// nominally valid range — a coefficient/data defect, not a usage
	// error. Returned instead of a silent NaN.
	ErrNegativeIndex = errors.New("refract: negative squared refractive index")
)

// nmPerUM converts nanometers to microns.
const nmPerUM = 1e3

// Index returns the refractive index of the material described by d at
// vacuum wavelength wavelengthNM (nanometers) for polarization pol.
//
// Resolution rules by axiality:
//
//	isotropic — the single index; pol is ignored entirely (there is
//	only one index to return).
//
//	uniaxial  — AxisO → n_o; AxisE → n_e; OpticAngle θ (degrees from
//	the optic axis) → n_o·n_e / √(n_o²·sin²θ + n_e²·cos²θ); anything
//	else fails with ErrInvalidPolarization.
//
//	biaxial   — AxisA/AxisB/AxisC → the matching principal index;
//	PlaneAngle{X, θ} with X ∈ {b, c} → the index-ellipsoid radius in
//	the a–X principal plane at θ degrees from axis a:
//	1/n² = cos²θ/n_a² + sin²θ/n_X²; anything else fails with
//	ErrInvalidPolarization.
//
// Errors: ErrNilDescriptor, ErrOutOfRange (inclusive bounds),
// ErrInvalidPolarization, ErrNegativeIndex.
//
// Complexity: O(1) time, zero allocations on the success path.
// Concurrency: pure read over immutable data; safe to call from any
// number of goroutines.
func Index(d *crystal.Descriptor, wavelengthNM float64, pol crystal.Polarization) (float64, error) {
	if d == nil {
		return 0, fmt.Errorf("Index: %w", ErrNilDescriptor)
	}

	wvl := wavelengthNM / nmPerUM
	if !d.Range.Contains(wvl) {
		return 0, fmt.Errorf("Index(%s): %g µm outside %s: %w", d.Name, wvl, d.Range, ErrOutOfRange)
	}

	ax, err := d.Axiality()
	if err != nil {
		return 0, fmt.Errorf("Index(%s): %w", d.Name, err)
	}

	switch ax {
	case crystal.Isotropic:
		// Single index; the polarization argument carries no information.
		return axisIndex(d, crystal.AxisIso, wvl)

	case crystal.Uniaxial:
		return uniaxialIndex(d, wvl, pol)

	case crystal.Biaxial:
		return biaxialIndex(d, wvl, pol)

	default:
		return 0, fmt.Errorf("Index(%s): axiality %v: %w", d.Name, ax, crystal.ErrUnknownSystem)
	}
}

// Principal evaluates every principal index of the material at
// wavelengthNM: {iso}, {o, e} or {a, b, c} depending on axiality.
// Same range and domain checks as Index.
func Principal(d *crystal.Descriptor, wavelengthNM float64) (map[crystal.Axis]float64, error) {
	if d == nil {
		return nil, fmt.Errorf("Principal: %w", ErrNilDescriptor)
	}

	wvl := wavelengthNM / nmPerUM
	if !d.Range.Contains(wvl) {
		return nil, fmt.Errorf("Principal(%s): %g µm outside %s: %w", d.Name, wvl, d.Range, ErrOutOfRange)
	}

	out := make(map[crystal.Axis]float64, len(d.Coefficients))
	for axis := range d.Coefficients {
		n, err := axisIndex(d, axis, wvl)
		if err != nil {
			return nil, err
		}
		out[axis] = n
	}

	return out, nil
}

// Birefringence returns n_e − n_o at wavelengthNM for a uniaxial
// material: positive for positive uniaxial crystals, negative for
// negative ones. Non-uniaxial materials fail with
// ErrInvalidPolarization.
func Birefringence(d *crystal.Descriptor, wavelengthNM float64) (float64, error) {
	if d == nil {
		return 0, fmt.Errorf("Birefringence: %w", ErrNilDescriptor)
	}

	ax, err := d.Axiality()
	if err != nil {
		return 0, fmt.Errorf("Birefringence(%s): %w", d.Name, err)
	}
	if ax != crystal.Uniaxial {
		return 0, fmt.Errorf("Birefringence(%s): %s material has no o/e pair: %w",
			d.Name, ax, ErrInvalidPolarization)
	}

	no, err := Index(d, wavelengthNM, crystal.AxisO)
	if err != nil {
		return 0, err
	}
	ne, err := Index(d, wavelengthNM, crystal.AxisE)
	if err != nil {
		return 0, err
	}

	return ne - no, nil
}

// axisIndex evaluates one principal axis: Sellmeier n², domain check,
// square root. The range check already happened in the caller.
func axisIndex(d *crystal.Descriptor, axis crystal.Axis, wavelengthUM float64) (float64, error) {
	n2 := sellmeier.Evaluate(d.Form, wavelengthUM, d.Coefficients[axis])
	if n2 < 0 || math.IsNaN(n2) {
		return 0, fmt.Errorf("Index(%s): axis %q at %g µm gave n²=%g: %w",
			d.Name, axis, wavelengthUM, n2, ErrNegativeIndex)
	}

	return math.Sqrt(n2), nil
}

// uniaxialIndex resolves the o/e/angle polarization variants for a
// uniaxial material.
func uniaxialIndex(d *crystal.Descriptor, wavelengthUM float64, pol crystal.Polarization) (float64, error) {
	switch p := pol.(type) {
	case crystal.Axis:
		if p == crystal.AxisO || p == crystal.AxisE {
			return axisIndex(d, p, wavelengthUM)
		}

	case crystal.OpticAngle:
		no, err := axisIndex(d, crystal.AxisO, wavelengthUM)
		if err != nil {
			return 0, err
		}
		ne, err := axisIndex(d, crystal.AxisE, wavelengthUM)
		if err != nil {
			return 0, err
		}
		theta := float64(p) * math.Pi / 180
		sin, cos := math.Sin(theta), math.Cos(theta)

		return no * ne / math.Sqrt(no*no*sin*sin+ne*ne*cos*cos), nil
	}

	return 0, fmt.Errorf("Index(%s): polarization %v on uniaxial material: %w",
		d.Name, pol, ErrInvalidPolarization)
}

// biaxialIndex resolves the a/b/c/plane-angle polarization variants for
// a biaxial material.
func biaxialIndex(d *crystal.Descriptor, wavelengthUM float64, pol crystal.Polarization) (float64, error) {
	switch p := pol.(type) {
	case crystal.Axis:
		if p == crystal.AxisA || p == crystal.AxisB || p == crystal.AxisC {
			return axisIndex(d, p, wavelengthUM)
		}

	case crystal.PlaneAngle:
		// Indicatrix cross-section in the plane spanned by axis a and
		// the named partner: 1/n² = cos²θ/n_a² + sin²θ/n_X², θ from a.
		// The plane "a with a" is degenerate, so only b and c qualify.
		if p.Axis != crystal.AxisB && p.Axis != crystal.AxisC {
			break
		}
		na, err := axisIndex(d, crystal.AxisA, wavelengthUM)
		if err != nil {
			return 0, err
		}
		nx, err := axisIndex(d, p.Axis, wavelengthUM)
		if err != nil {
			return 0, err
		}
		theta := p.Degrees * math.Pi / 180
		sin, cos := math.Sin(theta), math.Cos(theta)

		return na * nx / math.Sqrt(nx*nx*cos*cos+na*na*sin*sin), nil
	}

	return 0, fmt.Errorf("Index(%s): polarization %v on biaxial material: %w",
		d.Name, pol, ErrInvalidPolarization)
}
