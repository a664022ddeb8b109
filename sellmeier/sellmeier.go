package sellmeier

import "math"

// Form tags the dispersion-equation family a material's coefficient
// vectors were fitted against. The tag is part of the material's public
// contract: the same vector evaluated under a different Form is
// meaningless.
type Form int

const (
	// ThreeOscillator is a three-resonance fit consuming 7 coefficients
	// [c0, A1,B1, A2,B2, A3,B3]:
	//
	//	n² = c0 + A1·λ²/(λ²−B1) + A2·λ²/(λ²−B2) + A3·λ²/(λ²−B3)
	//
	// Used e.g. by the Zelmon LiNbO₃ fit.
	ThreeOscillator Form = iota

	// PoleBackground mixes a bare pole, one resonance and a λ²
	// background, consuming 6 coefficients [c0, c1,c2, c3,c4, c5]:
	//
	//	n² = c0 + c1/(λ²−c2) + c3·λ²/(λ²−c4) + c5·λ²
	//
	// Used e.g. by the BaMgF₄, BBO, KDP and KTP fits.
	PoleBackground

	// OffsetTwoOscillator is a two-resonance fit whose first two
	// coefficients are both plain additive constants, consuming
	// 6 coefficients [c0, c1, A1,B1, A2,B2]:
	//
	//	n² = c0 + c1 + A1·λ²/(λ²−B1) + A2·λ²/(λ²−B2)
	//
	// Used e.g. by the Ghosh α-quartz fit.
	OffsetTwoOscillator

	// SingleOscillator is a one-resonance fit consuming 3 coefficients
	// [c0, A1, B1]:
	//
	//	n² = c0 + A1·λ²/(λ²−B1)
	//
	// Used e.g. by the Marple ZnSe fit.
	SingleOscillator
)

// formCoefficients maps each Form to the coefficient-vector length its
// formula consumes. Single source of truth for Descriptor validation.
var formCoefficients = map[Form]int{
	ThreeOscillator:     7,
	PoleBackground:      6,
	OffsetTwoOscillator: 6,
	SingleOscillator:    3,
}

// formNames maps each Form to its canonical display name.
var formNames = map[Form]string{
	ThreeOscillator:     "three-oscillator",
	PoleBackground:      "pole+background",
	OffsetTwoOscillator: "offset two-oscillator",
	SingleOscillator:    "single-oscillator",
}

// Coefficients returns the coefficient-vector length the form consumes,
// or 0 for an unknown form.
func (f Form) Coefficients() int { return formCoefficients[f] }

// Valid reports whether f is one of the declared dispersion forms.
func (f Form) Valid() bool {
	_, ok := formCoefficients[f]

	return ok
}

// String returns the canonical form name, or "unknown" for an
// unrecognized tag.
func (f Form) String() string {
	if name, ok := formNames[f]; ok {
		return name
	}

	return "unknown"
}

// Evaluate computes the squared refractive index n² for wavelength
// wavelengthUM (microns) under form f with coefficient vector coeff.
//
// Contract (strict):
//   - coeff MUST have exactly f.Coefficients() entries; Evaluate assumes
//     a valid vector and its result is unspecified otherwise.
//   - No wavelength-range validation happens here — refract.Index owns
//     the range check. Evaluating outside a material's fitted range
//     yields numbers the fit never promised.
//   - An unknown form returns NaN.
//
// Complexity: O(1), zero allocations.
func Evaluate(f Form, wavelengthUM float64, coeff []float64) float64 {
	l2 := wavelengthUM * wavelengthUM

	switch f {
	case ThreeOscillator:
		return coeff[0] +
			coeff[1]*l2/(l2-coeff[2]) +
			coeff[3]*l2/(l2-coeff[4]) +
			coeff[5]*l2/(l2-coeff[6])

	case PoleBackground:
		return coeff[0] +
			coeff[1]/(l2-coeff[2]) +
			coeff[3]*l2/(l2-coeff[4]) +
			coeff[5]*l2

	case OffsetTwoOscillator:
		return coeff[0] + coeff[1] +
			coeff[2]*l2/(l2-coeff[3]) +
			coeff[4]*l2/(l2-coeff[5])

	case SingleOscillator:
		return coeff[0] + coeff[1]*l2/(l2-coeff[2])

	default:
		return math.NaN()
	}
}
