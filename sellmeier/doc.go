// Package sellmeier evaluates the per-family Sellmeier dispersion forms
// used by nonlinear-optical materials: closed-form expressions for the
// squared refractive index n² as a function of wavelength.
//
// 🚀 What is a Sellmeier equation?
//
//	An empirical sum of resonance terms fitted to measured dispersion
//	data. Every published fit is "Sellmeier-like", but the exact shape
//	differs per material family: some add a plain constant background,
//	some carry a bare pole, some a λ² correction term.
//
// ✨ Design:
//   - Each family form is a Form tag carried by the material Descriptor.
//     Evaluation is keyed by the tag — never by inspecting the shape of
//     the coefficient vector.
//   - Evaluate is a pure O(1) kernel: one coefficient vector in, one n²
//     out. It performs no range validation; that is the caller's job
//     (see refract). A malformed vector yields an unspecified number,
//     not an error.
//
// ⚙️ Usage:
//
//	n2 := sellmeier.Evaluate(sellmeier.ThreeOscillator, 1.064, coeff)
//	n := math.Sqrt(n2)
//
// Complexity: O(1) time, zero allocations per call.
package sellmeier
