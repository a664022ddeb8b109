// Package refract computes wavelength- and polarization-resolved
// refractive indices for nonlinear-optical materials described by a
// crystal.Descriptor.
//
// 🚀 What does it do?
//
//	One pure entry-point, Index, takes a material descriptor, a vacuum
//	wavelength in nanometers and a polarization variant, and returns
//	n(λ, polarization):
//	  • isotropic materials — the single index, polarization ignored
//	  • uniaxial materials  — n_o, n_e, or the effective index at an
//	    angle θ from the optic axis
//	  • biaxial materials   — n_a, n_b, n_c, or the indicatrix
//	    cross-section index in a principal plane
//
// ✨ Guarantees:
//   - Stateless, side-effect-free, O(1) closed-form arithmetic; safe
//     for unrestricted parallel invocation.
//   - Identical inputs return bit-identical results.
//   - Every failure is a sentinel checked via errors.Is, wrapped with
//     the offending value (requested wavelength + bounds, rejected
//     polarization + axiality, negative n² + axis).
//   - A negative squared index inside the fitted range surfaces as
//     ErrNegativeIndex — never as a silent NaN.
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/crystalline/crystal"
//	  "github.com/katalvlaran/crystalline/materials"
//	  "github.com/katalvlaran/crystalline/refract"
//	)
//
//	d, _ := materials.Get("LiNbO3")
//	no, err := refract.Index(d, 1064, crystal.AxisO)
//	ne, err := refract.Index(d, 1064, crystal.AxisE)
//	nθ, err := refract.Index(d, 1064, crystal.OpticAngle(45))
//
// See example_test.go for runnable walkthroughs.
package refract
