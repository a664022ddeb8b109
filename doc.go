// Package crystalline computes wavelength-dependent refractive indices
// of nonlinear-optical crystals from published Sellmeier dispersion
// fits, and exposes each crystal's nonlinear susceptibility tensor
// structure (d-matrix) and crystallographic metadata.
//
// 🚀 What is crystalline?
//
//	A pure-Go, dependency-light library for optics and photonics work:
//		• Refractive index n(λ, polarization) per material and axis
//		• Axiality dispatch: isotropic / uniaxial / biaxial resolution
//		• Uniaxial angle mixing and biaxial indicatrix cross-sections
//		• Symbolic 3×6 d-matrix templates (full + Kleinman conventions)
//		• Built-in registry of published material tables
//
// ✨ Why choose crystalline?
//
//   - Pure functions – no I/O, no hidden state, bit-identical results
//   - Rock-solid error taxonomy – sentinels for every failure class,
//     always checked via errors.Is
//   - Safe concurrency for free – every call reads immutable data only
//   - Honest numerics – a negative n² surfaces as an error, never as a
//     silent NaN
//
// Everything is organized under five subpackages:
//
//	crystal/   — central types: systems, axiality, axes, polarizations, Descriptor
//	sellmeier/ — per-family dispersion forms and the n² kernel
//	refract/   — the index evaluator: range check, dispatch, mixing laws
//	dmatrix/   — symbolic nonlinear tensor (d-matrix) templates
//	materials/ — built-in coefficient tables + name registry
//
// Quick example:
//
//	d, _ := materials.Get("LiNbO3")
//	no, _ := refract.Index(d, 1064, crystal.AxisO)   // ordinary index
//	ne, _ := refract.Index(d, 1064, crystal.AxisE)   // extraordinary
//	nq, _ := refract.Index(d, 1064, crystal.OpticAngle(45))
//
// Dive into each package's doc.go for contracts, error sets and
// runnable examples.
//
//	go get github.com/katalvlaran/crystalline
package crystalline
