// Package materials carries the built-in nonlinear-optical material
// tables and the read-only registry that resolves them by name.
//
// 🚀 What's registered?
//
//	LiNbO3  — trigonal 3m, uniaxial, three-oscillator fit (Zelmon)
//	BaMgF4  — orthorhombic mm2, biaxial, pole+background fit
//	SiO2    — trigonal 32, uniaxial, offset two-oscillator fit (Ghosh)
//	BBO     — trigonal 3m, uniaxial, pole+background fit (Eimerl)
//	KDP     — tetragonal -42m, uniaxial, pole+background fit (Zernike)
//	KTP     — orthorhombic mm2, biaxial, pole+background fit (Fan)
//	ZnSe    — cubic -43m, isotropic, single-oscillator fit (Marple)
//
// ✨ Design:
//   - One file per material, each exporting a factory that builds a
//     fresh crystal.Descriptor — callers own the returned value and
//     cannot corrupt shared state through it.
//   - The registry is a package-level table populated at init and never
//     mutated afterwards; there is no runtime Register.
//   - Lookup is case-insensitive ("linbo3" resolves LiNbO3).
//
// ⚙️ Usage:
//
//	d, err := materials.Get("LiNbO3")
//	for _, name := range materials.Names() { ... }
//
// Coefficient provenance is recorded in each Descriptor's References
// map (DOIs, refractiveindex.info and Materials Project links).
package materials
