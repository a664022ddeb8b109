// Package crystal defines the central value types of crystalline:
// crystal systems, optical axiality classes, principal axes, polarization
// variants, and the immutable material Descriptor that the refract
// evaluator consumes.
//
// 🚀 What lives here?
//
//	• System    — the nine crystallographic systems (cubic … triclinic)
//	• Axiality  — isotropic / uniaxial / biaxial, always derived from System
//	• Axis      — principal-axis keys: iso, o, e, a, b, c
//	• Polarization — sealed variant type: Axis, OpticAngle, PlaneAngle
//	• Range     — closed wavelength validity interval in microns
//	• Descriptor — one material's identity, symmetry, dispersion form,
//	  coefficient vectors, valid range and nonlinear tensor template
//
// ✨ Guarantees:
//   - Axiality is recomputed from System on every call; it is never a
//     stored field, so the two can never diverge.
//   - Descriptors are plain values constructed once and only read after
//     that; every accessor is safe for unrestricted concurrent use.
//   - All validation failures are package sentinels checked via errors.Is.
//
// Descriptors for real materials are built by the materials package;
// index evaluation lives in refract.
package crystal
