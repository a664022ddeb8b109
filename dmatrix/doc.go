// Package dmatrix models the structure of the second-order nonlinear
// susceptibility tensor (the "d-matrix") in reduced Voigt notation: a
// fixed 3×6 grid whose entries are either structural zeros or named
// coefficients such as d15 or -d22, as dictated by the crystal's point
// group.
//
// 🚀 Why symbolic?
//
//	Point-group symmetry decides WHICH coefficients survive and how they
//	relate in sign — long before anyone measures their magnitudes. The
//	grid here is that structural skeleton: pure data for display and
//	reference, never numerically evaluated by the index evaluator.
//
// ✨ Design:
//   - Entry is a tiny value type: coefficient name + sign; the zero
//     Entry is the structural zero.
//   - Matrix is a value ([3][6]Entry) — copy it freely, no aliasing.
//   - Template carries both conventions per material: the full
//     point-group form and the Kleinman-symmetry-reduced form.
//
// ⚙️ Usage:
//
//	m := desc.Tensor.Select(true) // Kleinman-reduced
//	fmt.Println(m)                // [[0 0 0 0 d31 -d22] ...]
//	names := m.Coefficients()     // ["d22" "d31" "d33"]
//
// No symbolic algebra happens here — see the Non-goals of the project.
package dmatrix
