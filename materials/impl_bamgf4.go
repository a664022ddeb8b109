package materials

import (
	"github.com/katalvlaran/crystalline/crystal"
	"github.com/katalvlaran/crystalline/dmatrix"
	"github.com/katalvlaran/crystalline/sellmeier"
)

// BaMgF4 builds barium magnesium fluoride: orthorhombic, point group
// mm2, biaxial. Dispersion: pole+background fit, valid 0.15–10.0 µm
// (lower bound is a rough read from the published transmission graphs).
func BaMgF4() *crystal.Descriptor {
	return &crystal.Descriptor{
		Name:       "BaMgF4",
		System:     crystal.Orthorhombic,
		PointGroup: "mm2",
		Form:       sellmeier.PoleBackground,
		Coefficients: map[crystal.Axis][]float64{
			crystal.AxisA: {2.1479, 0.00726962, 0.00965209, 8.10153, 1394.25, 0.00320462},
			crystal.AxisB: {2.07977, 0.00650243, 0.0100106, 8.18289, 1451.04, 0.00321466},
			crystal.AxisC: {2.1285, 0.00704687, 0.00999784, 8.56752, 1413.17, 0.00331969},
		},
		Range: crystal.Range{MinUM: 0.15, MaxUM: 10.0},
		Tensor: dmatrix.Template{
			Full: dmatrix.Matrix{
				{{}, {}, {}, {}, dmatrix.D("d15"), {}},
				{{}, {}, {}, dmatrix.D("d24"), {}, {}},
				{dmatrix.D("d31"), dmatrix.D("d32"), dmatrix.D("d33"), {}, {}, {}},
			},
			// Kleinman symmetry merges d15 into d31 and d24 into d32.
			Kleinman: dmatrix.Matrix{
				{{}, {}, {}, {}, dmatrix.D("d31"), {}},
				{{}, {}, {}, dmatrix.D("d32"), {}, {}},
				{dmatrix.D("d31"), dmatrix.D("d32"), dmatrix.D("d33"), {}, {}, {}},
			},
		},
		References: map[string]string{
			"crystal_system":   "https://next-gen.materialsproject.org/materials/mp-14568?formula=BaMgF4",
			"refractive_index": "https://doi.org/10.1364/OE.17.012362",
		},
	}
}
