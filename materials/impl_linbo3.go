package materials

import (
	"github.com/katalvlaran/crystalline/crystal"
	"github.com/katalvlaran/crystalline/dmatrix"
	"github.com/katalvlaran/crystalline/sellmeier"
)

// LiNbO3 builds lithium niobate: trigonal, point group 3m, uniaxial.
// Dispersion: Zelmon three-oscillator fit, valid 0.4–5.0 µm.
func LiNbO3() *crystal.Descriptor {
	return &crystal.Descriptor{
		Name:       "LiNbO3",
		System:     crystal.Trigonal,
		PointGroup: "3m",
		Form:       sellmeier.ThreeOscillator,
		Coefficients: map[crystal.Axis][]float64{
			crystal.AxisO: {1, 2.6734, 0.001764, 1.2290, 0.05914, 12.614, 474.60},
			crystal.AxisE: {1, 2.9804, 0.02047, 0.5981, 0.0666, 8.9543, 416.08},
		},
		Range: crystal.Range{MinUM: 0.4, MaxUM: 5.0},
		Tensor: dmatrix.Template{
			Full: dmatrix.Matrix{
				{{}, {}, {}, {}, dmatrix.D("d15"), dmatrix.N("d22")},
				{dmatrix.N("d22"), dmatrix.D("d22"), {}, dmatrix.D("d15"), {}, {}},
				{dmatrix.D("d31"), dmatrix.D("d31"), dmatrix.D("d33"), {}, {}, {}},
			},
			// Kleinman symmetry merges d15 into d31.
			Kleinman: dmatrix.Matrix{
				{{}, {}, {}, {}, dmatrix.D("d31"), dmatrix.N("d22")},
				{dmatrix.N("d22"), dmatrix.D("d22"), {}, dmatrix.D("d31"), {}, {}},
				{dmatrix.D("d31"), dmatrix.D("d31"), dmatrix.D("d33"), {}, {}, {}},
			},
		},
		References: map[string]string{
			"crystal_system":   "https://next-gen.materialsproject.org/materials/mp-552588?formula=LiNbO3",
			"refractive_index": "https://refractiveindex.info/?shelf=main&book=LiNbO3&page=Zelmon-o",
		},
	}
}
