package materials

import (
	"github.com/katalvlaran/crystalline/crystal"
	"github.com/katalvlaran/crystalline/dmatrix"
	"github.com/katalvlaran/crystalline/sellmeier"
)

// BBO builds β-barium borate (β-BaB2O4): trigonal, point group 3m,
// uniaxial (negative). Dispersion: Eimerl pole+background fit, valid
// 0.22–1.06 µm.
func BBO() *crystal.Descriptor {
	return &crystal.Descriptor{
		Name:       "BBO",
		System:     crystal.Trigonal,
		PointGroup: "3m",
		Form:       sellmeier.PoleBackground,
		Coefficients: map[crystal.Axis][]float64{
			crystal.AxisO: {2.7359, 0.01878, 0.01822, 0, 0, -0.01354},
			crystal.AxisE: {2.3753, 0.01224, 0.01667, 0, 0, -0.01516},
		},
		Range: crystal.Range{MinUM: 0.22, MaxUM: 1.06},
		Tensor: dmatrix.Template{
			Full: dmatrix.Matrix{
				{{}, {}, {}, {}, dmatrix.D("d15"), dmatrix.N("d22")},
				{dmatrix.N("d22"), dmatrix.D("d22"), {}, dmatrix.D("d15"), {}, {}},
				{dmatrix.D("d31"), dmatrix.D("d31"), dmatrix.D("d33"), {}, {}, {}},
			},
			Kleinman: dmatrix.Matrix{
				{{}, {}, {}, {}, dmatrix.D("d31"), dmatrix.N("d22")},
				{dmatrix.N("d22"), dmatrix.D("d22"), {}, dmatrix.D("d31"), {}, {}},
				{dmatrix.D("d31"), dmatrix.D("d31"), dmatrix.D("d33"), {}, {}, {}},
			},
		},
		References: map[string]string{
			"refractive_index": "https://refractiveindex.info/?shelf=main&book=BaB2O4&page=Eimerl-o",
			"dispersion_fit":   "https://doi.org/10.1063/1.339536",
		},
	}
}
