package materials

import (
	"github.com/katalvlaran/crystalline/crystal"
	"github.com/katalvlaran/crystalline/dmatrix"
	"github.com/katalvlaran/crystalline/sellmeier"
)

// ZnSe builds zinc selenide: cubic (zincblende), point group -43m,
// isotropic. Dispersion: Marple single-oscillator fit, valid
// 0.5–2.5 µm. The only isotropic member of the built-in set.
func ZnSe() *crystal.Descriptor {
	// -43m keeps a single independent coefficient d14 = d25 = d36;
	// Kleinman symmetry adds nothing, so both conventions coincide.
	tensor := dmatrix.Matrix{
		{{}, {}, {}, dmatrix.D("d14"), {}, {}},
		{{}, {}, {}, {}, dmatrix.D("d14"), {}},
		{{}, {}, {}, {}, {}, dmatrix.D("d14")},
	}

	return &crystal.Descriptor{
		Name:       "ZnSe",
		System:     crystal.Cubic,
		PointGroup: "-43m",
		Form:       sellmeier.SingleOscillator,
		Coefficients: map[crystal.Axis][]float64{
			crystal.AxisIso: {4.00, 1.90, 0.113},
		},
		Range: crystal.Range{MinUM: 0.5, MaxUM: 2.5},
		Tensor: dmatrix.Template{
			Full:     tensor,
			Kleinman: tensor,
		},
		References: map[string]string{
			"refractive_index": "https://refractiveindex.info/?shelf=main&book=ZnSe&page=Marple",
			"dispersion_fit":   "https://doi.org/10.1063/1.1713411",
		},
	}
}
