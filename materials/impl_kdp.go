package materials

import (
	"github.com/katalvlaran/crystalline/crystal"
	"github.com/katalvlaran/crystalline/dmatrix"
	"github.com/katalvlaran/crystalline/sellmeier"
)

// KDP builds potassium dihydrogen phosphate (KH2PO4): tetragonal,
// point group -42m, uniaxial (negative). Dispersion: Zernike
// pole+background fit, valid 0.2–1.5 µm.
func KDP() *crystal.Descriptor {
	return &crystal.Descriptor{
		Name:       "KDP",
		System:     crystal.Tetragonal,
		PointGroup: "-42m",
		Form:       sellmeier.PoleBackground,
		Coefficients: map[crystal.Axis][]float64{
			crystal.AxisO: {2.259276, 0.01008956, 0.012942625, 13.00522, 400, 0},
			crystal.AxisE: {2.132668, 0.008637494, 0.012281043, 3.2279924, 400, 0},
		},
		Range: crystal.Range{MinUM: 0.2, MaxUM: 1.5},
		Tensor: dmatrix.Template{
			Full: dmatrix.Matrix{
				{{}, {}, {}, dmatrix.D("d14"), {}, {}},
				{{}, {}, {}, {}, dmatrix.D("d14"), {}},
				{{}, {}, {}, {}, {}, dmatrix.D("d36")},
			},
			// Kleinman symmetry merges d36 into d14.
			Kleinman: dmatrix.Matrix{
				{{}, {}, {}, dmatrix.D("d14"), {}, {}},
				{{}, {}, {}, {}, dmatrix.D("d14"), {}},
				{{}, {}, {}, {}, {}, dmatrix.D("d14")},
			},
		},
		References: map[string]string{
			"refractive_index": "https://refractiveindex.info/?shelf=main&book=KH2PO4&page=Zernike-o",
			"dispersion_fit":   "https://doi.org/10.1364/JOSA.54.001215",
		},
	}
}
