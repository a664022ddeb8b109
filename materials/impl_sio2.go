package materials

import (
	"github.com/katalvlaran/crystalline/crystal"
	"github.com/katalvlaran/crystalline/dmatrix"
	"github.com/katalvlaran/crystalline/sellmeier"
)

// SiO2 builds α-quartz: trigonal, point group 32, uniaxial.
// Dispersion: Ghosh offset two-oscillator fit, valid 0.198–2.05 µm.
func SiO2() *crystal.Descriptor {
	return &crystal.Descriptor{
		Name:       "SiO2",
		System:     crystal.Trigonal,
		PointGroup: "32",
		Form:       sellmeier.OffsetTwoOscillator,
		Coefficients: map[crystal.Axis][]float64{
			crystal.AxisO: {1, 0.28604141, 1.07044083, 1.00585997e-2, 1.10202242, 100},
			crystal.AxisE: {1, 0.28851804, 1.09509924, 1.02101864e-2, 1.15662475, 100},
		},
		Range: crystal.Range{MinUM: 0.198, MaxUM: 2.05},
		Tensor: dmatrix.Template{
			Full: dmatrix.Matrix{
				{dmatrix.D("d11"), dmatrix.N("d11"), {}, dmatrix.D("d14"), {}, {}},
				{{}, {}, {}, {}, dmatrix.N("d14"), dmatrix.D("d11")},
				{{}, {}, {}, {}, {}, {}},
			},
			// Kleinman symmetry forces d14 to vanish in group 32.
			Kleinman: dmatrix.Matrix{
				{dmatrix.D("d11"), dmatrix.N("d11"), {}, {}, {}, {}},
				{{}, {}, {}, {}, {}, dmatrix.D("d11")},
				{{}, {}, {}, {}, {}, {}},
			},
		},
		References: map[string]string{
			"crystal_system":   "https://next-gen.materialsproject.org/materials/mp-7000?formula=SiO2",
			"refractive_index": "https://refractiveindex.info/?shelf=main&book=SiO2&page=Ghosh-o",
		},
	}
}
