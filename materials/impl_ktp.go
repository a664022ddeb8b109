package materials

import (
	"github.com/katalvlaran/crystalline/crystal"
	"github.com/katalvlaran/crystalline/dmatrix"
	"github.com/katalvlaran/crystalline/sellmeier"
)

// KTP builds potassium titanyl phosphate (KTiOPO4): orthorhombic,
// point group mm2, biaxial. Dispersion: Fan pole+background fit,
// valid 0.35–4.5 µm.
func KTP() *crystal.Descriptor {
	return &crystal.Descriptor{
		Name:       "KTP",
		System:     crystal.Orthorhombic,
		PointGroup: "mm2",
		Form:       sellmeier.PoleBackground,
		Coefficients: map[crystal.Axis][]float64{
			crystal.AxisA: {3.0065, 0.03901, 0.04251, 0, 0, -0.01327},
			crystal.AxisB: {3.0333, 0.04154, 0.04547, 0, 0, -0.01408},
			crystal.AxisC: {3.3134, 0.05694, 0.05658, 0, 0, -0.01682},
		},
		Range: crystal.Range{MinUM: 0.35, MaxUM: 4.5},
		Tensor: dmatrix.Template{
			Full: dmatrix.Matrix{
				{{}, {}, {}, {}, dmatrix.D("d15"), {}},
				{{}, {}, {}, dmatrix.D("d24"), {}, {}},
				{dmatrix.D("d31"), dmatrix.D("d32"), dmatrix.D("d33"), {}, {}, {}},
			},
			Kleinman: dmatrix.Matrix{
				{{}, {}, {}, {}, dmatrix.D("d31"), {}},
				{{}, {}, {}, dmatrix.D("d32"), {}, {}},
				{dmatrix.D("d31"), dmatrix.D("d32"), dmatrix.D("d33"), {}, {}, {}},
			},
		},
		References: map[string]string{
			"refractive_index": "https://refractiveindex.info/?shelf=main&book=KTiOPO4&page=Fan-nx",
			"dispersion_fit":   "https://doi.org/10.1364/AO.26.002390",
		},
	}
}
