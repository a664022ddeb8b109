package crystal

import (
	"fmt"

	"github.com/katalvlaran/crystalline/dmatrix"
	"github.com/katalvlaran/crystalline/sellmeier"
)

// Descriptor is one material's complete optical record: identity,
// symmetry, dispersion form, per-axis Sellmeier coefficient vectors,
// fitted wavelength range, nonlinear tensor template and bibliographic
// references.
//
// Descriptors are constructed once (see the materials package) and only
// read afterwards. The evaluator never mutates them, so a single value
// may be shared across any number of goroutines.
type Descriptor struct {
	// Name identifies the material, unique within the registry
	// (e.g. "LiNbO3").
	Name string

	// System is the crystallographic system; axiality derives from it.
	System System

	// PointGroup is the crystallographic point group (e.g. "3m"),
	// reference metadata only.
	PointGroup string

	// Form tags the Sellmeier family the Coefficients were fitted
	// against. Evaluation is keyed by this tag, never by vector shape.
	Form sellmeier.Form

	// Coefficients maps each principal axis to its fitted coefficient
	// vector. The key set is fixed by axiality: {iso}, {o, e} or
	// {a, b, c}. Each vector's length is fixed by Form.
	Coefficients map[Axis][]float64

	// Range is the closed wavelength interval (microns) over which the
	// fit is valid.
	Range Range

	// Tensor is the symbolic d-matrix structure (full + Kleinman
	// conventions). Display/reference data, never evaluated here.
	Tensor dmatrix.Template

	// References records data provenance per aspect, e.g.
	// "refractive_index" → DOI or refractiveindex.info URL.
	References map[string]string
}

// Axiality derives the optical axiality class from the descriptor's
// crystal system. Always computed, never stored.
func (d *Descriptor) Axiality() (Axiality, error) {
	return d.System.Axiality()
}

// axisSets lists the coefficient axis keys each axiality class requires.
var axisSets = map[Axiality][]Axis{
	Isotropic: {AxisIso},
	Uniaxial:  {AxisO, AxisE},
	Biaxial:   {AxisA, AxisB, AxisC},
}

// Validate checks the descriptor's internal consistency:
//
//   - the System must be one of the nine recognized systems,
//   - the Form must be a declared dispersion form,
//   - the Coefficients key set must be exactly the axis set of the
//     axiality class ({iso} / {o,e} / {a,b,c}),
//   - every coefficient vector must have Form.Coefficients() entries,
//   - the Range must be ordered with a positive lower bound.
//
// Sentinels: ErrUnknownSystem, ErrBadForm, ErrMissingAxis,
// ErrCoefficientCount, ErrBadRange. Validation runs once at
// construction/registration time — the hot evaluation path assumes a
// valid descriptor.
func (d *Descriptor) Validate() error {
	ax, err := d.Axiality()
	if err != nil {
		return fmt.Errorf("Validate(%s): %w", d.Name, err)
	}

	if !d.Form.Valid() {
		return fmt.Errorf("Validate(%s): form %d: %w", d.Name, int(d.Form), ErrBadForm)
	}

	want := axisSets[ax]
	if len(d.Coefficients) != len(want) {
		return fmt.Errorf("Validate(%s): %s needs axes %v, got %d entries: %w",
			d.Name, ax, want, len(d.Coefficients), ErrMissingAxis)
	}
	for _, axis := range want {
		coeff, ok := d.Coefficients[axis]
		if !ok {
			return fmt.Errorf("Validate(%s): missing axis %q: %w", d.Name, axis, ErrMissingAxis)
		}
		if len(coeff) != d.Form.Coefficients() {
			return fmt.Errorf("Validate(%s): axis %q has %d coefficients, form %s needs %d: %w",
				d.Name, axis, len(coeff), d.Form, d.Form.Coefficients(), ErrCoefficientCount)
		}
	}

	if d.Range.MinUM <= 0 || d.Range.MaxUM < d.Range.MinUM {
		return fmt.Errorf("Validate(%s): %s: %w", d.Name, d.Range, ErrBadRange)
	}

	return nil
}
