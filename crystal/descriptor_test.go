package crystal_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crystalline/crystal"
	"github.com/katalvlaran/crystalline/sellmeier"
)

// validUniaxial builds a minimal self-consistent uniaxial descriptor
// for validation tests.
func validUniaxial() *crystal.Descriptor {
	return &crystal.Descriptor{
		Name:   "fixture",
		System: crystal.Trigonal,
		Form:   sellmeier.ThreeOscillator,
		Coefficients: map[crystal.Axis][]float64{
			crystal.AxisO: {1, 2.6734, 0.001764, 1.2290, 0.05914, 12.614, 474.60},
			crystal.AxisE: {1, 2.9804, 0.02047, 0.5981, 0.0666, 8.9543, 416.08},
		},
		Range: crystal.Range{MinUM: 0.4, MaxUM: 5.0},
	}
}

// TestDescriptor_AxialityDerived confirms axiality tracks System with no
// independent storage: change the system, the axiality follows.
func TestDescriptor_AxialityDerived(t *testing.T) {
	d := validUniaxial()

	ax, err := d.Axiality()
	require.NoError(t, err)
	assert.Equal(t, crystal.Uniaxial, ax)

	d.System = crystal.Cubic
	ax, err = d.Axiality()
	require.NoError(t, err)
	assert.Equal(t, crystal.Isotropic, ax, "axiality must follow the system")

	d.System = "icosahedral"
	_, err = d.Axiality()
	assert.ErrorIs(t, err, crystal.ErrUnknownSystem)
}

// TestDescriptor_Validate_OK confirms a consistent descriptor passes.
func TestDescriptor_Validate_OK(t *testing.T) {
	assert.NoError(t, validUniaxial().Validate())
}

// TestDescriptor_Validate_UnknownSystem covers the system gate.
func TestDescriptor_Validate_UnknownSystem(t *testing.T) {
	d := validUniaxial()
	d.System = "icosahedral"

	assert.ErrorIs(t, d.Validate(), crystal.ErrUnknownSystem)
}

// TestDescriptor_Validate_BadForm covers the form gate.
func TestDescriptor_Validate_BadForm(t *testing.T) {
	d := validUniaxial()
	d.Form = sellmeier.Form(99)

	assert.ErrorIs(t, d.Validate(), crystal.ErrBadForm)
}

// TestDescriptor_Validate_AxisSet covers axis-set mismatches: missing
// axis, extra axis, and wrong-class axis keys.
func TestDescriptor_Validate_AxisSet(t *testing.T) {
	d := validUniaxial()
	delete(d.Coefficients, crystal.AxisE)
	assert.ErrorIs(t, d.Validate(), crystal.ErrMissingAxis, "missing e axis")

	d = validUniaxial()
	d.Coefficients[crystal.AxisA] = []float64{1, 2, 3, 4, 5, 6, 7}
	assert.ErrorIs(t, d.Validate(), crystal.ErrMissingAxis, "extra axis key")

	d = validUniaxial()
	delete(d.Coefficients, crystal.AxisO)
	d.Coefficients[crystal.AxisIso] = []float64{1, 2, 3, 4, 5, 6, 7}
	assert.ErrorIs(t, d.Validate(), crystal.ErrMissingAxis, "iso key on uniaxial material")
}

// TestDescriptor_Validate_CoefficientCount covers vector-length
// mismatches against the declared form.
func TestDescriptor_Validate_CoefficientCount(t *testing.T) {
	d := validUniaxial()
	d.Coefficients[crystal.AxisO] = []float64{1, 2, 3}

	assert.ErrorIs(t, d.Validate(), crystal.ErrCoefficientCount)
}

// TestDescriptor_Validate_BadRange covers unordered and non-positive
// intervals.
func TestDescriptor_Validate_BadRange(t *testing.T) {
	d := validUniaxial()
	d.Range = crystal.Range{MinUM: 5.0, MaxUM: 0.4}
	assert.ErrorIs(t, d.Validate(), crystal.ErrBadRange, "unordered bounds")

	d = validUniaxial()
	d.Range = crystal.Range{MinUM: 0, MaxUM: 5.0}
	assert.ErrorIs(t, d.Validate(), crystal.ErrBadRange, "zero lower bound")
}
