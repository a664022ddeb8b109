package materials_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crystalline/crystal"
	"github.com/katalvlaran/crystalline/materials"
	"github.com/katalvlaran/crystalline/refract"
)

// TestRegistry_AllDescriptorsValidate runs full structural validation
// over every registered material: axis sets, vector lengths, ranges.
func TestRegistry_AllDescriptorsValidate(t *testing.T) {
	all := materials.All()
	require.Len(t, all, 7)

	for name, d := range all {
		assert.NoError(t, d.Validate(), name)
		assert.Equal(t, name, d.Name)
		assert.NotEmpty(t, d.PointGroup, name)
		assert.NotEmpty(t, d.References, name)
	}
}

// TestRegistry_AxialityCoverage confirms the built-in set spans all
// three axiality classes.
func TestRegistry_AxialityCoverage(t *testing.T) {
	counts := make(map[crystal.Axiality]int)
	for name, d := range materials.All() {
		ax, err := d.Axiality()
		require.NoError(t, err, name)
		counts[ax]++
	}

	assert.Positive(t, counts[crystal.Isotropic])
	assert.Positive(t, counts[crystal.Uniaxial])
	assert.Positive(t, counts[crystal.Biaxial])
}

// TestGet_CaseInsensitive verifies lookup normalization.
func TestGet_CaseInsensitive(t *testing.T) {
	for _, name := range []string{"LiNbO3", "linbo3", "LINBO3"} {
		d, err := materials.Get(name)
		require.NoError(t, err, name)
		assert.Equal(t, "LiNbO3", d.Name, name)
	}
}

// TestGet_Unknown confirms ErrUnknownMaterial names the request.
func TestGet_Unknown(t *testing.T) {
	_, err := materials.Get("unobtainium")
	require.ErrorIs(t, err, materials.ErrUnknownMaterial)
	assert.Contains(t, err.Error(), "unobtainium")
}

// TestGet_FreshValues confirms each Get returns an independent value:
// mutating one caller's descriptor cannot leak into another's.
func TestGet_FreshValues(t *testing.T) {
	first, err := materials.Get("KTP")
	require.NoError(t, err)
	first.Coefficients[crystal.AxisA][0] = -999
	first.Name = "mangled"

	second, err := materials.Get("KTP")
	require.NoError(t, err)
	assert.Equal(t, "KTP", second.Name)
	assert.Equal(t, 3.0065, second.Coefficients[crystal.AxisA][0],
		"registry data must be unaffected by caller mutation")
}

// TestNames returns canonical names sorted ascending.
func TestNames(t *testing.T) {
	assert.Equal(t,
		[]string{"BBO", "BaMgF4", "KDP", "KTP", "LiNbO3", "SiO2", "ZnSe"},
		materials.Names())
}

// TestIsotropicMembers_SingleIndex asserts the registry-wide property:
// every isotropic material returns one value regardless of the
// polarization argument.
func TestIsotropicMembers_SingleIndex(t *testing.T) {
	for name, d := range materials.All() {
		ax, err := d.Axiality()
		require.NoError(t, err, name)
		if ax != crystal.Isotropic {
			continue
		}

		// Probe mid-range to stay inside every material's fit.
		nm := (d.Range.MinUM + d.Range.MaxUM) / 2 * 1e3

		ref, err := refract.Index(d, nm, crystal.Unpolarized)
		require.NoError(t, err, name)
		for _, pol := range []crystal.Polarization{crystal.AxisO, crystal.OpticAngle(17), crystal.AxisC} {
			n, err := refract.Index(d, nm, pol)
			require.NoError(t, err, name)
			assert.Equal(t, ref, n, "%s: polarization %v changed an isotropic index", name, pol)
		}
	}
}

// TestUniaxialMembers_Birefringent asserts the registry-wide property:
// every uniaxial material shows non-zero birefringence at mid-range.
func TestUniaxialMembers_Birefringent(t *testing.T) {
	for name, d := range materials.All() {
		ax, err := d.Axiality()
		require.NoError(t, err, name)
		if ax != crystal.Uniaxial {
			continue
		}

		nm := (d.Range.MinUM + d.Range.MaxUM) / 2 * 1e3
		dn, err := refract.Birefringence(d, nm)
		require.NoError(t, err, name)
		assert.NotZero(t, dn, "%s: o/e must differ at a non-degenerate wavelength", name)
	}
}

// TestTensors_KleinmanConsistency: Kleinman symmetry only merges or
// zeroes coefficients — it never populates a cell the point group
// requires to be a structural zero.
func TestTensors_KleinmanConsistency(t *testing.T) {
	for name, d := range materials.All() {
		full := d.Tensor.Select(false)
		reduced := d.Tensor.Select(true)

		for r := 0; r < 3; r++ {
			for c := 0; c < 6; c++ {
				fe, err := full.At(r, c)
				require.NoError(t, err)
				re, err := reduced.At(r, c)
				require.NoError(t, err)
				if fe.IsZero() {
					assert.True(t, re.IsZero(),
						"%s: structural zero at (%d,%d) gained an entry under Kleinman", name, r, c)
				}
			}
		}

		assert.LessOrEqual(t, len(reduced.Coefficients()), len(full.Coefficients()),
			"%s: Kleinman reduction cannot add independent coefficients", name)
	}
}
