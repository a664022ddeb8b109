package crystal

import (
	"fmt"
	"strings"
)

// System names one of the nine crystallographic systems. Values are
// stored lowercase; use ParseSystem for case-insensitive input.
type System string

// The nine recognized crystal systems.
const (
	Cubic        System = "cubic"
	Tetragonal   System = "tetragonal"
	Hexagonal    System = "hexagonal"
	Trigonal     System = "trigonal"
	Rhombohedral System = "rhombohedral"
	Orthorhombic System = "orthorhombic"
	Monoclinic   System = "monoclinic"
	Triclinic    System = "triclinic"
)

// Axiality is the optical symmetry class of a crystal: how many
// independent principal refractive indices it has.
type Axiality int

const (
	// Isotropic — one index; cubic crystals.
	Isotropic Axiality = iota

	// Uniaxial — ordinary/extraordinary pair; tetragonal, hexagonal,
	// trigonal and rhombohedral crystals.
	Uniaxial

	// Biaxial — three principal indices; orthorhombic, monoclinic and
	// triclinic crystals.
	Biaxial
)

// axialityNames maps each Axiality to its display name.
var axialityNames = map[Axiality]string{
	Isotropic: "isotropic",
	Uniaxial:  "uniaxial",
	Biaxial:   "biaxial",
}

// String returns "isotropic", "uniaxial" or "biaxial".
func (a Axiality) String() string {
	if name, ok := axialityNames[a]; ok {
		return name
	}

	return "unknown"
}

// systemAxiality is the single source of truth mapping systems to their
// axiality class. Axiality is ALWAYS derived through this table — it is
// never stored on a Descriptor, so the two cannot diverge.
var systemAxiality = map[System]Axiality{
	Cubic:        Isotropic,
	Tetragonal:   Uniaxial,
	Hexagonal:    Uniaxial,
	Trigonal:     Uniaxial,
	Rhombohedral: Uniaxial,
	Orthorhombic: Biaxial,
	Monoclinic:   Biaxial,
	Triclinic:    Biaxial,
}

// ParseSystem resolves a crystal-system name case-insensitively.
// Returns ErrUnknownSystem (wrapped with the offending name) for any
// string outside the nine recognized systems.
func ParseSystem(name string) (System, error) {
	s := System(strings.ToLower(name))
	if _, ok := systemAxiality[s]; !ok {
		return "", fmt.Errorf("ParseSystem: %q: %w", name, ErrUnknownSystem)
	}

	return s, nil
}

// AxialityOf maps a crystal-system name (case-insensitive) to its
// axiality class. Pure and total over the nine recognized systems;
// ErrUnknownSystem otherwise.
func AxialityOf(system string) (Axiality, error) {
	s, err := ParseSystem(system)
	if err != nil {
		return 0, err
	}

	return systemAxiality[s], nil
}

// Axiality returns the axiality class of an already-parsed System.
// Unknown values (only constructible by bypassing ParseSystem) report
// ErrUnknownSystem like the string path does.
func (s System) Axiality() (Axiality, error) {
	return AxialityOf(string(s))
}

// Axis keys a principal axis of the index ellipsoid: "iso" for the
// single isotropic index, "o"/"e" for the uniaxial pair, "a"/"b"/"c"
// for the biaxial triple. Axis is also the simplest Polarization
// variant.
type Axis string

const (
	// AxisIso is the single axis of an isotropic crystal.
	AxisIso Axis = "iso"

	// AxisO / AxisE are the uniaxial ordinary and extraordinary axes.
	AxisO Axis = "o"
	AxisE Axis = "e"

	// AxisA / AxisB / AxisC are the biaxial principal axes.
	AxisA Axis = "a"
	AxisB Axis = "b"
	AxisC Axis = "c"
)

// Unpolarized is the documented default polarization. For isotropic
// materials every polarization value resolves to the same single index,
// so the default simply names that intent.
const Unpolarized = AxisIso

// Polarization is the sealed variant type selecting which index (or
// index mixture) the evaluator returns:
//
//	Axis        — a named principal axis ("iso", "o", "e", "a", "b", "c")
//	OpticAngle  — degrees from the optic axis (uniaxial mixing)
//	PlaneAngle  — biaxial principal-plane angle, degrees from axis a
//
// Which variants are meaningful depends on the material's axiality;
// refract.Index rejects mismatches with ErrInvalidPolarization.
type Polarization interface {
	polarization()
	fmt.Stringer
}

func (Axis) polarization() {}

// String returns the axis key itself.
func (x Axis) String() string { return string(x) }

// OpticAngle is a uniaxial polarization given as degrees from the optic
// axis: 0 selects the ordinary index, 90 the extraordinary one, and
// anything between mixes them on the index ellipsoid.
type OpticAngle float64

func (OpticAngle) polarization() {}

// String renders e.g. "45° from optic axis".
func (t OpticAngle) String() string {
	return fmt.Sprintf("%g° from optic axis", float64(t))
}

// PlaneAngle is a biaxial polarization: a direction in the principal
// plane spanned by reference axis a and the named axis, measured in
// degrees from axis a. Axis must be AxisB or AxisC — the plane "a with
// a" is degenerate.
type PlaneAngle struct {
	// Axis is the plane partner of reference axis a: AxisB or AxisC.
	Axis Axis

	// Degrees is the angle from axis a within that plane.
	Degrees float64
}

func (PlaneAngle) polarization() {}

// String renders e.g. "30° from a in a-c plane".
func (p PlaneAngle) String() string {
	return fmt.Sprintf("%g° from a in a-%s plane", p.Degrees, string(p.Axis))
}

// Range is a closed wavelength validity interval in microns: the span
// over which a material's Sellmeier fit approximates measured data.
type Range struct {
	// MinUM is the inclusive lower bound, microns.
	MinUM float64

	// MaxUM is the inclusive upper bound, microns.
	MaxUM float64
}

// Contains reports whether wavelengthUM lies inside the closed interval
// (both bounds inclusive).
func (r Range) Contains(wavelengthUM float64) bool {
	return wavelengthUM >= r.MinUM && wavelengthUM <= r.MaxUM
}

// String renders "[0.4, 5] µm".
func (r Range) String() string {
	return fmt.Sprintf("[%g, %g] µm", r.MinUM, r.MaxUM)
}
