package refract_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/crystalline/crystal"
	"github.com/katalvlaran/crystalline/materials"
	"github.com/katalvlaran/crystalline/refract"
)

// ExampleIndex demonstrates the classic uniaxial lookup: both principal
// indices of lithium niobate at the Nd:YAG line.
func ExampleIndex() {
	d, _ := materials.Get("LiNbO3")

	no, _ := refract.Index(d, 1064, crystal.AxisO)
	ne, _ := refract.Index(d, 1064, crystal.AxisE)

	fmt.Printf("n_o=%.4f n_e=%.4f\n", no, ne)
	// Output:
	// n_o=2.2235 n_e=2.1555
}

// ExampleIndex_opticAngle shows the effective index for a wave at 45°
// from the optic axis — between n_e and n_o for a negative uniaxial
// crystal.
func ExampleIndex_opticAngle() {
	d, _ := materials.Get("LiNbO3")

	n, _ := refract.Index(d, 1064, crystal.OpticAngle(45))

	fmt.Printf("n(45°)=%.4f\n", n)
	// Output:
	// n(45°)=2.1887
}

// ExampleIndex_isotropic shows that polarization carries no information
// for a cubic material: there is only one index.
func ExampleIndex_isotropic() {
	d, _ := materials.Get("ZnSe")

	n, _ := refract.Index(d, 1064, crystal.Unpolarized)

	fmt.Printf("n=%.4f\n", n)
	// Output:
	// n=2.4720
}

// ExampleIndex_outOfRange shows the error taxonomy in action: requests
// outside the fitted range report the value and the bounds, and callers
// branch with errors.Is.
func ExampleIndex_outOfRange() {
	d, _ := materials.Get("LiNbO3") // fitted for 0.4–5.0 µm

	_, err := refract.Index(d, 10600, crystal.AxisO) // CO₂ laser line
	fmt.Println(errors.Is(err, refract.ErrOutOfRange))
	fmt.Println(err)
	// Output:
	// true
	// Index(LiNbO3): 10.6 µm outside [0.4, 5] µm: refract: wavelength outside valid range
}

// ExamplePrincipal lists every principal index of a biaxial material at
// once.
func ExamplePrincipal() {
	d, _ := materials.Get("KTP")

	all, _ := refract.Principal(d, 1064)

	fmt.Printf("n_a=%.4f n_b=%.4f n_c=%.4f\n",
		all[crystal.AxisA], all[crystal.AxisB], all[crystal.AxisC])
	// Output:
	// n_a=1.7399 n_b=1.7480 n_c=1.8296
}

// ExampleBirefringence reports n_e − n_o: negative for a negative
// uniaxial crystal like LiNbO₃.
func ExampleBirefringence() {
	d, _ := materials.Get("LiNbO3")

	dn, _ := refract.Birefringence(d, 1064)

	fmt.Printf("Δn=%.4f\n", dn)
	// Output:
	// Δn=-0.0680
}
