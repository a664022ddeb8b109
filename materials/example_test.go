package materials_test

import (
	"fmt"

	"github.com/katalvlaran/crystalline/materials"
)

// ExampleNames lists the built-in material set.
func ExampleNames() {
	fmt.Println(materials.Names())
	// Output:
	// [BBO BaMgF4 KDP KTP LiNbO3 SiO2 ZnSe]
}

// ExampleGet resolves a material and inspects its symmetry metadata and
// Kleinman-reduced d-matrix structure.
func ExampleGet() {
	d, _ := materials.Get("linbo3") // lookup is case-insensitive

	ax, _ := d.Axiality()
	fmt.Println(d.Name, d.System, d.PointGroup, ax)
	fmt.Println(d.Tensor.Select(true))
	// Output:
	// LiNbO3 trigonal 3m uniaxial
	// [[0 0 0 0 d31 -d22] [-d22 d22 0 d31 0 0] [d31 d31 d33 0 0 0]]
}
