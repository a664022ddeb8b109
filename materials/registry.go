package materials

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/crystalline/crystal"
)

// ErrUnknownMaterial indicates a name with no registered material.
// Lookup is case-insensitive, so this fires only for genuinely
// unregistered materials.
var ErrUnknownMaterial = errors.New("materials: unknown material")

// Factory builds a fresh Descriptor for one material. Every call
// returns a new value; mutating it never affects the registry or other
// callers.
type Factory func() *crystal.Descriptor

// registry maps lowercased material names to their factories. Populated
// here once, read-only afterwards — no runtime registration.
var registry = map[string]Factory{
	"linbo3": LiNbO3,
	"bamgf4": BaMgF4,
	"sio2":   SiO2,
	"bbo":    BBO,
	"kdp":    KDP,
	"ktp":    KTP,
	"znse":   ZnSe,
}

// Get resolves a material by name (case-insensitive) and returns a
// fresh Descriptor. Returns ErrUnknownMaterial (wrapped with the
// requested name) when nothing is registered under it.
func Get(name string) (*crystal.Descriptor, error) {
	factory, ok := registry[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("Get: %q: %w", name, ErrUnknownMaterial)
	}

	return factory(), nil
}

// Names returns the canonical names of all registered materials, sorted
// ascending.
func Names() []string {
	names := make([]string, 0, len(registry))
	for key := range registry {
		names = append(names, registry[key]().Name)
	}
	sort.Strings(names)

	return names
}

// All builds every registered material and returns them keyed by
// canonical name. The map and its Descriptors are fresh values owned by
// the caller.
func All() map[string]*crystal.Descriptor {
	out := make(map[string]*crystal.Descriptor, len(registry))
	for key := range registry {
		d := registry[key]()
		out[d.Name] = d
	}

	return out
}
