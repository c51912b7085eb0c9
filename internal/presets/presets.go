// Package presets holds the static named impact scenarios offered for
// client-side selection. The list is data, not computation: parameter sets
// are returned verbatim and fed to the engine only when a client runs one.
package presets

import "github.com/Cryptdroid/meteor/internal/physics"

// Preset is a named, ready-to-run parameter set.
type Preset struct {
	Name        string                   `json:"name"`
	Description string                   `json:"description"`
	Parameters  physics.ImpactParameters `json:"parameters"`
}

// scenarios is ordered from least to most severe.
var scenarios = []Preset{
	{
		Name:        "Chelyabinsk (2013)",
		Description: "Similar to the 2013 Russian fireball",
		Parameters: physics.ImpactParameters{
			DiameterM:     20,
			DensityKgM3:   2600,
			VelocityKmS:   19.16,
			EntryAngleDeg: 18,
		},
	},
	{
		Name:        "Tunguska (1908)",
		Description: "Similar to the 1908 Siberian event",
		Parameters: physics.ImpactParameters{
			DiameterM:     50,
			DensityKgM3:   2600,
			VelocityKmS:   15,
			EntryAngleDeg: 45,
		},
	},
	{
		Name:        "City Killer",
		Description: "Hypothetical urban impact scenario",
		Parameters: physics.ImpactParameters{
			DiameterM:     100,
			DensityKgM3:   2600,
			VelocityKmS:   20,
			EntryAngleDeg: 45,
		},
	},
	{
		Name:        "Regional Devastator",
		Description: "Major regional impact",
		Parameters: physics.ImpactParameters{
			DiameterM:     500,
			DensityKgM3:   2600,
			VelocityKmS:   25,
			EntryAngleDeg: 45,
		},
	},
	{
		Name:        "Chicxulub-class",
		Description: "Similar to the dinosaur extinction event",
		Parameters: physics.ImpactParameters{
			DiameterM:     10000,
			DensityKgM3:   2600,
			VelocityKmS:   20,
			EntryAngleDeg: 60,
		},
	},
}

// List returns the preset scenarios in severity order.
// The returned slice is a copy; callers may not mutate the catalog.
func List() []Preset {
	out := make([]Preset, len(scenarios))
	copy(out, scenarios)
	return out
}

// Find returns the preset with the given name, or false if none matches.
func Find(name string) (Preset, bool) {
	for _, p := range scenarios {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}
