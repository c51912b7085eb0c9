package physics

import (
	"fmt"
	"math"
)

// ImpactParameters are the raw inputs to a simulation.
// Zero-valued density and population density are filled from the engine's
// defaults before validation.
type ImpactParameters struct {
	DiameterM               float64 `json:"diameter_m"`
	DensityKgM3             float64 `json:"density_kg_m3"`
	VelocityKmS             float64 `json:"velocity_km_s"`
	EntryAngleDeg           float64 `json:"entry_angle_deg"`
	TargetIsWater           bool    `json:"target_is_water"`
	PopulationDensityPerKm2 float64 `json:"population_density_per_km2"`
}

// InvalidParameterError reports a rejected input field. Primary physical
// inputs are never silently clamped; only derived values are.
type InvalidParameterError struct {
	Field  string
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s: %s", e.Field, e.Reason)
}

// Validate rejects parameters outside the valid physical domain.
// Expects defaults to have been applied already.
func (p ImpactParameters) Validate() error {
	if badNumber(p.DiameterM) || p.DiameterM <= 0 {
		return &InvalidParameterError{Field: "diameter_m", Reason: "must be a positive number"}
	}
	if badNumber(p.DensityKgM3) || p.DensityKgM3 <= 0 {
		return &InvalidParameterError{Field: "density_kg_m3", Reason: "must be a positive number"}
	}
	if badNumber(p.VelocityKmS) || p.VelocityKmS <= 0 {
		return &InvalidParameterError{Field: "velocity_km_s", Reason: "must be a positive number"}
	}
	if badNumber(p.EntryAngleDeg) || p.EntryAngleDeg <= 0 || p.EntryAngleDeg > 90 {
		return &InvalidParameterError{Field: "entry_angle_deg", Reason: "must be in (0, 90]"}
	}
	if badNumber(p.PopulationDensityPerKm2) || p.PopulationDensityPerKm2 < 0 {
		return &InvalidParameterError{Field: "population_density_per_km2", Reason: "must be non-negative"}
	}
	return nil
}

func badNumber(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}

// EnergyResult is the kinetic energy delivered at the surface.
type EnergyResult struct {
	Joules   float64 `json:"joules"`
	Megatons float64 `json:"megatons_tnt"`
}

// CraterResult holds final crater dimensions in meters.
type CraterResult struct {
	DiameterM float64 `json:"diameter_m"`
	DepthM    float64 `json:"depth_m"`
}

// SeismicResult holds the Richter-equivalent magnitude and felt radius.
type SeismicResult struct {
	Magnitude        float64 `json:"magnitude"`
	AffectedRadiusKm float64 `json:"affected_radius_km"`
}

// TsunamiResult holds wave effects for water-target impacts.
type TsunamiResult struct {
	WaveHeightM      float64 `json:"wave_height_m"`
	AffectedRadiusKm float64 `json:"affected_radius_km"`
}

// AtmosphericResult holds blast and thermal effect radii in kilometers.
type AtmosphericResult struct {
	FireballRadiusKm     float64 `json:"fireball_radius_km"`
	ThermalRadiusKm      float64 `json:"thermal_radius_km"`
	OverpressureRadiusKm float64 `json:"overpressure_radius_km"`
}

// CasualtyResult holds population exposure inside the overpressure zone.
type CasualtyResult struct {
	AffectedPopulation  int64 `json:"affected_population"`
	EstimatedCasualties int64 `json:"estimated_casualties"`
}

// SimulationResult is the full layered output of one simulation.
// Tsunami is nil unless the target is water.
type SimulationResult struct {
	Parameters     ImpactParameters  `json:"parameters"`
	Energy         EnergyResult      `json:"energy"`
	Crater         CraterResult      `json:"crater"`
	Seismic        SeismicResult     `json:"seismic"`
	Tsunami        *TsunamiResult    `json:"tsunami,omitempty"`
	Atmospheric    AtmosphericResult `json:"atmospheric"`
	Casualties     CasualtyResult    `json:"casualties"`
	Classification string            `json:"classification"`
}
