package physics

// Constants holds the physical constants the engine computes with.
// Immutable after construction; the engine never mutates it.
type Constants struct {
	EarthRadiusKm   float64 // mean Earth radius (km)
	GravityMS2      float64 // surface gravitational acceleration (m/s²)
	TNTJoulesPerTon float64 // energy released by one ton of TNT (J)

	DefaultDensityKgM3       float64 // rocky asteroid bulk density (kg/m³)
	DefaultPopulationPerKm2  float64 // population density assumed when unspecified
	WaterTargetDensityKgM3   float64 // ocean water (kg/m³)
	RockTargetDensityKgM3    float64 // crustal rock (kg/m³)
	RockTargetStrengthPa     float64 // cohesive strength of rock targets (Pa)
	SeismicCouplingFraction  float64 // fraction of impact energy converted to seismic waves
	OverpressureCasualtyRate float64 // fatality rate inside the overpressure zone

	// Crater regime parameters.
	ComplexTransientRadiusM float64 // transient radius above which the crater is complex (m)
	ComplexCollapseFactor   float64 // rim-collapse enlargement for complex craters
	MaxRadiusMultiple       float64 // final radius cap as a multiple of projectile radius
	ComplexDepthThresholdM  float64 // final diameter above which the 1:8 depth ratio applies (m)
}

// DefaultConstants returns the canonical constant set, following
// Collins et al. (2005) and Holsapple (1993) where applicable.
func DefaultConstants() Constants {
	return Constants{
		EarthRadiusKm:   6371,
		GravityMS2:      9.81,
		TNTJoulesPerTon: 4.184e9,

		DefaultDensityKgM3:       2600,
		DefaultPopulationPerKm2:  50,
		WaterTargetDensityKgM3:   1000,
		RockTargetDensityKgM3:    2700,
		RockTargetStrengthPa:     1e7,
		SeismicCouplingFraction:  1e-5,
		OverpressureCasualtyRate: 0.5,

		ComplexTransientRadiusM: 2000,
		ComplexCollapseFactor:   1.25,
		MaxRadiusMultiple:       50,
		ComplexDepthThresholdM:  4000,
	}
}

// JoulesPerMegaton returns the joules equivalent of one megaton of TNT.
func (c Constants) JoulesPerMegaton() float64 {
	return c.TNTJoulesPerTon * 1e6
}

// ClassificationBand maps an upper energy bound to a severity label.
type ClassificationBand struct {
	MaxMegatons float64 // exclusive upper bound; 0 means unbounded (catch-all)
	Label       string
}

// ClassificationTable is an ordered list of severity bands. The first band
// whose MaxMegatons exceeds the energy wins; the final band must be the
// unbounded catch-all.
type ClassificationTable []ClassificationBand

// DefaultClassification returns the canonical severity table. The top band
// starts at 1e7 Mt rather than the 1e8 Mt sometimes quoted: that figure
// assumed no ablation or entry-angle attenuation, and this engine applies
// both, so a Chicxulub-class impactor still lands in the extinction band.
func DefaultClassification() ClassificationTable {
	return ClassificationTable{
		{MaxMegatons: 0.1, Label: "Minimal damage"},
		{MaxMegatons: 1, Label: "Local damage"},
		{MaxMegatons: 100, Label: "City-wide damage"},
		{MaxMegatons: 1000, Label: "Regional devastation"},
		{MaxMegatons: 1e4, Label: "Continental impact"},
		{MaxMegatons: 1e7, Label: "Global climate effects"},
		{Label: "Mass extinction event"},
	}
}

// Classify returns the label of the first band containing energyMegatons.
func (t ClassificationTable) Classify(energyMegatons float64) string {
	for _, band := range t {
		if band.MaxMegatons == 0 {
			return band.Label
		}
		if energyMegatons < band.MaxMegatons {
			return band.Label
		}
	}
	return "Unclassified"
}
