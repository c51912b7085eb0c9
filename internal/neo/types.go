package neo

import "time"

// Object is a flattened near-Earth object from the NeoWs feed.
type Object struct {
	ID                     string  `json:"id"`
	Name                   string  `json:"name"`
	AbsoluteMagnitudeH     float64 `json:"absolute_magnitude_h"`
	EstimatedDiameterMinKm float64 `json:"estimated_diameter_min_km"`
	EstimatedDiameterMaxKm float64 `json:"estimated_diameter_max_km"`
	PotentiallyHazardous   bool    `json:"potentially_hazardous"`
	CloseApproachDate      string  `json:"close_approach_date,omitempty"`
	RelativeVelocityKmS    float64 `json:"relative_velocity_km_s,omitempty"`
	MissDistanceKm         float64 `json:"miss_distance_km,omitempty"`
}

// Dataset is a complete snapshot of NEO data from one fetch.
type Dataset struct {
	Source    string    `json:"source"`
	FetchedAt time.Time `json:"fetched_at"`
	Objects   []Object  `json:"objects"`
}
