package neo

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Statistics summarizes the current NEO dataset for the statistics endpoint.
type Statistics struct {
	Count          int `json:"count"`
	HazardousCount int `json:"hazardous_count"`

	MeanDiameterKm   float64 `json:"mean_diameter_km"`
	MedianDiameterKm float64 `json:"median_diameter_km"`
	StdDevDiameterKm float64 `json:"stddev_diameter_km"`
	MaxDiameterKm    float64 `json:"max_diameter_km"`

	MeanVelocityKmS float64 `json:"mean_velocity_km_s"`
	MaxVelocityKmS  float64 `json:"max_velocity_km_s"`
}

// ComputeStatistics derives summary statistics over a flattened object list.
// Diameters use the maximum estimate; velocity statistics only cover objects
// with close-approach data.
func ComputeStatistics(objects []Object) Statistics {
	s := Statistics{Count: len(objects)}
	if len(objects) == 0 {
		return s
	}

	diameters := make([]float64, 0, len(objects))
	var velocities []float64
	for _, obj := range objects {
		if obj.PotentiallyHazardous {
			s.HazardousCount++
		}
		diameters = append(diameters, obj.EstimatedDiameterMaxKm)
		if obj.RelativeVelocityKmS > 0 {
			velocities = append(velocities, obj.RelativeVelocityKmS)
		}
	}

	sort.Float64s(diameters)
	s.MeanDiameterKm = stat.Mean(diameters, nil)
	s.MedianDiameterKm = stat.Quantile(0.5, stat.Empirical, diameters, nil)
	s.MaxDiameterKm = diameters[len(diameters)-1]
	if len(diameters) > 1 {
		s.StdDevDiameterKm = stat.StdDev(diameters, nil)
	}

	if len(velocities) > 0 {
		sort.Float64s(velocities)
		s.MeanVelocityKmS = stat.Mean(velocities, nil)
		s.MaxVelocityKmS = velocities[len(velocities)-1]
	}

	return s
}
