package neo

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
)

// MaxListedObjects caps how many objects list endpoints return after sorting.
const MaxListedObjects = 50

// feedResponse mirrors the NeoWs /feed payload: objects grouped by date.
type feedResponse struct {
	NearEarthObjects map[string][]rawObject `json:"near_earth_objects"`
}

// browseResponse mirrors the NeoWs /neo/browse payload: a flat page.
type browseResponse struct {
	NearEarthObjects []rawObject `json:"near_earth_objects"`
}

type rawObject struct {
	ID                   string  `json:"id"`
	Name                 string  `json:"name"`
	AbsoluteMagnitudeH   float64 `json:"absolute_magnitude_h"`
	PotentiallyHazardous bool    `json:"is_potentially_hazardous_asteroid"`
	EstimatedDiameter    struct {
		Kilometers struct {
			Min float64 `json:"estimated_diameter_min"`
			Max float64 `json:"estimated_diameter_max"`
		} `json:"kilometers"`
	} `json:"estimated_diameter"`
	CloseApproachData []struct {
		Date             string `json:"close_approach_date"`
		RelativeVelocity struct {
			KilometersPerSecond string `json:"kilometers_per_second"`
		} `json:"relative_velocity"`
		MissDistance struct {
			Kilometers string `json:"kilometers"`
		} `json:"miss_distance"`
	} `json:"close_approach_data"`
}

// ParseFeed flattens a NeoWs feed payload across its per-date groups.
// Objects with unparseable numeric fields keep their zero values; the entry
// itself is only skipped when it has no ID.
func ParseFeed(data []byte, logger *slog.Logger) ([]Object, error) {
	var feed feedResponse
	if err := json.Unmarshal(data, &feed); err != nil {
		return nil, fmt.Errorf("decoding NEO feed: %w", err)
	}

	var objects []Object
	for date, group := range feed.NearEarthObjects {
		for _, raw := range group {
			obj, ok := flatten(raw, logger)
			if !ok {
				logger.Warn("skipping malformed NEO entry", "date", date, "name", raw.Name)
				continue
			}
			objects = append(objects, obj)
		}
	}
	return objects, nil
}

// ParseBrowse flattens a NeoWs browse page.
func ParseBrowse(data []byte, logger *slog.Logger) ([]Object, error) {
	var page browseResponse
	if err := json.Unmarshal(data, &page); err != nil {
		return nil, fmt.Errorf("decoding NEO browse page: %w", err)
	}

	var objects []Object
	for _, raw := range page.NearEarthObjects {
		obj, ok := flatten(raw, logger)
		if !ok {
			logger.Warn("skipping malformed NEO entry", "name", raw.Name)
			continue
		}
		objects = append(objects, obj)
	}
	return objects, nil
}

// ParseLookup decodes a single NeoWs object detail payload.
func ParseLookup(data []byte, logger *slog.Logger) (Object, error) {
	var raw rawObject
	if err := json.Unmarshal(data, &raw); err != nil {
		return Object{}, fmt.Errorf("decoding NEO lookup: %w", err)
	}
	obj, ok := flatten(raw, logger)
	if !ok {
		return Object{}, fmt.Errorf("NEO lookup payload has no id")
	}
	return obj, nil
}

func flatten(raw rawObject, logger *slog.Logger) (Object, bool) {
	if raw.ID == "" {
		return Object{}, false
	}

	obj := Object{
		ID:                     raw.ID,
		Name:                   raw.Name,
		AbsoluteMagnitudeH:     raw.AbsoluteMagnitudeH,
		EstimatedDiameterMinKm: raw.EstimatedDiameter.Kilometers.Min,
		EstimatedDiameterMaxKm: raw.EstimatedDiameter.Kilometers.Max,
		PotentiallyHazardous:   raw.PotentiallyHazardous,
	}

	// NeoWs serializes approach numerics as strings; take the first approach.
	if len(raw.CloseApproachData) > 0 {
		approach := raw.CloseApproachData[0]
		obj.CloseApproachDate = approach.Date
		if v, err := strconv.ParseFloat(approach.RelativeVelocity.KilometersPerSecond, 64); err == nil {
			obj.RelativeVelocityKmS = v
		} else {
			logger.Warn("unparseable NEO velocity", "id", raw.ID, "value", approach.RelativeVelocity.KilometersPerSecond)
		}
		if v, err := strconv.ParseFloat(approach.MissDistance.Kilometers, 64); err == nil {
			obj.MissDistanceKm = v
		}
	}

	return obj, true
}

// SortByDiameter orders objects by maximum estimated diameter, largest first.
func SortByDiameter(objects []Object) {
	sort.SliceStable(objects, func(i, j int) bool {
		return objects[i].EstimatedDiameterMaxKm > objects[j].EstimatedDiameterMaxKm
	})
}

// Truncate returns at most MaxListedObjects entries.
func Truncate(objects []Object) []Object {
	if len(objects) > MaxListedObjects {
		return objects[:MaxListedObjects]
	}
	return objects
}
