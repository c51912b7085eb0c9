package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/Cryptdroid/meteor/internal/deflection"
	"github.com/Cryptdroid/meteor/internal/metrics"
	"github.com/Cryptdroid/meteor/internal/neo"
	"github.com/Cryptdroid/meteor/internal/physics"
	"github.com/Cryptdroid/meteor/internal/presets"
	"github.com/Cryptdroid/meteor/internal/sim"
)

// maxRequestBody bounds JSON request bodies.
const maxRequestBody = 1 << 20

// hiroshimaMegatons is the approximate Hiroshima yield, used for the
// energy-estimate comparison field.
const hiroshimaMegatons = 0.015

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeValidationError reports a rejected input, naming the offending field
// when the failure is an InvalidParameterError.
func writeValidationError(w http.ResponseWriter, err error) {
	var ipe *physics.InvalidParameterError
	if errors.As(err, &ipe) {
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"error": ipe.Error(),
			"field": ipe.Field,
		})
		return
	}
	writeError(w, http.StatusBadRequest, err.Error())
}

// simulateHandler runs the full impact pipeline for one parameter set.
func simulateHandler(logger *slog.Logger, engine *physics.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var params physics.ImpactParameters
		dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody))
		if err := dec.Decode(&params); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
			return
		}

		start := time.Now()
		result, err := engine.Simulate(params)
		if err != nil {
			writeValidationError(w, err)
			return
		}
		metrics.RecordSimulation(result.Classification, time.Since(start))

		logger.Debug("simulation complete",
			"diameter_m", params.DiameterM,
			"megatons", result.Energy.Megatons,
			"classification", result.Classification,
		)
		writeJSON(w, http.StatusOK, result)
	}
}

// energyEstimateHandler runs just the energy stage from query parameters.
func energyEstimateHandler(engine *physics.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		diameter, err := parseFloatParam(q.Get("diameter"), 0)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid diameter")
			return
		}
		velocity, err := parseFloatParam(q.Get("velocity"), 0)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid velocity")
			return
		}
		density, err := parseFloatParam(q.Get("density"), engine.Constants().DefaultDensityKgM3)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid density")
			return
		}
		angle, err := parseFloatParam(q.Get("angle"), 45)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid angle")
			return
		}

		params := physics.ImpactParameters{
			DiameterM:     diameter,
			DensityKgM3:   density,
			VelocityKmS:   velocity,
			EntryAngleDeg: angle,
		}
		if err := params.Validate(); err != nil {
			writeValidationError(w, err)
			return
		}

		energy := engine.ComputeEnergy(diameter, density, velocity, angle)
		writeJSON(w, http.StatusOK, map[string]any{
			"joules":               energy.Joules,
			"megatons_tnt":         energy.Megatons,
			"hiroshima_equivalent": energy.Megatons / hiroshimaMegatons,
		})
	}
}

// classifyHandler maps a megaton yield to its severity label.
func classifyHandler(engine *physics.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		megatons, err := strconv.ParseFloat(r.URL.Query().Get("megatons"), 64)
		if err != nil || megatons < 0 {
			writeError(w, http.StatusBadRequest, "megatons must be a non-negative number")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"energy_megatons": megatons,
			"classification":  engine.Classify(megatons),
		})
	}
}

// presetsHandler returns the static scenario catalog verbatim.
func presetsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"presets": presets.List()})
	}
}

// asteroidsHandler serves the flattened, sorted, truncated NEO dataset.
func asteroidsHandler(store *neo.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ds := store.Get()
		if ds == nil {
			writeError(w, http.StatusServiceUnavailable, "NEO dataset not loaded")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"count":        len(ds.Objects),
			"asteroids":    neo.Truncate(ds.Objects),
			"source":       ds.Source,
			"generated_at": ds.FetchedAt.UTC().Format(time.RFC3339),
		})
	}
}

// hazardousHandler fetches one catalog page upstream and returns only the
// potentially hazardous objects.
func hazardousHandler(logger *slog.Logger, client *neo.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		objects, err := client.FetchBrowse(r.Context(), 0, 20)
		if err != nil {
			logger.Warn("hazardous NEO fetch failed", "error", err)
			writeError(w, http.StatusServiceUnavailable, "upstream NEO service unavailable")
			return
		}

		hazardous := make([]neo.Object, 0, len(objects))
		for _, obj := range objects {
			if obj.PotentiallyHazardous {
				hazardous = append(hazardous, obj)
			}
		}
		neo.SortByDiameter(hazardous)

		writeJSON(w, http.StatusOK, map[string]any{
			"count":     len(hazardous),
			"asteroids": hazardous,
			"source":    "NASA NeoWs API - PHAs only",
		})
	}
}

// asteroidLookupHandler proxies a single object detail fetch by NeoWs ID.
func asteroidLookupHandler(logger *slog.Logger, client *neo.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		obj, err := client.FetchLookup(r.Context(), id)
		if err != nil {
			if errors.Is(err, neo.ErrNotFound) {
				writeError(w, http.StatusNotFound, "no asteroid with id "+id)
				return
			}
			logger.Warn("NEO lookup failed", "id", id, "error", err)
			writeError(w, http.StatusServiceUnavailable, "upstream NEO service unavailable")
			return
		}
		writeJSON(w, http.StatusOK, obj)
	}
}

// statisticsHandler summarizes the current NEO dataset.
func statisticsHandler(store *neo.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ds := store.Get()
		if ds == nil {
			writeError(w, http.StatusServiceUnavailable, "NEO dataset not loaded")
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"statistics":   neo.ComputeStatistics(ds.Objects),
			"source":       ds.Source,
			"generated_at": ds.FetchedAt.UTC().Format(time.RFC3339),
		})
	}
}

// neoSimulateHandler runs the what-if batch: every listed object hitting a
// default land target.
func neoSimulateHandler(logger *slog.Logger, runner *sim.Runner, store *neo.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ds := store.Get()
		if ds == nil {
			writeError(w, http.StatusServiceUnavailable, "NEO dataset not loaded")
			return
		}

		items := sim.FromNEO(neo.Truncate(ds.Objects))
		results, success, errs := runner.RunBatch(r.Context(), items)

		logger.Debug("NEO batch simulation complete", "items", len(items), "success", success, "errors", errs)
		writeJSON(w, http.StatusOK, map[string]any{
			"count":   len(results),
			"success": success,
			"errors":  errs,
			"results": results,
		})
	}
}

// deflectionCalculateHandler evaluates one mitigation strategy.
func deflectionCalculateHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req deflection.Request
		dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody))
		if err := dec.Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
			return
		}

		result, err := deflection.Calculate(req)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, result)
	}
}

// deflectionStrategiesHandler returns the static strategy catalog.
func deflectionStrategiesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"strategies": deflection.Strategies()})
	}
}

// parseFloatParam parses an optional query value, returning fallback when absent.
func parseFloatParam(s string, fallback float64) (float64, error) {
	if s == "" {
		return fallback, nil
	}
	return strconv.ParseFloat(s, 64)
}
