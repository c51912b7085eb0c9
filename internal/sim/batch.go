// Package sim fans simulation batches across a fixed worker pool. The
// physics engine itself is pure and stateless, so parallelism lives entirely
// at this boundary.
package sim

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/Cryptdroid/meteor/internal/metrics"
	"github.com/Cryptdroid/meteor/internal/neo"
	"github.com/Cryptdroid/meteor/internal/physics"
)

// NamedParameters is one batch item: a label plus its parameter set.
type NamedParameters struct {
	Name       string                   `json:"name"`
	Parameters physics.ImpactParameters `json:"parameters"`
}

// ItemResult is the per-item outcome. Exactly one of Result and Error is set.
type ItemResult struct {
	Name   string                    `json:"name"`
	Result *physics.SimulationResult `json:"result,omitempty"`
	Error  string                    `json:"error,omitempty"`
}

// batchJob is a unit of work for the worker pool.
type batchJob struct {
	index int
	item  NamedParameters
}

// Runner executes simulation batches with a fixed number of workers.
type Runner struct {
	engine  *physics.Engine
	workers int
	logger  *slog.Logger
}

// NewRunner creates a batch runner with the given number of workers.
func NewRunner(engine *physics.Engine, workers int, logger *slog.Logger) *Runner {
	if workers < 1 {
		workers = 1
	}
	return &Runner{
		engine:  engine,
		workers: workers,
		logger:  logger,
	}
}

// RunBatch simulates every item and returns results in input order.
// Invalid items are reported in place rather than failing the batch.
// Returns the results plus success and error counts.
func (r *Runner) RunBatch(ctx context.Context, items []NamedParameters) ([]ItemResult, int, int) {
	if len(items) == 0 {
		return nil, 0, 0
	}

	results := make([]ItemResult, len(items))
	jobs := make(chan batchJob, r.workers*2)

	var wg sync.WaitGroup
	for i := 0; i < r.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				// Indexes are unique per job, so no locking is needed.
				results[job.index] = r.runOne(job.item)
			}
		}()
	}

feed:
	for i, item := range items {
		select {
		case jobs <- batchJob{index: i, item: item}:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()

	var successCount, errorCount int
	for i := range results {
		switch {
		case results[i].Result != nil:
			successCount++
		case results[i].Error != "":
			errorCount++
			r.logger.Warn("batch simulation item failed",
				"name", results[i].Name,
				"error", results[i].Error,
			)
		default:
			// Cancelled before the item was scheduled.
			results[i] = ItemResult{Name: items[i].Name, Error: context.Canceled.Error()}
			errorCount++
		}
	}

	return results, successCount, errorCount
}

func (r *Runner) runOne(item NamedParameters) ItemResult {
	start := time.Now()
	res, err := r.engine.Simulate(item.Parameters)
	if err != nil {
		return ItemResult{Name: item.Name, Error: err.Error()}
	}
	metrics.RecordSimulation(res.Classification, time.Since(start))
	return ItemResult{Name: item.Name, Result: res}
}

// Hypothetical impact assumptions for NEO what-if runs: entry at the median
// angle, land target, default density and population density.
const (
	neoDefaultAngleDeg   = 45.0
	neoFallbackVelocity  = 20.0 // km/s, used when the feed has no approach data
	neoMinDiameterMeters = 1.0
)

// FromNEO converts a flattened NEO list into batch items using each object's
// maximum estimated diameter and close-approach velocity.
func FromNEO(objects []neo.Object) []NamedParameters {
	items := make([]NamedParameters, 0, len(objects))
	for _, obj := range objects {
		diameterM := obj.EstimatedDiameterMaxKm * 1000
		if diameterM < neoMinDiameterMeters {
			diameterM = neoMinDiameterMeters
		}
		velocity := obj.RelativeVelocityKmS
		if velocity <= 0 {
			velocity = neoFallbackVelocity
		}
		items = append(items, NamedParameters{
			Name: obj.Name,
			Parameters: physics.ImpactParameters{
				DiameterM:     diameterM,
				VelocityKmS:   velocity,
				EntryAngleDeg: neoDefaultAngleDeg,
			},
		})
	}
	return items
}
