package neo

import (
	"context"
	"log/slog"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/Cryptdroid/meteor/internal/metrics"
)

// RefresherConfig controls the background feed refresh loop.
type RefresherConfig struct {
	Interval   time.Duration // time between refetches
	FeedWindow time.Duration // close-approach window length per fetch (NeoWs caps at 7 days)
}

// Refresher keeps the Store populated with fresh feed data, writing each
// successful snapshot to the disk cache. The clock is injected so tests can
// drive the schedule.
type Refresher struct {
	client *Client
	store  *Store
	cache  *Cache
	config RefresherConfig
	clock  clockwork.Clock
	logger *slog.Logger
}

// NewRefresher creates a refresher. A nil clock selects the real one;
// a nil cache disables snapshotting.
func NewRefresher(client *Client, store *Store, cache *Cache, config RefresherConfig, clock clockwork.Clock, logger *slog.Logger) *Refresher {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Refresher{
		client: client,
		store:  store,
		cache:  cache,
		config: config,
		clock:  clock,
		logger: logger,
	}
}

// Run refreshes immediately, then on every interval tick until ctx is done.
func (r *Refresher) Run(ctx context.Context) {
	r.RefreshOnce(ctx)

	ticker := r.clock.NewTicker(r.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.Chan():
			r.RefreshOnce(ctx)
		case <-ctx.Done():
			return
		}
	}
}

// RefreshOnce fetches the feed window starting now and replaces the dataset.
// Failures leave the previous dataset in place.
func (r *Refresher) RefreshOnce(ctx context.Context) {
	now := r.clock.Now()
	objects, err := r.client.FetchFeed(ctx, now, now.Add(r.config.FeedWindow))
	metrics.RecordNEOFetch(err == nil)
	if err != nil {
		r.logger.Warn("NEO feed refresh failed, keeping previous dataset", "error", err)
		return
	}

	SortByDiameter(objects)
	ds := &Dataset{
		Source:    "NASA NeoWs API",
		FetchedAt: now,
		Objects:   objects,
	}
	r.store.Set(ds)
	metrics.SetNEODatasetCount(len(objects))

	if r.cache != nil {
		if err := r.cache.Write(ds); err != nil {
			r.logger.Warn("failed to write NEO cache snapshot", "error", err)
		}
	}

	r.logger.Info("NEO dataset refreshed", "count", len(objects), "fetched_at", now.UTC().Format(time.RFC3339))
}
