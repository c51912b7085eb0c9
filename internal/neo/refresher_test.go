package neo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefreshOncePopulatesStore(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(feedPayload))
	}))
	defer server.Close()

	clock := clockwork.NewFakeClockAt(time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC))
	store := NewStore()
	client := NewClient(server.URL, "k", testLogger)
	r := NewRefresher(client, store, nil, RefresherConfig{Interval: time.Hour, FeedWindow: 7 * 24 * time.Hour}, clock, testLogger)

	r.RefreshOnce(context.Background())

	ds := store.Get()
	require.NotNil(t, ds)
	assert.Len(t, ds.Objects, 2)
	assert.True(t, ds.FetchedAt.Equal(clock.Now()))

	// Objects arrive sorted largest first.
	assert.Equal(t, "2153306", ds.Objects[0].ID)
}

func TestRefreshOnceKeepsDatasetOnFailure(t *testing.T) {
	var fail atomic.Bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail.Load() {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(feedPayload))
	}))
	defer server.Close()

	clock := clockwork.NewFakeClock()
	store := NewStore()
	client := NewClient(server.URL, "k", testLogger)
	r := NewRefresher(client, store, nil, RefresherConfig{Interval: time.Hour, FeedWindow: 24 * time.Hour}, clock, testLogger)

	r.RefreshOnce(context.Background())
	first := store.Get()
	require.NotNil(t, first)

	fail.Store(true)
	r.RefreshOnce(context.Background())
	assert.Same(t, first, store.Get(), "failed refresh must not replace the dataset")
}

func TestRefresherRunSchedule(t *testing.T) {
	var requests atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.Write([]byte(feedPayload))
	}))
	defer server.Close()

	clock := clockwork.NewFakeClock()
	store := NewStore()
	client := NewClient(server.URL, "k", testLogger)
	r := NewRefresher(client, store, nil, RefresherConfig{Interval: time.Hour, FeedWindow: 24 * time.Hour}, clock, testLogger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go r.Run(ctx)

	// Initial refresh happens before the ticker starts.
	require.Eventually(t, func() bool { return requests.Load() == 1 }, 2*time.Second, 10*time.Millisecond)

	// Wait for the ticker, then advance past one interval.
	clock.BlockUntil(1)
	clock.Advance(time.Hour + time.Minute)
	require.Eventually(t, func() bool { return requests.Load() == 2 }, 2*time.Second, 10*time.Millisecond)
}
