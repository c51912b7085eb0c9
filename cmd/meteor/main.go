package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/Cryptdroid/meteor/internal/api"
	"github.com/Cryptdroid/meteor/internal/auth"
	"github.com/Cryptdroid/meteor/internal/metrics"
	"github.com/Cryptdroid/meteor/internal/neo"
	"github.com/Cryptdroid/meteor/internal/physics"
	"github.com/Cryptdroid/meteor/internal/sim"
	"github.com/Cryptdroid/meteor/web"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	apiCfg := loadAPIConfig(logger)

	authCfg, err := loadAuthConfig(logger)
	if err != nil {
		logger.Error("invalid auth configuration", "error", err)
		os.Exit(1)
	}

	engine := physics.NewEngine(physics.DefaultConstants(), nil)

	batchCfg := loadBatchConfig(logger)
	runner := sim.NewRunner(engine, batchCfg.Workers, logger)
	metrics.SetBatchWorkersActive(batchCfg.Workers)

	neoCfg := loadNEOConfig(logger)
	store := neo.NewStore()
	client := neo.NewClient(neoCfg.BaseURL, neoCfg.APIKey, logger)
	neoCache := neo.NewCache(neoCfg.CacheDir, neoCfg.MaxFiles)

	// Attempt to load cached NEO data on startup so the asteroid endpoints
	// work before the first upstream fetch completes.
	if ds, err := neoCache.LoadLatest(); err != nil {
		logger.Info("no NEO cache found, starting without asteroid data", "error", err)
	} else {
		store.Set(ds)
		metrics.SetNEODatasetCount(len(ds.Objects))
		logger.Info("loaded NEO data from cache",
			"count", len(ds.Objects),
			"cached_at", ds.FetchedAt.Format(time.RFC3339),
		)
	}

	srv := api.NewServer(apiCfg, logger, authCfg, engine, runner, store, client, web.Content)

	// Graceful shutdown on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if neoCfg.EnableFetch {
		refresher := neo.NewRefresher(client, store, neoCache, neo.RefresherConfig{
			Interval:   neoCfg.RefreshInterval,
			FeedWindow: neoCfg.FeedWindow,
		}, nil, logger)
		go refresher.Run(ctx)
	}

	// Background goroutine to update the NEO dataset age gauge.
	go func() {
		ticker := time.NewTicker(10 * time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				age := store.AgeSeconds()
				if age >= 0 {
					metrics.SetNEODatasetAge(age)
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		logger.Info("starting server",
			"addr", apiCfg.Addr,
			"auth_enabled", authCfg.Enabled,
			"neo_fetch_enabled", neoCfg.EnableFetch,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server listen error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.HTTPServer().Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}

func loadAPIConfig(logger *slog.Logger) api.Config {
	cfg := api.Config{
		Addr:           ":8080",
		AllowedOrigins: []string{"*"},
		SimulateRPS:    10,
		SimulateBurst:  20,
	}

	if v := os.Getenv("METEOR_HTTP_ADDR"); v != "" {
		cfg.Addr = v
	}

	if v := os.Getenv("METEOR_TRUST_PROXY"); v != "" {
		trust, err := strconv.ParseBool(v)
		if err != nil {
			logger.Warn("invalid METEOR_TRUST_PROXY value, defaulting to false", "value", v)
		} else {
			cfg.TrustProxy = trust
		}
	}

	if v := os.Getenv("METEOR_ALLOWED_ORIGINS"); v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			o = strings.TrimSpace(o)
			if o != "" {
				origins = append(origins, o)
			}
		}
		if len(origins) > 0 {
			cfg.AllowedOrigins = origins
		}
	}

	if v := os.Getenv("METEOR_SIMULATE_RPS"); v != "" {
		rps, err := strconv.ParseFloat(v, 64)
		if err != nil || rps < 0 {
			logger.Warn("invalid METEOR_SIMULATE_RPS value, using default", "value", v, "default", cfg.SimulateRPS)
		} else {
			cfg.SimulateRPS = rps
		}
	}

	if v := os.Getenv("METEOR_SIMULATE_BURST"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			logger.Warn("invalid METEOR_SIMULATE_BURST value, using default", "value", v, "default", cfg.SimulateBurst)
		} else {
			cfg.SimulateBurst = n
		}
	}

	logger.Info("api config",
		"addr", cfg.Addr,
		"trust_proxy", cfg.TrustProxy,
		"allowed_origins", cfg.AllowedOrigins,
		"simulate_rps", cfg.SimulateRPS,
		"simulate_burst", cfg.SimulateBurst,
	)

	return cfg
}

func loadAuthConfig(logger *slog.Logger) (auth.Config, error) {
	cfg := auth.Config{}

	enabledStr := os.Getenv("METEOR_AUTH_ENABLED")
	if enabledStr != "" {
		enabled, err := strconv.ParseBool(enabledStr)
		if err != nil {
			return cfg, errors.New("METEOR_AUTH_ENABLED must be a boolean value (true/false/1/0)")
		}
		cfg.Enabled = enabled
	}

	if cfg.Enabled {
		cfg.Token = os.Getenv("METEOR_AUTH_TOKEN")
		if cfg.Token == "" {
			return cfg, errors.New("METEOR_AUTH_TOKEN is required when auth is enabled")
		}
		logger.Info("auth enabled")
	}

	return cfg, nil
}

type batchConfig struct {
	Workers int
}

func loadBatchConfig(logger *slog.Logger) batchConfig {
	cfg := batchConfig{
		Workers: runtime.NumCPU(),
	}

	if v := os.Getenv("METEOR_BATCH_WORKERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			logger.Warn("invalid METEOR_BATCH_WORKERS value, using default", "value", v, "default", cfg.Workers)
		} else {
			cfg.Workers = n
		}
	}

	logger.Info("batch config", "workers", cfg.Workers)

	return cfg
}

type neoConfig struct {
	EnableFetch     bool
	BaseURL         string
	APIKey          string
	CacheDir        string
	MaxFiles        int
	RefreshInterval time.Duration
	FeedWindow      time.Duration
}

func loadNEOConfig(logger *slog.Logger) neoConfig {
	cfg := neoConfig{
		EnableFetch:     true,
		CacheDir:        "/tmp/meteor/neo",
		MaxFiles:        5,
		RefreshInterval: 6 * time.Hour,
		FeedWindow:      7 * 24 * time.Hour,
	}

	if v := os.Getenv("METEOR_ENABLE_NEO_FETCH"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			logger.Warn("invalid METEOR_ENABLE_NEO_FETCH value, defaulting to false", "value", v)
			cfg.EnableFetch = false
		} else {
			cfg.EnableFetch = enabled
		}
	}

	if v := os.Getenv("METEOR_NEO_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}

	// DEMO_KEY works but is heavily rate limited upstream.
	if v := os.Getenv("METEOR_NASA_API_KEY"); v != "" {
		cfg.APIKey = v
	}

	if v := os.Getenv("METEOR_NEO_CACHE_DIR"); v != "" {
		cfg.CacheDir = v
	}

	if v := os.Getenv("METEOR_NEO_REFRESH_INTERVAL"); v != "" {
		seconds, err := strconv.Atoi(v)
		if err != nil || seconds < 1 {
			logger.Warn("invalid METEOR_NEO_REFRESH_INTERVAL value, using default", "value", v, "default", 21600)
		} else {
			cfg.RefreshInterval = time.Duration(seconds) * time.Second
		}
	}

	logger.Info("NEO config",
		"fetch_enabled", cfg.EnableFetch,
		"cache_dir", cfg.CacheDir,
		"refresh_interval_seconds", cfg.RefreshInterval.Seconds(),
	)

	return cfg
}
