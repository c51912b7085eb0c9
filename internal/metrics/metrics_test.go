package metrics

import "testing"

func TestNormalizeRoute(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		// Known exact routes.
		{"/healthz", "/healthz"},
		{"/readyz", "/readyz"},
		{"/metrics", "/metrics"},
		{"/", "/"},
		{"/api/v1/simulate", "/api/v1/simulate"},
		{"/api/v1/energy-estimate", "/api/v1/energy-estimate"},
		{"/api/v1/presets", "/api/v1/presets"},
		{"/api/v1/asteroids", "/api/v1/asteroids"},
		{"/api/v1/asteroids/hazardous", "/api/v1/asteroids/hazardous"},
		{"/api/v1/asteroids/statistics", "/api/v1/asteroids/statistics"},
		{"/api/v1/asteroids/simulate", "/api/v1/asteroids/simulate"},
		{"/api/v1/deflection/calculate", "/api/v1/deflection/calculate"},
		{"/api/v1/deflection/strategies", "/api/v1/deflection/strategies"},

		// Unknown/bot paths collapse to "other".
		{"/wp-admin", "other"},
		{"/robots.txt", "other"},
		{"/.env", "other"},
		{"/api/v2/something", "other"},
		{"/favicon.ico", "other"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got := normalizeRoute(tt.path)
			if got != tt.want {
				t.Errorf("normalizeRoute(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

// TestMetricsCardinality verifies that arbitrary unknown paths produce
// exactly one distinct label, not one per path.
func TestMetricsCardinality(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		label := normalizeRoute("/scan/" + string(rune('a'+i%26)))
		seen[label] = true
	}
	if len(seen) != 1 {
		t.Errorf("expected 1 unique label for unknown paths, got %d: %v", len(seen), seen)
	}
}
