package config

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/spencer-p/idealtime/pkg/conditions"
)

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"PORT", "PREFIX", "OPENCAGE_API_KEY", "ZIP_DB_PATH", "ALLOWED_ORIGINS",
		"USER_AGENT", "UPSTREAM_TIMEOUT", "FORECAST_DAYS"} {
		t.Setenv(k, "unset")
		os.Unsetenv(k)
	}
	t.Setenv("UPSTREAM_TIMEOUT", "3s")
	t.Setenv("ALLOWED_ORIGINS", "http://a.example,http://b.example")

	got, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	want := Config{
		Port:            "8080",
		Prefix:          "/",
		AllowedOrigins:  []string{"http://a.example", "http://b.example"},
		UserAgent:       "idealtime (https://theidealtime.com)",
		UpstreamTimeout: 3 * time.Second,
		ForecastDays:    7,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Load() (-want,+got):\n%s", diff)
	}
}

func TestLoadPrefix(t *testing.T) {
	table := map[string]string{
		"":      "/",
		"/":     "/",
		"api":   "/api",
		"/api/": "/api/",
	}
	for in, want := range table {
		t.Setenv("PREFIX", in)
		got, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if got.Prefix != want {
			t.Errorf("PREFIX=%q gave Prefix %q, want %q", in, got.Prefix, want)
		}
	}
}

func TestServiceWithoutGeocoders(t *testing.T) {
	cfg := Config{UpstreamTimeout: time.Second, ForecastDays: 7}
	svc, closeFn, err := cfg.Service()
	if err != nil {
		t.Fatalf("Service() error = %v", err)
	}
	defer closeFn()

	if _, err := svc.Locate(context.Background(), "95060"); !errors.Is(err, conditions.ErrInvalidLocation) {
		t.Errorf("Locate() error = %v, want ErrInvalidLocation", err)
	}
}
