// Package config loads process configuration and wires the conditions service
// from it.
package config

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/spencer-p/idealtime/pkg/conditions"
	"github.com/spencer-p/idealtime/pkg/geocode"
	"github.com/spencer-p/idealtime/pkg/metrics"
	"github.com/spencer-p/idealtime/pkg/noaa"
	"github.com/spencer-p/idealtime/pkg/nws"
)

type Config struct {
	Port   string `default:"8080"`
	Prefix string `default:"/"`

	OpenCageAPIKey string `envconfig:"OPENCAGE_API_KEY"`
	ZipDBPath      string `envconfig:"ZIP_DB_PATH"`

	AllowedOrigins []string `envconfig:"ALLOWED_ORIGINS" default:"https://the-ideal-time-frontend.onrender.com,https://the-ideal-time-frontend-production.onrender.com,https://theidealtime.com,http://localhost:5173"`

	UserAgent       string        `envconfig:"USER_AGENT" default:"idealtime (https://theidealtime.com)"`
	UpstreamTimeout time.Duration `envconfig:"UPSTREAM_TIMEOUT" default:"10s"`
	ForecastDays    int           `envconfig:"FORECAST_DAYS" default:"7"`
}

// Load reads an optional .env file and then the environment. Prefix always
// starts with a slash.
func Load() (Config, error) {
	var env Config
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return env, fmt.Errorf("loading .env: %w", err)
	}
	if err := envconfig.Process("", &env); err != nil {
		return env, err
	}
	if !strings.HasPrefix(env.Prefix, "/") {
		env.Prefix = "/" + env.Prefix
	}
	return env, nil
}

// Service builds a conditions service talking to the real upstreams. The
// returned close func releases the ZIP database, if one was opened.
func (c Config) Service() (*conditions.Service, func() error, error) {
	base := &http.Client{Timeout: c.UpstreamTimeout}

	var chain geocode.Chain
	closer := func() error { return nil }
	if c.ZipDBPath != "" {
		db, err := geocode.OpenZipDB(c.ZipDBPath)
		if err != nil {
			return nil, nil, err
		}
		chain = append(chain, db)
		closer = db.Close
	}
	if c.OpenCageAPIKey != "" {
		chain = append(chain, geocode.NewOpenCage(c.OpenCageAPIKey, metrics.InstrumentClient("opencage", base)))
	}
	if len(chain) == 0 {
		log.Printf("Neither OPENCAGE_API_KEY nor ZIP_DB_PATH is set; every ZIP code will be rejected")
	}

	svc := conditions.NewService(
		chain,
		noaa.NewClient("idealtime", metrics.InstrumentClient("noaa", base)),
		nws.NewClient(c.UserAgent, metrics.InstrumentClient("nws", base)),
		conditions.Options{
			Timeout:      c.UpstreamTimeout,
			ForecastDays: c.ForecastDays,
		})
	return svc, closer, nil
}
