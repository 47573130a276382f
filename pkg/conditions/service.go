// Package conditions assembles a scored hourly forecast for a ZIP code from
// the geocoder, NOAA tides and the National Weather Service.
package conditions

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/spencer-p/idealtime/pkg/geocode"
	"github.com/spencer-p/idealtime/pkg/meta"
	"github.com/spencer-p/idealtime/pkg/noaa"
	"github.com/spencer-p/idealtime/pkg/nws"
	"github.com/spencer-p/idealtime/pkg/sunset"
)

const (
	day = 24 * time.Hour

	DefaultActivity     = "paddleboarding"
	DefaultForecastDays = 7
	DefaultTimeout      = 10 * time.Second
)

// TideSource is the subset of the NOAA client the service uses.
type TideSource interface {
	GetStations(ctx context.Context) ([]noaa.Station, error)
	GetPredictions(ctx context.Context, q *noaa.PredictionQuery) (noaa.Predictions, error)
	GetWaterTemperature(ctx context.Context, station string, now time.Time) (noaa.Samples, error)
}

// ForecastSource fetches the raw hourly forecast for a point.
type ForecastSource interface {
	Forecast(ctx context.Context, lat, lon float64) (*nws.Forecast, error)
}

// Options tune a Service. Zero values get defaults.
type Options struct {
	// Timeout bounds each upstream call.
	Timeout time.Duration
	// ForecastDays is the length of the tide and daylight window.
	ForecastDays int
	// Now is the clock; time.Now if nil.
	Now func() time.Time
}

// Service answers conditions requests. It holds no per-request state and is
// safe for concurrent use.
type Service struct {
	geocoder geocode.Resolver
	tides    TideSource
	forecast ForecastSource

	timeout time.Duration
	days    int
	now     func() time.Time
}

func NewService(g geocode.Resolver, tides TideSource, forecast ForecastSource, opts Options) *Service {
	s := &Service{
		geocoder: g,
		tides:    tides,
		forecast: forecast,
		timeout:  opts.Timeout,
		days:     opts.ForecastDays,
		now:      opts.Now,
	}
	if s.timeout <= 0 {
		s.timeout = DefaultTimeout
	}
	if s.days <= 0 {
		s.days = DefaultForecastDays
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// Request is one conditions query.
type Request struct {
	Zip        string
	Activity   string
	Thresholds meta.Thresholds
}

// Report is the response to a Request.
type Report struct {
	ZipCode         string             `json:"zip_code"`
	Latitude        float64            `json:"latitude"`
	Longitude       float64            `json:"longitude"`
	StationID       string             `json:"station_id"`
	StationName     string             `json:"station_name"`
	StationDistance float64            `json:"station_distance_miles"`
	Activity        string             `json:"activity"`
	Forecast        []meta.HourlyEntry `json:"forecast"`
	Timezone        string             `json:"timezone"`
}

// Locate resolves a ZIP code.
func (s *Service) Locate(ctx context.Context, zip string) (*geocode.Place, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	place, err := s.geocoder.Resolve(ctx, zip)
	if errors.Is(err, geocode.ErrNotFound) {
		return nil, fmt.Errorf("%w: %w", ErrInvalidLocation, err)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGeocoding, err)
	}
	return place, nil
}

// Conditions resolves req.Zip, then gathers the nearest station's tides and
// water temperature alongside the hourly forecast, and fuses them into a
// scored timeline.
func (s *Service) Conditions(ctx context.Context, req Request) (*Report, error) {
	place, err := s.Locate(ctx, req.Zip)
	if err != nil {
		return nil, err
	}
	loc := place.TimeZone()
	now := s.now()
	window := time.Duration(s.days) * day

	var (
		station   noaa.NearestStation
		tides     noaa.TideSeries
		waterTemp *float64
		forecast  *nws.Forecast
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		st, err := s.nearestStation(gctx, place)
		if err != nil {
			return err
		}
		station = st

		var inner errgroup.Group
		inner.Go(func() error {
			tides = s.tideSeries(gctx, st.ID, now.In(loc), window, loc)
			return nil
		})
		inner.Go(func() error {
			waterTemp = s.waterTemp(gctx, st.ID, now)
			return nil
		})
		return inner.Wait()
	})
	g.Go(func() error {
		ctx, cancel := context.WithTimeout(gctx, s.timeout)
		defer cancel()
		f, err := s.forecast.Forecast(ctx, place.Latitude, place.Longitude)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrForecastUnavailable, err)
		}
		forecast = f
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	entries, err := meta.Timeline(meta.Conditions{
		Periods:   forecast.Periods,
		SkyCover:  forecast.SkyCover,
		Tides:     tides,
		WaterTemp: waterTemp,
		Location:  loc,
		Daylight: sunset.NewDaylight(
			sunset.Place{Lat: place.Latitude, Long: place.Longitude, Location: loc},
			now, window),
	}, req.Thresholds)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrForecastUnavailable, err)
	}

	activity := req.Activity
	if activity == "" {
		activity = DefaultActivity
	}
	return &Report{
		ZipCode:         req.Zip,
		Latitude:        place.Latitude,
		Longitude:       place.Longitude,
		StationID:       station.ID,
		StationName:     station.Name,
		StationDistance: math.Round(station.Distance*100) / 100,
		Activity:        activity,
		Forecast:        entries,
		Timezone:        loc.String(),
	}, nil
}

func (s *Service) nearestStation(ctx context.Context, place *geocode.Place) (noaa.NearestStation, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	stations, err := s.tides.GetStations(ctx)
	if err != nil {
		return noaa.NearestStation{}, fmt.Errorf("%w: %w", ErrNoStation, err)
	}
	st, err := noaa.Nearest(place.Location, stations)
	if err != nil {
		return noaa.NearestStation{}, fmt.Errorf("%w: %w", ErrNoStation, err)
	}
	return st, nil
}

// tideSeries degrades to an empty series when predictions are unavailable;
// hours then simply carry no tide height.
func (s *Service) tideSeries(ctx context.Context, station string, start time.Time, window time.Duration, loc *time.Location) noaa.TideSeries {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	preds, err := s.tides.GetPredictions(ctx, &noaa.PredictionQuery{
		Start:    start,
		Duration: window,
		Station:  station,
	})
	if err != nil {
		log.Printf("No tide predictions for station %s: %v", station, err)
		return noaa.TideSeries{}
	}
	return noaa.BuildTideSeries(preds, loc)
}

func (s *Service) waterTemp(ctx context.Context, station string, now time.Time) *float64 {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	samples, err := s.tides.GetWaterTemperature(ctx, station, now)
	if err != nil {
		log.Printf("No water temperature for station %s: %v", station, err)
		return nil
	}
	if v, ok := noaa.LatestValue(samples); ok {
		return &v
	}
	return nil
}
