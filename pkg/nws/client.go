// Package nws fetches hourly forecasts and gridded sky cover from the National
// Weather Service API at api.weather.gov.
package nws

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"
)

const baseURL = "https://api.weather.gov"

// Client queries api.weather.gov. The service requires a descriptive
// User-Agent on every request.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

// NewClient creates a client. A nil httpClient gets a default one with a 30
// second timeout.
func NewClient(userAgent string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		baseURL:    baseURL,
		userAgent:  userAgent,
		httpClient: httpClient,
	}
}

// Forecast resolves the grid point for lat, lon and fetches its hourly
// forecast and sky cover layer. Any failure fails the whole forecast.
func (c *Client) Forecast(ctx context.Context, lat, lon float64) (*Forecast, error) {
	var point pointResponse
	if err := c.get(ctx, fmt.Sprintf("%s/points/%.4f,%.4f", c.baseURL, lat, lon), &point); err != nil {
		return nil, fmt.Errorf("failed to get grid point: %w", err)
	}

	var (
		hourly hourlyResponse
		grid   gridResponse
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := c.get(gctx, point.Properties.ForecastHourly, &hourly); err != nil {
			return fmt.Errorf("failed to fetch hourly forecast: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		if err := c.get(gctx, point.Properties.ForecastGridData, &grid); err != nil {
			return fmt.Errorf("failed to fetch grid data: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Forecast{
		Periods:  hourly.Properties.Periods,
		SkyCover: grid.Properties.SkyCover.Values,
	}, nil
}

func (c *Client) get(ctx context.Context, url string, out interface{}) error {
	if url == "" {
		return fmt.Errorf("missing URL in points response")
	}
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/geo+json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &UpstreamError{URL: url, StatusCode: resp.StatusCode}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s: %w", url, err)
	}
	return nil
}
