package noaa

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const (
	NOAA_URL     = "https://api.tidesandcurrents.noaa.gov/api/prod/datagetter"
	STATIONS_URL = "https://api.tidesandcurrents.noaa.gov/mdapi/prod/webapi/stations.json"
	TIME_FMT     = "20060102"
	MINUTE_FMT   = "20060102 15:04"

	// WaterTempWindow is how far back water temperature samples are requested.
	WaterTempWindow = 6 * time.Hour
)

// Client queries the CO-OPS APIs.
type Client struct {
	dataURL     string
	stationsURL string
	application string
	httpClient  *http.Client
}

// NewClient creates a client that identifies itself to NOAA as application.
// A nil httpClient gets a default one with a 30 second timeout.
func NewClient(application string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		dataURL:     NOAA_URL,
		stationsURL: STATIONS_URL,
		application: application,
		httpClient:  httpClient,
	}
}

// PredictionQuery is used to query hourly tide data at a station in a given
// time window; see GetPredictions.
type PredictionQuery struct {
	Start    time.Time
	Duration time.Duration
	Station  string
}

// GetStations fetches the directory of water level stations.
func (c *Client) GetStations(ctx context.Context) ([]Station, error) {
	vals := make(url.Values)
	vals.Add("type", "waterlevels")

	var result stationsResult
	if err := c.get(ctx, c.stationsURL, vals, &result); err != nil {
		return nil, fmt.Errorf("fetching stations: %w", err)
	}
	return result.Stations, nil
}

// GetPredictions fetches hourly tide predictions in station local time.
func (c *Client) GetPredictions(ctx context.Context, q *PredictionQuery) (Predictions, error) {
	var result NOAAResult
	if err := c.get(ctx, c.dataURL, c.withApplication(q.build()), &result); err != nil {
		return nil, fmt.Errorf("fetching predictions for %s: %w", q.Station, err)
	}
	if result.Error != nil {
		return nil, fmt.Errorf("fetching predictions for %s: %w", q.Station, result.Error)
	}
	return result.Predictions, nil
}

// GetWaterTemperature fetches water temperature samples from the window
// leading up to now.
func (c *Client) GetWaterTemperature(ctx context.Context, station string, now time.Time) (Samples, error) {
	now = now.UTC()
	vals := make(url.Values)
	vals.Add("begin_date", now.Add(-WaterTempWindow).Format(MINUTE_FMT))
	vals.Add("end_date", now.Format(MINUTE_FMT))
	vals.Add("station", station)
	vals.Add("product", "water_temperature")
	vals.Add("time_zone", "gmt")
	vals.Add("units", "english")
	vals.Add("format", "json")

	var result NOAAResult
	if err := c.get(ctx, c.dataURL, c.withApplication(vals), &result); err != nil {
		return nil, fmt.Errorf("fetching water temperature for %s: %w", station, err)
	}
	if result.Error != nil {
		return nil, fmt.Errorf("fetching water temperature for %s: %w", station, result.Error)
	}
	return result.Data, nil
}

func (c *Client) get(ctx context.Context, base string, vals url.Values, out interface{}) error {
	// Build request URL first
	addr, err := url.Parse(base)
	if err != nil {
		return err
	}
	addr.RawQuery = vals.Encode()

	req, err := http.NewRequestWithContext(ctx, "GET", addr.String(), nil)
	if err != nil {
		return err
	}

	// Make the request to NOAA
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("NOAA returned status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func (c *Client) withApplication(vals url.Values) url.Values {
	if c.application != "" {
		vals.Add("application", c.application)
	}
	return vals
}

func (q *PredictionQuery) build() url.Values {
	vals := make(url.Values)
	vals.Add("begin_date", q.Start.Format(TIME_FMT))
	vals.Add("end_date", q.Start.Add(q.Duration).Format(TIME_FMT))
	vals.Add("station", q.Station)
	vals.Add("product", "predictions")
	vals.Add("datum", "MLLW")
	vals.Add("time_zone", "lst_ldt")
	vals.Add("interval", "h")
	vals.Add("units", "english")
	vals.Add("format", "json")
	return vals
}
