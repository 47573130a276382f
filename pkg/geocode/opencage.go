package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const openCageURL = "https://api.opencagedata.com/geocode/v1/json"

// OpenCage resolves ZIP codes with the OpenCage geocoding API.
type OpenCage struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewOpenCage creates an OpenCage resolver. A nil client gets a default one
// with a 10 second timeout.
func NewOpenCage(apiKey string, client *http.Client) *OpenCage {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &OpenCage{
		baseURL:    openCageURL,
		apiKey:     apiKey,
		httpClient: client,
	}
}

type openCageResponse struct {
	Results []struct {
		Geometry struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		} `json:"geometry"`
		Components struct {
			City     string `json:"city"`
			Town     string `json:"town"`
			Village  string `json:"village"`
			Suburb   string `json:"suburb"`
			State    string `json:"state"`
			Postcode string `json:"postcode"`
		} `json:"components"`
	} `json:"results"`
}

func (g *OpenCage) Resolve(ctx context.Context, zip string) (*Place, error) {
	zip, ok := normalize(zip)
	if !ok {
		return nil, fmt.Errorf("zip %q: %w", zip, ErrNotFound)
	}

	params := url.Values{}
	params.Add("q", zip)
	params.Add("key", g.apiKey)
	params.Add("countrycode", "us")
	params.Add("limit", "1")
	params.Add("no_annotations", "1")

	req, err := http.NewRequestWithContext(ctx, "GET", g.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocoding %q: %w", zip, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocoding %q: OpenCage returned status %d", zip, resp.StatusCode)
	}

	var result openCageResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding OpenCage response: %w", err)
	}
	if len(result.Results) == 0 {
		return nil, fmt.Errorf("zip %q: %w", zip, ErrNotFound)
	}

	first := result.Results[0]
	place := &Place{
		Zip:   zip,
		City:  firstNonEmpty(first.Components.City, first.Components.Town, first.Components.Village, first.Components.Suburb),
		State: first.Components.State,
	}
	place.Latitude = first.Geometry.Lat
	place.Longitude = first.Geometry.Lng
	return place, nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
