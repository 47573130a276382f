package nws

import (
	"fmt"
	"net/http"
)

// Forecast is the raw hourly forecast and sky cover grid for one point.
type Forecast struct {
	Periods  []Period
	SkyCover []GridValue
}

// Period is one hour of the hourly forecast.
type Period struct {
	StartTime     string  `json:"startTime"`
	EndTime       string  `json:"endTime"`
	Temperature   float64 `json:"temperature"`
	WindSpeed     *string `json:"windSpeed"`
	WindDirection *string `json:"windDirection"`
	ShortForecast string  `json:"shortForecast"`

	ProbabilityOfPrecipitation *Quantity `json:"probabilityOfPrecipitation"`
}

// Quantity is a value with a unit code; Value is null when unknown.
type Quantity struct {
	UnitCode string   `json:"unitCode"`
	Value    *float64 `json:"value"`
}

// GridValue is a sample of a gridded forecast layer. ValidTime is an ISO 8601
// interval such as "2024-06-01T13:00:00+00:00/PT2H".
type GridValue struct {
	ValidTime string   `json:"validTime"`
	Value     *float64 `json:"value"`
}

type pointResponse struct {
	Properties struct {
		ForecastHourly   string `json:"forecastHourly"`
		ForecastGridData string `json:"forecastGridData"`
		TimeZone         string `json:"timeZone"`
	} `json:"properties"`
}

type hourlyResponse struct {
	Properties struct {
		Periods []Period `json:"periods"`
	} `json:"properties"`
}

type gridResponse struct {
	Properties struct {
		SkyCover struct {
			Values []GridValue `json:"values"`
		} `json:"skyCover"`
	} `json:"properties"`
}

// UpstreamError indicates that a weather.gov call returned a non-success
// status.
type UpstreamError struct {
	URL        string
	StatusCode int
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: %d %s", e.URL, e.StatusCode, http.StatusText(e.StatusCode))
}
