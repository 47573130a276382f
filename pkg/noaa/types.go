package noaa

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/spencer-p/idealtime/pkg/geo"
)

const predTimeFormat = "2006-01-02 15:04"

// ErrNoStation is returned when a station directory has no usable entry.
var ErrNoStation = errors.New("no tide station found")

// Prediction holds a single hourly tide prediction as NOAA encodes it.
type Prediction struct {
	// Station local time, "2006-01-02 15:04"
	Time string `json:"t"`
	// Height in feet above MLLW
	Height string `json:"v"`
}

// Predictions is a time series of Prediction.
type Predictions []Prediction

// Parse reads the prediction's time in loc and its height. ok is false if
// either field is malformed.
func (p Prediction) Parse(loc *time.Location) (t time.Time, height float64, ok bool) {
	t, err := time.ParseInLocation(predTimeFormat, p.Time, loc)
	if err != nil {
		return time.Time{}, 0, false
	}
	height, ok = parseFloat(p.Height)
	return t, height, ok
}

func (p Prediction) String() string {
	return fmt.Sprintf("{t: %s, v: %s}", p.Time, p.Height)
}

// Sample is one observation from a data product such as water_temperature.
type Sample struct {
	Time  string `json:"t"`
	Value string `json:"v"`
}

// Samples is a time series of Sample, oldest first.
type Samples []Sample

// Station is an entry of the CO-OPS station directory. Coordinates are kept
// raw since a handful of entries carry strings or nulls.
type Station struct {
	ID   string          `json:"id"`
	Name string          `json:"name"`
	Lat  json.RawMessage `json:"lat"`
	Lng  json.RawMessage `json:"lng"`
}

// Location parses the station's coordinates. ok is false if either one is not
// a finite number.
func (s Station) Location() (loc geo.Location, ok bool) {
	lat, ok := parseCoord(s.Lat)
	if !ok {
		return loc, false
	}
	lon, ok := parseCoord(s.Lng)
	if !ok {
		return loc, false
	}
	return geo.Location{Latitude: lat, Longitude: lon}, true
}

// NOAAResult is the data type returned by the datagetter API.
type NOAAResult struct {
	Predictions Predictions `json:"predictions"`
	Data        Samples     `json:"data"`
	Error       *APIError   `json:"error"`
}

// stationsResult is the data type returned by the metadata API.
type stationsResult struct {
	Count    int       `json:"count"`
	Stations []Station `json:"stations"`
}

// APIError is reported in the body of a 200 response when NOAA has no data
// for a query.
type APIError struct {
	Message string `json:"message"`
}

func (e *APIError) Error() string {
	return "noaa: " + e.Message
}

func parseCoord(raw json.RawMessage) (float64, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0, false
	}
	// Either a JSON number or a numeric string.
	s := string(raw)
	if raw[0] == '"' {
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, false
		}
	}
	return parseFloat(s)
}

func parseFloat(s string) (float64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
