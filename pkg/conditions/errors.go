package conditions

import "errors"

var (
	// ErrInvalidLocation means the ZIP code could not be resolved.
	ErrInvalidLocation = errors.New("invalid location")
	// ErrGeocoding means the geocoder itself failed.
	ErrGeocoding = errors.New("geocoding failed")
	// ErrNoStation means no usable tide station was found.
	ErrNoStation = errors.New("no tide station")
	// ErrForecastUnavailable means a weather forecast call failed. No partial
	// forecast is ever returned with it.
	ErrForecastUnavailable = errors.New("forecast unavailable")
)
