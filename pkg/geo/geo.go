// Package geo holds coordinates and the small amount of spherical geometry and
// time zone resolution the rest of the service needs.
package geo

import (
	"math"
	"time"

	"github.com/bradfitz/latlong"
)

// EarthRadiusMiles is the mean radius used for great-circle distances.
const EarthRadiusMiles = 3958.8

// Location is a point on the Earth in decimal degrees.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Haversine returns the great-circle distance in miles between two points.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	dlat := radians(lat2 - lat1)
	dlon := radians(lon2 - lon1)
	a := math.Sin(dlat/2)*math.Sin(dlat/2) +
		math.Cos(radians(lat1))*math.Cos(radians(lat2))*
			math.Sin(dlon/2)*math.Sin(dlon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return EarthRadiusMiles * c
}

// DistanceTo is Haversine from l to other.
func (l Location) DistanceTo(other Location) float64 {
	return Haversine(l.Latitude, l.Longitude, other.Latitude, other.Longitude)
}

// TimeZone resolves the IANA zone containing l. If the coordinates fall
// outside every known zone, or the zone cannot be loaded, it returns UTC.
func (l Location) TimeZone() *time.Location {
	name := latlong.LookupZoneName(l.Latitude, l.Longitude)
	if name == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return time.UTC
	}
	return loc
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
