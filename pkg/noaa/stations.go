package noaa

import (
	"math"

	"github.com/spencer-p/idealtime/pkg/geo"
)

// NearestStation is the result of Nearest.
type NearestStation struct {
	ID       string
	Name     string
	Location geo.Location
	// Distance in miles
	Distance float64
}

// Nearest returns the station closest to loc by great-circle distance.
// Stations with unusable coordinates are skipped. On a tie the earlier
// station wins.
func Nearest(loc geo.Location, stations []Station) (NearestStation, error) {
	var best NearestStation
	min := math.Inf(1)
	for _, s := range stations {
		sloc, ok := s.Location()
		if !ok {
			continue
		}
		if d := loc.DistanceTo(sloc); d < min {
			min = d
			best = NearestStation{
				ID:       s.ID,
				Name:     s.Name,
				Location: sloc,
				Distance: d,
			}
		}
	}
	if math.IsInf(min, 1) {
		return NearestStation{}, ErrNoStation
	}
	return best, nil
}
