package sunset

import (
	"math"
	"sort"
	"time"

	"github.com/keep94/sunrise"
)

// GetSunEvents returns the sunrises and sunsets in place, in time order,
// covering at least one full day either side of the window starting at start.
// Days without a sunrise or sunset (polar day or night) contribute nothing.
func GetSunEvents(start time.Time, duration time.Duration, place Place) SunEvents {
	loc := place.Location
	if loc == nil {
		loc = time.UTC
	}
	start = start.In(loc)

	// The sunrise package is loose about which calendar day it answers for, so
	// ask at local noon and sort what comes back.
	numDays := int(math.Ceil(duration.Hours()/24)) + 2
	first := time.Date(start.Year(), start.Month(), start.Day()-1, 12, 0, 0, 0, loc)

	var s sunrise.Sunrise
	ret := make(SunEvents, 0, numDays*2)
	for i := 0; i <= numDays; i++ {
		s.Around(place.Lat, place.Long, first.AddDate(0, 0, i))
		if rise := s.Sunrise(); !rise.IsZero() {
			ret = append(ret, SunEvent{rise.In(loc), Sunrise})
		}
		if set := s.Sunset(); !set.IsZero() {
			ret = append(ret, SunEvent{set.In(loc), Sunset})
		}
	}
	sort.SliceStable(ret, func(i, j int) bool {
		return ret[i].Time.Before(ret[j].Time)
	})
	return ret
}

// Daylight answers whether the sun is up at a given instant. It is built once
// per request over the forecast window.
type Daylight struct {
	events SunEvents
}

// NewDaylight precomputes sun events for the window starting at start.
func NewDaylight(place Place, start time.Time, duration time.Duration) *Daylight {
	return &Daylight{events: GetSunEvents(start, duration, place)}
}

// At reports whether t falls between a sunrise and the following sunset.
// Instants outside the precomputed window report false.
func (d *Daylight) At(t time.Time) bool {
	i := indexOfLastEventBefore(t, d.events)
	if i < 0 {
		return false
	}
	return d.events[i].Event == Sunrise
}

// Returns the index of the last event at or before t, or -1 if there is none.
func indexOfLastEventBefore(t time.Time, events SunEvents) int {
	// sort.Search finds the first event after t; the one before it is ours.
	return sort.Search(len(events), func(i int) bool {
		return events[i].Time.After(t)
	}) - 1
}
