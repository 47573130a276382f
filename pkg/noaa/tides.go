package noaa

import (
	"time"

	"github.com/spencer-p/idealtime/pkg/timetricks"
)

// TideSeries maps a local hour, keyed by timetricks.HourKey, to a tide height
// in feet.
type TideSeries map[string]float64

// BuildTideSeries localizes predictions into loc (UTC if nil), trims each one
// to the top of its hour and indexes it. Malformed predictions are dropped. If
// two predictions fall in the same hour the later one wins.
//
// Predictions are in time order, so a wall time that does not move forward
// from the previous prediction is the second pass through the hour repeated
// when clocks go back, and is read with the later offset.
func BuildTideSeries(preds Predictions, loc *time.Location) TideSeries {
	if loc == nil {
		loc = time.UTC
	}
	series := make(TideSeries, len(preds))
	var prev time.Time
	for _, p := range preds {
		t, height, ok := p.Parse(loc)
		if !ok {
			continue
		}
		if !prev.IsZero() && !t.After(prev) {
			t = laterOccurrence(t)
		}
		prev = t
		series[timetricks.HourKey(t)] = height
	}
	return series
}

// laterOccurrence returns the second instant showing t's wall clock, if t
// falls in a repeated hour. Otherwise it returns t.
func laterOccurrence(t time.Time) time.Time {
	later := t.Add(time.Hour)
	if later.Hour() == t.Hour() && later.Minute() == t.Minute() {
		return later
	}
	return t
}

// At returns the height for the hour containing t, in t's location.
func (s TideSeries) At(t time.Time) (height float64, ok bool) {
	height, ok = s[timetricks.HourKey(t)]
	return height, ok
}
