// Package meta fuses hourly weather, tide and daylight data into one scored
// timeline.
package meta

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/spencer-p/idealtime/pkg/noaa"
	"github.com/spencer-p/idealtime/pkg/nws"
	"github.com/spencer-p/idealtime/pkg/timetricks"
)

// DaylightSource reports whether the sun is up at an instant.
type DaylightSource interface {
	At(t time.Time) bool
}

// Conditions is the set of data we can perform meta analysis on.
type Conditions struct {
	Periods   []nws.Period
	SkyCover  []nws.GridValue
	Tides     noaa.TideSeries
	WaterTemp *float64
	// Location is the time zone entries are reported in. Nil means UTC.
	Location *time.Location
	Daylight DaylightSource
}

// HourlyEntry is one forecast hour with everything known about it.
type HourlyEntry struct {
	Time          time.Time `json:"time"`
	Temperature   int       `json:"temperature"`
	WindSpeed     int       `json:"windSpeed"`
	WindDirection *string   `json:"windDirection"`
	PrecipChance  int       `json:"precipChance"`
	Summary       string    `json:"summary"`
	SkyCover      int       `json:"skyCover"`
	TideHeight    *float64  `json:"tideHeight"`
	WaterTemp     *float64  `json:"waterTemp"`
	IsDaylight    bool      `json:"isDaylight"`
	Score         int       `json:"score"`
}

// Timeline fuses c into one entry per forecast period, in forecast order, and
// scores every entry against th.
func Timeline(c Conditions, th Thresholds) ([]HourlyEntry, error) {
	entries, err := Fuse(c)
	if err != nil {
		return nil, err
	}
	for i := range entries {
		entries[i].Score = th.Score(entries[i])
	}
	return entries, nil
}

// Fuse joins forecast periods with sky cover, tides and daylight. Sky cover
// gaps are filled from neighbouring hours; tide height is left nil where no
// prediction matches. A period with an unreadable start time fails the whole
// timeline since every period must produce an entry.
func Fuse(c Conditions) ([]HourlyEntry, error) {
	loc := c.Location
	if loc == nil {
		loc = time.UTC
	}
	sky := IndexSkyCover(c.SkyCover)

	entries := make([]HourlyEntry, len(c.Periods))
	skyVals := make([]*int, len(c.Periods))
	for i, p := range c.Periods {
		start, err := time.Parse(time.RFC3339, p.StartTime)
		if err != nil {
			return nil, fmt.Errorf("period %d start time %q: %w", i, p.StartTime, err)
		}
		utc := start.UTC().Truncate(time.Hour)
		local := timetricks.TrimToHour(utc.In(loc))

		e := HourlyEntry{
			Time:          local,
			Temperature:   int(math.Round(p.Temperature)),
			WindSpeed:     parseWindSpeed(p.WindSpeed),
			WindDirection: p.WindDirection,
			PrecipChance:  precipChance(p.ProbabilityOfPrecipitation),
			Summary:       p.ShortForecast,
			WaterTemp:     c.WaterTemp,
		}
		if v, ok := sky.At(utc); ok {
			skyVals[i] = &v
		}
		if h, ok := c.Tides.At(local); ok {
			e.TideHeight = &h
		}
		if c.Daylight != nil {
			e.IsDaylight = c.Daylight.At(utc)
		}
		entries[i] = e
	}

	for i, v := range FillSkyCover(skyVals) {
		entries[i].SkyCover = v
	}
	return entries, nil
}

// parseWindSpeed reads the leading integer of strings like "10 mph" or
// "5 to 10 mph". Anything else is 0.
func parseWindSpeed(s *string) int {
	if s == nil {
		return 0
	}
	fields := strings.Fields(*s)
	if len(fields) == 0 {
		return 0
	}
	n, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0
	}
	return n
}

func precipChance(q *nws.Quantity) int {
	if q == nil || q.Value == nil {
		return 0
	}
	return int(math.Round(*q.Value))
}
