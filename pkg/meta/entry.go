package meta

import (
	"fmt"
	"strings"

	"github.com/spencer-p/idealtime/pkg/timetricks"
)

const timeFmt = "3:04 PM"

// Rating buckets a score the way the dashboard colours it.
type Rating string

const (
	Great Rating = "great"
	Good  Rating = "good"
	Fair  Rating = "fair"
	Poor  Rating = "poor"
)

// Rating returns the bucket for e's score.
func (e *HourlyEntry) Rating() Rating {
	switch {
	case e.Score >= 6:
		return Great
	case e.Score == 5:
		return Good
	case e.Score == 4:
		return Fair
	default:
		return Poor
	}
}

func (e *HourlyEntry) String() string {
	return fmt.Sprintf("%s, %d/%d (%s): %s",
		e.prettyTime(),
		e.Score,
		MaxScore,
		e.Rating(),
		strings.Join(e.details(), ", "))
}

func (e *HourlyEntry) prettyTime() string {
	return fmt.Sprintf("%s at %s", timetricks.Day(e.Time), e.Time.Format(timeFmt))
}

func (e *HourlyEntry) details() []string {
	wind := fmt.Sprintf("wind %d mph", e.WindSpeed)
	if e.WindDirection != nil {
		wind += " " + *e.WindDirection
	}
	parts := []string{
		fmt.Sprintf("%d°F", e.Temperature),
		wind,
		fmt.Sprintf("sky %d%%", e.SkyCover),
		fmt.Sprintf("rain %d%%", e.PrecipChance),
	}
	if e.TideHeight != nil {
		parts = append(parts, fmt.Sprintf("tide %.1f ft", *e.TideHeight))
	}
	if e.WaterTemp != nil {
		parts = append(parts, fmt.Sprintf("water %.1f°F", *e.WaterTemp))
	}
	if e.IsDaylight {
		parts = append(parts, "daylight")
	}
	if e.Summary != "" {
		parts = append(parts, e.Summary)
	}
	return parts
}
