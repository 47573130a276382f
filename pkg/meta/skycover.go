package meta

import (
	"math"
	"strings"
	"time"

	"github.com/spencer-p/idealtime/pkg/nws"
)

// SkyCoverSeries maps the Unix time of a UTC hour to sky cover in percent.
type SkyCoverSeries map[int64]int

// IndexSkyCover keys grid samples by the UTC hour their validity interval
// starts in. Only the interval start is used, so a sample valid for several
// hours lands on the first of them. Null or unreadable samples are skipped.
func IndexSkyCover(values []nws.GridValue) SkyCoverSeries {
	series := make(SkyCoverSeries, len(values))
	for _, v := range values {
		if v.Value == nil {
			continue
		}
		start := v.ValidTime
		if i := strings.IndexByte(start, '/'); i >= 0 {
			start = start[:i]
		}
		t, err := time.Parse(time.RFC3339, start)
		if err != nil {
			continue
		}
		series[t.UTC().Truncate(time.Hour).Unix()] = int(math.Round(*v.Value))
	}
	return series
}

// At returns the sky cover for the UTC hour containing t.
func (s SkyCoverSeries) At(t time.Time) (value int, ok bool) {
	value, ok = s[t.UTC().Truncate(time.Hour).Unix()]
	return value, ok
}

// FillSkyCover replaces each missing value with one derived from the nearest
// known values before and after it. With both neighbours the gap is
// interpolated linearly by position and rounded, which for a single missing
// hour is the mean of the two. With one neighbour its value is copied; with
// none the value is 0.
func FillSkyCover(vals []*int) []int {
	out := make([]int, len(vals))
	prev := -1
	for i, v := range vals {
		if v != nil {
			out[i] = *v
			prev = i
			continue
		}
		next := -1
		for j := i + 1; j < len(vals); j++ {
			if vals[j] != nil {
				next = j
				break
			}
		}
		switch {
		case prev >= 0 && next >= 0:
			lo, hi := float64(*vals[prev]), float64(*vals[next])
			frac := float64(i-prev) / float64(next-prev)
			out[i] = int(math.Round(lo + (hi-lo)*frac))
		case prev >= 0:
			out[i] = *vals[prev]
		case next >= 0:
			out[i] = *vals[next]
		}
	}
	return out
}
