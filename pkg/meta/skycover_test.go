package meta

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/spencer-p/idealtime/pkg/nws"
)

func ints(vals ...interface{}) []*int {
	out := make([]*int, len(vals))
	for i, v := range vals {
		if n, ok := v.(int); ok {
			out[i] = ptr(n)
		}
	}
	return out
}

func TestFillSkyCover(t *testing.T) {
	table := []struct {
		in   []*int
		want []int
	}{
		{ints(20, nil, nil, 40), []int{20, 27, 33, 40}},
		{ints(20, nil, 40), []int{20, 30, 40}},
		{ints(25, nil, 30), []int{25, 28, 30}},
		{ints(nil, nil, 50), []int{50, 50, 50}},
		{ints(50, nil, nil), []int{50, 50, 50}},
		{ints(nil, nil), []int{0, 0}},
		{ints(0, nil, 40), []int{0, 20, 40}},
		{ints(10, 20, 30), []int{10, 20, 30}},
		{ints(), []int{}},
	}
	for _, tc := range table {
		t.Run(fmt.Sprint(tc.want), func(t *testing.T) {
			got := FillSkyCover(tc.in)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("FillSkyCover() (-want,+got):\n%s", diff)
			}
		})
	}
}

func TestIndexSkyCover(t *testing.T) {
	series := IndexSkyCover([]nws.GridValue{
		{ValidTime: "2024-06-01T13:00:00+00:00/PT2H", Value: ptr(10.0)},
		{ValidTime: "2024-06-01T08:45:00-07:00/PT1H", Value: ptr(55.4)},
		{ValidTime: "garbage/PT1H", Value: ptr(99.0)},
		{ValidTime: "2024-06-01T17:00:00+00:00/PT1H", Value: nil},
	})

	table := []struct {
		at   time.Time
		want int
		ok   bool
	}{
		{time.Date(2024, time.June, 1, 13, 0, 0, 0, time.UTC), 10, true},
		// Only the interval start is indexed.
		{time.Date(2024, time.June, 1, 14, 0, 0, 0, time.UTC), 0, false},
		{time.Date(2024, time.June, 1, 15, 0, 0, 0, time.UTC), 55, true},
		{time.Date(2024, time.June, 1, 17, 0, 0, 0, time.UTC), 0, false},
	}
	for _, tc := range table {
		got, ok := series.At(tc.at)
		if got != tc.want || ok != tc.ok {
			t.Errorf("At(%s) = %d, %v; want %d, %v", tc.at, got, ok, tc.want, tc.ok)
		}
	}
	if len(series) != 2 {
		t.Errorf("len(series) = %d, want 2", len(series))
	}
}
