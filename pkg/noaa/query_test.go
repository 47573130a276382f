package noaa

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestQueryValues(t *testing.T) {
	in := PredictionQuery{
		Start:    time.Date(2020, time.January, 5, 0, 0, 0, 0, time.UTC),
		Duration: 7 * 24 * time.Hour,
		Station:  "9413745",
	}
	want := "begin_date=20200105&datum=MLLW&end_date=20200112&format=json&interval=h&product=predictions&station=9413745&time_zone=lst_ldt&units=english"
	got := in.build().Encode()
	if want != got {
		t.Errorf("got  %q", got)
		t.Errorf("want %q", want)
	}
}

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(h)
	t.Cleanup(server.Close)
	c := NewClient("idealtime-test", server.Client())
	c.dataURL = server.URL + "/datagetter"
	c.stationsURL = server.URL + "/stations.json"
	return c
}

func TestGetPredictions(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("station") != "9413745" {
			t.Errorf("station param = %s, want 9413745", q.Get("station"))
		}
		if q.Get("application") != "idealtime-test" {
			t.Errorf("application param = %s", q.Get("application"))
		}
		if q.Get("interval") != "h" {
			t.Errorf("interval param = %s, want h", q.Get("interval"))
		}
		w.Write([]byte(`{"predictions":[{"t":"2024-06-01 00:00","v":"3.101"},{"t":"2024-06-01 01:00","v":"N/A"}]}`))
	})

	got, err := c.GetPredictions(context.Background(), &PredictionQuery{
		Start:    time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
		Duration: 24 * time.Hour,
		Station:  "9413745",
	})
	if err != nil {
		t.Fatalf("GetPredictions() error = %v", err)
	}
	want := Predictions{{"2024-06-01 00:00", "3.101"}, {"2024-06-01 01:00", "N/A"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("GetPredictions() (-want,+got):\n%s", diff)
	}
}

func TestGetPredictionsNoData(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error":{"message":"No Predictions data was found."}}`))
	})
	_, err := c.GetPredictions(context.Background(), &PredictionQuery{Station: "1"})
	if err == nil {
		t.Fatal("GetPredictions() error = nil, want NOAA error")
	}
}

func TestGetPredictionsStatus(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})
	if _, err := c.GetPredictions(context.Background(), &PredictionQuery{Station: "1"}); err == nil {
		t.Fatal("GetPredictions() error = nil, want status error")
	}
}

func TestGetWaterTemperature(t *testing.T) {
	now := time.Date(2024, time.June, 1, 18, 30, 0, 0, time.UTC)
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("product") != "water_temperature" {
			t.Errorf("product param = %s", q.Get("product"))
		}
		if q.Get("begin_date") != "20240601 12:30" || q.Get("end_date") != "20240601 18:30" {
			t.Errorf("window = %s..%s", q.Get("begin_date"), q.Get("end_date"))
		}
		if q.Get("time_zone") != "gmt" {
			t.Errorf("time_zone param = %s, want gmt", q.Get("time_zone"))
		}
		w.Write([]byte(`{"data":[{"t":"2024-06-01 17:54","v":"58.1"},{"t":"2024-06-01 18:00","v":""}]}`))
	})
	samples, err := c.GetWaterTemperature(context.Background(), "9413745", now)
	if err != nil {
		t.Fatalf("GetWaterTemperature() error = %v", err)
	}
	got, ok := LatestValue(samples)
	if !ok || got != 58.1 {
		t.Errorf("LatestValue() = %f, %v; want 58.1, true", got, ok)
	}
}

func TestGetStations(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("type") != "waterlevels" {
			t.Errorf("type param = %s", r.URL.Query().Get("type"))
		}
		w.Write([]byte(`{"count":2,"stations":[
			{"id":"9413745","name":"Santa Cruz","lat":36.9583,"lng":-122.0167},
			{"id":"9414290","name":"San Francisco","lat":"37.8063","lng":"-122.4659"}]}`))
	})
	got, err := c.GetStations(context.Background())
	if err != nil {
		t.Fatalf("GetStations() error = %v", err)
	}
	if len(got) != 2 || got[0].ID != "9413745" || got[1].Name != "San Francisco" {
		t.Errorf("GetStations() = %+v", got)
	}
}
