package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/spencer-p/idealtime/pkg/conditions"
	"github.com/spencer-p/idealtime/pkg/meta"
)

func Register(r *mux.Router, svc *conditions.Service) {
	r.Handle("/", makeHealthHandler()).Methods(http.MethodGet)
	r.Handle("/conditions", makeServeConditions(svc)).Methods(http.MethodGet)
	r.Handle("/geocode", makeServeGeocode(svc)).Methods(http.MethodGet)
	r.Handle("/activities", makeServeActivities()).Methods(http.MethodGet)
}

type errorBody struct {
	Error string `json:"error"`
}

func makeHealthHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Printf("%s %s", r.Method, r.URL)
		writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
	})
}

func makeServeConditions(svc *conditions.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Printf("%s %s", r.Method, r.URL)

		zip := r.FormValue("zip")
		if zip == "" {
			writeJSON(w, http.StatusBadRequest, errorBody{"Invalid ZIP code"})
			return
		}
		th, bad := parseThresholds(r)
		if bad != "" {
			writeJSON(w, http.StatusBadRequest, errorBody{"Invalid value for " + bad})
			return
		}

		report, err := svc.Conditions(r.Context(), conditions.Request{
			Zip:        zip,
			Activity:   r.FormValue("activity"),
			Thresholds: th,
		})
		if err != nil {
			log.Printf("Failed to get conditions for %q: %v", zip, err)
			status, msg := classify(err)
			writeJSON(w, status, errorBody{msg})
			return
		}
		writeJSON(w, http.StatusOK, report)
	})
}

func makeServeGeocode(svc *conditions.Service) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Printf("%s %s", r.Method, r.URL)

		place, err := svc.Locate(r.Context(), r.FormValue("zip"))
		switch {
		case errors.Is(err, conditions.ErrInvalidLocation):
			writeJSON(w, http.StatusNotFound, errorBody{"Location not found"})
			return
		case err != nil:
			log.Printf("Failed to geocode: %v", err)
			writeJSON(w, http.StatusInternalServerError, errorBody{"Geocoding failed"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{
			"city":  place.City,
			"state": place.State,
		})
	})
}

func makeServeActivities() http.Handler {
	activities := meta.Activities()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Printf("%s %s", r.Method, r.URL)
		writeJSON(w, http.StatusOK, activities)
	})
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, conditions.ErrInvalidLocation):
		return http.StatusBadRequest, "Invalid ZIP code"
	case errors.Is(err, conditions.ErrNoStation):
		return http.StatusInternalServerError, "Could not find a tide station"
	case errors.Is(err, conditions.ErrForecastUnavailable):
		return http.StatusInternalServerError, "Could not fetch NOAA forecast"
	case errors.Is(err, conditions.ErrGeocoding):
		return http.StatusInternalServerError, "Geocoding failed"
	default:
		return http.StatusInternalServerError, "Internal error"
	}
}

// parseThresholds reads the threshold query parameters, keeping the default
// for any that are absent. It returns the name of the first parameter that is
// not a finite number.
func parseThresholds(r *http.Request) (th meta.Thresholds, bad string) {
	th = meta.DefaultThresholds()
	params := []struct {
		name string
		dst  *float64
	}{
		{"tideMin", &th.TideMin},
		{"tideMax", &th.TideMax},
		{"tempMin", &th.TempMin},
		{"tempMax", &th.TempMax},
		{"windMin", &th.WindMin},
		{"windMax", &th.WindMax},
		{"skyMin", &th.SkyMin},
		{"skyMax", &th.SkyMax},
		{"precipMin", &th.PrecipMin},
		{"precipMax", &th.PrecipMax},
	}
	for _, p := range params {
		raw := r.FormValue(p.name)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return th, p.name
		}
		*p.dst = v
	}
	th.RequireDaylight = strings.EqualFold(r.FormValue("requireDaylight"), "true")
	return th, ""
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("Failed to encode JSON result: %+v", err)
	}
}
