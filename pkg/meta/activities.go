package meta

import "sort"

// Factor names one of the scored inputs.
type Factor string

const (
	FactorTide        Factor = "tide"
	FactorTemperature Factor = "temperature"
	FactorWind        Factor = "windSpeed"
	FactorSky         Factor = "skyCover"
	FactorPrecip      Factor = "precipChance"
	FactorDaylight    Factor = "daylight"
)

// Activity is a named preset of suggested thresholds. Presets are advisory:
// clients send the thresholds they want scored.
type Activity struct {
	Name        string     `json:"name"`
	DisplayName string     `json:"displayName"`
	Factors     []Factor   `json:"relevantFactors"`
	Thresholds  Thresholds `json:"thresholds"`
}

var (
	allFactors   = []Factor{FactorTide, FactorTemperature, FactorWind, FactorSky, FactorPrecip, FactorDaylight}
	landFactors  = []Factor{FactorTemperature, FactorWind, FactorSky, FactorPrecip, FactorDaylight}
	nightFactors = []Factor{FactorWind, FactorSky, FactorPrecip, FactorDaylight}
)

func preset(tide, temp, wind, sky, precip [2]float64, daylight bool) Thresholds {
	return Thresholds{
		TideMin: tide[0], TideMax: tide[1],
		TempMin: temp[0], TempMax: temp[1],
		WindMin: wind[0], WindMax: wind[1],
		SkyMin: sky[0], SkyMax: sky[1],
		PrecipMin: precip[0], PrecipMax: precip[1],
		RequireDaylight: daylight,
	}
}

var activities = map[string]Activity{
	"carDriving":     {"carDriving", "Classic Car Driving", landFactors, preset([2]float64{-2, 15}, [2]float64{60, 90}, [2]float64{0, 15}, [2]float64{0, 75}, [2]float64{0, 5}, false)},
	"cookout":        {"cookout", "Cookout", landFactors, preset([2]float64{-2, 15}, [2]float64{65, 90}, [2]float64{0, 10}, [2]float64{0, 28}, [2]float64{0, 10}, false)},
	"hiking":         {"hiking", "Hiking", landFactors, preset([2]float64{-2, 15}, [2]float64{50, 80}, [2]float64{0, 20}, [2]float64{0, 100}, [2]float64{0, 15}, false)},
	"kayaking":       {"kayaking", "Kayaking", allFactors, preset([2]float64{5, 15}, [2]float64{75, 100}, [2]float64{0, 10}, [2]float64{0, 80}, [2]float64{0, 20}, true)},
	"motorboating":   {"motorboating", "Motorboating", allFactors, preset([2]float64{6, 15}, [2]float64{60, 100}, [2]float64{0, 15}, [2]float64{0, 90}, [2]float64{0, 30}, true)},
	"paddleboarding": {"paddleboarding", "Paddleboarding", allFactors, preset([2]float64{5, 15}, [2]float64{60, 110}, [2]float64{0, 8}, [2]float64{0, 80}, [2]float64{0, 40}, true)},
	"polarplunging":  {"polarplunging", "Polar Plunging", allFactors, preset([2]float64{7, 15}, [2]float64{10, 120}, [2]float64{0, 15}, [2]float64{0, 100}, [2]float64{0, 50}, false)},
	"running":        {"running", "Running", landFactors, preset([2]float64{-2, 15}, [2]float64{20, 80}, [2]float64{0, 15}, [2]float64{0, 100}, [2]float64{0, 20}, false)},
	"sailing":        {"sailing", "Sailing", allFactors, preset([2]float64{2, 15}, [2]float64{40, 100}, [2]float64{10, 30}, [2]float64{0, 80}, [2]float64{0, 30}, true)},
	"starGazing":     {"starGazing", "Star Gazing", nightFactors, preset([2]float64{-2, 15}, [2]float64{50, 100}, [2]float64{0, 20}, [2]float64{0, 10}, [2]float64{0, 10}, false)},
	"sunbathing":     {"sunbathing", "Sunbathing", allFactors, preset([2]float64{-2, 15}, [2]float64{70, 100}, [2]float64{0, 20}, [2]float64{0, 25}, [2]float64{0, 10}, false)},
	"surfing":        {"surfing", "Surfing", allFactors, preset([2]float64{4, 10}, [2]float64{50, 90}, [2]float64{5, 20}, [2]float64{0, 100}, [2]float64{0, 20}, true)},
}

// Activities returns every preset ordered by name.
func Activities() []Activity {
	ret := make([]Activity, 0, len(activities))
	for _, a := range activities {
		ret = append(ret, a)
	}
	sort.Slice(ret, func(i, j int) bool {
		return ret[i].Name < ret[j].Name
	})
	return ret
}

// LookupActivity finds a preset by name.
func LookupActivity(name string) (Activity, bool) {
	a, ok := activities[name]
	return a, ok
}
