package meta

// Thresholds are the inclusive comfort ranges an hour is scored against.
type Thresholds struct {
	TideMin   float64 `json:"tideMin"`
	TideMax   float64 `json:"tideMax"`
	TempMin   float64 `json:"tempMin"`
	TempMax   float64 `json:"tempMax"`
	WindMin   float64 `json:"windMin"`
	WindMax   float64 `json:"windMax"`
	SkyMin    float64 `json:"skyMin"`
	SkyMax    float64 `json:"skyMax"`
	PrecipMin float64 `json:"precipMin"`
	PrecipMax float64 `json:"precipMax"`

	RequireDaylight bool `json:"requireDaylight"`
}

// MaxScore is the number of factors Score counts.
const MaxScore = 6

// DefaultThresholds accept nearly any conditions.
func DefaultThresholds() Thresholds {
	return Thresholds{
		TideMin: -2, TideMax: 12,
		TempMin: -10, TempMax: 110,
		WindMin: 0, WindMax: 40,
		SkyMin: 0, SkyMax: 100,
		PrecipMin: 0, PrecipMax: 100,
	}
}

// Score counts how many factors of e fall within th: tide height (only when
// known), air temperature, wind speed, sky cover, precipitation chance, and
// daylight. Daylight always counts unless th requires it and e is dark.
func (th Thresholds) Score(e HourlyEntry) int {
	score := 0
	if e.TideHeight != nil && within(*e.TideHeight, th.TideMin, th.TideMax) {
		score++
	}
	if within(float64(e.Temperature), th.TempMin, th.TempMax) {
		score++
	}
	if within(float64(e.WindSpeed), th.WindMin, th.WindMax) {
		score++
	}
	if within(float64(e.SkyCover), th.SkyMin, th.SkyMax) {
		score++
	}
	if within(float64(e.PrecipChance), th.PrecipMin, th.PrecipMax) {
		score++
	}
	if !th.RequireDaylight || e.IsDaylight {
		score++
	}
	return score
}

func within(v, lo, hi float64) bool {
	return v >= lo && v <= hi
}
