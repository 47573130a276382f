package noaa

// LatestValue returns the most recent sample whose value parses as a number.
func LatestValue(samples Samples) (value float64, ok bool) {
	for i := len(samples) - 1; i >= 0; i-- {
		if v, ok := parseFloat(samples[i].Value); ok {
			return v, true
		}
	}
	return 0, false
}
