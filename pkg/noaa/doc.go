// Package noaa implements queries to NOAA CO-OPS (Tides & Currents) for the
// station directory, hourly tide predictions and water temperature. Values
// arrive as strings; they are parsed one sample at a time and samples that do
// not parse are dropped without failing the rest of the series.
package noaa
