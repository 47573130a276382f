// hourly prints the scored forecast for a ZIP code, one line per hour.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/spencer-p/idealtime/pkg/conditions"
	"github.com/spencer-p/idealtime/pkg/config"
	"github.com/spencer-p/idealtime/pkg/meta"
)

func main() {
	th := meta.DefaultThresholds()
	zip := flag.String("zip", "", "US ZIP code")
	activity := flag.String("activity", conditions.DefaultActivity, "activity preset to score against")
	minScore := flag.Int("min", 0, "only print hours scoring at least this")
	flag.Float64Var(&th.TideMin, "tide-min", th.TideMin, "minimum tide height (ft)")
	flag.Float64Var(&th.TideMax, "tide-max", th.TideMax, "maximum tide height (ft)")
	flag.Float64Var(&th.TempMin, "temp-min", th.TempMin, "minimum air temperature (°F)")
	flag.Float64Var(&th.TempMax, "temp-max", th.TempMax, "maximum air temperature (°F)")
	flag.Float64Var(&th.WindMin, "wind-min", th.WindMin, "minimum wind speed (mph)")
	flag.Float64Var(&th.WindMax, "wind-max", th.WindMax, "maximum wind speed (mph)")
	flag.Float64Var(&th.SkyMin, "sky-min", th.SkyMin, "minimum sky cover (%)")
	flag.Float64Var(&th.SkyMax, "sky-max", th.SkyMax, "maximum sky cover (%)")
	flag.Float64Var(&th.PrecipMin, "precip-min", th.PrecipMin, "minimum precipitation chance (%)")
	flag.Float64Var(&th.PrecipMax, "precip-max", th.PrecipMax, "maximum precipitation chance (%)")
	flag.BoolVar(&th.RequireDaylight, "daylight", th.RequireDaylight, "require daylight")
	preset := flag.Bool("preset", false, "use the activity's suggested thresholds instead of the flags")
	flag.Parse()

	if *zip == "" {
		fmt.Fprintln(os.Stderr, "usage: hourly -zip 95060 [flags]")
		flag.PrintDefaults()
		os.Exit(2)
	}
	if *preset {
		a, ok := meta.LookupActivity(*activity)
		if !ok {
			log.Fatalf("unknown activity %q", *activity)
		}
		th = a.Thresholds
	}

	env, err := config.Load()
	if err != nil {
		log.Fatal(err.Error())
	}
	svc, closeDB, err := env.Service()
	if err != nil {
		log.Fatal(err.Error())
	}
	defer closeDB()

	report, err := svc.Conditions(context.Background(), conditions.Request{
		Zip:        *zip,
		Activity:   *activity,
		Thresholds: th,
	})
	if err != nil {
		log.Fatalf("failed to get conditions: %v", err)
	}

	fmt.Printf("%s near %s (%.2f mi), %s\n",
		report.ZipCode, report.StationName, report.StationDistance, report.Timezone)
	for _, e := range report.Forecast {
		if e.Score < *minScore {
			continue
		}
		fmt.Println(e.String())
	}
}
