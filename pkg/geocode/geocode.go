// Package geocode turns US ZIP codes into coordinates.
package geocode

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/spencer-p/idealtime/pkg/geo"
)

// ErrNotFound is returned when a resolver has no result for a ZIP code.
var ErrNotFound = errors.New("location not found")

var zipPattern = regexp.MustCompile(`^\d{5}(-\d{4})?$`)

// Place is a resolved ZIP code.
type Place struct {
	geo.Location
	Zip   string `json:"zip"`
	City  string `json:"city"`
	State string `json:"state"`
}

// Resolver resolves a ZIP code to a Place.
type Resolver interface {
	Resolve(ctx context.Context, zip string) (*Place, error)
}

// Chain tries each resolver in order. A resolver answering ErrNotFound passes
// the query to the next one; any other error stops the chain.
type Chain []Resolver

func (c Chain) Resolve(ctx context.Context, zip string) (*Place, error) {
	for _, r := range c {
		place, err := r.Resolve(ctx, zip)
		if err == nil {
			return place, nil
		}
		if !errors.Is(err, ErrNotFound) {
			return nil, err
		}
	}
	return nil, fmt.Errorf("zip %q: %w", zip, ErrNotFound)
}

// normalize trims zip and reports whether it looks like a US ZIP code.
func normalize(zip string) (string, bool) {
	zip = strings.TrimSpace(zip)
	return zip, zipPattern.MatchString(zip)
}
