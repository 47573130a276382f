package geocode

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/spencer-p/idealtime/pkg/geo"
)

func newTestOpenCage(t *testing.T, h http.HandlerFunc) *OpenCage {
	t.Helper()
	server := httptest.NewServer(h)
	t.Cleanup(server.Close)
	g := NewOpenCage("test-key", server.Client())
	g.baseURL = server.URL
	return g
}

func TestOpenCageResolve(t *testing.T) {
	g := newTestOpenCage(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("q") != "95060" {
			t.Errorf("q = %q, want 95060", q.Get("q"))
		}
		if q.Get("key") != "test-key" {
			t.Errorf("key = %q, want test-key", q.Get("key"))
		}
		if q.Get("countrycode") != "us" {
			t.Errorf("countrycode = %q, want us", q.Get("countrycode"))
		}
		w.Write([]byte(`{"results":[{"geometry":{"lat":36.9741,"lng":-122.0308},
			"components":{"town":"Santa Cruz","state":"California","postcode":"95060"}}]}`))
	})

	got, err := g.Resolve(context.Background(), " 95060 ")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	want := &Place{
		Location: geo.Location{Latitude: 36.9741, Longitude: -122.0308},
		Zip:      "95060",
		City:     "Santa Cruz",
		State:    "California",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Resolve() (-want,+got):\n%s", diff)
	}
}

func TestOpenCageNoResults(t *testing.T) {
	g := newTestOpenCage(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"results":[]}`))
	})
	_, err := g.Resolve(context.Background(), "00000")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Resolve() error = %v, want ErrNotFound", err)
	}
}

func TestOpenCageMalformedZip(t *testing.T) {
	g := newTestOpenCage(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected upstream call for malformed zip")
	})
	for _, zip := range []string{"", "abcde", "1234", "123456"} {
		if _, err := g.Resolve(context.Background(), zip); !errors.Is(err, ErrNotFound) {
			t.Errorf("Resolve(%q) error = %v, want ErrNotFound", zip, err)
		}
	}
}

func TestOpenCageUpstreamError(t *testing.T) {
	g := newTestOpenCage(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
	})
	_, err := g.Resolve(context.Background(), "95060")
	if err == nil || errors.Is(err, ErrNotFound) {
		t.Errorf("Resolve() error = %v, want a non-NotFound error", err)
	}
}

type fakeResolver struct {
	place *Place
	err   error
	calls int
}

func (f *fakeResolver) Resolve(ctx context.Context, zip string) (*Place, error) {
	f.calls++
	return f.place, f.err
}

func TestChain(t *testing.T) {
	hit := &Place{Zip: "95060"}
	boom := errors.New("boom")

	t.Run("falls through not found", func(t *testing.T) {
		first := &fakeResolver{err: ErrNotFound}
		second := &fakeResolver{place: hit}
		got, err := Chain{first, second}.Resolve(context.Background(), "95060")
		if err != nil || got != hit {
			t.Errorf("got %v, %v; want %v, nil", got, err, hit)
		}
	})

	t.Run("stops on other errors", func(t *testing.T) {
		first := &fakeResolver{err: boom}
		second := &fakeResolver{place: hit}
		_, err := Chain{first, second}.Resolve(context.Background(), "95060")
		if !errors.Is(err, boom) {
			t.Errorf("err = %v, want boom", err)
		}
		if second.calls != 0 {
			t.Errorf("second resolver called %d times", second.calls)
		}
	})

	t.Run("all miss", func(t *testing.T) {
		_, err := Chain{&fakeResolver{err: ErrNotFound}}.Resolve(context.Background(), "95060")
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("err = %v, want ErrNotFound", err)
		}
	})
}
