package weather_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"weatherpro/pkg/weather"
)

func newProvider(t *testing.T, h http.HandlerFunc) *weather.Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return weather.NewClient(weather.Options{APIKey: "k", BaseURL: srv.URL, GeoURL: srv.URL + "/geo"})
}

func TestCurrentByCityPassesQuery(t *testing.T) {
	c := newProvider(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if r.URL.Path != "/weather" || q.Get("q") != "Paris" || q.Get("appid") != "k" || q.Get("units") != "metric" {
			t.Errorf("unexpected request %s", r.URL.String())
		}
		w.Write([]byte(`{"name":"Paris","weather":[{"main":"Clear"}],"main":{"temp":21.5},"sys":{"sunset":1700000000}}`))
	})

	raw, err := c.Current(context.Background(), weather.ByCity(" Paris "))
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	s, err := weather.Summarize(raw)
	if err != nil {
		t.Fatalf("summarize: %v", err)
	}
	if s.Name != "Paris" || s.Condition != "Clear" || s.TempC != 21.5 || s.Sunset != 1700000000 {
		t.Fatalf("unexpected summary %+v", s)
	}
}

func TestForecastByCoords(t *testing.T) {
	c := newProvider(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if r.URL.Path != "/forecast" || q.Get("lat") != "48.85" || q.Get("lon") != "2.35" || q.Has("q") {
			t.Errorf("unexpected request %s", r.URL.String())
		}
		w.Write([]byte(`{"list":[]}`))
	})
	if _, err := c.Forecast(context.Background(), weather.ByCoords(48.85, 2.35)); err != nil {
		t.Fatalf("forecast: %v", err)
	}
}

func TestStatusMapping(t *testing.T) {
	cases := []struct {
		code int
		want error
	}{
		{http.StatusNotFound, weather.ErrCityNotFound},
		{http.StatusTooManyRequests, weather.ErrRateLimited},
	}
	for _, tc := range cases {
		c := newProvider(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tc.code)
		})
		if _, err := c.Current(context.Background(), weather.ByCity("x")); !errors.Is(err, tc.want) {
			t.Errorf("status %d: expected %v, got %v", tc.code, tc.want, err)
		}
	}

	c := newProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	_, err := c.Current(context.Background(), weather.ByCity("x"))
	var se *weather.StatusError
	if !errors.As(err, &se) || se.Code != http.StatusInternalServerError {
		t.Fatalf("expected StatusError 500, got %v", err)
	}
}

func TestEmptyQueryRejected(t *testing.T) {
	c := weather.NewClient(weather.Options{})
	if _, err := c.Current(context.Background(), weather.ByCity("  ")); !errors.Is(err, weather.ErrNoQuery) {
		t.Fatalf("expected ErrNoQuery, got %v", err)
	}
}

func TestSearchCitiesUsesGeoEndpoint(t *testing.T) {
	c := newProvider(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/geo" || r.URL.Query().Get("limit") != "5" {
			t.Errorf("unexpected request %s", r.URL.String())
		}
		w.Write([]byte(`[{"name":"Lima"}]`))
	})
	raw, err := c.SearchCities(context.Background(), "Lim", 0)
	if err != nil || string(raw) != `[{"name":"Lima"}]` {
		t.Fatalf("unexpected result %s (%v)", raw, err)
	}
}

func TestInvalidJSONRejected(t *testing.T) {
	c := newProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html>`))
	})
	if _, err := c.AirQuality(context.Background(), 1, 2); err == nil {
		t.Fatal("expected error for invalid JSON")
	}
}
