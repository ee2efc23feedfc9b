// pkg/weather/client.go
// Client OpenWeatherMap: cuaca saat ini, forecast 5 hari, kualitas udara, geocoding.
// Payload dikembalikan mentah (json.RawMessage) supaya bisa di-cache apa adanya.

package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultBaseURL = "https://api.openweathermap.org/data/2.5"
	DefaultGeoURL  = "https://api.openweathermap.org/geo/1.0/direct"

	endpointCurrent  = "/weather"
	endpointForecast = "/forecast"
	endpointAir      = "/air_pollution"
)

var (
	ErrCityNotFound = errors.New("weather: city not found")
	ErrRateLimited  = errors.New("weather: rate limit exceeded")
	ErrNoQuery      = errors.New("weather: either city or coordinates must be provided")
)

// StatusError is a non-2xx reply other than 404/429.
type StatusError struct {
	Endpoint string
	Code     int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("weather: %s returned HTTP %d", e.Endpoint, e.Code)
}

// Query selects a location by city name or by coordinates.
type Query struct {
	City      string
	Lat, Lon  float64
	HasCoords bool
}

func ByCity(city string) Query        { return Query{City: city} }
func ByCoords(lat, lon float64) Query { return Query{Lat: lat, Lon: lon, HasCoords: true} }

func (q Query) values() (url.Values, error) {
	v := url.Values{}
	switch {
	case q.HasCoords:
		v.Set("lat", strconv.FormatFloat(q.Lat, 'f', -1, 64))
		v.Set("lon", strconv.FormatFloat(q.Lon, 'f', -1, 64))
	case strings.TrimSpace(q.City) != "":
		v.Set("q", strings.TrimSpace(q.City))
	default:
		return nil, ErrNoQuery
	}
	return v, nil
}

type Options struct {
	APIKey  string
	BaseURL string
	GeoURL  string
	Units   string // metric | imperial | standard
	Timeout time.Duration
}

type Client struct {
	apiKey  string
	baseURL string
	geoURL  string
	units   string
	http    *http.Client
}

func NewClient(o Options) *Client {
	if o.BaseURL == "" {
		o.BaseURL = DefaultBaseURL
	}
	if o.GeoURL == "" {
		o.GeoURL = DefaultGeoURL
	}
	if o.Units == "" {
		o.Units = "metric"
	}
	if o.Timeout <= 0 {
		o.Timeout = 10 * time.Second
	}
	return &Client{
		apiKey:  o.APIKey,
		baseURL: strings.TrimRight(o.BaseURL, "/"),
		geoURL:  o.GeoURL,
		units:   o.Units,
		http:    &http.Client{Timeout: o.Timeout},
	}
}

// Current returns the provider's current-weather JSON.
func (c *Client) Current(ctx context.Context, q Query) (json.RawMessage, error) {
	v, err := q.values()
	if err != nil {
		return nil, err
	}
	v.Set("units", c.units)
	return c.get(ctx, "current", c.baseURL+endpointCurrent, v)
}

// Forecast returns the 5-day / 3-hour forecast JSON.
func (c *Client) Forecast(ctx context.Context, q Query) (json.RawMessage, error) {
	v, err := q.values()
	if err != nil {
		return nil, err
	}
	v.Set("units", c.units)
	return c.get(ctx, "forecast", c.baseURL+endpointForecast, v)
}

func (c *Client) AirQuality(ctx context.Context, lat, lon float64) (json.RawMessage, error) {
	v, _ := ByCoords(lat, lon).values()
	return c.get(ctx, "air_pollution", c.baseURL+endpointAir, v)
}

// SearchCities calls the geocoding endpoint for autocomplete.
func (c *Client) SearchCities(ctx context.Context, query string, limit int) (json.RawMessage, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrNoQuery
	}
	if limit <= 0 || limit > 5 {
		limit = 5
	}
	v := url.Values{}
	v.Set("q", query)
	v.Set("limit", strconv.Itoa(limit))
	return c.get(ctx, "geocoding", c.geoURL, v)
}

func (c *Client) get(ctx context.Context, name, endpoint string, v url.Values) (json.RawMessage, error) {
	v.Set("appid", c.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+v.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", name, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s request: %w", name, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrCityNotFound
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, ErrRateLimited
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, &StatusError{Endpoint: name, Code: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, fmt.Errorf("read %s body: %w", name, err)
	}
	if !json.Valid(body) {
		return nil, fmt.Errorf("%s: provider returned invalid JSON", name)
	}
	return json.RawMessage(body), nil
}
