// pkg/weather/summary.go
package weather

import (
	"encoding/json"
	"fmt"
	"time"
)

// Summary is the handful of fields the service reads out of a current-weather payload.
type Summary struct {
	Name        string  `json:"name"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	Condition   string  `json:"condition"`
	Description string  `json:"description"`
	TempC       float64 `json:"temp"`
	Humidity    int     `json:"humidity"`
	WindSpeed   float64 `json:"wind_speed"`
	Sunrise     int64   `json:"sunrise"`
	Sunset      int64   `json:"sunset"`
}

func (s Summary) SunsetTime() time.Time { return time.Unix(s.Sunset, 0) }

type currentPayload struct {
	Name  string `json:"name"`
	Coord struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	} `json:"coord"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
	Main struct {
		Temp     float64 `json:"temp"`
		Humidity int     `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Sys struct {
		Sunrise int64 `json:"sunrise"`
		Sunset  int64 `json:"sunset"`
	} `json:"sys"`
}

func Summarize(current json.RawMessage) (Summary, error) {
	var p currentPayload
	if err := json.Unmarshal(current, &p); err != nil {
		return Summary{}, fmt.Errorf("decode current weather: %w", err)
	}
	s := Summary{
		Name:      p.Name,
		Lat:       p.Coord.Lat,
		Lon:       p.Coord.Lon,
		TempC:     p.Main.Temp,
		Humidity:  p.Main.Humidity,
		WindSpeed: p.Wind.Speed,
		Sunrise:   p.Sys.Sunrise,
		Sunset:    p.Sys.Sunset,
	}
	if len(p.Weather) > 0 {
		s.Condition = p.Weather[0].Main
		s.Description = p.Weather[0].Description
	}
	return s, nil
}

func (s Summary) String() string {
	return fmt.Sprintf("%s: %.1f C, %s", s.Name, s.TempC, s.Condition)
}
