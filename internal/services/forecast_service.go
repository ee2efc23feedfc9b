// internal/services/forecast_service.go
// Ringkasan forecast 5 hari: kartu harian (slot 12:00) & rata-rata 24 jam untuk chart

package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
)

type forecastSlot struct {
	Dt    int64  `json:"dt"`
	DtTxt string `json:"dt_txt"`
	Main  struct {
		Temp     float64 `json:"temp"`
		Humidity float64 `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
}

type forecastPayload struct {
	List []forecastSlot `json:"list"`
}

type DayCard struct {
	Dt          int64   `json:"dt"`
	Temp        float64 `json:"temp"`
	Condition   string  `json:"condition"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
}

type ChartPoint struct {
	Dt   int64   `json:"dt"`
	Temp float64 `json:"temp"`
}

// Overview drives the charts: next 24h temperatures plus averages.
type Overview struct {
	Temperatures []ChartPoint `json:"temperatures"`
	AvgTemp      float64      `json:"avg_temp"`
	AvgHumidity  float64      `json:"avg_humidity"`
	AvgWind      float64      `json:"avg_wind"`
}

const (
	maxDayCards   = 5
	overviewSlots = 8 // 8 x 3h
	middaySuffix  = "12:00:00"
)

func decodeForecast(raw json.RawMessage) (forecastPayload, error) {
	var p forecastPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return p, fmt.Errorf("decode forecast: %w", err)
	}
	return p, nil
}

// DailyCards picks one slot per day (the 12:00 one), at most five.
func DailyCards(raw json.RawMessage) ([]DayCard, error) {
	p, err := decodeForecast(raw)
	if err != nil {
		return nil, err
	}
	out := make([]DayCard, 0, maxDayCards)
	for _, s := range p.List {
		if !strings.HasSuffix(s.DtTxt, middaySuffix) {
			continue
		}
		c := DayCard{Dt: s.Dt, Temp: math.Round(s.Main.Temp)}
		if len(s.Weather) > 0 {
			c.Condition = s.Weather[0].Main
			c.Description = s.Weather[0].Description
			c.Icon = s.Weather[0].Icon
		}
		out = append(out, c)
		if len(out) == maxDayCards {
			break
		}
	}
	return out, nil
}

// ForecastOverview averages the first 24 hours of slots.
func ForecastOverview(raw json.RawMessage) (Overview, error) {
	p, err := decodeForecast(raw)
	if err != nil {
		return Overview{}, err
	}
	slots := p.List
	if len(slots) > overviewSlots {
		slots = slots[:overviewSlots]
	}
	if len(slots) == 0 {
		return Overview{}, errors.New("empty forecast")
	}

	var temps, hums, winds []float64
	ov := Overview{Temperatures: make([]ChartPoint, 0, len(slots))}
	for _, s := range slots {
		ov.Temperatures = append(ov.Temperatures, ChartPoint{Dt: s.Dt, Temp: math.Round(s.Main.Temp)})
		temps = append(temps, s.Main.Temp)
		hums = append(hums, s.Main.Humidity)
		winds = append(winds, s.Wind.Speed)
	}
	ov.AvgTemp = round1(mean(temps))
	ov.AvgHumidity = round1(mean(hums))
	ov.AvgWind = round1(mean(winds))
	return ov, nil
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

func round1(x float64) float64 { return math.Round(x*10) / 10 }
