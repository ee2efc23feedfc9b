// internal/services/background.go
// Pemetaan kondisi cuaca + siang/malam ke gradient background UI

package services

import "time"

type gradient struct{ day, night string }

const DefaultBackground = "linear-gradient(135deg, #667eea 0%, #764ba2 100%)"

const duskNight = "linear-gradient(135deg, #232526 0%, #414345 100%)"

var backgrounds = map[string]gradient{
	"Clear":        {"linear-gradient(135deg, #667eea 0%, #764ba2 100%)", "linear-gradient(135deg, #2c3e50 0%, #4ca1af 100%)"},
	"Clouds":       {"linear-gradient(135deg, #757F9A 0%, #D7DDE8 100%)", "linear-gradient(135deg, #485563 0%, #29323c 100%)"},
	"Rain":         {"linear-gradient(135deg, #4b6cb7 0%, #182848 100%)", "linear-gradient(135deg, #0f2027 0%, #203a43 100%)"},
	"Drizzle":      {"linear-gradient(135deg, #89f7fe 0%, #66a6ff 100%)", "linear-gradient(135deg, #2c5364 0%, #203a43 100%)"},
	"Thunderstorm": {"linear-gradient(135deg, #373B44 0%, #4286f4 100%)", "linear-gradient(135deg, #141E30 0%, #243B55 100%)"},
	"Snow":         {"linear-gradient(135deg, #E6DADA 0%, #274046 100%)", "linear-gradient(135deg, #2c3e50 0%, #bdc3c7 100%)"},
	"Mist":         {"linear-gradient(135deg, #606c88 0%, #3f4c6b 100%)", duskNight},
	"Smoke":        {"linear-gradient(135deg, #606c88 0%, #3f4c6b 100%)", duskNight},
	"Haze":         {"linear-gradient(135deg, #f3904f 0%, #3b4371 100%)", duskNight},
	"Dust":         {"linear-gradient(135deg, #BE93C5 0%, #7BC6CC 100%)", duskNight},
	"Fog":          {"linear-gradient(135deg, #606c88 0%, #3f4c6b 100%)", duskNight},
	"Sand":         {"linear-gradient(135deg, #d9a7c7 0%, #fffcdc 100%)", duskNight},
	"Ash":          {"linear-gradient(135deg, #606c88 0%, #3f4c6b 100%)", duskNight},
	"Squall":       {"linear-gradient(135deg, #373B44 0%, #4286f4 100%)", "linear-gradient(135deg, #141E30 0%, #243B55 100%)"},
	"Tornado":      {"linear-gradient(135deg, #141E30 0%, #243B55 100%)", "linear-gradient(135deg, #000000 0%, #434343 100%)"},
}

// IsNight reports whether now is past the given sunset (unix seconds).
// A zero sunset means unknown and is treated as day.
func IsNight(sunset int64, now time.Time) bool {
	if sunset == 0 {
		return false
	}
	return now.Unix() > sunset
}

func Background(condition string, night bool) string {
	g, ok := backgrounds[condition]
	if !ok {
		return DefaultBackground
	}
	if night {
		return g.night
	}
	return g.day
}
