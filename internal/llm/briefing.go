// internal/llm/briefing.go
package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"weatherpro/pkg/weather"
)

const briefingSystem = `You are a concise weather presenter. Write at most three short sentences:
current conditions, what the next days look like, and one practical tip.
Use only the data given. Temperatures are in the units provided.`

// maxForecastBytes keeps the prompt small; the provider forecast has ~40 slots.
const maxForecastBytes = 6000

// Brief asks the model for a short narrative of current conditions and forecast.
func Brief(ctx context.Context, c Client, s weather.Summary, forecast json.RawMessage) (string, error) {
	fc := truncate(string(forecast), maxForecastBytes)
	var b strings.Builder
	fmt.Fprintf(&b, "City: %s\n", s.Name)
	fmt.Fprintf(&b, "Now: %s (%s), %.1f degrees, humidity %d%%, wind %.1f\n",
		s.Condition, s.Description, s.TempC, s.Humidity, s.WindSpeed)
	fmt.Fprintf(&b, "Forecast JSON (truncated): %s\n", fc)

	out, err := c.Complete(ctx, briefingSystem, b.String())
	if err != nil {
		return "", fmt.Errorf("briefing: %w", err)
	}
	return out, nil
}

// truncate cuts s to at most n bytes without splitting a UTF-8 sequence.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
