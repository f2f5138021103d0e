package service

import (
	"github.com/catcoat/backend/internal/domain"
	"github.com/catcoat/backend/pkg/utils"
)

// Recommend maps a weather reading onto a coat recommendation for one
// day/night context. Pure and total: every input lands in exactly one
// precipitation band and one coat band, so there is no error path.
func Recommend(tempC, windKmh, precipMm float64, isDay bool) domain.Recommendation {
	// Wind chill: nudge the temperature down proportionally to wind
	// speed, unclamped.
	adjusted := tempC - (0.1 * windKmh / 5.0)

	var precip string
	switch {
	case precipMm >= 1.0:
		precip = "Rainy"
	case precipMm > 0.1:
		precip = "Drizzly"
	default:
		precip = "Dry"
	}

	context := "Night (inside rug)"
	if isDay {
		context = "Day (outside rug)"
	}

	// Coat bands are half-open and evaluated low-to-high; a boundary
	// value belongs to the band above it.
	var coat, note string
	switch {
	case adjusted < -5:
		coat = "Thermal coat + booties"
		note = "Very cold. Limit outdoor time."
	case adjusted < 5:
		coat = "Insulated coat"
		note = "Chilly. Keep sessions short."
	case adjusted < 12:
		coat = "Light coat"
		note = "Cool but manageable."
	case adjusted < 20:
		coat = "No coat, optional light vest"
		note = "Comfortable temps."
	default:
		coat = "No coat"
		note = "Warm. Provide shade and water."
	}

	if !isDay {
		note += " Use a cozy indoor rug/blanket for naps."
	}

	return domain.Recommendation{
		Context:       context,
		Coat:          coat,
		Note:          note,
		Precip:        precip,
		AdjustedTempC: utils.RoundTo(adjusted, 1),
	}
}

// RecommendBoth builds the day/night pair every caller returns. Both
// recommendations derive from the same reading; only the context flag
// differs.
func RecommendBoth(r domain.WeatherReading) domain.RecommendationPair {
	return domain.RecommendationPair{
		Day:   Recommend(r.TemperatureC, r.WindKmh, r.PrecipitationMm, true),
		Night: Recommend(r.TemperatureC, r.WindKmh, r.PrecipitationMm, false),
	}
}
