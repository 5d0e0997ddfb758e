// Package decay implements the skill-strength model: an exponential decay of
// practice strength over time, a three-tier classification of the resulting
// score, and suggestions for adjacent skills to pick up next.
//
// Everything in this package is pure computation. Scores are recomputed from
// the stored (last practice, decay rate) pair on every read, so there is no
// cached state to go stale.
package decay

import (
	"math"

	"github.com/MKhiriev/skillfade/models"
)

// FullStrength is the strength percentage of a skill practiced today.
const FullStrength = 100.0

// DaysSince returns the number of whole days between the last practice date
// and today. A last-practice date in the future counts as zero days, never
// negative, so a fresh skill always reports full strength.
func DaysSince(lastPractice, today models.Date) int {
	days := int(today.Sub(lastPractice.Time).Hours() / 24)
	if days < 0 {
		return 0
	}

	return days
}

// Strength returns the current strength percentage after the given number of
// days without practice, rounded to two decimals:
//
//	strength = 100 · e^(−rate·days)
//
// Negative day counts are clamped to zero, so Strength(rate, 0) == 100 holds
// for any rate.
func Strength(rate float64, days int) float64 {
	return round2(rawStrength(rate, days))
}

// Curve samples the decay curve at every whole day from day 0 through the
// given day inclusive. Values are unrounded; rounding is a presentation
// concern of the single current score.
func Curve(rate float64, days int) []models.CurvePoint {
	if days < 0 {
		days = 0
	}

	points := make([]models.CurvePoint, 0, days+1)
	for d := 0; d <= days; d++ {
		points = append(points, models.CurvePoint{
			Day:      d,
			Strength: rawStrength(rate, d),
		})
	}

	return points
}

func rawStrength(rate float64, days int) float64 {
	if days < 0 {
		days = 0
	}

	return FullStrength * math.Exp(-rate*float64(days))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
