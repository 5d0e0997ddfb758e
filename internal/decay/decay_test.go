package decay

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/skillfade/models"
)

func TestDaysSince(t *testing.T) {
	today := models.NewDate(2026, time.August, 31)

	tests := []struct {
		name         string
		lastPractice models.Date
		expected     int
	}{
		{"same day", models.NewDate(2026, time.August, 31), 0},
		{"yesterday", models.NewDate(2026, time.August, 30), 1},
		{"ten days ago", models.NewDate(2026, time.August, 21), 10},
		{"across month boundary", models.NewDate(2026, time.July, 31), 31},
		{"future date clamps to zero", models.NewDate(2026, time.September, 5), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DaysSince(tt.lastPractice, today))
		})
	}
}

func TestStrength(t *testing.T) {
	tests := []struct {
		name     string
		rate     float64
		days     int
		expected float64
	}{
		{"zero days is full strength", 0.04, 0, 100.00},
		{"reference scenario", 0.04, 10, 67.03},
		{"one day at slowest rate", 0.01, 1, 99.00},
		{"one day at fastest rate", 0.1, 1, 90.48},
		{"long gap", 0.1, 60, 0.25},
		{"negative days clamp to zero", 0.04, -3, 100.00},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Strength(tt.rate, tt.days))
		})
	}
}

func TestStrength_FullAtZeroForAnyRate(t *testing.T) {
	for _, rate := range []float64{0.01, 0.04, 0.07, 0.1} {
		assert.Equal(t, 100.00, Strength(rate, 0))
	}
}

func TestCurve(t *testing.T) {
	points := Curve(0.04, 10)

	require.Len(t, points, 11)
	assert.Equal(t, 0, points[0].Day)
	assert.Equal(t, 100.0, points[0].Strength)
	assert.Equal(t, 10, points[10].Day)

	// unrounded tail value
	expected := 100 * math.Exp(-0.04*10)
	assert.InDelta(t, expected, points[10].Strength, 1e-9)

	// strictly decreasing for a positive rate
	for i := 1; i < len(points); i++ {
		assert.Less(t, points[i].Strength, points[i-1].Strength)
	}
}

func TestCurve_ZeroDays(t *testing.T) {
	points := Curve(0.05, 0)

	require.Len(t, points, 1)
	assert.Equal(t, 0, points[0].Day)
	assert.Equal(t, 100.0, points[0].Strength)
}

func TestCurve_NegativeDaysClampToZero(t *testing.T) {
	points := Curve(0.05, -4)

	require.Len(t, points, 1)
	assert.Equal(t, 100.0, points[0].Strength)
}
