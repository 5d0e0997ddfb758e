package tui

import (
	"github.com/NimbleMarkets/ntcharts/sparkline"

	"github.com/MKhiriev/skillfade/models"
)

const (
	sparklineWidth  = 48
	sparklineHeight = 6
)

// renderCurveSparkline renders the decay curve as a terminal sparkline,
// day 0 on the left, today on the right.
func renderCurveSparkline(curve []models.CurvePoint) string {
	if len(curve) == 0 {
		return helpStyle.Render("(нет данных)")
	}

	width := sparklineWidth
	if len(curve) < width {
		width = len(curve)
	}

	spark := sparkline.New(width, sparklineHeight)
	for _, p := range curve {
		spark.Push(p.Strength)
	}

	return chartStyle.Render(spark.View())
}
