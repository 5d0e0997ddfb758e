package decay

// Status labels for the three strength tiers.
const (
	StatusHealthy        = "Healthy"
	StatusNeedsAttention = "Needs attention"
	StatusCritical       = "Critical"
)

// Practice recommendations matching the three tiers.
const (
	AdviceHealthy        = "Light revision once a week"
	AdviceNeedsAttention = "Practice 3 times a week"
	AdviceCritical       = "Daily intensive practice needed"
)

// Tier boundaries. A score above healthyThreshold is healthy, a score above
// criticalThreshold still only needs attention, everything at or below it is
// critical. The same boundaries drive both the status label and the advice.
const (
	healthyThreshold  = 75.0
	criticalThreshold = 40.0
)

// staleAfterDays is how long a skill may go unpracticed before the stale
// reminder fires.
const staleAfterDays = 7

// Classify maps a strength score to its tier label and the matching practice
// recommendation.
func Classify(score float64) (status, advice string) {
	switch {
	case score > healthyThreshold:
		return StatusHealthy, AdviceHealthy
	case score > criticalThreshold:
		return StatusNeedsAttention, AdviceNeedsAttention
	default:
		return StatusCritical, AdviceCritical
	}
}

// Stale reports whether the skill has gone unpracticed for more than a week.
// It depends only on elapsed time, not on the score.
func Stale(days int) bool {
	return days > staleAfterDays
}

// CriticalAlert reports whether the score has fallen below the critical
// threshold. Note the boundary: a score of exactly 40 classifies as Critical
// but does not fire the alert, mirroring the strict comparison of Classify.
func CriticalAlert(score float64) bool {
	return score < criticalThreshold
}
