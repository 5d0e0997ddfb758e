package service

import (
	"strings"

	"github.com/MKhiriev/skillfade/models"
)

// Accepted bounds for the per-day decay rate.
const (
	minDecayRate = 0.01
	maxDecayRate = 0.1
)

// validateSkill checks a skill payload before it is persisted.
func validateSkill(skill models.Skill) error {
	if skill.UserID == 0 {
		return ErrValidationNoUserID
	}
	if strings.TrimSpace(skill.Name) == "" {
		return ErrValidationEmptySkillName
	}
	if skill.LastPractice.IsZero() {
		return ErrValidationNoLastPractice
	}
	if skill.DecayRate < minDecayRate || skill.DecayRate > maxDecayRate {
		return ErrValidationDecayRateBounds
	}

	return nil
}
