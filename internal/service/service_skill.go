package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/skillfade/internal/decay"
	"github.com/MKhiriev/skillfade/internal/logger"
	"github.com/MKhiriev/skillfade/internal/store"
	"github.com/MKhiriev/skillfade/models"
)

// skillService is the concrete implementation of SkillService. Persistence
// goes through a SkillRepository; all decay math is delegated to the decay
// package and computed fresh on every read.
type skillService struct {
	skillRepository store.SkillRepository
	logger          *logger.Logger

	// today supplies the current date; swapped out in tests.
	today func() models.Date
}

// NewSkillService constructs a SkillService wired to the given repository.
func NewSkillService(skillRepository store.SkillRepository, logger *logger.Logger) SkillService {
	return &skillService{
		skillRepository: skillRepository,
		logger:          logger,
		today:           models.Today,
	}
}

// SaveSkill validates the skill and persists it. A record with the same name
// is fully overwritten: the stored last-practice date and decay rate are
// replaced, never merged.
func (s *skillService) SaveSkill(ctx context.Context, skill models.Skill) (models.Skill, error) {
	log := logger.FromContext(ctx)

	if err := validateSkill(skill); err != nil {
		log.Error().Str("skill", skill.Name).Err(err).Msg("invalid skill data provided")
		return models.Skill{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	skill.UpdatedAt = time.Now().UTC()

	saved, err := s.skillRepository.UpsertSkill(ctx, skill)
	if err != nil {
		log.Err(err).Str("skill", skill.Name).Msg("skill save ended with error")
		return models.Skill{}, fmt.Errorf("skill save ended with error: %w", err)
	}

	return saved, nil
}

// ListSkills returns every skill of the account ordered by name.
func (s *skillService) ListSkills(ctx context.Context, userID int64) ([]models.Skill, error) {
	log := logger.FromContext(ctx)

	if userID == 0 {
		return nil, ErrValidationNoUserID
	}

	skills, err := s.skillRepository.ListSkills(ctx, userID)
	if err != nil {
		log.Err(err).Int64("userID", userID).Msg("skill listing ended with error")
		return nil, fmt.Errorf("skill listing ended with error: %w", err)
	}

	return skills, nil
}

// GetSkill returns a single skill by name.
func (s *skillService) GetSkill(ctx context.Context, userID int64, name string) (models.Skill, error) {
	log := logger.FromContext(ctx)

	if userID == 0 {
		return models.Skill{}, ErrValidationNoUserID
	}
	if name == "" {
		return models.Skill{}, ErrValidationEmptySkillName
	}

	skill, err := s.skillRepository.GetSkill(ctx, userID, name)
	if err != nil {
		log.Err(err).Str("skill", name).Msg("skill lookup ended with error")
		return models.Skill{}, fmt.Errorf("skill lookup ended with error: %w", err)
	}

	return skill, nil
}

// DeleteSkill removes the named skill. Deleting a skill that does not exist
// succeeds silently; the end state is the same either way.
func (s *skillService) DeleteSkill(ctx context.Context, userID int64, name string) error {
	log := logger.FromContext(ctx)

	if userID == 0 {
		return ErrValidationNoUserID
	}
	if name == "" {
		return ErrValidationEmptySkillName
	}

	affected, err := s.skillRepository.DeleteSkill(ctx, userID, name)
	if err != nil {
		log.Err(err).Str("skill", name).Msg("skill deletion ended with error")
		return fmt.Errorf("skill deletion ended with error: %w", err)
	}

	if affected == 0 {
		log.Debug().Str("skill", name).Msg("delete of absent skill, nothing to do")
	}

	return nil
}

// BuildReport loads the skill and derives its full dashboard state as of
// today: elapsed days, current score, tier classification, the decay curve
// from the last practice day to now, both advisory flags, and adjacent skill
// suggestions.
func (s *skillService) BuildReport(ctx context.Context, userID int64, name string) (models.SkillReport, error) {
	skill, err := s.GetSkill(ctx, userID, name)
	if err != nil {
		return models.SkillReport{}, err
	}

	days := decay.DaysSince(skill.LastPractice, s.today())
	score := decay.Strength(skill.DecayRate, days)
	status, advice := decay.Classify(score)

	return models.SkillReport{
		Skill:       skill,
		DaysElapsed: days,
		Score:       score,
		Status:      status,
		Advice:      advice,
		Curve:       decay.Curve(skill.DecayRate, days),
		Stale:       decay.Stale(days),
		Critical:    decay.CriticalAlert(score),
		Adjacent:    decay.SuggestAdjacent(skill.Name),
	}, nil
}
