package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/skillfade/internal/logger"
	"github.com/MKhiriev/skillfade/models"
)

// skillRepository is the SQL-backed implementation of [SkillRepository].
// Every query is scoped by user_id so one account can never touch another
// account's records.
type skillRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSkillRepository constructs a [SkillRepository] backed by the provided
// database connection and logger.
func NewSkillRepository(db *DB, logger *logger.Logger) SkillRepository {
	logger.Debug().Msg("creating skill repository")
	return &skillRepository{
		db:     db,
		logger: logger,
	}
}

// UpsertSkill inserts the skill or overwrites the existing record with the
// same (user_id, skill_name). The ON CONFLICT target is the unique index on
// that pair, so the operation is atomic; no read-then-write race exists.
// Returns the stored record with server-assigned fields populated.
func (r *skillRepository) UpsertSkill(ctx context.Context, skill models.Skill) (models.Skill, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildUpsertSkillQuery(skill)
	if err != nil {
		log.Err(err).Str("func", "*skillRepository.UpsertSkill").Msg("error: building query")
		return models.Skill{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*skillRepository.UpsertSkill").Msg("error: query failed")
		if r.db.errorClassificator.Classify(err) == Retryable {
			log.Warn().Str("func", "*skillRepository.UpsertSkill").Msg("transient database error")
		}
		return models.Skill{}, &StorageError{Op: "upsert skill", Err: err}
	}

	var saved models.Skill
	if err := row.Scan(&saved.SkillID, &saved.UserID, &saved.Name, &saved.LastPractice, &saved.DecayRate, &saved.UpdatedAt); err != nil {
		log.Err(err).Str("func", "*skillRepository.UpsertSkill").Msg("error: scanning error")
		return models.Skill{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return saved, nil
}

// ListSkills returns all skills of the given user ordered by name. An account
// with no skills yields an empty slice, not an error.
func (r *skillRepository) ListSkills(ctx context.Context, userID int64) ([]models.Skill, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildListSkillsQuery(userID)
	if err != nil {
		log.Err(err).Str("func", "*skillRepository.ListSkills").Msg("error: building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*skillRepository.ListSkills").Msg("error: query failed")
		if r.db.errorClassificator.Classify(err) == Retryable {
			log.Warn().Str("func", "*skillRepository.ListSkills").Msg("transient database error")
		}
		return nil, &StorageError{Op: "list skills", Err: err}
	}
	defer rows.Close()

	skills := make([]models.Skill, 0)
	for rows.Next() {
		var skill models.Skill
		if err := rows.Scan(&skill.SkillID, &skill.UserID, &skill.Name, &skill.LastPractice, &skill.DecayRate, &skill.UpdatedAt); err != nil {
			log.Err(err).Str("func", "*skillRepository.ListSkills").Msg("error: scanning error")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		skills = append(skills, skill)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*skillRepository.ListSkills").Msg("error: rows iteration error")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return skills, nil
}

// GetSkill retrieves a single skill by name.
//
// Error handling:
//   - no matching record → [ErrSkillNotFound].
func (r *skillRepository) GetSkill(ctx context.Context, userID int64, name string) (models.Skill, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildGetSkillQuery(userID, name)
	if err != nil {
		log.Err(err).Str("func", "*skillRepository.GetSkill").Msg("error: building query")
		return models.Skill{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var skill models.Skill
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*skillRepository.GetSkill").Msg("error: query failed")
		return models.Skill{}, &StorageError{Op: "get skill", Err: err}
	}

	if err := row.Scan(&skill.SkillID, &skill.UserID, &skill.Name, &skill.LastPractice, &skill.DecayRate, &skill.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Skill{}, ErrSkillNotFound
		}
		log.Err(err).Str("func", "*skillRepository.GetSkill").Msg("error: scanning error")
		return models.Skill{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return skill, nil
}

// DeleteSkill removes the named skill and reports how many rows were deleted.
// Deleting a skill that does not exist returns zero without an error.
func (r *skillRepository) DeleteSkill(ctx context.Context, userID int64, name string) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildDeleteSkillQuery(userID, name)
	if err != nil {
		log.Err(err).Str("func", "*skillRepository.DeleteSkill").Msg("error: building query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*skillRepository.DeleteSkill").Msg("error: exec failed")
		if r.db.errorClassificator.Classify(err) == Retryable {
			log.Warn().Str("func", "*skillRepository.DeleteSkill").Msg("transient database error")
		}
		return 0, &StorageError{Op: "delete skill", Err: err}
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*skillRepository.DeleteSkill").Msg("error: rows affected")
		return 0, &StorageError{Op: "delete skill", Err: err}
	}

	return affected, nil
}
