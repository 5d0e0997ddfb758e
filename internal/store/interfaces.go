package store

import (
	"context"

	"github.com/MKhiriev/skillfade/models"
)

// UserRepository provides persistence for user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
}

// SkillRepository provides persistence for tracked skills. All methods are
// scoped to a single owning user; records of other users are never visible.
type SkillRepository interface {
	// UpsertSkill inserts the skill or, when a record with the same
	// (user_id, skill_name) already exists, overwrites its last-practice
	// date and decay rate. Returns the stored record.
	UpsertSkill(ctx context.Context, skill models.Skill) (models.Skill, error)
	ListSkills(ctx context.Context, userID int64) ([]models.Skill, error)
	GetSkill(ctx context.Context, userID int64, name string) (models.Skill, error)
	// DeleteSkill removes the named skill. Deleting an absent skill is not
	// an error; the returned count tells how many rows were removed.
	DeleteSkill(ctx context.Context, userID int64, name string) (int64, error)
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
