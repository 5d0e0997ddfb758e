package service

import (
	"context"

	"github.com/MKhiriev/skillfade/models"
)

// AuthService handles account registration, credential verification and the
// JWT token lifecycle.
type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// SkillService handles the tracked skills of an account and derives decay
// reports from them.
type SkillService interface {
	// SaveSkill validates and persists a skill. Saving an existing name
	// overwrites the stored record.
	SaveSkill(ctx context.Context, skill models.Skill) (models.Skill, error)
	ListSkills(ctx context.Context, userID int64) ([]models.Skill, error)
	GetSkill(ctx context.Context, userID int64, name string) (models.Skill, error)
	// DeleteSkill removes the named skill; deleting an absent one is a no-op.
	DeleteSkill(ctx context.Context, userID int64, name string) error
	// BuildReport computes the full dashboard state for one skill as of today.
	BuildReport(ctx context.Context, userID int64, name string) (models.SkillReport, error)
}
