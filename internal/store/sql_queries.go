// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/skillfade/models"
)

// Query builders shared by both backends. The placeholder format ($1 vs ?)
// comes from the connection's statement builder, so the generated SQL is
// valid for whichever driver the DB was opened with. Both supported engines
// understand RETURNING and ON CONFLICT ... DO UPDATE.

const (
	userColumns  = "user_id, username, password_hash, created_at"
	skillColumns = "skill_id, user_id, skill_name, last_practice, decay_rate, updated_at"
)

func (db *DB) buildCreateUserQuery(user models.User) (string, []any, error) {
	return db.builder.
		Insert(user.TableName()).
		Columns("username", "password_hash").
		Values(user.Username, user.PasswordHash).
		Suffix("RETURNING " + userColumns).
		ToSql()
}

func (db *DB) buildFindUserByUsernameQuery(username string) (string, []any, error) {
	return db.builder.
		Select("user_id", "username", "password_hash", "created_at").
		From(models.User{}.TableName()).
		Where(sq.Eq{"username": username}).
		ToSql()
}

func (db *DB) buildUpsertSkillQuery(skill models.Skill) (string, []any, error) {
	return db.builder.
		Insert(skill.TableName()).
		Columns("user_id", "skill_name", "last_practice", "decay_rate", "updated_at").
		Values(skill.UserID, skill.Name, skill.LastPractice, skill.DecayRate, skill.UpdatedAt).
		Suffix(`ON CONFLICT (user_id, skill_name) DO UPDATE SET
			last_practice = excluded.last_practice,
			decay_rate = excluded.decay_rate,
			updated_at = excluded.updated_at
		RETURNING ` + skillColumns).
		ToSql()
}

func (db *DB) buildListSkillsQuery(userID int64) (string, []any, error) {
	return db.builder.
		Select("skill_id", "user_id", "skill_name", "last_practice", "decay_rate", "updated_at").
		From(models.Skill{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("skill_name").
		ToSql()
}

func (db *DB) buildGetSkillQuery(userID int64, name string) (string, []any, error) {
	return db.builder.
		Select("skill_id", "user_id", "skill_name", "last_practice", "decay_rate", "updated_at").
		From(models.Skill{}.TableName()).
		Where(sq.Eq{"user_id": userID, "skill_name": name}).
		ToSql()
}

func (db *DB) buildDeleteSkillQuery(userID int64, name string) (string, []any, error) {
	return db.builder.
		Delete(models.Skill{}.TableName()).
		Where(sq.Eq{"user_id": userID, "skill_name": name}).
		ToSql()
}
