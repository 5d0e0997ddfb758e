// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the skillfade server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// application from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/skillfade/models"
)

// ServerAdapter defines transport-agnostic communication with the skillfade
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// authenticated requests. It should be called immediately after a
	// successful Register or Login.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register sends a registration request with the provided credentials.
	// On success it stores the returned bearer token via SetToken and returns
	// the user with the server-assigned ID filled in.
	Register(ctx context.Context, user models.User) (models.User, error)

	// Login authenticates the user with the server. On success it stores the
	// returned bearer token via SetToken.
	Login(ctx context.Context, user models.User) (models.User, error)

	// SaveSkill creates or overwrites a skill record on the server. Requires
	// a valid bearer token.
	SaveSkill(ctx context.Context, skill models.Skill) (models.Skill, error)

	// ListSkills fetches every skill of the authenticated account, ordered
	// by name.
	ListSkills(ctx context.Context) ([]models.Skill, error)

	// GetSkill fetches a single skill by name. Returns [ErrNotFound]
	// (wrapped) if the server has no such skill.
	GetSkill(ctx context.Context, name string) (models.Skill, error)

	// DeleteSkill removes the named skill. Deleting an absent skill is not an
	// error.
	DeleteSkill(ctx context.Context, name string) error

	// GetReport fetches the full dashboard report for the named skill:
	// current score, tier, advice, decay curve, flags, and adjacent skill
	// suggestions.
	GetReport(ctx context.Context, name string) (models.SkillReport, error)
}
