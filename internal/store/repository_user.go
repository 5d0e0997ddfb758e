package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/skillfade/internal/logger"
	"github.com/MKhiriev/skillfade/models"
)

// userRepository is the SQL-backed implementation of [UserRepository].
// It handles user account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (UserID, CreatedAt).
//
// The INSERT returns all columns via a RETURNING clause, so the caller
// receives the canonical database representation of the newly created
// account.
//
// Error handling:
//   - unique constraint violation on username → [ErrUsernameAlreadyExists].
//   - Any other driver-level error → wrapped in [StorageError].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildCreateUserQuery(user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	// create user in db
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: query failed")

		if uniqueViolation(err) {
			return models.User{}, ErrUsernameAlreadyExists
		}
		if r.db.errorClassificator.Classify(err) == Retryable {
			log.Warn().Str("func", "*userRepository.CreateUser").Msg("transient database error")
		}
		return models.User{}, &StorageError{Op: "create user", Err: err}
	}

	// scan saved user from db
	var created models.User
	if err := row.Scan(&created.UserID, &created.Username, &created.PasswordHash, &created.CreatedAt); err != nil {
		if uniqueViolation(err) {
			return models.User{}, ErrUsernameAlreadyExists
		}
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: scanning error")
		return models.User{}, err
	}

	return created, nil
}

// FindUserByUsername retrieves the user record with the given username.
//
// Error handling:
//   - no matching record → [ErrUserNotFound].
//   - Any other driver-level error → wrapped in [StorageError].
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.buildFindUserByUsernameQuery(username)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByUsername").Msg("error: building query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var foundUser models.User
	row := r.db.QueryRowContext(ctx, query, args...)

	// find user by username
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByUsername").Msg("error: query failed")
		if r.db.errorClassificator.Classify(err) == Retryable {
			log.Warn().Str("func", "*userRepository.FindUserByUsername").Msg("transient database error")
		}
		return models.User{}, &StorageError{Op: "find user by username", Err: err}
	}

	// scan found user from db
	if err := row.Scan(&foundUser.UserID, &foundUser.Username, &foundUser.PasswordHash, &foundUser.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByUsername").Msg("error: scanning error")
		return models.User{}, err
	}

	return foundUser, nil
}
