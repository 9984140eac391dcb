package store

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-journal/internal/logger"
	"github.com/MKhiriev/go-journal/models"
)

const usersTable = "users"

// userRepository is the SQL implementation of [UserRepository] over the
// "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by db.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser inserts the username and password hash and returns the stored
// row including its generated id.
//
// Error handling:
//   - unique violation on username → [ErrLoginAlreadyExists].
//   - any other driver-level error → wrapped [ErrExecutingStatement].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Insert(usersTable).
		Columns("username", "password").
		Values(user.Username, user.PasswordHash).
		Suffix("RETURNING id, username, password").
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var created models.User
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&created.UserID, &created.Username, &created.PasswordHash); err != nil {
		log.Err(err).
			Str("func", "*userRepository.CreateUser").
			Stringer("error_class", r.db.classify(err)).
			Str("username", user.Username).
			Msg("error inserting user")

		if r.db.isUniqueViolation(err) {
			return models.User{}, ErrLoginAlreadyExists
		}
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return created, nil
}

// FindUserByUsername returns the single user whose username equals the
// argument.
//
// Error handling:
//   - no rows → [ErrNoUserWasFound].
//   - more than one row → [ErrAmbiguousUser].
//   - driver or scan errors → wrapped [ErrExecutingQuery] / [ErrScanningRow].
func (r *userRepository) FindUserByUsername(ctx context.Context, username string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.builder.
		Select("id", "username", "password").
		From(usersTable).
		Where(squirrel.Eq{"username": username}).
		ToSql()
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*userRepository.FindUserByUsername").
			Stringer("error_class", r.db.classify(err)).
			Msg("error querying user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	found := make([]models.User, 0, 1)
	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.UserID, &user.Username, &user.PasswordHash); err != nil {
			log.Err(err).Str("func", "*userRepository.FindUserByUsername").Msg("error scanning user")
			return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		found = append(found, user)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByUsername").Msg("error iterating users")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	switch len(found) {
	case 0:
		return models.User{}, ErrNoUserWasFound
	case 1:
		return found[0], nil
	default:
		log.Error().Str("username", username).Int("count", len(found)).Msg("username is not unique")
		return models.User{}, ErrAmbiguousUser
	}
}
