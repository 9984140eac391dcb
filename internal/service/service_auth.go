package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-journal/internal/config"
	"github.com/MKhiriev/go-journal/internal/logger"
	"github.com/MKhiriev/go-journal/internal/store"
	"github.com/MKhiriev/go-journal/internal/utils"
	"github.com/MKhiriev/go-journal/models"
)

// authService is the concrete implementation of AuthService.
// It stores bcrypt hashes through a UserRepository.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// hashCost is the bcrypt cost factor used at registration.
	hashCost int

	logger *logger.Logger
}

// NewAuthService constructs an AuthService backed by userRepository.
// All state is read-only after construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hashCost:       cfg.PasswordHashCost,
		logger:         logger,
	}
}

// RegisterUser creates a new account.
//
// Username and password are lower-cased before hashing and storing, so
// logins are case-insensitive for both.
//
// Returns the persisted user or:
//   - a wrapped hashing error (e.g. password longer than 72 bytes).
//   - a wrapped storage error; store.ErrLoginAlreadyExists for a duplicate.
func (a *authService) RegisterUser(ctx context.Context, username, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	username, password = normalize(username), normalize(password)

	hash, err := utils.HashPassword(password, a.hashCost)
	if err != nil {
		log.Err(err).Str("username", username).Msg("password hashing failed")
		return models.User{}, err
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     username,
		PasswordHash: hash,
	})
	if err != nil {
		log.Err(err).Str("username", username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// Returns the user or:
//   - ErrInvalidCredentials if no such user exists or the password is wrong.
//   - a wrapped storage error for anything else, including
//     store.ErrAmbiguousUser.
func (a *authService) Login(ctx context.Context, username, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	username, password = normalize(username), normalize(password)

	foundUser, err := a.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Info().Str("username", username).Msg("user doesn't exist")
			return models.User{}, ErrInvalidCredentials
		}
		log.Err(err).Str("username", username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if err := utils.CheckPassword(foundUser.PasswordHash, password); err != nil {
		if errors.Is(err, utils.ErrPasswordMismatch) {
			log.Info().Int64("id", foundUser.UserID).Msg("password is incorrect")
			return models.User{}, ErrInvalidCredentials
		}
		log.Err(err).Int64("id", foundUser.UserID).Msg("stored password hash is unusable")
		return models.User{}, err
	}

	return foundUser, nil
}

func normalize(s string) string {
	return strings.ToLower(s)
}
