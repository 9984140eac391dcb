package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-journal/internal/config"
	"github.com/MKhiriev/go-journal/internal/logger"
	"github.com/MKhiriev/go-journal/internal/mock"
	"github.com/MKhiriev/go-journal/internal/store"
	"github.com/MKhiriev/go-journal/internal/utils"
	"github.com/MKhiriev/go-journal/models"
)

func newTestAuthService(t *testing.T) (AuthService, *mock.MockUserRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	svc := NewAuthService(repo, config.App{PasswordHashCost: bcrypt.MinCost}, logger.Nop())
	return svc, repo
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := utils.HashPassword(password, bcrypt.MinCost)
	require.NoError(t, err)
	return hash
}

func TestRegisterUser_NormalizesAndHashes(t *testing.T) {
	svc, repo := newTestAuthService(t)

	repo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u models.User) (models.User, error) {
			assert.Equal(t, "alice", u.Username)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret")))
			u.UserID = 1
			return u, nil
		})

	user, err := svc.RegisterUser(context.Background(), "Alice", "Secret")
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.UserID)
}

func TestRegisterUser_Duplicate(t *testing.T) {
	svc, repo := newTestAuthService(t)

	repo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		Return(models.User{}, store.ErrLoginAlreadyExists)

	_, err := svc.RegisterUser(context.Background(), "alice", "secret")
	assert.ErrorIs(t, err, store.ErrLoginAlreadyExists)
}

func TestRegisterUser_HashFailureSkipsStore(t *testing.T) {
	svc, _ := newTestAuthService(t)

	long := make([]byte, 100)
	for i := range long {
		long[i] = 'a'
	}

	_, err := svc.RegisterUser(context.Background(), "alice", string(long))
	assert.Error(t, err)
}

func TestLogin(t *testing.T) {
	stored := models.User{UserID: 5, Username: "alice"}

	tests := []struct {
		name     string
		password string
		findErr  error
		wantErr  error
		wantUser bool
	}{
		{name: "same credentials", password: "secret", wantUser: true},
		{name: "case-normalized credentials", password: "SeCrEt", wantUser: true},
		{name: "wrong password", password: "nope", wantErr: ErrInvalidCredentials},
		{name: "unknown user", password: "secret", findErr: store.ErrNoUserWasFound, wantErr: ErrInvalidCredentials},
		{name: "ambiguous user", password: "secret", findErr: store.ErrAmbiguousUser, wantErr: store.ErrAmbiguousUser},
		{name: "store failure", password: "secret", findErr: store.ErrExecutingQuery, wantErr: store.ErrExecutingQuery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestAuthService(t)

			found := stored
			found.PasswordHash = mustHash(t, "secret")

			repo.EXPECT().
				FindUserByUsername(gomock.Any(), "alice").
				Return(found, tt.findErr)

			user, err := svc.Login(context.Background(), "ALICE", tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Zero(t, user.UserID)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(5), user.UserID)
		})
	}
}

func TestLogin_MalformedStoredHash(t *testing.T) {
	svc, repo := newTestAuthService(t)

	repo.EXPECT().
		FindUserByUsername(gomock.Any(), "alice").
		Return(models.User{UserID: 1, Username: "alice", PasswordHash: "plain"}, nil)

	_, err := svc.Login(context.Background(), "alice", "plain")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrInvalidCredentials))
}
