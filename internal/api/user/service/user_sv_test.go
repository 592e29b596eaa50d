package userService

import (
	users "ProjectInkwell/internal/api/user"
	userRepository "ProjectInkwell/internal/api/user/repository"
	"ProjectInkwell/internal/entity"
	"ProjectInkwell/pkg/utils"
	"context"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserStore struct {
	byEmail map[string]entity.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{byEmail: make(map[string]entity.User)}
}

func (f *fakeUserStore) NewClient(tx bool) (userRepository.Client, error) {
	return userRepository.Client{
		Users:    &fakeUsers{store: f},
		Commit:   func() error { return nil },
		Rollback: func() error { return nil },
	}, nil
}

type fakeUsers struct{ store *fakeUserStore }

func (f *fakeUsers) CreateUser(_ context.Context, user entity.User) error {
	if _, ok := f.store.byEmail[user.Email]; ok {
		return users.ErrEmailAlreadyInUse
	}
	f.store.byEmail[user.Email] = user
	return nil
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (entity.User, error) {
	user, ok := f.store.byEmail[email]
	if !ok {
		return entity.User{}, users.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUsers) UpdateOnLogin(_ context.Context, user entity.User) error {
	existing, ok := f.store.byEmail[user.Email]
	if !ok {
		return users.ErrUserNotFound
	}
	existing.UID = user.UID
	if user.DisplayName != "" {
		existing.DisplayName = user.DisplayName
	}
	if user.PhotoURL != "" {
		existing.PhotoURL = user.PhotoURL
	}
	f.store.byEmail[user.Email] = existing
	return nil
}

func newTestUserService(store *fakeUserStore) IUserService {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return New(logger, store, utils.New())
}

func TestSyncOnLoginCreatesFirstTimeUser(t *testing.T) {
	store := newFakeUserStore()
	service := newTestUserService(store)

	identity := entity.Identity{UID: "uid-1", Email: "new@example.com", Name: "New User"}
	user, err := service.SyncOnLogin(context.Background(), identity, users.SyncUserRequest{})
	require.NoError(t, err)

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "uid-1", user.UID)
	assert.Equal(t, "New User", user.DisplayName)
	assert.Equal(t, entity.RoleUser, user.Role)

	stored := store.byEmail["new@example.com"]
	assert.Equal(t, entity.RoleUser, stored.Role)
}

func TestSyncOnLoginUpdatesExistingUser(t *testing.T) {
	store := newFakeUserStore()
	store.byEmail["old@example.com"] = entity.User{
		ID:          "01HQZX5J8N3V2K9W4T6Y7B8C9D",
		UID:         "uid-1",
		DisplayName: "Old Name",
		Email:       "old@example.com",
		Role:        entity.RoleAdmin,
	}
	service := newTestUserService(store)

	identity := entity.Identity{UID: "uid-1", Email: "old@example.com"}
	user, err := service.SyncOnLogin(context.Background(), identity, users.SyncUserRequest{
		DisplayName: "Fresh Name",
	})
	require.NoError(t, err)

	assert.Equal(t, "Fresh Name", user.DisplayName)
	// The role is never touched by a login sync
	assert.Equal(t, entity.RoleAdmin, user.Role)
	assert.Equal(t, "Fresh Name", store.byEmail["old@example.com"].DisplayName)
}

func TestRoleByEmailDefaultsForUnknownUser(t *testing.T) {
	store := newFakeUserStore()
	service := newTestUserService(store)

	role, err := service.RoleByEmail(context.Background(), "nobody@example.com")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, role)

	// The lookup never creates a record as a side effect
	assert.Empty(t, store.byEmail)
}

func TestRoleByEmailReturnsStoredRole(t *testing.T) {
	store := newFakeUserStore()
	store.byEmail["admin@example.com"] = entity.User{
		Email: "admin@example.com",
		Role:  entity.RoleAdmin,
	}
	service := newTestUserService(store)

	role, err := service.RoleByEmail(context.Background(), "admin@example.com")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, role)
}

func TestProfileUnknownUser(t *testing.T) {
	service := newTestUserService(newFakeUserStore())

	_, err := service.Profile(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, users.ErrUserNotFound)
}
