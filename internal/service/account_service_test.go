package service

import (
	"bytes"
	"context"
	"io"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"unistay/api/internal/models"
	"unistay/api/internal/repository"
)

type fakeAccountStore struct {
	byID     map[string]models.User
	verified []string
	avatars  map[string]string
}

func newFakeAccountStore(users ...models.User) *fakeAccountStore {
	store := &fakeAccountStore{
		byID:    make(map[string]models.User),
		avatars: make(map[string]string),
	}
	for _, user := range users {
		store.byID[user.ID] = user
	}
	return store
}

func (f *fakeAccountStore) GetByID(_ context.Context, id string) (models.User, error) {
	user, ok := f.byID[id]
	if !ok {
		return models.User{}, repository.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeAccountStore) SetVerified(_ context.Context, id string) error {
	user, ok := f.byID[id]
	if !ok {
		return repository.ErrUserNotFound
	}
	user.IsVerified = true
	f.byID[id] = user
	f.verified = append(f.verified, id)
	return nil
}

func (f *fakeAccountStore) SetAvatarURL(_ context.Context, id string, url string) error {
	if _, ok := f.byID[id]; !ok {
		return repository.ErrUserNotFound
	}
	f.avatars[id] = url
	return nil
}

func (f *fakeAccountStore) ListUnverifiedAgents(_ context.Context, limit int) ([]models.User, error) {
	var agents []models.User
	for _, user := range f.byID {
		if user.Role == models.RoleAgent && !user.IsVerified && len(agents) < limit {
			agents = append(agents, user)
		}
	}
	return agents, nil
}

type fakeAvatarStore struct {
	lastContentType string
}

func (f *fakeAvatarStore) PutAvatar(_ context.Context, userID string, contentType string, body io.Reader, _ int64) (string, error) {
	f.lastContentType = contentType
	if _, err := io.Copy(io.Discard, body); err != nil {
		return "", err
	}
	return "http://storage.local/avatars/" + userID, nil
}

func TestVerifyAgent(t *testing.T) {
	t.Parallel()

	store := newFakeAccountStore(models.User{ID: "agent-1", Email: "agent@x.com", Role: models.RoleAgent})
	svc := NewAccountService(store, &fakeAvatarStore{}, zerolog.Nop())

	user, err := svc.VerifyAgent(context.Background(), "agent-1")
	require.NoError(t, err)
	require.True(t, user.IsVerified)
	require.Equal(t, []string{"agent-1"}, store.verified)

	// Verifying again is a no-op.
	_, err = svc.VerifyAgent(context.Background(), "agent-1")
	require.NoError(t, err)
	require.Equal(t, []string{"agent-1"}, store.verified)
}

func TestVerifyAgent_NotAnAgent(t *testing.T) {
	t.Parallel()

	store := newFakeAccountStore(models.User{ID: "student-1", Role: models.RoleStudent})
	svc := NewAccountService(store, &fakeAvatarStore{}, zerolog.Nop())

	_, err := svc.VerifyAgent(context.Background(), "student-1")
	require.ErrorIs(t, err, ErrNotAnAgent)
}

func TestVerifyAgent_UnknownUser(t *testing.T) {
	t.Parallel()

	svc := NewAccountService(newFakeAccountStore(), &fakeAvatarStore{}, zerolog.Nop())

	_, err := svc.VerifyAgent(context.Background(), "missing")
	require.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUpdateAvatar(t *testing.T) {
	t.Parallel()

	store := newFakeAccountStore(models.User{ID: "u1", Role: models.RoleStudent})
	avatars := &fakeAvatarStore{}
	svc := NewAccountService(store, avatars, zerolog.Nop())

	jpeg := append([]byte{0xff, 0xd8, 0xff, 0xe0}, bytes.Repeat([]byte{0x01}, 600)...)

	url, err := svc.UpdateAvatar(context.Background(), "u1", bytes.NewReader(jpeg), int64(len(jpeg)))
	require.NoError(t, err)
	require.Equal(t, "http://storage.local/avatars/u1", url)
	require.Equal(t, "image/jpeg", avatars.lastContentType)
	require.Equal(t, url, store.avatars["u1"])
}

func TestUpdateAvatar_RejectsUnknownFormat(t *testing.T) {
	t.Parallel()

	store := newFakeAccountStore(models.User{ID: "u1", Role: models.RoleStudent})
	svc := NewAccountService(store, &fakeAvatarStore{}, zerolog.Nop())

	_, err := svc.UpdateAvatar(context.Background(), "u1", bytes.NewReader([]byte("definitely not an image")), 23)
	require.ErrorIs(t, err, ErrUnsupportedImage)
	require.Empty(t, store.avatars)
}

func TestPendingAgents_StripsCredentials(t *testing.T) {
	t.Parallel()

	store := newFakeAccountStore(models.User{
		ID:           "agent-1",
		Email:        "agent@x.com",
		Role:         models.RoleAgent,
		PasswordHash: []byte("$argon2id$..."),
	})
	svc := NewAccountService(store, &fakeAvatarStore{}, zerolog.Nop())

	agents, err := svc.PendingAgents(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, agents, 1)
	require.Nil(t, agents[0].PasswordHash)
}
