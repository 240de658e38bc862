package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"unistay/api/internal/config"
	"unistay/api/internal/models"
	"unistay/api/internal/repository"
	"unistay/api/internal/security"
)

type fakeUserStore struct {
	byEmail map[string]models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{byEmail: make(map[string]models.User)}
}

func (f *fakeUserStore) Create(_ context.Context, user models.User) error {
	if _, ok := f.byEmail[user.Email]; ok {
		return repository.ErrEmailTaken
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	f.byEmail[user.Email] = user
	return nil
}

func (f *fakeUserStore) FindByEmail(_ context.Context, email string) (models.User, error) {
	user, ok := f.byEmail[email]
	if !ok {
		return models.User{}, repository.ErrUserNotFound
	}
	return user, nil
}

func newTestAuthService(store UserStore) *AuthService {
	cfg := &config.AppConfig{
		Security: config.SecurityConfig{
			SessionSecret: "test-secret",
			SessionTTL:    time.Hour,
		},
	}
	return NewAuthService(store, cfg, zerolog.Nop())
}

func TestRegister_StudentStartsVerified(t *testing.T) {
	t.Parallel()

	svc := newTestAuthService(newFakeUserStore())

	result, err := svc.Register(context.Background(), RegisterInput{
		Email:    "a@x.com",
		Password: "secret123",
		Role:     models.RoleStudent,
	})
	require.NoError(t, err)
	require.True(t, result.User.IsVerified)
	require.Equal(t, models.RoleStudent, result.User.Role)
	require.Equal(t, "Account created successfully!", result.Message)
	require.Nil(t, result.User.PasswordHash)
}

func TestRegister_AgentStartsUnverifiedWithPendingMessage(t *testing.T) {
	t.Parallel()

	svc := newTestAuthService(newFakeUserStore())

	result, err := svc.Register(context.Background(), RegisterInput{
		Email:    "agent@x.com",
		Password: "secret123",
		Name:     "Casey Agent",
		Role:     models.RoleAgent,
	})
	require.NoError(t, err)
	require.False(t, result.User.IsVerified)
	require.Contains(t, result.Message, "admin verification")
}

func TestRegister_DuplicateEmail(t *testing.T) {
	t.Parallel()

	svc := newTestAuthService(newFakeUserStore())

	input := RegisterInput{Email: "a@x.com", Password: "secret123", Role: models.RoleStudent}

	_, err := svc.Register(context.Background(), input)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), input)
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestRegister_RejectsUnknownRole(t *testing.T) {
	t.Parallel()

	svc := newTestAuthService(newFakeUserStore())

	_, err := svc.Register(context.Background(), RegisterInput{
		Email:    "a@x.com",
		Password: "secret123",
		Role:     models.Role("LANDLORD"),
	})
	require.ErrorIs(t, err, ErrInvalidRole)
}

func TestLogin_Success(t *testing.T) {
	t.Parallel()

	store := newFakeUserStore()
	svc := newTestAuthService(store)

	_, err := svc.Register(context.Background(), RegisterInput{
		Email:    "a@x.com",
		Password: "secret123",
		Role:     models.RoleStudent,
	})
	require.NoError(t, err)

	result, err := svc.Login(context.Background(), "a@x.com", "secret123")
	require.NoError(t, err)
	require.NotEmpty(t, result.Token)
	require.Nil(t, result.User.PasswordHash)

	session, err := security.ParseSessionToken(result.Token, "test-secret")
	require.NoError(t, err)
	require.Equal(t, models.RoleStudent, session.Role)
	require.True(t, session.Verified)
}

func TestLogin_UnverifiedAgentCanStillSignIn(t *testing.T) {
	t.Parallel()

	store := newFakeUserStore()
	svc := newTestAuthService(store)

	_, err := svc.Register(context.Background(), RegisterInput{
		Email:    "agent@x.com",
		Password: "secret123",
		Role:     models.RoleAgent,
	})
	require.NoError(t, err)

	result, err := svc.Login(context.Background(), "agent@x.com", "secret123")
	require.NoError(t, err)

	session, err := security.ParseSessionToken(result.Token, "test-secret")
	require.NoError(t, err)
	require.Equal(t, models.RoleAgent, session.Role)
	require.False(t, session.Verified)
}

// Every failure mode must produce the same error so account existence never
// leaks: unknown email, wrong password, and an account with no password set.
func TestLogin_FailuresAreIndistinguishable(t *testing.T) {
	t.Parallel()

	store := newFakeUserStore()
	svc := newTestAuthService(store)

	_, err := svc.Register(context.Background(), RegisterInput{
		Email:    "a@x.com",
		Password: "secret123",
		Role:     models.RoleStudent,
	})
	require.NoError(t, err)

	// An account created through an alternate path, no password credential.
	store.byEmail["oauth@x.com"] = models.User{
		ID:    "u-oauth",
		Email: "oauth@x.com",
		Role:  models.RoleStudent,
	}

	_, wrongPassword := svc.Login(context.Background(), "a@x.com", "wrong-password")
	_, unknownEmail := svc.Login(context.Background(), "nobody@x.com", "secret123")
	_, noPassword := svc.Login(context.Background(), "oauth@x.com", "secret123")

	require.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	require.ErrorIs(t, unknownEmail, ErrInvalidCredentials)
	require.ErrorIs(t, noPassword, ErrInvalidCredentials)
	require.Equal(t, wrongPassword, unknownEmail)
	require.Equal(t, unknownEmail, noPassword)
}

// The token carries a snapshot: mutating the stored record after sign-in must
// not change what an already-issued session claims.
func TestLogin_TokenIsASnapshot(t *testing.T) {
	t.Parallel()

	store := newFakeUserStore()
	svc := newTestAuthService(store)

	_, err := svc.Register(context.Background(), RegisterInput{
		Email:    "a@x.com",
		Password: "secret123",
		Role:     models.RoleStudent,
	})
	require.NoError(t, err)

	result, err := svc.Login(context.Background(), "a@x.com", "secret123")
	require.NoError(t, err)

	mutated := store.byEmail["a@x.com"]
	mutated.Role = models.RoleAdmin
	store.byEmail["a@x.com"] = mutated

	session, err := security.ParseSessionToken(result.Token, "test-secret")
	require.NoError(t, err)
	require.Equal(t, models.RoleStudent, session.Role)
}

func TestLogin_EmailIsCaseSensitive(t *testing.T) {
	t.Parallel()

	store := newFakeUserStore()
	svc := newTestAuthService(store)

	_, err := svc.Register(context.Background(), RegisterInput{
		Email:    "a@x.com",
		Password: "secret123",
		Role:     models.RoleStudent,
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), "A@X.COM", "secret123")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}
