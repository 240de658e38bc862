package security

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"unistay/api/internal/models"
)

func testUser() models.User {
	name := "Jordan Lee"
	return models.User{
		ID:         "user-123",
		Email:      "jordan@example.com",
		Name:       &name,
		Role:       models.RoleAgent,
		IsVerified: false,
	}
}

func TestIssueAndParseSessionToken(t *testing.T) {
	t.Parallel()

	token, err := IssueSessionToken("test-secret", testUser(), time.Hour)
	require.NoError(t, err)

	session, err := ParseSessionToken(token, "test-secret")
	require.NoError(t, err)

	require.Equal(t, "user-123", session.UserID)
	require.Equal(t, "jordan@example.com", session.Email)
	require.Equal(t, "Jordan Lee", session.Name)
	require.Equal(t, models.RoleAgent, session.Role)
	require.False(t, session.Verified)
}

func TestParseSessionToken_Expired(t *testing.T) {
	t.Parallel()

	token, err := IssueSessionToken("test-secret", testUser(), -time.Minute)
	require.NoError(t, err)

	_, err = ParseSessionToken(token, "test-secret")
	require.ErrorIs(t, err, ErrInvalidSessionToken)
}

func TestParseSessionToken_WrongSecret(t *testing.T) {
	t.Parallel()

	token, err := IssueSessionToken("right-secret", testUser(), time.Hour)
	require.NoError(t, err)

	_, err = ParseSessionToken(token, "wrong-secret")
	require.ErrorIs(t, err, ErrInvalidSessionToken)
}

func TestParseSessionToken_Malformed(t *testing.T) {
	t.Parallel()

	for _, token := range []string{"", "not.a.jwt", "garbage"} {
		_, err := ParseSessionToken(token, "test-secret")
		require.ErrorIs(t, err, ErrInvalidSessionToken, "token %q", token)
	}
}

func TestIssueSessionToken_NoNameClaim(t *testing.T) {
	t.Parallel()

	user := testUser()
	user.Name = nil

	token, err := IssueSessionToken("test-secret", user, time.Hour)
	require.NoError(t, err)

	session, err := ParseSessionToken(token, "test-secret")
	require.NoError(t, err)
	require.Empty(t, session.Name)
}
