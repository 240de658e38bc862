package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"unistay/api/internal/models"
)

func session(role models.Role) *Session {
	return &Session{
		UserID:   "u1",
		Email:    "user@example.com",
		Role:     role,
		Verified: true,
	}
}

func TestDecide_PublicRoutesAlwaysAllowed(t *testing.T) {
	t.Parallel()

	paths := []string{"/", "/auth", "/properties", "/blog", "/contact", "/property/1", "/property/abc/photos"}
	states := map[string]*Session{
		"anonymous": nil,
		"student":   session(models.RoleStudent),
		"agent":     session(models.RoleAgent),
		"admin":     session(models.RoleAdmin),
	}

	for _, path := range paths {
		for name, s := range states {
			assert.Equal(t, Allow(), Decide(path, s), "path %s, session %s", path, name)
		}
	}
}

func TestDecide_AnonymousNeverAllowedOnProtectedPaths(t *testing.T) {
	t.Parallel()

	for _, path := range []string{"/dashboard", "/admin/dashboard", "/agent/dashboard", "/api/protected/me", "/anything-else"} {
		d := Decide(path, nil)
		assert.Equal(t, KindUnauthenticated, d.Kind, "path %s", path)
	}
}

func TestDecide_AdminRoutes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, RedirectTo("/dashboard"), Decide("/admin/dashboard", session(models.RoleStudent)))
	assert.Equal(t, RedirectTo("/dashboard"), Decide("/admin/dashboard", session(models.RoleAgent)))
	assert.Equal(t, Allow(), Decide("/admin/dashboard", session(models.RoleAdmin)))
}

func TestDecide_AgentRoutes(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Allow(), Decide("/agent/dashboard", session(models.RoleAgent)))
	assert.Equal(t, RedirectTo("/dashboard"), Decide("/agent/dashboard", session(models.RoleStudent)))
	assert.Equal(t, RedirectTo("/dashboard"), Decide("/agent/dashboard", session(models.RoleAdmin)))
}

func TestDecide_VerificationDoesNotGateRoutes(t *testing.T) {
	t.Parallel()

	unverified := session(models.RoleAgent)
	unverified.Verified = false

	assert.Equal(t, Allow(), Decide("/agent/dashboard", unverified))
}

func TestDecide_GenericProtectedPathAllowedForAnyRole(t *testing.T) {
	t.Parallel()

	for _, role := range []models.Role{models.RoleStudent, models.RoleAgent, models.RoleAdmin} {
		assert.Equal(t, Allow(), Decide("/dashboard", session(role)), "role %s", role)
	}
}

func TestCanActAs(t *testing.T) {
	t.Parallel()

	assert.True(t, CanActAs(session(models.RoleAdmin), models.RoleAdmin))
	assert.False(t, CanActAs(session(models.RoleStudent), models.RoleAdmin))
	assert.False(t, CanActAs(nil, models.RoleStudent))
}
