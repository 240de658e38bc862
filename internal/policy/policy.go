// Package policy holds the pure access rules mapping a request path and
// session state to a decision. It performs no I/O so both gates and tests can
// exercise it directly.
package policy

import (
	"strings"

	"unistay/api/internal/models"
)

// Session is the identity snapshot decoded from a session token. It reflects
// the user record as it was at issuance time, not a live read of the store:
// a role changed after sign-in is not visible until re-authentication.
type Session struct {
	UserID   string
	Email    string
	Name     string
	Role     models.Role
	Verified bool
}

type Kind int

const (
	// KindAllow passes the request through to its handler.
	KindAllow Kind = iota
	// KindRedirect sends the browser to Target; API gates answer 403 instead.
	KindRedirect
	// KindUnauthenticated means no valid session was presented. Page gates
	// redirect to the sign-in page, API gates answer 401. The split is about
	// response shape only, the policy is identical.
	KindUnauthenticated
)

type Decision struct {
	Kind   Kind
	Target string
}

func Allow() Decision                   { return Decision{Kind: KindAllow} }
func RedirectTo(target string) Decision { return Decision{Kind: KindRedirect, Target: target} }
func Unauthenticated() Decision         { return Decision{Kind: KindUnauthenticated} }

const (
	SignInPath    = "/auth"
	DashboardPath = "/dashboard"

	adminPrefix   = "/admin"
	agentPrefix   = "/agent"
	listingPrefix = "/property/"
)

var publicExact = map[string]struct{}{
	"/":           {},
	"/auth":       {},
	"/properties": {},
	"/blog":       {},
	"/contact":    {},
}

// Decide evaluates the route rules in order, first match wins:
// public paths are open to everyone, everything else needs a session, and the
// admin/agent subtrees additionally need the matching role.
//
// The verified flag is deliberately not consulted here. It gates individual
// actions such as publishing a listing, never route access, so an unverified
// agent still reaches the agent dashboard.
func Decide(path string, s *Session) Decision {
	if _, ok := publicExact[path]; ok || strings.HasPrefix(path, listingPrefix) {
		return Allow()
	}

	if s == nil {
		return Unauthenticated()
	}

	if strings.HasPrefix(path, adminPrefix) && s.Role != models.RoleAdmin {
		return RedirectTo(DashboardPath)
	}

	if strings.HasPrefix(path, agentPrefix) && s.Role != models.RoleAgent {
		return RedirectTo(DashboardPath)
	}

	return Allow()
}

// CanActAs is the shared capability check page handlers run as a second
// enforcement layer behind the route gate. It introduces no policy of its
// own.
func CanActAs(s *Session, role models.Role) bool {
	return s != nil && s.Role == role
}
