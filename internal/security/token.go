package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"unistay/api/internal/models"
	"unistay/api/internal/policy"
)

// ErrInvalidSessionToken covers every failure mode of token validation.
// Absent, malformed, expired and badly signed tokens are indistinguishable to
// callers: any of them means the request is anonymous.
var ErrInvalidSessionToken = errors.New("invalid session token")

// SessionClaims is the complete token payload. The server keeps no session
// store; validity is determined purely by the signature and the expiry.
type SessionClaims struct {
	Email    string `json:"email"`
	Name     string `json:"name,omitempty"`
	Role     string `json:"role"`
	Verified bool   `json:"verified"`
	jwt.RegisteredClaims
}

// IssueSessionToken mints a signed session token for user. The role and
// verified flag are copied at issuance time and never refreshed from the
// store afterwards.
func IssueSessionToken(secret string, user models.User, ttl time.Duration) (string, error) {
	now := time.Now()

	name := ""
	if user.Name != nil {
		name = *user.Name
	}

	claims := SessionClaims{
		Email:    user.Email,
		Name:     name,
		Role:     string(user.Role),
		Verified: user.IsVerified,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

// ParseSessionToken validates tokenStr and projects its payload into a
// session snapshot.
func ParseSessionToken(tokenStr string, secret string) (*policy.Session, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &SessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidSessionToken
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, ErrInvalidSessionToken
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidSessionToken
	}

	return &policy.Session{
		UserID:   claims.Subject,
		Email:    claims.Email,
		Name:     claims.Name,
		Role:     models.Role(claims.Role),
		Verified: claims.Verified,
	}, nil
}
