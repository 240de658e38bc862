package models

import "time"

type Role string

const (
	RoleStudent Role = "STUDENT"
	RoleAgent   Role = "AGENT"
	RoleAdmin   Role = "ADMIN"
)

func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleAgent, RoleAdmin:
		return true
	}
	return false
}

// DefaultVerified reports whether a freshly registered account with this role
// starts out verified. Students are trusted immediately; agents wait for an
// admin review before they may publish listings.
func (r Role) DefaultVerified() bool {
	return r == RoleStudent
}

type User struct {
	ID           string
	Email        string
	PasswordHash []byte // nil when the account carries no password credential
	Name         *string
	Role         Role
	IsVerified   bool
	AvatarURL    *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// DisplayName returns the user's name, falling back to the email address.
func (u User) DisplayName() string {
	if u.Name != nil && *u.Name != "" {
		return *u.Name
	}
	return u.Email
}
