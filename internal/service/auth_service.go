package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"unistay/api/internal/config"
	"unistay/api/internal/ids"
	"unistay/api/internal/models"
	"unistay/api/internal/repository"
	"unistay/api/internal/security"
)

var (
	// ErrInvalidCredentials collapses unknown email, missing password
	// credential and wrong password into one outcome so account existence
	// never leaks through the error shape.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidRole        = errors.New("invalid role")
)

const (
	msgAccountCreated = "Account created successfully!"
	msgAgentPending   = "Account created! Please wait for admin verification before posting properties."
)

// UserStore is the slice of the user repository registration and login need.
type UserStore interface {
	Create(ctx context.Context, user models.User) error
	FindByEmail(ctx context.Context, email string) (models.User, error)
}

type AuthService struct {
	users UserStore
	cfg   *config.AppConfig
	log   zerolog.Logger
}

func NewAuthService(users UserStore, cfg *config.AppConfig, log zerolog.Logger) *AuthService {
	return &AuthService{
		users: users,
		cfg:   cfg,
		log:   log,
	}
}

type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Role     models.Role
}

type RegisterResult struct {
	User    models.User
	Message string
}

// Register creates a new account. The requested role is taken as-is from the
// client, mirroring the sign-up form; nothing here stops an ADMIN request.
// Students start verified, agents start unverified and are told their listing
// privileges are pending.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (RegisterResult, error) {
	if !input.Role.Valid() {
		return RegisterResult{}, ErrInvalidRole
	}

	passwordHash, err := security.HashPassword(input.Password)
	if err != nil {
		return RegisterResult{}, err
	}

	user := models.User{
		ID:           ids.New(),
		Email:        input.Email,
		PasswordHash: passwordHash,
		Role:         input.Role,
		IsVerified:   input.Role.DefaultVerified(),
	}
	if input.Name != "" {
		name := input.Name
		user.Name = &name
	}

	// Duplicate emails are resolved by the store's unique constraint, not a
	// lookup: concurrent registrations race past any pre-check.
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			return RegisterResult{}, ErrEmailTaken
		}
		s.log.Error().Err(err).Msg("create user failed")
		return RegisterResult{}, err
	}

	user.PasswordHash = nil // the credential never leaves the service

	message := msgAccountCreated
	if user.Role == models.RoleAgent {
		message = msgAgentPending
	}

	return RegisterResult{User: user, Message: message}, nil
}

type LoginResult struct {
	Token string
	User  models.User
}

// Login verifies the credentials and mints a session token carrying the
// user's identity, role and verification flag as of now. Login succeeds
// regardless of the verification flag; verification gates actions, not
// sign-in.
func (s *AuthService) Login(ctx context.Context, email string, password string) (LoginResult, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return LoginResult{}, ErrInvalidCredentials
		}
		s.log.Error().Err(err).Msg("user lookup failed")
		return LoginResult{}, err
	}

	if len(user.PasswordHash) == 0 {
		// Accounts created without a password cannot sign in this way.
		return LoginResult{}, ErrInvalidCredentials
	}

	ok, err := security.VerifyPassword(password, user.PasswordHash)
	if err != nil || !ok {
		return LoginResult{}, ErrInvalidCredentials
	}

	token, err := security.IssueSessionToken(s.cfg.Security.SessionSecret, user, s.cfg.Security.SessionTTL)
	if err != nil {
		return LoginResult{}, err
	}

	user.PasswordHash = nil
	return LoginResult{Token: token, User: user}, nil
}
