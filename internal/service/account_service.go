package service

import (
	"bytes"
	"context"
	"errors"
	"io"

	"github.com/rs/zerolog"

	"unistay/api/internal/media/sniffer"
	"unistay/api/internal/models"
)

var (
	ErrNotAnAgent       = errors.New("user is not an agent")
	ErrUnsupportedImage = errors.New("unsupported image type")
)

// AccountStore is the slice of the user repository account management needs.
type AccountStore interface {
	GetByID(ctx context.Context, id string) (models.User, error)
	SetVerified(ctx context.Context, id string) error
	SetAvatarURL(ctx context.Context, id string, url string) error
	ListUnverifiedAgents(ctx context.Context, limit int) ([]models.User, error)
}

// AvatarStore persists avatar images and returns their public URL.
type AvatarStore interface {
	PutAvatar(ctx context.Context, userID string, contentType string, body io.Reader, size int64) (string, error)
}

type AccountService struct {
	users   AccountStore
	avatars AvatarStore
	log     zerolog.Logger
}

func NewAccountService(users AccountStore, avatars AvatarStore, log zerolog.Logger) *AccountService {
	return &AccountService{
		users:   users,
		avatars: avatars,
		log:     log,
	}
}

// VerifyAgent flips the verification flag of an agent account. This is the
// out-of-band admin action unlocking listing privileges; it is idempotent.
func (s *AccountService) VerifyAgent(ctx context.Context, id string) (models.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return models.User{}, err
	}

	if user.Role != models.RoleAgent {
		return models.User{}, ErrNotAnAgent
	}

	if !user.IsVerified {
		if err := s.users.SetVerified(ctx, id); err != nil {
			return models.User{}, err
		}
		user.IsVerified = true
		s.log.Info().Str("user_id", id).Str("email", user.Email).Msg("agent verified")
	}

	user.PasswordHash = nil
	return user, nil
}

func (s *AccountService) PendingAgents(ctx context.Context, limit int) ([]models.User, error) {
	agents, err := s.users.ListUnverifiedAgents(ctx, limit)
	if err != nil {
		return nil, err
	}
	for i := range agents {
		agents[i].PasswordHash = nil
	}
	return agents, nil
}

// UpdateAvatar sniffs the uploaded image, stores it and persists the
// resulting URL on the user record.
func (s *AccountService) UpdateAvatar(ctx context.Context, userID string, body io.Reader, size int64) (string, error) {
	result, head, err := sniffer.Detect(body)
	if err != nil {
		return "", ErrUnsupportedImage
	}

	full := io.MultiReader(bytes.NewReader(head), body)

	url, err := s.avatars.PutAvatar(ctx, userID, result.MIME, full, size)
	if err != nil {
		return "", err
	}

	if err := s.users.SetAvatarURL(ctx, userID, url); err != nil {
		return "", err
	}
	return url, nil
}
