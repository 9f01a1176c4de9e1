package service

import (
	"context"
	"errors"
	"fmt"

	"basepost.app/server/internal/model"
	"basepost.app/server/internal/store"
)

var ErrInvalidSession = errors.New("invalid or expired session")

// IdentityService resolves a session token to the user it belongs to.
// Sessions are issued by the account service; this only verifies them.
type IdentityService interface {
	Resolve(ctx context.Context, token string) (*model.User, error)
}

type identityService struct {
	sessions store.SessionStore
	users    store.UserStore
}

func NewIdentityService(sessions store.SessionStore, users store.UserStore) IdentityService {
	return &identityService{
		sessions: sessions,
		users:    users,
	}
}

func (s *identityService) Resolve(ctx context.Context, token string) (*model.User, error) {
	if token == "" {
		return nil, ErrInvalidSession
	}

	session, err := s.sessions.GetValidByToken(ctx, token)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvalidSession
		}
		return nil, fmt.Errorf("resolving session: %w", err)
	}

	user, err := s.users.GetByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvalidSession
		}
		return nil, fmt.Errorf("loading session user: %w", err)
	}

	return user, nil
}
