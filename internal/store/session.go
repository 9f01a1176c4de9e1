package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"basepost.app/server/core/db/sqlc"
	"basepost.app/server/internal/model"
)

type sessionStore struct {
	queries *sqlc.Queries
}

func newSessionStore(queries *sqlc.Queries) SessionStore {
	return &sessionStore{queries: queries}
}

func (s *sessionStore) GetValidByToken(ctx context.Context, token string) (*model.Session, error) {
	row, err := s.queries.GetValidSessionByToken(ctx, token)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &model.Session{
		Token:     row.Token,
		UserID:    row.UserID,
		ExpiresAt: row.ExpiresAt.Time,
		CreatedAt: row.CreatedAt.Time,
	}, nil
}
