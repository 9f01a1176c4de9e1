package store

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"basepost.app/server/core/db/sqlc"
	"basepost.app/server/internal/model"
)

type userStore struct {
	queries *sqlc.Queries
}

func newUserStore(queries *sqlc.Queries) UserStore {
	return &userStore{queries: queries}
}

func (s *userStore) GetByID(ctx context.Context, id int64) (*model.User, error) {
	row, err := s.queries.GetUser(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toUserModel(row), nil
}

func (s *userStore) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	row, err := s.queries.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toUserModel(row), nil
}

func (s *userStore) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	row, err := s.queries.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toUserModel(row), nil
}

func (s *userStore) SetFamilyVerified(ctx context.Context, id int64, verifiedAt *time.Time) error {
	ts := pgtype.Timestamptz{}
	if verifiedAt != nil {
		ts = pgtype.Timestamptz{Time: *verifiedAt, Valid: true}
	}
	return s.queries.SetUserFamilyVerified(ctx, sqlc.SetUserFamilyVerifiedParams{
		ID:               id,
		FamilyVerifiedAt: ts,
	})
}

func toUserModel(row sqlc.User) *model.User {
	u := &model.User{
		ID:        row.ID,
		Username:  row.Username,
		Email:     row.Email,
		AvatarURL: row.AvatarUrl,
		CreatedAt: row.CreatedAt.Time,
	}
	if row.DodVerifiedAt.Valid {
		u.DODVerifiedAt = &row.DodVerifiedAt.Time
	}
	if row.FamilyVerifiedAt.Valid {
		u.FamilyVerifiedAt = &row.FamilyVerifiedAt.Time
	}
	return u
}
