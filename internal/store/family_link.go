package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"basepost.app/server/core/db/sqlc"
	"basepost.app/server/internal/model"
)

type familyLinkStore struct {
	queries *sqlc.Queries
}

func newFamilyLinkStore(queries *sqlc.Queries) FamilyLinkStore {
	return &familyLinkStore{queries: queries}
}

func (s *familyLinkStore) Create(ctx context.Context, link *model.FamilyLink) error {
	row, err := s.queries.CreateFamilyLink(ctx, sqlc.CreateFamilyLinkParams{
		ID:             link.ID,
		SponsorID:      link.SponsorID,
		FamilyMemberID: link.FamilyMemberID,
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return ErrConflict
		}
		return err
	}
	*link = *toFamilyLinkModel(row)
	return nil
}

func (s *familyLinkStore) GetByID(ctx context.Context, id int64) (*model.FamilyLink, error) {
	row, err := s.queries.GetFamilyLink(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toFamilyLinkModel(row), nil
}

func (s *familyLinkStore) GetByIDForUpdate(ctx context.Context, id int64) (*model.FamilyLink, error) {
	row, err := s.queries.GetFamilyLinkForUpdate(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toFamilyLinkModel(row), nil
}

func (s *familyLinkStore) GetActiveBySponsor(ctx context.Context, sponsorID int64) (*model.FamilyLink, error) {
	row, err := s.queries.GetActiveFamilyLinkBySponsor(ctx, sponsorID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toFamilyLinkModel(row), nil
}

func (s *familyLinkStore) GetActiveBySponsorForUpdate(ctx context.Context, sponsorID int64) (*model.FamilyLink, error) {
	row, err := s.queries.GetActiveFamilyLinkBySponsorForUpdate(ctx, sponsorID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toFamilyLinkModel(row), nil
}

func (s *familyLinkStore) GetActiveByFamilyMember(ctx context.Context, familyMemberID int64) (*model.FamilyLink, error) {
	row, err := s.queries.GetActiveFamilyLinkByFamilyMember(ctx, familyMemberID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toFamilyLinkModel(row), nil
}

func (s *familyLinkStore) GetActiveDetailBySponsor(ctx context.Context, sponsorID int64) (*model.FamilyDetail, error) {
	row, err := s.queries.GetActiveFamilyDetailBySponsor(ctx, sponsorID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &model.FamilyDetail{
		LinkID:         row.ID,
		SponsorID:      row.SponsorID,
		FamilyMemberID: row.FamilyMemberID,
		Username:       row.Username,
		Email:          row.Email,
		AvatarURL:      row.AvatarUrl,
		LinkedAt:       row.CreatedAt.Time,
	}, nil
}

func (s *familyLinkStore) Revoke(ctx context.Context, id int64, reason *string) (*model.FamilyLink, error) {
	row, err := s.queries.RevokeFamilyLink(ctx, sqlc.RevokeFamilyLinkParams{
		ID:               id,
		RevocationReason: reason,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toFamilyLinkModel(row), nil
}

func toFamilyLinkModel(row sqlc.FamilyLink) *model.FamilyLink {
	link := &model.FamilyLink{
		ID:               row.ID,
		SponsorID:        row.SponsorID,
		FamilyMemberID:   row.FamilyMemberID,
		Status:           model.FamilyLinkStatus(row.Status),
		RevocationReason: row.RevocationReason,
		CreatedAt:        row.CreatedAt.Time,
	}
	if row.RevokedAt.Valid {
		link.RevokedAt = &row.RevokedAt.Time
	}
	return link
}
