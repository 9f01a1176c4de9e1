package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"basepost.app/server/core/db/sqlc"
	"basepost.app/server/internal/model"
)

const uniqueViolation = "23505"

type sponsorRequestStore struct {
	queries *sqlc.Queries
}

func newSponsorRequestStore(queries *sqlc.Queries) SponsorRequestStore {
	return &sponsorRequestStore{queries: queries}
}

func (s *sponsorRequestStore) Create(ctx context.Context, req *model.SponsorRequest) error {
	row, err := s.queries.CreateSponsorRequest(ctx, sqlc.CreateSponsorRequestParams{
		ID:              req.ID,
		FamilyMemberID:  req.FamilyMemberID,
		SponsorID:       req.SponsorID,
		SponsorUsername: req.SponsorUsername,
		ExpiresAt:       pgtype.Timestamptz{Time: req.ExpiresAt, Valid: true},
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return ErrConflict
		}
		return err
	}
	*req = *toSponsorRequestModel(row)
	return nil
}

func (s *sponsorRequestStore) GetByID(ctx context.Context, id int64) (*model.SponsorRequest, error) {
	row, err := s.queries.GetSponsorRequest(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toSponsorRequestModel(row), nil
}

func (s *sponsorRequestStore) GetByIDForUpdate(ctx context.Context, id int64) (*model.SponsorRequest, error) {
	row, err := s.queries.GetSponsorRequestForUpdate(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toSponsorRequestModel(row), nil
}

func (s *sponsorRequestStore) GetPendingByFamilyMember(ctx context.Context, familyMemberID int64) (*model.SponsorRequest, error) {
	row, err := s.queries.GetPendingRequestByFamilyMember(ctx, familyMemberID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toSponsorRequestModel(row), nil
}

func (s *sponsorRequestStore) ListBySponsor(ctx context.Context, sponsorID int64) ([]model.SponsorRequest, error) {
	rows, err := s.queries.ListSponsorRequestsBySponsor(ctx, sponsorID)
	if err != nil {
		return nil, err
	}
	result := make([]model.SponsorRequest, len(rows))
	for i, row := range rows {
		result[i] = *toSponsorRequestModel(row)
	}
	return result, nil
}

func (s *sponsorRequestStore) Approve(ctx context.Context, id int64) (*model.SponsorRequest, error) {
	row, err := s.queries.ApproveSponsorRequest(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toSponsorRequestModel(row), nil
}

func (s *sponsorRequestStore) Deny(ctx context.Context, id int64, reason *string) (*model.SponsorRequest, error) {
	row, err := s.queries.DenySponsorRequest(ctx, sqlc.DenySponsorRequestParams{
		ID:           id,
		DenialReason: reason,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toSponsorRequestModel(row), nil
}

func toSponsorRequestModel(row sqlc.SponsorRequest) *model.SponsorRequest {
	req := &model.SponsorRequest{
		ID:              row.ID,
		FamilyMemberID:  row.FamilyMemberID,
		SponsorID:       row.SponsorID,
		SponsorUsername: row.SponsorUsername,
		Status:          model.SponsorRequestStatus(row.Status),
		DenialReason:    row.DenialReason,
		ExpiresAt:       row.ExpiresAt.Time,
		CreatedAt:       row.CreatedAt.Time,
	}
	if row.ApprovedAt.Valid {
		req.ApprovedAt = &row.ApprovedAt.Time
	}
	if row.DeniedAt.Valid {
		req.DeniedAt = &row.DeniedAt.Time
	}
	return req
}
