package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"basepost.app/server/core/db/sqlc"
	"basepost.app/server/internal/model"
)

type sponsorCooldownStore struct {
	queries *sqlc.Queries
}

func newSponsorCooldownStore(queries *sqlc.Queries) SponsorCooldownStore {
	return &sponsorCooldownStore{queries: queries}
}

func (s *sponsorCooldownStore) Upsert(ctx context.Context, cd *model.SponsorCooldown) error {
	row, err := s.queries.UpsertSponsorCooldown(ctx, sqlc.UpsertSponsorCooldownParams{
		ID:            cd.ID,
		SponsorID:     cd.SponsorID,
		CooldownUntil: pgtype.Timestamptz{Time: cd.CooldownUntil, Valid: true},
		Reason:        cd.Reason,
	})
	if err != nil {
		return err
	}
	*cd = *toSponsorCooldownModel(row)
	return nil
}

func (s *sponsorCooldownStore) GetActiveBySponsor(ctx context.Context, sponsorID int64) (*model.SponsorCooldown, error) {
	row, err := s.queries.GetActiveSponsorCooldown(ctx, sponsorID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return toSponsorCooldownModel(row), nil
}

func toSponsorCooldownModel(row sqlc.SponsorCooldown) *model.SponsorCooldown {
	return &model.SponsorCooldown{
		ID:            row.ID,
		SponsorID:     row.SponsorID,
		CooldownUntil: row.CooldownUntil.Time,
		Reason:        row.Reason,
		CreatedAt:     row.CreatedAt.Time,
	}
}
