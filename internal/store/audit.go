package store

import (
	"context"

	"basepost.app/server/core/db/sqlc"
	"basepost.app/server/internal/model"
)

type auditStore struct {
	queries *sqlc.Queries
}

func newAuditStore(queries *sqlc.Queries) AuditStore {
	return &auditStore{queries: queries}
}

func (s *auditStore) Create(ctx context.Context, entry *model.AuditEntry) error {
	row, err := s.queries.CreateSponsorAuditEntry(ctx, sqlc.CreateSponsorAuditEntryParams{
		ID:               entry.ID,
		SponsorID:        entry.SponsorID,
		FamilyMemberID:   entry.FamilyMemberID,
		SponsorRequestID: entry.SponsorRequestID,
		FamilyLinkID:     entry.FamilyLinkID,
		ActionType:       string(entry.ActionType),
		Details:          entry.Details,
	})
	if err != nil {
		return err
	}
	*entry = *toAuditEntryModel(row)
	return nil
}

func (s *auditStore) ListBySponsor(ctx context.Context, sponsorID int64, limit int32) ([]model.AuditEntry, error) {
	rows, err := s.queries.ListSponsorAuditEntries(ctx, sqlc.ListSponsorAuditEntriesParams{
		SponsorID: sponsorID,
		Limit:     limit,
	})
	if err != nil {
		return nil, err
	}
	result := make([]model.AuditEntry, len(rows))
	for i, row := range rows {
		result[i] = *toAuditEntryModel(row)
	}
	return result, nil
}

func toAuditEntryModel(row sqlc.SponsorActionsAudit) *model.AuditEntry {
	return &model.AuditEntry{
		ID:               row.ID,
		SponsorID:        row.SponsorID,
		FamilyMemberID:   row.FamilyMemberID,
		SponsorRequestID: row.SponsorRequestID,
		FamilyLinkID:     row.FamilyLinkID,
		ActionType:       model.AuditActionType(row.ActionType),
		Details:          row.Details,
		CreatedAt:        row.CreatedAt.Time,
	}
}
