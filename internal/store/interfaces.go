package store

import (
	"context"
	"errors"
	"time"

	"basepost.app/server/internal/model"
)

// ErrNotFound is returned when a requested entity does not exist
var ErrNotFound = errors.New("not found")

// ErrConflict is returned when an insert violates a uniqueness invariant
// (one pending request per family member, one active link per sponsor).
var ErrConflict = errors.New("conflict")

// UserStore defines the contract for user data access.
// Users are owned by the account service; this workflow reads them and
// writes only family_verified_at.
type UserStore interface {
	GetByID(ctx context.Context, id int64) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	SetFamilyVerified(ctx context.Context, id int64, verifiedAt *time.Time) error
}

// SessionStore resolves session tokens issued by the account service.
type SessionStore interface {
	GetValidByToken(ctx context.Context, token string) (*model.Session, error)
}

// SponsorRequestStore defines the contract for sponsor request data access
type SponsorRequestStore interface {
	Create(ctx context.Context, req *model.SponsorRequest) error
	GetByID(ctx context.Context, id int64) (*model.SponsorRequest, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*model.SponsorRequest, error) // row lock
	GetPendingByFamilyMember(ctx context.Context, familyMemberID int64) (*model.SponsorRequest, error)
	ListBySponsor(ctx context.Context, sponsorID int64) ([]model.SponsorRequest, error)
	Approve(ctx context.Context, id int64) (*model.SponsorRequest, error) // pending only
	Deny(ctx context.Context, id int64, reason *string) (*model.SponsorRequest, error)
}

// FamilyLinkStore defines the contract for family link data access
type FamilyLinkStore interface {
	Create(ctx context.Context, link *model.FamilyLink) error
	GetByID(ctx context.Context, id int64) (*model.FamilyLink, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*model.FamilyLink, error) // row lock
	GetActiveBySponsor(ctx context.Context, sponsorID int64) (*model.FamilyLink, error)
	GetActiveBySponsorForUpdate(ctx context.Context, sponsorID int64) (*model.FamilyLink, error)
	GetActiveByFamilyMember(ctx context.Context, familyMemberID int64) (*model.FamilyLink, error)
	GetActiveDetailBySponsor(ctx context.Context, sponsorID int64) (*model.FamilyDetail, error)
	Revoke(ctx context.Context, id int64, reason *string) (*model.FamilyLink, error) // active only
}

// SponsorCooldownStore defines the contract for cooldown data access
type SponsorCooldownStore interface {
	Upsert(ctx context.Context, cd *model.SponsorCooldown) error
	GetActiveBySponsor(ctx context.Context, sponsorID int64) (*model.SponsorCooldown, error)
}

// AuditStore defines the contract for the append-only action log
type AuditStore interface {
	Create(ctx context.Context, entry *model.AuditEntry) error
	ListBySponsor(ctx context.Context, sponsorID int64, limit int32) ([]model.AuditEntry, error)
}
