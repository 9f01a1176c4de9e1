package model

import "time"

type FamilyLinkStatus string

const (
	FamilyLinkStatusActive  FamilyLinkStatus = "active"
	FamilyLinkStatusRevoked FamilyLinkStatus = "revoked"
)

type FamilyLink struct {
	ID               int64            `json:"id"`
	SponsorID        int64            `json:"sponsor_id"`
	FamilyMemberID   int64            `json:"family_member_id"`
	Status           FamilyLinkStatus `json:"status"`
	RevocationReason *string          `json:"revocation_reason,omitempty"`
	CreatedAt        time.Time        `json:"created_at"`
	RevokedAt        *time.Time       `json:"revoked_at,omitempty"`
}

func (l *FamilyLink) IsActive() bool {
	return l.Status == FamilyLinkStatusActive
}

// FamilyDetail is the dashboard view of an active link, joined with the
// family member's public profile fields.
type FamilyDetail struct {
	LinkID         int64     `json:"link_id"`
	SponsorID      int64     `json:"sponsor_id"`
	FamilyMemberID int64     `json:"family_member_id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	AvatarURL      *string   `json:"avatar_url,omitempty"`
	LinkedAt       time.Time `json:"linked_at"`
}
