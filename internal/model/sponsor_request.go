package model

import "time"

type SponsorRequestStatus string

const (
	SponsorRequestStatusPending  SponsorRequestStatus = "pending"
	SponsorRequestStatusApproved SponsorRequestStatus = "approved"
	SponsorRequestStatusDenied   SponsorRequestStatus = "denied"
)

type SponsorRequest struct {
	ID              int64                `json:"id"`
	FamilyMemberID  int64                `json:"family_member_id"`
	SponsorID       int64                `json:"sponsor_id"`
	SponsorUsername string               `json:"sponsor_username"`
	Status          SponsorRequestStatus `json:"status"`
	DenialReason    *string              `json:"denial_reason,omitempty"`
	ExpiresAt       time.Time            `json:"expires_at"`
	CreatedAt       time.Time            `json:"created_at"`
	ApprovedAt      *time.Time           `json:"approved_at,omitempty"`
	DeniedAt        *time.Time           `json:"denied_at,omitempty"`
}

func (r *SponsorRequest) IsPending() bool {
	return r.Status == SponsorRequestStatusPending
}

// Expired reports whether the request's expiry has passed. Expiry is stored
// and surfaced to the UI but does not block approval or denial.
func (r *SponsorRequest) Expired() bool {
	return time.Now().After(r.ExpiresAt)
}
