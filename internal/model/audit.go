package model

import "time"

type AuditActionType string

const (
	AuditActionRequestCreated  AuditActionType = "request_created"
	AuditActionRequestApproved AuditActionType = "request_approved"
	AuditActionRequestDenied   AuditActionType = "request_denied"
	AuditActionLinkRevoked     AuditActionType = "link_revoked"
)

// AuditEntry is one append-only row per workflow state transition.
// Entries are never mutated or deleted.
type AuditEntry struct {
	ID               int64           `json:"id"`
	SponsorID        int64           `json:"sponsor_id"`
	FamilyMemberID   int64           `json:"family_member_id"`
	SponsorRequestID *int64          `json:"sponsor_request_id,omitempty"`
	FamilyLinkID     *int64          `json:"family_link_id,omitempty"`
	ActionType       AuditActionType `json:"action_type"`
	Details          string          `json:"details"`
	CreatedAt        time.Time       `json:"created_at"`
}
