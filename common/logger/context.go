package logger

import "context"

type contextKey string

const logFieldsKey contextKey = "log_fields"

// LogFields contains structured fields automatically added to all logs within a context.
// Fields flow through context enrichment so business context (sponsor_id,
// request_id, etc.) is included in every log statement without threading args.
type LogFields struct {
	SponsorID      *int64  // Sponsor user ID
	FamilyMemberID *int64  // Family member user ID
	RequestID      *int64  // Sponsor request ID
	LinkID         *int64  // Family link ID
	ActionType     *string // Workflow action (e.g., "request_created", "link_revoked")
	Component      string  // Component name (e.g., "basepost.sponsor.service")
}

// WithLogFields enriches context with structured log fields.
// Multiple calls merge fields, with newer non-nil/non-empty values taking precedence.
// Context timeouts and cancellation are preserved.
func WithLogFields(ctx context.Context, fields LogFields) context.Context {
	existing := GetLogFields(ctx)
	merged := mergeFields(existing, fields)
	return context.WithValue(ctx, logFieldsKey, merged)
}

// GetLogFields retrieves log fields from context.
// Returns empty LogFields if none are set.
func GetLogFields(ctx context.Context) LogFields {
	if fields, ok := ctx.Value(logFieldsKey).(LogFields); ok {
		return fields
	}
	return LogFields{}
}

func mergeFields(existing, next LogFields) LogFields {
	result := existing

	if next.SponsorID != nil {
		result.SponsorID = next.SponsorID
	}
	if next.FamilyMemberID != nil {
		result.FamilyMemberID = next.FamilyMemberID
	}
	if next.RequestID != nil {
		result.RequestID = next.RequestID
	}
	if next.LinkID != nil {
		result.LinkID = next.LinkID
	}
	if next.ActionType != nil {
		result.ActionType = next.ActionType
	}
	if next.Component != "" {
		result.Component = next.Component
	}

	return result
}

// Ptr is a helper to create a pointer from a value.
// Useful for setting LogFields inline: logger.WithLogFields(ctx, logger.LogFields{RequestID: logger.Ptr(id)})
func Ptr[T any](v T) *T {
	return &v
}

// Truncate truncates a string to maxLen characters, appending "..." if truncated.
// Useful for logging potentially long strings like denial reasons.
func Truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
