package handler_test

import (
	"context"
	"time"

	"basepost.app/server/internal/model"
	"basepost.app/server/internal/service"
)

type mockSponsorService struct {
	requestApprovalFn func(ctx context.Context, requester *model.User, email, sponsorUsername string) (*service.RequestReceipt, error)
	dashboardFn       func(ctx context.Context, sponsorID int64) *service.Dashboard
	approveFn         func(ctx context.Context, requestID int64) (*service.ApprovalResult, error)
	denyFn            func(ctx context.Context, requestID int64, reason *string) error
	revokeFn          func(ctx context.Context, linkID int64, reason *string) (time.Time, error)
	auditTrailFn      func(ctx context.Context, sponsorID int64, limit int32) ([]model.AuditEntry, error)
}

func (m *mockSponsorService) RequestApproval(ctx context.Context, requester *model.User, email, sponsorUsername string) (*service.RequestReceipt, error) {
	if m.requestApprovalFn != nil {
		return m.requestApprovalFn(ctx, requester, email, sponsorUsername)
	}
	return &service.RequestReceipt{RequestID: 1, ExpiresAt: time.Now().Add(7 * 24 * time.Hour)}, nil
}

func (m *mockSponsorService) Dashboard(ctx context.Context, sponsorID int64) *service.Dashboard {
	if m.dashboardFn != nil {
		return m.dashboardFn(ctx, sponsorID)
	}
	return &service.Dashboard{Requests: []model.SponsorRequest{}}
}

func (m *mockSponsorService) Approve(ctx context.Context, requestID int64) (*service.ApprovalResult, error) {
	if m.approveFn != nil {
		return m.approveFn(ctx, requestID)
	}
	return &service.ApprovalResult{LinkID: 1, FamilyMemberID: 1}, nil
}

func (m *mockSponsorService) Deny(ctx context.Context, requestID int64, reason *string) error {
	if m.denyFn != nil {
		return m.denyFn(ctx, requestID, reason)
	}
	return nil
}

func (m *mockSponsorService) Revoke(ctx context.Context, linkID int64, reason *string) (time.Time, error) {
	if m.revokeFn != nil {
		return m.revokeFn(ctx, linkID, reason)
	}
	return time.Now().Add(7 * 24 * time.Hour), nil
}

func (m *mockSponsorService) AuditTrail(ctx context.Context, sponsorID int64, limit int32) ([]model.AuditEntry, error) {
	if m.auditTrailFn != nil {
		return m.auditTrailFn(ctx, sponsorID, limit)
	}
	return []model.AuditEntry{}, nil
}

type mockIdentityService struct {
	resolveFn func(ctx context.Context, token string) (*model.User, error)
}

func (m *mockIdentityService) Resolve(ctx context.Context, token string) (*model.User, error) {
	if m.resolveFn != nil {
		return m.resolveFn(ctx, token)
	}
	return nil, service.ErrInvalidSession
}
