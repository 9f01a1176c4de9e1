package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"basepost.app/server/common/id"
	"basepost.app/server/common/logger"
	"basepost.app/server/internal/model"
	"basepost.app/server/internal/queue"
	"basepost.app/server/internal/store"
)

const (
	// RequestTTLDays is how long a pending request is considered current.
	// Expiry is stored and shown to the UI but does not block processing.
	RequestTTLDays = 7

	// RevocationCooldownDays is how long a sponsor is blocked from
	// approving a new request after revoking a link.
	RevocationCooldownDays = 7
)

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrSponsorNotFound      = errors.New("sponsor not found")
	ErrSponsorNotVerified   = errors.New("sponsor must be DoD verified first")
	ErrNotRequestOwner      = errors.New("email does not belong to the authenticated user")
	ErrActiveLinkExists     = errors.New("family member already has an active sponsor link")
	ErrPendingRequestExists = errors.New("a pending sponsor request already exists")
	ErrSponsorLinkExists    = errors.New("sponsor already has an active family link")
	ErrRequestNotFound      = errors.New("request not found or already processed")
	ErrLinkNotFound         = errors.New("link not found or not active")
)

// CooldownActiveError carries the cooldown expiry so the caller can tell
// the user when the sponsor becomes eligible again.
type CooldownActiveError struct {
	Until time.Time
}

func (e *CooldownActiveError) Error() string {
	return fmt.Sprintf("sponsor is cooling down until %s", e.Until.Format(time.RFC3339))
}

// RequestReceipt is returned to the family member on a successful request.
type RequestReceipt struct {
	RequestID int64
	ExpiresAt time.Time
}

// ApprovalResult identifies the link created by an approval.
type ApprovalResult struct {
	LinkID         int64
	FamilyMemberID int64
}

// Dashboard is the sponsor's admin view: full request history, the active
// link if any, and the active cooldown if any.
type Dashboard struct {
	Requests     []model.SponsorRequest
	ActiveFamily *model.FamilyDetail
	Cooldown     *model.SponsorCooldown
}

type SponsorService interface {
	// RequestApproval creates a pending request from the family member
	// identified by email toward the named sponsor. When requester is
	// non-nil the email must belong to them.
	RequestApproval(ctx context.Context, requester *model.User, email, sponsorUsername string) (*RequestReceipt, error)

	// Dashboard is a tolerant read: a failing sub-query degrades to an
	// empty section instead of failing the whole call.
	Dashboard(ctx context.Context, sponsorID int64) *Dashboard

	Approve(ctx context.Context, requestID int64) (*ApprovalResult, error)
	Deny(ctx context.Context, requestID int64, reason *string) error
	Revoke(ctx context.Context, linkID int64, reason *string) (time.Time, error)

	AuditTrail(ctx context.Context, sponsorID int64, limit int32) ([]model.AuditEntry, error)
}

type sponsorService struct {
	stores   StoreProvider
	txRunner TxRunner
	producer queue.Producer
}

func NewSponsorService(stores StoreProvider, txRunner TxRunner, producer queue.Producer) SponsorService {
	return &sponsorService{
		stores:   stores,
		txRunner: txRunner,
		producer: producer,
	}
}

func (s *sponsorService) RequestApproval(ctx context.Context, requester *model.User, email, sponsorUsername string) (*RequestReceipt, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	sponsorUsername = strings.TrimSpace(sponsorUsername)

	var req model.SponsorRequest

	err := s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		familyMember, err := stores.Users().GetByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrUserNotFound
			}
			return fmt.Errorf("looking up family member: %w", err)
		}

		if requester != nil && requester.ID != familyMember.ID {
			slog.WarnContext(ctx, "request email does not match authenticated user",
				"authenticated_user_id", requester.ID,
				"email_user_id", familyMember.ID,
			)
			return ErrNotRequestOwner
		}

		sponsor, err := stores.Users().GetByUsername(ctx, sponsorUsername)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrSponsorNotFound
			}
			return fmt.Errorf("looking up sponsor: %w", err)
		}

		if !sponsor.IsVerifiedSponsor() {
			return ErrSponsorNotVerified
		}

		if _, err := stores.FamilyLinks().GetActiveByFamilyMember(ctx, familyMember.ID); err == nil {
			return ErrActiveLinkExists
		} else if !errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("checking active link: %w", err)
		}

		if _, err := stores.SponsorRequests().GetPendingByFamilyMember(ctx, familyMember.ID); err == nil {
			return ErrPendingRequestExists
		} else if !errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("checking pending request: %w", err)
		}

		if cd, err := stores.SponsorCooldowns().GetActiveBySponsor(ctx, sponsor.ID); err == nil {
			return &CooldownActiveError{Until: cd.CooldownUntil}
		} else if !errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("checking cooldown: %w", err)
		}

		req = model.SponsorRequest{
			ID:              id.New(),
			FamilyMemberID:  familyMember.ID,
			SponsorID:       sponsor.ID,
			SponsorUsername: sponsor.Username,
			Status:          model.SponsorRequestStatusPending,
			ExpiresAt:       time.Now().Add(RequestTTLDays * 24 * time.Hour),
		}
		if err := stores.SponsorRequests().Create(ctx, &req); err != nil {
			// A racing request from the same family member lands on the
			// partial unique index.
			if errors.Is(err, store.ErrConflict) {
				return ErrPendingRequestExists
			}
			return fmt.Errorf("creating sponsor request: %w", err)
		}

		return s.writeAudit(ctx, stores, &model.AuditEntry{
			SponsorID:        sponsor.ID,
			FamilyMemberID:   familyMember.ID,
			SponsorRequestID: &req.ID,
			ActionType:       model.AuditActionRequestCreated,
			Details:          fmt.Sprintf("family member %s requested sponsor %s", familyMember.Username, sponsor.Username),
		})
	})
	if err != nil {
		return nil, err
	}

	ctx = logger.WithLogFields(ctx, logger.LogFields{
		SponsorID:      logger.Ptr(req.SponsorID),
		FamilyMemberID: logger.Ptr(req.FamilyMemberID),
		RequestID:      logger.Ptr(req.ID),
	})
	slog.InfoContext(ctx, "sponsor request created", "expires_at", req.ExpiresAt)

	s.publish(ctx, queue.SponsorEvent{
		Action:         string(model.AuditActionRequestCreated),
		SponsorID:      req.SponsorID,
		FamilyMemberID: req.FamilyMemberID,
		RequestID:      &req.ID,
	})

	return &RequestReceipt{RequestID: req.ID, ExpiresAt: req.ExpiresAt}, nil
}

func (s *sponsorService) Dashboard(ctx context.Context, sponsorID int64) *Dashboard {
	dash := &Dashboard{Requests: []model.SponsorRequest{}}

	requests, err := s.stores.SponsorRequests().ListBySponsor(ctx, sponsorID)
	if err != nil {
		slog.WarnContext(ctx, "dashboard: listing requests failed, degrading to empty", "error", err, "sponsor_id", sponsorID)
	} else if requests != nil {
		dash.Requests = requests
	}

	family, err := s.stores.FamilyLinks().GetActiveDetailBySponsor(ctx, sponsorID)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			slog.WarnContext(ctx, "dashboard: active family lookup failed, degrading to empty", "error", err, "sponsor_id", sponsorID)
		}
	} else {
		dash.ActiveFamily = family
	}

	cooldown, err := s.stores.SponsorCooldowns().GetActiveBySponsor(ctx, sponsorID)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			slog.WarnContext(ctx, "dashboard: cooldown lookup failed, degrading to empty", "error", err, "sponsor_id", sponsorID)
		}
	} else {
		dash.Cooldown = cooldown
	}

	return dash
}

func (s *sponsorService) Approve(ctx context.Context, requestID int64) (*ApprovalResult, error) {
	var (
		req  *model.SponsorRequest
		link model.FamilyLink
	)

	err := s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		var err error
		req, err = stores.SponsorRequests().GetByIDForUpdate(ctx, requestID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrRequestNotFound
			}
			return fmt.Errorf("locking request: %w", err)
		}
		if !req.IsPending() {
			return ErrRequestNotFound
		}

		if _, err := stores.FamilyLinks().GetActiveBySponsorForUpdate(ctx, req.SponsorID); err == nil {
			return ErrSponsorLinkExists
		} else if !errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("checking sponsor link: %w", err)
		}

		link = model.FamilyLink{
			ID:             id.New(),
			SponsorID:      req.SponsorID,
			FamilyMemberID: req.FamilyMemberID,
			Status:         model.FamilyLinkStatusActive,
		}
		if err := stores.FamilyLinks().Create(ctx, &link); err != nil {
			if errors.Is(err, store.ErrConflict) {
				return ErrSponsorLinkExists
			}
			return fmt.Errorf("creating family link: %w", err)
		}

		if _, err := stores.SponsorRequests().Approve(ctx, req.ID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrRequestNotFound
			}
			return fmt.Errorf("approving request: %w", err)
		}

		now := time.Now()
		if err := stores.Users().SetFamilyVerified(ctx, req.FamilyMemberID, &now); err != nil {
			return fmt.Errorf("setting family verified: %w", err)
		}

		return s.writeAudit(ctx, stores, &model.AuditEntry{
			SponsorID:        req.SponsorID,
			FamilyMemberID:   req.FamilyMemberID,
			SponsorRequestID: &req.ID,
			FamilyLinkID:     &link.ID,
			ActionType:       model.AuditActionRequestApproved,
			Details:          fmt.Sprintf("request %d approved, link %d created", req.ID, link.ID),
		})
	})
	if err != nil {
		return nil, err
	}

	ctx = logger.WithLogFields(ctx, logger.LogFields{
		SponsorID:      logger.Ptr(req.SponsorID),
		FamilyMemberID: logger.Ptr(req.FamilyMemberID),
		RequestID:      logger.Ptr(req.ID),
		LinkID:         logger.Ptr(link.ID),
	})
	slog.InfoContext(ctx, "sponsor request approved")

	s.publish(ctx, queue.SponsorEvent{
		Action:         string(model.AuditActionRequestApproved),
		SponsorID:      req.SponsorID,
		FamilyMemberID: req.FamilyMemberID,
		RequestID:      &req.ID,
		LinkID:         &link.ID,
	})

	return &ApprovalResult{LinkID: link.ID, FamilyMemberID: req.FamilyMemberID}, nil
}

func (s *sponsorService) Deny(ctx context.Context, requestID int64, reason *string) error {
	var req *model.SponsorRequest

	err := s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		var err error
		req, err = stores.SponsorRequests().GetByIDForUpdate(ctx, requestID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrRequestNotFound
			}
			return fmt.Errorf("locking request: %w", err)
		}
		if !req.IsPending() {
			return ErrRequestNotFound
		}

		if _, err := stores.SponsorRequests().Deny(ctx, req.ID, reason); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrRequestNotFound
			}
			return fmt.Errorf("denying request: %w", err)
		}

		details := fmt.Sprintf("request %d denied", req.ID)
		if reason != nil && *reason != "" {
			details = fmt.Sprintf("request %d denied: %s", req.ID, logger.Truncate(*reason, 500))
		}
		return s.writeAudit(ctx, stores, &model.AuditEntry{
			SponsorID:        req.SponsorID,
			FamilyMemberID:   req.FamilyMemberID,
			SponsorRequestID: &req.ID,
			ActionType:       model.AuditActionRequestDenied,
			Details:          details,
		})
	})
	if err != nil {
		return err
	}

	slog.InfoContext(ctx, "sponsor request denied", "request_id", req.ID, "sponsor_id", req.SponsorID)

	s.publish(ctx, queue.SponsorEvent{
		Action:         string(model.AuditActionRequestDenied),
		SponsorID:      req.SponsorID,
		FamilyMemberID: req.FamilyMemberID,
		RequestID:      &req.ID,
	})

	return nil
}

func (s *sponsorService) Revoke(ctx context.Context, linkID int64, reason *string) (time.Time, error) {
	var (
		link          *model.FamilyLink
		cooldownUntil time.Time
	)

	err := s.txRunner.WithTx(ctx, func(stores StoreProvider) error {
		var err error
		link, err = stores.FamilyLinks().GetByIDForUpdate(ctx, linkID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrLinkNotFound
			}
			return fmt.Errorf("locking link: %w", err)
		}
		if !link.IsActive() {
			return ErrLinkNotFound
		}

		if _, err := stores.FamilyLinks().Revoke(ctx, link.ID, reason); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrLinkNotFound
			}
			return fmt.Errorf("revoking link: %w", err)
		}

		if err := stores.Users().SetFamilyVerified(ctx, link.FamilyMemberID, nil); err != nil {
			return fmt.Errorf("clearing family verified: %w", err)
		}

		// Revocation always costs the sponsor a full cooldown, overwriting
		// any prior one.
		cooldownUntil = time.Now().Add(RevocationCooldownDays * 24 * time.Hour)
		cooldownReason := "family link revoked"
		if reason != nil && *reason != "" {
			cooldownReason = fmt.Sprintf("family link revoked: %s", logger.Truncate(*reason, 500))
		}
		cd := model.SponsorCooldown{
			ID:            id.New(),
			SponsorID:     link.SponsorID,
			CooldownUntil: cooldownUntil,
			Reason:        cooldownReason,
		}
		if err := stores.SponsorCooldowns().Upsert(ctx, &cd); err != nil {
			return fmt.Errorf("upserting cooldown: %w", err)
		}

		return s.writeAudit(ctx, stores, &model.AuditEntry{
			SponsorID:      link.SponsorID,
			FamilyMemberID: link.FamilyMemberID,
			FamilyLinkID:   &link.ID,
			ActionType:     model.AuditActionLinkRevoked,
			Details:        fmt.Sprintf("link %d revoked, cooldown until %s", link.ID, cooldownUntil.Format(time.RFC3339)),
		})
	})
	if err != nil {
		return time.Time{}, err
	}

	ctx = logger.WithLogFields(ctx, logger.LogFields{
		SponsorID:      logger.Ptr(link.SponsorID),
		FamilyMemberID: logger.Ptr(link.FamilyMemberID),
		LinkID:         logger.Ptr(link.ID),
	})
	slog.InfoContext(ctx, "family link revoked", "cooldown_until", cooldownUntil)

	s.publish(ctx, queue.SponsorEvent{
		Action:         string(model.AuditActionLinkRevoked),
		SponsorID:      link.SponsorID,
		FamilyMemberID: link.FamilyMemberID,
		LinkID:         &link.ID,
	})

	return cooldownUntil, nil
}

func (s *sponsorService) AuditTrail(ctx context.Context, sponsorID int64, limit int32) ([]model.AuditEntry, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	return s.stores.Audit().ListBySponsor(ctx, sponsorID, limit)
}

func (s *sponsorService) writeAudit(ctx context.Context, stores StoreProvider, entry *model.AuditEntry) error {
	entry.ID = id.New()
	if err := stores.Audit().Create(ctx, entry); err != nil {
		return fmt.Errorf("writing audit entry: %w", err)
	}
	return nil
}

// publish is best-effort: the state transition is already committed, so a
// publish failure only costs a notification, never the transition.
func (s *sponsorService) publish(ctx context.Context, event queue.SponsorEvent) {
	if s.producer == nil {
		return
	}
	if err := s.producer.Publish(ctx, event); err != nil {
		slog.WarnContext(ctx, "failed to publish sponsor event", "error", err, "action", event.Action)
	}
}
