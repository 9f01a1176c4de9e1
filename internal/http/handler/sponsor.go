package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"basepost.app/server/internal/http/middleware"
	"basepost.app/server/internal/model"
	"basepost.app/server/internal/service"
)

const timeFormat = "2006-01-02T15:04:05Z07:00"

type SponsorHandler struct {
	svc         service.SponsorService
	adminAPIKey string
}

func NewSponsorHandler(svc service.SponsorService, adminAPIKey string) *SponsorHandler {
	return &SponsorHandler{
		svc:         svc,
		adminAPIKey: adminAPIKey,
	}
}

type requestApprovalRequest struct {
	Email           string `json:"email" binding:"required,email"`
	SponsorUsername string `json:"sponsorUsername" binding:"required"`
}

type requestApprovalResponse struct {
	RequestID int64  `json:"requestId"`
	Message   string `json:"message"`
	ExpiresAt string `json:"expiresAt"`
}

// Request creates a pending sponsor request for the authenticated family member.
func (h *SponsorHandler) Request(c *gin.Context) {
	ctx := c.Request.Context()

	var req requestApprovalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: email and sponsorUsername are required"})
		return
	}

	receipt, err := h.svc.RequestApproval(ctx, middleware.UserFrom(c), req.Email, req.SponsorUsername)
	if err != nil {
		var cooldownErr *service.CooldownActiveError
		switch {
		case errors.Is(err, service.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "no account found for that email"})
		case errors.Is(err, service.ErrSponsorNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "sponsor not found"})
		case errors.Is(err, service.ErrSponsorNotVerified):
			c.JSON(http.StatusForbidden, gin.H{"error": "Sponsor must be DoD verified first"})
		case errors.Is(err, service.ErrNotRequestOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": "email does not belong to your account"})
		case errors.Is(err, service.ErrActiveLinkExists):
			c.JSON(http.StatusConflict, gin.H{"error": "you already have an active sponsor link"})
		case errors.Is(err, service.ErrPendingRequestExists):
			c.JSON(http.StatusConflict, gin.H{"error": "a pending sponsor request already exists"})
		case errors.As(err, &cooldownErr):
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error":         "sponsor is in a cooldown period",
				"cooldownUntil": cooldownErr.Until.Format(timeFormat),
			})
		default:
			slog.ErrorContext(ctx, "failed to create sponsor request", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create sponsor request"})
		}
		return
	}

	c.JSON(http.StatusCreated, requestApprovalResponse{
		RequestID: receipt.RequestID,
		Message:   "sponsor request submitted",
		ExpiresAt: receipt.ExpiresAt.Format(timeFormat),
	})
}

type dashboardResponse struct {
	Requests     []sponsorRequestResponse `json:"requests"`
	ActiveFamily *familyDetailResponse    `json:"activeFamily"`
	Cooldown     *cooldownResponse        `json:"cooldown"`
}

type sponsorRequestResponse struct {
	ID              int64   `json:"id"`
	FamilyMemberID  int64   `json:"familyMemberId"`
	SponsorID       int64   `json:"sponsorId"`
	SponsorUsername string  `json:"sponsorUsername"`
	Status          string  `json:"status"`
	DenialReason    *string `json:"denialReason,omitempty"`
	ExpiresAt       string  `json:"expiresAt"`
	CreatedAt       string  `json:"createdAt"`
	ApprovedAt      *string `json:"approvedAt,omitempty"`
	DeniedAt        *string `json:"deniedAt,omitempty"`
	Expired         bool    `json:"expired"`
}

type familyDetailResponse struct {
	LinkID         int64   `json:"linkId"`
	FamilyMemberID int64   `json:"familyMemberId"`
	Username       string  `json:"username"`
	Email          string  `json:"email"`
	AvatarURL      *string `json:"avatarUrl,omitempty"`
	LinkedAt       string  `json:"linkedAt"`
}

type cooldownResponse struct {
	CooldownUntil string `json:"cooldownUntil"`
	Reason        string `json:"reason"`
}

// Dashboard returns the sponsor's requests, active family link and cooldown.
// Internal failures degrade to empty sections rather than erroring the call.
func (h *SponsorHandler) Dashboard(c *gin.Context) {
	sponsorID, err := strconv.ParseInt(c.Query("sponsorId"), 10, 64)
	if err != nil || sponsorID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "sponsorId is required"})
		return
	}

	dash := h.svc.Dashboard(c.Request.Context(), sponsorID)

	resp := dashboardResponse{
		Requests: make([]sponsorRequestResponse, len(dash.Requests)),
	}
	for i := range dash.Requests {
		resp.Requests[i] = toSponsorRequestResponse(&dash.Requests[i])
	}
	if dash.ActiveFamily != nil {
		resp.ActiveFamily = &familyDetailResponse{
			LinkID:         dash.ActiveFamily.LinkID,
			FamilyMemberID: dash.ActiveFamily.FamilyMemberID,
			Username:       dash.ActiveFamily.Username,
			Email:          dash.ActiveFamily.Email,
			AvatarURL:      dash.ActiveFamily.AvatarURL,
			LinkedAt:       dash.ActiveFamily.LinkedAt.Format(timeFormat),
		}
	}
	if dash.Cooldown != nil {
		resp.Cooldown = &cooldownResponse{
			CooldownUntil: dash.Cooldown.CooldownUntil.Format(timeFormat),
			Reason:        dash.Cooldown.Reason,
		}
	}

	c.JSON(http.StatusOK, resp)
}

type approveRequest struct {
	RequestID int64 `json:"requestId" binding:"required"`
}

type approveResponse struct {
	Message        string `json:"message"`
	LinkID         int64  `json:"linkId"`
	FamilyMemberID int64  `json:"familyMemberId"`
}

// Approve transitions a pending request to approved and creates the link.
func (h *SponsorHandler) Approve(c *gin.Context) {
	ctx := c.Request.Context()

	var req approveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: requestId is required"})
		return
	}

	result, err := h.svc.Approve(ctx, req.RequestID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRequestNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "request not found or already processed"})
		case errors.Is(err, service.ErrSponsorLinkExists):
			c.JSON(http.StatusConflict, gin.H{"error": "sponsor already has an active family link"})
		default:
			slog.ErrorContext(ctx, "failed to approve sponsor request", "error", err, "request_id", req.RequestID)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to approve request"})
		}
		return
	}

	c.JSON(http.StatusOK, approveResponse{
		Message:        "request approved",
		LinkID:         result.LinkID,
		FamilyMemberID: result.FamilyMemberID,
	})
}

type denyRequest struct {
	RequestID int64   `json:"requestId" binding:"required"`
	Reason    *string `json:"reason"`
}

// Deny transitions a pending request to denied.
func (h *SponsorHandler) Deny(c *gin.Context) {
	ctx := c.Request.Context()

	var req denyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: requestId is required"})
		return
	}

	if err := h.svc.Deny(ctx, req.RequestID, req.Reason); err != nil {
		if errors.Is(err, service.ErrRequestNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "request not found or already processed"})
			return
		}
		slog.ErrorContext(ctx, "failed to deny sponsor request", "error", err, "request_id", req.RequestID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to deny request"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "request denied"})
}

type revokeRequest struct {
	LinkID int64   `json:"linkId" binding:"required"`
	Reason *string `json:"reason"`
}

type revokeResponse struct {
	Message       string `json:"message"`
	CooldownUntil string `json:"cooldownUntil"`
}

// Revoke ends an active family link and starts the sponsor's cooldown.
func (h *SponsorHandler) Revoke(c *gin.Context) {
	ctx := c.Request.Context()

	var req revokeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: linkId is required"})
		return
	}

	cooldownUntil, err := h.svc.Revoke(ctx, req.LinkID, req.Reason)
	if err != nil {
		if errors.Is(err, service.ErrLinkNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "link not found or not active"})
			return
		}
		slog.ErrorContext(ctx, "failed to revoke family link", "error", err, "link_id", req.LinkID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to revoke link"})
		return
	}

	c.JSON(http.StatusOK, revokeResponse{
		Message:       "link revoked",
		CooldownUntil: cooldownUntil.Format(timeFormat),
	})
}

type auditEntryResponse struct {
	ID               int64  `json:"id"`
	SponsorID        int64  `json:"sponsorId"`
	FamilyMemberID   int64  `json:"familyMemberId"`
	SponsorRequestID *int64 `json:"sponsorRequestId,omitempty"`
	FamilyLinkID     *int64 `json:"familyLinkId,omitempty"`
	ActionType       string `json:"actionType"`
	Details          string `json:"details"`
	CreatedAt        string `json:"createdAt"`
}

// Audit returns the sponsor's action history, newest first.
func (h *SponsorHandler) Audit(c *gin.Context) {
	ctx := c.Request.Context()

	sponsorID, err := strconv.ParseInt(c.Query("sponsorId"), 10, 64)
	if err != nil || sponsorID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "sponsorId is required"})
		return
	}

	limit := int64(100)
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.ParseInt(raw, 10, 32); err == nil {
			limit = parsed
		}
	}

	entries, err := h.svc.AuditTrail(ctx, sponsorID, int32(limit))
	if err != nil {
		slog.ErrorContext(ctx, "failed to list audit entries", "error", err, "sponsor_id", sponsorID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list audit entries"})
		return
	}

	resp := make([]auditEntryResponse, len(entries))
	for i, entry := range entries {
		resp[i] = auditEntryResponse{
			ID:               entry.ID,
			SponsorID:        entry.SponsorID,
			FamilyMemberID:   entry.FamilyMemberID,
			SponsorRequestID: entry.SponsorRequestID,
			FamilyLinkID:     entry.FamilyLinkID,
			ActionType:       string(entry.ActionType),
			Details:          entry.Details,
			CreatedAt:        entry.CreatedAt.Format(timeFormat),
		}
	}

	c.JSON(http.StatusOK, gin.H{"entries": resp})
}

// RequireAdminAPIKey middleware checks for valid admin API key
func (h *SponsorHandler) RequireAdminAPIKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		if h.adminAPIKey == "" {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "admin API not configured"})
			c.Abort()
			return
		}

		apiKey := c.GetHeader("X-Admin-API-Key")
		if apiKey == "" {
			apiKey = c.GetHeader("Authorization")
			if len(apiKey) > 7 && apiKey[:7] == "Bearer " {
				apiKey = apiKey[7:]
			}
		}

		if apiKey != h.adminAPIKey {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or missing API key"})
			c.Abort()
			return
		}

		c.Next()
	}
}

func toSponsorRequestResponse(req *model.SponsorRequest) sponsorRequestResponse {
	resp := sponsorRequestResponse{
		ID:              req.ID,
		FamilyMemberID:  req.FamilyMemberID,
		SponsorID:       req.SponsorID,
		SponsorUsername: req.SponsorUsername,
		Status:          string(req.Status),
		DenialReason:    req.DenialReason,
		ExpiresAt:       req.ExpiresAt.Format(timeFormat),
		CreatedAt:       req.CreatedAt.Format(timeFormat),
		Expired:         req.Expired(),
	}
	if req.ApprovedAt != nil {
		approvedAt := req.ApprovedAt.Format(timeFormat)
		resp.ApprovedAt = &approvedAt
	}
	if req.DeniedAt != nil {
		deniedAt := req.DeniedAt.Format(timeFormat)
		resp.DeniedAt = &deniedAt
	}
	return resp
}
