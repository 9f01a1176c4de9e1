package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"basepost.app/server/internal/http/handler"
	"basepost.app/server/internal/http/middleware"
	"basepost.app/server/internal/model"
	"basepost.app/server/internal/service"
)

var _ = Describe("SponsorHandler", func() {
	var (
		router       *gin.Engine
		svc          *mockSponsorService
		identity     *mockIdentityService
		adminAPIKey  string
		sessionToken string
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		router = gin.New()
		svc = &mockSponsorService{}
		identity = &mockIdentityService{}
		adminAPIKey = "test-admin-key"
		sessionToken = "tok-valid"

		identity.resolveFn = func(_ context.Context, token string) (*model.User, error) {
			if token == sessionToken {
				return &model.User{ID: 200, Username: "jane_miller", Email: "jane@example.com"}, nil
			}
			return nil, service.ErrInvalidSession
		}

		h := handler.NewSponsorHandler(svc, adminAPIKey)

		sponsor := router.Group("/sponsor")
		sponsor.POST("/request", middleware.RequireIdentity(identity), h.Request)

		admin := sponsor.Group("")
		admin.Use(h.RequireAdminAPIKey())
		{
			admin.GET("/requests", h.Dashboard)
			admin.POST("/approve", h.Approve)
			admin.POST("/deny", h.Deny)
			admin.POST("/revoke", h.Revoke)
			admin.GET("/audit", h.Audit)
		}
	})

	postJSON := func(path string, payload any, headers map[string]string) *httptest.ResponseRecorder {
		body, err := json.Marshal(payload)
		Expect(err).NotTo(HaveOccurred())

		req := httptest.NewRequest(http.MethodPost, path, bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		for k, v := range headers {
			req.Header.Set(k, v)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	Describe("Request", func() {
		authed := func() map[string]string {
			return map[string]string{"X-Session-Token": sessionToken}
		}

		It("returns 201 with the request id and expiry", func() {
			expiresAt := time.Now().Add(7 * 24 * time.Hour)
			svc.requestApprovalFn = func(_ context.Context, requester *model.User, email, sponsorUsername string) (*service.RequestReceipt, error) {
				Expect(requester).NotTo(BeNil())
				Expect(requester.ID).To(Equal(int64(200)))
				Expect(email).To(Equal("jane@example.com"))
				Expect(sponsorUsername).To(Equal("sgt_miller"))
				return &service.RequestReceipt{RequestID: 42, ExpiresAt: expiresAt}, nil
			}

			w := postJSON("/sponsor/request", map[string]string{
				"email":           "jane@example.com",
				"sponsorUsername": "sgt_miller",
			}, authed())

			Expect(w.Code).To(Equal(http.StatusCreated))

			var resp map[string]any
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp["requestId"]).To(Equal(float64(42)))
			Expect(resp["expiresAt"]).NotTo(BeEmpty())
		})

		It("returns 401 without a session token", func() {
			w := postJSON("/sponsor/request", map[string]string{
				"email":           "jane@example.com",
				"sponsorUsername": "sgt_miller",
			}, nil)

			Expect(w.Code).To(Equal(http.StatusUnauthorized))
		})

		It("returns 401 for an invalid session token", func() {
			w := postJSON("/sponsor/request", map[string]string{
				"email":           "jane@example.com",
				"sponsorUsername": "sgt_miller",
			}, map[string]string{"X-Session-Token": "tok-bogus"})

			Expect(w.Code).To(Equal(http.StatusUnauthorized))
		})

		It("returns 400 when the email is missing", func() {
			w := postJSON("/sponsor/request", map[string]string{
				"sponsorUsername": "sgt_miller",
			}, authed())

			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("returns 404 when the email has no account", func() {
			svc.requestApprovalFn = func(_ context.Context, _ *model.User, _, _ string) (*service.RequestReceipt, error) {
				return nil, service.ErrUserNotFound
			}

			w := postJSON("/sponsor/request", map[string]string{
				"email":           "jane@example.com",
				"sponsorUsername": "sgt_miller",
			}, authed())

			Expect(w.Code).To(Equal(http.StatusNotFound))
		})

		It("returns 403 when the sponsor is not DoD verified", func() {
			svc.requestApprovalFn = func(_ context.Context, _ *model.User, _, _ string) (*service.RequestReceipt, error) {
				return nil, service.ErrSponsorNotVerified
			}

			w := postJSON("/sponsor/request", map[string]string{
				"email":           "jane@example.com",
				"sponsorUsername": "sgt_miller",
			}, authed())

			Expect(w.Code).To(Equal(http.StatusForbidden))

			var resp map[string]any
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp["error"]).To(Equal("Sponsor must be DoD verified first"))
		})

		It("returns 409 when a pending request already exists", func() {
			svc.requestApprovalFn = func(_ context.Context, _ *model.User, _, _ string) (*service.RequestReceipt, error) {
				return nil, service.ErrPendingRequestExists
			}

			w := postJSON("/sponsor/request", map[string]string{
				"email":           "jane@example.com",
				"sponsorUsername": "sgt_miller",
			}, authed())

			Expect(w.Code).To(Equal(http.StatusConflict))
		})

		It("returns 429 with the cooldown expiry when the sponsor is cooling down", func() {
			until := time.Now().Add(3 * 24 * time.Hour)
			svc.requestApprovalFn = func(_ context.Context, _ *model.User, _, _ string) (*service.RequestReceipt, error) {
				return nil, &service.CooldownActiveError{Until: until}
			}

			w := postJSON("/sponsor/request", map[string]string{
				"email":           "jane@example.com",
				"sponsorUsername": "sgt_miller",
			}, authed())

			Expect(w.Code).To(Equal(http.StatusTooManyRequests))

			var resp map[string]any
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp["cooldownUntil"]).NotTo(BeEmpty())
		})
	})

	Describe("Dashboard", func() {
		adminGet := func(path string) *httptest.ResponseRecorder {
			req := httptest.NewRequest(http.MethodGet, path, nil)
			req.Header.Set("X-Admin-API-Key", adminAPIKey)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			return w
		}

		It("returns all dashboard sections", func() {
			avatarURL := "https://cdn.example.com/a.png"
			svc.dashboardFn = func(_ context.Context, sponsorID int64) *service.Dashboard {
				Expect(sponsorID).To(Equal(int64(100)))
				return &service.Dashboard{
					Requests: []model.SponsorRequest{{
						ID:              1,
						FamilyMemberID:  200,
						SponsorID:       100,
						SponsorUsername: "sgt_miller",
						Status:          model.SponsorRequestStatusPending,
						ExpiresAt:       time.Now().Add(5 * 24 * time.Hour),
						CreatedAt:       time.Now().Add(-2 * 24 * time.Hour),
					}},
					ActiveFamily: &model.FamilyDetail{
						LinkID:         7,
						SponsorID:      100,
						FamilyMemberID: 200,
						Username:       "jane_miller",
						Email:          "jane@example.com",
						AvatarURL:      &avatarURL,
						LinkedAt:       time.Now().Add(-24 * time.Hour),
					},
					Cooldown: &model.SponsorCooldown{
						SponsorID:     100,
						CooldownUntil: time.Now().Add(time.Hour),
						Reason:        "family link revoked",
					},
				}
			}

			w := adminGet("/sponsor/requests?sponsorId=100")

			Expect(w.Code).To(Equal(http.StatusOK))

			var resp map[string]any
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			requests := resp["requests"].([]any)
			Expect(requests).To(HaveLen(1))
			first := requests[0].(map[string]any)
			Expect(first["sponsorUsername"]).To(Equal("sgt_miller"))
			Expect(first["expired"]).To(Equal(false))
			family := resp["activeFamily"].(map[string]any)
			Expect(family["username"]).To(Equal("jane_miller"))
			cooldown := resp["cooldown"].(map[string]any)
			Expect(cooldown["reason"]).To(Equal("family link revoked"))
		})

		It("returns empty sections when the sponsor has no activity", func() {
			w := adminGet("/sponsor/requests?sponsorId=100")

			Expect(w.Code).To(Equal(http.StatusOK))

			var resp map[string]any
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp["requests"]).To(BeEmpty())
			Expect(resp["activeFamily"]).To(BeNil())
			Expect(resp["cooldown"]).To(BeNil())
		})

		It("marks stale pending requests as expired", func() {
			svc.dashboardFn = func(_ context.Context, _ int64) *service.Dashboard {
				return &service.Dashboard{
					Requests: []model.SponsorRequest{{
						ID:        1,
						Status:    model.SponsorRequestStatusPending,
						ExpiresAt: time.Now().Add(-time.Hour),
					}},
				}
			}

			w := adminGet("/sponsor/requests?sponsorId=100")

			var resp map[string]any
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			first := resp["requests"].([]any)[0].(map[string]any)
			Expect(first["expired"]).To(Equal(true))
		})

		It("returns 400 without a sponsorId", func() {
			w := adminGet("/sponsor/requests")
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("Approve", func() {
		adminHeaders := func() map[string]string {
			return map[string]string{"X-Admin-API-Key": adminAPIKey}
		}

		It("returns 200 with the created link", func() {
			svc.approveFn = func(_ context.Context, requestID int64) (*service.ApprovalResult, error) {
				Expect(requestID).To(Equal(int64(42)))
				return &service.ApprovalResult{LinkID: 7, FamilyMemberID: 200}, nil
			}

			w := postJSON("/sponsor/approve", map[string]any{"requestId": 42}, adminHeaders())

			Expect(w.Code).To(Equal(http.StatusOK))

			var resp map[string]any
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp["linkId"]).To(Equal(float64(7)))
			Expect(resp["familyMemberId"]).To(Equal(float64(200)))
		})

		It("returns 404 when the request was already processed", func() {
			svc.approveFn = func(_ context.Context, _ int64) (*service.ApprovalResult, error) {
				return nil, service.ErrRequestNotFound
			}

			w := postJSON("/sponsor/approve", map[string]any{"requestId": 42}, adminHeaders())
			Expect(w.Code).To(Equal(http.StatusNotFound))
		})

		It("returns 409 when the sponsor already has an active link", func() {
			svc.approveFn = func(_ context.Context, _ int64) (*service.ApprovalResult, error) {
				return nil, service.ErrSponsorLinkExists
			}

			w := postJSON("/sponsor/approve", map[string]any{"requestId": 42}, adminHeaders())
			Expect(w.Code).To(Equal(http.StatusConflict))
		})

		It("returns 400 without a requestId", func() {
			w := postJSON("/sponsor/approve", map[string]any{}, adminHeaders())
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("Deny", func() {
		adminHeaders := func() map[string]string {
			return map[string]string{"X-Admin-API-Key": adminAPIKey}
		}

		It("returns 200 and passes the reason through", func() {
			var captured *string
			svc.denyFn = func(_ context.Context, requestID int64, reason *string) error {
				Expect(requestID).To(Equal(int64(42)))
				captured = reason
				return nil
			}

			w := postJSON("/sponsor/deny", map[string]any{
				"requestId": 42,
				"reason":    "not a dependent",
			}, adminHeaders())

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(captured).NotTo(BeNil())
			Expect(*captured).To(Equal("not a dependent"))
		})

		It("returns 404 when the request was already processed", func() {
			svc.denyFn = func(_ context.Context, _ int64, _ *string) error {
				return service.ErrRequestNotFound
			}

			w := postJSON("/sponsor/deny", map[string]any{"requestId": 42}, adminHeaders())
			Expect(w.Code).To(Equal(http.StatusNotFound))
		})
	})

	Describe("Revoke", func() {
		adminHeaders := func() map[string]string {
			return map[string]string{"X-Admin-API-Key": adminAPIKey}
		}

		It("returns 200 with the cooldown expiry", func() {
			until := time.Now().Add(7 * 24 * time.Hour)
			svc.revokeFn = func(_ context.Context, linkID int64, _ *string) (time.Time, error) {
				Expect(linkID).To(Equal(int64(7)))
				return until, nil
			}

			w := postJSON("/sponsor/revoke", map[string]any{"linkId": 7}, adminHeaders())

			Expect(w.Code).To(Equal(http.StatusOK))

			var resp map[string]any
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp["cooldownUntil"]).NotTo(BeEmpty())
		})

		It("returns 404 when the link is not active", func() {
			svc.revokeFn = func(_ context.Context, _ int64, _ *string) (time.Time, error) {
				return time.Time{}, service.ErrLinkNotFound
			}

			w := postJSON("/sponsor/revoke", map[string]any{"linkId": 7}, adminHeaders())
			Expect(w.Code).To(Equal(http.StatusNotFound))
		})
	})

	Describe("Audit", func() {
		It("returns the sponsor's audit entries", func() {
			requestID := int64(42)
			svc.auditTrailFn = func(_ context.Context, sponsorID int64, limit int32) ([]model.AuditEntry, error) {
				Expect(sponsorID).To(Equal(int64(100)))
				Expect(limit).To(Equal(int32(10)))
				return []model.AuditEntry{{
					ID:               1,
					SponsorID:        100,
					FamilyMemberID:   200,
					SponsorRequestID: &requestID,
					ActionType:       model.AuditActionRequestCreated,
					Details:          "family member jane_miller requested sponsor sgt_miller",
					CreatedAt:        time.Now(),
				}}, nil
			}

			req := httptest.NewRequest(http.MethodGet, "/sponsor/audit?sponsorId=100&limit=10", nil)
			req.Header.Set("X-Admin-API-Key", adminAPIKey)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))

			var resp map[string]any
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			entries := resp["entries"].([]any)
			Expect(entries).To(HaveLen(1))
			first := entries[0].(map[string]any)
			Expect(first["actionType"]).To(Equal("request_created"))
			Expect(first["sponsorRequestId"]).To(Equal(float64(42)))
		})
	})

	Describe("RequireAdminAPIKey", func() {
		It("rejects requests without an API key", func() {
			req := httptest.NewRequest(http.MethodGet, "/sponsor/requests?sponsorId=100", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusUnauthorized))
		})

		It("rejects requests with a wrong API key", func() {
			req := httptest.NewRequest(http.MethodGet, "/sponsor/requests?sponsorId=100", nil)
			req.Header.Set("X-Admin-API-Key", "wrong-key")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusUnauthorized))
		})

		It("accepts the key as a bearer token", func() {
			req := httptest.NewRequest(http.MethodGet, "/sponsor/requests?sponsorId=100", nil)
			req.Header.Set("Authorization", "Bearer "+adminAPIKey)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
		})

		It("returns 503 when no admin key is configured", func() {
			bare := gin.New()
			h := handler.NewSponsorHandler(svc, "")
			admin := bare.Group("/sponsor")
			admin.Use(h.RequireAdminAPIKey())
			admin.GET("/requests", h.Dashboard)

			req := httptest.NewRequest(http.MethodGet, "/sponsor/requests?sponsorId=100", nil)
			w := httptest.NewRecorder()
			bare.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusServiceUnavailable))
		})
	})
})
