package service_test

import (
	"context"
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"basepost.app/server/internal/model"
	"basepost.app/server/internal/service"
	"basepost.app/server/internal/store"
)

var _ = Describe("IdentityService", func() {
	var (
		svc      service.IdentityService
		sessions *mockSessionStore
		users    *mockUserStore
		ctx      context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		sessions = &mockSessionStore{}
		users = &mockUserStore{}
		svc = service.NewIdentityService(sessions, users)
	})

	Describe("Resolve", func() {
		It("returns the user for a valid session token", func() {
			sessions.getValidByTokenFn = func(_ context.Context, token string) (*model.Session, error) {
				Expect(token).To(Equal("tok-abc"))
				return &model.Session{Token: "tok-abc", UserID: 200, ExpiresAt: time.Now().Add(time.Hour)}, nil
			}
			users.getByIDFn = func(_ context.Context, userID int64) (*model.User, error) {
				Expect(userID).To(Equal(int64(200)))
				return &model.User{ID: 200, Username: "jane_miller"}, nil
			}

			user, err := svc.Resolve(ctx, "tok-abc")

			Expect(err).NotTo(HaveOccurred())
			Expect(user.ID).To(Equal(int64(200)))
		})

		It("returns ErrInvalidSession for an empty token", func() {
			_, err := svc.Resolve(ctx, "")
			Expect(err).To(MatchError(service.ErrInvalidSession))
		})

		It("returns ErrInvalidSession for an unknown or expired token", func() {
			sessions.getValidByTokenFn = func(_ context.Context, _ string) (*model.Session, error) {
				return nil, store.ErrNotFound
			}

			_, err := svc.Resolve(ctx, "tok-gone")
			Expect(err).To(MatchError(service.ErrInvalidSession))
		})

		It("returns ErrInvalidSession when the session user is gone", func() {
			sessions.getValidByTokenFn = func(_ context.Context, _ string) (*model.Session, error) {
				return &model.Session{Token: "tok-abc", UserID: 200}, nil
			}
			users.getByIDFn = func(_ context.Context, _ int64) (*model.User, error) {
				return nil, store.ErrNotFound
			}

			_, err := svc.Resolve(ctx, "tok-abc")
			Expect(err).To(MatchError(service.ErrInvalidSession))
		})

		It("propagates unexpected store errors", func() {
			storeErr := errors.New("connection refused")
			sessions.getValidByTokenFn = func(_ context.Context, _ string) (*model.Session, error) {
				return nil, storeErr
			}

			_, err := svc.Resolve(ctx, "tok-abc")
			Expect(err).To(MatchError(storeErr))
			Expect(errors.Is(err, service.ErrInvalidSession)).To(BeFalse())
		})
	})
})
