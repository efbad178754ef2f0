package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"givebase.app/crm/internal/auth"
	"givebase.app/crm/internal/http/middleware"
	"givebase.app/crm/internal/model"
	"givebase.app/crm/internal/service"
)

type resolverFunc func(ctx context.Context, slug string) (*model.Organization, error)

func (f resolverFunc) Resolve(ctx context.Context, slug string) (*model.Organization, error) {
	return f(ctx, slug)
}

type verifierFunc func(token string) (*auth.Claims, error)

func (f verifierFunc) Verify(token string) (*auth.Claims, error) { return f(token) }

var _ = Describe("middleware", func() {
	var (
		router   *gin.Engine
		resolved []string
		claims   *auth.Claims
	)

	resolver := resolverFunc(func(_ context.Context, slug string) (*model.Organization, error) {
		resolved = append(resolved, slug)
		switch slug {
		case "helping-hands":
			return &model.Organization{ID: 42, Slug: slug}, nil
		case "broken":
			return nil, errors.New("db down")
		}
		return nil, service.ErrOrganizationNotFound
	})

	verifier := verifierFunc(func(token string) (*auth.Claims, error) {
		switch token {
		case "good":
			return claims, nil
		case "stale":
			return nil, auth.ErrTokenExpired
		}
		return nil, auth.ErrInvalidToken
	})

	BeforeEach(func() {
		resolved = nil
		claims = &auth.Claims{OrganizationID: 42, StaffID: 5, Role: model.RoleEditor}

		router = gin.New()
		router.Use(middleware.Recovery())
		tenant := router.Group("", middleware.Tenant(resolver, "givebase.test"))
		tenant.GET("/whoami", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"org": middleware.CurrentOrganization(c).ID})
		})
		staff := tenant.Group("/api", middleware.RequireStaff(verifier))
		staff.GET("/me", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"staff": middleware.CurrentStaff(c).StaffID})
		})
		staff.POST("/admin", middleware.RequireRole(model.RoleAdmin), func(c *gin.Context) {
			c.Status(http.StatusNoContent)
		})
		staff.POST("/edit", middleware.RequireRole(model.RoleEditor), func(c *gin.Context) {
			c.Status(http.StatusNoContent)
		})
		router.GET("/panic", func(*gin.Context) { panic("boom") })
	})

	request := func(method, host, path string, mutate ...func(*http.Request)) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, nil)
		req.Host = host
		for _, m := range mutate {
			m(req)
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	bearer := func(token string) func(*http.Request) {
		return func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+token) }
	}

	Describe("Tenant", func() {
		It("resolves the organization from the subdomain", func() {
			w := request(http.MethodGet, "Helping-Hands.givebase.test:8080", "/whoami")
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(MatchJSON(`{"org":42}`))
			Expect(resolved).To(Equal([]string{"helping-hands"}))
		})

		It("falls back to the slug header on the bare domain", func() {
			w := request(http.MethodGet, "givebase.test", "/whoami", func(r *http.Request) {
				r.Header.Set(middleware.OrganizationSlugHeader, "helping-hands")
			})
			Expect(w.Code).To(Equal(http.StatusOK))
		})

		It("returns 404 without a tenant", func() {
			w := request(http.MethodGet, "givebase.test", "/whoami")
			Expect(w.Code).To(Equal(http.StatusNotFound))
			Expect(resolved).To(BeEmpty())
		})

		It("returns 404 for an unknown tenant", func() {
			w := request(http.MethodGet, "nobody.givebase.test", "/whoami")
			Expect(w.Code).To(Equal(http.StatusNotFound))
		})

		It("returns 500 when resolution fails", func() {
			w := request(http.MethodGet, "broken.givebase.test", "/whoami")
			Expect(w.Code).To(Equal(http.StatusInternalServerError))
		})
	})

	Describe("RequireStaff", func() {
		const host = "helping-hands.givebase.test"

		It("accepts a bearer token", func() {
			w := request(http.MethodGet, host, "/api/me", bearer("good"))
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(MatchJSON(`{"staff":5}`))
		})

		It("accepts the session cookie", func() {
			w := request(http.MethodGet, host, "/api/me", func(r *http.Request) {
				r.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: "good"})
			})
			Expect(w.Code).To(Equal(http.StatusOK))
		})

		It("rejects a missing token", func() {
			w := request(http.MethodGet, host, "/api/me")
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
		})

		It("distinguishes an expired session", func() {
			w := request(http.MethodGet, host, "/api/me", bearer("stale"))
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
			Expect(w.Body.String()).To(ContainSubstring("session expired"))
		})

		It("rejects a forged token", func() {
			w := request(http.MethodGet, host, "/api/me", bearer("forged"))
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
		})

		It("rejects a session issued for another organization", func() {
			claims.OrganizationID = 7
			w := request(http.MethodGet, host, "/api/me", bearer("good"))
			Expect(w.Code).To(Equal(http.StatusForbidden))
		})
	})

	Describe("RequireRole", func() {
		const host = "helping-hands.givebase.test"

		It("allows a sufficient role", func() {
			w := request(http.MethodPost, host, "/api/edit", bearer("good"))
			Expect(w.Code).To(Equal(http.StatusNoContent))
		})

		It("rejects a lower role", func() {
			w := request(http.MethodPost, host, "/api/admin", bearer("good"))
			Expect(w.Code).To(Equal(http.StatusForbidden))
		})

		It("lets an owner through admin routes", func() {
			claims.Role = model.RoleOwner
			w := request(http.MethodPost, host, "/api/admin", bearer("good"))
			Expect(w.Code).To(Equal(http.StatusNoContent))
		})
	})

	It("recovers from panics", func() {
		w := request(http.MethodGet, "example.test", "/panic")
		Expect(w.Code).To(Equal(http.StatusInternalServerError))
		Expect(w.Body.String()).To(MatchJSON(`{"error":"internal server error"}`))
	})
})
