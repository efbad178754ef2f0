package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"givebase.app/crm/internal/auth"
	"givebase.app/crm/internal/http/handler"
	"givebase.app/crm/internal/http/middleware"
	"givebase.app/crm/internal/model"
	"givebase.app/crm/internal/service"
)

type stubVerifier struct {
	claims *auth.Claims
}

func (s stubVerifier) Verify(token string) (*auth.Claims, error) {
	if token != "good" {
		return nil, auth.ErrInvalidToken
	}
	return s.claims, nil
}

func cookieNamed(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

var _ = Describe("AuthHandler", func() {
	var (
		router *gin.Engine
		svc    *mockAuthService
	)

	BeforeEach(func() {
		svc = &mockAuthService{
			getAuthorizationURLFn: func(state string) (string, error) {
				return "https://auth.example.test/authorize?state=" + state, nil
			},
		}
		h := handler.NewAuthHandler(svc, stubResolver{}, "https://dashboard.example.test/", "givebase.test", false)

		router = gin.New()
		router.GET("/auth/callback", h.Callback)
		tenant := router.Group("", middleware.Tenant(stubResolver{}, "givebase.test"))
		tenant.GET("/auth/login", h.Login)
		tenant.POST("/auth/logout", h.Logout)
		tenant.GET("/auth/me", middleware.RequireStaff(stubVerifier{claims: &auth.Claims{
			RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC))},
			OrganizationID:   42,
			StaffID:          5,
			Role:             model.RoleAdmin,
		}}), h.Me)
	})

	callback := func(query, stateCookie string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/auth/callback?"+query, nil)
		if stateCookie != "" {
			req.AddCookie(&http.Cookie{Name: "givebase_oauth_state", Value: stateCookie})
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	It("redirects to the identity provider with a tenant-bound state", func() {
		w := do(router, http.MethodGet, "/auth/login", "")
		Expect(w.Code).To(Equal(http.StatusTemporaryRedirect))

		state := cookieNamed(w, "givebase_oauth_state")
		Expect(state).NotTo(BeNil())
		Expect(state.Value).To(HaveSuffix(".helping-hands"))
		Expect(state.HttpOnly).To(BeTrue())
		Expect(w.Header().Get("Location")).To(ContainSubstring("state=" + state.Value))
	})

	It("signs the staff member in on a valid callback", func() {
		svc.handleCallbackFn = func(_ context.Context, orgID int64, code string) (*service.AuthResult, error) {
			Expect(orgID).To(Equal(int64(42)))
			Expect(code).To(Equal("abc"))
			return &service.AuthResult{
				Staff:     &model.StaffMember{ID: 5, OrganizationID: 42, Role: model.RoleEditor},
				Token:     "signed",
				ExpiresAt: time.Now().Add(time.Hour),
			}, nil
		}

		w := callback("code=abc&state=nonce.helping-hands", "nonce.helping-hands")
		Expect(w.Code).To(Equal(http.StatusTemporaryRedirect))
		Expect(w.Header().Get("Location")).To(Equal("https://dashboard.example.test/dashboard"))

		session := cookieNamed(w, middleware.SessionCookieName)
		Expect(session).NotTo(BeNil())
		Expect(session.Value).To(Equal("signed"))
		Expect(session.MaxAge).To(BeNumerically(">", 0))
	})

	It("rejects a state that does not match the cookie", func() {
		w := callback("code=abc&state=forged.helping-hands", "nonce.helping-hands")
		Expect(w.Code).To(Equal(http.StatusTemporaryRedirect))
		Expect(w.Header().Get("Location")).To(HaveSuffix("auth_error=invalid_state"))
	})

	It("rejects a callback without a state cookie", func() {
		w := callback("code=abc&state=nonce.helping-hands", "")
		Expect(w.Header().Get("Location")).To(HaveSuffix("auth_error=invalid_state"))
	})

	It("reports users who are not staff", func() {
		svc.handleCallbackFn = func(context.Context, int64, string) (*service.AuthResult, error) {
			return nil, service.ErrNotStaff
		}

		w := callback("code=abc&state=nonce.helping-hands", "nonce.helping-hands")
		Expect(w.Header().Get("Location")).To(HaveSuffix("auth_error=not_staff"))
		Expect(cookieNamed(w, middleware.SessionCookieName)).To(BeNil())
	})

	It("passes provider errors back to the dashboard", func() {
		w := callback("error=access_denied", "")
		Expect(w.Header().Get("Location")).To(HaveSuffix("auth_error=access_denied"))
	})

	It("describes the current session", func() {
		req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
		req.Host = "helping-hands.givebase.test"
		req.Header.Set("Authorization", "Bearer good")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
		resp := decode(w)
		Expect(resp["staff_id"]).To(Equal("5"))
		Expect(resp["role"]).To(Equal("admin"))
		Expect(strings.HasPrefix(resp["expires_at"].(string), "2030-01-01")).To(BeTrue())
	})

	It("clears the session on logout", func() {
		w := do(router, http.MethodPost, "/auth/logout", "")
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(cookieNamed(w, middleware.SessionCookieName).MaxAge).To(BeNumerically("<", 0))
	})
})
