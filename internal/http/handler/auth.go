package handler

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"givebase.app/crm/internal/http/dto"
	"givebase.app/crm/internal/http/middleware"
	"givebase.app/crm/internal/model"
	"givebase.app/crm/internal/service"
)

const (
	stateCookieName = "givebase_oauth_state"
	stateMaxAge     = 600
)

type OrganizationResolver interface {
	Resolve(ctx context.Context, slug string) (*model.Organization, error)
}

type AuthHandler struct {
	authService  service.AuthService
	orgs         OrganizationResolver
	dashboardURL string
	cookieDomain string
	isProduction bool
}

func NewAuthHandler(
	authService service.AuthService,
	orgs OrganizationResolver,
	dashboardURL string,
	cookieDomain string,
	isProduction bool,
) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		orgs:         orgs,
		dashboardURL: strings.TrimSuffix(dashboardURL, "/"),
		cookieDomain: cookieDomain,
		isProduction: isProduction,
	}
}

// Login starts a WorkOS sign-in for the tenant addressed by the request. The
// tenant slug travels in the OAuth state because the callback lands on the
// shared redirect URI.
func (h *AuthHandler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	nonce, err := generateNonce()
	if err != nil {
		slog.ErrorContext(ctx, "failed to generate state", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to initiate login"})
		return
	}
	state := nonce + "." + middleware.CurrentOrganization(c).Slug

	authURL, err := h.authService.GetAuthorizationURL(state)
	if err != nil {
		slog.ErrorContext(ctx, "failed to get authorization URL", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to initiate login"})
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(stateCookieName, state, stateMaxAge, "/", h.cookieDomain, h.isProduction, true)
	c.Redirect(http.StatusTemporaryRedirect, authURL)
}

func (h *AuthHandler) Callback(c *gin.Context) {
	ctx := c.Request.Context()

	if errorParam := c.Query("error"); errorParam != "" {
		slog.WarnContext(ctx, "OAuth error", "error", errorParam, "description", c.Query("error_description"))
		h.redirectError(c, errorParam)
		return
	}

	state := c.Query("state")
	storedState, err := c.Cookie(stateCookieName)
	if err != nil || state == "" || state != storedState {
		slog.WarnContext(ctx, "state mismatch")
		h.redirectError(c, "invalid_state")
		return
	}
	h.clearCookie(c, stateCookieName)

	code := c.Query("code")
	if code == "" {
		h.redirectError(c, "no_code")
		return
	}

	_, slug, ok := strings.Cut(state, ".")
	if !ok {
		h.redirectError(c, "invalid_state")
		return
	}
	org, err := h.orgs.Resolve(ctx, slug)
	if err != nil {
		slog.WarnContext(ctx, "callback for unknown organization", "slug", slug, "error", err)
		h.redirectError(c, "unknown_organization")
		return
	}

	result, err := h.authService.HandleCallback(ctx, org.ID, code)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCode):
			h.redirectError(c, "invalid_code")
		case errors.Is(err, service.ErrNotStaff):
			h.redirectError(c, "not_staff")
		default:
			slog.ErrorContext(ctx, "failed to handle callback", "error", err)
			h.redirectError(c, "callback_failed")
		}
		return
	}

	maxAge := int(time.Until(result.ExpiresAt).Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookieName, result.Token, maxAge, "/", h.cookieDomain, h.isProduction, true)

	slog.InfoContext(ctx, "staff logged in", "organization_id", org.ID, "staff_id", result.Staff.ID)
	c.Redirect(http.StatusTemporaryRedirect, h.dashboardURL+"/dashboard")
}

func (h *AuthHandler) Logout(c *gin.Context) {
	h.clearCookie(c, middleware.SessionCookieName)
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

func (h *AuthHandler) Me(c *gin.Context) {
	claims := middleware.CurrentStaff(c)
	resp := dto.SessionResponse{
		StaffID:        claims.StaffID,
		OrganizationID: claims.OrganizationID,
		Role:           claims.Role,
	}
	if claims.ExpiresAt != nil {
		resp.ExpiresAt = claims.ExpiresAt.Time
	}
	c.JSON(http.StatusOK, resp)
}

func (h *AuthHandler) redirectError(c *gin.Context, code string) {
	c.Redirect(http.StatusTemporaryRedirect, h.dashboardURL+"?auth_error="+url.QueryEscape(code))
}

func (h *AuthHandler) clearCookie(c *gin.Context, name string) {
	c.SetCookie(name, "", -1, "/", h.cookieDomain, h.isProduction, true)
}

func generateNonce() (string, error) {
	b := make([]byte, 24)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
