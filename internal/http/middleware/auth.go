package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"givebase.app/crm/common/logger"
	"givebase.app/crm/internal/auth"
	"givebase.app/crm/internal/model"
)

// SessionCookieName holds the staff session token set by the auth callback.
const SessionCookieName = "givebase_session"

const claimsKey = "givebase.claims"

type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

// RequireStaff authenticates a staff session from the Authorization bearer
// token or the session cookie. It must run after Tenant; a token issued for
// another organization is rejected.
func RequireStaff(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			token, _ = c.Cookie(SessionCookieName)
		}
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
			return
		}

		claims, err := verifier.Verify(token)
		if err != nil {
			if errors.Is(err, auth.ErrTokenExpired) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "session expired"})
				return
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid session"})
			return
		}

		org := CurrentOrganization(c)
		if org == nil || org.ID != claims.OrganizationID {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "not a staff member of this organization"})
			return
		}

		c.Set(claimsKey, claims)
		c.Request = c.Request.WithContext(logger.WithLogFields(c.Request.Context(), logger.LogFields{StaffID: &claims.StaffID}))
		c.Next()
	}
}

// RequireRole rejects staff whose role ranks below min. It must run after RequireStaff.
func RequireRole(min model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := CurrentStaff(c)
		if claims == nil || !claims.Role.AtLeast(min) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient role"})
			return
		}
		c.Next()
	}
}

// CurrentStaff returns the claims set by RequireStaff, or nil.
func CurrentStaff(c *gin.Context) *auth.Claims {
	v, _ := c.Get(claimsKey)
	claims, _ := v.(*auth.Claims)
	return claims
}

func bearerToken(header string) string {
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
