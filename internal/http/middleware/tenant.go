package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"givebase.app/crm/common"
	"givebase.app/crm/common/logger"
	"givebase.app/crm/internal/model"
	"givebase.app/crm/internal/service"
)

// OrganizationSlugHeader addresses a tenant when the request host carries no subdomain.
const OrganizationSlugHeader = "X-Organization-Slug"

const organizationKey = "givebase.organization"

type OrganizationResolver interface {
	Resolve(ctx context.Context, slug string) (*model.Organization, error)
}

// Tenant resolves the organization from the request host, e.g.
// hope-shelter.<baseDomain>, falling back to OrganizationSlugHeader.
func Tenant(resolver OrganizationResolver, baseDomain string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		slug, ok := common.SubdomainSlug(c.Request.Host, baseDomain)
		if !ok {
			slug = c.GetHeader(OrganizationSlugHeader)
		}
		if slug == "" {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "organization not found"})
			return
		}

		org, err := resolver.Resolve(ctx, slug)
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "organization not found"})
				return
			}
			slog.ErrorContext(ctx, "failed to resolve organization", "error", err, "slug", slug)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "failed to resolve organization"})
			return
		}

		c.Set(organizationKey, org)
		c.Request = c.Request.WithContext(logger.WithLogFields(ctx, logger.LogFields{OrganizationID: &org.ID}))
		c.Next()
	}
}

// CurrentOrganization returns the tenant resolved by Tenant, or nil.
func CurrentOrganization(c *gin.Context) *model.Organization {
	org, _ := c.Get(organizationKey)
	o, _ := org.(*model.Organization)
	return o
}
