package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"auditledger/internal/core/apperror"
	"auditledger/internal/core/tenant"
)

// TenantHeader is the HTTP header for tenant identification.
const TenantHeader = "X-Tenant-ID"

// Tenant middleware resolves the tenant from the request header and
// injects it into context. Must run before any store access.
func Tenant() gin.HandlerFunc {
	return func(c *gin.Context) {
		rawTenantID := c.GetHeader(TenantHeader)
		if rawTenantID == "" {
			_ = c.Error(
				apperror.NewValidation("tenant is required").
					WithDetail("header", TenantHeader),
			)
			c.Abort()
			return
		}

		tenantUUID, err := uuid.Parse(rawTenantID)
		if err != nil {
			_ = c.Error(
				apperror.NewValidation("invalid tenant id").
					WithDetail("header", TenantHeader).
					WithDetail("value", rawTenantID),
			)
			c.Abort()
			return
		}

		ctx := tenant.WithTenant(c.Request.Context(), tenantUUID.String())
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
