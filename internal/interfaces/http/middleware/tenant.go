package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ledgerhub/backend/internal/interfaces/http/dto"
)

const (
	// TenantHeader is the HTTP header carrying the tenant identifier
	TenantHeader = "X-Tenant-ID"
	// TenantContextKey is the gin context key the tenant ID is stored under
	TenantContextKey = "tenant_id"
)

// Tenant extracts the tenant ID from the request header, validates it and
// stores it in the context. Requests without a valid tenant are rejected.
// Paths in skipPaths bypass the check entirely.
func Tenant(skipPaths ...string) gin.HandlerFunc {
	skip := make(map[string]bool, len(skipPaths))
	for _, p := range skipPaths {
		skip[p] = true
	}

	return func(c *gin.Context) {
		if skip[c.Request.URL.Path] {
			c.Next()
			return
		}

		raw := c.GetHeader(TenantHeader)
		if raw == "" {
			c.AbortWithStatusJSON(http.StatusBadRequest,
				dto.NewErrorResponse(dto.ErrCodeBadRequest, "Missing "+TenantHeader+" header"))
			return
		}

		tenantID, err := uuid.Parse(raw)
		if err != nil || tenantID == uuid.Nil {
			c.AbortWithStatusJSON(http.StatusBadRequest,
				dto.NewErrorResponse(dto.ErrCodeBadRequest, "Invalid "+TenantHeader+" header"))
			return
		}

		c.Set(TenantContextKey, tenantID)
		c.Next()
	}
}

// GetTenantUUID returns the tenant ID stored by the Tenant middleware
func GetTenantUUID(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(TenantContextKey)
	if !exists {
		return uuid.Nil, false
	}
	tenantID, ok := value.(uuid.UUID)
	return tenantID, ok
}
