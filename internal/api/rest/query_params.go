package rest

import (
	"github.com/gin-gonic/gin"
)

// AuditTrailQueryParams holds query parameters for GET /users/:id/audit
type AuditTrailQueryParams struct {
	PropertyID string `form:"property_id"`
}

// ParseAuditTrailQuery parses query parameters for the audit trail endpoint
func ParseAuditTrailQuery(c *gin.Context) (*AuditTrailQueryParams, error) {
	var params AuditTrailQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}
	return &params, nil
}
