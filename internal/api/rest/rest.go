package rest

import (
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler) {
	// Health check endpoint (no version prefix)
	router.GET("/health", handler.HealthCheck)

	v1 := router.Group("/api/v1")
	{
		// Settlements
		v1.POST("/settlements/mint", handler.SettleMint)
		v1.POST("/settlements/transfer", handler.SettleTransfer)
		v1.POST("/orders/:id/settle", handler.SettleOrder)
		v1.POST("/properties/:id/ledger", handler.RegisterProperty)

		// Reads, ledger first with mirror fallback
		v1.GET("/supply", handler.ListSupply)
		v1.GET("/users/:id/holdings", handler.ListHoldings)
		v1.GET("/users/:id/certificates", handler.ListCertificates)
		v1.GET("/users/:id/audit", handler.ListAuditTrail)
		v1.GET("/counters", handler.GetCounters)

		// Mirror-only verification
		v1.GET("/sync/verify", handler.VerifySync)
	}
}
