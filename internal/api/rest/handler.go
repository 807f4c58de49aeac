package rest

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-estate-ledger/internal/api/shared/dto"
	"github.com/feral-file/ff-estate-ledger/internal/reconcile"
	"github.com/feral-file/ff-estate-ledger/internal/settlement"
)

// Handler defines the interface for REST API handlers
type Handler interface {
	// SettleMint issues tokens outside of an order
	// POST /api/v1/settlements/mint
	SettleMint(c *gin.Context)

	// SettleTransfer moves tokens between users
	// POST /api/v1/settlements/transfer
	SettleTransfer(c *gin.Context)

	// SettleOrder settles a pending purchase order
	// POST /api/v1/orders/:id/settle
	SettleOrder(c *gin.Context)

	// RegisterProperty creates an approved property's supply record on the ledger
	// POST /api/v1/properties/:id/ledger
	RegisterProperty(c *gin.Context)

	// ListSupply lists approved properties with their supply
	// GET /api/v1/supply
	ListSupply(c *gin.Context)

	// ListHoldings lists a user's holdings
	// GET /api/v1/users/:id/holdings
	ListHoldings(c *gin.Context)

	// ListCertificates lists a user's certificates
	// GET /api/v1/users/:id/certificates
	ListCertificates(c *gin.Context)

	// ListAuditTrail lists a user's token movements
	// GET /api/v1/users/:id/audit?property_id=<property_id>
	ListAuditTrail(c *gin.Context)

	// GetCounters returns platform totals
	// GET /api/v1/counters
	GetCounters(c *gin.Context)

	// VerifySync reports which mirror records carry a ledger reference
	// GET /api/v1/sync/verify
	VerifySync(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	orchestrator settlement.Orchestrator
	reconciler   reconcile.Service
}

// NewHandler creates a new REST API handler
func NewHandler(orchestrator settlement.Orchestrator, reconciler reconcile.Service) Handler {
	return &handler{
		orchestrator: orchestrator,
		reconciler:   reconciler,
	}
}

func (h *handler) SettleMint(c *gin.Context) {
	var req dto.MintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	result, err := h.orchestrator.SettleMint(c.Request.Context(), req.ToSettlement())
	if err != nil {
		respondError(c, err, "Failed to settle mint")
		return
	}

	c.JSON(http.StatusCreated, result)
}

func (h *handler) SettleTransfer(c *gin.Context) {
	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	result, err := h.orchestrator.SettleTransfer(c.Request.Context(), req.ToSettlement())
	if err != nil {
		respondError(c, err, "Failed to settle transfer")
		return
	}

	c.JSON(http.StatusCreated, result)
}

func (h *handler) SettleOrder(c *gin.Context) {
	orderID := c.Param("id")
	if orderID == "" {
		respondBadRequest(c, "Order ID is required")
		return
	}

	// The body is optional
	var req dto.SettleOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	result, err := h.orchestrator.SettleOrder(c.Request.Context(), settlement.OrderRequest{
		OrderID: orderID,
		Note:    req.Note,
	})
	if err != nil {
		respondError(c, err, "Failed to settle order")
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *handler) RegisterProperty(c *gin.Context) {
	propertyID := c.Param("id")
	if propertyID == "" {
		respondBadRequest(c, "Property ID is required")
		return
	}

	result, err := h.orchestrator.RegisterProperty(c.Request.Context(), propertyID)
	if err != nil {
		respondError(c, err, "Failed to register property")
		return
	}

	c.JSON(http.StatusCreated, result)
}

func (h *handler) ListSupply(c *gin.Context) {
	view, err := h.reconciler.ListSupply(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list supply")
		return
	}

	c.JSON(http.StatusOK, view)
}

func (h *handler) ListHoldings(c *gin.Context) {
	view, err := h.reconciler.ListHoldings(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to list holdings")
		return
	}

	c.JSON(http.StatusOK, view)
}

func (h *handler) ListCertificates(c *gin.Context) {
	view, err := h.reconciler.ListCertificates(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to list certificates")
		return
	}

	c.JSON(http.StatusOK, view)
}

func (h *handler) ListAuditTrail(c *gin.Context) {
	queryParams, err := ParseAuditTrailQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	view, err := h.reconciler.ListAuditTrail(c.Request.Context(), c.Param("id"), queryParams.PropertyID)
	if err != nil {
		respondError(c, err, "Failed to list audit trail")
		return
	}

	c.JSON(http.StatusOK, view)
}

func (h *handler) GetCounters(c *gin.Context) {
	view, err := h.reconciler.GetCounters(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to get counters")
		return
	}

	c.JSON(http.StatusOK, view)
}

func (h *handler) VerifySync(c *gin.Context) {
	report, err := h.reconciler.VerifySync(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to verify sync")
		return
	}

	c.JSON(http.StatusOK, report)
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "estate-ledger-api",
	})
}
