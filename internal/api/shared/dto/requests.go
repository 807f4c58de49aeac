package dto

import (
	"fmt"
	"strings"

	apierrors "github.com/feral-file/ff-estate-ledger/internal/api/shared/errors"
	"github.com/feral-file/ff-estate-ledger/internal/domain"
	"github.com/feral-file/ff-estate-ledger/internal/settlement"
)

// MintRequest represents the request body for issuing tokens
type MintRequest struct {
	PropertyID    string `json:"property_id"`
	UserID        string `json:"user_id"`
	Tokens        int64  `json:"tokens"`
	Context       string `json:"context"`
	SettlementKey string `json:"settlement_key"`
	Note          string `json:"note"`
}

// Validate validates the request body
func (r *MintRequest) Validate() error {
	if strings.TrimSpace(r.PropertyID) == "" {
		return apierrors.NewValidationError("property_id is required")
	}
	if strings.TrimSpace(r.UserID) == "" {
		return apierrors.NewValidationError("user_id is required")
	}
	if r.Tokens <= 0 {
		return apierrors.NewValidationError("tokens must be positive")
	}
	if _, err := r.settlementContext(); err != nil {
		return apierrors.NewValidationError(err.Error())
	}
	return nil
}

// settlementContext returns the requested context, admin_mint when empty
func (r *MintRequest) settlementContext() (domain.SettlementContext, error) {
	if r.Context == "" {
		return domain.ContextAdminMint, nil
	}
	sc, err := domain.ParseSettlementContext(r.Context)
	if err != nil {
		return "", err
	}
	if sc == domain.ContextOrder || sc == domain.ContextTransfer {
		return "", fmt.Errorf("context %s has its own endpoint", sc)
	}
	return sc, nil
}

// ToSettlement converts the request to a settlement request
func (r *MintRequest) ToSettlement() settlement.MintRequest {
	sc, _ := r.settlementContext()
	return settlement.MintRequest{
		PropertyID:    r.PropertyID,
		UserID:        r.UserID,
		Tokens:        r.Tokens,
		Context:       sc,
		SettlementKey: r.SettlementKey,
		Note:          r.Note,
	}
}

// TransferRequest represents the request body for moving tokens between users
type TransferRequest struct {
	PropertyID    string `json:"property_id"`
	FromUserID    string `json:"from_user_id"`
	ToUserID      string `json:"to_user_id"`
	Tokens        int64  `json:"tokens"`
	SettlementKey string `json:"settlement_key"`
	Note          string `json:"note"`
}

// Validate validates the request body
func (r *TransferRequest) Validate() error {
	if strings.TrimSpace(r.PropertyID) == "" {
		return apierrors.NewValidationError("property_id is required")
	}
	if strings.TrimSpace(r.FromUserID) == "" || strings.TrimSpace(r.ToUserID) == "" {
		return apierrors.NewValidationError("from_user_id and to_user_id are required")
	}
	if r.FromUserID == r.ToUserID {
		return apierrors.NewValidationError("from_user_id and to_user_id must differ")
	}
	if r.Tokens <= 0 {
		return apierrors.NewValidationError("tokens must be positive")
	}
	return nil
}

// ToSettlement converts the request to a settlement request
func (r *TransferRequest) ToSettlement() settlement.TransferRequest {
	return settlement.TransferRequest{
		PropertyID:    r.PropertyID,
		FromUserID:    r.FromUserID,
		ToUserID:      r.ToUserID,
		Tokens:        r.Tokens,
		SettlementKey: r.SettlementKey,
		Note:          r.Note,
	}
}

// SettleOrderRequest represents the optional request body for settling an order
type SettleOrderRequest struct {
	Note string `json:"note"`
}
