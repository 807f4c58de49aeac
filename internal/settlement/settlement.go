package settlement

import (
	"context"
	"fmt"
	"strings"

	"github.com/feral-file/ff-estate-ledger/internal/domain"
	"github.com/feral-file/ff-estate-ledger/internal/store/schema"
)

// Orchestrator executes business settlements against the ledger and the mirror
//
//go:generate mockgen -source=settlement.go -destination=../mocks/settlement.go -package=mocks -mock_names=Orchestrator=MockOrchestrator
type Orchestrator interface {
	// SettleMint issues tokens of a property to a user
	SettleMint(ctx context.Context, req MintRequest) (*Result, error)

	// SettleOrder settles a pending purchase order: cash debit, mint and certificate
	SettleOrder(ctx context.Context, req OrderRequest) (*OrderResult, error)

	// SettleTransfer moves tokens of a property between users
	SettleTransfer(ctx context.Context, req TransferRequest) (*Result, error)

	// RegisterProperty creates an approved property's supply record on the ledger
	RegisterProperty(ctx context.Context, propertyID string) (*RegistrationResult, error)
}

// MintRequest is a request to issue tokens
type MintRequest struct {
	PropertyID string
	UserID     string
	Tokens     int64
	Context    domain.SettlementContext
	// SettlementKey identifies the business event; a random key is used when empty
	SettlementKey string
	Note          string
}

func (r MintRequest) validate() error {
	if strings.TrimSpace(r.PropertyID) == "" || strings.TrimSpace(r.UserID) == "" {
		return fmt.Errorf("%w: property id and user id are required", domain.ErrInvalidInput)
	}
	if r.Tokens <= 0 {
		return fmt.Errorf("%w: tokens must be positive, got %d", domain.ErrInvalidInput, r.Tokens)
	}
	if r.Context == domain.ContextOrder || r.Context == domain.ContextTransfer || !r.Context.Valid() {
		return fmt.Errorf("%w: %q is not a mint context", domain.ErrInvalidInput, r.Context)
	}
	return nil
}

// OrderRequest is a request to settle a purchase order
type OrderRequest struct {
	OrderID string
	Note    string
}

// TransferRequest is a request to move tokens between users
type TransferRequest struct {
	PropertyID    string
	FromUserID    string
	ToUserID      string
	Tokens        int64
	SettlementKey string
	Note          string
}

func (r TransferRequest) validate() error {
	if strings.TrimSpace(r.PropertyID) == "" || strings.TrimSpace(r.FromUserID) == "" || strings.TrimSpace(r.ToUserID) == "" {
		return fmt.Errorf("%w: property id, sender and receiver are required", domain.ErrInvalidInput)
	}
	if r.FromUserID == r.ToUserID {
		return fmt.Errorf("%w: sender and receiver are the same user", domain.ErrInvalidInput)
	}
	if r.Tokens <= 0 {
		return fmt.Errorf("%w: tokens must be positive, got %d", domain.ErrInvalidInput, r.Tokens)
	}
	return nil
}

// Result is the outcome of a settlement
type Result struct {
	AuditRecordID string                `json:"audit_record_id"`
	SettlementKey string                `json:"settlement_key"`
	Tokens        int64                 `json:"tokens"`
	LedgerTxRef   *string               `json:"ledger_tx_ref"`
	Outcome       domain.Outcome        `json:"outcome"`
	Unsynced      bool                  `json:"unsynced"`
	Reason        domain.UnsyncedReason `json:"reason,omitempty"`
}

func newResult(record *schema.AuditRecord, reason domain.UnsyncedReason) *Result {
	result := &Result{
		AuditRecordID: record.ID,
		SettlementKey: record.SettlementKey,
		Tokens:        record.Amount,
		LedgerTxRef:   record.LedgerTxRef,
		Outcome:       domain.OutcomeSynced,
	}
	if record.LedgerTxRef == nil {
		result.Outcome = domain.OutcomeMirrorOnly
		result.Unsynced = true
		result.Reason = reason
	}
	return result
}

// OrderResult is the outcome of an order settlement
type OrderResult struct {
	Result
	OrderID            string `json:"order_id"`
	AmountCents        int64  `json:"amount_cents"`
	WithdrawalRecordID string `json:"withdrawal_record_id"`
	CertificateID      string `json:"certificate_id"`
	CertificateSerial  string `json:"certificate_serial"`
}

// RegistrationResult is the outcome of a property registration
type RegistrationResult struct {
	PropertyID  string `json:"property_id"`
	TotalTokens int64  `json:"total_tokens"`
	LedgerTxRef string `json:"ledger_tx_ref"`
	// Adopted is set when the ledger already held the property and only the mirror was stamped
	Adopted bool `json:"adopted,omitempty"`
}
