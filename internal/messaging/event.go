package messaging

import (
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/feral-file/ff-estate-ledger/internal/domain"
)

// SubjectPrefix is the subject namespace of settlement events
const SubjectPrefix = "settlements"

// SettlementEvent describes a settlement committed to the mirror
type SettlementEvent struct {
	EventID        string           `json:"event_id"`
	Kind           domain.AuditKind `json:"kind"`
	SettlementKey  string           `json:"settlement_key"`
	AuditRecordID  string           `json:"audit_record_id"`
	PropertyID     string           `json:"property_id"`
	UserID         string           `json:"user_id"`
	CounterpartyID *string          `json:"counterparty_id,omitempty"`
	Tokens         int64            `json:"tokens"`
	LedgerTxRef    *string          `json:"ledger_tx_ref,omitempty"`
	Outcome        domain.Outcome   `json:"outcome"`
	OccurredAt     time.Time        `json:"occurred_at"`
}

// NewSettlementEvent creates an event with a fresh ULID
func NewSettlementEvent(kind domain.AuditKind, occurredAt time.Time) *SettlementEvent {
	return &SettlementEvent{
		EventID:    ulid.Make().String(),
		Kind:       kind,
		OccurredAt: occurredAt.UTC(),
	}
}

// Subject returns the subject the event is published on, e.g. settlements.mint
func (e *SettlementEvent) Subject() string {
	return fmt.Sprintf("%s.%s", SubjectPrefix, e.Kind)
}
