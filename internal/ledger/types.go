package ledger

import (
	"fmt"
	"time"
)

// TxRef is the opaque transaction id returned by a committed submission
type TxRef string

// String returns the reference as a plain string
func (r TxRef) String() string {
	return string(r)
}

// Ptr returns a pointer to the reference, nil when empty
func (r TxRef) Ptr() *string {
	if r == "" {
		return nil
	}
	s := string(r)
	return &s
}

// AdoptedRef stands in for the InitProperty transaction of a property found on the ledger
// without a mirror reference
func AdoptedRef(propertyID string) TxRef {
	return TxRef("adopted:" + propertyID)
}

// Contract function names
const (
	FnInitProperty      = "InitProperty"
	FnMintTokens        = "MintTokens"
	FnTransferTokens    = "TransferTokens"
	FnGetBalance        = "GetBalance"
	FnGetHoldings       = "GetHoldings"
	FnGetProperty       = "GetProperty"
	FnGetHoldingHistory = "GetHoldingHistory"
)

// Property is the ledger supply record of a property
type Property struct {
	ID              string `json:"id"`
	TotalTokens     int64  `json:"totalTokens"`
	RemainingTokens int64  `json:"remainingTokens"`
}

// IssuedTokens returns the number of tokens already minted
func (p Property) IssuedTokens() int64 {
	return p.TotalTokens - p.RemainingTokens
}

func (p Property) validate() error {
	if p.ID == "" {
		return fmt.Errorf("property without id")
	}
	if p.TotalTokens <= 0 {
		return fmt.Errorf("property %s has non-positive total %d", p.ID, p.TotalTokens)
	}
	if p.RemainingTokens < 0 || p.RemainingTokens > p.TotalTokens {
		return fmt.Errorf("property %s has remaining %d outside [0, %d]", p.ID, p.RemainingTokens, p.TotalTokens)
	}
	return nil
}

// Holding is a user's ledger balance of one property
type Holding struct {
	UserID     string `json:"userId"`
	PropertyID string `json:"propertyId"`
	Tokens     int64  `json:"tokens"`
}

func (h Holding) validate() error {
	if h.UserID == "" || h.PropertyID == "" {
		return fmt.Errorf("holding without user or property id")
	}
	if h.Tokens < 0 {
		return fmt.Errorf("holding %s/%s has negative tokens %d", h.UserID, h.PropertyID, h.Tokens)
	}
	return nil
}

// HistoryEntry is one committed version of a holding
type HistoryEntry struct {
	TxRef     TxRef
	Timestamp time.Time
	Tokens    int64
	Deleted   bool
}

// historyEntryPayload is the wire shape of a history entry
type historyEntryPayload struct {
	TxID      string `json:"txId"`
	Timestamp int64  `json:"timestamp"`
	Tokens    int64  `json:"tokens"`
	Deleted   bool   `json:"deleted"`
}

func (p historyEntryPayload) toEntry() (HistoryEntry, error) {
	if p.TxID == "" {
		return HistoryEntry{}, fmt.Errorf("history entry without transaction id")
	}
	if p.Tokens < 0 {
		return HistoryEntry{}, fmt.Errorf("history entry %s has negative tokens %d", p.TxID, p.Tokens)
	}
	return HistoryEntry{
		TxRef:     TxRef(p.TxID),
		Timestamp: time.Unix(p.Timestamp, 0).UTC(),
		Tokens:    p.Tokens,
		Deleted:   p.Deleted,
	}, nil
}
