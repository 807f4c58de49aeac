package contract

import (
	"fmt"
	"strings"
)

const (
	propertyKeyPrefix = "prop:"
	holdingKeyPrefix  = "hold:"
	settledKeyPrefix  = "settled:"
	keyDelimiter      = ":"
	// keyDelimiterSuccessor is the byte right after ':' and closes a per-user range scan
	keyDelimiterSuccessor = ";"
)

// Operations guarded by a settlement marker
const (
	OpMint     = "mint"
	OpTransfer = "transfer"
)

// Event names emitted by the contract
const (
	EventTokenMinted      = "TokenMinted"
	EventTokenTransferred = "TokenTransferred"
)

// Error codes prefixed to every rejection so that callers can classify them after they cross the wire
const (
	CodeInvalidArgument     = "INVALID_ARGUMENT"
	CodeInvalidAmount       = "INVALID_AMOUNT"
	CodeNotFound            = "NOT_FOUND"
	CodeAlreadyExists       = "ALREADY_EXISTS"
	CodeInsufficientSupply  = "INSUFFICIENT_SUPPLY"
	CodeInsufficientBalance = "INSUFFICIENT_BALANCE"
)

// Property is the on-ledger supply record of a property
type Property struct {
	ID              string `json:"id"`
	TotalTokens     int64  `json:"totalTokens"`
	RemainingTokens int64  `json:"remainingTokens"`
}

// Holding is the on-ledger token balance of a user for one property
type Holding struct {
	UserID     string `json:"userId"`
	PropertyID string `json:"propertyId"`
	Tokens     int64  `json:"tokens"`
}

// HoldingHistoryEntry is one committed version of a holding key
type HoldingHistoryEntry struct {
	TxID      string `json:"txId"`
	Timestamp int64  `json:"timestamp"`
	Tokens    int64  `json:"tokens"`
	Deleted   bool   `json:"deleted"`
}

// Settlement marks a settlement key as applied so a resubmission of it changes nothing
type Settlement struct {
	Key        string `json:"key"`
	Op         string `json:"op"`
	PropertyID string `json:"propertyId"`
	Tokens     int64  `json:"tokens"`
	TxID       string `json:"txId"`
}

// TokenMinted is the payload of the TokenMinted event
type TokenMinted struct {
	PropertyID string `json:"propertyId"`
	UserID     string `json:"userId"`
	Tokens     int64  `json:"tokens"`
}

// TokenTransferred is the payload of the TokenTransferred event
type TokenTransferred struct {
	PropertyID string `json:"propertyId"`
	FromUserID string `json:"fromUserId"`
	ToUserID   string `json:"toUserId"`
	Tokens     int64  `json:"tokens"`
}

// Error is a contract rejection carrying a stable code
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return e.Code + ": " + e.Message
}

func newError(code string, format string, args ...interface{}) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// PropertyKey returns the state key of a property
func PropertyKey(propertyID string) string {
	return propertyKeyPrefix + propertyID
}

// HoldingKey returns the state key of a holding
func HoldingKey(userID, propertyID string) string {
	return holdingKeyPrefix + userID + keyDelimiter + propertyID
}

// SettlementKey returns the state key of the marker of an applied settlement
func SettlementKey(op, key string) string {
	return settledKeyPrefix + op + keyDelimiter + key
}

// HoldingRange returns the half-open key range covering every holding of userID.
// The end key uses the delimiter's successor so that a user whose id extends userID is never matched.
func HoldingRange(userID string) (string, string) {
	prefix := holdingKeyPrefix + userID
	return prefix + keyDelimiter, prefix + keyDelimiterSuccessor
}

func validateID(field, id string) error {
	if strings.TrimSpace(id) == "" {
		return newError(CodeInvalidArgument, "%s is required", field)
	}
	if strings.Contains(id, keyDelimiter) {
		return newError(CodeInvalidArgument, "%s must not contain %q", field, keyDelimiter)
	}
	return nil
}
