package domain

import "errors"

var (
	// ErrInvalidInput is returned when an amount is non-positive or a required identifier is missing
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound is returned when a property, holding, order or user does not exist
	ErrNotFound = errors.New("not found")

	// ErrInsufficientSupply is returned when a mint asks for more tokens than remain unissued
	ErrInsufficientSupply = errors.New("insufficient supply")

	// ErrInsufficientBalance is returned when a transfer exceeds the sender's holding
	// or an order exceeds the buyer's cash balance
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrAlreadyExists is returned when a property is initialized twice on the ledger
	ErrAlreadyExists = errors.New("already exists")

	// ErrLedgerDisabled is returned when the ledger integration is switched off by configuration
	ErrLedgerDisabled = errors.New("ledger disabled")

	// ErrLedgerUnavailable is returned for dial, network or configuration failures against the ledger
	ErrLedgerUnavailable = errors.New("ledger unavailable")

	// ErrLedgerRejected wraps business rejections raised by the ledger contract
	ErrLedgerRejected = errors.New("ledger rejected")

	// ErrConflict is returned when a settlement was already applied or is being applied concurrently
	ErrConflict = errors.New("conflict")
)

// IsLedgerFailure reports whether err describes the ledger being unreachable or switched off,
// as opposed to a business rejection
func IsLedgerFailure(err error) bool {
	return errors.Is(err, ErrLedgerDisabled) || errors.Is(err, ErrLedgerUnavailable)
}
