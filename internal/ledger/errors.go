package ledger

import (
	"fmt"
	"strings"

	"github.com/feral-file/ff-estate-ledger/internal/contract"
	"github.com/feral-file/ff-estate-ledger/internal/domain"
)

// rejectionKinds maps contract error codes to the domain taxonomy
var rejectionKinds = []struct {
	code string
	err  error
}{
	{contract.CodeInsufficientSupply, domain.ErrInsufficientSupply},
	{contract.CodeInsufficientBalance, domain.ErrInsufficientBalance},
	{contract.CodeAlreadyExists, domain.ErrAlreadyExists},
	{contract.CodeNotFound, domain.ErrNotFound},
	{contract.CodeInvalidAmount, domain.ErrInvalidInput},
	{contract.CodeInvalidArgument, domain.ErrInvalidInput},
}

// classifyError turns an SDK error into a rejection when the chaincode raised a known code,
// otherwise into ErrLedgerUnavailable
func classifyError(fn string, err error) error {
	msg := err.Error()
	for _, k := range rejectionKinds {
		if idx := strings.Index(msg, k.code+": "); idx >= 0 {
			return fmt.Errorf("%w: %w: %s", domain.ErrLedgerRejected, k.err, rejectionMessage(msg[idx:]))
		}
	}
	return fmt.Errorf("%w: %s: %v", domain.ErrLedgerUnavailable, fn, err)
}

// rejectionMessage trims the SDK's wrapping that follows the chaincode message
func rejectionMessage(msg string) string {
	if i := strings.IndexAny(msg, "\n"); i >= 0 {
		msg = msg[:i]
	}
	return strings.TrimSpace(msg)
}
