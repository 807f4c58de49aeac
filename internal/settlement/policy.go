package settlement

import (
	"errors"

	"github.com/feral-file/ff-estate-ledger/internal/domain"
)

// Config holds the settlement policy
type Config struct {
	// StrictContexts abort when the ledger submission fails. Every other context degrades to mirror-only.
	StrictContexts []domain.SettlementContext
}

// PolicyFor returns the ledger failure policy of a settlement context
func (c Config) PolicyFor(sc domain.SettlementContext) domain.Policy {
	for _, strict := range c.StrictContexts {
		if strict == sc {
			return domain.PolicyStrict
		}
	}
	return domain.PolicyDegrade
}

// reasonFor classifies a ledger submission failure
func reasonFor(err error) domain.UnsyncedReason {
	switch {
	case err == nil:
		return domain.ReasonNone
	case errors.Is(err, domain.ErrLedgerDisabled):
		return domain.ReasonLedgerDisabled
	case errors.Is(err, domain.ErrLedgerRejected):
		return domain.ReasonLedgerRejected
	default:
		return domain.ReasonLedgerUnavailable
	}
}
