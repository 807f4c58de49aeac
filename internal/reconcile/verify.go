package reconcile

import (
	"context"
	"fmt"
	"math"

	"github.com/feral-file/ff-estate-ledger/internal/store"
)

// SyncRecord is one verified mirror record
type SyncRecord struct {
	ID          string  `json:"id"`
	Label       string  `json:"label"`
	LedgerTxRef *string `json:"ledger_tx_ref"`
	Synced      bool    `json:"synced"`

	// Rejected records stay pending until an operator resolves them
	Rejected      bool    `json:"rejected,omitempty"`
	FailureReason *string `json:"failure_reason,omitempty"`
}

// SyncCategory aggregates the verification of one record category
type SyncCategory struct {
	Total   int `json:"total"`
	Synced  int `json:"synced"`
	Pending int `json:"pending"`

	// Rejected counts the pending records the ledger refused
	Rejected int `json:"rejected"`

	// SyncRate is the synced share in percent, 0 for an empty category
	SyncRate float64      `json:"sync_rate"`
	Records  []SyncRecord `json:"records"`
}

// SyncReport is the result of a sync verification
type SyncReport struct {
	LedgerEnabled bool         `json:"ledger_enabled"`
	Properties    SyncCategory `json:"properties"`
	Certificates  SyncCategory `json:"certificates"`
	MintRecords   SyncCategory `json:"mint_records"`
}

// VerifySync reports which approved properties, certificates and mint records carry a ledger
// reference. It only reads the mirror.
func (s *service) VerifySync(ctx context.Context) (*SyncReport, error) {
	properties, err := s.store.ListPropertySyncStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to verify properties: %w", err)
	}
	certificates, err := s.store.ListCertificateSyncStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to verify certificates: %w", err)
	}
	mints, err := s.store.ListMintRecordSyncStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to verify mint records: %w", err)
	}

	return &SyncReport{
		LedgerEnabled: s.gateway.Enabled(),
		Properties:    summarize(properties),
		Certificates:  summarize(certificates),
		MintRecords:   summarize(mints),
	}, nil
}

func summarize(statuses []store.SyncStatus) SyncCategory {
	category := SyncCategory{
		Total:   len(statuses),
		Records: make([]SyncRecord, 0, len(statuses)),
	}
	for _, st := range statuses {
		synced := st.Synced()
		if synced {
			category.Synced++
		}
		record := SyncRecord{
			ID:          st.ID,
			Label:       st.Label,
			LedgerTxRef: st.LedgerTxRef,
			Synced:      synced,
		}
		if st.Rejected() {
			category.Rejected++
			record.Rejected = true
			record.FailureReason = st.FailureReason
		}
		category.Records = append(category.Records, record)
	}
	category.Pending = category.Total - category.Synced
	if category.Total > 0 {
		category.SyncRate = math.Round(float64(category.Synced)/float64(category.Total)*10000) / 100
	}
	return category
}
