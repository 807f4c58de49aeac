package reconcile

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/feral-file/ff-estate-ledger/internal/domain"
	"github.com/feral-file/ff-estate-ledger/internal/ledger"
	"github.com/feral-file/ff-estate-ledger/internal/store"
	"github.com/feral-file/ff-estate-ledger/internal/store/schema"
)

// Service serves reads that prefer the ledger and fall back to the mirror
//
//go:generate mockgen -source=service.go -destination=../mocks/reconcile.go -package=mocks -mock_names=Service=MockReconcileService
type Service interface {
	// ListSupply lists approved properties with their token supply
	ListSupply(ctx context.Context) (*View[[]SupplyItem], error)

	// ListHoldings lists a user's non-empty holdings
	ListHoldings(ctx context.Context, userID string) (*View[[]HoldingItem], error)

	// ListCertificates lists a user's certificates with the tokens the user still holds
	ListCertificates(ctx context.Context, userID string) (*View[[]CertificateItem], error)

	// ListAuditTrail lists the token movements of a user, optionally for one property
	ListAuditTrail(ctx context.Context, userID, propertyID string) (*View[[]AuditEntry], error)

	// GetCounters returns supply totals and mirror counters
	GetCounters(ctx context.Context) (*View[Counters], error)

	// VerifySync reports which mirror records carry a ledger reference
	VerifySync(ctx context.Context) (*SyncReport, error)
}

// Config holds the reconciliation configuration
type Config struct {
	// WorkerPoolSize bounds the concurrent ledger reads of one request
	WorkerPoolSize int
}

// SupplyItem is the supply of one property
type SupplyItem struct {
	PropertyID      string  `json:"property_id"`
	Title           string  `json:"title"`
	PriceCents      int64   `json:"price_cents"`
	OwnerEmail      string  `json:"owner_email"`
	TotalTokens     int64   `json:"total_tokens"`
	RemainingTokens int64   `json:"remaining_tokens"`
	IssuedTokens    int64   `json:"issued_tokens"`
	OnLedger        bool    `json:"on_ledger"`
	LedgerTxRef     *string `json:"ledger_tx_ref"`
}

// HoldingItem is a user's balance of one property
type HoldingItem struct {
	PropertyID string `json:"property_id"`
	Title      string `json:"title"`
	Tokens     int64  `json:"tokens"`
}

// CertificateItem is an ownership certificate
type CertificateItem struct {
	ID          string    `json:"id"`
	Serial      string    `json:"serial"`
	OrderID     string    `json:"order_id"`
	PropertyID  string    `json:"property_id"`
	Tokens      int64     `json:"tokens"`
	HeldTokens  int64     `json:"held_tokens"`
	LedgerTxRef *string   `json:"ledger_tx_ref"`
	IssuedAt    time.Time `json:"issued_at"`
}

// AuditEntry is one token movement
type AuditEntry struct {
	AuditRecordID string           `json:"audit_record_id,omitempty"`
	Kind          domain.AuditKind `json:"kind,omitempty"`
	PropertyID    string           `json:"property_id"`
	Amount        int64            `json:"amount"`
	// Balance is the holding after the movement, known for ledger entries only
	Balance     *int64    `json:"balance,omitempty"`
	LedgerTxRef *string   `json:"ledger_tx_ref"`
	Note        string    `json:"note,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

// Counters are platform totals
type Counters struct {
	Properties      int64 `json:"properties"`
	TotalTokens     int64 `json:"total_tokens"`
	IssuedTokens    int64 `json:"issued_tokens"`
	RemainingTokens int64 `json:"remaining_tokens"`
	Holders         int64 `json:"holders"`
	AuditRecords    int64 `json:"audit_records"`
	UnsyncedRecords int64 `json:"unsynced_records"`

	// UnregisteredProperties are approved on the mirror but unknown to the ledger.
	// Ledger-sourced totals leave them out.
	UnregisteredProperties int64 `json:"unregistered_properties"`
}

type service struct {
	cfg     Config
	store   store.Store
	gateway ledger.Gateway
}

// NewService creates a reconciliation service
func NewService(cfg Config, st store.Store, gateway ledger.Gateway) Service {
	if cfg.WorkerPoolSize <= 0 {
		cfg.WorkerPoolSize = 8
	}
	return &service{
		cfg:     cfg,
		store:   st,
		gateway: gateway,
	}
}

// =============================================================================
// Supply
// =============================================================================

func (s *service) ListSupply(ctx context.Context) (*View[[]SupplyItem], error) {
	properties, err := s.store.ListApprovedProperties(ctx)
	if err != nil {
		return nil, err
	}

	view, err := readWithFallback(ctx, s.gateway, domain.CategorySupply,
		func(ctx context.Context) ([]SupplyItem, error) {
			return s.ledgerSupply(ctx, properties)
		},
		func(ctx context.Context) ([]SupplyItem, error) {
			return mirrorSupply(properties), nil
		},
	)
	if err != nil {
		return nil, err
	}
	return &view, nil
}

// ledgerSupply reads every property from the ledger. A property the ledger does not know
// keeps its mirror numbers and is reported off the ledger.
func (s *service) ledgerSupply(ctx context.Context, properties []schema.Property) ([]SupplyItem, error) {
	return fanOut(ctx, s.cfg.WorkerPoolSize, properties, func(ctx context.Context, p schema.Property) (SupplyItem, error) {
		item := supplyItem(p)
		onLedger, err := s.gateway.GetProperty(ctx, p.ID)
		if err != nil {
			if isLedgerNotFound(err) {
				item.OnLedger = false
				return item, nil
			}
			return SupplyItem{}, err
		}
		item.OnLedger = true
		item.TotalTokens = onLedger.TotalTokens
		item.RemainingTokens = onLedger.RemainingTokens
		item.IssuedTokens = onLedger.IssuedTokens()
		return item, nil
	})
}

func mirrorSupply(properties []schema.Property) []SupplyItem {
	items := make([]SupplyItem, 0, len(properties))
	for _, p := range properties {
		items = append(items, supplyItem(p))
	}
	return items
}

func supplyItem(p schema.Property) SupplyItem {
	return SupplyItem{
		PropertyID:      p.ID,
		Title:           p.Title,
		PriceCents:      p.PriceCents,
		OwnerEmail:      p.Owner.Email,
		TotalTokens:     p.TotalTokens,
		RemainingTokens: p.RemainingTokens,
		IssuedTokens:    p.IssuedTokens(),
		OnLedger:        p.LedgerTxRef != nil,
		LedgerTxRef:     p.LedgerTxRef,
	}
}

// =============================================================================
// Holdings
// =============================================================================

func (s *service) ListHoldings(ctx context.Context, userID string) (*View[[]HoldingItem], error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", domain.ErrInvalidInput)
	}

	view, err := readWithFallback(ctx, s.gateway, domain.CategoryHoldings,
		func(ctx context.Context) ([]HoldingItem, error) {
			balances, err := s.ledgerBalances(ctx, userID)
			if err != nil {
				return nil, err
			}
			return s.holdingItems(ctx, balances)
		},
		func(ctx context.Context) ([]HoldingItem, error) {
			balances, err := s.mirrorBalances(ctx, userID)
			if err != nil {
				return nil, err
			}
			return s.holdingItems(ctx, balances)
		},
	)
	if err != nil {
		return nil, err
	}
	return &view, nil
}

func (s *service) mirrorBalances(ctx context.Context, userID string) (map[string]int64, error) {
	holdings, err := s.store.ListHoldingsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	balances := make(map[string]int64, len(holdings))
	for _, h := range holdings {
		balances[h.PropertyID] = h.Tokens
	}
	return balances, nil
}

func (s *service) ledgerBalances(ctx context.Context, userID string) (map[string]int64, error) {
	holdings, err := s.gateway.GetHoldings(ctx, userID)
	if err != nil {
		return nil, err
	}
	balances := make(map[string]int64, len(holdings))
	for _, h := range holdings {
		balances[h.PropertyID] = h.Tokens
	}
	return balances, nil
}

// holdingItems enriches non-empty balances with property titles, ordered by property id
func (s *service) holdingItems(ctx context.Context, balances map[string]int64) ([]HoldingItem, error) {
	ids := make([]string, 0, len(balances))
	for id, tokens := range balances {
		if tokens > 0 {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	properties, err := s.store.ListPropertiesByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	items := make([]HoldingItem, 0, len(ids))
	for _, id := range ids {
		items = append(items, HoldingItem{
			PropertyID: id,
			Title:      properties[id].Title,
			Tokens:     balances[id],
		})
	}
	return items, nil
}

// =============================================================================
// Certificates
// =============================================================================

func (s *service) ListCertificates(ctx context.Context, userID string) (*View[[]CertificateItem], error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", domain.ErrInvalidInput)
	}

	certificates, err := s.store.ListCertificatesByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	balances, err := readWithFallback(ctx, s.gateway, domain.CategoryCertificates,
		func(ctx context.Context) (map[string]int64, error) {
			return s.ledgerBalances(ctx, userID)
		},
		func(ctx context.Context) (map[string]int64, error) {
			return s.mirrorBalances(ctx, userID)
		},
	)
	if err != nil {
		return nil, err
	}

	view := mapView(balances, func(held map[string]int64) []CertificateItem {
		items := make([]CertificateItem, 0, len(certificates))
		for _, c := range certificates {
			items = append(items, CertificateItem{
				ID:          c.ID,
				Serial:      c.Serial,
				OrderID:     c.OrderID,
				PropertyID:  c.PropertyID,
				Tokens:      c.Tokens,
				HeldTokens:  held[c.PropertyID],
				LedgerTxRef: c.LedgerTxRef,
				IssuedAt:    c.IssuedAt,
			})
		}
		return items
	})
	return &view, nil
}

// =============================================================================
// Audit trail
// =============================================================================

func (s *service) ListAuditTrail(ctx context.Context, userID, propertyID string) (*View[[]AuditEntry], error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", domain.ErrInvalidInput)
	}

	view, err := readWithFallback(ctx, s.gateway, domain.CategoryAuditTrail,
		func(ctx context.Context) ([]AuditEntry, error) {
			return s.ledgerAuditTrail(ctx, userID, propertyID)
		},
		func(ctx context.Context) ([]AuditEntry, error) {
			return s.mirrorAuditTrail(ctx, userID, propertyID)
		},
	)
	if err != nil {
		return nil, err
	}
	return &view, nil
}

type propertyHistory struct {
	propertyID string
	entries    []ledger.HistoryEntry
}

// ledgerAuditTrail reads the holding history of every property the user holds on the ledger
// and joins each version to its mirror record by transaction reference
func (s *service) ledgerAuditTrail(ctx context.Context, userID, propertyID string) ([]AuditEntry, error) {
	var propertyIDs []string
	if propertyID != "" {
		propertyIDs = []string{propertyID}
	} else {
		holdings, err := s.gateway.GetHoldings(ctx, userID)
		if err != nil {
			return nil, err
		}
		for _, h := range holdings {
			propertyIDs = append(propertyIDs, h.PropertyID)
		}
	}

	histories, err := fanOut(ctx, s.cfg.WorkerPoolSize, propertyIDs, func(ctx context.Context, id string) (propertyHistory, error) {
		entries, err := s.gateway.GetHoldingHistory(ctx, userID, id)
		if err != nil {
			return propertyHistory{}, err
		}
		return propertyHistory{propertyID: id, entries: entries}, nil
	})
	if err != nil {
		return nil, err
	}

	var refs []string
	for _, h := range histories {
		for _, e := range h.entries {
			refs = append(refs, e.TxRef.String())
		}
	}
	records, err := s.store.GetAuditRecordsByLedgerRefs(ctx, refs)
	if err != nil {
		return nil, err
	}
	byRef := make(map[string]store.AuditRecordWithRef, len(records))
	for _, r := range records {
		if r.EffectiveTxRef != nil {
			byRef[*r.EffectiveTxRef] = r
		}
	}

	trail := make([]AuditEntry, 0, len(refs))
	for _, h := range histories {
		var previous int64
		for _, e := range h.entries {
			tokens := e.Tokens
			if e.Deleted {
				tokens = 0
			}
			delta := tokens - previous
			if delta < 0 {
				delta = -delta
			}
			previous = tokens

			entry := AuditEntry{
				PropertyID:  h.propertyID,
				Amount:      delta,
				Balance:     &tokens,
				LedgerTxRef: e.TxRef.Ptr(),
				Timestamp:   e.Timestamp,
			}
			if r, ok := byRef[e.TxRef.String()]; ok {
				entry.AuditRecordID = r.ID
				entry.Kind = r.Kind
				entry.Note = r.Note
			}
			trail = append(trail, entry)
		}
	}

	sort.SliceStable(trail, func(i, j int) bool {
		return trail[i].Timestamp.Before(trail[j].Timestamp)
	})
	return trail, nil
}

func (s *service) mirrorAuditTrail(ctx context.Context, userID, propertyID string) ([]AuditEntry, error) {
	records, err := s.store.ListAuditRecords(ctx, userID, propertyID)
	if err != nil {
		return nil, err
	}

	trail := make([]AuditEntry, 0, len(records))
	for _, r := range records {
		entry := AuditEntry{
			AuditRecordID: r.ID,
			Kind:          r.Kind,
			Amount:        r.Amount,
			LedgerTxRef:   r.EffectiveTxRef,
			Note:          r.Note,
			Timestamp:     r.CreatedAt,
		}
		if r.PropertyID != nil {
			entry.PropertyID = *r.PropertyID
		}
		trail = append(trail, entry)
	}
	return trail, nil
}

// =============================================================================
// Counters
// =============================================================================

func (s *service) GetCounters(ctx context.Context) (*View[Counters], error) {
	mirror, err := s.store.GetCounters(ctx)
	if err != nil {
		return nil, err
	}
	base := Counters{
		Properties:      mirror.Properties,
		TotalTokens:     mirror.TotalTokens,
		IssuedTokens:    mirror.IssuedTokens,
		RemainingTokens: mirror.RemainingTokens,
		Holders:         mirror.Holders,
		AuditRecords:    mirror.AuditRecords,
		UnsyncedRecords: mirror.UnsyncedRecords,
	}

	properties, err := s.store.ListApprovedProperties(ctx)
	if err != nil {
		return nil, err
	}

	view, err := readWithFallback(ctx, s.gateway, domain.CategoryCounters,
		func(ctx context.Context) (Counters, error) {
			supply, err := s.ledgerSupply(ctx, properties)
			if err != nil {
				return Counters{}, err
			}

			counters := base
			counters.Properties = 0
			counters.TotalTokens, counters.IssuedTokens, counters.RemainingTokens = 0, 0, 0
			for _, item := range supply {
				if !item.OnLedger {
					counters.UnregisteredProperties++
					continue
				}
				counters.Properties++
				counters.TotalTokens += item.TotalTokens
				counters.IssuedTokens += item.IssuedTokens
				counters.RemainingTokens += item.RemainingTokens
			}
			return counters, nil
		},
		func(ctx context.Context) (Counters, error) {
			return base, nil
		},
	)
	if err != nil {
		return nil, err
	}
	return &view, nil
}
