package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/feral-file/ff-estate-ledger/internal/domain"
	"github.com/feral-file/ff-estate-ledger/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance.
// db must be opened with gorm.Config.TranslateError so constraint violations map to domain errors.
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM database connection.
// It accesses the underlying *sql.DB and sets the pool configuration.
// Zero values fall back to the defaults of NormalizeConnectionPoolSettings.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings into safe values.
//
// Defaults (when zero):
//   - MaxOpenConns: 20
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
//
// MaxIdleConns never exceeds MaxOpenConns.
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// OrderSettlementKey returns the settlement key of an order's audit records
func OrderSettlementKey(orderID string) string {
	return "order:" + orderID
}

// =============================================================================
// Reads
// =============================================================================

// GetProperty retrieves a property by ID
func (s *pgStore) GetProperty(ctx context.Context, propertyID string) (*schema.Property, error) {
	var property schema.Property
	err := s.db.WithContext(ctx).Where("id = ?", propertyID).First(&property).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get property: %w", err)
	}
	return &property, nil
}

// ListApprovedProperties retrieves approved properties with their owners
func (s *pgStore) ListApprovedProperties(ctx context.Context) ([]schema.Property, error) {
	var properties []schema.Property
	err := s.db.WithContext(ctx).
		Preload("Owner").
		Where("status = ?", domain.PropertyStatusApproved).
		Order("id ASC").
		Find(&properties).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list approved properties: %w", err)
	}
	return properties, nil
}

// ListPropertiesByIDs retrieves properties keyed by ID
func (s *pgStore) ListPropertiesByIDs(ctx context.Context, propertyIDs []string) (map[string]schema.Property, error) {
	result := make(map[string]schema.Property, len(propertyIDs))
	if len(propertyIDs) == 0 {
		return result, nil
	}

	var properties []schema.Property
	if err := s.db.WithContext(ctx).Where("id IN ?", propertyIDs).Find(&properties).Error; err != nil {
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}
	for _, p := range properties {
		result[p.ID] = p
	}
	return result, nil
}

// GetHolding retrieves a user's holding of a property
func (s *pgStore) GetHolding(ctx context.Context, userID, propertyID string) (*schema.Holding, error) {
	var holding schema.Holding
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND property_id = ?", userID, propertyID).
		First(&holding).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get holding: %w", err)
	}
	return &holding, nil
}

// ListHoldingsByUser retrieves a user's non-empty holdings
func (s *pgStore) ListHoldingsByUser(ctx context.Context, userID string) ([]schema.Holding, error) {
	var holdings []schema.Holding
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND tokens > 0", userID).
		Order("property_id ASC").
		Find(&holdings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list holdings: %w", err)
	}
	return holdings, nil
}

// GetWallet retrieves a user's wallet
func (s *pgStore) GetWallet(ctx context.Context, userID string) (*schema.Wallet, error) {
	var wallet schema.Wallet
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&wallet).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}
	return &wallet, nil
}

// ListCertificatesByUser retrieves a user's certificates
func (s *pgStore) ListCertificatesByUser(ctx context.Context, userID string) ([]schema.Certificate, error) {
	var certificates []schema.Certificate
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("issued_at DESC, id DESC").
		Find(&certificates).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list certificates: %w", err)
	}
	return certificates, nil
}

// auditRecordsWithRef selects audit records joined to their sync receipts
func (s *pgStore) auditRecordsWithRef(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).
		Table("audit_records AS a").
		Select("a.*, COALESCE(a.ledger_tx_ref, r.ledger_tx_ref) AS effective_tx_ref").
		Joins("LEFT JOIN ledger_sync_receipts r ON r.audit_record_id = a.id")
}

// ListAuditRecords retrieves the audit records a user is a party of
func (s *pgStore) ListAuditRecords(ctx context.Context, userID string, propertyID string) ([]AuditRecordWithRef, error) {
	query := s.auditRecordsWithRef(ctx).
		Where("(a.user_id = ? OR a.counterparty_id = ?)", userID, userID)
	if propertyID != "" {
		query = query.Where("a.property_id = ?", propertyID)
	}

	var records []AuditRecordWithRef
	if err := query.Order("a.created_at ASC, a.id ASC").Scan(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to list audit records: %w", err)
	}
	return records, nil
}

// GetAuditRecordsByLedgerRefs retrieves audit records by their effective ledger reference
func (s *pgStore) GetAuditRecordsByLedgerRefs(ctx context.Context, refs []string) ([]AuditRecordWithRef, error) {
	if len(refs) == 0 {
		return []AuditRecordWithRef{}, nil
	}

	var records []AuditRecordWithRef
	err := s.auditRecordsWithRef(ctx).
		Where("(a.ledger_tx_ref IN ? OR r.ledger_tx_ref IN ?)", refs, refs).
		Order("a.created_at ASC, a.id ASC").
		Scan(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get audit records by ledger refs: %w", err)
	}
	return records, nil
}

// GetAuditRecord retrieves the audit record of a settlement key and kind
func (s *pgStore) GetAuditRecord(ctx context.Context, settlementKey string, kind domain.AuditKind) (*schema.AuditRecord, error) {
	var record schema.AuditRecord
	err := s.db.WithContext(ctx).
		Where("settlement_key = ? AND kind = ?", settlementKey, kind).
		First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get audit record: %w", err)
	}
	return &record, nil
}

const countersQuery = `
SELECT p.properties, p.total_tokens, p.issued_tokens, p.remaining_tokens,
       h.holders, a.audit_records, a.unsynced_records
FROM (
    SELECT COUNT(*) FILTER (WHERE status = 'approved') AS properties,
           COALESCE(SUM(total_tokens) FILTER (WHERE status = 'approved'), 0) AS total_tokens,
           COALESCE(SUM(total_tokens - remaining_tokens) FILTER (WHERE status = 'approved'), 0) AS issued_tokens,
           COALESCE(SUM(remaining_tokens) FILTER (WHERE status = 'approved'), 0) AS remaining_tokens
    FROM properties
) p, (
    SELECT COUNT(DISTINCT user_id) AS holders FROM holdings WHERE tokens > 0
) h, (
    SELECT COUNT(*) AS audit_records,
           COUNT(*) FILTER (WHERE a.kind IN ('mint', 'transfer')
                              AND a.ledger_tx_ref IS NULL
                              AND r.audit_record_id IS NULL) AS unsynced_records
    FROM audit_records a
    LEFT JOIN ledger_sync_receipts r ON r.audit_record_id = a.id
) a`

// GetCounters aggregates mirror totals
func (s *pgStore) GetCounters(ctx context.Context) (*Counters, error) {
	var counters Counters
	if err := s.db.WithContext(ctx).Raw(countersQuery).Scan(&counters).Error; err != nil {
		return nil, fmt.Errorf("failed to get counters: %w", err)
	}
	return &counters, nil
}

// =============================================================================
// Settlements
// =============================================================================

// SettleMint applies a mint in one transaction
func (s *pgStore) SettleMint(ctx context.Context, input SettleMintInput) (*schema.AuditRecord, error) {
	var record *schema.AuditRecord
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r, err := applyMint(tx, input)
		if err != nil {
			return err
		}
		record = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}

// applyMint decrements supply, credits the holding and creates the mint record inside tx
func applyMint(tx *gorm.DB, input SettleMintInput) (*schema.AuditRecord, error) {
	// 1. Conditional decrement, so concurrent mints cannot oversell the mirror
	res := tx.Model(&schema.Property{}).
		Where("id = ? AND remaining_tokens >= ?", input.PropertyID, input.Tokens).
		Update("remaining_tokens", gorm.Expr("remaining_tokens - ?", input.Tokens))
	if res.Error != nil {
		return nil, fmt.Errorf("failed to decrement remaining tokens: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		var property schema.Property
		if err := tx.Select("id", "remaining_tokens").Where("id = ?", input.PropertyID).First(&property).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: property %s", domain.ErrNotFound, input.PropertyID)
			}
			return nil, fmt.Errorf("failed to get property: %w", err)
		}
		return nil, fmt.Errorf("%w: requested %d tokens but only %d remain for property %s",
			domain.ErrInsufficientSupply, input.Tokens, property.RemainingTokens, input.PropertyID)
	}

	// 2. Upsert the holding
	if err := creditHolding(tx, input.UserID, input.PropertyID, input.Tokens); err != nil {
		return nil, err
	}

	// 3. Create the audit record, once per settlement key
	record := schema.AuditRecord{
		ID:            ulid.Make().String(),
		SettlementKey: input.SettlementKey,
		Kind:          domain.AuditKindMint,
		UserID:        input.UserID,
		PropertyID:    &input.PropertyID,
		Amount:        input.Tokens,
		LedgerTxRef:   input.LedgerTxRef,
		Note:          input.Note,
		Meta:          input.Meta,
	}
	if err := createAuditRecord(tx, &record); err != nil {
		return nil, err
	}

	return &record, nil
}

// creditHolding creates the holding or adds tokens to it
func creditHolding(tx *gorm.DB, userID, propertyID string, tokens int64) error {
	holding := schema.Holding{
		UserID:     userID,
		PropertyID: propertyID,
		Tokens:     tokens,
	}
	if err := tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "property_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"tokens":     gorm.Expr("holdings.tokens + EXCLUDED.tokens"),
			"updated_at": gorm.Expr("now()"),
		}),
	}).Create(&holding).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return fmt.Errorf("%w: user %s", domain.ErrNotFound, userID)
		}
		return fmt.Errorf("failed to upsert holding: %w", err)
	}
	return nil
}

// createAuditRecord inserts record, failing with ErrConflict when its settlement key and kind exist
func createAuditRecord(tx *gorm.DB, record *schema.AuditRecord) error {
	res := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "settlement_key"}, {Name: "kind"}},
		DoNothing: true,
	}).Create(record)
	if res.Error != nil {
		return fmt.Errorf("failed to create %s audit record: %w", record.Kind, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: %s already settled for key %s", domain.ErrConflict, record.Kind, record.SettlementKey)
	}
	return nil
}

// ClaimOrder moves a pending order to settling
func (s *pgStore) ClaimOrder(ctx context.Context, orderID string) (*schema.Order, error) {
	var claimed *schema.Order
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&schema.Order{}).
			Where("id = ? AND status = ?", orderID, domain.OrderStatusPending).
			Update("status", domain.OrderStatusSettling)
		if res.Error != nil {
			return fmt.Errorf("failed to claim order: %w", res.Error)
		}

		var order schema.Order
		if err := tx.Where("id = ?", orderID).First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: order %s", domain.ErrNotFound, orderID)
			}
			return fmt.Errorf("failed to get order: %w", err)
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: order %s is %s", domain.ErrConflict, orderID, order.Status)
		}

		claimed = &order
		return nil
	})
	if err != nil {
		return nil, err
	}
	return claimed, nil
}

// ReleaseOrder moves a settling order back to pending
func (s *pgStore) ReleaseOrder(ctx context.Context, orderID string) error {
	err := s.db.WithContext(ctx).Model(&schema.Order{}).
		Where("id = ? AND status = ?", orderID, domain.OrderStatusSettling).
		Update("status", domain.OrderStatusPending).Error
	if err != nil {
		return fmt.Errorf("failed to release order: %w", err)
	}
	return nil
}

// SettleOrder settles a claimed order in one transaction
func (s *pgStore) SettleOrder(ctx context.Context, input SettleOrderInput) (*SettleOrderOutput, error) {
	if input.SettledAt.IsZero() {
		return nil, fmt.Errorf("%w: order %s has no settlement time", domain.ErrInvalidInput, input.OrderID)
	}
	settledAt := input.SettledAt.UTC()

	var output SettleOrderOutput
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. Lock the order, it must still be claimed
		var order schema.Order
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", input.OrderID).
			First(&order).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: order %s", domain.ErrNotFound, input.OrderID)
			}
			return fmt.Errorf("failed to lock order: %w", err)
		}
		if order.Status != domain.OrderStatusSettling {
			return fmt.Errorf("%w: order %s is %s", domain.ErrConflict, order.ID, order.Status)
		}

		// 2. Lock and debit the wallet
		var wallet schema.Wallet
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ?", order.UserID).
			First(&wallet).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: wallet of user %s", domain.ErrNotFound, order.UserID)
			}
			return fmt.Errorf("failed to lock wallet: %w", err)
		}
		if wallet.BalanceCents < order.AmountCents {
			return fmt.Errorf("%w: wallet of user %s holds %d cents, order %s costs %d",
				domain.ErrInsufficientBalance, order.UserID, wallet.BalanceCents, order.ID, order.AmountCents)
		}
		if err := tx.Model(&schema.Wallet{}).
			Where("user_id = ?", order.UserID).
			Update("balance_cents", gorm.Expr("balance_cents - ?", order.AmountCents)).Error; err != nil {
			return fmt.Errorf("failed to debit wallet: %w", err)
		}

		key := OrderSettlementKey(order.ID)

		// 3. Withdrawal record for the cash leg
		withdrawal := schema.AuditRecord{
			ID:            ulid.Make().String(),
			SettlementKey: key,
			Kind:          domain.AuditKindWithdrawal,
			UserID:        order.UserID,
			PropertyID:    &order.PropertyID,
			Amount:        order.AmountCents,
			Note:          input.Note,
			Meta:          input.Meta,
		}
		if err := createAuditRecord(tx, &withdrawal); err != nil {
			return err
		}

		// 4. Token leg
		mint, err := applyMint(tx, SettleMintInput{
			SettlementKey: key,
			PropertyID:    order.PropertyID,
			UserID:        order.UserID,
			Tokens:        order.Tokens,
			LedgerTxRef:   input.LedgerTxRef,
			Note:          input.Note,
			Meta:          input.Meta,
		})
		if err != nil {
			return err
		}

		// 5. Certificate
		certID := ulid.Make().String()
		certificate := schema.Certificate{
			ID:            certID,
			OrderID:       order.ID,
			UserID:        order.UserID,
			PropertyID:    order.PropertyID,
			Tokens:        order.Tokens,
			Serial:        fmt.Sprintf("EST-%s-%s", order.PropertyID, certID),
			AuditRecordID: mint.ID,
			LedgerTxRef:   input.LedgerTxRef,
			IssuedAt:      settledAt,
		}
		if err := tx.Create(&certificate).Error; err != nil {
			return fmt.Errorf("failed to create certificate: %w", err)
		}

		// 6. Issue the order
		if err := tx.Model(&order).Updates(map[string]interface{}{
			"status":     domain.OrderStatusIssued,
			"settled_at": settledAt,
		}).Error; err != nil {
			return fmt.Errorf("failed to issue order: %w", err)
		}
		order.Status = domain.OrderStatusIssued
		order.SettledAt = &settledAt

		output = SettleOrderOutput{
			Order:       order,
			Withdrawal:  withdrawal,
			Mint:        *mint,
			Certificate: certificate,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &output, nil
}

// SettleTransfer applies a transfer in one transaction
func (s *pgStore) SettleTransfer(ctx context.Context, input SettleTransferInput) (*schema.AuditRecord, error) {
	var record schema.AuditRecord
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. Conditional debit, no partial debit is possible
		res := tx.Model(&schema.Holding{}).
			Where("user_id = ? AND property_id = ? AND tokens >= ?", input.FromUserID, input.PropertyID, input.Tokens).
			Update("tokens", gorm.Expr("tokens - ?", input.Tokens))
		if res.Error != nil {
			return fmt.Errorf("failed to debit holding: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			var holding schema.Holding
			if err := tx.Where("user_id = ? AND property_id = ?", input.FromUserID, input.PropertyID).First(&holding).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("%w: user %s holds no tokens of property %s", domain.ErrNotFound, input.FromUserID, input.PropertyID)
				}
				return fmt.Errorf("failed to get holding: %w", err)
			}
			return fmt.Errorf("%w: user %s holds %d tokens of property %s, cannot transfer %d",
				domain.ErrInsufficientBalance, input.FromUserID, holding.Tokens, input.PropertyID, input.Tokens)
		}

		// 2. Credit the receiver
		if err := creditHolding(tx, input.ToUserID, input.PropertyID, input.Tokens); err != nil {
			return err
		}

		// 3. Audit record
		record = schema.AuditRecord{
			ID:             ulid.Make().String(),
			SettlementKey:  input.SettlementKey,
			Kind:           domain.AuditKindTransfer,
			UserID:         input.FromUserID,
			PropertyID:     &input.PropertyID,
			CounterpartyID: &input.ToUserID,
			Amount:         input.Tokens,
			LedgerTxRef:    input.LedgerTxRef,
			Note:           input.Note,
			Meta:           input.Meta,
		}
		return createAuditRecord(tx, &record)
	})
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// SetPropertyLedgerRef stamps the InitProperty transaction on a property
func (s *pgStore) SetPropertyLedgerRef(ctx context.Context, propertyID string, ref string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&schema.Property{}).
			Where("id = ? AND ledger_tx_ref IS NULL", propertyID).
			Update("ledger_tx_ref", ref)
		if res.Error != nil {
			return fmt.Errorf("failed to set property ledger ref: %w", res.Error)
		}
		if res.RowsAffected > 0 {
			return nil
		}

		var count int64
		if err := tx.Model(&schema.Property{}).Where("id = ?", propertyID).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to get property: %w", err)
		}
		if count == 0 {
			return fmt.Errorf("%w: property %s", domain.ErrNotFound, propertyID)
		}
		return fmt.Errorf("%w: property %s already has a ledger reference", domain.ErrConflict, propertyID)
	})
}

// =============================================================================
// Ledger sync
// =============================================================================

// ListPropertySyncStatus lists approved properties with their ledger reference
func (s *pgStore) ListPropertySyncStatus(ctx context.Context) ([]SyncStatus, error) {
	var statuses []SyncStatus
	err := s.db.WithContext(ctx).Raw(`
SELECT id, title AS label, ledger_tx_ref, created_at
FROM properties
WHERE status = ?
ORDER BY id ASC`, domain.PropertyStatusApproved).Scan(&statuses).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list property sync status: %w", err)
	}
	return statuses, nil
}

// ListCertificateSyncStatus lists certificates with their effective ledger reference
func (s *pgStore) ListCertificateSyncStatus(ctx context.Context) ([]SyncStatus, error) {
	var statuses []SyncStatus
	err := s.db.WithContext(ctx).Raw(`
SELECT c.id, c.serial AS label, COALESCE(c.ledger_tx_ref, r.ledger_tx_ref) AS ledger_tx_ref, c.issued_at AS created_at,
    f.reason AS failure_reason
FROM certificates c
LEFT JOIN ledger_sync_receipts r ON r.audit_record_id = c.audit_record_id
LEFT JOIN ledger_sync_failures f ON f.audit_record_id = c.audit_record_id
ORDER BY c.id ASC`).Scan(&statuses).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list certificate sync status: %w", err)
	}
	return statuses, nil
}

// ListMintRecordSyncStatus lists mint audit records with their effective ledger reference
func (s *pgStore) ListMintRecordSyncStatus(ctx context.Context) ([]SyncStatus, error) {
	var statuses []SyncStatus
	err := s.db.WithContext(ctx).Raw(`
SELECT a.id, a.settlement_key AS label, COALESCE(a.ledger_tx_ref, r.ledger_tx_ref) AS ledger_tx_ref, a.created_at,
    f.reason AS failure_reason
FROM audit_records a
LEFT JOIN ledger_sync_receipts r ON r.audit_record_id = a.id
LEFT JOIN ledger_sync_failures f ON f.audit_record_id = a.id
WHERE a.kind = ?
ORDER BY a.id ASC`, domain.AuditKindMint).Scan(&statuses).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list mint record sync status: %w", err)
	}
	return statuses, nil
}

// ListUnregisteredProperties lists approved properties that have no ledger reference
func (s *pgStore) ListUnregisteredProperties(ctx context.Context, limit int) ([]schema.Property, error) {
	var properties []schema.Property
	err := s.db.WithContext(ctx).
		Where("status = ? AND ledger_tx_ref IS NULL", domain.PropertyStatusApproved).
		Order("created_at ASC, id ASC").
		Limit(limit).
		Find(&properties).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list unregistered properties: %w", err)
	}
	return properties, nil
}

// ListUnsyncedAuditRecords lists token records waiting for a ledger confirmation
func (s *pgStore) ListUnsyncedAuditRecords(ctx context.Context, olderThan time.Time, limit int) ([]schema.AuditRecord, error) {
	var records []schema.AuditRecord
	err := s.db.WithContext(ctx).
		Table("audit_records AS a").
		Select("a.*").
		Joins("JOIN properties p ON p.id = a.property_id").
		Joins("LEFT JOIN ledger_sync_receipts r ON r.audit_record_id = a.id").
		Joins("LEFT JOIN ledger_sync_failures f ON f.audit_record_id = a.id").
		Where("a.kind IN ?", []string{string(domain.AuditKindMint), string(domain.AuditKindTransfer)}).
		Where("a.ledger_tx_ref IS NULL AND r.audit_record_id IS NULL AND f.audit_record_id IS NULL").
		Where("p.ledger_tx_ref IS NOT NULL").
		Where("a.created_at < ?", olderThan).
		Order("a.created_at ASC, a.id ASC").
		Limit(limit).
		Scan(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list unsynced audit records: %w", err)
	}
	return records, nil
}

// CreateSyncReceipt records a later ledger confirmation of an audit record
func (s *pgStore) CreateSyncReceipt(ctx context.Context, auditRecordID string, ref string) error {
	receipt := schema.LedgerSyncReceipt{
		AuditRecordID: auditRecordID,
		LedgerTxRef:   ref,
	}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "audit_record_id"}},
		DoNothing: true,
	}).Create(&receipt).Error
	if err != nil {
		return fmt.Errorf("failed to create sync receipt: %w", err)
	}
	return nil
}

// CreateSyncFailure marks an audit record as refused by the ledger so resync stops resubmitting it
func (s *pgStore) CreateSyncFailure(ctx context.Context, auditRecordID string, reason domain.SyncFailureReason, message string) error {
	failure := schema.LedgerSyncFailure{
		AuditRecordID: auditRecordID,
		Reason:        reason,
		Error:         message,
	}
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "audit_record_id"}},
		DoNothing: true,
	}).Create(&failure).Error
	if err != nil {
		return fmt.Errorf("failed to create sync failure: %w", err)
	}
	return nil
}
