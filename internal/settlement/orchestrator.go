package settlement

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"github.com/feral-file/ff-estate-ledger/internal/adapter"
	"github.com/feral-file/ff-estate-ledger/internal/domain"
	"github.com/feral-file/ff-estate-ledger/internal/ledger"
	"github.com/feral-file/ff-estate-ledger/internal/logger"
	"github.com/feral-file/ff-estate-ledger/internal/messaging"
	"github.com/feral-file/ff-estate-ledger/internal/store"
	"github.com/feral-file/ff-estate-ledger/internal/store/schema"
)

type orchestrator struct {
	cfg       Config
	store     store.Store
	gateway   ledger.Gateway
	publisher messaging.Publisher
	json      adapter.JSON
	clock     adapter.Clock
}

// NewOrchestrator creates a settlement orchestrator
func NewOrchestrator(
	cfg Config,
	st store.Store,
	gateway ledger.Gateway,
	publisher messaging.Publisher,
	jsonAdapter adapter.JSON,
	clock adapter.Clock,
) Orchestrator {
	return &orchestrator{
		cfg:       cfg,
		store:     st,
		gateway:   gateway,
		publisher: publisher,
		json:      jsonAdapter,
		clock:     clock,
	}
}

// SettleMint issues tokens of a property to a user
func (o *orchestrator) SettleMint(ctx context.Context, req MintRequest) (*Result, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	key, err := o.settlementKey(ctx, req.SettlementKey, domain.AuditKindMint)
	if err != nil {
		return nil, err
	}

	if _, err := o.loadWithSupply(ctx, req.PropertyID, req.Tokens); err != nil {
		return nil, err
	}

	ref, reason, err := o.submit(ctx, req.Context, func(ctx context.Context) (ledger.TxRef, error) {
		return o.gateway.SubmitMint(ctx, req.PropertyID, req.UserID, req.Tokens, key)
	})
	if err != nil {
		return nil, err
	}

	meta, err := o.meta(req.Context, ref, reason, "")
	if err != nil {
		return nil, err
	}

	record, err := o.store.SettleMint(ctx, store.SettleMintInput{
		SettlementKey: key,
		PropertyID:    req.PropertyID,
		UserID:        req.UserID,
		Tokens:        req.Tokens,
		LedgerTxRef:   ref.Ptr(),
		Note:          req.Note,
		Meta:          meta,
	})
	if err != nil {
		reportOrphan(ctx, ref, err)
		return nil, err
	}

	result := newResult(record, reason)
	logger.InfoCtx(ctx, "Mint settled",
		logger.PropertyID(req.PropertyID),
		logger.UserID(req.UserID),
		logger.SettlementKey(key),
		logger.AuditRecordID(record.ID),
		logger.Context(string(req.Context)),
		zap.String("outcome", string(result.Outcome)),
	)
	o.publish(ctx, record, result.Outcome)

	return result, nil
}

// SettleOrder settles a pending purchase order
func (o *orchestrator) SettleOrder(ctx context.Context, req OrderRequest) (*OrderResult, error) {
	if req.OrderID == "" {
		return nil, fmt.Errorf("%w: order id is required", domain.ErrInvalidInput)
	}

	order, err := o.store.ClaimOrder(ctx, req.OrderID)
	if err != nil {
		return nil, err
	}

	settled := false
	defer func() {
		if settled {
			return
		}
		if err := o.store.ReleaseOrder(context.WithoutCancel(ctx), order.ID); err != nil {
			logger.ErrorCtx(ctx, fmt.Errorf("failed to release order claim: %w", err), zap.String("order_id", order.ID))
		}
	}()

	wallet, err := o.store.GetWallet(ctx, order.UserID)
	if err != nil {
		return nil, err
	}
	if wallet == nil {
		return nil, fmt.Errorf("%w: wallet of user %s", domain.ErrNotFound, order.UserID)
	}
	if wallet.BalanceCents < order.AmountCents {
		return nil, fmt.Errorf("%w: wallet of user %s holds %d cents, order %s costs %d",
			domain.ErrInsufficientBalance, order.UserID, wallet.BalanceCents, order.ID, order.AmountCents)
	}

	if _, err := o.loadWithSupply(ctx, order.PropertyID, order.Tokens); err != nil {
		return nil, err
	}

	ref, reason, err := o.submit(ctx, domain.ContextOrder, func(ctx context.Context) (ledger.TxRef, error) {
		return o.gateway.SubmitMint(ctx, order.PropertyID, order.UserID, order.Tokens, store.OrderSettlementKey(order.ID))
	})
	if err != nil {
		return nil, err
	}

	meta, err := o.meta(domain.ContextOrder, ref, reason, order.ID)
	if err != nil {
		return nil, err
	}

	output, err := o.store.SettleOrder(ctx, store.SettleOrderInput{
		OrderID:     order.ID,
		LedgerTxRef: ref.Ptr(),
		Note:        req.Note,
		Meta:        meta,
		SettledAt:   o.clock.Now(),
	})
	if err != nil {
		reportOrphan(ctx, ref, err)
		return nil, err
	}
	settled = true

	result := &OrderResult{
		Result:             *newResult(&output.Mint, reason),
		OrderID:            output.Order.ID,
		AmountCents:        output.Withdrawal.Amount,
		WithdrawalRecordID: output.Withdrawal.ID,
		CertificateID:      output.Certificate.ID,
		CertificateSerial:  output.Certificate.Serial,
	}
	logger.InfoCtx(ctx, "Order settled",
		zap.String("order_id", order.ID),
		logger.PropertyID(order.PropertyID),
		logger.UserID(order.UserID),
		logger.AuditRecordID(output.Mint.ID),
		zap.String("certificate_serial", output.Certificate.Serial),
		zap.String("outcome", string(result.Outcome)),
	)
	o.publish(ctx, &output.Mint, result.Outcome)

	return result, nil
}

// SettleTransfer moves tokens of a property between users
func (o *orchestrator) SettleTransfer(ctx context.Context, req TransferRequest) (*Result, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	key, err := o.settlementKey(ctx, req.SettlementKey, domain.AuditKindTransfer)
	if err != nil {
		return nil, err
	}

	property, err := o.store.GetProperty(ctx, req.PropertyID)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, fmt.Errorf("%w: property %s", domain.ErrNotFound, req.PropertyID)
	}

	holding, err := o.store.GetHolding(ctx, req.FromUserID, req.PropertyID)
	if err != nil {
		return nil, err
	}
	if holding == nil {
		return nil, fmt.Errorf("%w: user %s holds no tokens of property %s", domain.ErrNotFound, req.FromUserID, req.PropertyID)
	}
	if req.Tokens > holding.Tokens {
		return nil, fmt.Errorf("%w: user %s holds %d tokens of property %s, cannot transfer %d",
			domain.ErrInsufficientBalance, req.FromUserID, holding.Tokens, req.PropertyID, req.Tokens)
	}

	ref, reason, err := o.submit(ctx, domain.ContextTransfer, func(ctx context.Context) (ledger.TxRef, error) {
		return o.gateway.SubmitTransfer(ctx, req.PropertyID, req.FromUserID, req.ToUserID, req.Tokens, key)
	})
	if err != nil {
		return nil, err
	}

	meta, err := o.meta(domain.ContextTransfer, ref, reason, "")
	if err != nil {
		return nil, err
	}

	record, err := o.store.SettleTransfer(ctx, store.SettleTransferInput{
		SettlementKey: key,
		PropertyID:    req.PropertyID,
		FromUserID:    req.FromUserID,
		ToUserID:      req.ToUserID,
		Tokens:        req.Tokens,
		LedgerTxRef:   ref.Ptr(),
		Note:          req.Note,
		Meta:          meta,
	})
	if err != nil {
		reportOrphan(ctx, ref, err)
		return nil, err
	}

	result := newResult(record, reason)
	logger.InfoCtx(ctx, "Transfer settled",
		logger.PropertyID(req.PropertyID),
		logger.UserID(req.FromUserID),
		zap.String("to_user_id", req.ToUserID),
		logger.AuditRecordID(record.ID),
		zap.String("outcome", string(result.Outcome)),
	)
	o.publish(ctx, record, result.Outcome)

	return result, nil
}

// RegisterProperty submits InitProperty for an approved property and stamps the reference on the mirror
func (o *orchestrator) RegisterProperty(ctx context.Context, propertyID string) (*RegistrationResult, error) {
	if propertyID == "" {
		return nil, fmt.Errorf("%w: property id is required", domain.ErrInvalidInput)
	}

	property, err := o.store.GetProperty(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, fmt.Errorf("%w: property %s", domain.ErrNotFound, propertyID)
	}
	if property.Status != domain.PropertyStatusApproved {
		return nil, fmt.Errorf("%w: property %s is %s", domain.ErrInvalidInput, propertyID, property.Status)
	}
	if property.LedgerTxRef != nil {
		return nil, fmt.Errorf("%w: property %s is registered by %s", domain.ErrAlreadyExists, propertyID, *property.LedgerTxRef)
	}

	var adopted bool
	ref, err := o.gateway.SubmitInit(ctx, propertyID, property.TotalTokens)
	if errors.Is(err, domain.ErrAlreadyExists) {
		// An earlier registration committed on the ledger but never reached the mirror
		ref, err = o.adoptProperty(ctx, property)
		adopted = err == nil
	}
	if err != nil {
		return nil, err
	}

	if err := o.store.SetPropertyLedgerRef(ctx, propertyID, ref.String()); err != nil {
		if !adopted {
			reportOrphan(ctx, ref, err)
		}
		return nil, err
	}

	logger.InfoCtx(ctx, "Property registered on ledger",
		logger.PropertyID(propertyID),
		logger.TxRef(ref.String()),
		zap.Int64("total_tokens", property.TotalTokens),
		zap.Bool("adopted", adopted),
	)

	return &RegistrationResult{
		PropertyID:  propertyID,
		TotalTokens: property.TotalTokens,
		LedgerTxRef: ref.String(),
		Adopted:     adopted,
	}, nil
}

// adoptProperty accepts the ledger's supply record of a property when it matches the mirror
func (o *orchestrator) adoptProperty(ctx context.Context, property *schema.Property) (ledger.TxRef, error) {
	onLedger, err := o.gateway.GetProperty(ctx, property.ID)
	if err != nil {
		return "", fmt.Errorf("failed to read existing ledger property %s: %w", property.ID, err)
	}
	if onLedger.TotalTokens != property.TotalTokens {
		return "", fmt.Errorf("%w: property %s has %d tokens on the ledger and %d on the mirror",
			domain.ErrConflict, property.ID, onLedger.TotalTokens, property.TotalTokens)
	}
	return ledger.AdoptedRef(property.ID), nil
}

// settlementKey returns the requested key, refusing one already settled, or a fresh key
func (o *orchestrator) settlementKey(ctx context.Context, key string, kind domain.AuditKind) (string, error) {
	if key == "" {
		return uuid.NewString(), nil
	}

	existing, err := o.store.GetAuditRecord(ctx, key, kind)
	if err != nil {
		return "", err
	}
	if existing != nil {
		return "", fmt.Errorf("%w: %s already settled for key %s by %s", domain.ErrConflict, kind, key, existing.ID)
	}
	return key, nil
}

// loadWithSupply loads a mirror property and checks it has tokens left to mint
func (o *orchestrator) loadWithSupply(ctx context.Context, propertyID string, tokens int64) (*schema.Property, error) {
	property, err := o.store.GetProperty(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, fmt.Errorf("%w: property %s", domain.ErrNotFound, propertyID)
	}
	if tokens > property.RemainingTokens {
		return nil, fmt.Errorf("%w: requested %d tokens but only %d remain for property %s",
			domain.ErrInsufficientSupply, tokens, property.RemainingTokens, propertyID)
	}
	return property, nil
}

// submit runs a ledger submission under the policy of the settlement context.
// A disabled ledger is never called; the settlement continues without a reference.
func (o *orchestrator) submit(
	ctx context.Context,
	sc domain.SettlementContext,
	fn func(context.Context) (ledger.TxRef, error),
) (ledger.TxRef, domain.UnsyncedReason, error) {
	if !o.gateway.Enabled() {
		return "", domain.ReasonLedgerDisabled, nil
	}

	ref, err := fn(ctx)
	if err == nil {
		return ref, domain.ReasonNone, nil
	}

	if o.cfg.PolicyFor(sc) == domain.PolicyStrict {
		return "", domain.ReasonNone, fmt.Errorf("ledger submission failed for %s settlement: %w", sc, err)
	}

	reason := reasonFor(err)
	logger.WarnCtx(ctx, "Ledger submission failed, settling on the mirror only",
		zap.Error(err),
		logger.Context(string(sc)),
		zap.String("reason", string(reason)),
	)
	return "", reason, nil
}

func (o *orchestrator) meta(sc domain.SettlementContext, ref ledger.TxRef, reason domain.UnsyncedReason, orderID string) (datatypes.JSON, error) {
	m := schema.AuditMeta{
		Context: sc,
		Outcome: domain.OutcomeSynced,
		OrderID: orderID,
	}
	if ref == "" {
		m.Outcome = domain.OutcomeMirrorOnly
		m.Reason = reason
	}

	data, err := o.json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal audit meta: %w", err)
	}
	return datatypes.JSON(data), nil
}

// publish emits the settlement event. Failures are logged only, the settlement is committed.
func (o *orchestrator) publish(ctx context.Context, record *schema.AuditRecord, outcome domain.Outcome) {
	event := messaging.NewSettlementEvent(record.Kind, o.clock.Now())
	event.SettlementKey = record.SettlementKey
	event.AuditRecordID = record.ID
	event.UserID = record.UserID
	event.CounterpartyID = record.CounterpartyID
	event.Tokens = record.Amount
	event.LedgerTxRef = record.LedgerTxRef
	event.Outcome = outcome
	if record.PropertyID != nil {
		event.PropertyID = *record.PropertyID
	}

	if err := o.publisher.PublishSettlement(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish settlement event",
			zap.Error(err),
			logger.AuditRecordID(record.ID),
		)
	}
}

// reportOrphan logs a ledger transaction whose mirror settlement did not commit
func reportOrphan(ctx context.Context, ref ledger.TxRef, err error) {
	if ref == "" {
		return
	}
	logger.ErrorCtx(ctx, fmt.Errorf("ledger transaction committed but mirror settlement failed: %w", err),
		logger.TxRef(ref.String()),
	)
}
