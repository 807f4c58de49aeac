package ledger

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/feral-file/ff-estate-ledger/internal/adapter"
	"github.com/feral-file/ff-estate-ledger/internal/domain"
	"github.com/feral-file/ff-estate-ledger/internal/logger"
)

// Gateway submits and evaluates contract operations, one gateway session per call
//
//go:generate mockgen -source=gateway.go -destination=../mocks/ledger_gateway.go -package=mocks -mock_names=Gateway=MockLedgerGateway
type Gateway interface {
	// Enabled reports whether the ledger integration is switched on
	Enabled() bool

	// SubmitInit creates a property's supply record on the ledger
	SubmitInit(ctx context.Context, propertyID string, totalTokens int64) (TxRef, error)

	// SubmitMint issues tokens of a property to a user. The ledger applies a settlement key once.
	SubmitMint(ctx context.Context, propertyID, userID string, tokens int64, settlementKey string) (TxRef, error)

	// SubmitTransfer moves tokens of a property between users
	SubmitTransfer(ctx context.Context, propertyID, fromUserID, toUserID string, tokens int64, settlementKey string) (TxRef, error)

	// EvaluateRead runs a read-only contract function and returns its raw result
	EvaluateRead(ctx context.Context, fn string, args ...string) ([]byte, error)

	// GetBalance returns a user's tokens of a property, 0 when no holding exists
	GetBalance(ctx context.Context, userID, propertyID string) (int64, error)

	// GetHoldings returns every holding of a user
	GetHoldings(ctx context.Context, userID string) ([]Holding, error)

	// GetProperty returns a property's supply record
	GetProperty(ctx context.Context, propertyID string) (*Property, error)

	// GetHoldingHistory returns the committed versions of a holding, oldest first
	GetHoldingHistory(ctx context.Context, userID, propertyID string) ([]HistoryEntry, error)
}

type gateway struct {
	cfg    Config
	dialer adapter.FabricDialer
	json   adapter.JSON
}

// NewGateway creates a gateway over an immutable configuration
func NewGateway(cfg Config, dialer adapter.FabricDialer, jsonAdapter adapter.JSON) Gateway {
	return &gateway{
		cfg:    cfg,
		dialer: dialer,
		json:   jsonAdapter,
	}
}

func (g *gateway) Enabled() bool {
	return g.cfg.Enabled
}

func (g *gateway) profile() adapter.FabricProfile {
	return adapter.FabricProfile{
		ConnectionProfile: g.cfg.ConnectionProfile,
		WalletPath:        g.cfg.WalletPath,
		Identity:          g.cfg.Identity,
		MSPID:             g.cfg.MSPID,
		CertPath:          g.cfg.CertPath,
		KeyPath:           g.cfg.KeyPath,
	}
}

// withContract opens a session, hands the contract to fn and always closes the session
func (g *gateway) withContract(ctx context.Context, fn string, call func(adapter.FabricContract) error) error {
	if !g.cfg.Enabled {
		return domain.ErrLedgerDisabled
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrLedgerUnavailable, fn, err)
	}

	gw, err := g.dialer.Connect(g.profile())
	if err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrLedgerUnavailable, fn, err)
	}
	defer gw.Close()

	network, err := gw.GetNetwork(g.cfg.Channel)
	if err != nil {
		return fmt.Errorf("%w: %s: failed to get network %s: %v", domain.ErrLedgerUnavailable, fn, g.cfg.Channel, err)
	}

	return call(network.GetContract(g.cfg.Contract))
}

func (g *gateway) submit(ctx context.Context, fn string, args ...string) (TxRef, error) {
	var ref TxRef
	err := g.withContract(ctx, fn, func(c adapter.FabricContract) error {
		_, txID, err := c.Submit(fn, args...)
		if err != nil {
			return classifyError(fn, err)
		}
		ref = TxRef(txID)
		return nil
	})
	if err != nil {
		return "", err
	}

	logger.DebugCtx(ctx, "Ledger transaction committed",
		zap.String("function", fn),
		zap.String("tx_ref", ref.String()),
	)
	return ref, nil
}

func (g *gateway) SubmitInit(ctx context.Context, propertyID string, totalTokens int64) (TxRef, error) {
	return g.submit(ctx, FnInitProperty, propertyID, formatAmount(totalTokens))
}

func (g *gateway) SubmitMint(ctx context.Context, propertyID, userID string, tokens int64, settlementKey string) (TxRef, error) {
	return g.submit(ctx, FnMintTokens, propertyID, userID, formatAmount(tokens), settlementKey)
}

func (g *gateway) SubmitTransfer(ctx context.Context, propertyID, fromUserID, toUserID string, tokens int64, settlementKey string) (TxRef, error) {
	return g.submit(ctx, FnTransferTokens, propertyID, fromUserID, toUserID, formatAmount(tokens), settlementKey)
}

func (g *gateway) EvaluateRead(ctx context.Context, fn string, args ...string) ([]byte, error) {
	var result []byte
	err := g.withContract(ctx, fn, func(c adapter.FabricContract) error {
		data, err := c.Evaluate(fn, args...)
		if err != nil {
			return classifyError(fn, err)
		}
		result = data
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (g *gateway) GetBalance(ctx context.Context, userID, propertyID string) (int64, error) {
	data, err := g.EvaluateRead(ctx, FnGetBalance, userID, propertyID)
	if err != nil {
		return 0, err
	}

	raw := strings.TrimSpace(string(data))
	if raw == "" {
		return 0, nil
	}
	balance, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || balance < 0 {
		return 0, malformed(FnGetBalance, fmt.Errorf("balance %q", raw))
	}
	return balance, nil
}

func (g *gateway) GetHoldings(ctx context.Context, userID string) ([]Holding, error) {
	data, err := g.EvaluateRead(ctx, FnGetHoldings, userID)
	if err != nil {
		return nil, err
	}

	holdings := make([]Holding, 0)
	if len(strings.TrimSpace(string(data))) == 0 {
		return holdings, nil
	}
	if err := g.json.Unmarshal(data, &holdings); err != nil {
		return nil, malformed(FnGetHoldings, err)
	}
	for _, h := range holdings {
		if err := h.validate(); err != nil {
			return nil, malformed(FnGetHoldings, err)
		}
		if h.UserID != userID {
			return nil, malformed(FnGetHoldings, fmt.Errorf("holding of %s returned for %s", h.UserID, userID))
		}
	}
	return holdings, nil
}

func (g *gateway) GetProperty(ctx context.Context, propertyID string) (*Property, error) {
	data, err := g.EvaluateRead(ctx, FnGetProperty, propertyID)
	if err != nil {
		return nil, err
	}

	var p Property
	if err := g.json.Unmarshal(data, &p); err != nil {
		return nil, malformed(FnGetProperty, err)
	}
	if err := p.validate(); err != nil {
		return nil, malformed(FnGetProperty, err)
	}
	if p.ID != propertyID {
		return nil, malformed(FnGetProperty, fmt.Errorf("property %s returned for %s", p.ID, propertyID))
	}
	return &p, nil
}

func (g *gateway) GetHoldingHistory(ctx context.Context, userID, propertyID string) ([]HistoryEntry, error) {
	data, err := g.EvaluateRead(ctx, FnGetHoldingHistory, userID, propertyID)
	if err != nil {
		return nil, err
	}

	var payload []historyEntryPayload
	if len(strings.TrimSpace(string(data))) > 0 {
		if err := g.json.Unmarshal(data, &payload); err != nil {
			return nil, malformed(FnGetHoldingHistory, err)
		}
	}

	entries := make([]HistoryEntry, 0, len(payload))
	for _, p := range payload {
		entry, err := p.toEntry()
		if err != nil {
			return nil, malformed(FnGetHoldingHistory, err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func formatAmount(n int64) string {
	return strconv.FormatInt(n, 10)
}

// malformed reports a ledger result that does not have the expected shape
func malformed(fn string, err error) error {
	return fmt.Errorf("%w: %s returned a malformed result: %v", domain.ErrLedgerUnavailable, fn, err)
}
