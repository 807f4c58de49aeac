package contract

import (
	"encoding/json"
	"fmt"

	"github.com/hyperledger/fabric-contract-api-go/contractapi"
)

// LedgerContract holds property token supply and per-user holdings
type LedgerContract struct {
	contractapi.Contract
}

// NewLedgerContract creates the contract with its ledger name set
func NewLedgerContract() *LedgerContract {
	c := &LedgerContract{}
	c.Name = "estate"
	c.Info.Title = "estate-ledger"
	c.Info.Version = "1.0.0"
	return c
}

// InitProperty creates the supply record of a property with all tokens unissued
func (c *LedgerContract) InitProperty(ctx contractapi.TransactionContextInterface, propertyID string, totalTokens int64) error {
	if err := validateID("propertyId", propertyID); err != nil {
		return err
	}
	if totalTokens <= 0 {
		return newError(CodeInvalidAmount, "totalTokens must be positive, got %d", totalTokens)
	}

	existing, err := ctx.GetStub().GetState(PropertyKey(propertyID))
	if err != nil {
		return fmt.Errorf("failed to read property %s: %w", propertyID, err)
	}
	if existing != nil {
		return newError(CodeAlreadyExists, "property %s already exists", propertyID)
	}

	return c.putProperty(ctx, &Property{
		ID:              propertyID,
		TotalTokens:     totalTokens,
		RemainingTokens: totalTokens,
	})
}

// MintTokens issues tokens of a property to a user. A settlement key that was already applied
// makes the call a no-op; an empty key applies the mint unconditionally.
func (c *LedgerContract) MintTokens(ctx contractapi.TransactionContextInterface, propertyID string, userID string, tokens int64, settlementKey string) error {
	if err := validateID("propertyId", propertyID); err != nil {
		return err
	}
	if err := validateID("userId", userID); err != nil {
		return err
	}

	applied, err := c.settled(ctx, OpMint, settlementKey, propertyID, tokens)
	if err != nil || applied {
		return err
	}

	property, err := c.readProperty(ctx, propertyID)
	if err != nil {
		return err
	}
	if property == nil {
		return newError(CodeNotFound, "property %s does not exist", propertyID)
	}
	if tokens <= 0 {
		return newError(CodeInvalidAmount, "tokens must be positive, got %d", tokens)
	}
	if tokens > property.RemainingTokens {
		return newError(CodeInsufficientSupply, "requested %d tokens but only %d remain for property %s",
			tokens, property.RemainingTokens, propertyID)
	}

	holding, err := c.readHolding(ctx, userID, propertyID)
	if err != nil {
		return err
	}
	if holding == nil {
		holding = &Holding{UserID: userID, PropertyID: propertyID}
	}

	property.RemainingTokens -= tokens
	holding.Tokens += tokens

	if err := c.putProperty(ctx, property); err != nil {
		return err
	}
	if err := c.putHolding(ctx, holding); err != nil {
		return err
	}
	if err := c.markSettled(ctx, OpMint, settlementKey, propertyID, tokens); err != nil {
		return err
	}

	return c.emit(ctx, EventTokenMinted, TokenMinted{
		PropertyID: propertyID,
		UserID:     userID,
		Tokens:     tokens,
	})
}

// TransferTokens moves tokens of a property between two users. Settlement keys guard it the way
// they guard MintTokens.
func (c *LedgerContract) TransferTokens(ctx contractapi.TransactionContextInterface, propertyID string, fromUserID string, toUserID string, tokens int64, settlementKey string) error {
	if err := validateID("propertyId", propertyID); err != nil {
		return err
	}
	if err := validateID("fromUserId", fromUserID); err != nil {
		return err
	}
	if err := validateID("toUserId", toUserID); err != nil {
		return err
	}
	if tokens <= 0 {
		return newError(CodeInvalidAmount, "tokens must be positive, got %d", tokens)
	}
	if fromUserID == toUserID {
		return newError(CodeInvalidArgument, "sender and receiver must differ")
	}

	applied, err := c.settled(ctx, OpTransfer, settlementKey, propertyID, tokens)
	if err != nil || applied {
		return err
	}

	sender, err := c.readHolding(ctx, fromUserID, propertyID)
	if err != nil {
		return err
	}
	if sender == nil {
		return newError(CodeNotFound, "user %s holds no tokens of property %s", fromUserID, propertyID)
	}
	if tokens > sender.Tokens {
		return newError(CodeInsufficientBalance, "user %s holds %d tokens of property %s, cannot transfer %d",
			fromUserID, sender.Tokens, propertyID, tokens)
	}

	receiver, err := c.readHolding(ctx, toUserID, propertyID)
	if err != nil {
		return err
	}
	if receiver == nil {
		receiver = &Holding{UserID: toUserID, PropertyID: propertyID}
	}

	sender.Tokens -= tokens
	receiver.Tokens += tokens

	if err := c.putHolding(ctx, sender); err != nil {
		return err
	}
	if err := c.putHolding(ctx, receiver); err != nil {
		return err
	}
	if err := c.markSettled(ctx, OpTransfer, settlementKey, propertyID, tokens); err != nil {
		return err
	}

	return c.emit(ctx, EventTokenTransferred, TokenTransferred{
		PropertyID: propertyID,
		FromUserID: fromUserID,
		ToUserID:   toUserID,
		Tokens:     tokens,
	})
}

// GetBalance returns the tokens a user holds of a property, 0 when no holding exists
func (c *LedgerContract) GetBalance(ctx contractapi.TransactionContextInterface, userID string, propertyID string) (int64, error) {
	holding, err := c.readHolding(ctx, userID, propertyID)
	if err != nil {
		return 0, err
	}
	if holding == nil {
		return 0, nil
	}
	return holding.Tokens, nil
}

// GetHoldings returns every holding of a user
func (c *LedgerContract) GetHoldings(ctx contractapi.TransactionContextInterface, userID string) ([]Holding, error) {
	if err := validateID("userId", userID); err != nil {
		return nil, err
	}

	start, end := HoldingRange(userID)
	iter, err := ctx.GetStub().GetStateByRange(start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to scan holdings of %s: %w", userID, err)
	}
	defer iter.Close()

	holdings := make([]Holding, 0)
	for iter.HasNext() {
		kv, err := iter.Next()
		if err != nil {
			return nil, fmt.Errorf("failed to iterate holdings of %s: %w", userID, err)
		}

		var h Holding
		if err := json.Unmarshal(kv.Value, &h); err != nil {
			return nil, fmt.Errorf("failed to decode holding %s: %w", kv.Key, err)
		}
		holdings = append(holdings, h)
	}

	return holdings, nil
}

// GetProperty returns the supply record of a property
func (c *LedgerContract) GetProperty(ctx contractapi.TransactionContextInterface, propertyID string) (*Property, error) {
	property, err := c.readProperty(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if property == nil {
		return nil, newError(CodeNotFound, "property %s does not exist", propertyID)
	}
	return property, nil
}

// GetHoldingHistory returns every committed version of a user's holding of a property, oldest first
func (c *LedgerContract) GetHoldingHistory(ctx contractapi.TransactionContextInterface, userID string, propertyID string) ([]HoldingHistoryEntry, error) {
	if err := validateID("userId", userID); err != nil {
		return nil, err
	}
	if err := validateID("propertyId", propertyID); err != nil {
		return nil, err
	}

	iter, err := ctx.GetStub().GetHistoryForKey(HoldingKey(userID, propertyID))
	if err != nil {
		return nil, fmt.Errorf("failed to read history of %s/%s: %w", userID, propertyID, err)
	}
	defer iter.Close()

	entries := make([]HoldingHistoryEntry, 0)
	for iter.HasNext() {
		mod, err := iter.Next()
		if err != nil {
			return nil, fmt.Errorf("failed to iterate history of %s/%s: %w", userID, propertyID, err)
		}

		entry := HoldingHistoryEntry{
			TxID:    mod.GetTxId(),
			Deleted: mod.GetIsDelete(),
		}
		if ts := mod.GetTimestamp(); ts != nil {
			entry.Timestamp = ts.GetSeconds()
		}
		if !mod.GetIsDelete() && len(mod.GetValue()) > 0 {
			var h Holding
			if err := json.Unmarshal(mod.GetValue(), &h); err != nil {
				return nil, fmt.Errorf("failed to decode holding version %s: %w", mod.GetTxId(), err)
			}
			entry.Tokens = h.Tokens
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

// settled reports whether settlementKey was already applied by op. A marker with other terms
// is a rejection.
func (c *LedgerContract) settled(ctx contractapi.TransactionContextInterface, op, settlementKey, propertyID string, tokens int64) (bool, error) {
	if settlementKey == "" {
		return false, nil
	}

	data, err := ctx.GetStub().GetState(SettlementKey(op, settlementKey))
	if err != nil {
		return false, fmt.Errorf("failed to read settlement %s: %w", settlementKey, err)
	}
	if data == nil {
		return false, nil
	}

	var marker Settlement
	if err := json.Unmarshal(data, &marker); err != nil {
		return false, fmt.Errorf("failed to decode settlement %s: %w", settlementKey, err)
	}
	if marker.PropertyID != propertyID || marker.Tokens != tokens {
		return false, newError(CodeAlreadyExists, "settlement %s was applied to %d tokens of property %s",
			settlementKey, marker.Tokens, marker.PropertyID)
	}
	return true, nil
}

func (c *LedgerContract) markSettled(ctx contractapi.TransactionContextInterface, op, settlementKey, propertyID string, tokens int64) error {
	if settlementKey == "" {
		return nil
	}

	data, err := json.Marshal(Settlement{
		Key:        settlementKey,
		Op:         op,
		PropertyID: propertyID,
		Tokens:     tokens,
		TxID:       ctx.GetStub().GetTxID(),
	})
	if err != nil {
		return fmt.Errorf("failed to encode settlement %s: %w", settlementKey, err)
	}
	if err := ctx.GetStub().PutState(SettlementKey(op, settlementKey), data); err != nil {
		return fmt.Errorf("failed to write settlement %s: %w", settlementKey, err)
	}
	return nil
}

func (c *LedgerContract) readProperty(ctx contractapi.TransactionContextInterface, propertyID string) (*Property, error) {
	data, err := ctx.GetStub().GetState(PropertyKey(propertyID))
	if err != nil {
		return nil, fmt.Errorf("failed to read property %s: %w", propertyID, err)
	}
	if data == nil {
		return nil, nil
	}

	var p Property
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to decode property %s: %w", propertyID, err)
	}
	return &p, nil
}

func (c *LedgerContract) readHolding(ctx contractapi.TransactionContextInterface, userID, propertyID string) (*Holding, error) {
	data, err := ctx.GetStub().GetState(HoldingKey(userID, propertyID))
	if err != nil {
		return nil, fmt.Errorf("failed to read holding %s/%s: %w", userID, propertyID, err)
	}
	if data == nil {
		return nil, nil
	}

	var h Holding
	if err := json.Unmarshal(data, &h); err != nil {
		return nil, fmt.Errorf("failed to decode holding %s/%s: %w", userID, propertyID, err)
	}
	return &h, nil
}

func (c *LedgerContract) putProperty(ctx contractapi.TransactionContextInterface, p *Property) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to encode property %s: %w", p.ID, err)
	}
	if err := ctx.GetStub().PutState(PropertyKey(p.ID), data); err != nil {
		return fmt.Errorf("failed to write property %s: %w", p.ID, err)
	}
	return nil
}

func (c *LedgerContract) putHolding(ctx contractapi.TransactionContextInterface, h *Holding) error {
	data, err := json.Marshal(h)
	if err != nil {
		return fmt.Errorf("failed to encode holding %s/%s: %w", h.UserID, h.PropertyID, err)
	}
	if err := ctx.GetStub().PutState(HoldingKey(h.UserID, h.PropertyID), data); err != nil {
		return fmt.Errorf("failed to write holding %s/%s: %w", h.UserID, h.PropertyID, err)
	}
	return nil
}

func (c *LedgerContract) emit(ctx contractapi.TransactionContextInterface, name string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode %s event: %w", name, err)
	}
	if err := ctx.GetStub().SetEvent(name, data); err != nil {
		return fmt.Errorf("failed to emit %s event: %w", name, err)
	}
	return nil
}
