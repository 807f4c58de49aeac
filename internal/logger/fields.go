package logger

import "go.uber.org/zap"

// Field keys shared by settlement, reconciliation and resync logs
const (
	KeyPropertyID    = "property_id"
	KeyUserID        = "user_id"
	KeySettlementKey = "settlement_key"
	KeyAuditRecordID = "audit_record_id"
	KeyTxRef         = "ledger_tx_ref"
	KeyContext       = "settlement_context"
	KeyCategory      = "category"
)

func PropertyID(id string) zap.Field {
	return zap.String(KeyPropertyID, id)
}

func UserID(id string) zap.Field {
	return zap.String(KeyUserID, id)
}

func SettlementKey(key string) zap.Field {
	return zap.String(KeySettlementKey, key)
}

func AuditRecordID(id string) zap.Field {
	return zap.String(KeyAuditRecordID, id)
}

// TxRef logs a ledger reference, empty when the settlement is mirror-only
func TxRef(ref string) zap.Field {
	return zap.String(KeyTxRef, ref)
}

func Context(c string) zap.Field {
	return zap.String(KeyContext, c)
}

func Category(c string) zap.Field {
	return zap.String(KeyCategory, c)
}
