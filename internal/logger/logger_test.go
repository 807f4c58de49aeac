package logger

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestInitialize(t *testing.T) {
	require.NoError(t, Initialize(Config{Debug: true}))
	assert.True(t, Default().Core().Enabled(zapcore.DebugLevel))

	require.NoError(t, Initialize(Config{Debug: false}))
	assert.False(t, Default().Core().Enabled(zapcore.DebugLevel))
	assert.True(t, Default().Core().Enabled(zapcore.InfoLevel))
}

func TestHelpersWriteFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	prev := log
	log = zap.New(core)
	t.Cleanup(func() { log = prev })

	ctx := context.Background()
	InfoCtx(ctx, "Mint settled", PropertyID("P1"), UserID("U1"), TxRef("tx1"))
	WarnCtx(ctx, "Ledger unavailable", Context("order"))
	ErrorCtx(ctx, errors.New("boom"), AuditRecordID("01HX"))
	Error(nil)

	entries := logs.All()
	require.Len(t, entries, 4)
	assert.Equal(t, "Mint settled", entries[0].Message)
	assert.Equal(t, "P1", entries[0].ContextMap()[KeyPropertyID])
	assert.Equal(t, "tx1", entries[0].ContextMap()[KeyTxRef])
	assert.Equal(t, "order", entries[1].ContextMap()[KeyContext])
	assert.Equal(t, "boom", entries[2].Message)
	assert.Equal(t, "error occurred", entries[3].Message)
}
