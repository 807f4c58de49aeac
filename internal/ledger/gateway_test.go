package ledger_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-estate-ledger/internal/adapter"
	"github.com/feral-file/ff-estate-ledger/internal/domain"
	"github.com/feral-file/ff-estate-ledger/internal/ledger"
	"github.com/feral-file/ff-estate-ledger/internal/logger"
	"github.com/feral-file/ff-estate-ledger/internal/mocks"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: true}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

var enabledConfig = ledger.Config{
	Enabled:           true,
	ConnectionProfile: "profiles/connection.yaml",
	Channel:           "estate-channel",
	Contract:          "estate",
	WalletPath:        "wallet",
	Identity:          "appUser",
}

type testGatewayMocks struct {
	ctrl     *gomock.Controller
	dialer   *mocks.MockFabricDialer
	session  *mocks.MockFabricGateway
	network  *mocks.MockFabricNetwork
	contract *mocks.MockFabricContract
	gateway  ledger.Gateway
}

func setupTestGateway(t *testing.T, cfg ledger.Config) *testGatewayMocks {
	ctrl := gomock.NewController(t)
	tm := &testGatewayMocks{
		ctrl:     ctrl,
		dialer:   mocks.NewMockFabricDialer(ctrl),
		session:  mocks.NewMockFabricGateway(ctrl),
		network:  mocks.NewMockFabricNetwork(ctrl),
		contract: mocks.NewMockFabricContract(ctrl),
	}
	tm.gateway = ledger.NewGateway(cfg, tm.dialer, adapter.NewJSON())
	return tm
}

func tearDownTestGateway(tm *testGatewayMocks) {
	tm.ctrl.Finish()
}

// expectSession expects one full connect, network lookup and close
func (tm *testGatewayMocks) expectSession() {
	tm.dialer.EXPECT().
		Connect(adapter.FabricProfile{
			ConnectionProfile: enabledConfig.ConnectionProfile,
			WalletPath:        enabledConfig.WalletPath,
			Identity:          enabledConfig.Identity,
		}).
		Return(tm.session, nil)
	tm.session.EXPECT().GetNetwork(enabledConfig.Channel).Return(tm.network, nil)
	tm.network.EXPECT().GetContract(enabledConfig.Contract).Return(tm.contract)
	tm.session.EXPECT().Close().Times(1)
}

func TestGateway_Disabled(t *testing.T) {
	tm := setupTestGateway(t, ledger.Config{Enabled: false})
	defer tearDownTestGateway(tm)

	ctx := context.Background()
	assert.False(t, tm.gateway.Enabled())

	// no dialer expectation: any network attempt fails the test
	_, err := tm.gateway.SubmitInit(ctx, "P1", 100)
	assert.ErrorIs(t, err, domain.ErrLedgerDisabled)
	_, err = tm.gateway.SubmitMint(ctx, "P1", "U1", 10, "mint-1")
	assert.ErrorIs(t, err, domain.ErrLedgerDisabled)
	_, err = tm.gateway.SubmitTransfer(ctx, "P1", "U1", "U2", 10, "transfer-1")
	assert.ErrorIs(t, err, domain.ErrLedgerDisabled)
	_, err = tm.gateway.EvaluateRead(ctx, ledger.FnGetHoldings, "U1")
	assert.ErrorIs(t, err, domain.ErrLedgerDisabled)
	_, err = tm.gateway.GetHoldings(ctx, "U1")
	assert.ErrorIs(t, err, domain.ErrLedgerDisabled)
}

func TestGateway_SubmitMint(t *testing.T) {
	tm := setupTestGateway(t, enabledConfig)
	defer tearDownTestGateway(tm)

	tm.expectSession()
	tm.contract.EXPECT().
		Submit(ledger.FnMintTokens, "P1", "U1", "100", "order:O1").
		Return(nil, "tx-abc", nil)

	ref, err := tm.gateway.SubmitMint(context.Background(), "P1", "U1", 100, "order:O1")
	require.NoError(t, err)
	assert.Equal(t, ledger.TxRef("tx-abc"), ref)
}

func TestGateway_SubmitTransferAndInit(t *testing.T) {
	tm := setupTestGateway(t, enabledConfig)
	defer tearDownTestGateway(tm)

	tm.expectSession()
	tm.contract.EXPECT().
		Submit(ledger.FnTransferTokens, "P1", "U1", "U2", "40", "transfer-1").
		Return(nil, "tx-transfer", nil)

	ref, err := tm.gateway.SubmitTransfer(context.Background(), "P1", "U1", "U2", 40, "transfer-1")
	require.NoError(t, err)
	assert.Equal(t, "tx-transfer", ref.String())

	tm.expectSession()
	tm.contract.EXPECT().
		Submit(ledger.FnInitProperty, "P1", "1000").
		Return(nil, "tx-init", nil)

	ref, err = tm.gateway.SubmitInit(context.Background(), "P1", 1000)
	require.NoError(t, err)
	assert.Equal(t, "tx-init", ref.String())
}

func TestGateway_ConnectFailure(t *testing.T) {
	tm := setupTestGateway(t, enabledConfig)
	defer tearDownTestGateway(tm)

	tm.dialer.EXPECT().Connect(gomock.Any()).Return(nil, errors.New("dial tcp: connection refused"))

	_, err := tm.gateway.SubmitMint(context.Background(), "P1", "U1", 100, "order:O1")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrLedgerUnavailable)
}

func TestGateway_NetworkFailureStillCloses(t *testing.T) {
	tm := setupTestGateway(t, enabledConfig)
	defer tearDownTestGateway(tm)

	tm.dialer.EXPECT().Connect(gomock.Any()).Return(tm.session, nil)
	tm.session.EXPECT().GetNetwork(enabledConfig.Channel).Return(nil, errors.New("channel not joined"))
	tm.session.EXPECT().Close().Times(1)

	_, err := tm.gateway.GetHoldings(context.Background(), "U1")
	assert.ErrorIs(t, err, domain.ErrLedgerUnavailable)
}

func TestGateway_SubmitRejections(t *testing.T) {
	tests := []struct {
		name     string
		sdkErr   string
		expected error
	}{
		{
			name:     "insufficient supply",
			sdkErr:   "Multiple errors occurred: - Transaction processing for endorser [peer0:7051]: Chaincode status Code: (500) UNKNOWN. Description: INSUFFICIENT_SUPPLY: requested 10 tokens but only 5 remain for property P1",
			expected: domain.ErrInsufficientSupply,
		},
		{
			name:     "not found",
			sdkErr:   "Chaincode status Code: (500) UNKNOWN. Description: NOT_FOUND: property P9 does not exist",
			expected: domain.ErrNotFound,
		},
		{
			name:     "insufficient balance",
			sdkErr:   "Description: INSUFFICIENT_BALANCE: user U1 holds 60 tokens of property P1, cannot transfer 1000",
			expected: domain.ErrInsufficientBalance,
		},
		{
			name:     "already exists",
			sdkErr:   "Description: ALREADY_EXISTS: property P1 already exists",
			expected: domain.ErrAlreadyExists,
		},
		{
			name:     "invalid amount",
			sdkErr:   "Description: INVALID_AMOUNT: tokens must be positive, got 0",
			expected: domain.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := setupTestGateway(t, enabledConfig)
			defer tearDownTestGateway(tm)

			tm.expectSession()
			tm.contract.EXPECT().
				Submit(ledger.FnMintTokens, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				Return(nil, "", errors.New(tt.sdkErr))

			_, err := tm.gateway.SubmitMint(context.Background(), "P1", "U1", 10, "mint-1")
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrLedgerRejected)
			assert.ErrorIs(t, err, tt.expected)
			assert.False(t, domain.IsLedgerFailure(err))
		})
	}
}

func TestGateway_SubmitTransportError(t *testing.T) {
	tm := setupTestGateway(t, enabledConfig)
	defer tearDownTestGateway(tm)

	tm.expectSession()
	tm.contract.EXPECT().
		Submit(ledger.FnMintTokens, "P1", "U1", "10", "mint-1").
		Return(nil, "", errors.New("failed to submit: rpc error: code = Unavailable desc = connection closed"))

	_, err := tm.gateway.SubmitMint(context.Background(), "P1", "U1", 10, "mint-1")
	assert.ErrorIs(t, err, domain.ErrLedgerUnavailable)
	assert.NotErrorIs(t, err, domain.ErrLedgerRejected)
}

func TestGateway_CanceledContext(t *testing.T) {
	tm := setupTestGateway(t, enabledConfig)
	defer tearDownTestGateway(tm)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := tm.gateway.SubmitMint(ctx, "P1", "U1", 10, "mint-1")
	assert.ErrorIs(t, err, domain.ErrLedgerUnavailable)
}

func TestGateway_GetBalance(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected int64
		wantErr  bool
	}{
		{name: "number", raw: "100", expected: 100},
		{name: "zero", raw: "0", expected: 0},
		{name: "empty result", raw: "", expected: 0},
		{name: "garbage", raw: "abc", wantErr: true},
		{name: "negative", raw: "-3", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tm := setupTestGateway(t, enabledConfig)
			defer tearDownTestGateway(tm)

			tm.expectSession()
			tm.contract.EXPECT().Evaluate(ledger.FnGetBalance, "U1", "P1").Return([]byte(tt.raw), nil)

			balance, err := tm.gateway.GetBalance(context.Background(), "U1", "P1")
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrLedgerUnavailable)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, balance)
		})
	}
}

func TestGateway_GetHoldings(t *testing.T) {
	t.Run("typed result", func(t *testing.T) {
		tm := setupTestGateway(t, enabledConfig)
		defer tearDownTestGateway(tm)

		tm.expectSession()
		tm.contract.EXPECT().Evaluate(ledger.FnGetHoldings, "U1").
			Return([]byte(`[{"userId":"U1","propertyId":"P1","tokens":60},{"userId":"U1","propertyId":"P2","tokens":5}]`), nil)

		holdings, err := tm.gateway.GetHoldings(context.Background(), "U1")
		require.NoError(t, err)
		assert.Equal(t, []ledger.Holding{
			{UserID: "U1", PropertyID: "P1", Tokens: 60},
			{UserID: "U1", PropertyID: "P2", Tokens: 5},
		}, holdings)
	})

	t.Run("rejects negative tokens", func(t *testing.T) {
		tm := setupTestGateway(t, enabledConfig)
		defer tearDownTestGateway(tm)

		tm.expectSession()
		tm.contract.EXPECT().Evaluate(ledger.FnGetHoldings, "U1").
			Return([]byte(`[{"userId":"U1","propertyId":"P1","tokens":-1}]`), nil)

		_, err := tm.gateway.GetHoldings(context.Background(), "U1")
		assert.ErrorIs(t, err, domain.ErrLedgerUnavailable)
	})

	t.Run("rejects other user's holding", func(t *testing.T) {
		tm := setupTestGateway(t, enabledConfig)
		defer tearDownTestGateway(tm)

		tm.expectSession()
		tm.contract.EXPECT().Evaluate(ledger.FnGetHoldings, "U1").
			Return([]byte(`[{"userId":"U10","propertyId":"P1","tokens":1}]`), nil)

		_, err := tm.gateway.GetHoldings(context.Background(), "U1")
		assert.ErrorIs(t, err, domain.ErrLedgerUnavailable)
	})

	t.Run("malformed json", func(t *testing.T) {
		tm := setupTestGateway(t, enabledConfig)
		defer tearDownTestGateway(tm)

		tm.expectSession()
		tm.contract.EXPECT().Evaluate(ledger.FnGetHoldings, "U1").Return([]byte(`{"not":"a list"}`), nil)

		_, err := tm.gateway.GetHoldings(context.Background(), "U1")
		assert.ErrorIs(t, err, domain.ErrLedgerUnavailable)
	})
}

func TestGateway_GetProperty(t *testing.T) {
	t.Run("typed result", func(t *testing.T) {
		tm := setupTestGateway(t, enabledConfig)
		defer tearDownTestGateway(tm)

		tm.expectSession()
		tm.contract.EXPECT().Evaluate(ledger.FnGetProperty, "P1").
			Return([]byte(`{"id":"P1","totalTokens":1000,"remainingTokens":900}`), nil)

		p, err := tm.gateway.GetProperty(context.Background(), "P1")
		require.NoError(t, err)
		assert.Equal(t, int64(100), p.IssuedTokens())
	})

	t.Run("remaining above total", func(t *testing.T) {
		tm := setupTestGateway(t, enabledConfig)
		defer tearDownTestGateway(tm)

		tm.expectSession()
		tm.contract.EXPECT().Evaluate(ledger.FnGetProperty, "P1").
			Return([]byte(`{"id":"P1","totalTokens":10,"remainingTokens":11}`), nil)

		_, err := tm.gateway.GetProperty(context.Background(), "P1")
		assert.ErrorIs(t, err, domain.ErrLedgerUnavailable)
	})

	t.Run("not on ledger", func(t *testing.T) {
		tm := setupTestGateway(t, enabledConfig)
		defer tearDownTestGateway(tm)

		tm.expectSession()
		tm.contract.EXPECT().Evaluate(ledger.FnGetProperty, "P9").
			Return(nil, errors.New("Description: NOT_FOUND: property P9 does not exist"))

		_, err := tm.gateway.GetProperty(context.Background(), "P9")
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.ErrorIs(t, err, domain.ErrLedgerRejected)
	})
}

func TestGateway_GetHoldingHistory(t *testing.T) {
	tm := setupTestGateway(t, enabledConfig)
	defer tearDownTestGateway(tm)

	tm.expectSession()
	tm.contract.EXPECT().Evaluate(ledger.FnGetHoldingHistory, "U1", "P1").
		Return([]byte(`[{"txId":"tx1","timestamp":1700000000,"tokens":100},{"txId":"tx2","timestamp":1700000100,"tokens":60}]`), nil)

	entries, err := tm.gateway.GetHoldingHistory(context.Background(), "U1", "P1")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, ledger.TxRef("tx1"), entries[0].TxRef)
	assert.Equal(t, time.Unix(1700000000, 0).UTC(), entries[0].Timestamp)
	assert.Equal(t, int64(60), entries[1].Tokens)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     ledger.Config
		wantErr string
	}{
		{
			name: "disabled needs nothing",
			cfg:  ledger.Config{Enabled: false},
		},
		{
			name: "enabled and complete",
			cfg:  enabledConfig,
		},
		{
			name:    "enabled without channel and identity",
			cfg:     ledger.Config{Enabled: true, ConnectionProfile: "p.yaml", Contract: "estate", WalletPath: "wallet"},
			wantErr: "ledger.channel, ledger.identity",
		},
		{
			name: "cert without key",
			cfg: func() ledger.Config {
				c := enabledConfig
				c.CertPath = "cert.pem"
				c.MSPID = "Org1MSP"
				return c
			}(),
			wantErr: "must be set together",
		},
		{
			name: "cert without msp",
			cfg: func() ledger.Config {
				c := enabledConfig
				c.CertPath = "cert.pem"
				c.KeyPath = "key.pem"
				return c
			}(),
			wantErr: "msp_id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
