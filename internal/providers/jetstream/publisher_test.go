package jetstream_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-estate-ledger/internal/adapter"
	"github.com/feral-file/ff-estate-ledger/internal/domain"
	"github.com/feral-file/ff-estate-ledger/internal/messaging"
	"github.com/feral-file/ff-estate-ledger/internal/mocks"
	js "github.com/feral-file/ff-estate-ledger/internal/providers/jetstream"
)

var testConfig = js.Config{
	URL:            "nats://localhost:4222",
	StreamName:     "SETTLEMENTS",
	MaxReconnects:  3,
	ReconnectWait:  time.Second,
	ConnectionName: "estate-ledger-test",
}

type testPublisherMocks struct {
	ctrl   *gomock.Controller
	natsJS *mocks.MockNatsJetStream
	conn   *mocks.MockNatsConn
	stream *mocks.MockJetStream
}

func setupTestPublisher(t *testing.T) *testPublisherMocks {
	ctrl := gomock.NewController(t)
	return &testPublisherMocks{
		ctrl:   ctrl,
		natsJS: mocks.NewMockNatsJetStream(ctrl),
		conn:   mocks.NewMockNatsConn(ctrl),
		stream: mocks.NewMockJetStream(ctrl),
	}
}

func (m *testPublisherMocks) expectConnect() {
	m.natsJS.EXPECT().Connect(testConfig.URL, gomock.Any()).Return(m.conn, m.stream, nil)
	m.stream.EXPECT().EnsureStream(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cfg jetstream.StreamConfig) error {
			if cfg.Name != "SETTLEMENTS" || len(cfg.Subjects) != 1 || cfg.Subjects[0] != "settlements.>" {
				return errors.New("unexpected stream config")
			}
			return nil
		})
}

func testEvent() *messaging.SettlementEvent {
	ref := "tx-1"
	event := messaging.NewSettlementEvent(domain.AuditKindMint, time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC))
	event.SettlementKey = "mint-1"
	event.AuditRecordID = "01JABCDEFGHJKMNPQRSTVWXYZ0"
	event.PropertyID = "P1"
	event.UserID = "U1"
	event.Tokens = 100
	event.LedgerTxRef = &ref
	event.Outcome = domain.OutcomeSynced
	return event
}

func TestNewPublisher(t *testing.T) {
	t.Run("connect failure", func(t *testing.T) {
		m := setupTestPublisher(t)
		m.natsJS.EXPECT().Connect(testConfig.URL, gomock.Any()).Return(nil, nil, errors.New("no servers available"))

		p, err := js.NewPublisher(context.Background(), testConfig, m.natsJS, adapter.NewJSON(), adapter.NewJCS())
		assert.Error(t, err)
		assert.Nil(t, p)
	})

	t.Run("stream failure closes the connection", func(t *testing.T) {
		m := setupTestPublisher(t)
		m.natsJS.EXPECT().Connect(testConfig.URL, gomock.Any()).Return(m.conn, m.stream, nil)
		m.stream.EXPECT().EnsureStream(gomock.Any(), gomock.Any()).Return(errors.New("permission denied"))
		m.conn.EXPECT().Close()

		p, err := js.NewPublisher(context.Background(), testConfig, m.natsJS, adapter.NewJSON(), adapter.NewJCS())
		assert.ErrorContains(t, err, "SETTLEMENTS")
		assert.Nil(t, p)
	})
}

func TestPublisher_PublishSettlement(t *testing.T) {
	t.Run("publishes canonical payload on the kind subject", func(t *testing.T) {
		m := setupTestPublisher(t)
		m.expectConnect()

		var published []byte
		m.stream.EXPECT().Publish(gomock.Any(), "settlements.mint", gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, data []byte, _ ...jetstream.PublishOpt) (*jetstream.PubAck, error) {
				published = data
				return &jetstream.PubAck{Stream: "SETTLEMENTS", Sequence: 1}, nil
			})

		p, err := js.NewPublisher(context.Background(), testConfig, m.natsJS, adapter.NewJSON(), adapter.NewJCS())
		require.NoError(t, err)

		require.NoError(t, p.PublishSettlement(context.Background(), testEvent()))
		assert.True(t, strings.HasPrefix(string(published), `{"audit_record_id":"01JABCDEFGHJKMNPQRSTVWXYZ0","event_id":`))
		assert.Contains(t, string(published), `"ledger_tx_ref":"tx-1"`)
		assert.NotContains(t, string(published), "counterparty_id")
	})

	t.Run("canonicalization failure", func(t *testing.T) {
		m := setupTestPublisher(t)
		m.expectConnect()
		jcs := mocks.NewMockJCS(m.ctrl)
		jcs.EXPECT().Canonicalize(gomock.Any()).Return(nil, errors.New("invalid number"))

		p, err := js.NewPublisher(context.Background(), testConfig, m.natsJS, adapter.NewJSON(), jcs)
		require.NoError(t, err)

		err = p.PublishSettlement(context.Background(), testEvent())
		assert.ErrorContains(t, err, "failed to canonicalize event")
	})

	t.Run("publish failure", func(t *testing.T) {
		m := setupTestPublisher(t)
		m.expectConnect()
		m.stream.EXPECT().Publish(gomock.Any(), "settlements.transfer", gomock.Any(), gomock.Any()).
			Return(nil, errors.New("no responders"))

		p, err := js.NewPublisher(context.Background(), testConfig, m.natsJS, adapter.NewJSON(), adapter.NewJCS())
		require.NoError(t, err)

		event := testEvent()
		event.Kind = domain.AuditKindTransfer
		err = p.PublishSettlement(context.Background(), event)
		assert.ErrorContains(t, err, "failed to publish event")
	})

	t.Run("close", func(t *testing.T) {
		m := setupTestPublisher(t)
		m.expectConnect()
		m.conn.EXPECT().Close()

		p, err := js.NewPublisher(context.Background(), testConfig, m.natsJS, adapter.NewJSON(), adapter.NewJCS())
		require.NoError(t, err)
		p.Close()
	})
}
