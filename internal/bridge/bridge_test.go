package bridge_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/persona-indexer/internal/adapter"
	"github.com/feral-file/persona-indexer/internal/bridge"
	"github.com/feral-file/persona-indexer/internal/domain"
	"github.com/feral-file/persona-indexer/internal/logger"
	mockspkg "github.com/feral-file/persona-indexer/internal/mocks"
)

func TestMain(m *testing.M) {
	// Initialize logger for tests
	err := logger.Initialize(logger.Config{
		Debug: false,
	})
	if err != nil {
		panic(err)
	}

	code := m.Run()
	os.Exit(code)
}

// testBridgeMocks contains all the mocks needed for testing the bridge
type testBridgeMocks struct {
	ctrl           *gomock.Controller
	natsJS         *mockspkg.MockNatsJetStream
	natsConn       *mockspkg.MockNatsConn
	jetStream      *mockspkg.MockJetStream
	consumer       *mockspkg.MockNatsConsumer
	consumeContext *mockspkg.MockConsumeContext
	projector      *mockspkg.MockProjector
	config         bridge.Config
}

// setupTestBridge creates all the mocks for testing
func setupTestBridge(t *testing.T) *testBridgeMocks {
	ctrl := gomock.NewController(t)

	return &testBridgeMocks{
		ctrl:           ctrl,
		natsJS:         mockspkg.NewMockNatsJetStream(ctrl),
		natsConn:       mockspkg.NewMockNatsConn(ctrl),
		jetStream:      mockspkg.NewMockJetStream(ctrl),
		consumer:       mockspkg.NewMockNatsConsumer(ctrl),
		consumeContext: mockspkg.NewMockConsumeContext(ctrl),
		projector:      mockspkg.NewMockProjector(ctrl),
		config: bridge.Config{
			URL:            "nats://localhost:4222",
			StreamName:     "persona-events",
			ConsumerName:   "persona-projector",
			MaxReconnects:  10,
			ReconnectWait:  time.Second,
			ConnectionName: "test-bridge",
			AckWaitTimeout: 30 * time.Second,
		},
	}
}

// tearDownTestBridge cleans up the test mocks
func tearDownTestBridge(mocks *testBridgeMocks) {
	mocks.ctrl.Finish()
}

// newBridge connects a bridge through the mocked NATS connection
func newBridge(t *testing.T, mocks *testBridgeMocks) bridge.Bridge {
	mocks.natsJS.
		EXPECT().
		Connect(mocks.config.URL, gomock.Any()).
		Return(mocks.natsConn, mocks.jetStream, nil)

	b, err := bridge.NewBridge(mocks.config, mocks.natsJS, mocks.projector, adapter.NewJSON())
	require.NoError(t, err)
	require.NotNil(t, b)
	return b
}

// expectConsume wires the consumer so that msgs are delivered in order once consuming starts
func expectConsume(mocks *testBridgeMocks, msgs ...adapter.Message) {
	mocks.jetStream.
		EXPECT().
		CreateOrUpdateConsumer(gomock.Any(), mocks.config.StreamName, gomock.Any()).
		Return(mocks.consumer, nil)
	mocks.consumer.
		EXPECT().
		Info(gomock.Any()).
		Return(&jetstream.ConsumerInfo{Name: mocks.config.ConsumerName}, nil)
	mocks.consumer.
		EXPECT().
		Consume(gomock.Any()).
		DoAndReturn(func(handler adapter.MessageHandler, _ ...jetstream.PullConsumeOpt) (adapter.ConsumeContext, error) {
			go func() {
				for _, msg := range msgs {
					handler(msg)
				}
			}()
			return mocks.consumeContext, nil
		})
	mocks.consumeContext.EXPECT().Closed().Return((<-chan struct{})(make(chan struct{}))).AnyTimes()
	mocks.consumeContext.EXPECT().Stop()
}

func newMessage(t *testing.T, ctrl *gomock.Controller, data []byte) *mockspkg.MockJetStreamMessage {
	t.Helper()
	msg := mockspkg.NewMockJetStreamMessage(ctrl)
	msg.EXPECT().Data().Return(data).AnyTimes()
	msg.EXPECT().Subject().Return("persona.l1.transfer").AnyTimes()
	msg.EXPECT().Metadata().Return(&jetstream.MsgMetadata{NumDelivered: 1}, nil).AnyTimes()
	return msg
}

func testEvent(logIndex uint) *domain.PersonaEvent {
	return &domain.PersonaEvent{
		Layer:           domain.LayerL1,
		Kind:            domain.EventKindTransfer,
		Chain:           domain.ChainEthereumMainnet,
		ContractAddress: "0x00000000000000000000000000000000000000aa",
		TxHash:          "0x" + fmt.Sprintf("%064x", logIndex+1),
		LogIndex:        logIndex,
		BlockNumber:     100,
		Timestamp:       time.Unix(1700000000, 0).UTC(),
		PersonaID:       "1",
		From:            domain.ETHEREUM_ZERO_ADDRESS,
		To:              "0x00000000000000000000000000000000000000a1",
	}
}

func encode(t *testing.T, event *domain.PersonaEvent) []byte {
	data, err := adapter.NewJSON().Marshal(event)
	require.NoError(t, err)
	return data
}

func TestBridge_NewBridge_ConnectError(t *testing.T) {
	mocks := setupTestBridge(t)
	defer tearDownTestBridge(mocks)

	mocks.natsJS.
		EXPECT().
		Connect(gomock.Any(), gomock.Any()).
		Return(nil, nil, assert.AnError)

	b, err := bridge.NewBridge(mocks.config, mocks.natsJS, mocks.projector, adapter.NewJSON())

	assert.Error(t, err)
	assert.Nil(t, b)
	assert.Contains(t, err.Error(), "failed to connect to NATS")
}

func TestBridge_Run_CreateConsumerError(t *testing.T) {
	mocks := setupTestBridge(t)
	defer tearDownTestBridge(mocks)

	b := newBridge(t, mocks)

	mocks.jetStream.
		EXPECT().
		CreateOrUpdateConsumer(gomock.Any(),
			"persona-events",
			jetstream.ConsumerConfig{
				Durable:       "persona-projector",
				AckPolicy:     jetstream.AckExplicitPolicy,
				AckWait:       30 * time.Second,
				MaxAckPending: 1,
				DeliverPolicy: jetstream.DeliverAllPolicy,
				FilterSubject: "persona.>",
			}).
		Return(nil, assert.AnError)

	err := b.Run(context.Background())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create/update consumer")
}

func TestBridge_Run_ConsumerInfoError(t *testing.T) {
	mocks := setupTestBridge(t)
	defer tearDownTestBridge(mocks)

	b := newBridge(t, mocks)

	mocks.jetStream.
		EXPECT().
		CreateOrUpdateConsumer(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(mocks.consumer, nil)
	mocks.consumer.
		EXPECT().
		Info(gomock.Any()).
		Return(nil, assert.AnError)

	err := b.Run(context.Background())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to get consumer info")
}

func TestBridge_Run_ConsumeError(t *testing.T) {
	mocks := setupTestBridge(t)
	defer tearDownTestBridge(mocks)

	b := newBridge(t, mocks)

	mocks.jetStream.
		EXPECT().
		CreateOrUpdateConsumer(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(mocks.consumer, nil)
	mocks.consumer.
		EXPECT().
		Info(gomock.Any()).
		Return(&jetstream.ConsumerInfo{Name: "persona-projector"}, nil)
	mocks.consumer.
		EXPECT().
		Consume(gomock.Any()).
		Return(nil, assert.AnError)

	err := b.Run(context.Background())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create subscription")
}

func TestBridge_Run_ProjectsInOrderAndAcks(t *testing.T) {
	mocks := setupTestBridge(t)
	defer tearDownTestBridge(mocks)

	b := newBridge(t, mocks)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	first := newMessage(t, mocks.ctrl, encode(t, testEvent(0)))
	second := newMessage(t, mocks.ctrl, encode(t, testEvent(1)))
	expectConsume(mocks, first, second)

	gomock.InOrder(
		mocks.projector.EXPECT().
			Handle(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, event *domain.PersonaEvent) error {
				assert.Equal(t, testEvent(0).ID(), event.ID())
				return nil
			}),
		first.EXPECT().Ack().Return(nil),
		mocks.projector.EXPECT().
			Handle(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, event *domain.PersonaEvent) error {
				assert.Equal(t, testEvent(1).ID(), event.ID())
				assert.Equal(t, domain.EventKindTransfer, event.Kind)
				return nil
			}),
		second.EXPECT().Ack().DoAndReturn(func() error {
			cancel()
			return nil
		}),
	)

	err := b.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBridge_Run_TerminatesUndecodableMessage(t *testing.T) {
	mocks := setupTestBridge(t)
	defer tearDownTestBridge(mocks)

	b := newBridge(t, mocks)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	msg := newMessage(t, mocks.ctrl, []byte("not json"))
	expectConsume(mocks, msg)

	msg.EXPECT().Term().DoAndReturn(func() error {
		cancel()
		return nil
	})

	err := b.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBridge_Run_TerminatesInvalidEvent(t *testing.T) {
	mocks := setupTestBridge(t)
	defer tearDownTestBridge(mocks)

	b := newBridge(t, mocks)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	msg := newMessage(t, mocks.ctrl, encode(t, testEvent(0)))
	expectConsume(mocks, msg)

	mocks.projector.EXPECT().
		Handle(gomock.Any(), gomock.Any()).
		Return(domain.ErrInvalidEvent)
	msg.EXPECT().Term().DoAndReturn(func() error {
		cancel()
		return nil
	})

	err := b.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBridge_Run_HaltsOnFatalError(t *testing.T) {
	mocks := setupTestBridge(t)
	defer tearDownTestBridge(mocks)

	b := newBridge(t, mocks)

	msg := newMessage(t, mocks.ctrl, encode(t, testEvent(0)))
	never := newMessage(t, mocks.ctrl, encode(t, testEvent(1)))
	expectConsume(mocks, msg, never)

	fatal := fmt.Errorf("failed to apply event: %w", domain.ErrPersonaNotFound)
	mocks.projector.EXPECT().
		Handle(gomock.Any(), gomock.Any()).
		Return(fatal)
	msg.EXPECT().Nak().Return(nil)

	err := b.Run(context.Background())
	assert.True(t, errors.Is(err, domain.ErrPersonaNotFound))
}

func TestBridge_Run_SubscriptionClosed(t *testing.T) {
	mocks := setupTestBridge(t)
	defer tearDownTestBridge(mocks)

	b := newBridge(t, mocks)

	closed := make(chan struct{})
	close(closed)

	mocks.jetStream.
		EXPECT().
		CreateOrUpdateConsumer(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(mocks.consumer, nil)
	mocks.consumer.
		EXPECT().
		Info(gomock.Any()).
		Return(&jetstream.ConsumerInfo{Name: "persona-projector"}, nil)
	mocks.consumer.
		EXPECT().
		Consume(gomock.Any()).
		Return(mocks.consumeContext, nil)
	mocks.consumeContext.EXPECT().Closed().Return((<-chan struct{})(closed)).AnyTimes()
	mocks.consumeContext.EXPECT().Stop()

	err := b.Run(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "subscription closed")
}

func TestBridge_Close(t *testing.T) {
	mocks := setupTestBridge(t)
	defer tearDownTestBridge(mocks)

	b := newBridge(t, mocks)
	mocks.natsConn.EXPECT().Close()

	b.Close()
}

func TestDirectPublisher(t *testing.T) {
	mocks := setupTestBridge(t)
	defer tearDownTestBridge(mocks)

	pub := bridge.NewDirectPublisher(mocks.projector)
	ctx := context.Background()

	mocks.projector.EXPECT().Handle(ctx, gomock.Any()).Return(nil)
	assert.NoError(t, pub.PublishEvent(ctx, testEvent(0)))

	mocks.projector.EXPECT().Handle(ctx, gomock.Any()).Return(fmt.Errorf("wrapped: %w", domain.ErrInvalidEvent))
	assert.NoError(t, pub.PublishEvent(ctx, testEvent(1)))

	mocks.projector.EXPECT().Handle(ctx, gomock.Any()).Return(domain.ErrUserNotFound)
	assert.ErrorIs(t, pub.PublishEvent(ctx, testEvent(2)), domain.ErrUserNotFound)

	pub.Close()
}
