package ethereum_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/event"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/persona-indexer/internal/domain"
	"github.com/feral-file/persona-indexer/internal/messaging"
	"github.com/feral-file/persona-indexer/internal/mocks"
	personaeth "github.com/feral-file/persona-indexer/internal/providers/ethereum"
)

type testSubscriberMocks struct {
	ctrl   *gomock.Controller
	client *mocks.MockPersonaClient
	sub    messaging.Subscriber
}

func setupTestSubscriber(t *testing.T) *testSubscriberMocks {
	ctrl := gomock.NewController(t)
	client := mocks.NewMockPersonaClient(ctrl)

	sub, err := personaeth.NewSubscriber(personaeth.Config{
		ChainID:              domain.ChainEthereumSepolia,
		Layer:                domain.LayerL1,
		ContractAddress:      registryAddress.Hex(),
		InitialRetryInterval: time.Millisecond,
		MaxRetryInterval:     5 * time.Millisecond,
		MaxElapsedTime:       time.Second,
	}, client)
	require.NoError(t, err)

	return &testSubscriberMocks{ctrl: ctrl, client: client, sub: sub}
}

func tearDownTestSubscriber(tm *testSubscriberMocks) {
	tm.ctrl.Finish()
}

func logAt(block uint64, index uint) types.Log {
	return types.Log{
		Address:     registryAddress,
		BlockNumber: block,
		Index:       index,
		TxHash:      common.BigToHash(common.Big1),
	}
}

// liveSubscription stays open until unsubscribed
func liveSubscription() ethereum.Subscription {
	return event.NewSubscription(func(quit <-chan struct{}) error {
		<-quit
		return nil
	})
}

// droppedSubscription fails as soon as it is created
func droppedSubscription() ethereum.Subscription {
	return event.NewSubscription(func(quit <-chan struct{}) error {
		return errors.New("websocket closed")
	})
}

// expectParse decodes every log into a transfer carrying its position
func expectParse(tm *testSubscriberMocks) {
	tm.client.EXPECT().
		ParseEventLog(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, vLog types.Log) (*domain.PersonaEvent, error) {
			return &domain.PersonaEvent{
				Layer:       domain.LayerL1,
				Kind:        domain.EventKindTransfer,
				TxHash:      vLog.TxHash.Hex(),
				LogIndex:    vLog.Index,
				BlockNumber: vLog.BlockNumber,
			}, nil
		}).
		AnyTimes()
}

// recorder collects delivered positions and cancels once it has seen want events
type recorder struct {
	mu     sync.Mutex
	seen   []string
	want   int
	cancel context.CancelFunc
}

func (r *recorder) handle(event *domain.PersonaEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seen = append(r.seen, fmt.Sprintf("%d:%d", event.BlockNumber, event.LogIndex))
	if len(r.seen) == r.want {
		r.cancel()
	}
	return nil
}

func TestSubscriber_CatchesUpThenFollows(t *testing.T) {
	tm := setupTestSubscriber(t)
	defer tearDownTestSubscriber(tm)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tm.client.EXPECT().
		SubscribeFilterLogs(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, q ethereum.FilterQuery, ch chan<- types.Log) (ethereum.Subscription, error) {
			assert.Equal(t, uint64(100), q.FromBlock.Uint64())
			assert.Equal(t, []common.Address{registryAddress}, q.Addresses)
			require.Len(t, q.Topics, 1)
			assert.Len(t, q.Topics[0], 2)

			// the head log is seen by both the history read and the live feed
			ch <- logAt(102, 1)
			ch <- logAt(106, 0)
			return liveSubscription(), nil
		})
	tm.client.EXPECT().GetLatestBlock(gomock.Any()).Return(uint64(105), nil)
	tm.client.EXPECT().
		FilterLogs(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, q ethereum.FilterQuery) ([]types.Log, error) {
			assert.Equal(t, uint64(100), q.FromBlock.Uint64())
			assert.Equal(t, uint64(105), q.ToBlock.Uint64())
			return []types.Log{logAt(101, 0), logAt(102, 1)}, nil
		})
	expectParse(tm)

	rec := &recorder{want: 3, cancel: cancel}
	err := tm.sub.SubscribeEvents(ctx, 100, rec.handle)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, []string{"101:0", "102:1", "106:0"}, rec.seen)
}

func TestSubscriber_SkipsInvalidAndRemovedLogs(t *testing.T) {
	tm := setupTestSubscriber(t)
	defer tearDownTestSubscriber(tm)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	removed := logAt(101, 1)
	removed.Removed = true

	tm.client.EXPECT().
		SubscribeFilterLogs(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(liveSubscription(), nil)
	tm.client.EXPECT().GetLatestBlock(gomock.Any()).Return(uint64(105), nil)
	tm.client.EXPECT().
		FilterLogs(gomock.Any(), gomock.Any()).
		Return([]types.Log{logAt(101, 0), removed, logAt(103, 0)}, nil)

	tm.client.EXPECT().
		ParseEventLog(gomock.Any(), logAt(101, 0)).
		Return(nil, fmt.Errorf("%w: unknown event signature", domain.ErrInvalidEvent))
	tm.client.EXPECT().
		ParseEventLog(gomock.Any(), logAt(103, 0)).
		Return(&domain.PersonaEvent{BlockNumber: 103}, nil)

	rec := &recorder{want: 1, cancel: cancel}
	err := tm.sub.SubscribeEvents(ctx, 100, rec.handle)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, []string{"103:0"}, rec.seen)
}

func TestSubscriber_HandlerErrorStops(t *testing.T) {
	tm := setupTestSubscriber(t)
	defer tearDownTestSubscriber(tm)

	tm.client.EXPECT().
		SubscribeFilterLogs(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(liveSubscription(), nil).
		Times(1)
	tm.client.EXPECT().GetLatestBlock(gomock.Any()).Return(uint64(105), nil)
	tm.client.EXPECT().
		FilterLogs(gomock.Any(), gomock.Any()).
		Return([]types.Log{logAt(101, 0)}, nil)
	expectParse(tm)

	handlerErr := errors.New("publish failed")
	err := tm.sub.SubscribeEvents(context.Background(), 100, func(*domain.PersonaEvent) error {
		return handlerErr
	})

	assert.Equal(t, handlerErr, err)
}

func TestSubscriber_ResubscribesFromLastDeliveredBlock(t *testing.T) {
	tm := setupTestSubscriber(t)
	defer tearDownTestSubscriber(tm)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	gomock.InOrder(
		tm.client.EXPECT().
			SubscribeFilterLogs(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(droppedSubscription(), nil),
		tm.client.EXPECT().GetLatestBlock(gomock.Any()).Return(uint64(100), nil),
		tm.client.EXPECT().
			FilterLogs(gomock.Any(), gomock.Any()).
			Return([]types.Log{logAt(100, 0)}, nil),

		tm.client.EXPECT().
			SubscribeFilterLogs(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, q ethereum.FilterQuery, _ chan<- types.Log) (ethereum.Subscription, error) {
				assert.Equal(t, uint64(100), q.FromBlock.Uint64())
				return liveSubscription(), nil
			}),
		tm.client.EXPECT().GetLatestBlock(gomock.Any()).Return(uint64(101), nil),
		tm.client.EXPECT().
			FilterLogs(gomock.Any(), gomock.Any()).
			Return([]types.Log{logAt(100, 0), logAt(101, 0)}, nil),
	)
	expectParse(tm)

	rec := &recorder{want: 2, cancel: cancel}
	err := tm.sub.SubscribeEvents(ctx, 90, rec.handle)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, []string{"100:0", "101:0"}, rec.seen)
}

func TestSubscriber_GivesUpAfterMaxElapsedTime(t *testing.T) {
	tm := setupTestSubscriber(t)
	defer tearDownTestSubscriber(tm)

	tm.client.EXPECT().
		SubscribeFilterLogs(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("dial tcp: connection refused")).
		MinTimes(2)

	err := tm.sub.SubscribeEvents(context.Background(), 100, func(*domain.PersonaEvent) error {
		return nil
	})

	assert.ErrorIs(t, err, domain.ErrSubscriptionFailed)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestSubscriber_GetLatestBlockAndClose(t *testing.T) {
	tm := setupTestSubscriber(t)
	defer tearDownTestSubscriber(tm)

	ctx := context.Background()
	tm.client.EXPECT().GetLatestBlock(ctx).Return(uint64(7), nil)
	tm.client.EXPECT().Close()

	latest, err := tm.sub.GetLatestBlock(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), latest)

	tm.sub.Close()
}
