package block_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/persona-indexer/internal/block"
	"github.com/feral-file/persona-indexer/internal/logger"
	"github.com/feral-file/persona-indexer/internal/mocks"
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

// testBlockProviderMocks contains all the mocks needed for testing the block provider
type testBlockProviderMocks struct {
	ctrl     *gomock.Controller
	fetcher  *mocks.MockBlockFetcher
	clock    *mocks.MockClock
	provider block.BlockProvider
}

// setupTest creates all the mocks and the block provider for testing
func setupTest(t *testing.T, cfg block.Config) *testBlockProviderMocks {
	ctrl := gomock.NewController(t)

	tm := &testBlockProviderMocks{
		ctrl:    ctrl,
		fetcher: mocks.NewMockBlockFetcher(ctrl),
		clock:   mocks.NewMockClock(ctrl),
	}
	tm.provider = block.NewBlockProvider(tm.fetcher, cfg, tm.clock)

	return tm
}

// tearDownTest cleans up the test mocks
func tearDownTest(tm *testBlockProviderMocks) {
	tm.ctrl.Finish()
}

func defaultConfig() block.Config {
	return block.Config{
		TTL:         10 * time.Second,
		StaleWindow: 2 * time.Minute,
	}
}

func TestBlockProvider_GetLatestBlock_UsesCacheWithinTTL(t *testing.T) {
	tm := setupTest(t, defaultConfig())
	defer tearDownTest(tm)

	ctx := context.Background()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tm.clock.EXPECT().Now().Return(now)
	tm.fetcher.EXPECT().FetchLatestBlock(ctx).Return(uint64(1000), nil)

	number, err := tm.provider.GetLatestBlock(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(1000), number)

	// within TTL: served from cache, the fetcher is called once
	tm.clock.EXPECT().Now().Return(now.Add(5 * time.Second))

	number, err = tm.provider.GetLatestBlock(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(1000), number)
}

func TestBlockProvider_GetLatestBlock_RefreshesAfterTTL(t *testing.T) {
	tm := setupTest(t, defaultConfig())
	defer tearDownTest(tm)

	ctx := context.Background()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	gomock.InOrder(
		tm.clock.EXPECT().Now().Return(now),
		tm.fetcher.EXPECT().FetchLatestBlock(ctx).Return(uint64(1000), nil),
		tm.clock.EXPECT().Now().Return(now.Add(11*time.Second)),
		tm.fetcher.EXPECT().FetchLatestBlock(ctx).Return(uint64(1003), nil),
	)

	_, err := tm.provider.GetLatestBlock(ctx)
	require.NoError(t, err)

	number, err := tm.provider.GetLatestBlock(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(1003), number)
}

func TestBlockProvider_GetLatestBlock_StaleFallback(t *testing.T) {
	tm := setupTest(t, defaultConfig())
	defer tearDownTest(tm)

	ctx := context.Background()
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rpcErr := errors.New("rpc unavailable")

	gomock.InOrder(
		tm.clock.EXPECT().Now().Return(now),
		tm.fetcher.EXPECT().FetchLatestBlock(ctx).Return(uint64(1000), nil),
		tm.clock.EXPECT().Now().Return(now.Add(30*time.Second)),
		tm.fetcher.EXPECT().FetchLatestBlock(ctx).Return(uint64(0), rpcErr),
		tm.clock.EXPECT().Now().Return(now.Add(3*time.Minute)),
		tm.fetcher.EXPECT().FetchLatestBlock(ctx).Return(uint64(0), rpcErr),
	)

	_, err := tm.provider.GetLatestBlock(ctx)
	require.NoError(t, err)

	number, err := tm.provider.GetLatestBlock(ctx)
	require.NoError(t, err, "stale head is served inside the stale window")
	assert.Equal(t, uint64(1000), number)

	_, err = tm.provider.GetLatestBlock(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, rpcErr)
}

func TestBlockProvider_GetBlockTimestamp_CachesPerBlock(t *testing.T) {
	tm := setupTest(t, defaultConfig())
	defer tearDownTest(tm)

	ctx := context.Background()
	ts := time.Unix(1700000000, 0).UTC()

	tm.fetcher.EXPECT().FetchBlockTimestamp(ctx, uint64(42)).Return(ts, nil).Times(1)

	for i := 0; i < 3; i++ {
		got, err := tm.provider.GetBlockTimestamp(ctx, 42)
		require.NoError(t, err)
		assert.Equal(t, ts, got)
	}
}

func TestBlockProvider_GetBlockTimestamp_EvictsOldest(t *testing.T) {
	cfg := defaultConfig()
	cfg.MaxCachedBlocks = 2
	tm := setupTest(t, cfg)
	defer tearDownTest(tm)

	ctx := context.Background()
	ts := time.Unix(1700000000, 0).UTC()

	tm.fetcher.EXPECT().FetchBlockTimestamp(ctx, uint64(1)).Return(ts, nil).Times(2)
	tm.fetcher.EXPECT().FetchBlockTimestamp(ctx, uint64(2)).Return(ts, nil).Times(1)
	tm.fetcher.EXPECT().FetchBlockTimestamp(ctx, uint64(3)).Return(ts, nil).Times(1)

	for _, number := range []uint64{1, 2, 3, 2, 3, 1} {
		_, err := tm.provider.GetBlockTimestamp(ctx, number)
		require.NoError(t, err)
	}
}

func TestBlockProvider_GetBlockTimestamp_Error(t *testing.T) {
	tm := setupTest(t, defaultConfig())
	defer tearDownTest(tm)

	ctx := context.Background()
	tm.fetcher.EXPECT().FetchBlockTimestamp(ctx, uint64(7)).Return(time.Time{}, errors.New("header not found"))

	_, err := tm.provider.GetBlockTimestamp(ctx, 7)
	assert.Error(t, err)
}
