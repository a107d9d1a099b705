package block_test

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/dao-indexer/internal/block"
	"github.com/feral-file/dao-indexer/internal/logger"
	"github.com/feral-file/dao-indexer/internal/mocks"
)

func TestMain(m *testing.M) {
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

func tearDownTest(tm *testBlockProviderMocks) {
	tm.ctrl.Finish()
}

func defaultConfig() block.Config {
	return block.Config{
		HeadTTL:         10 * time.Second,
		HeadStaleWindow: 2 * time.Minute,
		TimestampTTL:    0,
	}
}

var t0 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestBlockProvider_GetLatestBlock_FirstFetch(t *testing.T) {
	tm := setupTest(t, defaultConfig())
	defer tearDownTest(tm)

	ctx := context.Background()
	tm.clock.EXPECT().Now().Return(t0)
	tm.fetcher.EXPECT().FetchLatestBlock(ctx).Return(uint64(1000), nil)

	number, err := tm.provider.GetLatestBlock(ctx)

	require.NoError(t, err)
	assert.Equal(t, uint64(1000), number)
}

func TestBlockProvider_GetLatestBlock_UsesCacheWithinTTL(t *testing.T) {
	tm := setupTest(t, defaultConfig())
	defer tearDownTest(tm)

	ctx := context.Background()
	tm.clock.EXPECT().Now().Return(t0)
	tm.fetcher.EXPECT().FetchLatestBlock(ctx).Return(uint64(1000), nil).Times(1)

	_, err := tm.provider.GetLatestBlock(ctx)
	require.NoError(t, err)

	tm.clock.EXPECT().Now().Return(t0.Add(5 * time.Second))
	number, err := tm.provider.GetLatestBlock(ctx)

	require.NoError(t, err)
	assert.Equal(t, uint64(1000), number)
}

func TestBlockProvider_GetLatestBlock_RefreshesAfterTTL(t *testing.T) {
	tm := setupTest(t, defaultConfig())
	defer tearDownTest(tm)

	ctx := context.Background()
	tm.clock.EXPECT().Now().Return(t0)
	tm.fetcher.EXPECT().FetchLatestBlock(ctx).Return(uint64(1000), nil)
	_, err := tm.provider.GetLatestBlock(ctx)
	require.NoError(t, err)

	tm.clock.EXPECT().Now().Return(t0.Add(15 * time.Second))
	tm.fetcher.EXPECT().FetchLatestBlock(ctx).Return(uint64(1100), nil)
	number, err := tm.provider.GetLatestBlock(ctx)

	require.NoError(t, err)
	assert.Equal(t, uint64(1100), number)
}

func TestBlockProvider_GetLatestBlock_NeverMovesBackwards(t *testing.T) {
	tm := setupTest(t, defaultConfig())
	defer tearDownTest(tm)

	ctx := context.Background()
	tm.clock.EXPECT().Now().Return(t0)
	tm.fetcher.EXPECT().FetchLatestBlock(ctx).Return(uint64(1000), nil)
	_, err := tm.provider.GetLatestBlock(ctx)
	require.NoError(t, err)

	tm.clock.EXPECT().Now().Return(t0.Add(15 * time.Second))
	tm.fetcher.EXPECT().FetchLatestBlock(ctx).Return(uint64(990), nil)
	number, err := tm.provider.GetLatestBlock(ctx)

	require.NoError(t, err)
	assert.Equal(t, uint64(1000), number)
}

func TestBlockProvider_GetLatestBlock_ServesStaleWithinWindow(t *testing.T) {
	tm := setupTest(t, defaultConfig())
	defer tearDownTest(tm)

	ctx := context.Background()
	tm.clock.EXPECT().Now().Return(t0)
	tm.fetcher.EXPECT().FetchLatestBlock(ctx).Return(uint64(1000), nil)
	_, err := tm.provider.GetLatestBlock(ctx)
	require.NoError(t, err)

	tm.clock.EXPECT().Now().Return(t0.Add(30 * time.Second))
	tm.fetcher.EXPECT().FetchLatestBlock(ctx).Return(uint64(0), errors.New("connection refused"))
	number, err := tm.provider.GetLatestBlock(ctx)

	require.NoError(t, err)
	assert.Equal(t, uint64(1000), number)
}

func TestBlockProvider_GetLatestBlock_ErrorsBeyondStaleWindow(t *testing.T) {
	tm := setupTest(t, defaultConfig())
	defer tearDownTest(tm)

	ctx := context.Background()
	tm.clock.EXPECT().Now().Return(t0)
	tm.fetcher.EXPECT().FetchLatestBlock(ctx).Return(uint64(1000), nil)
	_, err := tm.provider.GetLatestBlock(ctx)
	require.NoError(t, err)

	tm.clock.EXPECT().Now().Return(t0.Add(3 * time.Minute))
	tm.fetcher.EXPECT().FetchLatestBlock(ctx).Return(uint64(0), errors.New("connection refused"))
	_, err = tm.provider.GetLatestBlock(ctx)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestBlockProvider_GetLatestBlock_ErrorsWithoutCache(t *testing.T) {
	tm := setupTest(t, defaultConfig())
	defer tearDownTest(tm)

	ctx := context.Background()
	tm.clock.EXPECT().Now().Return(t0)
	tm.fetcher.EXPECT().FetchLatestBlock(ctx).Return(uint64(0), errors.New("connection refused"))

	_, err := tm.provider.GetLatestBlock(ctx)
	assert.Error(t, err)
}

func TestBlockProvider_GetBlockTimestamp_CachesUntilEvicted(t *testing.T) {
	tm := setupTest(t, defaultConfig())
	defer tearDownTest(tm)

	ctx := context.Background()
	mined := time.Unix(1_700_000_000, 0).UTC()

	tm.clock.EXPECT().Now().Return(t0).Times(3)
	tm.fetcher.EXPECT().FetchBlockTimestamp(ctx, uint64(42)).Return(mined, nil).Times(2)

	ts, err := tm.provider.GetBlockTimestamp(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, mined, ts)

	// cached: TimestampTTL 0 keeps it forever
	ts, err = tm.provider.GetBlockTimestamp(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, mined, ts)

	tm.provider.Evict(42)

	ts, err = tm.provider.GetBlockTimestamp(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, mined, ts)
}

func TestBlockProvider_GetBlockTimestamp_RefreshesAfterTTL(t *testing.T) {
	cfg := defaultConfig()
	cfg.TimestampTTL = time.Minute
	tm := setupTest(t, cfg)
	defer tearDownTest(tm)

	ctx := context.Background()
	mined := time.Unix(1_700_000_000, 0).UTC()

	tm.clock.EXPECT().Now().Return(t0)
	tm.fetcher.EXPECT().FetchBlockTimestamp(ctx, uint64(7)).Return(mined, nil)
	_, err := tm.provider.GetBlockTimestamp(ctx, 7)
	require.NoError(t, err)

	tm.clock.EXPECT().Now().Return(t0.Add(2 * time.Minute))
	tm.fetcher.EXPECT().FetchBlockTimestamp(ctx, uint64(7)).Return(mined, nil)
	_, err = tm.provider.GetBlockTimestamp(ctx, 7)
	require.NoError(t, err)
}

func TestBlockProvider_GetBlockTimestamp_PropagatesFetchError(t *testing.T) {
	tm := setupTest(t, defaultConfig())
	defer tearDownTest(tm)

	ctx := context.Background()
	tm.clock.EXPECT().Now().Return(t0)
	tm.fetcher.EXPECT().FetchBlockTimestamp(ctx, uint64(9)).Return(time.Time{}, errors.New("header not found"))

	_, err := tm.provider.GetBlockTimestamp(ctx, 9)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "block 9")
}

func TestBlockProvider_Evict_KeepsHigherBlocks(t *testing.T) {
	tm := setupTest(t, defaultConfig())
	defer tearDownTest(tm)

	ctx := context.Background()
	tm.clock.EXPECT().Now().Return(t0).AnyTimes()
	tm.fetcher.EXPECT().FetchBlockTimestamp(ctx, uint64(10)).Return(t0, nil).Times(1)
	tm.fetcher.EXPECT().FetchBlockTimestamp(ctx, uint64(11)).Return(t0, nil).Times(1)

	for _, n := range []uint64{10, 11} {
		_, err := tm.provider.GetBlockTimestamp(ctx, n)
		require.NoError(t, err)
	}

	tm.provider.Evict(10)

	// 11 is still cached, so no second fetch is expected for it
	_, err := tm.provider.GetBlockTimestamp(ctx, 11)
	require.NoError(t, err)
}

func TestBlockProvider_ConcurrentAccess(t *testing.T) {
	tm := setupTest(t, defaultConfig())
	defer tearDownTest(tm)

	ctx := context.Background()
	tm.clock.EXPECT().Now().Return(t0).AnyTimes()
	tm.fetcher.EXPECT().FetchLatestBlock(ctx).Return(uint64(1000), nil).MinTimes(1)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			number, err := tm.provider.GetLatestBlock(ctx)
			assert.NoError(t, err)
			assert.Equal(t, uint64(1000), number)
		}()
	}
	wg.Wait()
}
