package block

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/feral-file/persona-indexer/internal/adapter"
	"github.com/feral-file/persona-indexer/internal/logger"
)

// DefaultMaxCachedBlocks bounds the timestamp cache when Config.MaxCachedBlocks is unset
const DefaultMaxCachedBlocks = 1024

// BlockInfo represents cached head information
type BlockInfo struct {
	Number    uint64
	FetchedAt time.Time
}

// BlockProvider provides cached access to the chain head and to block timestamps.
// Persona logs arrive in bursts from the same few blocks, so each block timestamp
// is fetched once.
//
//go:generate mockgen -source=block.go -destination=../mocks/block_provider.go -package=mocks -mock_names=BlockProvider=MockBlockProvider,BlockFetcher=MockBlockFetcher
type BlockProvider interface {
	// GetLatestBlock returns the latest block number, potentially from cache
	GetLatestBlock(ctx context.Context) (uint64, error)

	// GetBlockTimestamp returns the timestamp of a block, potentially from cache
	GetBlockTimestamp(ctx context.Context, blockNumber uint64) (time.Time, error)
}

// BlockFetcher fetches block information from the chain
type BlockFetcher interface {
	// FetchLatestBlock fetches the latest block number
	FetchLatestBlock(ctx context.Context) (uint64, error)

	// FetchBlockTimestamp fetches the timestamp of a block
	FetchBlockTimestamp(ctx context.Context, blockNumber uint64) (time.Time, error)
}

// Config holds configuration for the BlockProvider
type Config struct {
	// TTL is how long the head block number is cached
	TTL time.Duration

	// StaleWindow is how long a cached head may still be served when a fetch fails
	StaleWindow time.Duration

	// MaxCachedBlocks bounds the number of cached timestamps; the oldest block is evicted first
	MaxCachedBlocks int
}

type blockProvider struct {
	fetcher BlockFetcher
	config  Config
	clock   adapter.Clock

	mu         sync.RWMutex
	head       *BlockInfo
	timestamps map[uint64]time.Time
	order      []uint64 // insertion order of timestamps
}

// NewBlockProvider creates a new BlockProvider with caching
func NewBlockProvider(fetcher BlockFetcher, config Config, clock adapter.Clock) BlockProvider {
	if config.MaxCachedBlocks <= 0 {
		config.MaxCachedBlocks = DefaultMaxCachedBlocks
	}

	return &blockProvider{
		fetcher:    fetcher,
		config:     config,
		clock:      clock,
		timestamps: make(map[uint64]time.Time),
	}
}

// GetLatestBlock returns the latest block number, using cache if valid
func (p *blockProvider) GetLatestBlock(ctx context.Context) (uint64, error) {
	p.mu.RLock()
	cached := p.head
	p.mu.RUnlock()

	now := p.clock.Now()
	if cached != nil && now.Sub(cached.FetchedAt) < p.config.TTL {
		return cached.Number, nil
	}

	number, err := p.fetcher.FetchLatestBlock(ctx)
	if err != nil {
		if cached != nil && now.Sub(cached.FetchedAt) < p.config.StaleWindow {
			logger.WarnCtx(ctx, "Serving stale head block", zap.Uint64("blockNumber", cached.Number), zap.Error(err))
			return cached.Number, nil
		}
		return 0, fmt.Errorf("failed to fetch latest block and no valid cache available: %w", err)
	}

	p.mu.Lock()
	p.head = &BlockInfo{Number: number, FetchedAt: now}
	p.mu.Unlock()

	return number, nil
}

// GetBlockTimestamp returns the timestamp of a block. Confirmed block timestamps
// never change so entries only leave the cache by eviction.
func (p *blockProvider) GetBlockTimestamp(ctx context.Context, blockNumber uint64) (time.Time, error) {
	p.mu.RLock()
	timestamp, ok := p.timestamps[blockNumber]
	p.mu.RUnlock()
	if ok {
		return timestamp, nil
	}

	logger.DebugCtx(ctx, "Fetching block timestamp", zap.Uint64("blockNumber", blockNumber))
	timestamp, err := p.fetcher.FetchBlockTimestamp(ctx, blockNumber)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to fetch timestamp of block %d: %w", blockNumber, err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := p.timestamps[blockNumber]; !ok {
		p.timestamps[blockNumber] = timestamp
		p.order = append(p.order, blockNumber)
		for len(p.order) > p.config.MaxCachedBlocks {
			delete(p.timestamps, p.order[0])
			p.order = p.order[1:]
		}
	}

	return timestamp, nil
}
