package ethereum

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/feral-file/persona-indexer/internal/adapter"
	"github.com/feral-file/persona-indexer/internal/block"
)

// ethereumBlockFetcher implements block.BlockFetcher over block headers
type ethereumBlockFetcher struct {
	client adapter.EthClient
	clock  adapter.Clock
}

func NewBlockFetcher(client adapter.EthClient, clock adapter.Clock) block.BlockFetcher {
	return &ethereumBlockFetcher{client: client, clock: clock}
}

// FetchLatestBlock fetches the latest block number
func (f *ethereumBlockFetcher) FetchLatestBlock(ctx context.Context) (uint64, error) {
	header, err := f.client.HeaderByNumber(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to get latest block: %w", err)
	}
	return header.Number.Uint64(), nil
}

// FetchBlockTimestamp fetches the timestamp of a block from its header
func (f *ethereumBlockFetcher) FetchBlockTimestamp(ctx context.Context, blockNumber uint64) (time.Time, error) {
	header, err := f.client.HeaderByNumber(ctx, new(big.Int).SetUint64(blockNumber))
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to get header %d: %w", blockNumber, err)
	}
	return f.clock.Unix(int64(header.Time), 0), nil //nolint:gosec,G115
}
