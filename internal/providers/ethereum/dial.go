package ethereum

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/feral-file/persona-indexer/internal/adapter"
	"github.com/feral-file/persona-indexer/internal/block"
	"github.com/feral-file/persona-indexer/internal/domain"
	"github.com/feral-file/persona-indexer/internal/logger"
)

// ClientConfig describes the node connection of one layer
type ClientConfig struct {
	ChainID         domain.Chain
	Layer           domain.Layer
	URL             string
	BlockHeadTTL    time.Duration
	StaleWindow     time.Duration
	MaxCachedBlocks int
}

// Dial connects to the node of a layer and builds a PersonaClient with a cached block provider.
// The node must report the configured chain.
func Dial(ctx context.Context, dialer adapter.EthClientDialer, cfg ClientConfig, clock adapter.Clock) (PersonaClient, error) {
	ethClient, err := dialer.Dial(ctx, cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to dial %s node: %w", cfg.Layer, err)
	}

	if err := verifyChain(ctx, ethClient, cfg.ChainID); err != nil {
		ethClient.Close()
		return nil, err
	}

	blocks := block.NewBlockProvider(NewBlockFetcher(ethClient, clock), block.Config{
		TTL:             cfg.BlockHeadTTL,
		StaleWindow:     cfg.StaleWindow,
		MaxCachedBlocks: cfg.MaxCachedBlocks,
	}, clock)

	client, err := NewClient(cfg.ChainID, cfg.Layer, ethClient, blocks)
	if err != nil {
		ethClient.Close()
		return nil, err
	}

	logger.InfoCtx(ctx, "Connected to node",
		zap.String("layer", cfg.Layer.String()),
		zap.String("chain", string(cfg.ChainID)),
	)
	return client, nil
}

// verifyChain compares the node's chain ID with an eip155 CAIP-2 identifier
func verifyChain(ctx context.Context, client adapter.EthClient, chain domain.Chain) error {
	if chain == "" {
		return nil
	}

	id, err := client.ChainID(ctx)
	if err != nil {
		return fmt.Errorf("failed to get chain ID: %w", err)
	}

	if want := domain.Chain(fmt.Sprintf("eip155:%s", id.String())); want != chain {
		return fmt.Errorf("node serves %s, configured for %s", want, chain)
	}
	return nil
}
