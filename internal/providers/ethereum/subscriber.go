package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"

	"github.com/feral-file/persona-indexer/internal/domain"
	"github.com/feral-file/persona-indexer/internal/logger"
	"github.com/feral-file/persona-indexer/internal/messaging"
)

// Config holds the configuration for a Persona contract subscription
type Config struct {
	WebSocketURL    string       // WebSocket URL (e.g., wss://mainnet.infura.io/ws/v3/YOUR_PROJECT_ID)
	ChainID         domain.Chain // e.g., "eip155:1" for Ethereum mainnet
	Layer           domain.Layer // l1 for the Persona registry, l2 for the PersonaMirror
	ContractAddress string

	// Resubscription backoff; MaxElapsedTime 0 retries forever
	InitialRetryInterval time.Duration
	MaxRetryInterval     time.Duration
	MaxElapsedTime       time.Duration
}

type ethSubscriber struct {
	client PersonaClient
	config Config
	topics []common.Hash
}

// handlerError marks a failure of the event handler, which ends the subscription
type handlerError struct {
	err error
}

func (e *handlerError) Error() string { return e.err.Error() }
func (e *handlerError) Unwrap() error { return e.err }

// logPosition is the (block, log index) of the last delivered log
type logPosition struct {
	block uint64
	index uint
	set   bool
}

func (p *logPosition) isAfter(vLog types.Log) bool {
	if !p.set {
		return false
	}
	return vLog.BlockNumber < p.block || (vLog.BlockNumber == p.block && vLog.Index <= p.index)
}

// NewSubscriber creates a new subscriber for the logs of one Persona contract
func NewSubscriber(cfg Config, client PersonaClient) (messaging.Subscriber, error) {
	topics, err := EventTopics(cfg.Layer)
	if err != nil {
		return nil, err
	}
	if cfg.InitialRetryInterval <= 0 {
		cfg.InitialRetryInterval = time.Second
	}
	if cfg.MaxRetryInterval <= 0 {
		cfg.MaxRetryInterval = time.Minute
	}

	return &ethSubscriber{
		client: client,
		config: cfg,
		topics: topics,
	}, nil
}

// SubscribeEvents delivers every contract log from fromBlock onwards in (block, log index)
// order: history is read with FilterLogs up to the head, then new logs are followed live.
// A dropped subscription is re-established with exponential backoff from the last
// delivered log. A handler error stops the subscription and is returned as is.
func (s *ethSubscriber) SubscribeEvents(ctx context.Context, fromBlock uint64, handler messaging.EventHandler) error {
	next := fromBlock
	var last logPosition

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = s.config.InitialRetryInterval
	b.MaxInterval = s.config.MaxRetryInterval
	b.MaxElapsedTime = s.config.MaxElapsedTime

	operation := func() error {
		delivered, err := s.stream(ctx, &next, &last, handler)
		if delivered > 0 {
			// the connection was healthy, start the next retry cycle from scratch
			b.Reset()
		}

		var hErr *handlerError
		switch {
		case err == nil:
			return nil
		case errors.As(err, &hErr):
			return backoff.Permanent(err)
		case ctx.Err() != nil:
			return backoff.Permanent(ctx.Err())
		default:
			return err
		}
	}

	var attempts int
	notify := func(err error, retryIn time.Duration) {
		attempts++
		logger.WarnCtx(ctx, "Log subscription dropped, resubscribing",
			zap.Error(err),
			zap.Int("attempt", attempts),
			zap.Uint64("fromBlock", next),
			zap.Duration("retryIn", retryIn))
	}

	err := backoff.RetryNotify(operation, backoff.WithContext(b, ctx), notify)

	var hErr *handlerError
	switch {
	case err == nil:
		return nil
	case errors.As(err, &hErr):
		return hErr.err
	case ctx.Err() != nil:
		return ctx.Err()
	default:
		return fmt.Errorf("%w: %w", domain.ErrSubscriptionFailed, err)
	}
}

func (s *ethSubscriber) filterQuery(fromBlock uint64) ethereum.FilterQuery {
	return ethereum.FilterQuery{
		FromBlock: new(big.Int).SetUint64(fromBlock),
		Addresses: []common.Address{common.HexToAddress(s.config.ContractAddress)},
		Topics:    [][]common.Hash{s.topics},
	}
}

// stream runs one subscription attempt and returns how many events it delivered
func (s *ethSubscriber) stream(ctx context.Context, next *uint64, last *logPosition, handler messaging.EventHandler) (int, error) {
	query := s.filterQuery(*next)

	// subscribe before reading history so logs mined during catch-up are buffered
	logs := make(chan types.Log, 256)
	sub, err := s.client.SubscribeFilterLogs(ctx, query, logs)
	if err != nil {
		return 0, fmt.Errorf("failed to subscribe to filter logs: %w", err)
	}
	defer func() {
		sub.Unsubscribe()
		logger.InfoCtx(ctx, "Unsubscribed from persona contract logs", zap.String("layer", s.config.Layer.String()))
	}()

	delivered := 0
	head, err := s.client.GetLatestBlock(ctx)
	if err != nil {
		return delivered, fmt.Errorf("failed to get latest block: %w", err)
	}

	if *next <= head {
		history := query
		history.ToBlock = new(big.Int).SetUint64(head)
		pastLogs, err := s.client.FilterLogs(ctx, history)
		if err != nil {
			return delivered, fmt.Errorf("failed to catch up from block %d: %w", *next, err)
		}

		logger.InfoCtx(ctx, "Catching up persona contract logs",
			zap.String("layer", s.config.Layer.String()),
			zap.Uint64("fromBlock", *next),
			zap.Uint64("toBlock", head),
			zap.Int("logs", len(pastLogs)))

		for _, vLog := range pastLogs {
			ok, err := s.deliver(ctx, vLog, next, last, handler)
			if err != nil {
				return delivered, err
			}
			if ok {
				delivered++
			}
		}
	}

	for {
		select {
		case <-ctx.Done():
			return delivered, ctx.Err()
		case err := <-sub.Err():
			return delivered, fmt.Errorf("subscription error: %w", err)
		case vLog := <-logs:
			ok, err := s.deliver(ctx, vLog, next, last, handler)
			if err != nil {
				return delivered, err
			}
			if ok {
				delivered++
			}
		}
	}
}

// deliver parses a log and hands it to handler, skipping logs already delivered
func (s *ethSubscriber) deliver(ctx context.Context, vLog types.Log, next *uint64, last *logPosition, handler messaging.EventHandler) (bool, error) {
	if vLog.Removed {
		logger.WarnCtx(ctx, "Ignoring log removed by a chain reorganization",
			zap.String("txHash", vLog.TxHash.Hex()),
			zap.Uint64("blockNumber", vLog.BlockNumber))
		return false, nil
	}
	if last.isAfter(vLog) {
		return false, nil
	}

	event, err := s.client.ParseEventLog(ctx, vLog)
	if err != nil {
		if !errors.Is(err, domain.ErrInvalidEvent) {
			return false, err
		}
		logger.ErrorCtx(ctx, err, zap.String("txHash", vLog.TxHash.Hex()), zap.Uint("logIndex", vLog.Index))
	} else if err := handler(event); err != nil {
		return false, &handlerError{err: err}
	}

	*last = logPosition{block: vLog.BlockNumber, index: vLog.Index, set: true}
	*next = vLog.BlockNumber
	return err == nil, nil
}

// GetLatestBlock returns the latest block number
func (s *ethSubscriber) GetLatestBlock(ctx context.Context) (uint64, error) {
	return s.client.GetLatestBlock(ctx)
}

// Close closes the connection
func (s *ethSubscriber) Close() {
	if s.client == nil {
		return
	}

	s.client.Close()
	logger.Info("Ethereum WebSocket connection closed")
}
