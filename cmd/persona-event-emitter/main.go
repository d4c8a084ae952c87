package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/feral-file/persona-indexer/internal/adapter"
	"github.com/feral-file/persona-indexer/internal/config"
	"github.com/feral-file/persona-indexer/internal/domain"
	"github.com/feral-file/persona-indexer/internal/emitter"
	"github.com/feral-file/persona-indexer/internal/logger"
	"github.com/feral-file/persona-indexer/internal/providers/ethereum"
	"github.com/feral-file/persona-indexer/internal/providers/jetstream"
	"github.com/feral-file/persona-indexer/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
	layerFlag  = flag.String("layer", "l1", "Layer to follow: l1 (Persona registry) or l2 (PersonaMirror)")
)

func main() {
	flag.Parse()

	layer, err := domain.ParseLayer(*layerFlag)
	if err != nil {
		panic(err)
	}

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadEventEmitterConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}
	chain, err := cfg.Chain(layer)
	if err != nil {
		panic(fmt.Sprintf("Invalid chain config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Service:         "persona-event-emitter",
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
		Tags: map[string]string{
			"layer": layer.String(),
		},
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Persona Event Emitter", zap.String("layer", layer.String()))

	// Cursors live in the database
	db, err := store.Open(cfg.Database.Driver, cfg.Database.DSN(), cfg.Debug)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err))
	}
	if err := store.AutoMigrate(db); err != nil {
		logger.FatalCtx(ctx, "Failed to migrate database", zap.Error(err))
	}
	cursors := store.NewCursorStore(db)

	clockAdapter := adapter.NewClock()

	personaClient, err := ethereum.Dial(ctx, adapter.NewEthClientDialer(), ethereum.ClientConfig{
		ChainID:         chain.ChainID,
		Layer:           layer,
		URL:             chain.WebSocketURL,
		BlockHeadTTL:    chain.BlockHeadTTL,
		StaleWindow:     chain.BlockHeadStaleWindow,
		MaxCachedBlocks: chain.MaxCachedBlocks,
	}, clockAdapter)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to node", zap.Error(err))
	}

	subscriber, err := ethereum.NewSubscriber(ethereum.Config{
		WebSocketURL:         chain.WebSocketURL,
		ChainID:              chain.ChainID,
		Layer:                layer,
		ContractAddress:      chain.ContractAddress,
		InitialRetryInterval: cfg.Subscription.InitialRetryInterval,
		MaxRetryInterval:     cfg.Subscription.MaxRetryInterval,
		MaxElapsedTime:       cfg.Subscription.MaxElapsedTime,
	}, personaClient)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create subscriber", zap.Error(err))
	}

	publisher, err := jetstream.NewPublisher(ctx, jetstream.Config{
		URL:             cfg.NATS.URL,
		StreamName:      cfg.NATS.StreamName,
		MaxReconnects:   cfg.NATS.MaxReconnects,
		ReconnectWait:   cfg.NATS.ReconnectWait,
		ConnectionName:  cfg.NATS.ConnectionName,
		DuplicateWindow: cfg.NATS.DuplicateWindow,
	}, adapter.NewNatsJetStream(), adapter.NewJSON())
	if err != nil {
		logger.FatalCtx(ctx, "Failed to create NATS publisher", zap.Error(err), zap.String("url", cfg.NATS.URL))
	}
	logger.InfoCtx(ctx, "Connected to NATS JetStream")

	eventEmitter := emitter.NewEmitter(subscriber, publisher, cursors, emitter.Config{
		ChainID:         chain.ChainID,
		Layer:           layer,
		ContractAddress: chain.ContractAddress,
		StartBlock:      chain.StartBlock,
		CursorSaveFreq:  cfg.Emitter.CursorSaveFreq,
		CursorSaveDelay: cfg.Emitter.CursorSaveDelay,
	}, clockAdapter)
	defer eventEmitter.Close()

	errCh := make(chan error, 1)
	go func() {
		errCh <- eventEmitter.Run(ctx)
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	exitCode := 0
	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
		<-errCh
	case err := <-errCh:
		if !errors.Is(err, context.Canceled) {
			logger.ErrorCtx(ctx, err, zap.String("component", "emitter"))
			exitCode = 1
		}
		cancel()
	}

	logger.Info("Persona Event Emitter stopped")
	if exitCode != 0 {
		eventEmitter.Close()
		logger.Flush(2 * time.Second)
		os.Exit(exitCode)
	}
}
