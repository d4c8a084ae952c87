package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"

	"github.com/feral-file/persona-indexer/internal/adapter"
	"github.com/feral-file/persona-indexer/internal/bridge"
	"github.com/feral-file/persona-indexer/internal/config"
	"github.com/feral-file/persona-indexer/internal/domain"
	"github.com/feral-file/persona-indexer/internal/emitter"
	"github.com/feral-file/persona-indexer/internal/logger"
	"github.com/feral-file/persona-indexer/internal/projector"
	"github.com/feral-file/persona-indexer/internal/providers/ethereum"
	"github.com/feral-file/persona-indexer/internal/store"
)

var (
	configFile = flag.String("config", "", "Path to configuration file")
	envPath    = flag.String("env", "config/", "Path to environment files")
	direct     = flag.Bool("direct", false, "Project straight from the chain subscriptions instead of NATS")
	layersFlag = flag.String("layers", "l1,l2", "Layers followed in direct mode")
)

func main() {
	flag.Parse()

	// Load configuration
	config.ChdirRepoRoot()
	cfg, err := config.LoadProjectorConfig(*configFile, *envPath)
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize logger with sentry integration
	err = logger.Initialize(logger.Config{
		Service:         "persona-projector",
		Debug:           cfg.Debug,
		SentryDSN:       cfg.SentryDSN,
		BreadcrumbLevel: zapcore.InfoLevel,
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer logger.Flush(2 * time.Second)
	logger.InfoCtx(ctx, "Starting Persona Projector", zap.Bool("direct", *direct))

	db, err := store.Open(cfg.Database.Driver, cfg.Database.DSN(), cfg.Debug)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to database", zap.Error(err))
	}
	if err := store.ConfigureConnectionPool(db, cfg.Database.MaxOpenConns, cfg.Database.MaxIdleConns, cfg.Database.ConnMaxLifetime, cfg.Database.ConnMaxIdleTime); err != nil {
		logger.FatalCtx(ctx, "Failed to configure connection pool", zap.Error(err))
	}
	if err := store.AutoMigrate(db); err != nil {
		logger.FatalCtx(ctx, "Failed to migrate database", zap.Error(err))
	}
	dataStore := store.NewGormStore(db)

	clockAdapter := adapter.NewClock()
	dialer := adapter.NewEthClientDialer()

	// Contract reads of the L1 projector go to the registry node
	l1, err := cfg.Chain(domain.LayerL1)
	if err != nil {
		logger.FatalCtx(ctx, "Invalid l1 chain config", zap.Error(err))
	}
	reader, err := ethereum.Dial(ctx, dialer, clientConfig(domain.LayerL1, l1, true), clockAdapter)
	if err != nil {
		logger.FatalCtx(ctx, "Failed to connect to l1 node", zap.Error(err))
	}
	defer reader.Close()

	personaProjector := projector.New(projector.Config{
		TolerateURIFailure:  cfg.Projection.TolerateURIFailure,
		FirstPersonaID:      cfg.Projection.FirstPersonaID,
		BackfillConcurrency: cfg.Projection.BackfillConcurrency,
	}, dataStore, reader)

	errCh := make(chan error, 1)
	if *direct {
		layers, err := parseLayers(*layersFlag)
		if err != nil {
			logger.FatalCtx(ctx, "Invalid layers", zap.Error(err))
		}
		emitters := make([]emitter.Emitter, 0, len(layers))
		for _, layer := range layers {
			e, err := newDirectEmitter(ctx, cfg, layer, dialer, clockAdapter, dataStore, personaProjector)
			if err != nil {
				logger.FatalCtx(ctx, "Failed to create emitter", zap.String("layer", layer.String()), zap.Error(err))
			}
			defer e.Close()
			emitters = append(emitters, e)
		}

		go func() {
			errCh <- runEmitters(ctx, emitters)
		}()
	} else {
		eventBridge, err := bridge.NewBridge(bridge.Config{
			URL:            cfg.NATS.URL,
			StreamName:     cfg.NATS.StreamName,
			ConsumerName:   cfg.NATS.ConsumerName,
			MaxReconnects:  cfg.NATS.MaxReconnects,
			ReconnectWait:  cfg.NATS.ReconnectWait,
			ConnectionName: cfg.NATS.ConnectionName,
			AckWaitTimeout: cfg.NATS.AckWait,
		}, adapter.NewNatsJetStream(), personaProjector, adapter.NewJSON())
		if err != nil {
			logger.FatalCtx(ctx, "Failed to create event bridge", zap.Error(err), zap.String("url", cfg.NATS.URL))
		}
		defer eventBridge.Close()
		logger.InfoCtx(ctx, "Connected to NATS JetStream")

		go func() {
			errCh <- eventBridge.Run(ctx)
		}()
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.InfoCtx(ctx, "Received shutdown signal", zap.String("signal", sig.String()))
		cancel()
		<-errCh
	case err := <-errCh:
		cancel()
		if err != nil && !errors.Is(err, context.Canceled) {
			// A fatal projection error leaves the stream position untouched for a restart
			logger.ErrorCtx(ctx, err, zap.String("component", "projector"))
			logger.Flush(2 * time.Second)
			os.Exit(1)
		}
	}

	logger.Info("Persona Projector stopped")
}

func clientConfig(layer domain.Layer, chain config.ChainConfig, preferRPC bool) ethereum.ClientConfig {
	url := chain.WebSocketURL
	if preferRPC && chain.RPCURL != "" {
		url = chain.RPCURL
	}
	return ethereum.ClientConfig{
		ChainID:         chain.ChainID,
		Layer:           layer,
		URL:             url,
		BlockHeadTTL:    chain.BlockHeadTTL,
		StaleWindow:     chain.BlockHeadStaleWindow,
		MaxCachedBlocks: chain.MaxCachedBlocks,
	}
}

func parseLayers(s string) ([]domain.Layer, error) {
	var layers []domain.Layer
	for _, part := range strings.Split(s, ",") {
		layer, err := domain.ParseLayer(strings.TrimSpace(part))
		if err != nil {
			return nil, err
		}
		layers = append(layers, layer)
	}
	return layers, nil
}

// newDirectEmitter wires a layer subscription to the projector without a broker
func newDirectEmitter(
	ctx context.Context,
	cfg *config.ProjectorConfig,
	layer domain.Layer,
	dialer adapter.EthClientDialer,
	clock adapter.Clock,
	cursors store.CursorStore,
	p projector.Projector,
) (emitter.Emitter, error) {
	chain, err := cfg.Chain(layer)
	if err != nil {
		return nil, err
	}

	client, err := ethereum.Dial(ctx, dialer, clientConfig(layer, chain, false), clock)
	if err != nil {
		return nil, err
	}

	subscriber, err := ethereum.NewSubscriber(ethereum.Config{
		WebSocketURL:         chain.WebSocketURL,
		ChainID:              chain.ChainID,
		Layer:                layer,
		ContractAddress:      chain.ContractAddress,
		InitialRetryInterval: cfg.Subscription.InitialRetryInterval,
		MaxRetryInterval:     cfg.Subscription.MaxRetryInterval,
		MaxElapsedTime:       cfg.Subscription.MaxElapsedTime,
	}, client)
	if err != nil {
		client.Close()
		return nil, err
	}

	return emitter.NewEmitter(subscriber, bridge.NewDirectPublisher(p), cursors, emitter.Config{
		ChainID:         chain.ChainID,
		Layer:           layer,
		ContractAddress: chain.ContractAddress,
		StartBlock:      chain.StartBlock,
		CursorSaveFreq:  cfg.Emitter.CursorSaveFreq,
		CursorSaveDelay: cfg.Emitter.CursorSaveDelay,
	}, clock), nil
}

// runEmitters runs one emitter per layer; the first failure stops the others
func runEmitters(ctx context.Context, emitters []emitter.Emitter) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, e := range emitters {
		g.Go(func() error {
			return e.Run(gctx)
		})
	}
	return g.Wait()
}
