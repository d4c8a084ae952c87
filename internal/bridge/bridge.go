package bridge

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	"github.com/feral-file/persona-indexer/internal/adapter"
	"github.com/feral-file/persona-indexer/internal/domain"
	"github.com/feral-file/persona-indexer/internal/logger"
	"github.com/feral-file/persona-indexer/internal/projector"
	natsjs "github.com/feral-file/persona-indexer/internal/providers/jetstream"
)

// Config holds the configuration for the event bridge
type Config struct {
	URL            string
	StreamName     string
	ConsumerName   string
	MaxReconnects  int
	ReconnectWait  time.Duration
	ConnectionName string
	AckWaitTimeout time.Duration
	// Subject filter, defaults to every persona event subject
	FilterSubject string
}

// Bridge feeds events from the JetStream stream into the projector, one at a time
type Bridge interface {
	// Run blocks until ctx is done or an event cannot be projected
	Run(ctx context.Context) error
	// Close closes the bridge and cleans up resources
	Close()
}

type bridge struct {
	nc        adapter.NatsConn
	js        adapter.JetStream
	projector projector.Projector
	json      adapter.JSON
	config    Config
}

// NewBridge creates a new event bridge
func NewBridge(
	cfg Config,
	natsJS adapter.NatsJetStream,
	p projector.Projector,
	jsonAdapter adapter.JSON,
) (Bridge, error) {
	nc, js, err := natsJS.Connect(cfg.URL, natsjs.ConnectOptions(cfg.ConnectionName, cfg.MaxReconnects, cfg.ReconnectWait)...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS and create JetStream: %w", err)
	}

	if cfg.FilterSubject == "" {
		cfg.FilterSubject = natsjs.SubjectPrefix + ".>"
	}

	return &bridge{
		nc:        nc,
		js:        js,
		projector: p,
		json:      jsonAdapter,
		config:    cfg,
	}, nil
}

// Run starts the event bridge
func (b *bridge) Run(ctx context.Context) error {
	logger.Info("Starting event bridge", zap.String("stream", b.config.StreamName), zap.String("consumer", b.config.ConsumerName))

	// A single in-flight message keeps the stream order, which projection depends on
	consumerConfig := jetstream.ConsumerConfig{
		Durable:       b.config.ConsumerName,
		AckPolicy:     jetstream.AckExplicitPolicy,
		AckWait:       b.config.AckWaitTimeout,
		MaxAckPending: 1,
		DeliverPolicy: jetstream.DeliverAllPolicy,
		FilterSubject: b.config.FilterSubject,
	}

	consumer, err := b.js.CreateOrUpdateConsumer(ctx, b.config.StreamName, consumerConfig)
	if err != nil {
		return fmt.Errorf("failed to create/update consumer: %w", err)
	}

	consumerInfo, err := consumer.Info(ctx)
	if err != nil {
		return fmt.Errorf("failed to get consumer info: %w", err)
	}
	logger.Info("Consumer created/retrieved",
		zap.String("consumer", consumerInfo.Name),
		zap.Uint64("pending", consumerInfo.NumPending))

	msgChan := make(chan adapter.Message)
	stop := make(chan struct{})
	defer close(stop)

	sub, err := consumer.Consume(func(msg adapter.Message) {
		select {
		case msgChan <- msg:
		case <-stop:
		}
	})
	if err != nil {
		return fmt.Errorf("failed to create subscription: %w", err)
	}
	defer sub.Stop()

	logger.Info("Started consuming messages")

	for {
		select {
		case <-ctx.Done():
			logger.Info("Shutting down event bridge")
			return ctx.Err()
		case <-sub.Closed():
			return errors.New("consumer subscription closed")
		case msg := <-msgChan:
			if err := b.handleMessage(ctx, msg); err != nil {
				return err
			}
		}
	}
}

// handleMessage projects a single NATS message. The returned error halts the bridge.
func (b *bridge) handleMessage(ctx context.Context, msg adapter.Message) error {
	var deliveryCount uint64
	if metadata, err := msg.Metadata(); err == nil {
		deliveryCount = metadata.NumDelivered
	}

	var event domain.PersonaEvent
	if err := b.json.Unmarshal(msg.Data(), &event); err != nil {
		logger.Error(err, zap.String("message", "Failed to unmarshal event"), zap.String("subject", msg.Subject()))
		// Terminate message for unparseable data
		if err := msg.Term(); err != nil {
			logger.Error(err, zap.String("message", "Failed to terminate message"))
		}
		return nil
	}

	logger.Debug("Received event", append(logger.EventFields(&event), zap.Uint64("deliveryCount", deliveryCount))...)

	err := b.projector.Handle(ctx, &event)
	switch {
	case err == nil:
		if err := msg.Ack(); err != nil {
			logger.Error(err, zap.String("message", "Failed to ACK message"))
		}
		return nil
	case !domain.IsFatal(err):
		logger.Warn("Dropping event that cannot be projected", append(logger.EventFields(&event), zap.Error(err))...)
		if err := msg.Term(); err != nil {
			logger.Error(err, zap.String("message", "Failed to terminate message"))
		}
		return nil
	default:
		// Leave the event on the stream so the next run starts from it
		if err := msg.Nak(); err != nil {
			logger.Error(err, zap.String("message", "Failed to NAK message"))
		}
		return err
	}
}

// Close closes the bridge and cleans up resources
func (b *bridge) Close() {
	if b.nc == nil {
		return
	}

	b.nc.Close()
}
