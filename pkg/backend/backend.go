// Package backend opens the ledger, event sink and registry selected by the
// configuration.
package backend

import (
	"context"
	"fmt"
	"log/slog"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/chris/regnet/pkg/config"
	"github.com/chris/regnet/pkg/events"
	"github.com/chris/regnet/pkg/gateway"
	"github.com/chris/regnet/pkg/ledger"
	ledgerddb "github.com/chris/regnet/pkg/ledger/dynamodb"
	"github.com/chris/regnet/pkg/ledger/leveldb"
	"github.com/chris/regnet/pkg/ledger/memory"
	ledgerredis "github.com/chris/regnet/pkg/ledger/redis"
	"github.com/chris/regnet/pkg/registry"
	"github.com/redis/go-redis/v9"
)

// Backend is an opened registry with the resources behind it.
type Backend struct {
	Registry registry.Registry

	closers []func() error
}

// Close releases everything Open acquired, most recent first.
func (b *Backend) Close() error {
	var first error
	for i := len(b.closers) - 1; i >= 0; i-- {
		if err := b.closers[i](); err != nil && first == nil {
			first = err
		}
	}
	b.closers = nil
	return first
}

// Open builds the registry described by cfg.
func Open(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Backend, error) {
	b := &Backend{}

	sink, err := b.openSink(ctx, cfg)
	if err != nil {
		_ = b.Close()
		return nil, err
	}

	if cfg.LedgerBackend == config.LedgerFabric {
		client, err := gateway.Connect(cfg.Fabric)
		if err != nil {
			_ = b.Close()
			return nil, err
		}
		b.closers = append(b.closers, func() error { client.Close(); return nil })
		if err := b.forwardEvents(client, cfg, sink, logger); err != nil {
			_ = b.Close()
			return nil, err
		}
		b.Registry = client
		return b, nil
	}

	l, err := b.openLedger(ctx, cfg, sink, logger)
	if err != nil {
		_ = b.Close()
		return nil, err
	}

	b.Registry = registry.NewService(l, logger)
	return b, nil
}

type eventForwarder interface {
	ForwardEvents(ctx context.Context, sink ledger.EventSink, logger *slog.Logger) error
}

// forwardEvents relays chaincode events to sink. Committed transactions set
// their events on the ledger itself, so nothing is published locally.
func (b *Backend) forwardEvents(client eventForwarder, cfg *config.Config, sink ledger.EventSink, logger *slog.Logger) error {
	if cfg.EventsBackend == config.EventsNone {
		return nil
	}
	ctx, cancel := context.WithCancel(context.Background())
	if err := client.ForwardEvents(ctx, sink, logger); err != nil {
		cancel()
		return err
	}
	b.closers = append(b.closers, func() error { cancel(); return nil })
	return nil
}

func (b *Backend) openSink(ctx context.Context, cfg *config.Config) (ledger.EventSink, error) {
	switch cfg.EventsBackend {
	case config.EventsSQS:
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			return nil, fmt.Errorf("unable to load SDK config: %w", err)
		}
		return events.NewSQSPublisher(sqs.NewFromConfig(awsCfg), cfg.SQSQueueURL), nil
	case config.EventsAMQP:
		p, err := events.DialAMQP(cfg.AMQPURL, cfg.AMQPQueue)
		if err != nil {
			return nil, err
		}
		b.closers = append(b.closers, p.Close)
		return p, nil
	default:
		return &events.NoOpPublisher{}, nil
	}
}

func (b *Backend) openLedger(ctx context.Context, cfg *config.Config, sink ledger.EventSink, logger *slog.Logger) (ledger.Ledger, error) {
	switch cfg.LedgerBackend {
	case config.LedgerLevelDB:
		store, err := leveldb.Open(cfg.LevelDBPath, sink, logger)
		if err != nil {
			return nil, err
		}
		b.closers = append(b.closers, store.Close)
		return store, nil

	case config.LedgerDynamoDB:
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			return nil, fmt.Errorf("unable to load SDK config: %w", err)
		}
		return ledgerddb.New(dynamodb.NewFromConfig(awsCfg), cfg.DynamoDBTable, sink, logger), nil

	case config.LedgerRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.RedisAddr, err)
		}
		b.closers = append(b.closers, client.Close)
		return ledgerredis.New(client, cfg.RedisPrefix, sink, logger), nil

	default:
		store := memory.New(sink)
		store.Logger = logger
		return store, nil
	}
}
