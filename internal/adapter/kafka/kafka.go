package kafka

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/auracraft/storefront/internal/core/domain"
	"github.com/auracraft/storefront/pkg/retry"
	"github.com/auracraft/storefront/pkg/schema"
	"github.com/twmb/franz-go/pkg/kgo"
)

var (
	ErrTooFewOpts = errors.New("too few options")
)

const (
	pingAttempts    = 5
	pingDelay       = 200 * time.Millisecond
	deliveryTimeout = 5 * time.Second
	maxBuffered     = 4096
	flushTimeout    = 5 * time.Second
)

type ProducerOpt func(*producerOpts) error

type producerOpts struct {
	cl      ProducerClient
	encoder Encoder
}

// ProducerClientOpt connects to the seed brokers and pings them,
// retrying with exponential backoff before giving up.
func ProducerClientOpt(
	ctx context.Context,
	seedBrokers []string,
	topic string,
	tlsConfig *tls.Config,
) ProducerOpt {
	return func(opts *producerOpts) error {
		kgoOpts := []kgo.Opt{
			kgo.SeedBrokers(seedBrokers...),
			kgo.DefaultProduceTopicAlways(),
			kgo.DefaultProduceTopic(topic),
			kgo.RequiredAcks(kgo.LeaderAck()),
			kgo.DisableIdempotentWrite(),
			kgo.ProducerLinger(50 * time.Millisecond),
			kgo.RecordDeliveryTimeout(deliveryTimeout),
			kgo.MaxBufferedRecords(maxBuffered),
		}
		if tlsConfig != nil {
			kgoOpts = append(kgoOpts, kgo.DialTLSConfig(tlsConfig))
		}

		cl, err := kgo.NewClient(kgoOpts...)
		if err != nil {
			return err
		}

		err = retry.Do(ctx, retry.RetryConfig{
			MaxAttempts: pingAttempts,
			Backoff:     retry.ExponentialBackoff(pingDelay),
		}, func() error {
			return cl.Ping(ctx)
		})
		if err != nil {
			cl.Close()
			return err
		}

		opts.cl = cl
		return nil
	}
}

func ProducerEncoderOpt(encoder Encoder) ProducerOpt {
	return func(opts *producerOpts) error {
		if encoder == nil {
			return errors.New("encoder is nil")
		}
		opts.encoder = encoder
		return nil
	}
}

type ProducerClient interface {
	TryProduce(ctx context.Context, r *kgo.Record, promise func(*kgo.Record, error))
	Flush(ctx context.Context) error
	Close()
}

type Encoder interface {
	Encode(v any) ([]byte, error)
}

func makeOp(s ...string) string {
	return strings.Join(s, ".")
}

func opErr(err error, op ...string) error {
	return fmt.Errorf("%s: %w", makeOp(op...), err)
}

func clientEventToSchemaV1(v domain.ClientEvent) (s schema.ClientEventV1) {
	s.ID = v.ID
	s.Kind = string(v.Kind)
	s.Path = v.Path
	s.Category = v.Category
	s.Query = v.Query
	s.Role = v.Role
	s.OccurredAt = v.OccurredAt.UTC()
	return
}

// NopProducer drops every event. It stands in when no brokers are configured.
type NopProducer struct{}

func (NopProducer) ProduceEvent(ctx context.Context, evt domain.ClientEvent) error {
	slog.Debug("client event dropped, producer disabled",
		"op", "NopProducer.ProduceEvent", "kind", evt.Kind)
	return nil
}

func (NopProducer) Close() {}
