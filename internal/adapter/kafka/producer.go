package kafka

import (
	"context"
	"log/slog"

	"github.com/auracraft/storefront/internal/core/domain"
	"github.com/auracraft/storefront/internal/core/port"
	"github.com/auracraft/storefront/pkg/schema"
	"github.com/twmb/franz-go/pkg/kgo"
)

var _ port.ClientEventsProducer = ClientEventsProducer{}
var _ port.ClientEventsProducer = NopProducer{}

// A producer is used for composition.
//
// Producing records to kafka broker and closing underlying [kgo.Client].
type producer struct {
	opPrefix string
	cl       ProducerClient
}

func (p producer) close() {
	const op = "close"
	log := slog.With("op", makeOp(p.opPrefix, op))
	log.Info("closing producer...")

	ctx, cancel := context.WithTimeout(context.Background(), flushTimeout)
	defer cancel()
	if err := p.cl.Flush(ctx); err != nil {
		log.Warn("buffered records dropped", "err", err)
	}
	p.cl.Close()
	log.Info("producer is closed")
}

// produce buffers r and returns without waiting for the broker. Delivery
// is bounded by the client's record delivery timeout; failures end up in
// the log only. A full buffer fails the record at once.
func (p producer) produce(ctx context.Context, r *kgo.Record) {
	const op = "produce"
	p.cl.TryProduce(
		context.WithoutCancel(ctx), r,
		func(r *kgo.Record, err error) {
			if err != nil {
				slog.Warn("failed to deliver record",
					"op", makeOp(p.opPrefix, op),
					"key", string(r.Key), "err", err)
			}
		},
	)
}

// A ClientEventsProducer produces storefront [domain.ClientEvent]
// records, keyed by event kind. ProduceEvent never waits on the broker.
type ClientEventsProducer struct {
	producer producer
	encoder  Encoder
	opPrefix string
}

func NewClientEventsProducer(
	opts ...ProducerOpt,
) (ClientEventsProducer, error) {
	const op = "NewClientEventsProducer"

	if len(opts) != 2 {
		panic(opErr(ErrTooFewOpts, op)) // develop mistake
	}

	var options producerOpts
	for _, opt := range opts {
		if err := opt(&options); err != nil {
			return ClientEventsProducer{}, opErr(err, op)
		}
	}

	opPrefix := "ClientEventsProducer"
	p := producer{
		opPrefix: opPrefix,
		cl:       options.cl,
	}

	return ClientEventsProducer{
		producer: p,
		encoder:  options.encoder,
		opPrefix: opPrefix,
	}, nil
}

func (p ClientEventsProducer) Close() {
	p.producer.close()
}

func (p ClientEventsProducer) ProduceEvent(
	ctx context.Context, evt domain.ClientEvent,
) error {
	const op = "ProduceEvent"

	if err := ctx.Err(); err != nil {
		return opErr(err, p.opPrefix, op)
	}

	r, err := p.createRecord(evt)
	if err != nil {
		return opErr(err, p.opPrefix, op)
	}

	p.producer.produce(ctx, r)
	return nil
}

func (p ClientEventsProducer) createRecord(
	v domain.ClientEvent,
) (*kgo.Record, error) {
	const op = "createRecord"

	s := p.toSchema(v)
	b, err := p.encoder.Encode(s)
	if err != nil {
		return nil, opErr(err, p.opPrefix, op)
	}

	key := s.Kind
	if key == "" {
		key = s.Path
	}
	return &kgo.Record{Key: []byte(key), Value: b}, nil
}

func (ClientEventsProducer) toSchema(v domain.ClientEvent) schema.ClientEventV1 {
	return clientEventToSchemaV1(v)
}
