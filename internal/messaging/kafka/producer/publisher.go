package producer

import (
	"context"
	"encoding/json"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// Publisher menerbitkan event domain secara fire-and-forget. Event adalah
// sinyal ke sistem lain (laporan, notifikasi), bukan bagian dari transisi
// state; kegagalan publish dicatat dan tidak pernah menggagalkan aksi.
type Publisher interface {
	Publish(ctx context.Context, topic, key, eventType string, payload any)
}

type publisher struct {
	writer *kafkago.Writer
	logger *zap.Logger
}

func NewPublisher(brokers []string, logger ...*zap.Logger) Publisher {
	l := zap.L().Named("kafka.publisher")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("kafka.publisher")
	}
	writer := &kafkago.Writer{
		Addr:     kafkago.TCP(brokers...),
		Balancer: &kafkago.LeastBytes{},
	}
	return &publisher{writer: writer, logger: l}
}

func (p *publisher) Publish(ctx context.Context, topic, key, eventType string, payload any) {
	body, err := json.Marshal(payload)
	if err != nil {
		p.logger.Error("marshal event failed", zap.String("topic", topic), zap.Error(err))
		return
	}

	msg := kafkago.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: body,
		Headers: []kafkago.Header{
			{Key: "event_type", Value: []byte(eventType)},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.Warn("publish event failed",
			zap.String("topic", topic),
			zap.String("event_type", eventType),
			zap.Error(err))
	}
}

// Noop dipakai saat broker tidak dikonfigurasi.
type Noop struct{}

func (Noop) Publish(ctx context.Context, topic, key, eventType string, payload any) {}
