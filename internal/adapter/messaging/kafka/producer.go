// Package kafka carries acceptance events between the decision pipeline and
// the credit-history store. Messages are keyed by phone so events for one
// applicant stay in emission order; cross-phone ordering is not guaranteed.
package kafka

import (
	"context"
	"encoding/json"

	"loan-origination/internal/usecase/decision"

	"github.com/segmentio/kafka-go"
)

type Producer struct{ writer *kafka.Writer }

func NewProducer(brokers []string, topic string) *Producer {
	return &Producer{writer: &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
	}}
}

func (p *Producer) Publish(ctx context.Context, ev decision.Event) error {
	value, err := json.Marshal(ev)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(ev.Phone),
		Value: value,
	})
}

func (p *Producer) Close() error { return p.writer.Close() }
