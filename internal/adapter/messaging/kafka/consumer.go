package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"loan-origination/internal/domain/applicant"
	"loan-origination/internal/usecase/decision"

	"github.com/segmentio/kafka-go"
)

// Consumer applies acceptance events to the applicant store. Delivery may be
// at-least-once and reordered across phones; applying the same loan id twice
// is a no-op.
type Consumer struct {
	reader     *kafka.Reader
	applicants applicant.Repository
	retryDelay time.Duration
}

func NewConsumer(brokers []string, topic, groupID string, applicants applicant.Repository) *Consumer {
	return &Consumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:     brokers,
			Topic:       topic,
			GroupID:     groupID,
			StartOffset: kafka.FirstOffset,
		}),
		applicants: applicants,
		retryDelay: time.Second,
	}
}

// Run consumes until ctx is done. Offsets are committed only after a
// successful (or deliberately skipped) apply, so transient store failures
// get redelivered.
func (c *Consumer) Run(ctx context.Context) error {
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil
			}
			return err
		}
		if err := c.apply(ctx, msg.Value); err != nil {
			log.Printf("kafka: apply failed, will retry: %v", err)
			time.Sleep(c.retryDelay)
			continue
		}
		if err := c.reader.CommitMessages(ctx, msg); err != nil {
			log.Printf("kafka: commit failed: %v", err)
		}
	}
}

func (c *Consumer) Close() error { return c.reader.Close() }

// apply returns an error only for retriable failures; malformed or stale
// messages are logged and dropped.
func (c *Consumer) apply(ctx context.Context, value []byte) error {
	var ev decision.Event
	if err := json.Unmarshal(value, &ev); err != nil {
		log.Printf("kafka: undecodable message dropped: %v", err)
		return nil
	}
	if ev.Version != decision.EventVersion {
		log.Printf("kafka: skipping message with unknown version %d", ev.Version)
		return nil
	}

	switch ev.EventType {
	case decision.EventPioneerAccepted:
		return c.applyPioneer(ctx, ev)
	case decision.EventRepeaterAccepted:
		return c.applyRepeater(ctx, ev)
	default:
		log.Printf("kafka: skipping unknown event type %q", ev.EventType)
		return nil
	}
}

func (c *Consumer) applyPioneer(ctx context.Context, ev decision.Event) error {
	_, err := c.applicants.GetByPhone(ctx, ev.Phone)
	switch {
	case errors.Is(err, applicant.ErrNotFound):
		if ev.Profile == nil {
			log.Printf("kafka: pioneer event for %s has no profile, dropped", ev.Phone)
			return nil
		}
		if _, err := c.applicants.UpsertProfile(ctx, ev.Phone, *ev.Profile); err != nil {
			return err
		}
	case err != nil:
		return err
	default:
		log.Printf("kafka: pioneer %s already exists", ev.Phone)
	}
	return c.appendEntry(ctx, ev)
}

func (c *Consumer) applyRepeater(ctx context.Context, ev decision.Event) error {
	_, err := c.applicants.GetByPhone(ctx, ev.Phone)
	if errors.Is(err, applicant.ErrNotFound) {
		log.Printf("kafka: repeater %s not found, skipping", ev.Phone)
		return nil
	}
	if err != nil {
		return err
	}
	return c.appendEntry(ctx, ev)
}

func (c *Consumer) appendEntry(ctx context.Context, ev decision.Event) error {
	entry := ev.LoanEntry
	err := c.applicants.AppendCreditEntry(ctx, ev.Phone, &entry)
	if errors.Is(err, applicant.ErrDuplicateLoan) {
		log.Printf("kafka: loan %s already applied for %s", entry.LoanID, ev.Phone)
		return nil
	}
	return err
}
