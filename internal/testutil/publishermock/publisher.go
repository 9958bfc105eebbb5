package publishermock

import (
	"context"

	"loan-origination/internal/usecase/decision"
)

var _ decision.Publisher = (*Publisher)(nil)

// Publisher records published events; PublishFn overrides the default
// success behavior when set.
type Publisher struct {
	PublishFn func(ctx context.Context, ev decision.Event) error
	Events    []decision.Event
}

func (m *Publisher) Publish(ctx context.Context, ev decision.Event) error {
	if m.PublishFn != nil {
		return m.PublishFn(ctx, ev)
	}
	m.Events = append(m.Events, ev)
	return nil
}
