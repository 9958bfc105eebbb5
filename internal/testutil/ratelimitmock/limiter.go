package ratelimitmock

import (
	"context"
	"errors"
	"time"

	"loan-origination/internal/usecase/antifraud"
)

var _ antifraud.RateLimiter = (*Limiter)(nil)

var errUnimplemented = errors.New("ratelimitmock: method not implemented")

// Limiter is a function-backed mock that satisfies antifraud.RateLimiter.
type Limiter struct {
	RecordAttemptFn func(ctx context.Context, phone string, now time.Time) (int, error)
}

func (m *Limiter) RecordAttempt(ctx context.Context, phone string, now time.Time) (int, error) {
	if m.RecordAttemptFn != nil {
		return m.RecordAttemptFn(ctx, phone, now)
	}
	return 0, errUnimplemented
}

// Counting is an in-memory limiter that never expires; handy when a test only
// cares about attempt counts.
type Counting struct{ counts map[string]int }

func NewCounting() *Counting { return &Counting{counts: map[string]int{}} }

func (c *Counting) RecordAttempt(_ context.Context, phone string, _ time.Time) (int, error) {
	before := c.counts[phone]
	c.counts[phone]++
	return before, nil
}
