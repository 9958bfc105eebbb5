package decision

import (
	"context"
	"errors"
	"time"

	"loan-origination/internal/domain/applicant"
	"loan-origination/internal/domain/product"
)

// ErrUpstream marks collaborator failures (store, rate limiter, catalog).
// They surface unchanged through the orchestrator and are never downgraded
// to a business rejection.
var ErrUpstream = errors.New("upstream unavailable")

const (
	DecisionAccepted = "accepted"
	DecisionRejected = "rejected"
)

// Verdict is the pipeline's terminal output. Product is set iff accepted;
// Reasons carry antifraud rejections and stay empty for scoring ones.
type Verdict struct {
	Decision string           `json:"decision"`
	Product  *product.Product `json:"product"`
	Reasons  []string         `json:"reasons"`
}

const (
	EventVersion = 1

	EventPioneerAccepted  = "pioneer_accepted"
	EventRepeaterAccepted = "repeater_accepted"
)

// Event is the acceptance notification published after a history append.
type Event struct {
	Version    int                   `json:"version"`
	EventType  string                `json:"event_type"`
	Phone      string                `json:"phone"`
	Profile    *applicant.Profile    `json:"profile,omitempty"`
	LoanEntry  applicant.CreditEntry `json:"loan_entry"`
	OccurredAt time.Time             `json:"occurred_at"`
}

// Publisher delivers acceptance events. Fire-and-forget: the orchestrator
// logs publish failures and proceeds.
type Publisher interface {
	Publish(ctx context.Context, ev Event) error
}
