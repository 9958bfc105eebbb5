package decision

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"loan-origination/internal/domain/applicant"
	"loan-origination/internal/domain/product"
	"loan-origination/internal/usecase/antifraud"
	"loan-origination/internal/usecase/scoring"
	"loan-origination/pkg/keylock"
	"loan-origination/pkg/loanid"
)

// Orchestrator sequences classifier -> antifraud -> scoring -> history
// mutation. Requests for the same phone are serialized; different phones
// proceed in parallel.
type Orchestrator struct {
	applicants applicant.Repository
	catalog    product.Catalog
	antifraud  *antifraud.Engine
	scoring    *scoring.Engine
	publisher  Publisher
	locks      *keylock.KeyLock
	now        func() time.Time
}

func NewOrchestrator(
	applicants applicant.Repository,
	catalog product.Catalog,
	af *antifraud.Engine,
	sc *scoring.Engine,
	publisher Publisher,
) *Orchestrator {
	return &Orchestrator{
		applicants: applicants,
		catalog:    catalog,
		antifraud:  af,
		scoring:    sc,
		publisher:  publisher,
		locks:      keylock.New(),
		now:        time.Now,
	}
}

// Classify reports whether the phone belongs to a pioneer or a repeater.
// Read-only; classifying the same unknown phone twice yields the same answer.
func (o *Orchestrator) Classify(ctx context.Context, phone string) (product.FlowType, error) {
	_, err := o.applicants.GetByPhone(ctx, phone)
	switch {
	case err == nil:
		return product.FlowRepeater, nil
	case errors.Is(err, applicant.ErrNotFound):
		return product.FlowPioneer, nil
	default:
		return "", upstream(err)
	}
}

// SelectProducts classifies the phone and returns the matching catalog.
func (o *Orchestrator) SelectProducts(ctx context.Context, phone string) (product.FlowType, []product.Product, error) {
	flow, err := o.Classify(ctx, phone)
	if err != nil {
		return "", nil, err
	}
	products, err := o.catalog.ListByFlow(ctx, flow)
	if err != nil {
		return "", nil, upstream(err)
	}
	return flow, products, nil
}

// CheckPioneer runs the pioneer antifraud battery only. The rate-limit
// attempt is recorded even when the caller abandons the request.
func (o *Orchestrator) CheckPioneer(ctx context.Context, phone string, p applicant.Profile) (antifraud.Result, error) {
	unlock := o.locks.Lock(phone)
	defer unlock()

	res, err := o.antifraud.CheckPioneer(ctx, phone, p)
	if err != nil {
		return antifraud.Result{}, upstream(err)
	}
	return res, nil
}

// CheckRepeater runs the repeater antifraud battery against the stored
// profile and history. Unknown phones are a request-shape error, not a
// rejection.
func (o *Orchestrator) CheckRepeater(ctx context.Context, phone string, current applicant.Profile) (antifraud.Result, error) {
	a, err := o.applicants.GetByPhone(ctx, phone)
	if err != nil {
		return antifraud.Result{}, upstream(err)
	}
	return o.antifraud.CheckRepeater(current, a.Profile, a.CreditHistory), nil
}

// SubmitPioneer runs the full pipeline for a first-time applicant. On
// acceptance the applicant record is materialized and the credit entry
// appended before the verdict is returned.
func (o *Orchestrator) SubmitPioneer(ctx context.Context, phone string, p applicant.Profile, candidates []product.Product) (*Verdict, error) {
	unlock := o.locks.Lock(phone)
	defer unlock()

	if err := validateCandidates(product.FlowPioneer, candidates); err != nil {
		return nil, err
	}

	_, err := o.applicants.GetByPhone(ctx, phone)
	switch {
	case err == nil:
		return nil, applicant.ErrAlreadyExists
	case !errors.Is(err, applicant.ErrNotFound):
		return nil, upstream(err)
	}

	res, err := o.antifraud.CheckPioneer(ctx, phone, p)
	if err != nil {
		return nil, upstream(err)
	}
	if res.Decision == antifraud.DecisionRejected {
		return &Verdict{Decision: DecisionRejected, Reasons: res.Reasons}, nil
	}

	out := o.scoring.EvaluatePioneer(p, candidates)
	if out.Product == nil {
		return &Verdict{Decision: DecisionRejected, Reasons: []string{}}, nil
	}

	if _, err := o.applicants.UpsertProfile(ctx, phone, p); err != nil {
		return nil, upstream(err)
	}
	entry, err := o.appendEntry(ctx, phone, out.Product)
	if err != nil {
		return nil, err
	}
	o.publish(ctx, Event{
		Version:    EventVersion,
		EventType:  EventPioneerAccepted,
		Phone:      phone,
		Profile:    &p,
		LoanEntry:  *entry,
		OccurredAt: o.now().UTC(),
	})
	return &Verdict{Decision: DecisionAccepted, Product: out.Product, Reasons: []string{}}, nil
}

// SubmitRepeater runs the full pipeline for a returning applicant. Antifraud
// compares the submitted profile against the stored one; scoring uses the
// stored profile and history.
func (o *Orchestrator) SubmitRepeater(ctx context.Context, phone string, current applicant.Profile, candidates []product.Product) (*Verdict, error) {
	unlock := o.locks.Lock(phone)
	defer unlock()

	if err := validateCandidates(product.FlowRepeater, candidates); err != nil {
		return nil, err
	}

	a, err := o.applicants.GetByPhone(ctx, phone)
	if err != nil {
		return nil, upstream(err)
	}

	res := o.antifraud.CheckRepeater(current, a.Profile, a.CreditHistory)
	if res.Decision == antifraud.DecisionRejected {
		return &Verdict{Decision: DecisionRejected, Reasons: res.Reasons}, nil
	}

	out := o.scoring.EvaluateRepeater(a.Profile, a.CreditHistory, candidates)
	if out.Product == nil {
		return &Verdict{Decision: DecisionRejected, Reasons: []string{}}, nil
	}

	entry, err := o.appendEntry(ctx, phone, out.Product)
	if err != nil {
		return nil, err
	}
	o.publish(ctx, Event{
		Version:    EventVersion,
		EventType:  EventRepeaterAccepted,
		Phone:      phone,
		LoanEntry:  *entry,
		OccurredAt: o.now().UTC(),
	})
	return &Verdict{Decision: DecisionAccepted, Product: out.Product, Reasons: []string{}}, nil
}

func (o *Orchestrator) appendEntry(ctx context.Context, phone string, prod *product.Product) (*applicant.CreditEntry, error) {
	now := o.now().UTC()
	issueDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	entry, err := applicant.NewCreditEntry(
		loanid.New(phone, now),
		prod.Name,
		prod.MaxAmount,
		issueDate,
		prod.TermDays,
		applicant.CreditOpen,
		nil,
	)
	if err != nil {
		return nil, err
	}
	if err := o.applicants.AppendCreditEntry(ctx, phone, entry); err != nil {
		return nil, upstream(err)
	}
	return entry, nil
}

func (o *Orchestrator) publish(ctx context.Context, ev Event) {
	if o.publisher == nil {
		return
	}
	if err := o.publisher.Publish(ctx, ev); err != nil {
		log.Printf("decision: publish %s for %s failed: %v", ev.EventType, ev.Phone, err)
	}
}

func validateCandidates(flow product.FlowType, candidates []product.Product) error {
	for _, c := range candidates {
		if _, ok := product.RequiredScore(flow, c.Name); !ok {
			return fmt.Errorf("%w: %s", product.ErrUnknownProduct, c.Name)
		}
	}
	return nil
}

// upstream wraps collaborator failures, leaving domain sentinels untouched
// so handlers can keep the error taxonomy apart.
func upstream(err error) error {
	switch {
	case errors.Is(err, applicant.ErrNotFound),
		errors.Is(err, applicant.ErrAlreadyExists),
		errors.Is(err, applicant.ErrDuplicateLoan):
		return err
	default:
		return fmt.Errorf("%w: %v", ErrUpstream, err)
	}
}
