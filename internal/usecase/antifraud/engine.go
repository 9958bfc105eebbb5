// Package antifraud runs the immediate-rejection check batteries. Every
// check runs and every triggered reason is collected; the decision is
// rejected iff at least one reason fired.
package antifraud

import (
	"context"
	"fmt"
	"math"
	"time"

	"loan-origination/internal/domain/applicant"
	"loan-origination/internal/usecase/baseline"
)

type Decision string

const (
	DecisionPassed   Decision = "passed"
	DecisionRejected Decision = "rejected"
)

const (
	MaxApplicationsPerDay = 3
	// Income/employment swing checks only apply while the newest loan is
	// this fresh; stale history is not predictive.
	RecencyGateDays = 30

	significantIncomeIncrease = 2.0
	significantIncomeDecrease = 0.5
)

type Result struct {
	Decision Decision `json:"decision"`
	Reasons  []string `json:"reasons"`
}

// RateLimiter is the per-phone application counter. RecordAttempt must
// atomically record the attempt and return how many attempts were already in
// the 24h window before it, pass or fail.
type RateLimiter interface {
	RecordAttempt(ctx context.Context, phone string, now time.Time) (int, error)
}

type Engine struct {
	limiter RateLimiter
	now     func() time.Time
}

func NewEngine(limiter RateLimiter) *Engine {
	return &Engine{limiter: limiter, now: time.Now}
}

// CheckPioneer evaluates a bare profile. It is not pure: the attempt is
// recorded into the rate-limit window on every call, whatever the outcome.
// A limiter failure is a collaborator failure, never a decision.
func (e *Engine) CheckPioneer(ctx context.Context, phone string, p applicant.Profile) (Result, error) {
	var reasons []string
	reasons = appendBaselineReasons(reasons, p)

	count, err := e.limiter.RecordAttempt(ctx, phone, e.now())
	if err != nil {
		return Result{}, fmt.Errorf("rate limiter: %w", err)
	}
	if count >= MaxApplicationsPerDay {
		reasons = append(reasons, reasonDailyLimit(count, MaxApplicationsPerDay))
	}

	if p.HasProperty && p.MonthlyIncome < baseline.AverageIncome {
		reasons = append(reasons, reasonPropertyLowIncome(p.MonthlyIncome, baseline.AverageIncome))
	}

	return result(reasons), nil
}

// CheckRepeater evaluates the submitted profile against the stored one and
// the credit history. Pure function of its inputs.
func (e *Engine) CheckRepeater(current, previous applicant.Profile, history []applicant.CreditEntry) Result {
	var reasons []string
	reasons = appendBaselineReasons(reasons, current)

	for _, entry := range history {
		if entry.Status == applicant.CreditOverdue {
			reasons = append(reasons, reasonOverdueLoans)
			break
		}
	}

	if last := applicant.LastEntry(history); last != nil && e.withinRecencyGate(last.IssueDate) {
		reasons = e.appendIncomeSwing(reasons, previous, current)
		if previous.EmploymentType == applicant.EmploymentFullTime &&
			current.EmploymentType != applicant.EmploymentFullTime {
			reasons = append(reasons, reasonEmploymentChange(current.EmploymentType))
		}
	}

	return result(reasons)
}

func appendBaselineReasons(reasons []string, p applicant.Profile) []string {
	if baseline.UnderMinAge(p.Age) {
		reasons = append(reasons, reasonMinAge(p.Age, baseline.AdultAge))
	}
	if baseline.BelowMinIncome(p.MonthlyIncome) {
		reasons = append(reasons, reasonMinIncome(p.MonthlyIncome, baseline.LowIncome))
	}
	if baseline.Unemployed(p.EmploymentType) {
		reasons = append(reasons, reasonEmploymentStatus(p.EmploymentType))
	}
	return reasons
}

func (e *Engine) appendIncomeSwing(reasons []string, previous, current applicant.Profile) []string {
	ratio := float64(current.MonthlyIncome) / float64(previous.MonthlyIncome)
	if ratio >= significantIncomeIncrease || ratio <= significantIncomeDecrease {
		changePercent := int(math.Round((ratio - 1) * 100))
		reasons = append(reasons, reasonIncomeChange(previous.MonthlyIncome, current.MonthlyIncome, changePercent))
	}
	return reasons
}

func (e *Engine) withinRecencyGate(issueDate time.Time) bool {
	days := int(e.now().UTC().Sub(issueDate.UTC()).Hours() / 24)
	return days <= RecencyGateDays
}

func result(reasons []string) Result {
	if len(reasons) > 0 {
		return Result{Decision: DecisionRejected, Reasons: reasons}
	}
	return Result{Decision: DecisionPassed, Reasons: []string{}}
}
