// Package scoring computes the weighted point score and matches it against
// the product catalog thresholds.
package scoring

import (
	"time"

	"loan-origination/internal/domain/applicant"
	"loan-origination/internal/domain/product"
	"loan-origination/internal/usecase/baseline"
)

type Decision string

const (
	DecisionAccepted Decision = "accepted"
	DecisionRejected Decision = "rejected"
)

const (
	MinPioneerScore  = 5
	MinRepeaterScore = 6

	// A non-closed loan older than this counts as a debt.
	creditExpirationDays = 180
	// History older than this earns the longevity bonus.
	firstCreditBonusDays = 365
)

type Outcome struct {
	Decision Decision         `json:"decision"`
	Product  *product.Product `json:"product"`
}

type Engine struct {
	now func() time.Time
}

func NewEngine() *Engine { return &Engine{now: time.Now} }

func (e *Engine) EvaluatePioneer(p applicant.Profile, candidates []product.Product) Outcome {
	if baseline.UnderMinAge(p.Age) || baseline.BelowMinIncome(p.MonthlyIncome) || baseline.Unemployed(p.EmploymentType) {
		return Outcome{Decision: DecisionRejected}
	}
	score := e.Score(p, nil)
	return e.match(score, MinPioneerScore, product.FlowPioneer, candidates)
}

func (e *Engine) EvaluateRepeater(p applicant.Profile, history []applicant.CreditEntry, candidates []product.Product) Outcome {
	if baseline.UnderMinAge(p.Age) || e.hasDebt(history) {
		return Outcome{Decision: DecisionRejected}
	}
	score := e.Score(p, history)
	return e.match(score, MinRepeaterScore, product.FlowRepeater, candidates)
}

// Score sums the independent sub-scores. History contributes only when
// non-empty, up to 6 points.
func (e *Engine) Score(p applicant.Profile, history []applicant.CreditEntry) int {
	score := scoreAge(p.Age)
	score += scoreMonthlyIncome(p.MonthlyIncome)
	score += scoreEmployment(p.EmploymentType)
	if p.HasProperty {
		score += 2
	}
	score += e.scoreCreditHistory(history)
	return score
}

func scoreAge(age int) int {
	switch {
	case age < baseline.AverageAge:
		return 1
	case age < baseline.OldAge:
		return 3
	default:
		return 2
	}
}

func scoreMonthlyIncome(income int64) int {
	switch {
	case income < baseline.AverageIncome:
		return 1
	case income < baseline.HighIncome:
		return 2
	default:
		return 3
	}
}

func scoreEmployment(et applicant.EmploymentType) int {
	switch et {
	case applicant.EmploymentFullTime:
		return 3
	case applicant.EmploymentFreelance:
		return 1
	default:
		return 0
	}
}

func (e *Engine) scoreCreditHistory(history []applicant.CreditEntry) int {
	if len(history) == 0 {
		return 0
	}
	score := 0
	first := applicant.FirstEntry(history)
	if e.now().UTC().Sub(first.IssueDate.UTC()) > firstCreditBonusDays*24*time.Hour {
		score += 3
	}
	switch lastAmount := applicant.LastEntry(history).Amount; {
	case lastAmount < baseline.LowLastAmount:
		score++
	case lastAmount < baseline.AverageLastAmount:
		score += 2
	default:
		score += 3
	}
	return score
}

func (e *Engine) hasDebt(history []applicant.CreditEntry) bool {
	for _, entry := range history {
		if entry.Status == applicant.CreditClosed {
			continue
		}
		if e.now().UTC().Sub(entry.IssueDate.UTC()) > creditExpirationDays*24*time.Hour {
			return true
		}
	}
	return false
}

// match picks the candidate with the highest required score the user still
// clears. On equal thresholds the later candidate in caller order wins.
func (e *Engine) match(userScore, minScore int, flow product.FlowType, candidates []product.Product) Outcome {
	if userScore < minScore {
		return Outcome{Decision: DecisionRejected}
	}
	var selected *product.Product
	selectedRequired := 0
	for i := range candidates {
		required, ok := product.RequiredScore(flow, candidates[i].Name)
		if !ok || userScore < required {
			continue
		}
		if selected != nil && selectedRequired > required {
			continue
		}
		selected = &candidates[i]
		selectedRequired = required
	}
	if selected == nil {
		return Outcome{Decision: DecisionRejected}
	}
	return Outcome{Decision: DecisionAccepted, Product: selected}
}
