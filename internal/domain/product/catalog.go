package product

import "context"

// Required-score thresholds are static configuration, not derived data.
var (
	pioneerScores = map[string]int{
		"MicroLoan":    5,
		"QuickMoney":   7,
		"ConsumerLoan": 9,
	}
	repeaterScores = map[string]int{
		"LoyaltyLoan":   6,
		"AdvantagePlus": 8,
		"PrimeCredit":   10,
	}
)

// RequiredScore resolves a product name to its minimum score for the flow.
func RequiredScore(flow FlowType, name string) (int, bool) {
	switch flow {
	case FlowPioneer:
		s, ok := pioneerScores[name]
		return s, ok
	case FlowRepeater:
		s, ok := repeaterScores[name]
		return s, ok
	}
	return 0, false
}

type Catalog interface {
	ListByFlow(ctx context.Context, flow FlowType) ([]Product, error)
}

// DefaultCatalog seeds an empty products table.
func DefaultCatalog() []Product {
	return []Product{
		{Name: "MicroLoan", MaxAmount: 3_000_000, TermDays: 30, InterestRateDaily: 2.0, FlowType: FlowPioneer},
		{Name: "QuickMoney", MaxAmount: 1_500_000, TermDays: 15, InterestRateDaily: 2.5, FlowType: FlowPioneer},
		{Name: "ConsumerLoan", MaxAmount: 50_000_000, TermDays: 90, InterestRateDaily: 1.5, FlowType: FlowPioneer},
		{Name: "LoyaltyLoan", MaxAmount: 5_000_000, TermDays: 60, InterestRateDaily: 1.2, FlowType: FlowRepeater},
		{Name: "AdvantagePlus", MaxAmount: 20_000_000, TermDays: 120, InterestRateDaily: 1.0, FlowType: FlowRepeater},
		{Name: "PrimeCredit", MaxAmount: 100_000_000, TermDays: 180, InterestRateDaily: 0.8, FlowType: FlowRepeater},
	}
}
