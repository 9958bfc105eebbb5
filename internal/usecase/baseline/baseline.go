// Package baseline holds the single authoritative eligibility threshold
// table, consumed by both the antifraud battery and the scoring pre-check.
package baseline

import "loan-origination/internal/domain/applicant"

const (
	AdultAge   = 18
	AverageAge = 26
	OldAge     = 41

	LowIncome     int64 = 1_000_000
	AverageIncome int64 = 3_000_000
	HighIncome    int64 = 5_000_000

	LowLastAmount     int64 = 5_000_000
	AverageLastAmount int64 = 10_000_001
)

func UnderMinAge(age int) bool { return age < AdultAge }

func BelowMinIncome(income int64) bool { return income < LowIncome }

func Unemployed(et applicant.EmploymentType) bool {
	return et == applicant.EmploymentUnemployed
}
