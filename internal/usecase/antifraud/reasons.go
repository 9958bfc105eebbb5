package antifraud

import (
	"fmt"

	"loan-origination/internal/domain/applicant"
)

const reasonOverdueLoans = "Account has overdue payments on previous loans."

func reasonMinAge(userAge, minAge int) string {
	return fmt.Sprintf("User is under minimum age (User age: %d, min: %d).", userAge, minAge)
}

func reasonMinIncome(userIncome, minIncome int64) string {
	return fmt.Sprintf("Monthly income is below minimum threshold (User income: %d, min: %d).", userIncome, minIncome)
}

func reasonEmploymentStatus(et applicant.EmploymentType) string {
	return fmt.Sprintf("Employment type is not allowed (Current: %s).", et)
}

func reasonDailyLimit(count, maxAllowed int) string {
	return fmt.Sprintf("Daily application limit exceeded (%d applications in 24 hours). Max: %d.", count, maxAllowed)
}

func reasonPropertyLowIncome(userIncome, threshold int64) string {
	return fmt.Sprintf("User has property but income is below threshold (User income: %d, threshold: %d).", userIncome, threshold)
}

func reasonIncomeChange(prev, current int64, changePercent int) string {
	return fmt.Sprintf("Significant income change detected (previous: %d, current: %d, change: %d%%).", prev, current, changePercent)
}

func reasonEmploymentChange(current applicant.EmploymentType) string {
	return fmt.Sprintf("Employment type changed from full_time to %s.", current)
}
