package loanid

import (
	"fmt"
	"regexp"
	"time"
)

// Pattern matches loan_{phone}_{timestamp}.
var Pattern = regexp.MustCompile(`^loan_7\d{10}_\d{14}$`)

// New builds a loan id in the loan_{phone}_{timestamp} format.
func New(phone string, at time.Time) string {
	return fmt.Sprintf("loan_%s_%s", phone, at.UTC().Format("20060102150405"))
}
