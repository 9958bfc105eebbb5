package applicant

import (
	"errors"
	"fmt"
	"regexp"
	"time"
)

var (
	ErrNotFound      = errors.New("applicant not found")
	ErrAlreadyExists = errors.New("applicant already exists")
	ErrDuplicateLoan = errors.New("duplicate loan id")
)

// PhoneRegex matches an 11-digit number starting with 7.
var PhoneRegex = regexp.MustCompile(`^7\d{10}$`)

type EmploymentType string

const (
	EmploymentFullTime   EmploymentType = "full_time"
	EmploymentFreelance  EmploymentType = "freelance"
	EmploymentUnemployed EmploymentType = "unemployed"
)

type CreditStatus string

const (
	CreditOpen    CreditStatus = "open"
	CreditClosed  CreditStatus = "closed"
	CreditOverdue CreditStatus = "overdue"
)

// Profile is an immutable snapshot of applicant attributes; updates replace
// the whole value. Income is in the smallest currency unit.
type Profile struct {
	Age            int            `gorm:"column:age;not null" json:"age"`
	MonthlyIncome  int64          `gorm:"column:monthly_income;not null" json:"monthly_income"`
	EmploymentType EmploymentType `gorm:"column:employment_type;size:16;not null" json:"employment_type"`
	HasProperty    bool           `gorm:"column:has_property;not null" json:"has_property"`
}

// Applicant is keyed by phone for its whole lifetime; never deleted.
type Applicant struct {
	ID      uint64  `gorm:"primaryKey;column:id" json:"-"`
	Phone   string  `gorm:"column:phone;size:11;not null;uniqueIndex:ux_applicants_phone" json:"phone"`
	Profile Profile `gorm:"embedded" json:"profile"`
	// Chronological by issue date; empty for pioneers.
	CreditHistory []CreditEntry `gorm:"foreignKey:ApplicantID" json:"credit_history"`
	CreatedAt     time.Time     `gorm:"autoCreateTime" json:"-"`
	UpdatedAt     time.Time     `gorm:"autoUpdateTime" json:"-"`
}

func (Applicant) TableName() string { return "applicants" }

type CreditEntry struct {
	ID          uint64       `gorm:"primaryKey;column:id" json:"-"`
	ApplicantID uint64       `gorm:"column:applicant_id;not null;index" json:"-"`
	LoanID      string       `gorm:"column:loan_id;size:64;not null;uniqueIndex:ux_credit_entries_loan_id" json:"loan_id"`
	ProductName string       `gorm:"column:product_name;size:128;not null" json:"product_name"`
	Amount      int64        `gorm:"column:amount;not null" json:"amount"`
	IssueDate   time.Time    `gorm:"column:issue_date;type:date;not null" json:"issue_date"`
	TermDays    int          `gorm:"column:term_days;not null" json:"term_days"`
	Status      CreditStatus `gorm:"column:status;size:16;not null" json:"status"`
	CloseDate   *time.Time   `gorm:"column:close_date;type:date" json:"close_date"`
	CreatedAt   time.Time    `gorm:"autoCreateTime" json:"-"`
}

func (CreditEntry) TableName() string { return "credit_entries" }

// NewCreditEntry enforces the close-date biconditional: close_date is set
// if and only if the status is closed.
func NewCreditEntry(loanID, productName string, amount int64, issueDate time.Time, termDays int, status CreditStatus, closeDate *time.Time) (*CreditEntry, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("amount must be positive, got %d", amount)
	}
	if termDays <= 0 {
		return nil, fmt.Errorf("term_days must be positive, got %d", termDays)
	}
	if status == CreditClosed && closeDate == nil {
		return nil, errors.New("close_date is required when status is closed")
	}
	if status != CreditClosed && closeDate != nil {
		return nil, errors.New("close_date must be empty unless status is closed")
	}
	return &CreditEntry{
		LoanID:      loanID,
		ProductName: productName,
		Amount:      amount,
		IssueDate:   issueDate,
		TermDays:    termDays,
		Status:      status,
		CloseDate:   closeDate,
	}, nil
}

// LastEntry returns the most recent history entry by issue date, or nil.
func LastEntry(history []CreditEntry) *CreditEntry {
	var last *CreditEntry
	for i := range history {
		if last == nil || history[i].IssueDate.After(last.IssueDate) {
			last = &history[i]
		}
	}
	return last
}

// FirstEntry returns the earliest history entry by issue date, or nil.
func FirstEntry(history []CreditEntry) *CreditEntry {
	var first *CreditEntry
	for i := range history {
		if first == nil || history[i].IssueDate.Before(first.IssueDate) {
			first = &history[i]
		}
	}
	return first
}
