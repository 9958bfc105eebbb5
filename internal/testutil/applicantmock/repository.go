package applicantmock

import (
	"context"
	"errors"

	domain "loan-origination/internal/domain/applicant"
)

var _ domain.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("applicantmock: method not implemented")

// Repo is a function-backed mock that satisfies domain.Repository. Fill in
// the fields a test needs; unfilled ones return errUnimplemented.
type Repo struct {
	GetByPhoneFn        func(ctx context.Context, phone string) (*domain.Applicant, error)
	UpsertProfileFn     func(ctx context.Context, phone string, p domain.Profile) (*domain.Applicant, error)
	AppendCreditEntryFn func(ctx context.Context, phone string, e *domain.CreditEntry) error
}

func (m *Repo) GetByPhone(ctx context.Context, phone string) (*domain.Applicant, error) {
	if m.GetByPhoneFn != nil {
		return m.GetByPhoneFn(ctx, phone)
	}
	return nil, errUnimplemented
}

func (m *Repo) UpsertProfile(ctx context.Context, phone string, p domain.Profile) (*domain.Applicant, error) {
	if m.UpsertProfileFn != nil {
		return m.UpsertProfileFn(ctx, phone, p)
	}
	return nil, errUnimplemented
}

func (m *Repo) AppendCreditEntry(ctx context.Context, phone string, e *domain.CreditEntry) error {
	if m.AppendCreditEntryFn != nil {
		return m.AppendCreditEntryFn(ctx, phone, e)
	}
	return errUnimplemented
}
