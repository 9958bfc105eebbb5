package applicant

import "context"

type Repository interface {
	// GetByPhone loads an applicant with history ordered by issue date.
	// Returns ErrNotFound for unknown phones.
	GetByPhone(ctx context.Context, phone string) (*Applicant, error)

	// UpsertProfile creates the applicant on first write, replaces the
	// stored profile on subsequent ones.
	UpsertProfile(ctx context.Context, phone string, p Profile) (*Applicant, error)

	// AppendCreditEntry rejects duplicate loan ids with ErrDuplicateLoan.
	AppendCreditEntry(ctx context.Context, phone string, e *CreditEntry) error
}
