package catalogmock

import (
	"context"
	"errors"

	domain "loan-origination/internal/domain/product"
)

var _ domain.Catalog = (*Catalog)(nil)

var errUnimplemented = errors.New("catalogmock: method not implemented")

// Catalog is a function-backed mock that satisfies domain.Catalog.
type Catalog struct {
	ListByFlowFn func(ctx context.Context, flow domain.FlowType) ([]domain.Product, error)
}

func (m *Catalog) ListByFlow(ctx context.Context, flow domain.FlowType) ([]domain.Product, error) {
	if m.ListByFlowFn != nil {
		return m.ListByFlowFn(ctx, flow)
	}
	return nil, errUnimplemented
}
