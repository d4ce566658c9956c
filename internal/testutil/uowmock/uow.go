package uowmock

import (
	"context"
	"errors"

	"sacco-backoffice/internal/domain/application"
	"sacco-backoffice/internal/domain/uow"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies uow.UnitOfWork.
// Fill in the function fields you need in a test; unfilled ones return errUnimplemented.
type UoW struct {
	WithinTxFn            func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinApplicationTxFn func(ctx context.Context, reference string, fn func(r uow.Repos, a *application.LoanApplication) error) error
}

func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}

func (m *UoW) WithinApplicationTx(ctx context.Context, reference string, fn func(r uow.Repos, a *application.LoanApplication) error) error {
	if m.WithinApplicationTxFn != nil {
		return m.WithinApplicationTxFn(ctx, reference, fn)
	}
	return errUnimplemented
}

// WithRepos returns a UoW whose transactions run the callback immediately
// against the given repos, with no transactional behavior. WithinApplicationTx
// resolves the application through Applications.GetByReferenceForUpdate, same
// as the real implementation.
func WithRepos(r uow.Repos) *UoW {
	return &UoW{
		WithinTxFn: func(ctx context.Context, fn func(r uow.Repos) error) error {
			return fn(r)
		},
		WithinApplicationTxFn: func(ctx context.Context, reference string, fn func(r uow.Repos, a *application.LoanApplication) error) error {
			a, err := r.Applications.GetByReferenceForUpdate(ctx, reference)
			if err != nil {
				return err
			}
			return fn(r, a)
		},
	}
}
