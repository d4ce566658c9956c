package loanaccountmock

import (
	"context"
	"errors"

	domain "sacco-backoffice/internal/domain/loanaccount"
)

var errUnimplemented = errors.New("loanaccountmock: method not implemented")

// Repo is a function-backed mock that satisfies loanaccount.Repository.
type Repo struct {
	CreateFn             func(ctx context.Context, a *domain.LoanAccount) error
	GetByApplicationIDFn func(ctx context.Context, applicationID uint64) (*domain.LoanAccount, error)
	GetByReferenceFn     func(ctx context.Context, reference string) (*domain.LoanAccount, error)
}

func (m *Repo) Create(ctx context.Context, a *domain.LoanAccount) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, a)
	}
	return nil
}

func (m *Repo) GetByApplicationID(ctx context.Context, applicationID uint64) (*domain.LoanAccount, error) {
	if m.GetByApplicationIDFn != nil {
		return m.GetByApplicationIDFn(ctx, applicationID)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetByReference(ctx context.Context, reference string) (*domain.LoanAccount, error) {
	if m.GetByReferenceFn != nil {
		return m.GetByReferenceFn(ctx, reference)
	}
	return nil, errUnimplemented
}
