package loanaccount

import "context"

type Repository interface {
	Create(ctx context.Context, a *LoanAccount) error
	GetByApplicationID(ctx context.Context, applicationID uint64) (*LoanAccount, error)
	GetByReference(ctx context.Context, reference string) (*LoanAccount, error)
}
