package application

import "context"

type Repository interface {
	Create(ctx context.Context, a *LoanApplication) error
	Save(ctx context.Context, a *LoanApplication) error
	GetByReference(ctx context.Context, reference string) (*LoanApplication, error)
	GetByID(ctx context.Context, id uint64) (*LoanApplication, error)
	// GetByIDForUpdate locks the application row when the caller only holds
	// the numeric FK (the guarantee machine reaching its parent).
	GetByIDForUpdate(ctx context.Context, id uint64) (*LoanApplication, error)
	// GetByReferenceForUpdate locks the application row so the status
	// precondition check and the status write happen under one lock.
	GetByReferenceForUpdate(ctx context.Context, reference string) (*LoanApplication, error)
	ListByMemberID(ctx context.Context, memberID uint64) ([]LoanApplication, error)
}
