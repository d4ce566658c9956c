package applicationmock

import (
	"context"
	"errors"

	domain "sacco-backoffice/internal/domain/application"
)

var errUnimplemented = errors.New("applicationmock: method not implemented")

// Repo is a function-backed mock that satisfies application.Repository.
type Repo struct {
	CreateFn                  func(ctx context.Context, a *domain.LoanApplication) error
	SaveFn                    func(ctx context.Context, a *domain.LoanApplication) error
	GetByReferenceFn          func(ctx context.Context, reference string) (*domain.LoanApplication, error)
	GetByIDFn                 func(ctx context.Context, id uint64) (*domain.LoanApplication, error)
	GetByIDForUpdateFn        func(ctx context.Context, id uint64) (*domain.LoanApplication, error)
	GetByReferenceForUpdateFn func(ctx context.Context, reference string) (*domain.LoanApplication, error)
	ListByMemberIDFn          func(ctx context.Context, memberID uint64) ([]domain.LoanApplication, error)
}

func (m *Repo) Create(ctx context.Context, a *domain.LoanApplication) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, a)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, a *domain.LoanApplication) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, a)
	}
	return nil
}

func (m *Repo) GetByReference(ctx context.Context, reference string) (*domain.LoanApplication, error) {
	if m.GetByReferenceFn != nil {
		return m.GetByReferenceFn(ctx, reference)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.LoanApplication, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetByIDForUpdate(ctx context.Context, id uint64) (*domain.LoanApplication, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, id)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetByReferenceForUpdate(ctx context.Context, reference string) (*domain.LoanApplication, error) {
	if m.GetByReferenceForUpdateFn != nil {
		return m.GetByReferenceForUpdateFn(ctx, reference)
	}
	return nil, errUnimplemented
}

func (m *Repo) ListByMemberID(ctx context.Context, memberID uint64) ([]domain.LoanApplication, error) {
	if m.ListByMemberIDFn != nil {
		return m.ListByMemberIDFn(ctx, memberID)
	}
	return nil, errUnimplemented
}
