package guarantormock

import (
	"context"
	"errors"

	domain "sacco-backoffice/internal/domain/guarantor"
)

var errUnimplemented = errors.New("guarantormock: method not implemented")

// Repo is a function-backed mock that satisfies guarantor.Repository.
// Fill in the fields a test needs; the rest fail loudly.
type Repo struct {
	CreateFn                 func(ctx context.Context, p *domain.Profile) error
	SaveFn                   func(ctx context.Context, p *domain.Profile) error
	GetByIDFn                func(ctx context.Context, id uint64) (*domain.Profile, error)
	GetByProfileIDFn         func(ctx context.Context, profileID string) (*domain.Profile, error)
	GetByMemberIDFn          func(ctx context.Context, memberID uint64) (*domain.Profile, error)
	GetByMemberIDForUpdateFn func(ctx context.Context, memberID uint64) (*domain.Profile, error)
	GetByIDForUpdateFn       func(ctx context.Context, id uint64) (*domain.Profile, error)
	ListFn                   func(ctx context.Context) ([]domain.Profile, error)
}

func (m *Repo) Create(ctx context.Context, p *domain.Profile) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return errUnimplemented
}

func (m *Repo) Save(ctx context.Context, p *domain.Profile) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, p)
	}
	return nil
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Profile, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetByProfileID(ctx context.Context, profileID string) (*domain.Profile, error) {
	if m.GetByProfileIDFn != nil {
		return m.GetByProfileIDFn(ctx, profileID)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetByMemberID(ctx context.Context, memberID uint64) (*domain.Profile, error) {
	if m.GetByMemberIDFn != nil {
		return m.GetByMemberIDFn(ctx, memberID)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetByMemberIDForUpdate(ctx context.Context, memberID uint64) (*domain.Profile, error) {
	if m.GetByMemberIDForUpdateFn != nil {
		return m.GetByMemberIDForUpdateFn(ctx, memberID)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetByIDForUpdate(ctx context.Context, id uint64) (*domain.Profile, error) {
	if m.GetByIDForUpdateFn != nil {
		return m.GetByIDForUpdateFn(ctx, id)
	}
	return nil, errUnimplemented
}

func (m *Repo) List(ctx context.Context) ([]domain.Profile, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, errUnimplemented
}
