package guaranteemock

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	domain "sacco-backoffice/internal/domain/guarantee"
)

var errUnimplemented = errors.New("guaranteemock: method not implemented")

// Repo is a function-backed mock that satisfies guarantee.Repository.
type Repo struct {
	CreateFn                       func(ctx context.Context, g *domain.Request) error
	SaveFn                         func(ctx context.Context, g *domain.Request) error
	GetByReferenceFn               func(ctx context.Context, reference string) (*domain.Request, error)
	GetByApplicationAndGuarantorFn func(ctx context.Context, applicationID, guarantorID uint64) (*domain.Request, error)
	ListByApplicationFn            func(ctx context.Context, applicationID uint64, statuses ...domain.Status) ([]domain.Request, error)
	ListForPartyFn                 func(ctx context.Context, memberID uint64) ([]domain.Request, error)
	SumAcceptedByOthersFn          func(ctx context.Context, applicationID, borrowerGuarantorID uint64) (decimal.Decimal, error)
	CountActiveByGuarantorFn       func(ctx context.Context, guarantorID uint64) (int64, error)
}

func (m *Repo) Create(ctx context.Context, g *domain.Request) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, g)
	}
	return nil
}

func (m *Repo) Save(ctx context.Context, g *domain.Request) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, g)
	}
	return nil
}

func (m *Repo) GetByReference(ctx context.Context, reference string) (*domain.Request, error) {
	if m.GetByReferenceFn != nil {
		return m.GetByReferenceFn(ctx, reference)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetByApplicationAndGuarantor(ctx context.Context, applicationID, guarantorID uint64) (*domain.Request, error) {
	if m.GetByApplicationAndGuarantorFn != nil {
		return m.GetByApplicationAndGuarantorFn(ctx, applicationID, guarantorID)
	}
	return nil, errUnimplemented
}

func (m *Repo) ListByApplication(ctx context.Context, applicationID uint64, statuses ...domain.Status) ([]domain.Request, error) {
	if m.ListByApplicationFn != nil {
		return m.ListByApplicationFn(ctx, applicationID, statuses...)
	}
	return nil, nil
}

func (m *Repo) ListForParty(ctx context.Context, memberID uint64) ([]domain.Request, error) {
	if m.ListForPartyFn != nil {
		return m.ListForPartyFn(ctx, memberID)
	}
	return nil, errUnimplemented
}

func (m *Repo) SumAcceptedByOthers(ctx context.Context, applicationID, borrowerGuarantorID uint64) (decimal.Decimal, error) {
	if m.SumAcceptedByOthersFn != nil {
		return m.SumAcceptedByOthersFn(ctx, applicationID, borrowerGuarantorID)
	}
	return decimal.Zero, nil
}

func (m *Repo) CountActiveByGuarantor(ctx context.Context, guarantorID uint64) (int64, error) {
	if m.CountActiveByGuarantorFn != nil {
		return m.CountActiveByGuarantorFn(ctx, guarantorID)
	}
	return 0, nil
}
