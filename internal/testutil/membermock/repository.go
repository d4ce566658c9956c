package membermock

import (
	"context"
	"errors"

	domain "sacco-backoffice/internal/domain/member"
)

var errUnimplemented = errors.New("membermock: method not implemented")

// Repo is a function-backed mock that satisfies member.Repository.
type Repo struct {
	GetByMemberIDFn func(ctx context.Context, memberID string) (*domain.Member, error)
	GetByMemberNoFn func(ctx context.Context, memberNo string) (*domain.Member, error)
	GetByIDFn       func(ctx context.Context, id uint64) (*domain.Member, error)
}

func (m *Repo) GetByMemberID(ctx context.Context, memberID string) (*domain.Member, error) {
	if m.GetByMemberIDFn != nil {
		return m.GetByMemberIDFn(ctx, memberID)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetByMemberNo(ctx context.Context, memberNo string) (*domain.Member, error) {
	if m.GetByMemberNoFn != nil {
		return m.GetByMemberNoFn(ctx, memberNo)
	}
	return nil, errUnimplemented
}

func (m *Repo) GetByID(ctx context.Context, id uint64) (*domain.Member, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, errUnimplemented
}
