package member

import "context"

type Repository interface {
	GetByMemberID(ctx context.Context, memberID string) (*Member, error)
	GetByMemberNo(ctx context.Context, memberNo string) (*Member, error)
	GetByID(ctx context.Context, id uint64) (*Member, error)
}
