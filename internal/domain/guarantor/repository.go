package guarantor

import "context"

type Repository interface {
	Create(ctx context.Context, p *Profile) error
	Save(ctx context.Context, p *Profile) error
	GetByID(ctx context.Context, id uint64) (*Profile, error)
	GetByProfileID(ctx context.Context, profileID string) (*Profile, error)
	GetByMemberID(ctx context.Context, memberID uint64) (*Profile, error)
	// GetByMemberIDForUpdate locks the profile row for the transaction so a
	// reservation's read-check-write cannot race another caller.
	GetByMemberIDForUpdate(ctx context.Context, memberID uint64) (*Profile, error)
	GetByIDForUpdate(ctx context.Context, id uint64) (*Profile, error)
	List(ctx context.Context) ([]Profile, error)
}
