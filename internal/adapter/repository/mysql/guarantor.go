package mysql

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	guarantorDomain "sacco-backoffice/internal/domain/guarantor"
)

type GuarantorRepository struct{ db *gorm.DB }

func NewGuarantorRepository(db *gorm.DB) *GuarantorRepository { return &GuarantorRepository{db: db} }

func (r *GuarantorRepository) Create(ctx context.Context, p *guarantorDomain.Profile) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *GuarantorRepository) Save(ctx context.Context, p *guarantorDomain.Profile) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *GuarantorRepository) GetByID(ctx context.Context, id uint64) (*guarantorDomain.Profile, error) {
	var out guarantorDomain.Profile
	res := r.db.WithContext(ctx).First(&out, id)
	return &out, res.Error
}

func (r *GuarantorRepository) GetByProfileID(ctx context.Context, profileID string) (*guarantorDomain.Profile, error) {
	var out guarantorDomain.Profile
	res := r.db.WithContext(ctx).Where("profile_id = ?", profileID).First(&out)
	return &out, res.Error
}

func (r *GuarantorRepository) GetByMemberID(ctx context.Context, memberID uint64) (*guarantorDomain.Profile, error) {
	var out guarantorDomain.Profile
	res := r.db.WithContext(ctx).Where("member_id = ?", memberID).First(&out)
	return &out, res.Error
}

// GetByMemberIDForUpdate takes a row lock; only meaningful inside a
// transaction.
func (r *GuarantorRepository) GetByMemberIDForUpdate(ctx context.Context, memberID uint64) (*guarantorDomain.Profile, error) {
	var out guarantorDomain.Profile
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("member_id = ?", memberID).
		First(&out)
	return &out, res.Error
}

func (r *GuarantorRepository) GetByIDForUpdate(ctx context.Context, id uint64) (*guarantorDomain.Profile, error) {
	var out guarantorDomain.Profile
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&out, id)
	return &out, res.Error
}

func (r *GuarantorRepository) List(ctx context.Context) ([]guarantorDomain.Profile, error) {
	var out []guarantorDomain.Profile
	res := r.db.WithContext(ctx).Order("id").Find(&out)
	return out, res.Error
}
