package mysql

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	guaranteeDomain "sacco-backoffice/internal/domain/guarantee"
)

type GuaranteeRepository struct{ db *gorm.DB }

func NewGuaranteeRepository(db *gorm.DB) *GuaranteeRepository { return &GuaranteeRepository{db: db} }

func (r *GuaranteeRepository) Create(ctx context.Context, g *guaranteeDomain.Request) error {
	return r.db.WithContext(ctx).Create(g).Error
}

func (r *GuaranteeRepository) Save(ctx context.Context, g *guaranteeDomain.Request) error {
	return r.db.WithContext(ctx).Save(g).Error
}

func (r *GuaranteeRepository) GetByReference(ctx context.Context, reference string) (*guaranteeDomain.Request, error) {
	var out guaranteeDomain.Request
	res := r.db.WithContext(ctx).Where("reference = ?", reference).First(&out)
	return &out, res.Error
}

func (r *GuaranteeRepository) GetByApplicationAndGuarantor(ctx context.Context, applicationID, guarantorID uint64) (*guaranteeDomain.Request, error) {
	var out guaranteeDomain.Request
	res := r.db.WithContext(ctx).
		Where("application_id = ? AND guarantor_id = ?", applicationID, guarantorID).
		First(&out)
	return &out, res.Error
}

func (r *GuaranteeRepository) ListByApplication(ctx context.Context, applicationID uint64, statuses ...guaranteeDomain.Status) ([]guaranteeDomain.Request, error) {
	q := r.db.WithContext(ctx).Where("application_id = ?", applicationID)
	if len(statuses) > 0 {
		q = q.Where("status IN ?", statuses)
	}
	var out []guaranteeDomain.Request
	res := q.Order("id").Find(&out)
	return out, res.Error
}

func (r *GuaranteeRepository) ListForParty(ctx context.Context, memberID uint64) ([]guaranteeDomain.Request, error) {
	var out []guaranteeDomain.Request
	res := r.db.WithContext(ctx).
		Joins("JOIN guarantor_profiles gp ON gp.id = guarantee_requests.guarantor_id").
		Where("guarantee_requests.member_id = ? OR gp.member_id = ?", memberID, memberID).
		Order("guarantee_requests.id DESC").
		Find(&out)
	return out, res.Error
}

func (r *GuaranteeRepository) SumAcceptedByOthers(ctx context.Context, applicationID, borrowerGuarantorID uint64) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	res := r.db.WithContext(ctx).
		Model(&guaranteeDomain.Request{}).
		Select("SUM(guaranteed_amount)").
		Where("application_id = ? AND status = ? AND guarantor_id <> ?",
			applicationID, guaranteeDomain.StatusAccepted, borrowerGuarantorID).
		Scan(&total)
	if res.Error != nil {
		return decimal.Zero, res.Error
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}

func (r *GuaranteeRepository) CountActiveByGuarantor(ctx context.Context, guarantorID uint64) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).
		Model(&guaranteeDomain.Request{}).
		Where("guarantor_id = ? AND status = ?", guarantorID, guaranteeDomain.StatusAccepted).
		Count(&n)
	return n, res.Error
}
