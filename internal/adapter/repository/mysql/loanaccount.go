package mysql

import (
	"context"

	"gorm.io/gorm"

	accountDomain "sacco-backoffice/internal/domain/loanaccount"
)

type LoanAccountRepository struct{ db *gorm.DB }

func NewLoanAccountRepository(db *gorm.DB) *LoanAccountRepository {
	return &LoanAccountRepository{db: db}
}

func (r *LoanAccountRepository) Create(ctx context.Context, a *accountDomain.LoanAccount) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *LoanAccountRepository) GetByApplicationID(ctx context.Context, applicationID uint64) (*accountDomain.LoanAccount, error) {
	var out accountDomain.LoanAccount
	res := r.db.WithContext(ctx).Where("application_id = ?", applicationID).First(&out)
	return &out, res.Error
}

func (r *LoanAccountRepository) GetByReference(ctx context.Context, reference string) (*accountDomain.LoanAccount, error) {
	var out accountDomain.LoanAccount
	res := r.db.WithContext(ctx).Where("reference = ?", reference).First(&out)
	return &out, res.Error
}
