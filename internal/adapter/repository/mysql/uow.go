package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"sacco-backoffice/internal/domain/apperr"
	appDomain "sacco-backoffice/internal/domain/application"
	"sacco-backoffice/internal/domain/uow"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func boundRepos(tx *gorm.DB) uow.Repos {
	return uow.Repos{
		Members:      &MemberRepository{db: tx},
		Savings:      &SavingsRepository{db: tx},
		Products:     &ProductRepository{db: tx},
		Guarantors:   &GuarantorRepository{db: tx},
		Guarantees:   &GuaranteeRepository{db: tx},
		Applications: &ApplicationRepository{db: tx},
		LoanAccounts: &LoanAccountRepository{db: tx},
	}
}

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(boundRepos(tx))
	})
}

func (u *GormUoW) WithinApplicationTx(ctx context.Context, reference string, fn func(r uow.Repos, a *appDomain.LoanApplication) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := boundRepos(tx)
		// lock the application row up-front to prevent races
		a, err := r.Applications.GetByReferenceForUpdate(ctx, reference)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("loan application")
			}
			return err
		}
		return fn(r, a)
	})
}
