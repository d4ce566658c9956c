package uow

import (
	"context"

	"sacco-backoffice/internal/domain/application"
	"sacco-backoffice/internal/domain/guarantee"
	"sacco-backoffice/internal/domain/guarantor"
	"sacco-backoffice/internal/domain/loanaccount"
	"sacco-backoffice/internal/domain/member"
	"sacco-backoffice/internal/domain/product"
	"sacco-backoffice/internal/domain/savings"
)

type Repos struct {
	Members      member.Repository
	Savings      savings.Oracle
	Products     product.Repository
	Guarantors   guarantor.Repository
	Guarantees   guarantee.Repository
	Applications application.Repository
	LoanAccounts loanaccount.Repository
}

type UnitOfWork interface {
	// plain tx
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// convenience: lock the application row first, then pass it in
	WithinApplicationTx(ctx context.Context, reference string, fn func(r Repos, a *application.LoanApplication) error) error
}
