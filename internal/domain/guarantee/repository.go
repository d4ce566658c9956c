package guarantee

import (
	"context"

	"github.com/shopspring/decimal"
)

type Repository interface {
	Create(ctx context.Context, g *Request) error
	Save(ctx context.Context, g *Request) error
	GetByReference(ctx context.Context, reference string) (*Request, error)
	GetByApplicationAndGuarantor(ctx context.Context, applicationID, guarantorID uint64) (*Request, error)
	ListByApplication(ctx context.Context, applicationID uint64, statuses ...Status) ([]Request, error)
	// ListForParty returns requests where the member is the borrower or the
	// guarantor profile belongs to them.
	ListForParty(ctx context.Context, memberID uint64) ([]Request, error)
	// SumAcceptedByOthers totals accepted pledges on an application whose
	// guarantor is not the borrower.
	SumAcceptedByOthers(ctx context.Context, applicationID, borrowerGuarantorID uint64) (decimal.Decimal, error)
	// CountActiveByGuarantor counts accepted pledges still holding a
	// reservation. Released pledges flip to Cancelled and drop out.
	CountActiveByGuarantor(ctx context.Context, guarantorID uint64) (int64, error)
}
