package capacity

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"sacco-backoffice/internal/domain/apperr"
	"sacco-backoffice/internal/domain/guarantor"
	"sacco-backoffice/internal/domain/uow"
)

// Ledger is the single owner of CommittedGuaranteeAmount. Every caller that
// wants to reserve must hold the profile row lock (loaded via a ForUpdate
// repository method inside a unit-of-work transaction) so the check and the
// increment are serialized per profile.
type Ledger struct {
	log *logrus.Logger
}

func NewLedger(log *logrus.Logger) *Ledger { return &Ledger{log: log} }

// SyncCapacity recomputes MaxGuaranteeAmount from the savings oracle and
// persists it. Balances move outside this subsystem, so this runs immediately
// before any capacity check that gates a reservation.
func (l *Ledger) SyncCapacity(ctx context.Context, r uow.Repos, p *guarantor.Profile) error {
	total, err := r.Savings.TotalBalance(ctx, p.MemberID)
	if err != nil {
		return err
	}
	p.MaxGuaranteeAmount = total
	return r.Guarantors.Save(ctx, p)
}

// Reserve checks committed + amount <= max and increments committed, or fails
// without mutation. The profile must be row-locked by the caller's
// transaction.
func (l *Ledger) Reserve(ctx context.Context, r uow.Repos, p *guarantor.Profile, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return apperr.Validation("guaranteed_amount", "must be greater than 0")
	}
	next := p.CommittedGuaranteeAmount.Add(amount)
	if next.GreaterThan(p.MaxGuaranteeAmount) {
		return apperr.Conflict("insufficient guarantee capacity (savings changed)")
	}
	p.CommittedGuaranteeAmount = next
	return r.Guarantors.Save(ctx, p)
}

// Release decrements committed by amount, floored at 0. A negative result is
// a bookkeeping bug upstream; it is logged and floored rather than persisted.
func (l *Ledger) Release(ctx context.Context, r uow.Repos, p *guarantor.Profile, amount decimal.Decimal) error {
	next := p.CommittedGuaranteeAmount.Sub(amount)
	if next.IsNegative() {
		l.log.WithFields(logrus.Fields{
			"profile_id": p.ProfileID,
			"committed":  p.CommittedGuaranteeAmount,
			"release":    amount,
		}).Error("capacity release would go negative; flooring at 0")
		next = decimal.Zero
	}
	p.CommittedGuaranteeAmount = next
	return r.Guarantors.Save(ctx, p)
}

// ActiveGuarantees counts accepted pledges whose parent application is in an
// active financial state, for the MaxActiveGuarantees gate.
func (l *Ledger) ActiveGuarantees(ctx context.Context, r uow.Repos, p *guarantor.Profile) (int64, error) {
	return r.Guarantees.CountActiveByGuarantor(ctx, p.ID)
}

// HasReachedLimit reports whether the profile is at its count ceiling.
func (l *Ledger) HasReachedLimit(ctx context.Context, r uow.Repos, p *guarantor.Profile) (bool, error) {
	n, err := l.ActiveGuarantees(ctx, r, p)
	if err != nil {
		return false, err
	}
	return n >= int64(p.MaxActiveGuarantees), nil
}
