package guarantee

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"sacco-backoffice/internal/domain/apperr"
	domainApp "sacco-backoffice/internal/domain/application"
	domainGuarantee "sacco-backoffice/internal/domain/guarantee"
	domainGuarantor "sacco-backoffice/internal/domain/guarantor"
	domainMember "sacco-backoffice/internal/domain/member"
	"sacco-backoffice/internal/domain/uow"
	"sacco-backoffice/internal/notify"
	appUsecase "sacco-backoffice/internal/usecase/application"
	"sacco-backoffice/internal/usecase/capacity"
	"sacco-backoffice/pkg/id"
)

type Usecase struct {
	uow       uow.UnitOfWork
	ledger    *capacity.Ledger
	notifier  notify.Notifier
	log       *logrus.Logger
	maxActive uint
}

func NewUsecase(u uow.UnitOfWork, ledger *capacity.Ledger, n notify.Notifier, log *logrus.Logger, maxActive uint) *Usecase {
	return &Usecase{uow: u, ledger: ledger, notifier: n, log: log, maxActive: maxActive}
}

// Create raises a pledge from a guarantor toward a loan application. A pledge
// against the member's own profile is accepted and reserved synchronously;
// third-party pledges stay Pending until the guarantor acts.
func (u *Usecase) Create(ctx context.Context, in CreateInput) (*RequestDTO, error) {
	if !in.GuaranteedAmount.IsPositive() {
		return nil, apperr.Validation("guaranteed_amount", "must be greater than 0")
	}

	var (
		dto       *RequestDTO
		notifyTo  string
		selfMade  bool
		borrower  *domainMember.Member
		guarantor *domainMember.Member
	)
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		var err error
		borrower, err = r.Members.GetByMemberID(ctx, in.MemberID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("member")
			}
			return err
		}

		// lock the application row so the finality check and any status
		// advance happen against the committed state, not a snapshot a
		// concurrent cancel or decision could invalidate
		a, err := r.Applications.GetByReferenceForUpdate(ctx, in.ApplicationReference)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("loan application")
			}
			return err
		}
		if a.MemberID != borrower.ID {
			return apperr.Permission("you can only request guarantees for your own applications")
		}
		if a.Status.IsFinal() {
			return apperr.Validation("loan_application", "cannot modify guarantees on a finalized loan application")
		}

		guarantor, err = r.Members.GetByMemberNo(ctx, in.GuarantorMemberNo)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.Validation("guarantor", "member not found")
			}
			return err
		}
		isSelf := guarantor.ID == borrower.ID

		profile, err := u.resolveProfile(ctx, r, guarantor.ID, isSelf)
		if err != nil {
			return err
		}
		if !isSelf && !profile.IsEligible {
			return apperr.Validation("guarantor", "guarantor is not eligible")
		}

		if _, err := r.Guarantees.GetByApplicationAndGuarantor(ctx, a.ID, profile.ID); err == nil {
			return apperr.Validation("guarantor", "a guarantee request for this application and guarantor already exists")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		limited, err := u.ledger.HasReachedLimit(ctx, r, profile)
		if err != nil {
			return err
		}
		if limited {
			return apperr.Validation("guarantor", "guarantor has reached their active guarantee limit")
		}

		cov, _, err := appUsecase.LoadCoverage(ctx, r, a)
		if err != nil {
			return err
		}
		// a self pledge converts available capacity into a reservation, so
		// its cap ignores the available-self component of coverage
		allowed := cov.RemainingToCover
		if isSelf {
			allowed = a.RequestedAmount.Sub(cov.TotalGuaranteedByOthers).Sub(cov.ReservedSelfGuarantee)
			if allowed.IsNegative() {
				allowed = decimal.Zero
			}
		}
		if in.GuaranteedAmount.GreaterThan(allowed) {
			return apperr.Validation("guaranteed_amount", "exceeds the amount remaining to cover")
		}

		// capacity is checked against live savings, not a stale ceiling
		locked, err := r.Guarantors.GetByIDForUpdate(ctx, profile.ID)
		if err != nil {
			return err
		}
		if err := u.ledger.SyncCapacity(ctx, r, locked); err != nil {
			return err
		}
		if in.GuaranteedAmount.GreaterThan(locked.AvailableCapacity()) {
			return apperr.Validation("guaranteed_amount", "exceeds the guarantor's available capacity")
		}

		g := &domainGuarantee.Request{
			Reference:        id.NewID32(),
			MemberID:         borrower.ID,
			ApplicationID:    a.ID,
			GuarantorID:      profile.ID,
			GuaranteedAmount: in.GuaranteedAmount,
			Status:           domainGuarantee.StatusPending,
			Notes:            in.Notes,
		}

		if isSelf {
			if err := u.ledger.Reserve(ctx, r, locked, in.GuaranteedAmount); err != nil {
				return err
			}
			g.Status = domainGuarantee.StatusAccepted
			selfMade = true
		}

		if err := r.Guarantees.Create(ctx, g); err != nil {
			return err
		}

		if isSelf {
			a.SelfGuaranteedAmount = a.SelfGuaranteedAmount.Add(in.GuaranteedAmount)
			if err := u.advanceIfCovered(ctx, r, a); err != nil {
				return err
			}
		}

		notifyTo = guarantor.Email
		dto = u.toDTO(g, a.Reference, borrower.MemberNo, guarantor.MemberNo)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !selfMade {
		u.notifier.Notify(notify.EventGuaranteeRequested, notifyTo, map[string]string{
			"requestor": borrower.FirstName + " " + borrower.LastName,
			"amount":    dto.GuaranteedAmount.StringFixed(2),
			"reference": dto.Reference,
		})
	}
	return dto, nil
}

// resolveProfile finds the guarantor profile; self-guarantors get one created
// lazily on first use.
func (u *Usecase) resolveProfile(ctx context.Context, r uow.Repos, memberID uint64, lazyCreate bool) (*domainGuarantor.Profile, error) {
	p, err := r.Guarantors.GetByMemberID(ctx, memberID)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if !lazyCreate {
		return nil, apperr.Validation("guarantor", "member has no guarantor profile")
	}

	total, err := r.Savings.TotalBalance(ctx, memberID)
	if err != nil {
		return nil, err
	}
	p = &domainGuarantor.Profile{
		ProfileID:           id.NewID32(),
		MemberID:            memberID,
		MaxActiveGuarantees: u.maxActive,
		MaxGuaranteeAmount:  total,
	}
	if err := r.Guarantors.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// advanceIfCovered re-runs the readiness check after a successful
// reservation.
func (u *Usecase) advanceIfCovered(ctx context.Context, r uow.Repos, a *domainApp.LoanApplication) error {
	cov, _, err := appUsecase.LoadCoverage(ctx, r, a)
	if err != nil {
		return err
	}
	if cov.IsFullyCovered && a.Status != domainApp.StatusReadyForSubmission {
		a.Status = domainApp.StatusReadyForSubmission
		a.StatusUpdatedAt = time.Now().UTC()
	}
	return r.Applications.Save(ctx, a)
}

// UpdateStatus is the guarantor's accept/decline on a pending request.
func (u *Usecase) UpdateStatus(ctx context.Context, memberID, reference string, newStatus string) (*RequestDTO, error) {
	target := domainGuarantee.Status(newStatus)
	if target != domainGuarantee.StatusAccepted && target != domainGuarantee.StatusDeclined {
		return nil, apperr.Validation("status", "must be 'Accepted' or 'Declined'")
	}

	var (
		dto           *RequestDTO
		event         notify.Event
		borrowerMail  string
		guarantorMail string
	)
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		actor, err := r.Members.GetByMemberID(ctx, memberID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("member")
			}
			return err
		}

		g, err := r.Guarantees.GetByReference(ctx, reference)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("guarantee request")
			}
			return err
		}

		profile, err := r.Guarantors.GetByID(ctx, g.GuarantorID)
		if err != nil {
			return err
		}
		if profile.MemberID != actor.ID {
			return apperr.Permission("only the named guarantor can act on this request")
		}
		if g.Status != domainGuarantee.StatusPending {
			return apperr.Validation("status", "request already processed")
		}

		// lock the parent application for the whole transition
		a, err := r.Applications.GetByIDForUpdate(ctx, g.ApplicationID)
		if err != nil {
			return err
		}
		if a.Status.IsFinal() {
			return apperr.Validation("status", "cannot modify guarantees on a finalized loan application")
		}

		borrower, err := r.Members.GetByID(ctx, g.MemberID)
		if err != nil {
			return err
		}

		if target == domainGuarantee.StatusAccepted {
			locked, err := r.Guarantors.GetByIDForUpdate(ctx, profile.ID)
			if err != nil {
				return err
			}
			// ceiling may be stale; resync before the final check
			if err := u.ledger.SyncCapacity(ctx, r, locked); err != nil {
				return err
			}
			limited, err := u.ledger.HasReachedLimit(ctx, r, locked)
			if err != nil {
				return err
			}
			if limited {
				return apperr.Validation("guarantor", "guarantor has reached their active guarantee limit")
			}
			if err := u.ledger.Reserve(ctx, r, locked, g.GuaranteedAmount); err != nil {
				return err
			}

			g.Status = domainGuarantee.StatusAccepted
			if err := r.Guarantees.Save(ctx, g); err != nil {
				return err
			}
			if err := u.advanceIfCovered(ctx, r, a); err != nil {
				return err
			}
			event = notify.EventGuaranteeAccepted
		} else {
			// nothing was reserved for a pending request
			g.Status = domainGuarantee.StatusDeclined
			if err := r.Guarantees.Save(ctx, g); err != nil {
				return err
			}
			event = notify.EventGuaranteeDeclined
		}

		borrowerMail = borrower.Email
		guarantorMail = actor.Email
		dto = u.toDTO(g, a.Reference, borrower.MemberNo, actor.MemberNo)
		return nil
	})
	if err != nil {
		return nil, err
	}

	fields := map[string]string{
		"reference": dto.Reference,
		"status":    dto.Status,
		"amount":    dto.GuaranteedAmount.StringFixed(2),
	}
	u.notifier.Notify(event, borrowerMail, fields)
	u.notifier.Notify(event, guarantorMail, fields)
	return dto, nil
}

// Get returns one request, visible only to the borrower or the guarantor.
func (u *Usecase) Get(ctx context.Context, memberID, reference string) (*RequestDTO, error) {
	var dto *RequestDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		actor, err := r.Members.GetByMemberID(ctx, memberID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("member")
			}
			return err
		}
		g, err := r.Guarantees.GetByReference(ctx, reference)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("guarantee request")
			}
			return err
		}
		profile, err := r.Guarantors.GetByID(ctx, g.GuarantorID)
		if err != nil {
			return err
		}
		if g.MemberID != actor.ID && profile.MemberID != actor.ID {
			return apperr.Permission("you are not a party to this guarantee request")
		}
		dto, err = u.hydrateDTO(ctx, r, g)
		return err
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// List returns every request where the member is borrower or guarantor.
func (u *Usecase) List(ctx context.Context, memberID string) ([]RequestDTO, error) {
	var out []RequestDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		actor, err := r.Members.GetByMemberID(ctx, memberID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("member")
			}
			return err
		}
		reqs, err := r.Guarantees.ListForParty(ctx, actor.ID)
		if err != nil {
			return err
		}
		for i := range reqs {
			dto, err := u.hydrateDTO(ctx, r, &reqs[i])
			if err != nil {
				return err
			}
			out = append(out, *dto)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (u *Usecase) hydrateDTO(ctx context.Context, r uow.Repos, g *domainGuarantee.Request) (*RequestDTO, error) {
	a, err := r.Applications.GetByID(ctx, g.ApplicationID)
	if err != nil {
		return nil, err
	}
	borrower, err := r.Members.GetByID(ctx, g.MemberID)
	if err != nil {
		return nil, err
	}
	profile, err := r.Guarantors.GetByID(ctx, g.GuarantorID)
	if err != nil {
		return nil, err
	}
	gm, err := r.Members.GetByID(ctx, profile.MemberID)
	if err != nil {
		return nil, err
	}
	return u.toDTO(g, a.Reference, borrower.MemberNo, gm.MemberNo), nil
}

func (u *Usecase) toDTO(g *domainGuarantee.Request, appRef, borrowerNo, guarantorNo string) *RequestDTO {
	return &RequestDTO{
		Reference:            g.Reference,
		ApplicationReference: appRef,
		MemberNo:             borrowerNo,
		GuarantorMemberNo:    guarantorNo,
		GuaranteedAmount:     g.GuaranteedAmount,
		Status:               string(g.Status),
		Notes:                g.Notes,
		CreatedAt:            g.CreatedAt,
	}
}
