package application

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"sacco-backoffice/internal/domain/apperr"
	domainApp "sacco-backoffice/internal/domain/application"
	domainGuarantee "sacco-backoffice/internal/domain/guarantee"
	domainGuarantor "sacco-backoffice/internal/domain/guarantor"
	domainAccount "sacco-backoffice/internal/domain/loanaccount"
	domainMember "sacco-backoffice/internal/domain/member"
	"sacco-backoffice/internal/domain/uow"
	"sacco-backoffice/internal/notify"
	"sacco-backoffice/internal/usecase/capacity"
	"sacco-backoffice/internal/usecase/coverage"
	"sacco-backoffice/internal/usecase/projection"
	"sacco-backoffice/pkg/id"
)

type Usecase struct {
	uow      uow.UnitOfWork
	ledger   *capacity.Ledger
	notifier notify.Notifier
	log      *logrus.Logger
}

func NewUsecase(u uow.UnitOfWork, ledger *capacity.Ledger, n notify.Notifier, log *logrus.Logger) *Usecase {
	return &Usecase{uow: u, ledger: ledger, notifier: n, log: log}
}

// statuses from which the owning member may not cancel
var uncancellable = []domainApp.Status{
	domainApp.StatusApproved, domainApp.StatusDisbursed,
	domainApp.StatusCancelled, domainApp.StatusDeclined,
}

// ---- coverage plumbing ----

// LoadCoverage gathers the calculator's inputs: oracle balance, the
// borrower's profile (nil when absent), accepted third-party pledges, and any
// accepted self pledge already reserved for this application. The guarantee
// machine shares it.
func LoadCoverage(ctx context.Context, r uow.Repos, a *domainApp.LoanApplication) (coverage.Breakdown, *domainGuarantor.Profile, error) {
	total, err := r.Savings.TotalBalance(ctx, a.MemberID)
	if err != nil {
		return coverage.Breakdown{}, nil, err
	}

	profile, err := r.Guarantors.GetByMemberID(ctx, a.MemberID)
	switch {
	case err == nil:
	case errors.Is(err, gorm.ErrRecordNotFound):
		profile = nil
	default:
		return coverage.Breakdown{}, nil, err
	}

	var guarantorID uint64
	reservedSelf := decimal.Zero
	if profile != nil {
		guarantorID = profile.ID
		if self, err := r.Guarantees.GetByApplicationAndGuarantor(ctx, a.ID, profile.ID); err == nil {
			if self.Status == domainGuarantee.StatusAccepted {
				reservedSelf = self.GuaranteedAmount
			}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return coverage.Breakdown{}, nil, err
		}
	}

	others, err := r.Guarantees.SumAcceptedByOthers(ctx, a.ID, guarantorID)
	if err != nil {
		return coverage.Breakdown{}, nil, err
	}

	return coverage.Compute(a.RequestedAmount, total, profile, others, reservedSelf), profile, nil
}

// readiness picks the status the coverage calculator implies.
func readiness(b coverage.Breakdown) domainApp.Status {
	switch {
	case b.IsFullyCovered:
		return domainApp.StatusReadyForSubmission
	case b.EffectiveCoverage.IsPositive():
		return domainApp.StatusInProgress
	default:
		return domainApp.StatusPending
	}
}

func snapshot(p *projection.Projection) ([]byte, error) {
	return json.Marshal(p)
}

func decodeSnapshot(raw []byte) (*projection.Projection, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var p projection.Projection
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (u *Usecase) toDTO(ctx context.Context, r uow.Repos, a *domainApp.LoanApplication) (*ApplicationDTO, error) {
	m, err := r.Members.GetByID(ctx, a.MemberID)
	if err != nil {
		return nil, err
	}
	p, err := r.Products.GetByID(ctx, a.ProductID)
	if err != nil {
		return nil, err
	}
	proj, err := decodeSnapshot(a.ProjectionSnapshot)
	if err != nil {
		return nil, err
	}
	return &ApplicationDTO{
		Reference:            a.Reference,
		MemberNo:             m.MemberNo,
		Product:              p.Name,
		RequestedAmount:      a.RequestedAmount,
		TermMonths:           a.TermMonths,
		RepaymentFrequency:   string(a.RepaymentFrequency),
		StartDate:            a.StartDate.Format("2006-01-02"),
		Status:               string(a.Status),
		SelfGuaranteedAmount: a.SelfGuaranteedAmount,
		AmendmentNote:        a.AmendmentNote,
		Projection:           proj,
		CreatedAt:            a.CreatedAt,
	}, nil
}

func (u *Usecase) actingMember(ctx context.Context, r uow.Repos, memberID string) (*domainMember.Member, error) {
	m, err := r.Members.GetByMemberID(ctx, memberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("member")
		}
		return nil, err
	}
	return m, nil
}

func setStatus(a *domainApp.LoanApplication, s domainApp.Status) {
	a.Status = s
	a.StatusUpdatedAt = time.Now().UTC()
}

// ---- operations ----

func (u *Usecase) Create(ctx context.Context, in CreateInput) (*ApplicationDTO, error) {
	if !in.RequestedAmount.IsPositive() {
		return nil, apperr.Validation("requested_amount", "must be greater than 0")
	}

	var dto *ApplicationDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		m, err := u.actingMember(ctx, r, in.MemberID)
		if err != nil {
			return err
		}

		prod, err := r.Products.GetActiveByName(ctx, in.Product)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.Validation("product", "unknown or inactive loan product")
			}
			return err
		}

		start := in.StartDate
		if start.IsZero() {
			start = time.Now().UTC()
		}
		freq := in.RepaymentFrequency
		if freq == "" {
			freq = string(domainApp.FreqMonthly)
		}

		proj, err := projection.FlatRate(in.RequestedAmount, prod.InterestRate, in.TermMonths, start, freq)
		if err != nil {
			return err
		}
		raw, err := snapshot(proj)
		if err != nil {
			return err
		}

		a := &domainApp.LoanApplication{
			Reference:          id.NewID32(),
			MemberID:           m.ID,
			ProductID:          prod.ID,
			RequestedAmount:    in.RequestedAmount,
			TermMonths:         in.TermMonths,
			RepaymentFrequency: domainApp.Frequency(freq),
			StartDate:          start,
			ProjectionSnapshot: raw,
		}

		cov, _, err := LoadCoverage(ctx, r, a)
		if err != nil {
			return err
		}
		setStatus(a, readiness(cov))

		if err := r.Applications.Create(ctx, a); err != nil {
			return err
		}
		dto, err = u.toDTO(ctx, r, a)
		return err
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func (u *Usecase) Get(ctx context.Context, memberID, reference string, isAdmin bool) (*ApplicationDTO, error) {
	var dto *ApplicationDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		a, err := r.Applications.GetByReference(ctx, reference)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("loan application")
			}
			return err
		}
		if !isAdmin {
			m, err := u.actingMember(ctx, r, memberID)
			if err != nil {
				return err
			}
			if a.MemberID != m.ID {
				return apperr.Permission("you can only view your own applications")
			}
		}
		dto, err = u.toDTO(ctx, r, a)
		return err
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func (u *Usecase) List(ctx context.Context, memberID string) ([]ApplicationDTO, error) {
	var out []ApplicationDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		m, err := u.actingMember(ctx, r, memberID)
		if err != nil {
			return err
		}
		apps, err := r.Applications.ListByMemberID(ctx, m.ID)
		if err != nil {
			return err
		}
		for i := range apps {
			dto, err := u.toDTO(ctx, r, &apps[i])
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

// Coverage is the read-only projection of how covered an application is.
func (u *Usecase) Coverage(ctx context.Context, memberID, reference string, isAdmin bool) (*coverage.Breakdown, error) {
	var out coverage.Breakdown
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		a, err := r.Applications.GetByReference(ctx, reference)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("loan application")
			}
			return err
		}
		if !isAdmin {
			m, err := u.actingMember(ctx, r, memberID)
			if err != nil {
				return err
			}
			if a.MemberID != m.ID {
				return apperr.Permission("you can only view your own applications")
			}
		}
		out, _, err = LoadCoverage(ctx, r, a)
		return err
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Update applies borrower edits while the application is still editable and
// re-runs the projection and the readiness check.
func (u *Usecase) Update(ctx context.Context, memberID, reference string, in UpdateInput) (*ApplicationDTO, error) {
	var dto *ApplicationDTO
	err := u.uow.WithinApplicationTx(ctx, reference, func(r uow.Repos, a *domainApp.LoanApplication) error {
		m, err := u.actingMember(ctx, r, memberID)
		if err != nil {
			return err
		}
		if a.MemberID != m.ID {
			return apperr.Permission("you can only edit your own applications")
		}
		if !a.Status.Editable() {
			return apperr.Validation("status", "cannot edit application in '"+string(a.Status)+"' state")
		}

		changed, err := u.applyTerms(ctx, r, a, in.Product, in.RequestedAmount, in.TermMonths, in.RepaymentFrequency, in.StartDate)
		if err != nil {
			return err
		}
		if changed {
			if err := u.reproject(ctx, r, a); err != nil {
				return err
			}
		}

		cov, _, err := LoadCoverage(ctx, r, a)
		if err != nil {
			return err
		}
		setStatus(a, readiness(cov))

		if err := r.Applications.Save(ctx, a); err != nil {
			return err
		}
		dto, err = u.toDTO(ctx, r, a)
		return err
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// applyTerms copies the provided fields onto the application and reports
// whether anything projection-relevant changed.
func (u *Usecase) applyTerms(ctx context.Context, r uow.Repos, a *domainApp.LoanApplication, productName *string, amount *decimal.Decimal, term *uint, freq *string, start *time.Time) (bool, error) {
	changed := false
	if productName != nil {
		prod, err := r.Products.GetActiveByName(ctx, *productName)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return false, apperr.Validation("product", "unknown or inactive loan product")
			}
			return false, err
		}
		if prod.ID != a.ProductID {
			a.ProductID = prod.ID
			changed = true
		}
	}
	if amount != nil && !amount.Equal(a.RequestedAmount) {
		if !amount.IsPositive() {
			return false, apperr.Validation("requested_amount", "must be greater than 0")
		}
		a.RequestedAmount = *amount
		changed = true
	}
	if term != nil && *term != a.TermMonths {
		a.TermMonths = *term
		changed = true
	}
	if freq != nil && domainApp.Frequency(*freq) != a.RepaymentFrequency {
		a.RepaymentFrequency = domainApp.Frequency(*freq)
		changed = true
	}
	if start != nil && !start.Equal(a.StartDate) {
		a.StartDate = *start
		changed = true
	}
	return changed, nil
}

func (u *Usecase) reproject(ctx context.Context, r uow.Repos, a *domainApp.LoanApplication) error {
	prod, err := r.Products.GetByID(ctx, a.ProductID)
	if err != nil {
		return err
	}
	proj, err := projection.FlatRate(a.RequestedAmount, prod.InterestRate, a.TermMonths, a.StartDate, string(a.RepaymentFrequency))
	if err != nil {
		return err
	}
	raw, err := snapshot(proj)
	if err != nil {
		return err
	}
	a.ProjectionSnapshot = raw
	return nil
}

// Submit moves Ready for Submission → Submitted, re-validating coverage and
// auto-reserving the self-guarantee. On a failed final capacity check the
// application reverts to In Progress and that revert is committed; the
// capacity failure is returned to the caller afterwards.
func (u *Usecase) Submit(ctx context.Context, memberID, reference string) (*ApplicationDTO, error) {
	var (
		dto      *ApplicationDTO
		reverted error
		notifyTo string
	)
	err := u.uow.WithinApplicationTx(ctx, reference, func(r uow.Repos, a *domainApp.LoanApplication) error {
		m, err := u.actingMember(ctx, r, memberID)
		if err != nil {
			return err
		}
		if a.MemberID != m.ID {
			return apperr.Permission("you can only submit your own applications")
		}
		if a.Status == domainApp.StatusSubmitted {
			return apperr.Validation("status", "application already submitted")
		}
		if a.Status != domainApp.StatusReadyForSubmission {
			return apperr.Validation("status", "application is not ready for submission")
		}

		cov, profile, err := LoadCoverage(ctx, r, a)
		if err != nil {
			return err
		}
		if !cov.IsFullyCovered {
			setStatus(a, domainApp.StatusInProgress)
			if err := r.Applications.Save(ctx, a); err != nil {
				return err
			}
			reverted = apperr.Validation("status", "loan is not fully covered; add more guarantors")
			return nil
		}

		// amount still to lock against the member's own savings
		needed := a.RequestedAmount.Sub(cov.TotalGuaranteedByOthers).Sub(cov.ReservedSelfGuarantee)
		toLock := decimal.Min(cov.AvailableSelfGuarantee, needed)
		if toLock.IsNegative() {
			toLock = decimal.Zero
		}

		if toLock.IsPositive() {
			if profile == nil {
				setStatus(a, domainApp.StatusInProgress)
				if err := r.Applications.Save(ctx, a); err != nil {
					return err
				}
				reverted = apperr.Validation("guarantor_profile", "guarantor profile required for self-guarantee")
				return nil
			}

			locked, err := r.Guarantors.GetByMemberIDForUpdate(ctx, a.MemberID)
			if err != nil {
				return err
			}
			// resync against live savings before the final check
			if err := u.ledger.SyncCapacity(ctx, r, locked); err != nil {
				return err
			}
			if err := u.ledger.Reserve(ctx, r, locked, toLock); err != nil {
				var conflict *apperr.ConflictError
				if errors.As(err, &conflict) {
					setStatus(a, domainApp.StatusInProgress)
					if saveErr := r.Applications.Save(ctx, a); saveErr != nil {
						return saveErr
					}
					reverted = conflict
					return nil
				}
				return err
			}

			if err := u.recordSelfPledge(ctx, r, a, locked, toLock); err != nil {
				return err
			}
			a.SelfGuaranteedAmount = cov.ReservedSelfGuarantee.Add(toLock)
		} else {
			a.SelfGuaranteedAmount = cov.ReservedSelfGuarantee
		}

		setStatus(a, domainApp.StatusSubmitted)
		if err := r.Applications.Save(ctx, a); err != nil {
			return err
		}

		notifyTo = m.Email
		dto, err = u.toDTO(ctx, r, a)
		return err
	})
	if err != nil {
		return nil, err
	}
	if reverted != nil {
		return nil, reverted
	}

	u.notifier.Notify(notify.EventApplicationSubmitted, notifyTo, map[string]string{
		"reference": dto.Reference,
		"amount":    dto.RequestedAmount.StringFixed(2),
	})
	return dto, nil
}

// recordSelfPledge creates the accepted self GuaranteeRequest, or tops up an
// existing one so the (application, guarantor) pair stays unique.
func (u *Usecase) recordSelfPledge(ctx context.Context, r uow.Repos, a *domainApp.LoanApplication, p *domainGuarantor.Profile, amount decimal.Decimal) error {
	existing, err := r.Guarantees.GetByApplicationAndGuarantor(ctx, a.ID, p.ID)
	switch {
	case err == nil:
		existing.GuaranteedAmount = existing.GuaranteedAmount.Add(amount)
		existing.Status = domainGuarantee.StatusAccepted
		return r.Guarantees.Save(ctx, existing)
	case errors.Is(err, gorm.ErrRecordNotFound):
		return r.Guarantees.Create(ctx, &domainGuarantee.Request{
			Reference:        id.NewID32(),
			MemberID:         a.MemberID,
			ApplicationID:    a.ID,
			GuarantorID:      p.ID,
			GuaranteedAmount: amount,
			Status:           domainGuarantee.StatusAccepted,
		})
	default:
		return err
	}
}

// Decide is the admin approve/decline transition from Submitted.
func (u *Usecase) Decide(ctx context.Context, reference string, approve bool) (*DecisionDTO, error) {
	var (
		out      DecisionDTO
		notifyTo string
		event    notify.Event
	)
	err := u.uow.WithinApplicationTx(ctx, reference, func(r uow.Repos, a *domainApp.LoanApplication) error {
		if a.Status != domainApp.StatusSubmitted {
			verb := "decline"
			if approve {
				verb = "approve"
			}
			return apperr.Validation("status", "cannot "+verb+" an application in '"+string(a.Status)+"' state")
		}

		m, err := r.Members.GetByID(ctx, a.MemberID)
		if err != nil {
			return err
		}
		notifyTo = m.Email

		if approve {
			acct, err := u.openLoanAccount(ctx, r, a)
			if err != nil {
				return err
			}
			setStatus(a, domainApp.StatusApproved)
			if err := r.Applications.Save(ctx, a); err != nil {
				return err
			}
			out.LoanAccount = &LoanAccountDTO{
				Reference:            acct.Reference,
				AccountNumber:        acct.AccountNumber,
				Principal:            acct.Principal,
				OutstandingBalance:   acct.OutstandingBalance,
				TotalInterestAccrued: acct.TotalInterestAccrued,
				StartDate:            acct.StartDate.Format("2006-01-02"),
				EndDate:              acct.EndDate.Format("2006-01-02"),
				Status:               string(acct.Status),
			}
			event = notify.EventApplicationApproved
		} else {
			if err := u.releaseAllGuarantees(ctx, r, a); err != nil {
				return err
			}
			setStatus(a, domainApp.StatusDeclined)
			if err := r.Applications.Save(ctx, a); err != nil {
				return err
			}
			event = notify.EventApplicationDeclined
		}

		dto, err := u.toDTO(ctx, r, a)
		if err != nil {
			return err
		}
		out.Application = dto
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.notifier.Notify(event, notifyTo, map[string]string{
		"reference": out.Application.Reference,
		"status":    out.Application.Status,
	})
	return &out, nil
}

// openLoanAccount materializes the approved application into a funded account
// using the projection snapshot's totals.
func (u *Usecase) openLoanAccount(ctx context.Context, r uow.Repos, a *domainApp.LoanApplication) (*domainAccount.LoanAccount, error) {
	proj, err := decodeSnapshot(a.ProjectionSnapshot)
	if err != nil {
		return nil, err
	}
	if proj == nil {
		return nil, apperr.Validation("projection", "application has no repayment projection")
	}

	acct := &domainAccount.LoanAccount{
		Reference:            id.NewID32(),
		MemberID:             a.MemberID,
		ApplicationID:        a.ID,
		ProductID:            a.ProductID,
		AccountNumber:        id.NewAccountNumber(),
		Principal:            a.RequestedAmount,
		OutstandingBalance:   proj.TotalRepayment,
		TotalInterestAccrued: proj.TotalInterest,
		StartDate:            a.StartDate,
		EndDate:              loanEndDate(a.StartDate, a.TermMonths, a.RepaymentFrequency),
		Status:               domainAccount.StatusActive,
	}
	if err := r.LoanAccounts.Create(ctx, acct); err != nil {
		return nil, err
	}
	return acct, nil
}

// loanEndDate derives the account end date from the term. Weekly terms use
// term_months * 4.345 weeks, a documented policy inherited from the product
// rules.
func loanEndDate(start time.Time, termMonths uint, freq domainApp.Frequency) time.Time {
	if freq == domainApp.FreqWeekly {
		weeks := float64(termMonths) * 4.345
		return start.Add(time.Duration(weeks * 7 * 24 * float64(time.Hour)))
	}
	return start.AddDate(0, int(termMonths), 0)
}

// releaseAllGuarantees flips every accepted pledge (self included) to
// Cancelled and hands its reservation back to the guarantor's profile. Runs
// inside the caller's transaction.
func (u *Usecase) releaseAllGuarantees(ctx context.Context, r uow.Repos, a *domainApp.LoanApplication) error {
	accepted, err := r.Guarantees.ListByApplication(ctx, a.ID, domainGuarantee.StatusAccepted)
	if err != nil {
		return err
	}
	for i := range accepted {
		g := &accepted[i]
		locked, err := r.Guarantors.GetByIDForUpdate(ctx, g.GuarantorID)
		if err != nil {
			return err
		}
		if err := u.ledger.Release(ctx, r, locked, g.GuaranteedAmount); err != nil {
			return err
		}
		g.Status = domainGuarantee.StatusCancelled
		if err := r.Guarantees.Save(ctx, g); err != nil {
			return err
		}
	}
	a.SelfGuaranteedAmount = decimal.Zero
	return nil
}

// Cancel is the member-initiated counterpart of Decline.
func (u *Usecase) Cancel(ctx context.Context, memberID, reference string) (*ApplicationDTO, error) {
	var (
		dto      *ApplicationDTO
		notifyTo string
	)
	err := u.uow.WithinApplicationTx(ctx, reference, func(r uow.Repos, a *domainApp.LoanApplication) error {
		m, err := u.actingMember(ctx, r, memberID)
		if err != nil {
			return err
		}
		if a.MemberID != m.ID {
			return apperr.Permission("you can only cancel your own applications")
		}
		for _, s := range uncancellable {
			if a.Status == s {
				return apperr.Validation("status", "cannot cancel an application in '"+string(a.Status)+"' state")
			}
		}

		if err := u.releaseAllGuarantees(ctx, r, a); err != nil {
			return err
		}
		setStatus(a, domainApp.StatusCancelled)
		if err := r.Applications.Save(ctx, a); err != nil {
			return err
		}

		notifyTo = m.Email
		dto, err = u.toDTO(ctx, r, a)
		return err
	})
	if err != nil {
		return nil, err
	}

	u.notifier.Notify(notify.EventApplicationCancelled, notifyTo, map[string]string{
		"reference": dto.Reference,
	})
	return dto, nil
}

// RequestAmendment moves a Pending application to the admin's amendment queue.
func (u *Usecase) RequestAmendment(ctx context.Context, memberID, reference string) (*ApplicationDTO, error) {
	var dto *ApplicationDTO
	err := u.uow.WithinApplicationTx(ctx, reference, func(r uow.Repos, a *domainApp.LoanApplication) error {
		m, err := u.actingMember(ctx, r, memberID)
		if err != nil {
			return err
		}
		if a.MemberID != m.ID {
			return apperr.Permission("you can only amend your own applications")
		}
		if a.Status != domainApp.StatusPending {
			return apperr.Validation("status", "only pending applications can be submitted for amendment")
		}
		setStatus(a, domainApp.StatusReadyForAmendment)
		if err := r.Applications.Save(ctx, a); err != nil {
			return err
		}
		dto, err = u.toDTO(ctx, r, a)
		return err
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// Amend is the admin edit; the note is mandatory and the projection is
// recomputed.
func (u *Usecase) Amend(ctx context.Context, reference string, in AmendInput) (*ApplicationDTO, error) {
	if in.AmendmentNote == "" {
		return nil, apperr.Validation("amendment_note", "is required")
	}

	var (
		dto      *ApplicationDTO
		notifyTo string
	)
	err := u.uow.WithinApplicationTx(ctx, reference, func(r uow.Repos, a *domainApp.LoanApplication) error {
		if a.Status != domainApp.StatusReadyForAmendment {
			return apperr.Validation("status", "application is not ready for amendment")
		}

		changed, err := u.applyTerms(ctx, r, a, in.Product, in.RequestedAmount, in.TermMonths, in.RepaymentFrequency, in.StartDate)
		if err != nil {
			return err
		}
		if changed {
			if err := u.reproject(ctx, r, a); err != nil {
				return err
			}
		}

		a.AmendmentNote = in.AmendmentNote
		setStatus(a, domainApp.StatusAmended)
		if err := r.Applications.Save(ctx, a); err != nil {
			return err
		}

		m, err := r.Members.GetByID(ctx, a.MemberID)
		if err != nil {
			return err
		}
		notifyTo = m.Email
		dto, err = u.toDTO(ctx, r, a)
		return err
	})
	if err != nil {
		return nil, err
	}

	u.notifier.Notify(notify.EventApplicationAmended, notifyTo, map[string]string{
		"reference": dto.Reference,
		"note":      dto.AmendmentNote,
	})
	return dto, nil
}

// AcceptAmendment records the member's acceptance. If self savings cover the
// full amount the application is ready to submit; otherwise it takes whatever
// self capacity is available and goes back to In Progress. The actual
// reservation still happens once, at submit time.
func (u *Usecase) AcceptAmendment(ctx context.Context, memberID, reference string) (*ApplicationDTO, error) {
	var dto *ApplicationDTO
	err := u.uow.WithinApplicationTx(ctx, reference, func(r uow.Repos, a *domainApp.LoanApplication) error {
		m, err := u.actingMember(ctx, r, memberID)
		if err != nil {
			return err
		}
		if a.MemberID != m.ID {
			return apperr.Permission("you can only accept amendments on your own applications")
		}
		if a.Status != domainApp.StatusAmended {
			return apperr.Validation("status", "application is not in Amended state")
		}

		cov, _, err := LoadCoverage(ctx, r, a)
		if err != nil {
			return err
		}
		if cov.AvailableSelfGuarantee.GreaterThanOrEqual(a.RequestedAmount) {
			a.SelfGuaranteedAmount = a.RequestedAmount
			setStatus(a, domainApp.StatusReadyForSubmission)
		} else {
			a.SelfGuaranteedAmount = cov.AvailableSelfGuarantee
			setStatus(a, domainApp.StatusInProgress)
		}
		if err := r.Applications.Save(ctx, a); err != nil {
			return err
		}
		dto, err = u.toDTO(ctx, r, a)
		return err
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}
