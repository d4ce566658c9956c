package application

import (
	"context"
	"errors"
	"io"
	"testing"
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
	domainProduct "sacco-backoffice/internal/domain/product"
	"sacco-backoffice/internal/domain/uow"
	"sacco-backoffice/internal/notify"
	"sacco-backoffice/internal/testutil/guaranteemock"
	"sacco-backoffice/internal/testutil/guarantormock"
	"sacco-backoffice/internal/testutil/loanaccountmock"
	"sacco-backoffice/internal/testutil/membermock"
	"sacco-backoffice/internal/testutil/oraclemock"
	"sacco-backoffice/internal/testutil/productmock"
	"sacco-backoffice/internal/testutil/uowmock"
	"sacco-backoffice/internal/usecase/capacity"
)

func dec(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

type recordingNotifier struct{ events []notify.Event }

func (n *recordingNotifier) Notify(e notify.Event, _ string, _ map[string]string) {
	n.events = append(n.events, e)
}

// fixture is an in-memory world: one borrower, one other guarantor, one
// product, one application, pledge rows, savings per member.
type fixture struct {
	borrower *domainMember.Member
	other    *domainMember.Member
	product  *domainProduct.Product
	app      *domainApp.LoanApplication
	profiles map[uint64]*domainGuarantor.Profile // by member id
	pledges  []*domainGuarantee.Request
	savings  map[uint64]decimal.Decimal
	accounts []*domainAccount.LoanAccount
	notifier *recordingNotifier
	uc       *Usecase
}

func (f *fixture) profileByID(id uint64) *domainGuarantor.Profile {
	for _, p := range f.profiles {
		if p.ID == id {
			return p
		}
	}
	return nil
}

func (f *fixture) addPledge(g *domainGuarantee.Request) *domainGuarantee.Request {
	g.ID = uint64(len(f.pledges) + 1)
	f.pledges = append(f.pledges, g)
	return g
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		borrower: &domainMember.Member{ID: 1, MemberID: "aaaa1111", MemberNo: "MB-0001", FirstName: "Asha", Email: "asha@example.com"},
		other:    &domainMember.Member{ID: 2, MemberID: "bbbb2222", MemberNo: "MB-0002", FirstName: "Ben", Email: "ben@example.com"},
		product:  &domainProduct.Product{ID: 3, ProductID: "pppp0001", Name: "Development Loan", InterestRate: dec(12), IsActive: true},
		profiles: map[uint64]*domainGuarantor.Profile{},
		savings:  map[uint64]decimal.Decimal{1: dec(50000), 2: dec(100000)},
		notifier: &recordingNotifier{},
	}
	f.app = &domainApp.LoanApplication{
		ID:                 10,
		Reference:          "dddd4444",
		MemberID:           1,
		ProductID:          3,
		RequestedAmount:    dec(40000),
		TermMonths:         12,
		RepaymentFrequency: domainApp.FreqMonthly,
		StartDate:          time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		Status:             domainApp.StatusInProgress,
	}

	members := &membermock.Repo{
		GetByMemberIDFn: func(_ context.Context, memberID string) (*domainMember.Member, error) {
			switch memberID {
			case f.borrower.MemberID:
				return f.borrower, nil
			case f.other.MemberID:
				return f.other, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
		GetByIDFn: func(_ context.Context, id uint64) (*domainMember.Member, error) {
			switch id {
			case 1:
				return f.borrower, nil
			case 2:
				return f.other, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
	}

	products := &productmock.Repo{
		GetByIDFn: func(_ context.Context, id uint64) (*domainProduct.Product, error) {
			if id == f.product.ID {
				return f.product, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
		GetActiveByNameFn: func(_ context.Context, name string) (*domainProduct.Product, error) {
			if name == f.product.Name && f.product.IsActive {
				return f.product, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
	}

	apps := &applicationRepo{f: f}

	var nextProfileID uint64 = 100
	guarantors := &guarantormock.Repo{
		CreateFn: func(_ context.Context, p *domainGuarantor.Profile) error {
			nextProfileID++
			p.ID = nextProfileID
			f.profiles[p.MemberID] = p
			return nil
		},
		GetByMemberIDFn: func(_ context.Context, memberID uint64) (*domainGuarantor.Profile, error) {
			if p, ok := f.profiles[memberID]; ok {
				return p, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
		GetByMemberIDForUpdateFn: func(_ context.Context, memberID uint64) (*domainGuarantor.Profile, error) {
			if p, ok := f.profiles[memberID]; ok {
				return p, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
		GetByIDForUpdateFn: func(_ context.Context, id uint64) (*domainGuarantor.Profile, error) {
			if p := f.profileByID(id); p != nil {
				return p, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
	}

	guarantees := &guaranteemock.Repo{
		CreateFn: func(_ context.Context, g *domainGuarantee.Request) error {
			f.addPledge(g)
			return nil
		},
		SaveFn: func(_ context.Context, g *domainGuarantee.Request) error {
			for _, s := range f.pledges {
				if s.ID == g.ID {
					*s = *g
				}
			}
			return nil
		},
		GetByApplicationAndGuarantorFn: func(_ context.Context, appID, guarantorID uint64) (*domainGuarantee.Request, error) {
			for _, g := range f.pledges {
				if g.ApplicationID == appID && g.GuarantorID == guarantorID {
					return g, nil
				}
			}
			return nil, gorm.ErrRecordNotFound
		},
		ListByApplicationFn: func(_ context.Context, appID uint64, statuses ...domainGuarantee.Status) ([]domainGuarantee.Request, error) {
			var out []domainGuarantee.Request
			for _, g := range f.pledges {
				if g.ApplicationID != appID {
					continue
				}
				for _, st := range statuses {
					if g.Status == st {
						out = append(out, *g)
						break
					}
				}
			}
			return out, nil
		},
		SumAcceptedByOthersFn: func(_ context.Context, appID, borrowerGuarantorID uint64) (decimal.Decimal, error) {
			sum := decimal.Zero
			for _, g := range f.pledges {
				if g.ApplicationID == appID && g.Status == domainGuarantee.StatusAccepted && g.GuarantorID != borrowerGuarantorID {
					sum = sum.Add(g.GuaranteedAmount)
				}
			}
			return sum, nil
		},
	}

	accounts := &loanaccountmock.Repo{
		CreateFn: func(_ context.Context, a *domainAccount.LoanAccount) error {
			a.ID = uint64(len(f.accounts) + 1)
			f.accounts = append(f.accounts, a)
			return nil
		},
	}

	oracle := &oraclemock.Oracle{
		TotalBalanceFn: func(_ context.Context, memberID uint64) (decimal.Decimal, error) {
			return f.savings[memberID], nil
		},
	}

	repos := uow.Repos{
		Members:      members,
		Savings:      oracle,
		Products:     products,
		Guarantors:   guarantors,
		Guarantees:   guarantees,
		Applications: apps,
		LoanAccounts: accounts,
	}
	log := quietLogger()
	f.uc = NewUsecase(uowmock.WithRepos(repos), capacity.NewLedger(log), f.notifier, log)
	return f
}

// applicationRepo is a one-row application store over the fixture.
type applicationRepo struct{ f *fixture }

func (r *applicationRepo) Create(_ context.Context, a *domainApp.LoanApplication) error {
	a.ID = 10
	r.f.app = a
	return nil
}

func (r *applicationRepo) Save(context.Context, *domainApp.LoanApplication) error { return nil }

func (r *applicationRepo) GetByReference(_ context.Context, reference string) (*domainApp.LoanApplication, error) {
	if r.f.app != nil && reference == r.f.app.Reference {
		return r.f.app, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *applicationRepo) GetByID(_ context.Context, id uint64) (*domainApp.LoanApplication, error) {
	if r.f.app != nil && id == r.f.app.ID {
		return r.f.app, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *applicationRepo) GetByIDForUpdate(ctx context.Context, id uint64) (*domainApp.LoanApplication, error) {
	return r.GetByID(ctx, id)
}

func (r *applicationRepo) GetByReferenceForUpdate(ctx context.Context, reference string) (*domainApp.LoanApplication, error) {
	return r.GetByReference(ctx, reference)
}

func (r *applicationRepo) ListByMemberID(_ context.Context, memberID uint64) ([]domainApp.LoanApplication, error) {
	if r.f.app != nil && r.f.app.MemberID == memberID {
		return []domainApp.LoanApplication{*r.f.app}, nil
	}
	return nil, nil
}

// selfProfile installs a guarantor profile for the borrower.
func (f *fixture) selfProfile(max int64) *domainGuarantor.Profile {
	p := &domainGuarantor.Profile{
		ID: 101, ProfileID: "cccc3333", MemberID: 1,
		MaxActiveGuarantees: 3, MaxGuaranteeAmount: dec(max),
	}
	f.profiles[1] = p
	return p
}

func TestCreateFullySelfCoveredIsReadyForSubmission(t *testing.T) {
	f := newFixture(t)
	f.app = nil

	dto, err := f.uc.Create(context.Background(), CreateInput{
		MemberID:        f.borrower.MemberID,
		Product:         "Development Loan",
		RequestedAmount: dec(40000),
		TermMonths:      12,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if dto.Status != string(domainApp.StatusReadyForSubmission) {
		t.Fatalf("status = %s, want Ready for Submission (savings 50000 cover 40000)", dto.Status)
	}
	if dto.Projection == nil {
		t.Fatal("projection snapshot missing")
	}
	if !dto.Projection.TotalInterest.Equal(dec(4800)) {
		t.Fatalf("total interest = %s, want 4800 (40000 at 12%% over 12 months)", dto.Projection.TotalInterest)
	}
	if dto.RepaymentFrequency != string(domainApp.FreqMonthly) {
		t.Fatalf("frequency = %s, want monthly default", dto.RepaymentFrequency)
	}
}

func TestCreateWithNoSavingsIsPending(t *testing.T) {
	f := newFixture(t)
	f.app = nil
	f.savings[1] = decimal.Zero

	dto, err := f.uc.Create(context.Background(), CreateInput{
		MemberID:        f.borrower.MemberID,
		Product:         "Development Loan",
		RequestedAmount: dec(40000),
		TermMonths:      12,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if dto.Status != string(domainApp.StatusPending) {
		t.Fatalf("status = %s, want Pending", dto.Status)
	}
}

func TestSubmitAutoReservesSelfGuarantee(t *testing.T) {
	f := newFixture(t)
	p := f.selfProfile(50000)
	f.app.Status = domainApp.StatusReadyForSubmission

	dto, err := f.uc.Submit(context.Background(), f.borrower.MemberID, f.app.Reference)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if dto.Status != string(domainApp.StatusSubmitted) {
		t.Fatalf("status = %s, want Submitted", dto.Status)
	}
	if !p.CommittedGuaranteeAmount.Equal(dec(40000)) {
		t.Fatalf("committed = %s, want 40000", p.CommittedGuaranteeAmount)
	}
	if !dto.SelfGuaranteedAmount.Equal(dec(40000)) {
		t.Fatalf("self guaranteed = %s, want 40000", dto.SelfGuaranteedAmount)
	}
	if len(f.pledges) != 1 || f.pledges[0].Status != domainGuarantee.StatusAccepted || f.pledges[0].GuarantorID != p.ID {
		t.Fatalf("want one accepted self pledge, got %+v", f.pledges)
	}
	if len(f.notifier.events) != 1 || f.notifier.events[0] != notify.EventApplicationSubmitted {
		t.Fatalf("events = %v", f.notifier.events)
	}
}

func TestSubmitOnlyLocksTheShortfall(t *testing.T) {
	f := newFixture(t)
	p := f.selfProfile(50000)
	f.app.RequestedAmount = dec(100000)
	f.app.Status = domainApp.StatusReadyForSubmission
	f.savings[1] = dec(100000)
	p.MaxGuaranteeAmount = dec(100000)
	// a third party already covers 70000
	f.addPledge(&domainGuarantee.Request{
		Reference: "eeee5555", MemberID: 1, ApplicationID: 10, GuarantorID: 200,
		GuaranteedAmount: dec(70000), Status: domainGuarantee.StatusAccepted,
	})

	dto, err := f.uc.Submit(context.Background(), f.borrower.MemberID, f.app.Reference)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if !p.CommittedGuaranteeAmount.Equal(dec(30000)) {
		t.Fatalf("committed = %s, want only the 30000 shortfall", p.CommittedGuaranteeAmount)
	}
	if !dto.SelfGuaranteedAmount.Equal(dec(30000)) {
		t.Fatalf("self guaranteed = %s, want 30000", dto.SelfGuaranteedAmount)
	}
}

func TestSubmitRevertsWhenCoverageSlipped(t *testing.T) {
	f := newFixture(t)
	f.selfProfile(50000)
	f.app.RequestedAmount = dec(100000)
	f.app.Status = domainApp.StatusReadyForSubmission
	// nothing but 50000 self capacity against 100000

	_, err := f.uc.Submit(context.Background(), f.borrower.MemberID, f.app.Reference)
	var ve *apperr.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("err = %v, want validation error", err)
	}
	if f.app.Status != domainApp.StatusInProgress {
		t.Fatalf("status = %s, want reverted to In Progress", f.app.Status)
	}
}

func TestSubmitConflictWhenSavingsDropUnderLock(t *testing.T) {
	f := newFixture(t)
	p := f.selfProfile(50000)
	f.app.Status = domainApp.StatusReadyForSubmission
	// coverage reads the stored 50000 ceiling, but the live balance is lower
	f.savings[1] = dec(30000)

	_, err := f.uc.Submit(context.Background(), f.borrower.MemberID, f.app.Reference)
	var ce *apperr.ConflictError
	if !errors.As(err, &ce) {
		t.Fatalf("err = %v, want conflict error", err)
	}
	if f.app.Status != domainApp.StatusInProgress {
		t.Fatalf("status = %s, want reverted to In Progress", f.app.Status)
	}
	if !p.CommittedGuaranteeAmount.IsZero() {
		t.Fatalf("failed submit must not keep a reservation, committed = %s", p.CommittedGuaranteeAmount)
	}
}

func TestSubmitRejectsDoubleSubmission(t *testing.T) {
	f := newFixture(t)
	f.app.Status = domainApp.StatusSubmitted

	_, err := f.uc.Submit(context.Background(), f.borrower.MemberID, f.app.Reference)
	var ve *apperr.ValidationError
	if !errors.As(err, &ve) || ve.Field != "status" {
		t.Fatalf("err = %v, want status validation error", err)
	}
}

func TestSubmitRejectsNonOwner(t *testing.T) {
	f := newFixture(t)
	f.app.Status = domainApp.StatusReadyForSubmission

	_, err := f.uc.Submit(context.Background(), f.other.MemberID, f.app.Reference)
	var pe *apperr.PermissionError
	if !errors.As(err, &pe) {
		t.Fatalf("err = %v, want permission error", err)
	}
}

func submittedWithSnapshot(t *testing.T, f *fixture) {
	t.Helper()
	f.app.Status = domainApp.StatusSubmitted
	if err := f.uc.reproject(context.Background(), uow.Repos{Products: &productmock.Repo{
		GetByIDFn: func(context.Context, uint64) (*domainProduct.Product, error) { return f.product, nil },
	}}, f.app); err != nil {
		t.Fatalf("reproject: %v", err)
	}
}

func TestApproveOpensLoanAccount(t *testing.T) {
	f := newFixture(t)
	submittedWithSnapshot(t, f)

	out, err := f.uc.Decide(context.Background(), f.app.Reference, true)
	if err != nil {
		t.Fatalf("Decide: %v", err)
	}
	if out.Application.Status != string(domainApp.StatusApproved) {
		t.Fatalf("status = %s, want Approved", out.Application.Status)
	}
	if out.LoanAccount == nil {
		t.Fatal("approval must open a loan account")
	}
	if !out.LoanAccount.Principal.Equal(dec(40000)) {
		t.Fatalf("principal = %s, want 40000", out.LoanAccount.Principal)
	}
	if !out.LoanAccount.OutstandingBalance.Equal(dec(44800)) {
		t.Fatalf("outstanding = %s, want principal plus 4800 interest", out.LoanAccount.OutstandingBalance)
	}
	if out.LoanAccount.EndDate != "2027-03-01" {
		t.Fatalf("end date = %s, want start plus 12 months", out.LoanAccount.EndDate)
	}
	if out.LoanAccount.AccountNumber == "" {
		t.Fatal("account number missing")
	}
	if len(f.notifier.events) != 1 || f.notifier.events[0] != notify.EventApplicationApproved {
		t.Fatalf("events = %v", f.notifier.events)
	}
}

func TestDeclineReleasesEveryReservation(t *testing.T) {
	f := newFixture(t)
	submittedWithSnapshot(t, f)
	self := f.selfProfile(50000)
	self.CommittedGuaranteeAmount = dec(30000)
	otherProfile := &domainGuarantor.Profile{
		ID: 102, ProfileID: "ffff6666", MemberID: 2,
		MaxActiveGuarantees: 3, MaxGuaranteeAmount: dec(100000), CommittedGuaranteeAmount: dec(10000),
	}
	f.profiles[2] = otherProfile
	f.app.SelfGuaranteedAmount = dec(30000)
	f.addPledge(&domainGuarantee.Request{
		Reference: "1111aaaa", MemberID: 1, ApplicationID: 10, GuarantorID: 101,
		GuaranteedAmount: dec(30000), Status: domainGuarantee.StatusAccepted,
	})
	f.addPledge(&domainGuarantee.Request{
		Reference: "2222bbbb", MemberID: 1, ApplicationID: 10, GuarantorID: 102,
		GuaranteedAmount: dec(10000), Status: domainGuarantee.StatusAccepted,
	})

	out, err := f.uc.Decide(context.Background(), f.app.Reference, false)
	if err != nil {
		t.Fatalf("Decide: %v", err)
	}
	if out.Application.Status != string(domainApp.StatusDeclined) {
		t.Fatalf("status = %s, want Declined", out.Application.Status)
	}
	if out.LoanAccount != nil {
		t.Fatal("decline must not open a loan account")
	}
	if !self.CommittedGuaranteeAmount.IsZero() {
		t.Fatalf("self committed = %s, want released to 0", self.CommittedGuaranteeAmount)
	}
	if !otherProfile.CommittedGuaranteeAmount.IsZero() {
		t.Fatalf("other committed = %s, want released to 0", otherProfile.CommittedGuaranteeAmount)
	}
	if !f.app.SelfGuaranteedAmount.IsZero() {
		t.Fatalf("self guaranteed = %s, want 0", f.app.SelfGuaranteedAmount)
	}
}

func TestDecideRequiresSubmitted(t *testing.T) {
	f := newFixture(t)
	f.app.Status = domainApp.StatusInProgress

	_, err := f.uc.Decide(context.Background(), f.app.Reference, true)
	var ve *apperr.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("err = %v, want validation error", err)
	}
}

func TestCancelReleasesGuarantees(t *testing.T) {
	f := newFixture(t)
	p := f.selfProfile(50000)
	p.CommittedGuaranteeAmount = dec(40000)
	f.app.SelfGuaranteedAmount = dec(40000)
	f.addPledge(&domainGuarantee.Request{
		Reference: "1111aaaa", MemberID: 1, ApplicationID: 10, GuarantorID: 101,
		GuaranteedAmount: dec(40000), Status: domainGuarantee.StatusAccepted,
	})

	dto, err := f.uc.Cancel(context.Background(), f.borrower.MemberID, f.app.Reference)
	if err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	if dto.Status != string(domainApp.StatusCancelled) {
		t.Fatalf("status = %s, want Cancelled", dto.Status)
	}
	if !p.CommittedGuaranteeAmount.IsZero() {
		t.Fatalf("committed = %s, want 0", p.CommittedGuaranteeAmount)
	}
	if f.pledges[0].Status != domainGuarantee.StatusCancelled {
		t.Fatalf("pledge status = %s, want Cancelled", f.pledges[0].Status)
	}
}

func TestCancelBlockedOnDecidedApplication(t *testing.T) {
	f := newFixture(t)
	for _, s := range []domainApp.Status{
		domainApp.StatusApproved, domainApp.StatusDisbursed,
		domainApp.StatusCancelled, domainApp.StatusDeclined,
	} {
		f.app.Status = s
		_, err := f.uc.Cancel(context.Background(), f.borrower.MemberID, f.app.Reference)
		var ve *apperr.ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("Cancel from %s: err = %v, want validation error", s, err)
		}
	}
}

func TestUpdateReprojectsAndRecomputesReadiness(t *testing.T) {
	f := newFixture(t)
	f.app.Status = domainApp.StatusReadyForSubmission
	amount := dec(200000) // far over the 50000 savings

	dto, err := f.uc.Update(context.Background(), f.borrower.MemberID, f.app.Reference, UpdateInput{
		RequestedAmount: &amount,
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if dto.Status != string(domainApp.StatusInProgress) {
		t.Fatalf("status = %s, want demoted to In Progress", dto.Status)
	}
	if dto.Projection == nil || !dto.Projection.TotalInterest.Equal(dec(24000)) {
		t.Fatalf("projection not recomputed: %+v", dto.Projection)
	}
}

func TestUpdateRejectsAfterSubmission(t *testing.T) {
	f := newFixture(t)
	f.app.Status = domainApp.StatusSubmitted
	amount := dec(10000)

	_, err := f.uc.Update(context.Background(), f.borrower.MemberID, f.app.Reference, UpdateInput{
		RequestedAmount: &amount,
	})
	var ve *apperr.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("err = %v, want validation error", err)
	}
}

func TestAmendmentRoundTrip(t *testing.T) {
	f := newFixture(t)
	f.app.Status = domainApp.StatusPending
	f.savings[1] = dec(25000)

	if _, err := f.uc.RequestAmendment(context.Background(), f.borrower.MemberID, f.app.Reference); err != nil {
		t.Fatalf("RequestAmendment: %v", err)
	}
	if f.app.Status != domainApp.StatusReadyForAmendment {
		t.Fatalf("status = %s, want Ready for Amendment", f.app.Status)
	}

	amount := dec(20000)
	dto, err := f.uc.Amend(context.Background(), f.app.Reference, AmendInput{
		AmendmentNote:   "reduced to fit savings",
		RequestedAmount: &amount,
	})
	if err != nil {
		t.Fatalf("Amend: %v", err)
	}
	if dto.Status != string(domainApp.StatusAmended) {
		t.Fatalf("status = %s, want Amended", dto.Status)
	}
	if dto.AmendmentNote == "" {
		t.Fatal("amendment note missing")
	}

	dto, err = f.uc.AcceptAmendment(context.Background(), f.borrower.MemberID, f.app.Reference)
	if err != nil {
		t.Fatalf("AcceptAmendment: %v", err)
	}
	if dto.Status != string(domainApp.StatusReadyForSubmission) {
		t.Fatalf("status = %s, want Ready for Submission (25000 savings cover 20000)", dto.Status)
	}
	if !dto.SelfGuaranteedAmount.Equal(dec(20000)) {
		t.Fatalf("self guaranteed = %s, want 20000", dto.SelfGuaranteedAmount)
	}
}

func TestAmendRequiresNote(t *testing.T) {
	f := newFixture(t)
	f.app.Status = domainApp.StatusReadyForAmendment

	_, err := f.uc.Amend(context.Background(), f.app.Reference, AmendInput{})
	var ve *apperr.ValidationError
	if !errors.As(err, &ve) || ve.Field != "amendment_note" {
		t.Fatalf("err = %v, want amendment_note validation error", err)
	}
}

func TestRequestAmendmentOnlyFromPending(t *testing.T) {
	f := newFixture(t)
	f.app.Status = domainApp.StatusInProgress

	_, err := f.uc.RequestAmendment(context.Background(), f.borrower.MemberID, f.app.Reference)
	var ve *apperr.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("err = %v, want validation error", err)
	}
}
