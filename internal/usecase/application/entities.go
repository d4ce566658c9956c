package application

import (
	"time"

	"github.com/shopspring/decimal"

	"sacco-backoffice/internal/usecase/projection"
)

type CreateInput struct {
	MemberID           string // acting member's public id
	Product            string
	RequestedAmount    decimal.Decimal
	TermMonths         uint
	RepaymentFrequency string
	StartDate          time.Time
}

// UpdateInput carries only the fields the borrower changed; nil means keep.
type UpdateInput struct {
	Product            *string
	RequestedAmount    *decimal.Decimal
	TermMonths         *uint
	RepaymentFrequency *string
	StartDate          *time.Time
}

// AmendInput is the admin's amendment; the note is mandatory.
type AmendInput struct {
	AmendmentNote      string
	Product            *string
	RequestedAmount    *decimal.Decimal
	TermMonths         *uint
	RepaymentFrequency *string
	StartDate          *time.Time
}

type ApplicationDTO struct {
	Reference            string                 `json:"reference"`
	MemberNo             string                 `json:"member_no"`
	Product              string                 `json:"product"`
	RequestedAmount      decimal.Decimal        `json:"requested_amount"`
	TermMonths           uint                   `json:"term_months"`
	RepaymentFrequency   string                 `json:"repayment_frequency"`
	StartDate            string                 `json:"start_date"`
	Status               string                 `json:"status"`
	SelfGuaranteedAmount decimal.Decimal        `json:"self_guaranteed_amount"`
	AmendmentNote        string                 `json:"amendment_note,omitempty"`
	Projection           *projection.Projection `json:"projection,omitempty"`
	CreatedAt            time.Time              `json:"created_at"`
}

type LoanAccountDTO struct {
	Reference            string          `json:"reference"`
	AccountNumber        string          `json:"account_number"`
	Principal            decimal.Decimal `json:"principal"`
	OutstandingBalance   decimal.Decimal `json:"outstanding_balance"`
	TotalInterestAccrued decimal.Decimal `json:"total_interest_accrued"`
	StartDate            string          `json:"start_date"`
	EndDate              string          `json:"end_date"`
	Status               string          `json:"status"`
}

// DecisionDTO is the admin approve/decline response; LoanAccount is set only
// on approval.
type DecisionDTO struct {
	Application *ApplicationDTO `json:"application"`
	LoanAccount *LoanAccountDTO `json:"loan_account,omitempty"`
}
