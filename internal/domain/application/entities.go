package application

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Status string

const (
	StatusPending            Status = "Pending"
	StatusInProgress         Status = "In Progress"
	StatusReadyForSubmission Status = "Ready for Submission"
	StatusSubmitted          Status = "Submitted"
	StatusApproved           Status = "Approved"
	StatusDisbursed          Status = "Disbursed"
	StatusDeclined           Status = "Declined"
	StatusCancelled          Status = "Cancelled"
	StatusReadyForAmendment  Status = "Ready for Amendment"
	StatusAmended            Status = "Amended"
)

// FinalStatuses are statuses from which no member- or guarantor-driven
// transition is permitted.
var FinalStatuses = []Status{
	StatusSubmitted, StatusApproved, StatusDisbursed, StatusDeclined, StatusCancelled,
}

func (s Status) IsFinal() bool {
	for _, f := range FinalStatuses {
		if s == f {
			return true
		}
	}
	return false
}

// Editable reports whether the borrower may still change terms.
func (s Status) Editable() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusReadyForSubmission:
		return true
	}
	return false
}

type Frequency string

const (
	FreqDaily     Frequency = "daily"
	FreqWeekly    Frequency = "weekly"
	FreqBiweekly  Frequency = "biweekly"
	FreqMonthly   Frequency = "monthly"
	FreqQuarterly Frequency = "quarterly"
	FreqAnnually  Frequency = "annually"
)

// LoanApplication is one borrower request. ProjectionSnapshot is the exact
// repayment projection shown to the borrower at application time; it is
// recomputed on term changes and amendments, and on nothing else.
type LoanApplication struct {
	ID                   uint64          `gorm:"primaryKey;column:id" json:"-"`
	Reference            string          `gorm:"size:32;uniqueIndex:ux_applications_reference_active" json:"reference"`
	MemberID             uint64          `gorm:"index:idx_applications_member" json:"-"`
	ProductID            uint64          `gorm:"index" json:"-"`
	RequestedAmount      decimal.Decimal `gorm:"type:decimal(15,2)" json:"requested_amount"`
	TermMonths           uint            `json:"term_months"`
	RepaymentFrequency   Frequency       `gorm:"size:40;default:'monthly'" json:"repayment_frequency"`
	StartDate            time.Time       `gorm:"type:date" json:"start_date"`
	Status               Status          `gorm:"size:20;default:'Pending';index" json:"status"`
	SelfGuaranteedAmount decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"self_guaranteed_amount"`
	ProjectionSnapshot   []byte          `gorm:"type:json" json:"-"`
	AmendmentNote        string          `gorm:"type:text" json:"amendment_note,omitempty"`
	StatusUpdatedAt      time.Time       `gorm:"autoCreateTime" json:"status_updated_at"`
	CreatedAt            time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt            time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt            gorm.DeletedAt  `gorm:"index" json:"-"`
}

func (LoanApplication) TableName() string { return "loan_applications" }
