package loanaccount

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Status string

const (
	StatusActive    Status = "Active"
	StatusFunded    Status = "Funded"
	StatusClosed    Status = "Closed"
	StatusDefaulted Status = "Defaulted"
)

// LoanAccount is created once, on approval of a loan application. Its
// repayment lifecycle is owned by the payments subsystem.
type LoanAccount struct {
	ID                   uint64          `gorm:"primaryKey;column:id" json:"-"`
	Reference            string          `gorm:"size:32;uniqueIndex:ux_loan_accounts_reference_active" json:"reference"`
	MemberID             uint64          `gorm:"index" json:"-"`
	ApplicationID        uint64          `gorm:"uniqueIndex:ux_loan_accounts_application_active" json:"-"`
	ProductID            uint64          `gorm:"index" json:"-"`
	AccountNumber        string          `gorm:"size:20;uniqueIndex" json:"account_number"`
	Principal            decimal.Decimal `gorm:"type:decimal(15,2)" json:"principal"`
	OutstandingBalance   decimal.Decimal `gorm:"type:decimal(15,2)" json:"outstanding_balance"`
	TotalInterestAccrued decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"total_interest_accrued"`
	StartDate            time.Time       `gorm:"type:date" json:"start_date"`
	EndDate              time.Time       `gorm:"type:date" json:"end_date"`
	Status               Status          `gorm:"size:20;default:'Active'" json:"status"`
	CreatedAt            time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt            time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt            gorm.DeletedAt  `gorm:"index" json:"-"`
}

func (LoanAccount) TableName() string { return "loan_accounts" }
