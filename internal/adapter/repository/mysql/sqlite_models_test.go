package mysql

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// --- SQLite-friendly schema only for tests (no ENUM, no DECIMAL) ---

type memberSQLite struct {
	ID        uint64         `gorm:"primaryKey;column:id"`
	MemberID  string         `gorm:"size:32;column:member_id"`
	MemberNo  string         `gorm:"size:20;column:member_no"`
	FirstName string         `gorm:"column:first_name"`
	LastName  string         `gorm:"column:last_name"`
	Email     string         `gorm:"column:email"`
	CreatedAt time.Time      `gorm:"column:created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (memberSQLite) TableName() string { return "members" }

type savingsSQLite struct {
	ID            uint64         `gorm:"primaryKey;column:id"`
	AccountID     string         `gorm:"size:32;column:account_id"`
	MemberID      uint64         `gorm:"column:member_id"`
	AccountNumber string         `gorm:"column:account_number"`
	Balance       float64        `gorm:"column:balance"`
	CreatedAt     time.Time      `gorm:"column:created_at"`
	UpdatedAt     time.Time      `gorm:"column:updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (savingsSQLite) TableName() string { return "savings_accounts" }

type productSQLite struct {
	ID           uint64         `gorm:"primaryKey;column:id"`
	ProductID    string         `gorm:"size:32;column:product_id"`
	Name         string         `gorm:"column:name"`
	InterestRate float64        `gorm:"column:interest_rate"`
	IsActive     bool           `gorm:"column:is_active"`
	CreatedAt    time.Time      `gorm:"column:created_at"`
	UpdatedAt    time.Time      `gorm:"column:updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (productSQLite) TableName() string { return "loan_products" }

type guarantorSQLite struct {
	ID                       uint64         `gorm:"primaryKey;column:id"`
	ProfileID                string         `gorm:"size:32;column:profile_id"`
	MemberID                 uint64         `gorm:"column:member_id"`
	IsEligible               bool           `gorm:"column:is_eligible"`
	EligibilityCheckedAt     *time.Time     `gorm:"column:eligibility_checked_at"`
	MaxActiveGuarantees      uint           `gorm:"column:max_active_guarantees"`
	MaxGuaranteeAmount       float64        `gorm:"column:max_guarantee_amount"`
	CommittedGuaranteeAmount float64        `gorm:"column:committed_guarantee_amount"`
	CreatedAt                time.Time      `gorm:"column:created_at"`
	UpdatedAt                time.Time      `gorm:"column:updated_at"`
	DeletedAt                gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (guarantorSQLite) TableName() string { return "guarantor_profiles" }

type guaranteeSQLite struct {
	ID               uint64         `gorm:"primaryKey;column:id"`
	Reference        string         `gorm:"size:32;column:reference"`
	MemberID         uint64         `gorm:"column:member_id"`
	ApplicationID    uint64         `gorm:"column:application_id"`
	GuarantorID      uint64         `gorm:"column:guarantor_id"`
	GuaranteedAmount float64        `gorm:"column:guaranteed_amount"`
	Status           string         `gorm:"type:text;column:status"`
	Notes            string         `gorm:"column:notes"`
	CreatedAt        time.Time      `gorm:"column:created_at"`
	UpdatedAt        time.Time      `gorm:"column:updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (guaranteeSQLite) TableName() string { return "guarantee_requests" }

type applicationSQLite struct {
	ID                   uint64         `gorm:"primaryKey;column:id"`
	Reference            string         `gorm:"size:32;column:reference"`
	MemberID             uint64         `gorm:"column:member_id"`
	ProductID            uint64         `gorm:"column:product_id"`
	RequestedAmount      float64        `gorm:"column:requested_amount"`
	TermMonths           uint           `gorm:"column:term_months"`
	RepaymentFrequency   string         `gorm:"type:text;column:repayment_frequency"`
	StartDate            time.Time      `gorm:"column:start_date"`
	Status               string         `gorm:"type:text;column:status"`
	SelfGuaranteedAmount float64        `gorm:"column:self_guaranteed_amount"`
	ProjectionSnapshot   []byte         `gorm:"column:projection_snapshot"`
	AmendmentNote        string         `gorm:"column:amendment_note"`
	StatusUpdatedAt      time.Time      `gorm:"column:status_updated_at"`
	CreatedAt            time.Time      `gorm:"column:created_at"`
	UpdatedAt            time.Time      `gorm:"column:updated_at"`
	DeletedAt            gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (applicationSQLite) TableName() string { return "loan_applications" }

type loanAccountSQLite struct {
	ID                   uint64         `gorm:"primaryKey;column:id"`
	Reference            string         `gorm:"size:32;column:reference"`
	MemberID             uint64         `gorm:"column:member_id"`
	ApplicationID        uint64         `gorm:"column:application_id"`
	ProductID            uint64         `gorm:"column:product_id"`
	AccountNumber        string         `gorm:"column:account_number"`
	Principal            float64        `gorm:"column:principal"`
	OutstandingBalance   float64        `gorm:"column:outstanding_balance"`
	TotalInterestAccrued float64        `gorm:"column:total_interest_accrued"`
	StartDate            time.Time      `gorm:"column:start_date"`
	EndDate              time.Time      `gorm:"column:end_date"`
	Status               string         `gorm:"type:text;column:status"`
	CreatedAt            time.Time      `gorm:"column:created_at"`
	UpdatedAt            time.Time      `gorm:"column:updated_at"`
	DeletedAt            gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (loanAccountSQLite) TableName() string { return "loan_accounts" }

// openTestDB creates an in-memory sqlite DB and migrates ONLY the sqlite-safe
// schema. Repositories read and write the domain models against it; column
// names line up, types are sqlite-friendly.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&memberSQLite{}, &savingsSQLite{}, &productSQLite{},
		&guarantorSQLite{}, &guaranteeSQLite{}, &applicationSQLite{}, &loanAccountSQLite{},
	); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}
