package guarantee

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Status string

const (
	StatusPending   Status = "Pending"
	StatusAccepted  Status = "Accepted"
	StatusDeclined  Status = "Declined"
	StatusCancelled Status = "Cancelled"
)

// Request is one guarantor's pledge toward one loan application. A guarantor
// may pledge at most once per application (unique on application+guarantor).
type Request struct {
	ID               uint64          `gorm:"primaryKey;column:id" json:"-"`
	Reference        string          `gorm:"size:32;uniqueIndex:ux_guarantees_reference_active" json:"reference"`
	MemberID         uint64          `gorm:"index" json:"-"`
	ApplicationID    uint64          `gorm:"uniqueIndex:ux_guarantees_app_guarantor" json:"-"`
	GuarantorID      uint64          `gorm:"uniqueIndex:ux_guarantees_app_guarantor;index" json:"-"`
	GuaranteedAmount decimal.Decimal `gorm:"type:decimal(15,2)" json:"guaranteed_amount"`
	Status           Status          `gorm:"size:25;default:'Pending';index" json:"status"`
	Notes            string          `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt        time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt        gorm.DeletedAt  `gorm:"index" json:"-"`
}

func (Request) TableName() string { return "guarantee_requests" }
