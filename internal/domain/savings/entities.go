package savings

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Account holds one member's balance under one saving type. Deposits are
// recorded elsewhere; this service only sums balances.
type Account struct {
	ID            uint64          `gorm:"primaryKey;column:id" json:"-"`
	AccountID     string          `gorm:"size:32;uniqueIndex:ux_savings_account_id_active" json:"account_id"`
	MemberID      uint64          `gorm:"index:idx_savings_member" json:"-"`
	AccountNumber string          `gorm:"size:20;uniqueIndex" json:"account_number"`
	Balance       decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"balance"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt     gorm.DeletedAt  `gorm:"index" json:"-"`
}

func (Account) TableName() string { return "savings_accounts" }
