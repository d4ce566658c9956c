package mysql

import (
	"context"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	savingsDomain "sacco-backoffice/internal/domain/savings"
)

// SavingsRepository is the balance oracle backed by the savings_accounts
// table. Balances are written by the deposits subsystem; we only read.
type SavingsRepository struct{ db *gorm.DB }

func NewSavingsRepository(db *gorm.DB) *SavingsRepository { return &SavingsRepository{db: db} }

func (r *SavingsRepository) TotalBalance(ctx context.Context, memberID uint64) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	res := r.db.WithContext(ctx).
		Model(&savingsDomain.Account{}).
		Select("SUM(balance)").
		Where("member_id = ?", memberID).
		Scan(&total)
	if res.Error != nil {
		return decimal.Zero, res.Error
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}
