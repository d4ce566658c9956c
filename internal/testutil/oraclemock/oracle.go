package oraclemock

import (
	"context"

	"github.com/shopspring/decimal"
)

// Oracle is a function-backed savings.Oracle.
type Oracle struct {
	TotalBalanceFn func(ctx context.Context, memberID uint64) (decimal.Decimal, error)
}

func (m *Oracle) TotalBalance(ctx context.Context, memberID uint64) (decimal.Decimal, error) {
	if m.TotalBalanceFn != nil {
		return m.TotalBalanceFn(ctx, memberID)
	}
	return decimal.Zero, nil
}

// Fixed returns an oracle that always reports the same balance.
func Fixed(balance decimal.Decimal) *Oracle {
	return &Oracle{TotalBalanceFn: func(context.Context, uint64) (decimal.Decimal, error) {
		return balance, nil
	}}
}
