package savings

import (
	"context"

	"github.com/shopspring/decimal"
)

// Oracle is the balance oracle: the current total eligible savings for a
// member. Queried synchronously whenever guarantee capacity is resynced.
type Oracle interface {
	TotalBalance(ctx context.Context, memberID uint64) (decimal.Decimal, error)
}
