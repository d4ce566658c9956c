package coverage

import (
	"github.com/shopspring/decimal"

	"sacco-backoffice/internal/domain/guarantor"
)

// Breakdown is the coverage projection for one loan application. Computing it
// never mutates any ledger; reservations happen only inside the state
// machines.
type Breakdown struct {
	TotalSavings            decimal.Decimal `json:"total_savings"`
	AvailableSelfGuarantee  decimal.Decimal `json:"available_self_guarantee"`
	ReservedSelfGuarantee   decimal.Decimal `json:"reserved_self_guarantee"`
	TotalGuaranteedByOthers decimal.Decimal `json:"total_guaranteed_by_others"`
	EffectiveCoverage       decimal.Decimal `json:"effective_coverage"`
	RemainingToCover        decimal.Decimal `json:"remaining_to_cover"`
	IsFullyCovered          bool            `json:"is_fully_covered"`
}

// Compute derives coverage from the requested amount, the oracle's savings
// total, the borrower's own guarantor profile (nil when none exists yet), the
// sum of accepted third-party pledges, and any self-guarantee already
// reserved for this application (reservedSelf reduces the profile's available
// capacity, so it counts toward coverage separately).
//
// A member without a profile has committed nothing, so their whole savings
// balance counts as available self-guarantee. Only an explicit self pledge
// creates the missing profile; the submit path requires one to exist before
// it reserves.
func Compute(requestedAmount, totalSavings decimal.Decimal, borrowerProfile *guarantor.Profile, acceptedByOthers, reservedSelf decimal.Decimal) Breakdown {
	availableSelf := totalSavings
	if borrowerProfile != nil {
		availableSelf = borrowerProfile.AvailableCapacity()
	}
	if availableSelf.IsNegative() {
		availableSelf = decimal.Zero
	}

	effective := availableSelf.Add(acceptedByOthers).Add(reservedSelf)
	remaining := requestedAmount.Sub(effective)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}

	return Breakdown{
		TotalSavings:            totalSavings,
		AvailableSelfGuarantee:  availableSelf,
		ReservedSelfGuarantee:   reservedSelf,
		TotalGuaranteedByOthers: acceptedByOthers,
		EffectiveCoverage:       effective,
		RemainingToCover:        remaining,
		IsFullyCovered:          remaining.IsZero(),
	}
}
