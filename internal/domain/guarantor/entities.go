package guarantor

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Profile is a member's guarantor profile. MaxGuaranteeAmount is kept synced
// to the member's total savings; CommittedGuaranteeAmount is mutated only by
// the capacity ledger's reserve/release operations, never written directly
// from a client-supplied value.
//
// Invariant: 0 <= CommittedGuaranteeAmount <= MaxGuaranteeAmount after every
// successful reservation.
type Profile struct {
	ID                       uint64          `gorm:"primaryKey;column:id" json:"-"`
	ProfileID                string          `gorm:"size:32;uniqueIndex:ux_guarantors_profile_id_active" json:"profile_id"`
	MemberID                 uint64          `gorm:"uniqueIndex:ux_guarantors_member_active" json:"-"`
	IsEligible               bool            `gorm:"default:false" json:"is_eligible"`
	EligibilityCheckedAt     *time.Time      `json:"eligibility_checked_at"`
	MaxActiveGuarantees      uint            `gorm:"default:3" json:"max_active_guarantees"`
	MaxGuaranteeAmount       decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"max_guarantee_amount"`
	CommittedGuaranteeAmount decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"committed_guarantee_amount"`
	CreatedAt                time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt                time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt                gorm.DeletedAt  `gorm:"index" json:"-"`
}

func (Profile) TableName() string { return "guarantor_profiles" }

// AvailableCapacity is max(0, max - committed). No side effects.
func (p *Profile) AvailableCapacity() decimal.Decimal {
	avail := p.MaxGuaranteeAmount.Sub(p.CommittedGuaranteeAmount)
	if avail.IsNegative() {
		return decimal.Zero
	}
	return avail
}
