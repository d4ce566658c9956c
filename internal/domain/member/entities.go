package member

import (
	"time"

	"gorm.io/gorm"
)

// Member is provisioned by the identity system; this service only reads it.
type Member struct {
	ID        uint64         `gorm:"primaryKey;column:id" json:"-"`
	MemberID  string         `gorm:"size:32;uniqueIndex:ux_members_member_id_active" json:"member_id"`
	MemberNo  string         `gorm:"size:20;uniqueIndex:ux_members_member_no_active" json:"member_no"`
	FirstName string         `gorm:"size:100" json:"first_name"`
	LastName  string         `gorm:"size:100" json:"last_name"`
	Email     string         `gorm:"size:255" json:"email"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Member) TableName() string { return "members" }

// Tenure is how long the member has been in the SACCO, used by the
// guarantor eligibility gate.
func (m *Member) Tenure(now time.Time) time.Duration {
	return now.Sub(m.CreatedAt)
}
