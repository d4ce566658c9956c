package guarantee

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateInput struct {
	MemberID             string // acting (borrowing) member's public id
	ApplicationReference string
	GuarantorMemberNo    string
	GuaranteedAmount     decimal.Decimal
	Notes                string
}

type RequestDTO struct {
	Reference            string          `json:"reference"`
	ApplicationReference string          `json:"loan_application"`
	MemberNo             string          `json:"member_no"`
	GuarantorMemberNo    string          `json:"guarantor"`
	GuaranteedAmount     decimal.Decimal `json:"guaranteed_amount"`
	Status               string          `json:"status"`
	Notes                string          `json:"notes,omitempty"`
	CreatedAt            time.Time       `json:"created_at"`
}
