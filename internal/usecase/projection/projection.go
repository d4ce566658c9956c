package projection

import (
	"time"

	"github.com/shopspring/decimal"

	"sacco-backoffice/internal/domain/apperr"
)

// Installment is one row of the repayment schedule.
type Installment struct {
	DueDate      string          `json:"due_date"`
	PrincipalDue decimal.Decimal `json:"principal_due"`
	InterestDue  decimal.Decimal `json:"interest_due"`
	TotalDue     decimal.Decimal `json:"total_due"`
	BalanceAfter decimal.Decimal `json:"balance_after"`
}

// Projection is the flat-rate repayment projection stored verbatim on the
// application as its snapshot.
type Projection struct {
	TermMonths     uint            `json:"term_months"`
	MonthlyPayment decimal.Decimal `json:"monthly_payment"`
	TotalInterest  decimal.Decimal `json:"total_interest"`
	TotalRepayment decimal.Decimal `json:"total_repayment"`
	Schedule       []Installment   `json:"schedule"`
}

// monthsPerPeriod expresses one repayment period in months.
var monthsPerPeriod = map[string]decimal.Decimal{
	"daily":     decimal.New(1, 0).Div(decimal.New(30, 0)),
	"weekly":    decimal.New(1, 0).Div(decimal.New(4, 0)),
	"biweekly":  decimal.NewFromFloat(0.5),
	"monthly":   decimal.New(1, 0),
	"quarterly": decimal.New(3, 0),
	"annually":  decimal.New(12, 0),
}

func stepDate(d time.Time, frequency string) time.Time {
	switch frequency {
	case "daily":
		return d.AddDate(0, 0, 1)
	case "weekly":
		return d.AddDate(0, 0, 7)
	case "biweekly":
		return d.AddDate(0, 0, 14)
	case "monthly":
		return d.AddDate(0, 1, 0)
	case "quarterly":
		return d.AddDate(0, 3, 0)
	default: // annually
		return d.AddDate(1, 0, 0)
	}
}

// FlatRate generates the full flat-rate repayment schedule. Interest is
// principal * rate/100 prorated over the term in months; every period pays an
// equal share, with the final period flushing any residual principal.
func FlatRate(principal, annualRate decimal.Decimal, termMonths uint, startDate time.Time, frequency string) (*Projection, error) {
	perPeriod, ok := monthsPerPeriod[frequency]
	if !ok {
		return nil, apperr.Validation("repayment_frequency", "unsupported frequency: "+frequency)
	}
	if termMonths == 0 {
		return nil, apperr.Validation("term_months", "must be at least 1")
	}
	if !principal.IsPositive() {
		return nil, apperr.Validation("requested_amount", "must be greater than 0")
	}

	term := decimal.New(int64(termMonths), 0)
	rate := annualRate.Div(decimal.New(100, 0))
	totalInterest := principal.Mul(rate).Mul(term).Div(decimal.New(12, 0)).Round(2)
	totalRepayment := principal.Add(totalInterest)

	totalPeriods := term.Div(perPeriod).IntPart()
	if totalPeriods < 1 {
		totalPeriods = 1
	}
	periods := decimal.New(totalPeriods, 0)

	paymentPerPeriod := totalRepayment.Div(periods).Round(2)
	interestPerPeriod := totalInterest.Div(periods).Round(2)
	principalPerPeriod := paymentPerPeriod.Sub(interestPerPeriod)

	balance := principal
	schedule := make([]Installment, 0, totalPeriods)
	cur := startDate

	for i := int64(0); i < totalPeriods; i++ {
		principalDue := principalPerPeriod
		if balance.LessThanOrEqual(principalPerPeriod) {
			principalDue = balance
		}
		totalDue := principalDue.Add(interestPerPeriod)
		balance = balance.Sub(principalDue).Round(2)

		schedule = append(schedule, Installment{
			DueDate:      cur.Format("2006-01-02"),
			PrincipalDue: principalDue,
			InterestDue:  interestPerPeriod,
			TotalDue:     totalDue,
			BalanceAfter: balance,
		})
		cur = stepDate(cur, frequency)
	}

	return &Projection{
		TermMonths:     termMonths,
		MonthlyPayment: paymentPerPeriod.Div(perPeriod).Round(2),
		TotalInterest:  totalInterest,
		TotalRepayment: totalRepayment,
		Schedule:       schedule,
	}, nil
}
