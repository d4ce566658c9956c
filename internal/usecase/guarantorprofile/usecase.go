package guarantorprofile

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"sacco-backoffice/internal/domain/apperr"
	domainGuarantor "sacco-backoffice/internal/domain/guarantor"
	domainMember "sacco-backoffice/internal/domain/member"
	"sacco-backoffice/internal/domain/uow"
	"sacco-backoffice/pkg/id"
)

type CreateInput struct {
	MemberNo            string `json:"member_no" validate:"required"`
	IsEligible          bool   `json:"is_eligible"`
	MaxActiveGuarantees *uint  `json:"max_active_guarantees" validate:"omitempty,gt=0"`
}

type ProfileDTO struct {
	ProfileID                string          `json:"profile_id"`
	MemberNo                 string          `json:"member_no"`
	IsEligible               bool            `json:"is_eligible"`
	EligibilityCheckedAt     *time.Time      `json:"eligibility_checked_at"`
	MaxActiveGuarantees      uint            `json:"max_active_guarantees"`
	MaxGuaranteeAmount       decimal.Decimal `json:"max_guarantee_amount"`
	CommittedGuaranteeAmount decimal.Decimal `json:"committed_guarantee_amount"`
	AvailableCapacity        decimal.Decimal `json:"available_capacity"`
	CreatedAt                time.Time       `json:"created_at"`
}

// Usecase covers the back-office administration of guarantor profiles.
// Creation is an admin action; the submit and pledge flows create profiles
// lazily for self-guarantees only.
type Usecase struct {
	uow              uow.UnitOfWork
	log              *logrus.Logger
	tenureMonths     int
	defaultMaxActive uint
	now              func() time.Time
}

func NewUsecase(u uow.UnitOfWork, log *logrus.Logger, tenureMonths int, defaultMaxActive uint) *Usecase {
	return &Usecase{
		uow:              u,
		log:              log,
		tenureMonths:     tenureMonths,
		defaultMaxActive: defaultMaxActive,
		now:              time.Now,
	}
}

// Create registers a guarantor profile for the member. An eligible profile
// requires the configured minimum membership tenure; capacity is seeded from
// the member's current savings total.
func (u *Usecase) Create(ctx context.Context, in CreateInput) (*ProfileDTO, error) {
	var dto *ProfileDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		m, err := r.Members.GetByMemberNo(ctx, in.MemberNo)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("member")
			}
			return err
		}

		if _, err := r.Guarantors.GetByMemberID(ctx, m.ID); err == nil {
			return apperr.Validation("member_no", "member already has a guarantor profile")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		now := u.now().UTC()
		if in.IsEligible {
			required := time.Duration(u.tenureMonths) * 30 * 24 * time.Hour
			if m.Tenure(now) < required {
				return apperr.Validation("is_eligible", "member has not met the minimum membership tenure")
			}
		}

		total, err := r.Savings.TotalBalance(ctx, m.ID)
		if err != nil {
			return err
		}

		maxActive := u.defaultMaxActive
		if in.MaxActiveGuarantees != nil {
			maxActive = *in.MaxActiveGuarantees
		}
		checked := now
		p := &domainGuarantor.Profile{
			ProfileID:            id.NewID32(),
			MemberID:             m.ID,
			IsEligible:           in.IsEligible,
			EligibilityCheckedAt: &checked,
			MaxActiveGuarantees:  maxActive,
			MaxGuaranteeAmount:   total,
		}
		if err := r.Guarantors.Create(ctx, p); err != nil {
			return err
		}

		u.log.WithFields(logrus.Fields{
			"profile_id": p.ProfileID,
			"member_no":  m.MemberNo,
			"eligible":   p.IsEligible,
		}).Info("guarantor profile created")

		dto = toDTO(p, m)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// Get returns one profile with its capacity refreshed from live savings for
// display. The stored ceiling is not rewritten here; only reservations sync
// and persist it.
func (u *Usecase) Get(ctx context.Context, profileID string) (*ProfileDTO, error) {
	var dto *ProfileDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		p, err := r.Guarantors.GetByProfileID(ctx, profileID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("guarantor profile")
			}
			return err
		}
		m, err := r.Members.GetByID(ctx, p.MemberID)
		if err != nil {
			return err
		}
		total, err := r.Savings.TotalBalance(ctx, p.MemberID)
		if err != nil {
			return err
		}
		p.MaxGuaranteeAmount = total
		dto = toDTO(p, m)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

func (u *Usecase) List(ctx context.Context) ([]ProfileDTO, error) {
	var out []ProfileDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		profiles, err := r.Guarantors.List(ctx)
		if err != nil {
			return err
		}
		for i := range profiles {
			m, err := r.Members.GetByID(ctx, profiles[i].MemberID)
			if err != nil {
				return err
			}
			out = append(out, *toDTO(&profiles[i], m))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func toDTO(p *domainGuarantor.Profile, m *domainMember.Member) *ProfileDTO {
	return &ProfileDTO{
		ProfileID:                p.ProfileID,
		MemberNo:                 m.MemberNo,
		IsEligible:               p.IsEligible,
		EligibilityCheckedAt:     p.EligibilityCheckedAt,
		MaxActiveGuarantees:      p.MaxActiveGuarantees,
		MaxGuaranteeAmount:       p.MaxGuaranteeAmount,
		CommittedGuaranteeAmount: p.CommittedGuaranteeAmount,
		AvailableCapacity:        p.AvailableCapacity(),
		CreatedAt:                p.CreatedAt,
	}
}
