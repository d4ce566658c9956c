package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"sacco-backoffice/internal/usecase/guarantorprofile"
)

// GuarantorHandler exposes the back-office administration of guarantor
// profiles. Every route is admin-gated.
type GuarantorHandler struct{ uc *guarantorprofile.Usecase }

func NewGuarantorHandler(uc *guarantorprofile.Usecase) *GuarantorHandler {
	return &GuarantorHandler{uc: uc}
}

type createGuarantorReq struct {
	MemberNo            string `json:"member_no"             validate:"required"`
	IsEligible          bool   `json:"is_eligible"`
	MaxActiveGuarantees *uint  `json:"max_active_guarantees" validate:"omitempty,gt=0"`
}

func (h *GuarantorHandler) Create(c echo.Context) error {
	if !isAdmin(c) {
		return adminOnly(c)
	}
	var req createGuarantorReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Create(c.Request().Context(), guarantorprofile.CreateInput{
		MemberNo:            req.MemberNo,
		IsEligible:          req.IsEligible,
		MaxActiveGuarantees: req.MaxActiveGuarantees,
	})
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *GuarantorHandler) List(c echo.Context) error {
	if !isAdmin(c) {
		return adminOnly(c)
	}
	dtos, err := h.uc.List(c.Request().Context())
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

func (h *GuarantorHandler) Get(c echo.Context) error {
	if !isAdmin(c) {
		return adminOnly(c)
	}
	dto, err := h.uc.Get(c.Request().Context(), c.Param("reference"))
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
