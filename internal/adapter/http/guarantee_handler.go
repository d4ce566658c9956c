package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"sacco-backoffice/internal/usecase/guarantee"
)

type GuaranteeHandler struct{ uc *guarantee.Usecase }

func NewGuaranteeHandler(uc *guarantee.Usecase) *GuaranteeHandler {
	return &GuaranteeHandler{uc: uc}
}

type createGuaranteeReq struct {
	LoanApplication string  `json:"loan_application"  validate:"required,hex32"`
	Guarantor       string  `json:"guarantor"         validate:"required"`
	Amount          float64 `json:"guaranteed_amount" validate:"required,gt=0,dec2"`
	Notes           string  `json:"notes"             validate:"omitempty,max=500"`
}

type updateGuaranteeStatusReq struct {
	Status string `json:"status" validate:"required,oneof=Accepted Declined"`
}

func (h *GuaranteeHandler) Create(c echo.Context) error {
	mid, ok := actingMember(c)
	if !ok {
		return missingIdentity(c)
	}
	var req createGuaranteeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Create(c.Request().Context(), guarantee.CreateInput{
		MemberID:             mid,
		ApplicationReference: req.LoanApplication,
		GuarantorMemberNo:    req.Guarantor,
		GuaranteedAmount:     decimal.NewFromFloat(req.Amount),
		Notes:                req.Notes,
	})
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *GuaranteeHandler) List(c echo.Context) error {
	mid, ok := actingMember(c)
	if !ok {
		return missingIdentity(c)
	}
	dtos, err := h.uc.List(c.Request().Context(), mid)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, dtos)
}

func (h *GuaranteeHandler) Get(c echo.Context) error {
	mid, ok := actingMember(c)
	if !ok {
		return missingIdentity(c)
	}
	dto, err := h.uc.Get(c.Request().Context(), mid, c.Param("reference"))
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *GuaranteeHandler) UpdateStatus(c echo.Context) error {
	mid, ok := actingMember(c)
	if !ok {
		return missingIdentity(c)
	}
	var req updateGuaranteeStatusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.UpdateStatus(c.Request().Context(), mid, c.Param("reference"), req.Status)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
