package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"sacco-backoffice/internal/usecase/application"
)

type ApplicationHandler struct{ uc *application.Usecase }

func NewApplicationHandler(uc *application.Usecase) *ApplicationHandler {
	return &ApplicationHandler{uc: uc}
}

type createApplicationReq struct {
	Product            string  `json:"product"             validate:"required"`
	RequestedAmount    float64 `json:"requested_amount"    validate:"required,gt=0,dec2"`
	TermMonths         uint    `json:"term_months"         validate:"required,gt=0"`
	RepaymentFrequency string  `json:"repayment_frequency" validate:"required,oneof=daily weekly biweekly monthly quarterly annually"`
	// Canonical date `YYYY-MM-DD` (aligns with schema DATE)
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
}

// updateApplicationReq carries only changed fields; absent keys keep the
// stored value.
type updateApplicationReq struct {
	Product            *string  `json:"product"             validate:"omitempty,min=1"`
	RequestedAmount    *float64 `json:"requested_amount"    validate:"omitempty,gt=0,dec2"`
	TermMonths         *uint    `json:"term_months"         validate:"omitempty,gt=0"`
	RepaymentFrequency *string  `json:"repayment_frequency" validate:"omitempty,oneof=daily weekly biweekly monthly quarterly annually"`
	StartDate          *string  `json:"start_date"          validate:"omitempty,datetime=2006-01-02"`
}

type amendApplicationReq struct {
	AmendmentNote      string   `json:"amendment_note"      validate:"required,min=1"`
	Product            *string  `json:"product"             validate:"omitempty,min=1"`
	RequestedAmount    *float64 `json:"requested_amount"    validate:"omitempty,gt=0,dec2"`
	TermMonths         *uint    `json:"term_months"         validate:"omitempty,gt=0"`
	RepaymentFrequency *string  `json:"repayment_frequency" validate:"omitempty,oneof=daily weekly biweekly monthly quarterly annually"`
	StartDate          *string  `json:"start_date"          validate:"omitempty,datetime=2006-01-02"`
}

type decisionReq struct {
	Decision string `json:"decision" validate:"required,oneof=Approved Declined"`
}

func mustDate(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func optionalTerms(amount *float64, start *string) (*decimal.Decimal, *time.Time) {
	var amt *decimal.Decimal
	if amount != nil {
		d := decimal.NewFromFloat(*amount)
		amt = &d
	}
	var st *time.Time
	if start != nil {
		t := mustDate(*start)
		st = &t
	}
	return amt, st
}

func (h *ApplicationHandler) Create(c echo.Context) error {
	mid, ok := actingMember(c)
	if !ok {
		return missingIdentity(c)
	}
	var req createApplicationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Create(c.Request().Context(), application.CreateInput{
		MemberID:           mid,
		Product:            req.Product,
		RequestedAmount:    decimal.NewFromFloat(req.RequestedAmount),
		TermMonths:         req.TermMonths,
		RepaymentFrequency: req.RepaymentFrequency,
		StartDate:          mustDate(req.StartDate),
	})
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *ApplicationHandler) List(c echo.Context) error {
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

func (h *ApplicationHandler) Get(c echo.Context) error {
	mid, ok := actingMember(c)
	admin := isAdmin(c)
	if !ok && !admin {
		return missingIdentity(c)
	}
	dto, err := h.uc.Get(c.Request().Context(), mid, c.Param("reference"), admin)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ApplicationHandler) Coverage(c echo.Context) error {
	mid, ok := actingMember(c)
	admin := isAdmin(c)
	if !ok && !admin {
		return missingIdentity(c)
	}
	b, err := h.uc.Coverage(c.Request().Context(), mid, c.Param("reference"), admin)
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, b)
}

func (h *ApplicationHandler) Update(c echo.Context) error {
	mid, ok := actingMember(c)
	if !ok {
		return missingIdentity(c)
	}
	var req updateApplicationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	amt, st := optionalTerms(req.RequestedAmount, req.StartDate)
	dto, err := h.uc.Update(c.Request().Context(), mid, c.Param("reference"), application.UpdateInput{
		Product:            req.Product,
		RequestedAmount:    amt,
		TermMonths:         req.TermMonths,
		RepaymentFrequency: req.RepaymentFrequency,
		StartDate:          st,
	})
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ApplicationHandler) Submit(c echo.Context) error {
	mid, ok := actingMember(c)
	if !ok {
		return missingIdentity(c)
	}
	dto, err := h.uc.Submit(c.Request().Context(), mid, c.Param("reference"))
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ApplicationHandler) Cancel(c echo.Context) error {
	mid, ok := actingMember(c)
	if !ok {
		return missingIdentity(c)
	}
	dto, err := h.uc.Cancel(c.Request().Context(), mid, c.Param("reference"))
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ApplicationHandler) RequestAmendment(c echo.Context) error {
	mid, ok := actingMember(c)
	if !ok {
		return missingIdentity(c)
	}
	dto, err := h.uc.RequestAmendment(c.Request().Context(), mid, c.Param("reference"))
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ApplicationHandler) Amend(c echo.Context) error {
	if !isAdmin(c) {
		return adminOnly(c)
	}
	var req amendApplicationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	amt, st := optionalTerms(req.RequestedAmount, req.StartDate)
	dto, err := h.uc.Amend(c.Request().Context(), c.Param("reference"), application.AmendInput{
		AmendmentNote:      req.AmendmentNote,
		Product:            req.Product,
		RequestedAmount:    amt,
		TermMonths:         req.TermMonths,
		RepaymentFrequency: req.RepaymentFrequency,
		StartDate:          st,
	})
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ApplicationHandler) AcceptAmendment(c echo.Context) error {
	mid, ok := actingMember(c)
	if !ok {
		return missingIdentity(c)
	}
	dto, err := h.uc.AcceptAmendment(c.Request().Context(), mid, c.Param("reference"))
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

func (h *ApplicationHandler) Decide(c echo.Context) error {
	if !isAdmin(c) {
		return adminOnly(c)
	}
	var req decisionReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Decide(c.Request().Context(), c.Param("reference"), req.Decision == "Approved")
	if err != nil {
		return writeErr(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}
