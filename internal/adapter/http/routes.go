package http

import "github.com/labstack/echo/v4"

// Register wires every route onto the Echo instance.
func Register(e *echo.Echo, h *Handler, apps *ApplicationHandler, pledges *GuaranteeHandler, guarantors *GuarantorHandler) {
	e.GET("/health", h.Health)

	e.POST("/loan-applications", apps.Create)
	e.GET("/loan-applications", apps.List)
	e.GET("/loan-applications/:reference", apps.Get)
	e.PATCH("/loan-applications/:reference", apps.Update)
	e.GET("/loan-applications/:reference/coverage", apps.Coverage)
	e.POST("/loan-applications/:reference/submit", apps.Submit)
	e.POST("/loan-applications/:reference/cancel", apps.Cancel)
	e.POST("/loan-applications/:reference/request-amendment", apps.RequestAmendment)
	e.POST("/loan-applications/:reference/amend", apps.Amend)
	e.POST("/loan-applications/:reference/accept-amendment", apps.AcceptAmendment)
	e.POST("/loan-applications/:reference/decision", apps.Decide)

	e.POST("/guarantee-requests", pledges.Create)
	e.GET("/guarantee-requests", pledges.List)
	e.GET("/guarantee-requests/:reference", pledges.Get)
	e.PATCH("/guarantee-requests/:reference/status", pledges.UpdateStatus)

	e.POST("/guarantors", guarantors.Create)
	e.GET("/guarantors", guarantors.List)
	e.GET("/guarantors/:reference", guarantors.Get)
}
