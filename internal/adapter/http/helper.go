package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"sacco-backoffice/internal/domain/apperr"
)

const (
	headerMemberID = "Ax-Member-Id"
	headerAdmin    = "Ax-Admin"
)

// actingMember pulls the caller's member id out of the identity headers. An
// empty or malformed id means the request never reaches a usecase.
func actingMember(c echo.Context) (string, bool) {
	id := strings.ToLower(strings.TrimSpace(c.Request().Header.Get(headerMemberID)))
	return id, reHex32.MatchString(id)
}

func isAdmin(c echo.Context) bool {
	return strings.EqualFold(strings.TrimSpace(c.Request().Header.Get(headerAdmin)), "true")
}

func missingIdentity(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "missing or invalid " + headerMemberID + " header"})
}

func adminOnly(c echo.Context) error {
	return c.JSON(http.StatusForbidden, ErrorResponse{Error: "admin access required"})
}

// writeErr maps the domain error taxonomy onto HTTP statuses. Anything
// outside the taxonomy is an internal failure and stays opaque.
func writeErr(c echo.Context, err error) error {
	var ve *apperr.ValidationError
	var nf *apperr.NotFoundError
	var pe *apperr.PermissionError
	var ce *apperr.ConflictError
	switch {
	case errors.As(err, &ve):
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: []FieldError{{Field: ve.Field, Message: ve.Message}},
		})
	case errors.As(err, &nf):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: nf.Error()})
	case errors.As(err, &pe):
		return c.JSON(http.StatusForbidden, ErrorResponse{Error: pe.Message})
	case errors.As(err, &ce):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: ce.Message})
	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}

func containsFieldMsg(list []FieldError, field, substr string) bool {
	for _, e := range list {
		if e.Field == field && strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}
