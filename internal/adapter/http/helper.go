package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"loan-origination/internal/domain/applicant"
	"loan-origination/internal/domain/product"
	"loan-origination/internal/usecase/decision"
)

// writeDomainError keeps the error taxonomy apart on the wire: request-shape
// errors (not-found, already-exists), validation failures and upstream
// outages each answer differently; a business rejection never lands here.
func writeDomainError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, applicant.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "applicant not found; use the pioneer flow"})
	case errors.Is(err, applicant.ErrAlreadyExists):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "applicant already exists; use the repeater flow"})
	case errors.Is(err, product.ErrUnknownProduct):
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	case errors.Is(err, decision.ErrUpstream):
		return c.JSON(http.StatusBadGateway, ErrorResponse{Error: "upstream unavailable, try again later"})
	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
