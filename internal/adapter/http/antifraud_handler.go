package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"loan-origination/internal/usecase/decision"
)

type AntifraudHandler struct{ orch *decision.Orchestrator }

func NewAntifraudHandler(orch *decision.Orchestrator) *AntifraudHandler {
	return &AntifraudHandler{orch: orch}
}

type pioneerCheckReq struct {
	UserData userDataReq `json:"user_data" validate:"required"`
}

type repeaterCheckReq struct {
	Phone          string     `json:"phone"           validate:"required,phone"`
	CurrentProfile profileReq `json:"current_profile" validate:"required"`
}

func (h *AntifraudHandler) CheckPioneer(c echo.Context) error {
	var req pioneerCheckReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	res, err := h.orch.CheckPioneer(c.Request().Context(), req.UserData.Phone, req.UserData.toProfile())
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}

func (h *AntifraudHandler) CheckRepeater(c echo.Context) error {
	var req repeaterCheckReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	res, err := h.orch.CheckRepeater(c.Request().Context(), req.Phone, req.CurrentProfile.toProfile())
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, res)
}
