package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"loan-origination/internal/usecase/decision"
)

type ProductHandler struct{ orch *decision.Orchestrator }

func NewProductHandler(orch *decision.Orchestrator) *ProductHandler {
	return &ProductHandler{orch: orch}
}

type selectProductsReq struct {
	Phone string `json:"phone" validate:"required,phone"`
}

// SelectProducts classifies the phone and returns the catalog for the flow
// the applicant should submit to.
func (h *ProductHandler) SelectProducts(c echo.Context) error {
	var req selectProductsReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	flow, products, err := h.orch.SelectProducts(c.Request().Context(), req.Phone)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"flow_type": flow,
		"products":  products,
	})
}
