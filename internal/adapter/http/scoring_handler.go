package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"loan-origination/internal/domain/product"
	"loan-origination/internal/usecase/decision"
)

type ScoringHandler struct{ orch *decision.Orchestrator }

func NewScoringHandler(orch *decision.Orchestrator) *ScoringHandler {
	return &ScoringHandler{orch: orch}
}

type pioneerScoringReq struct {
	UserData userDataReq  `json:"user_data" validate:"required"`
	Products []productReq `json:"products"  validate:"required,min=1,dive"`
}

type repeaterScoringReq struct {
	Phone          string       `json:"phone"           validate:"required,phone"`
	CurrentProfile profileReq   `json:"current_profile" validate:"required"`
	Products       []productReq `json:"products"        validate:"required,min=1,dive"`
}

func (h *ScoringHandler) SubmitPioneer(c echo.Context) error {
	var req pioneerScoringReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	verdict, err := h.orch.SubmitPioneer(
		c.Request().Context(),
		req.UserData.Phone,
		req.UserData.toProfile(),
		toCandidates(req.Products),
	)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, verdict)
}

func (h *ScoringHandler) SubmitRepeater(c echo.Context) error {
	var req repeaterScoringReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	verdict, err := h.orch.SubmitRepeater(
		c.Request().Context(),
		req.Phone,
		req.CurrentProfile.toProfile(),
		toCandidates(req.Products),
	)
	if err != nil {
		return writeDomainError(c, err)
	}
	return c.JSON(http.StatusOK, verdict)
}

func toCandidates(reqs []productReq) []product.Product {
	out := make([]product.Product, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, product.Product{
			Name:              r.Name,
			MaxAmount:         r.MaxAmount,
			TermDays:          r.TermDays,
			InterestRateDaily: r.InterestRateDaily,
		})
	}
	return out
}
