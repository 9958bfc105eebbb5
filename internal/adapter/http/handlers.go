package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

type Handler struct{}

func NewHandler() *Handler { return &Handler{} }

// Health is the liveness probe; it does not touch mysql, redis or kafka.
func (h *Handler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"service": "loan-origination",
		"status":  "ok",
		"time":    time.Now().UTC().Format(time.RFC3339Nano),
	})
}
