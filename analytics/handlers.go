package analytics

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// Handler serves the analytics beacon and the admin stats endpoint.
type Handler struct {
	svc *Service
}

// NewHandler creates a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// HandleEvent records a page view from the client-side beacon. Failures
// are swallowed into a 204 so a broken analytics store never surfaces to
// visitors.
func (h *Handler) HandleEvent(c echo.Context) error {
	var req VisitRequest
	if err := c.Bind(&req); err != nil {
		return c.NoContent(http.StatusBadRequest)
	}
	if req.UserAgent == "" {
		req.UserAgent = c.Request().UserAgent()
	}
	if err := h.svc.Record(c.RealIP(), req); err != nil {
		c.Logger().Errorf("record visit: %v", err)
	}
	return c.NoContent(http.StatusNoContent)
}

// HandleStats returns aggregated stats for the last N days (default 30,
// capped at 365) as JSON. Admin-only; the caller wires the auth check.
func (h *Handler) HandleStats(c echo.Context) error {
	days := 30
	if v := c.QueryParam("days"); v != "" {
		if n, err := parsePositive(v); err == nil && n <= 365 {
			days = n
		}
	}
	to := time.Now()
	from := to.AddDate(0, 0, -days)
	stats, err := h.svc.Store().Stats(from, to)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

func parsePositive(s string) (int, error) {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, echo.ErrBadRequest
		}
		n = n*10 + int(r-'0')
	}
	if n == 0 {
		return 0, echo.ErrBadRequest
	}
	return n, nil
}
