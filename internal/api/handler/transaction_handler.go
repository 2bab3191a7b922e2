package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/pulseboard/dashboard-api/internal/api/metrics"
	"github.com/pulseboard/dashboard-api/internal/core/ports"
)

// TransactionHandler serves the paginated transaction list.
type TransactionHandler struct {
	service ports.MetricsService
}

func NewTransactionHandler(service ports.MetricsService) *TransactionHandler {
	return &TransactionHandler{service: service}
}

// List handles GET /transactions?page&limit&status&search.
//
// @Summary      Filtered, paginated transactions
// @Tags         transactions
// @Produce      json
// @Security     BearerAuth
// @Param        page    query     int     false  "1-based page number"
// @Param        limit   query     int     false  "Page size (default 10)"
// @Param        status  query     string  false  "Status filter, or 'all'"
// @Param        search  query     string  false  "Case-insensitive customer/product search"
// @Success      200     {object}  ports.TransactionPage
// @Failure      401     {object}  errorResponse
// @Failure      403     {object}  errorResponse
// @Router       /transactions [get]
func (h *TransactionHandler) List(c echo.Context) error {
	q := ports.TransactionQuery{
		Status: c.QueryParam("status"),
		Search: c.QueryParam("search"),
		Page:   queryInt(c, "page", 1),
		Limit:  queryInt(c, "limit", 10),
	}

	filtered := "no"
	if q.Status != "" || q.Search != "" {
		filtered = "yes"
	}
	metrics.TransactionQueriesTotal.WithLabelValues(filtered).Inc()

	page, err := h.service.Transactions(c.Request().Context(), q)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, page)
}

// queryInt parses an integer query parameter, falling back to def when the
// parameter is absent or malformed.
func queryInt(c echo.Context, name string, def int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}
