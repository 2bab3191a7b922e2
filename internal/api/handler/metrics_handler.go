package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pulseboard/dashboard-api/internal/core/ports"
)

// MetricsHandler serves the KPI, sales, and analytics endpoints.
type MetricsHandler struct {
	service ports.MetricsService
}

func NewMetricsHandler(service ports.MetricsService) *MetricsHandler {
	return &MetricsHandler{service: service}
}

// KPIs handles GET /kpis.
//
// @Summary      Headline dashboard KPIs
// @Tags         metrics
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.KPIResult
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /kpis [get]
func (h *MetricsHandler) KPIs(c echo.Context) error {
	result, err := h.service.KPIs(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, result)
}

// Sales handles GET /sales?period=7d|30d.
//
// @Summary      Daily sales series
// @Tags         metrics
// @Produce      json
// @Security     BearerAuth
// @Param        period  query     string  false  "Period: 7d (default) or 30d"
// @Success      200     {array}   domain.SalesPoint
// @Failure      401     {object}  errorResponse
// @Failure      403     {object}  errorResponse
// @Router       /sales [get]
func (h *MetricsHandler) Sales(c echo.Context) error {
	points, err := h.service.Sales(c.Request().Context(), c.QueryParam("period"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, points)
}

// Overview handles GET /analytics/overview.
//
// @Summary      Analytics overview aggregates
// @Tags         metrics
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.AnalyticsOverview
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /analytics/overview [get]
func (h *MetricsHandler) Overview(c echo.Context) error {
	overview, err := h.service.Overview(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, overview)
}
