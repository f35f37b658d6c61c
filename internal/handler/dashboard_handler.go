package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "shopfront/internal/errors"
	"shopfront/internal/service"
)

// DashboardHandler handles the admin dashboard endpoint.
type DashboardHandler struct {
	dashboardService service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(dashboardService service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Dashboard godoc
// @Summary Admin dashboard: monthly sales, top seller, low stock (admin)
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.DashboardData
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/dashboard [get]
func (h *DashboardHandler) Dashboard(c echo.Context) error {
	data, err := h.dashboardService.Dashboard(c.Request().Context())
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, data)
}
