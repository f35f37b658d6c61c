package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "shopfront/internal/errors"
	"shopfront/internal/service"
)

// ReportHandler handles the sales report endpoint.
type ReportHandler struct {
	reportService service.ReportService
}

// NewReportHandler creates a new report handler.
func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// SalesReport godoc
// @Summary Full sales report with per-order profit (admin)
// @Tags reports
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.SalesReport
// @Failure 403 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /reports [get]
func (h *ReportHandler) SalesReport(c echo.Context) error {
	report, err := h.reportService.SalesReport(c.Request().Context())
	if err != nil {
		httpErr := apperrors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	return c.JSON(http.StatusOK, report)
}
