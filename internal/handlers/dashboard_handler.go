package handlers

import (
	"net/http"

	apierrors "expense-tracker-api/internal/errors"
	"expense-tracker-api/internal/services"

	"github.com/labstack/echo/v4"
)

// DashboardHandler handles the reporting endpoints
type DashboardHandler struct {
	reportService services.ReportServiceInterface
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(reportService services.ReportServiceInterface) *DashboardHandler {
	return &DashboardHandler{
		reportService: reportService,
	}
}

// GetSummary returns the monthly summary. Absent year or month default to the
// current date's values.
func (h *DashboardHandler) GetSummary(c echo.Context) error {
	year := getIntParam(c, "year", 0)
	month := getIntParam(c, "month", 0)

	if month < 0 || month > 12 {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("month must be between 1 and 12"))
	}
	if year < 0 {
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails("year must be positive"))
	}

	summary, err := h.reportService.MonthlySummary(year, month)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, summary)
}

// GetMonthlyTrend returns per-month totals for the most recent populated
// months, oldest first, per kind
func (h *DashboardHandler) GetMonthlyTrend(c echo.Context) error {
	trend, err := h.reportService.MonthlyTrend()
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, trend)
}
