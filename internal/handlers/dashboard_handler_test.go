package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	apierrors "expense-tracker-api/internal/errors"
	"expense-tracker-api/internal/models"
	"expense-tracker-api/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type DashboardHandlerTestSuite struct {
	suite.Suite
	handler     *DashboardHandler
	echo        *echo.Echo
	ctrl        *gomock.Controller
	mockService *service_mocks.MockReportServiceInterface
}

func TestDashboardHandlerSuite(t *testing.T) {
	suite.Run(t, new(DashboardHandlerTestSuite))
}

func (s *DashboardHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.ctrl = gomock.NewController(s.T())
	s.mockService = service_mocks.NewMockReportServiceInterface(s.ctrl)
	s.handler = NewDashboardHandler(s.mockService)
}

func (s *DashboardHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *DashboardHandlerTestSuite) newContext(target string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	return s.echo.NewContext(req, rec), rec
}

// Summary Tests

func (s *DashboardHandlerTestSuite) TestGetSummary_ExplicitMonth() {
	summary := &models.MonthlySummary{
		Month:         "March",
		Year:          2024,
		TotalExpenses: decimal.RequireFromString("50"),
		TotalIncome:   decimal.RequireFromString("3000"),
		Balance:       decimal.RequireFromString("2950"),
		ExpensesByCategory: []models.CategoryBreakdown{
			{Name: "Food", Color: "#ff5733", Amount: decimal.RequireFromString("50")},
		},
		IncomeByCategory: []models.CategoryBreakdown{
			{Name: "Salary", Color: "#28a745", Amount: decimal.RequireFromString("3000")},
		},
	}

	s.mockService.EXPECT().MonthlySummary(2024, 3).Return(summary, nil)

	c, rec := s.newContext("/api/dashboard/summary?year=2024&month=3")

	err := s.handler.GetSummary(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var response models.MonthlySummary
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("March", response.Month)
	s.Equal(2024, response.Year)
	s.True(response.Balance.Equal(decimal.RequireFromString("2950")))
	s.Len(response.ExpensesByCategory, 1)
}

func (s *DashboardHandlerTestSuite) TestGetSummary_DefaultsPassedThrough() {
	// Absent parameters arrive at the service as zero; the service resolves
	// them against the current date
	s.mockService.EXPECT().
		MonthlySummary(0, 0).
		Return(&models.MonthlySummary{Month: "August", Year: 2026}, nil)

	c, rec := s.newContext("/api/dashboard/summary")

	err := s.handler.GetSummary(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *DashboardHandlerTestSuite) TestGetSummary_MonthOutOfRange() {
	c, rec := s.newContext("/api/dashboard/summary?year=2024&month=13")

	err := s.handler.GetSummary(c)
	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)

	var response ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(string(apierrors.ValidationGeneral), response.Error.Code)
	s.Contains(response.Error.Details, "month must be between 1 and 12")
}

func (s *DashboardHandlerTestSuite) TestGetSummary_NegativeYear() {
	c, rec := s.newContext("/api/dashboard/summary?year=-5&month=3")

	err := s.handler.GetSummary(c)
	s.NoError(err)
	s.Equal(http.StatusBadRequest, rec.Code)

	var response ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Contains(response.Error.Details, "year must be positive")
}

func (s *DashboardHandlerTestSuite) TestGetSummary_NonNumericParamsFallBack() {
	s.mockService.EXPECT().
		MonthlySummary(0, 0).
		Return(&models.MonthlySummary{}, nil)

	c, rec := s.newContext("/api/dashboard/summary?year=abc&month=xyz")

	err := s.handler.GetSummary(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
}

// Trend Tests

func (s *DashboardHandlerTestSuite) TestGetMonthlyTrend_Success() {
	trend := &models.MonthlyTrend{
		Expenses: []models.MonthlyTotal{
			{Month: "January", Year: 2024, Amount: decimal.RequireFromString("120")},
			{Month: "February", Year: 2024, Amount: decimal.RequireFromString("80")},
		},
		Income: []models.MonthlyTotal{
			{Month: "February", Year: 2024, Amount: decimal.RequireFromString("3000")},
		},
	}

	s.mockService.EXPECT().MonthlyTrend().Return(trend, nil)

	c, rec := s.newContext("/api/dashboard/monthly-trend")

	err := s.handler.GetMonthlyTrend(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var response models.MonthlyTrend
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Len(response.Expenses, 2)
	s.Equal("January", response.Expenses[0].Month)
	s.Len(response.Income, 1)
}

func (s *DashboardHandlerTestSuite) TestGetMonthlyTrend_EmptyData() {
	trend := &models.MonthlyTrend{
		Expenses: []models.MonthlyTotal{},
		Income:   []models.MonthlyTotal{},
	}

	s.mockService.EXPECT().MonthlyTrend().Return(trend, nil)

	c, rec := s.newContext("/api/dashboard/monthly-trend")

	err := s.handler.GetMonthlyTrend(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var payload map[string]json.RawMessage
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &payload))
	s.JSONEq("[]", string(payload["expenses"]))
	s.JSONEq("[]", string(payload["income"]))
}
