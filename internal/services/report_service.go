package services

import (
	"time"

	"expense-tracker-api/internal/models"
	"expense-tracker-api/internal/repositories"
)

// trendMonths is how many recent populated months the trend covers per kind
const trendMonths = 12

// reportService implements ReportServiceInterface. All operations are
// read-only and side-effect-free.
type reportService struct {
	reportRepo repositories.ReportRepositoryInterface
}

// NewReportService creates a new report service
func NewReportService(reportRepo repositories.ReportRepositoryInterface) ReportServiceInterface {
	return &reportService{
		reportRepo: reportRepo,
	}
}

// MonthlySummary aggregates totals, balance, and per-category breakdowns for
// one calendar month. Zero year or month defaults to the current date's value.
func (s *reportService) MonthlySummary(year int, month int) (*models.MonthlySummary, error) {
	started := time.Now()

	now := time.Now()
	if year == 0 {
		year = now.Year()
	}
	if month == 0 {
		month = int(now.Month())
	}

	totalExpenses, err := s.reportRepo.MonthTotal(models.KindExpense, year, month)
	if err != nil {
		return nil, err
	}
	totalIncome, err := s.reportRepo.MonthTotal(models.KindIncome, year, month)
	if err != nil {
		return nil, err
	}

	expensesByCategory, err := s.reportRepo.CategoryBreakdown(models.KindExpense, year, month)
	if err != nil {
		return nil, err
	}
	incomeByCategory, err := s.reportRepo.CategoryBreakdown(models.KindIncome, year, month)
	if err != nil {
		return nil, err
	}

	summary := &models.MonthlySummary{
		Month:              time.Month(month).String(),
		Year:               year,
		TotalExpenses:      totalExpenses,
		TotalIncome:        totalIncome,
		Balance:            totalIncome.Sub(totalExpenses),
		ExpensesByCategory: emptyIfNil(expensesByCategory),
		IncomeByCategory:   emptyIfNil(incomeByCategory),
	}

	ObserveReportDuration("summary", time.Since(started))
	return summary, nil
}

// MonthlyTrend returns per-month totals for the most recent populated months,
// oldest first. Each kind is grouped and limited independently, so the two
// sequences may cover different month sets.
func (s *reportService) MonthlyTrend() (*models.MonthlyTrend, error) {
	started := time.Now()

	expenses, err := s.kindTrend(models.KindExpense)
	if err != nil {
		return nil, err
	}
	income, err := s.kindTrend(models.KindIncome)
	if err != nil {
		return nil, err
	}

	ObserveReportDuration("monthly_trend", time.Since(started))
	return &models.MonthlyTrend{
		Expenses: expenses,
		Income:   income,
	}, nil
}

func (s *reportService) kindTrend(kind models.TransactionKind) ([]models.MonthlyTotal, error) {
	buckets, err := s.reportRepo.MonthlyTotals(kind, trendMonths)
	if err != nil {
		return nil, err
	}

	// Buckets arrive newest first; output is oldest to newest
	totals := make([]models.MonthlyTotal, 0, len(buckets))
	for i := len(buckets) - 1; i >= 0; i-- {
		bucket := buckets[i]
		totals = append(totals, models.MonthlyTotal{
			Month:  time.Month(bucket.Month).String(),
			Year:   bucket.Year,
			Amount: bucket.Total,
		})
	}
	return totals, nil
}

func emptyIfNil(breakdown []models.CategoryBreakdown) []models.CategoryBreakdown {
	if breakdown == nil {
		return []models.CategoryBreakdown{}
	}
	return breakdown
}
