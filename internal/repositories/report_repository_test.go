package repositories

import (
	"fmt"
	"testing"
	"time"

	"expense-tracker-api/internal/database"
	"expense-tracker-api/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func TestReportRepository(t *testing.T) {
	suite.Run(t, new(ReportRepositorySuite))
}

type ReportRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo ReportRepositoryInterface
	food *models.Category
	pay  *models.Category
}

func (s *ReportRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewReportRepository(s.db.DB)
	s.food = database.CreateTestCategory(s.T(), s.db, "Food")
	s.pay = database.CreateTestCategory(s.T(), s.db, "Salary")
}

func (s *ReportRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *ReportRepositorySuite) TestMonthTotal() {
	database.CreateTestTransaction(s.T(), s.db, models.KindExpense, s.food, "50.00", models.NewDate(2024, 3, 15))
	database.CreateTestTransaction(s.T(), s.db, models.KindExpense, s.food, "25.50", models.NewDate(2024, 3, 31))
	// Outside the month
	database.CreateTestTransaction(s.T(), s.db, models.KindExpense, s.food, "99.00", models.NewDate(2024, 4, 1))
	// Other kind
	database.CreateTestTransaction(s.T(), s.db, models.KindIncome, s.pay, "3000.00", models.NewDate(2024, 3, 1))

	total, err := s.repo.MonthTotal(models.KindExpense, 2024, 3)
	s.NoError(err)
	s.True(total.Equal(decimal.RequireFromString("75.50")), "got %s", total)

	incomeTotal, err := s.repo.MonthTotal(models.KindIncome, 2024, 3)
	s.NoError(err)
	s.True(incomeTotal.Equal(decimal.RequireFromString("3000.00")), "got %s", incomeTotal)
}

func (s *ReportRepositorySuite) TestMonthTotal_EmptyMonthIsZero() {
	total, err := s.repo.MonthTotal(models.KindExpense, 2024, 6)
	s.NoError(err)
	s.True(total.IsZero())
}

func (s *ReportRepositorySuite) TestCategoryBreakdown() {
	transport := database.CreateTestCategory(s.T(), s.db, "Transport")
	database.CreateTestTransaction(s.T(), s.db, models.KindExpense, s.food, "30.00", models.NewDate(2024, 3, 10))
	database.CreateTestTransaction(s.T(), s.db, models.KindExpense, s.food, "20.00", models.NewDate(2024, 3, 12))
	database.CreateTestTransaction(s.T(), s.db, models.KindExpense, transport, "15.00", models.NewDate(2024, 3, 20))

	breakdown, err := s.repo.CategoryBreakdown(models.KindExpense, 2024, 3)
	s.NoError(err)
	s.Len(breakdown, 2)

	// Ordered by summed amount, largest first
	s.Equal("Food", breakdown[0].Name)
	s.True(breakdown[0].Amount.Equal(decimal.RequireFromString("50.00")))
	s.Equal("Transport", breakdown[1].Name)
	s.True(breakdown[1].Amount.Equal(decimal.RequireFromString("15.00")))
}

func (s *ReportRepositorySuite) TestCategoryBreakdown_OmitsUnusedCategories() {
	database.CreateTestTransaction(s.T(), s.db, models.KindExpense, s.food, "10.00", models.NewDate(2024, 3, 10))

	breakdown, err := s.repo.CategoryBreakdown(models.KindExpense, 2024, 3)
	s.NoError(err)
	s.Len(breakdown, 1)
	s.Equal("Food", breakdown[0].Name)
}

func (s *ReportRepositorySuite) TestCategoryBreakdown_EmptyMonth() {
	breakdown, err := s.repo.CategoryBreakdown(models.KindExpense, 2024, 6)
	s.NoError(err)
	s.Empty(breakdown)
}

func (s *ReportRepositorySuite) TestMonthlyTotals() {
	database.CreateTestTransaction(s.T(), s.db, models.KindExpense, s.food, "10.00", models.NewDate(2024, 1, 15))
	database.CreateTestTransaction(s.T(), s.db, models.KindExpense, s.food, "20.00", models.NewDate(2024, 2, 15))
	database.CreateTestTransaction(s.T(), s.db, models.KindExpense, s.food, "5.00", models.NewDate(2024, 2, 20))
	database.CreateTestTransaction(s.T(), s.db, models.KindExpense, s.food, "40.00", models.NewDate(2024, 3, 15))

	buckets, err := s.repo.MonthlyTotals(models.KindExpense, 12)
	s.NoError(err)
	s.Len(buckets, 3)

	// Newest month first
	s.Equal(2024, buckets[0].Year)
	s.Equal(3, buckets[0].Month)
	s.True(buckets[0].Total.Equal(decimal.RequireFromString("40.00")))

	s.Equal(2, buckets[1].Month)
	s.True(buckets[1].Total.Equal(decimal.RequireFromString("25.00")))

	s.Equal(1, buckets[2].Month)
	s.True(buckets[2].Total.Equal(decimal.RequireFromString("10.00")))
}

func (s *ReportRepositorySuite) TestMonthlyTotals_SkipsEmptyMonths() {
	database.CreateTestTransaction(s.T(), s.db, models.KindExpense, s.food, "10.00", models.NewDate(2024, 1, 15))
	database.CreateTestTransaction(s.T(), s.db, models.KindExpense, s.food, "20.00", models.NewDate(2024, 4, 15))

	buckets, err := s.repo.MonthlyTotals(models.KindExpense, 12)
	s.NoError(err)
	// Only populated months appear; February and March produce no buckets
	s.Len(buckets, 2)
	s.Equal(4, buckets[0].Month)
	s.Equal(1, buckets[1].Month)
}

func (s *ReportRepositorySuite) TestMonthlyTotals_LimitApplies() {
	for month := 1; month <= 12; month++ {
		database.CreateTestTransaction(s.T(), s.db, models.KindExpense, s.food,
			fmt.Sprintf("%d.00", month), models.NewDate(2023, time.Month(month), 10))
		database.CreateTestTransaction(s.T(), s.db, models.KindExpense, s.food,
			fmt.Sprintf("%d.00", month), models.NewDate(2024, time.Month(month), 10))
	}

	buckets, err := s.repo.MonthlyTotals(models.KindExpense, 12)
	s.NoError(err)
	s.Len(buckets, 12)

	// All twelve retained buckets are from the most recent year
	for _, bucket := range buckets {
		s.Equal(2024, bucket.Year)
	}
}

func (s *ReportRepositorySuite) TestMonthlyTotals_YearBoundaryOrdering() {
	database.CreateTestTransaction(s.T(), s.db, models.KindExpense, s.food, "10.00", models.NewDate(2023, 12, 15))
	database.CreateTestTransaction(s.T(), s.db, models.KindExpense, s.food, "20.00", models.NewDate(2024, 1, 15))

	buckets, err := s.repo.MonthlyTotals(models.KindExpense, 12)
	s.NoError(err)
	s.Len(buckets, 2)
	s.Equal(2024, buckets[0].Year)
	s.Equal(1, buckets[0].Month)
	s.Equal(2023, buckets[1].Year)
	s.Equal(12, buckets[1].Month)
}
