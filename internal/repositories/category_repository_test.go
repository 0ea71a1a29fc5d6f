package repositories

import (
	"testing"

	"expense-tracker-api/internal/database"
	"expense-tracker-api/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

func TestCategoryRepository(t *testing.T) {
	suite.Run(t, new(CategoryRepositorySuite))
}

type CategoryRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo CategoryRepositoryInterface
}

func (s *CategoryRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewCategoryRepository(s.db.DB)
}

func (s *CategoryRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *CategoryRepositorySuite) TestCategoryRepository_Create() {
	category := &models.Category{
		Name:  "Groceries",
		Color: "#28a745",
	}

	err := s.repo.Create(category)
	s.NoError(err)
	s.NotEqual(uuid.Nil, category.ID)
	s.NotZero(category.CreatedAt)
}

func (s *CategoryRepositorySuite) TestCategoryRepository_Create_DefaultColor() {
	category := &models.Category{
		Name: "Transport",
	}

	err := s.repo.Create(category)
	s.NoError(err)
	s.Equal(models.DefaultCategoryColor, category.Color)
}

func (s *CategoryRepositorySuite) TestCategoryRepository_GetAll_OrderedByName() {
	for _, name := range []string{"Travel", "Food", "Medical"} {
		s.NoError(s.repo.Create(&models.Category{Name: name}))
	}

	categories, err := s.repo.GetAll()
	s.NoError(err)
	s.Len(categories, 3)
	s.Equal("Food", categories[0].Name)
	s.Equal("Medical", categories[1].Name)
	s.Equal("Travel", categories[2].Name)
}

func (s *CategoryRepositorySuite) TestCategoryRepository_GetAll_Empty() {
	categories, err := s.repo.GetAll()
	s.NoError(err)
	s.Empty(categories)
}

func (s *CategoryRepositorySuite) TestCategoryRepository_GetByID() {
	category := database.CreateTestCategory(s.T(), s.db, "Rent")

	found, err := s.repo.GetByID(category.ID)
	s.NoError(err)
	s.Equal(category.ID, found.ID)
	s.Equal("Rent", found.Name)

	_, err = s.repo.GetByID(uuid.New())
	s.Equal(ErrCategoryNotFound, err)
}

func (s *CategoryRepositorySuite) TestCategoryRepository_GetByName() {
	category := database.CreateTestCategory(s.T(), s.db, "Utilities")

	found, err := s.repo.GetByName("Utilities")
	s.NoError(err)
	s.Equal(category.ID, found.ID)

	_, err = s.repo.GetByName("Nonexistent")
	s.Equal(ErrCategoryNotFound, err)
}

func (s *CategoryRepositorySuite) TestCategoryRepository_Update() {
	category := database.CreateTestCategory(s.T(), s.db, "Fod")

	category.Name = "Food"
	category.Color = "#dc3545"
	err := s.repo.Update(category)
	s.NoError(err)

	found, err := s.repo.GetByID(category.ID)
	s.NoError(err)
	s.Equal("Food", found.Name)
	s.Equal("#dc3545", found.Color)
}

func (s *CategoryRepositorySuite) TestCategoryRepository_Delete() {
	category := database.CreateTestCategory(s.T(), s.db, "Temporary")

	err := s.repo.Delete(category.ID)
	s.NoError(err)

	_, err = s.repo.GetByID(category.ID)
	s.Equal(ErrCategoryNotFound, err)
}

func (s *CategoryRepositorySuite) TestCategoryRepository_Delete_NotFound() {
	err := s.repo.Delete(uuid.New())
	s.Equal(ErrCategoryNotFound, err)
}

func (s *CategoryRepositorySuite) TestCategoryRepository_CountTransactionsReferencing() {
	category := database.CreateTestCategory(s.T(), s.db, "Food")
	other := database.CreateTestCategory(s.T(), s.db, "Salary")

	date := models.NewDate(2024, 3, 15)
	database.CreateTestTransaction(s.T(), s.db, models.KindExpense, category, "12.50", date)
	database.CreateTestTransaction(s.T(), s.db, models.KindExpense, category, "8.00", date)
	database.CreateTestTransaction(s.T(), s.db, models.KindIncome, category, "100.00", date)

	count, err := s.repo.CountTransactionsReferencing(category.ID)
	s.NoError(err)
	s.Equal(int64(3), count)

	count, err = s.repo.CountTransactionsReferencing(other.ID)
	s.NoError(err)
	s.Equal(int64(0), count)
}
