package services

import (
	"errors"
	"testing"

	"expense-tracker-api/internal/models"
	"expense-tracker-api/internal/repositories"
	"expense-tracker-api/internal/repositories/repository_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type CategoryServiceTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockRepo *repository_mocks.MockCategoryRepositoryInterface
	service  CategoryServiceInterface
}

func TestCategoryServiceSuite(t *testing.T) {
	suite.Run(t, new(CategoryServiceTestSuite))
}

func (s *CategoryServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = repository_mocks.NewMockCategoryRepositoryInterface(s.ctrl)
	s.service = NewCategoryService(s.mockRepo)
}

func (s *CategoryServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *CategoryServiceTestSuite) TestList() {
	expected := []models.Category{
		{ID: uuid.New(), Name: "Food"},
		{ID: uuid.New(), Name: "Transport"},
	}
	s.mockRepo.EXPECT().GetAll().Return(expected, nil)

	categories, err := s.service.List()

	s.NoError(err)
	s.Equal(expected, categories)
}

func (s *CategoryServiceTestSuite) TestCreate_Success() {
	category := &models.Category{Name: "Groceries", Color: "#28a745"}

	s.mockRepo.EXPECT().GetByName("Groceries").Return(nil, repositories.ErrCategoryNotFound)
	s.mockRepo.EXPECT().Create(category).Return(nil)

	err := s.service.Create(category)

	s.NoError(err)
}

func (s *CategoryServiceTestSuite) TestCreate_DuplicateName() {
	existing := &models.Category{ID: uuid.New(), Name: "Groceries"}
	category := &models.Category{Name: "Groceries"}

	s.mockRepo.EXPECT().GetByName("Groceries").Return(existing, nil)

	err := s.service.Create(category)

	s.ErrorIs(err, ErrCategoryNameTaken)
}

func (s *CategoryServiceTestSuite) TestCreate_InvalidName() {
	category := &models.Category{Name: ""}

	err := s.service.Create(category)

	s.ErrorIs(err, models.ErrCategoryNameRequired)
}

func (s *CategoryServiceTestSuite) TestUpdate_Success() {
	id := uuid.New()
	existing := &models.Category{ID: id, Name: "Fod", Color: "#007bff"}
	newName := "Food"
	newColor := "#dc3545"

	s.mockRepo.EXPECT().GetByID(id).Return(existing, nil)
	s.mockRepo.EXPECT().GetByName("Food").Return(nil, repositories.ErrCategoryNotFound)
	s.mockRepo.EXPECT().Update(gomock.Any()).Return(nil)

	updated, err := s.service.Update(id, CategoryUpdate{Name: &newName, Color: &newColor})

	s.NoError(err)
	s.Equal("Food", updated.Name)
	s.Equal("#dc3545", updated.Color)
}

func (s *CategoryServiceTestSuite) TestUpdate_PartialColorOnly() {
	id := uuid.New()
	existing := &models.Category{ID: id, Name: "Food", Color: "#007bff"}
	newColor := "#dc3545"

	s.mockRepo.EXPECT().GetByID(id).Return(existing, nil)
	s.mockRepo.EXPECT().Update(gomock.Any()).Return(nil)

	updated, err := s.service.Update(id, CategoryUpdate{Color: &newColor})

	s.NoError(err)
	s.Equal("Food", updated.Name)
	s.Equal("#dc3545", updated.Color)
}

func (s *CategoryServiceTestSuite) TestUpdate_SameNameSkipsUniquenessCheck() {
	id := uuid.New()
	existing := &models.Category{ID: id, Name: "Food"}
	sameName := "Food"

	s.mockRepo.EXPECT().GetByID(id).Return(existing, nil)
	s.mockRepo.EXPECT().Update(gomock.Any()).Return(nil)

	_, err := s.service.Update(id, CategoryUpdate{Name: &sameName})

	s.NoError(err)
}

func (s *CategoryServiceTestSuite) TestUpdate_NameTakenByOther() {
	id := uuid.New()
	existing := &models.Category{ID: id, Name: "Fod"}
	other := &models.Category{ID: uuid.New(), Name: "Food"}
	newName := "Food"

	s.mockRepo.EXPECT().GetByID(id).Return(existing, nil)
	s.mockRepo.EXPECT().GetByName("Food").Return(other, nil)

	_, err := s.service.Update(id, CategoryUpdate{Name: &newName})

	s.ErrorIs(err, ErrCategoryNameTaken)
}

func (s *CategoryServiceTestSuite) TestUpdate_NotFound() {
	id := uuid.New()
	s.mockRepo.EXPECT().GetByID(id).Return(nil, repositories.ErrCategoryNotFound)

	_, err := s.service.Update(id, CategoryUpdate{})

	s.ErrorIs(err, repositories.ErrCategoryNotFound)
}

func (s *CategoryServiceTestSuite) TestDelete_Success() {
	id := uuid.New()
	existing := &models.Category{ID: id, Name: "Unused"}

	s.mockRepo.EXPECT().GetByID(id).Return(existing, nil)
	s.mockRepo.EXPECT().CountTransactionsReferencing(id).Return(int64(0), nil)
	s.mockRepo.EXPECT().Delete(id).Return(nil)

	err := s.service.Delete(id)

	s.NoError(err)
}

func (s *CategoryServiceTestSuite) TestDelete_BlockedWhileReferenced() {
	id := uuid.New()
	existing := &models.Category{ID: id, Name: "Food"}

	s.mockRepo.EXPECT().GetByID(id).Return(existing, nil)
	s.mockRepo.EXPECT().CountTransactionsReferencing(id).Return(int64(3), nil)

	err := s.service.Delete(id)

	s.ErrorIs(err, ErrCategoryInUse)
}

func (s *CategoryServiceTestSuite) TestDelete_NotFound() {
	id := uuid.New()
	s.mockRepo.EXPECT().GetByID(id).Return(nil, repositories.ErrCategoryNotFound)

	err := s.service.Delete(id)

	s.ErrorIs(err, repositories.ErrCategoryNotFound)
}

func (s *CategoryServiceTestSuite) TestDelete_CountError() {
	id := uuid.New()
	existing := &models.Category{ID: id, Name: "Food"}
	dbErr := errors.New("connection lost")

	s.mockRepo.EXPECT().GetByID(id).Return(existing, nil)
	s.mockRepo.EXPECT().CountTransactionsReferencing(id).Return(int64(0), dbErr)

	err := s.service.Delete(id)

	s.ErrorIs(err, dbErr)
}
