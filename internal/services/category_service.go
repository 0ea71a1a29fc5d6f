package services

import (
	"errors"
	"fmt"

	"expense-tracker-api/internal/models"
	"expense-tracker-api/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrCategoryNameTaken = errors.New("a category with this name already exists")
	ErrCategoryInUse     = errors.New("cannot delete category with associated transactions")
)

// categoryService implements CategoryServiceInterface
type categoryService struct {
	categoryRepo repositories.CategoryRepositoryInterface
}

// NewCategoryService creates a new category service
func NewCategoryService(categoryRepo repositories.CategoryRepositoryInterface) CategoryServiceInterface {
	return &categoryService{
		categoryRepo: categoryRepo,
	}
}

// List returns all categories ordered by name ascending
func (s *categoryService) List() ([]models.Category, error) {
	return s.categoryRepo.GetAll()
}

// Create persists a new category. The name must be non-empty and unique
// across all categories.
func (s *categoryService) Create(category *models.Category) error {
	if err := category.Validate(); err != nil {
		return err
	}

	if err := s.ensureNameAvailable(category.Name, uuid.Nil); err != nil {
		return err
	}

	if err := s.categoryRepo.Create(category); err != nil {
		return err
	}

	RecordCategoryCreated()
	return nil
}

// Update applies the whitelisted fields to an existing category
func (s *categoryService) Update(id uuid.UUID, update CategoryUpdate) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if update.Name != nil && *update.Name != category.Name {
		if err := s.ensureNameAvailable(*update.Name, id); err != nil {
			return nil, err
		}
		category.Name = *update.Name
	}
	if update.Color != nil {
		category.Color = *update.Color
	}

	if err := category.Validate(); err != nil {
		return nil, err
	}

	if err := s.categoryRepo.Update(category); err != nil {
		return nil, err
	}

	return category, nil
}

// Delete removes a category. Deletion is rejected while any expense or income
// record still references the category; there is no cascading delete.
func (s *categoryService) Delete(id uuid.UUID) error {
	if _, err := s.categoryRepo.GetByID(id); err != nil {
		return err
	}

	referencing, err := s.categoryRepo.CountTransactionsReferencing(id)
	if err != nil {
		return err
	}
	if referencing > 0 {
		return ErrCategoryInUse
	}

	return s.categoryRepo.Delete(id)
}

// ensureNameAvailable checks that no other category already uses the name
func (s *categoryService) ensureNameAvailable(name string, selfID uuid.UUID) error {
	existing, err := s.categoryRepo.GetByName(name)
	if err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return nil
		}
		return fmt.Errorf("failed to check category name: %w", err)
	}
	if existing.ID != selfID {
		return ErrCategoryNameTaken
	}
	return nil
}
