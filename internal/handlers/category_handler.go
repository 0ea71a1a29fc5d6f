package handlers

import (
	"errors"
	"net/http"

	"expense-tracker-api/internal/dto"
	apierrors "expense-tracker-api/internal/errors"
	"expense-tracker-api/internal/models"
	"expense-tracker-api/internal/repositories"
	"expense-tracker-api/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// CategoryHandler handles category-related HTTP requests
type CategoryHandler struct {
	categoryService services.CategoryServiceInterface
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(categoryService services.CategoryServiceInterface) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
	}
}

// ListCategories returns all categories ordered by name
func (h *CategoryHandler) ListCategories(c echo.Context) error {
	categories, err := h.categoryService.List()
	if err != nil {
		return SendSystemError(c, err)
	}
	return c.JSON(http.StatusOK, categories)
}

// CreateCategory creates a new category
func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	var req dto.CreateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	category := &models.Category{
		Name:  req.Name,
		Color: req.Color,
	}

	if err := h.categoryService.Create(category); err != nil {
		switch {
		case errors.Is(err, services.ErrCategoryNameTaken):
			return SendError(c, apierrors.CategoryDuplicateName)
		case errors.Is(err, models.ErrCategoryNameRequired),
			errors.Is(err, models.ErrCategoryNameTooLong):
			return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(err.Error()))
		default:
			return SendSystemError(c, err)
		}
	}

	return c.JSON(http.StatusCreated, category)
}

// UpdateCategory applies a partial update to a category
func (h *CategoryHandler) UpdateCategory(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, apierrors.CategoryInvalidID)
	}

	var req dto.UpdateCategoryRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	category, err := h.categoryService.Update(id, services.CategoryUpdate{
		Name:  req.Name,
		Color: req.Color,
	})
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrCategoryNotFound):
			return SendError(c, apierrors.CategoryNotFound)
		case errors.Is(err, services.ErrCategoryNameTaken):
			return SendError(c, apierrors.CategoryDuplicateName)
		case errors.Is(err, models.ErrCategoryNameRequired),
			errors.Is(err, models.ErrCategoryNameTooLong):
			return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(err.Error()))
		default:
			return SendSystemError(c, err)
		}
	}

	return c.JSON(http.StatusOK, category)
}

// DeleteCategory removes a category unless transactions still reference it
func (h *CategoryHandler) DeleteCategory(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, apierrors.CategoryInvalidID)
	}

	if err := h.categoryService.Delete(id); err != nil {
		switch {
		case errors.Is(err, repositories.ErrCategoryNotFound):
			return SendError(c, apierrors.CategoryNotFound)
		case errors.Is(err, services.ErrCategoryInUse):
			return SendError(c, apierrors.CategoryInUse)
		default:
			return SendSystemError(c, err)
		}
	}

	return c.JSON(http.StatusOK, dto.MessageResponse{Message: "Category deleted successfully"})
}
