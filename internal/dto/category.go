package dto

import "github.com/google/uuid"

// CreateCategoryRequest is the payload for creating a category
type CreateCategoryRequest struct {
	Name  string `json:"name" validate:"required,max=50"`
	Color string `json:"color" validate:"omitempty,hexcolor"`
}

// UpdateCategoryRequest is the payload for partially updating a category.
// Only the fields present in the body are applied.
type UpdateCategoryRequest struct {
	Name  *string `json:"name" validate:"omitempty,min=1,max=50"`
	Color *string `json:"color" validate:"omitempty,hexcolor"`
}

// CategoryRef is the trimmed category shape nested in transaction responses
type CategoryRef struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Color string    `json:"color"`
}

// MessageResponse is the body for successful delete operations
type MessageResponse struct {
	Message string `json:"message"`
}
