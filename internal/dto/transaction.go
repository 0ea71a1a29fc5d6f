package dto

import (
	"time"

	"expense-tracker-api/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest is the payload for creating an expense or income
// record. Date is optional and defaults to the current date.
type CreateTransactionRequest struct {
	Amount      *decimal.Decimal `json:"amount" validate:"required,money_amount"`
	Description string           `json:"description" validate:"required,max=200"`
	Date        string           `json:"date" validate:"omitempty,calendar_date"`
	CategoryID  string           `json:"category_id" validate:"required,uuid"`
}

// UpdateTransactionRequest is the payload for partially updating a
// transaction. Only the fields present in the body are applied.
type UpdateTransactionRequest struct {
	Amount      *decimal.Decimal `json:"amount" validate:"omitempty,money_amount"`
	Description *string          `json:"description" validate:"omitempty,min=1,max=200"`
	Date        *string          `json:"date" validate:"omitempty,calendar_date"`
	CategoryID  *string          `json:"category_id" validate:"omitempty,uuid"`
}

// TransactionResponse is the wire shape of a transaction with its category
// trimmed to a reference
type TransactionResponse struct {
	ID          uuid.UUID       `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
	Date        models.Date     `json:"date"`
	CategoryID  uuid.UUID       `json:"category_id"`
	Category    CategoryRef     `json:"category"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// NewTransactionResponse converts a model to its wire shape
func NewTransactionResponse(transaction *models.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          transaction.ID,
		Amount:      transaction.Amount,
		Description: transaction.Description,
		Date:        transaction.Date,
		CategoryID:  transaction.CategoryID,
		Category: CategoryRef{
			ID:    transaction.Category.ID,
			Name:  transaction.Category.Name,
			Color: transaction.Category.Color,
		},
		CreatedAt: transaction.CreatedAt,
		UpdatedAt: transaction.UpdatedAt,
	}
}

// NewTransactionResponseList converts a slice of models to wire shapes
func NewTransactionResponseList(transactions []models.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, 0, len(transactions))
	for i := range transactions {
		responses = append(responses, NewTransactionResponse(&transactions[i]))
	}
	return responses
}
