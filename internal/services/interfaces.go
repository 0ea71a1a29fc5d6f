package services

import (
	"expense-tracker-api/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CategoryUpdate is the whitelisted field set for partial category updates.
// Nil fields are left untouched; system-managed fields cannot be overwritten.
type CategoryUpdate struct {
	Name  *string
	Color *string
}

// TransactionUpdate is the whitelisted field set for partial transaction updates
type TransactionUpdate struct {
	Amount      *decimal.Decimal
	Description *string
	Date        *models.Date
	CategoryID  *uuid.UUID
}

// CategoryServiceInterface defines the contract for category operations
type CategoryServiceInterface interface {
	List() ([]models.Category, error)
	Create(category *models.Category) error
	Update(id uuid.UUID, update CategoryUpdate) (*models.Category, error)
	Delete(id uuid.UUID) error
}

// TransactionServiceInterface defines the contract for transaction operations.
// One implementation serves both kinds; main wires one instance per kind.
type TransactionServiceInterface interface {
	Kind() models.TransactionKind
	List(filters models.TransactionFilters) ([]models.Transaction, error)
	Create(transaction *models.Transaction) (*models.Transaction, error)
	Get(id uuid.UUID) (*models.Transaction, error)
	Update(id uuid.UUID, update TransactionUpdate) (*models.Transaction, error)
	Delete(id uuid.UUID) error
}

// ReportServiceInterface defines the contract for read-only reporting
type ReportServiceInterface interface {
	// MonthlySummary aggregates one calendar month. Zero year or month
	// defaults to the current date's value, evaluated per call.
	MonthlySummary(year int, month int) (*models.MonthlySummary, error)
	// MonthlyTrend returns up to the 12 most recent populated months per
	// kind, oldest first, each kind computed independently.
	MonthlyTrend() (*models.MonthlyTrend, error)
}
