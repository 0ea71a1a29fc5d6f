package repositories

import (
	"expense-tracker-api/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CategoryRepositoryInterface defines the contract for category repository operations
type CategoryRepositoryInterface interface {
	GetAll() ([]models.Category, error)
	GetByID(id uuid.UUID) (*models.Category, error)
	GetByName(name string) (*models.Category, error)
	Create(category *models.Category) error
	Update(category *models.Category) error
	Delete(id uuid.UUID) error
	CountTransactionsReferencing(id uuid.UUID) (int64, error)
}

// TransactionRepositoryInterface defines the contract for transaction repository
// operations. One implementation serves both kinds; the kind is fixed at
// construction time.
type TransactionRepositoryInterface interface {
	Kind() models.TransactionKind
	Create(transaction *models.Transaction) error
	GetByID(id uuid.UUID) (*models.Transaction, error)
	GetWithFilters(filters models.TransactionFilters) ([]models.Transaction, error)
	Update(transaction *models.Transaction) error
	Delete(id uuid.UUID) error
}

// ReportRepositoryInterface defines the contract for read-only reporting queries
type ReportRepositoryInterface interface {
	MonthTotal(kind models.TransactionKind, year int, month int) (decimal.Decimal, error)
	CategoryBreakdown(kind models.TransactionKind, year int, month int) ([]models.CategoryBreakdown, error)
	MonthlyTotals(kind models.TransactionKind, limit int) ([]models.MonthlyBucket, error)
}
