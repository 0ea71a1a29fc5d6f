package repositories

import (
	"errors"
	"fmt"

	"expense-tracker-api/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
)

// transactionRepository implements TransactionRepositoryInterface for a single
// transaction kind. The expenses and income collections share this code; only
// the backing table differs.
type transactionRepository struct {
	db   *gorm.DB
	kind models.TransactionKind
}

// NewTransactionRepository creates a transaction repository bound to a kind
func NewTransactionRepository(db *gorm.DB, kind models.TransactionKind) TransactionRepositoryInterface {
	return &transactionRepository{
		db:   db,
		kind: kind,
	}
}

// Kind returns the transaction kind this repository operates on
func (r *transactionRepository) Kind() models.TransactionKind {
	return r.kind
}

func (r *transactionRepository) table() *gorm.DB {
	return r.db.Table(r.kind.Table())
}

// Create creates a new transaction record
func (r *transactionRepository) Create(transaction *models.Transaction) error {
	if err := r.table().Omit(clause.Associations).Create(transaction).Error; err != nil {
		return fmt.Errorf("failed to create %s: %w", r.kind, err)
	}
	return nil
}

// GetByID retrieves a transaction by ID with its category loaded
func (r *transactionRepository) GetByID(id uuid.UUID) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := r.table().Preload("Category").
		Where("id = ?", id).
		First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get %s: %w", r.kind, err)
	}
	return &transaction, nil
}

// GetWithFilters retrieves transactions matching the filters, newest date
// first. Date bounds are inclusive on both ends.
func (r *transactionRepository) GetWithFilters(filters models.TransactionFilters) ([]models.Transaction, error) {
	query := r.table().Preload("Category")

	if filters.StartDate != nil {
		query = query.Where("date >= ?", *filters.StartDate)
	}
	if filters.EndDate != nil {
		query = query.Where("date <= ?", *filters.EndDate)
	}

	var transactions []models.Transaction
	if err := query.Order("date DESC").Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get %s records: %w", r.kind, err)
	}
	return transactions, nil
}

// Update persists changes to an existing transaction
func (r *transactionRepository) Update(transaction *models.Transaction) error {
	result := r.table().Omit(clause.Associations).Save(transaction)
	if result.Error != nil {
		return fmt.Errorf("failed to update %s: %w", r.kind, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}

// Delete removes a transaction by ID
func (r *transactionRepository) Delete(id uuid.UUID) error {
	result := r.table().Where("id = ?", id).Delete(&models.Transaction{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete %s: %w", r.kind, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}
