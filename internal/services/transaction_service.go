package services

import (
	"errors"

	"expense-tracker-api/internal/models"
	"expense-tracker-api/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrUnknownCategory = errors.New("referenced category does not exist")
)

// transactionService implements TransactionServiceInterface for one kind.
// The expense and income services are two instances of this type.
type transactionService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	categoryRepo    repositories.CategoryRepositoryInterface
}

// NewTransactionService creates a transaction service over a kind-bound repository
func NewTransactionService(
	transactionRepo repositories.TransactionRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
) TransactionServiceInterface {
	return &transactionService{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
	}
}

// Kind returns the transaction kind this service operates on
func (s *transactionService) Kind() models.TransactionKind {
	return s.transactionRepo.Kind()
}

// List returns transactions matching the filters, newest date first
func (s *transactionService) List(filters models.TransactionFilters) ([]models.Transaction, error) {
	return s.transactionRepo.GetWithFilters(filters)
}

// Create persists a new transaction. A missing date defaults to the current
// calendar date, computed here on every call. The referenced category must
// exist. Returns the stored record with its category loaded.
func (s *transactionService) Create(transaction *models.Transaction) (*models.Transaction, error) {
	if transaction.Date.IsZero() {
		transaction.Date = models.Today()
	}

	if err := transaction.Validate(); err != nil {
		return nil, err
	}

	if err := s.ensureCategoryExists(transaction.CategoryID); err != nil {
		return nil, err
	}

	if err := s.transactionRepo.Create(transaction); err != nil {
		return nil, err
	}

	RecordTransactionCreated(s.Kind())
	return s.transactionRepo.GetByID(transaction.ID)
}

// Get retrieves a transaction by ID
func (s *transactionService) Get(id uuid.UUID) (*models.Transaction, error) {
	return s.transactionRepo.GetByID(id)
}

// Update applies the whitelisted fields to an existing transaction and
// refreshes updated_at. A changed category reference is re-validated.
func (s *transactionService) Update(id uuid.UUID, update TransactionUpdate) (*models.Transaction, error) {
	transaction, err := s.transactionRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if update.Amount != nil {
		transaction.Amount = *update.Amount
	}
	if update.Description != nil {
		transaction.Description = *update.Description
	}
	if update.Date != nil {
		transaction.Date = *update.Date
	}
	if update.CategoryID != nil && *update.CategoryID != transaction.CategoryID {
		if err := s.ensureCategoryExists(*update.CategoryID); err != nil {
			return nil, err
		}
		transaction.CategoryID = *update.CategoryID
	}

	if err := transaction.Validate(); err != nil {
		return nil, err
	}

	if err := s.transactionRepo.Update(transaction); err != nil {
		return nil, err
	}

	// Re-read so the response carries the current category association
	return s.transactionRepo.GetByID(id)
}

// Delete removes a transaction by ID
func (s *transactionService) Delete(id uuid.UUID) error {
	if err := s.transactionRepo.Delete(id); err != nil {
		return err
	}
	RecordTransactionDeleted(s.Kind())
	return nil
}

func (s *transactionService) ensureCategoryExists(id uuid.UUID) error {
	if _, err := s.categoryRepo.GetByID(id); err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return ErrUnknownCategory
		}
		return err
	}
	return nil
}
