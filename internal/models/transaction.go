package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func init() {
	// Amounts are JSON numbers on the wire, not quoted strings
	decimal.MarshalJSONWithoutQuotes = true
}

// TransactionKind selects which collection a transaction record belongs to.
// Expenses and income share one shape; the kind determines inflow vs outflow
// semantics, not a sign on the amount.
type TransactionKind string

const (
	KindExpense TransactionKind = "expense"
	KindIncome  TransactionKind = "income"
)

// Table returns the database table backing the kind
func (k TransactionKind) Table() string {
	if k == KindIncome {
		return "income"
	}
	return "expenses"
}

// Label returns the capitalized singular noun for messages ("Expense", "Income")
func (k TransactionKind) Label() string {
	if k == KindIncome {
		return "Income"
	}
	return "Expense"
}

// IsValid checks that the kind is one of the two known collections
func (k TransactionKind) IsValid() bool {
	return k == KindExpense || k == KindIncome
}

var (
	ErrAmountNegative              = errors.New("transaction amount must not be negative")
	ErrTransactionDescriptionEmpty = errors.New("transaction description is required")
	ErrTransactionCategoryRequired = errors.New("transaction category is required")
)

// Transaction is a dated, categorized monetary record. The same struct backs
// both the expenses and the income tables; repositories pick the table via
// TransactionKind.
type Transaction struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Description string          `gorm:"type:varchar(200);not null" json:"description"`
	Date        Date            `gorm:"type:date;not null;index" json:"date"`
	CategoryID  uuid.UUID       `gorm:"type:uuid;not null;index" json:"category_id"`
	CreatedAt   time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"not null" json:"updated_at"`

	// Associations
	Category Category `gorm:"foreignKey:CategoryID" json:"-"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	now := time.Now()
	if t.Date.IsZero() {
		t.Date = DateOf(now)
	}

	// Set timestamps if not already set (for tests)
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = now
	}

	return t.Validate()
}

// BeforeUpdate hook for Transaction
func (t *Transaction) BeforeUpdate(tx *gorm.DB) error {
	t.UpdatedAt = time.Now()
	return t.Validate()
}

// Validate validates the transaction fields
func (t *Transaction) Validate() error {
	if t.Amount.IsNegative() {
		return ErrAmountNegative
	}
	if strings.TrimSpace(t.Description) == "" {
		return ErrTransactionDescriptionEmpty
	}
	if len(t.Description) > 200 {
		return errors.New("transaction description must be at most 200 characters")
	}
	if t.CategoryID == uuid.Nil {
		return ErrTransactionCategoryRequired
	}
	return nil
}
