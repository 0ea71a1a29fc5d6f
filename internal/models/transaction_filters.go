package models

// TransactionFilters contains filtering options for transaction list queries.
// Both bounds are inclusive calendar dates.
type TransactionFilters struct {
	StartDate *Date
	EndDate   *Date
}
