package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"expense-tracker-api/internal/dto"
	apierrors "expense-tracker-api/internal/errors"
	"expense-tracker-api/internal/models"
	"expense-tracker-api/internal/repositories"
	"expense-tracker-api/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// TransactionHandler handles expense and income HTTP requests. One handler
// serves both kinds; main mounts an instance per route group.
type TransactionHandler struct {
	service services.TransactionServiceInterface
}

// NewTransactionHandler creates a transaction handler over a kind-bound service
func NewTransactionHandler(service services.TransactionServiceInterface) *TransactionHandler {
	return &TransactionHandler{
		service: service,
	}
}

// ListTransactions returns transactions with optional inclusive date filtering
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	filters, err := parseDateFilters(c)
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidDate, apierrors.WithDetails(err.Error()))
	}

	transactions, err := h.service.List(filters)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewTransactionResponseList(transactions))
}

// CreateTransaction creates a new expense or income record
func (h *TransactionHandler) CreateTransaction(c echo.Context) error {
	var req dto.CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("category_id must be a valid UUID"))
	}

	transaction := &models.Transaction{
		Amount:      *req.Amount,
		Description: req.Description,
		CategoryID:  categoryID,
	}

	if req.Date != "" {
		date, err := models.ParseDate(req.Date)
		if err != nil {
			return SendError(c, apierrors.ValidationInvalidDate, apierrors.WithDetails(err.Error()))
		}
		transaction.Date = date
	}

	created, err := h.service.Create(transaction)
	if err != nil {
		return h.sendWriteError(c, err)
	}

	return c.JSON(http.StatusCreated, dto.NewTransactionResponse(created))
}

// GetTransaction retrieves a single transaction by ID
func (h *TransactionHandler) GetTransaction(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, apierrors.TransactionInvalidID)
	}

	transaction, err := h.service.Get(id)
	if err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return SendError(c, apierrors.TransactionNotFound)
		}
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewTransactionResponse(transaction))
}

// UpdateTransaction applies a partial update to a transaction
func (h *TransactionHandler) UpdateTransaction(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, apierrors.TransactionInvalidID)
	}

	var req dto.UpdateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	update := services.TransactionUpdate{
		Amount:      req.Amount,
		Description: req.Description,
	}

	if req.Date != nil {
		date, err := models.ParseDate(*req.Date)
		if err != nil {
			return SendError(c, apierrors.ValidationInvalidDate, apierrors.WithDetails(err.Error()))
		}
		update.Date = &date
	}

	if req.CategoryID != nil {
		categoryID, err := uuid.Parse(*req.CategoryID)
		if err != nil {
			return SendError(c, apierrors.ValidationInvalidFormat, apierrors.WithDetails("category_id must be a valid UUID"))
		}
		update.CategoryID = &categoryID
	}

	updated, err := h.service.Update(id, update)
	if err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return SendError(c, apierrors.TransactionNotFound)
		}
		return h.sendWriteError(c, err)
	}

	return c.JSON(http.StatusOK, dto.NewTransactionResponse(updated))
}

// DeleteTransaction removes a transaction by ID
func (h *TransactionHandler) DeleteTransaction(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return SendError(c, apierrors.TransactionInvalidID)
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, repositories.ErrTransactionNotFound) {
			return SendError(c, apierrors.TransactionNotFound)
		}
		return SendSystemError(c, err)
	}

	message := fmt.Sprintf("%s deleted successfully", h.service.Kind().Label())
	return c.JSON(http.StatusOK, dto.MessageResponse{Message: message})
}

// sendWriteError maps service-layer create/update failures to error responses
func (h *TransactionHandler) sendWriteError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, services.ErrUnknownCategory):
		return SendError(c, apierrors.TransactionUnknownCategory)
	case errors.Is(err, models.ErrAmountNegative):
		return SendError(c, apierrors.TransactionInvalidAmount, apierrors.WithDetails(err.Error()))
	case errors.Is(err, models.ErrTransactionDescriptionEmpty),
		errors.Is(err, models.ErrTransactionCategoryRequired):
		return SendError(c, apierrors.ValidationGeneral, apierrors.WithDetails(err.Error()))
	default:
		return SendSystemError(c, err)
	}
}

// parseDateFilters reads the optional inclusive start_date / end_date bounds
func parseDateFilters(c echo.Context) (models.TransactionFilters, error) {
	var filters models.TransactionFilters

	if startDateStr := c.QueryParam("start_date"); startDateStr != "" {
		startDate, err := models.ParseDate(startDateStr)
		if err != nil {
			return filters, fmt.Errorf("invalid start_date format, use YYYY-MM-DD")
		}
		filters.StartDate = &startDate
	}

	if endDateStr := c.QueryParam("end_date"); endDateStr != "" {
		endDate, err := models.ParseDate(endDateStr)
		if err != nil {
			return filters, fmt.Errorf("invalid end_date format, use YYYY-MM-DD")
		}
		filters.EndDate = &endDate
	}

	return filters, nil
}
