// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/brisk-budget/backend/internal/application/usecase/transaction"
	"github.com/brisk-budget/backend/internal/domain/entity"
	domainerror "github.com/brisk-budget/backend/internal/domain/error"
	"github.com/brisk-budget/backend/internal/integration/entrypoint/dto"
)

// TransactionController handles transaction endpoints scoped to an account.
type TransactionController struct {
	listUseCase   *transaction.ListTransactionsUseCase
	createUseCase *transaction.CreateTransactionUseCase
	updateUseCase *transaction.UpdateTransactionUseCase
	deleteUseCase *transaction.DeleteTransactionUseCase
	importUseCase *transaction.ImportTransactionsUseCase
}

// NewTransactionController creates a new transaction controller instance.
func NewTransactionController(
	listUseCase *transaction.ListTransactionsUseCase,
	createUseCase *transaction.CreateTransactionUseCase,
	updateUseCase *transaction.UpdateTransactionUseCase,
	deleteUseCase *transaction.DeleteTransactionUseCase,
	importUseCase *transaction.ImportTransactionsUseCase,
) *TransactionController {
	return &TransactionController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
		importUseCase: importUseCase,
	}
}

// List handles GET /accounts/:id/transactions requests.
func (c *TransactionController) List(ctx *gin.Context) {
	accountID, ok := parseAccountID(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), transaction.ListTransactionsInput{AccountID: accountID})
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionListResponse(output.Transactions))
}

// Create handles POST /accounts/:id/transactions requests.
func (c *TransactionController) Create(ctx *gin.Context) {
	accountID, ok := parseAccountID(ctx)
	if !ok {
		return
	}

	var req dto.CreateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := transaction.CreateTransactionInput{
		AccountID:   accountID,
		Payee:       req.Payee,
		Amount:      req.Amount,
		Date:        req.Date,
		Category:    req.Category,
		Description: req.Description,
		Notes:       req.Notes,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTransactionResponse(output.Transaction))
}

// Update handles PATCH /accounts/:id/transactions/:transactionId requests.
// Amount and date changes on a transfer half are mirrored onto the paired
// transaction.
func (c *TransactionController) Update(ctx *gin.Context) {
	accountID, ok := parseAccountID(ctx)
	if !ok {
		return
	}
	transactionID, ok := parseTransactionID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := transaction.UpdateTransactionInput{
		AccountID:     accountID,
		TransactionID: transactionID,
		Payee:         req.Payee,
		Amount:        req.Amount,
		Date:          req.Date,
		Category:      req.Category,
		Description:   req.Description,
		Notes:         req.Notes,
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(output.Transaction))
}

// Delete handles DELETE /accounts/:id/transactions/:transactionId requests.
// Deleting a transfer half removes the paired transaction as well.
func (c *TransactionController) Delete(ctx *gin.Context) {
	accountID, ok := parseAccountID(ctx)
	if !ok {
		return
	}
	transactionID, ok := parseTransactionID(ctx)
	if !ok {
		return
	}

	input := transaction.DeleteTransactionInput{
		AccountID:     accountID,
		TransactionID: transactionID,
	}
	if err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Import handles POST /accounts/:id/transactions/import requests. Rows that
// cannot be imported are reported per-index without failing the batch.
func (c *TransactionController) Import(ctx *gin.Context) {
	accountID, ok := parseAccountID(ctx)
	if !ok {
		return
	}

	var req dto.ImportTransactionsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeInvalidImportPayload),
		})
		return
	}

	rows := make([]transaction.ImportRow, 0, len(req.Transactions))
	for _, raw := range req.Transactions {
		row := transaction.ImportRow{
			Payee:       raw.Payee,
			Category:    raw.Category,
			Description: raw.Description,
			Notes:       raw.Notes,
		}
		if raw.Amount != "" {
			if amount, err := decimal.NewFromString(raw.Amount.String()); err == nil {
				row.Amount = amount
				row.HasAmount = true
			}
		}
		if raw.Date != "" {
			if date, err := entity.ParseDate(raw.Date); err == nil {
				row.Date = date
			}
		}
		rows = append(rows, row)
	}

	output, err := c.importUseCase.Execute(ctx.Request.Context(), transaction.ImportTransactionsInput{
		AccountID: accountID,
		Rows:      rows,
	})
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	response := dto.ImportTransactionsResponse{
		Imported: output.Imported,
		Errors:   make([]dto.ImportRowErrorResponse, 0, len(output.Errors)),
	}
	for _, rowErr := range output.Errors {
		response.Errors = append(response.Errors, dto.ImportRowErrorResponse{
			Index:   rowErr.Index,
			Message: rowErr.Message,
		})
	}
	ctx.JSON(http.StatusOK, response)
}

// handleTransactionError handles transaction errors and returns appropriate HTTP responses.
func (c *TransactionController) handleTransactionError(ctx *gin.Context, err error) {
	var txErr *domainerror.TransactionError
	if errors.As(err, &txErr) {
		ctx.JSON(c.getStatusCodeForTransactionError(txErr.Code), dto.ErrorResponse{
			Error: txErr.Message,
			Code:  string(txErr.Code),
		})
		return
	}

	var accErr *domainerror.AccountError
	if errors.As(err, &accErr) && accErr.Code == domainerror.ErrCodeAccountNotFound {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: accErr.Message,
			Code:  string(accErr.Code),
		})
		return
	}

	respondInternalError(ctx)
}

// getStatusCodeForTransactionError maps transaction error codes to HTTP status codes.
func (c *TransactionController) getStatusCodeForTransactionError(code domainerror.TransactionErrorCode) int {
	switch code {
	case domainerror.ErrCodeTransactionNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidTransactionAmount,
		domainerror.ErrCodeMissingTransactionDate,
		domainerror.ErrCodeMissingTransactionPayee,
		domainerror.ErrCodeInvalidImportPayload:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// parseAccountID parses the :id path parameter, responding on failure.
func parseAccountID(ctx *gin.Context) (uuid.UUID, bool) {
	accountID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid account ID format",
		})
		return uuid.Nil, false
	}
	return accountID, true
}

// parseTransactionID parses the :transactionId path parameter, responding on failure.
func parseTransactionID(ctx *gin.Context) (uuid.UUID, bool) {
	transactionID, err := uuid.Parse(ctx.Param("transactionId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid transaction ID format",
		})
		return uuid.Nil, false
	}
	return transactionID, true
}
