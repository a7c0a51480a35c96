// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/brisk-budget/backend/internal/application/usecase/transfer"
	domainerror "github.com/brisk-budget/backend/internal/domain/error"
	"github.com/brisk-budget/backend/internal/integration/entrypoint/dto"
)

// TransferController handles transfer creation and the transaction/transfer
// conversion endpoints.
type TransferController struct {
	createUseCase               *transfer.CreateTransferUseCase
	convertToTransferUseCase    *transfer.ConvertToTransferUseCase
	convertToTransactionUseCase *transfer.ConvertToTransactionUseCase
}

// NewTransferController creates a new transfer controller instance.
func NewTransferController(
	createUseCase *transfer.CreateTransferUseCase,
	convertToTransferUseCase *transfer.ConvertToTransferUseCase,
	convertToTransactionUseCase *transfer.ConvertToTransactionUseCase,
) *TransferController {
	return &TransferController{
		createUseCase:               createUseCase,
		convertToTransferUseCase:    convertToTransferUseCase,
		convertToTransactionUseCase: convertToTransactionUseCase,
	}
}

// Create handles POST /transfers requests. It writes one outgoing and one
// incoming transaction that reference each other.
func (c *TransferController) Create(ctx *gin.Context) {
	var req dto.CreateTransferRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	fromAccountID, err := uuid.Parse(req.FromAccountID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid source account ID format",
		})
		return
	}
	toAccountID, err := uuid.Parse(req.ToAccountID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid target account ID format",
		})
		return
	}

	input := transfer.CreateTransferInput{
		FromAccountID: fromAccountID,
		ToAccountID:   toAccountID,
		Amount:        req.Amount,
		Description:   req.Description,
		Notes:         req.Notes,
	}
	if req.Date != nil {
		input.Date = *req.Date
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransferError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTransferResponse(output.Outgoing, output.Incoming))
}

// ConvertToTransfer handles POST /accounts/:id/transactions/:transactionId/convert-to-transfer
// requests. The existing transaction becomes one half of a pair; a mirror
// transaction is written to the target account.
func (c *TransferController) ConvertToTransfer(ctx *gin.Context) {
	accountID, ok := parseAccountID(ctx)
	if !ok {
		return
	}
	transactionID, ok := parseTransactionID(ctx)
	if !ok {
		return
	}

	var req dto.ConvertToTransferRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	targetAccountID, err := uuid.Parse(req.TargetAccountID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid target account ID format",
		})
		return
	}

	input := transfer.ConvertToTransferInput{
		AccountID:       accountID,
		TransactionID:   transactionID,
		TargetAccountID: targetAccountID,
	}

	output, err := c.convertToTransferUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransferError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransferResponse(output.Outgoing, output.Incoming))
}

// ConvertToTransaction handles POST /accounts/:id/transactions/:transactionId/convert-to-transaction
// requests. The targeted half survives as a plain transaction; its paired
// counterpart is deleted.
func (c *TransferController) ConvertToTransaction(ctx *gin.Context) {
	accountID, ok := parseAccountID(ctx)
	if !ok {
		return
	}
	transactionID, ok := parseTransactionID(ctx)
	if !ok {
		return
	}

	input := transfer.ConvertToTransactionInput{
		AccountID:     accountID,
		TransactionID: transactionID,
	}

	output, err := c.convertToTransactionUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransferError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(output.Transaction))
}

// handleTransferError handles transfer errors and returns appropriate HTTP responses.
func (c *TransferController) handleTransferError(ctx *gin.Context, err error) {
	var trfErr *domainerror.TransferError
	if errors.As(err, &trfErr) {
		ctx.JSON(c.getStatusCodeForTransferError(trfErr.Code), dto.ErrorResponse{
			Error: trfErr.Message,
			Code:  string(trfErr.Code),
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

	var txErr *domainerror.TransactionError
	if errors.As(err, &txErr) && txErr.Code == domainerror.ErrCodeTransactionNotFound {
		ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
			Error: txErr.Message,
			Code:  string(txErr.Code),
		})
		return
	}

	respondInternalError(ctx)
}

// getStatusCodeForTransferError maps transfer error codes to HTTP status codes.
func (c *TransferController) getStatusCodeForTransferError(code domainerror.TransferErrorCode) int {
	switch code {
	case domainerror.ErrCodeSameAccountTransfer,
		domainerror.ErrCodeInvalidTransferAmount:
		return http.StatusBadRequest
	case domainerror.ErrCodeAlreadyTransfer,
		domainerror.ErrCodeNotATransfer:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
