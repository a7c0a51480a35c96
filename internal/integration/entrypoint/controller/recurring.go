// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/brisk-budget/backend/internal/application/usecase/recurring"
	"github.com/brisk-budget/backend/internal/domain/entity"
	domainerror "github.com/brisk-budget/backend/internal/domain/error"
	"github.com/brisk-budget/backend/internal/integration/entrypoint/dto"
)

// RecurringController handles recurring payment template endpoints.
type RecurringController struct {
	createUseCase  *recurring.CreateRecurringUseCase
	listUseCase    *recurring.ListRecurringUseCase
	updateUseCase  *recurring.UpdateRecurringUseCase
	deleteUseCase  *recurring.DeleteRecurringUseCase
	pendingUseCase *recurring.PendingUseCase
	approveUseCase *recurring.ApproveRecurringUseCase
	skipUseCase    *recurring.SkipRecurringUseCase
}

// NewRecurringController creates a new recurring controller instance.
func NewRecurringController(
	createUseCase *recurring.CreateRecurringUseCase,
	listUseCase *recurring.ListRecurringUseCase,
	updateUseCase *recurring.UpdateRecurringUseCase,
	deleteUseCase *recurring.DeleteRecurringUseCase,
	pendingUseCase *recurring.PendingUseCase,
	approveUseCase *recurring.ApproveRecurringUseCase,
	skipUseCase *recurring.SkipRecurringUseCase,
) *RecurringController {
	return &RecurringController{
		createUseCase:  createUseCase,
		listUseCase:    listUseCase,
		updateUseCase:  updateUseCase,
		deleteUseCase:  deleteUseCase,
		pendingUseCase: pendingUseCase,
		approveUseCase: approveUseCase,
		skipUseCase:    skipUseCase,
	}
}

// List handles GET /recurring requests.
func (c *RecurringController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleRecurringError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRecurringListResponse(output.Templates))
}

// Create handles POST /recurring requests.
func (c *RecurringController) Create(ctx *gin.Context) {
	var req dto.CreateRecurringRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := recurring.CreateRecurringInput{
		Type:        entity.RecurringType(req.Type),
		Payee:       req.Payee,
		Amount:      req.Amount,
		Category:    req.Category,
		Description: req.Description,
		Notes:       req.Notes,
	}

	var ok bool
	if input.AccountID, ok = parseOptionalUUID(ctx, req.AccountID, "Invalid account ID format"); !ok {
		return
	}
	if input.FromAccountID, ok = parseOptionalUUID(ctx, req.FromAccountID, "Invalid source account ID format"); !ok {
		return
	}
	if input.ToAccountID, ok = parseOptionalUUID(ctx, req.ToAccountID, "Invalid target account ID format"); !ok {
		return
	}

	if req.Frequency != nil {
		input.Frequency = entity.Frequency{
			Type:     entity.FrequencyType(req.Frequency.Type),
			Interval: req.Frequency.Interval,
		}
	}
	if req.StartDate != nil {
		input.StartDate = *req.StartDate
	}
	if req.EndCondition != nil {
		input.EndCondition = req.EndCondition.ToEndCondition()
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleRecurringError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToRecurringResponse(output.Template))
}

// Update handles PATCH /recurring/:id requests.
func (c *RecurringController) Update(ctx *gin.Context) {
	recurringID, ok := parseRecurringID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateRecurringRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := recurring.UpdateRecurringInput{
		ID:          recurringID,
		Payee:       req.Payee,
		Amount:      req.Amount,
		Category:    req.Category,
		Description: req.Description,
		Notes:       req.Notes,
		NextDueDate: req.NextDueDate,
	}
	if req.Frequency != nil {
		frequency := entity.Frequency{
			Type:     entity.FrequencyType(req.Frequency.Type),
			Interval: req.Frequency.Interval,
		}
		input.Frequency = &frequency
	}
	if req.EndCondition != nil {
		cond := req.EndCondition.ToEndCondition()
		input.EndCondition = &cond
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleRecurringError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRecurringResponse(output.Template))
}

// Delete handles DELETE /recurring/:id requests. Templates are soft-deleted;
// transactions already materialized from them are untouched.
func (c *RecurringController) Delete(ctx *gin.Context) {
	recurringID, ok := parseRecurringID(ctx)
	if !ok {
		return
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), recurring.DeleteRecurringInput{ID: recurringID}); err != nil {
		c.handleRecurringError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Pending handles GET /recurring/pending requests. The accountId query
// parameter scopes the result to occurrences affecting one account.
func (c *RecurringController) Pending(ctx *gin.Context) {
	accountID, err := uuid.Parse(ctx.Query("accountId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid account ID format",
		})
		return
	}

	output, err := c.pendingUseCase.Execute(ctx.Request.Context(), recurring.PendingInput{AccountID: accountID})
	if err != nil {
		c.handleRecurringError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPendingListResponse(output.Occurrences))
}

// Approve handles POST /recurring/:id/approve requests. It materializes the
// template's next due occurrence into real transactions and advances the
// schedule.
func (c *RecurringController) Approve(ctx *gin.Context) {
	recurringID, ok := parseRecurringID(ctx)
	if !ok {
		return
	}

	// Body is optional; both overrides default to the template's values.
	var req dto.ApproveRecurringRequest
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid request body",
			})
			return
		}
	}

	input := recurring.ApproveRecurringInput{
		ID:     recurringID,
		Date:   req.Date,
		Amount: req.Amount,
	}

	output, err := c.approveUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleRecurringError(ctx, err)
		return
	}

	response := dto.ApproveRecurringResponse{
		Transactions: make([]dto.TransactionResponse, 0, len(output.Transactions)),
		Recurring:    dto.ToRecurringResponse(output.Template),
	}
	for _, tx := range output.Transactions {
		response.Transactions = append(response.Transactions, dto.ToTransactionResponse(tx))
	}
	ctx.JSON(http.StatusOK, response)
}

// Skip handles POST /recurring/:id/skip requests. The next due occurrence
// is discarded and the schedule advances without writing a transaction.
func (c *RecurringController) Skip(ctx *gin.Context) {
	recurringID, ok := parseRecurringID(ctx)
	if !ok {
		return
	}

	output, err := c.skipUseCase.Execute(ctx.Request.Context(), recurring.SkipRecurringInput{ID: recurringID})
	if err != nil {
		c.handleRecurringError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRecurringResponse(output.Template))
}

// handleRecurringError handles recurring errors and returns appropriate HTTP responses.
func (c *RecurringController) handleRecurringError(ctx *gin.Context, err error) {
	var recErr *domainerror.RecurringError
	if errors.As(err, &recErr) {
		ctx.JSON(c.getStatusCodeForRecurringError(recErr.Code), dto.ErrorResponse{
			Error: recErr.Message,
			Code:  string(recErr.Code),
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

// getStatusCodeForRecurringError maps recurring error codes to HTTP status codes.
func (c *RecurringController) getStatusCodeForRecurringError(code domainerror.RecurringErrorCode) int {
	switch code {
	case domainerror.ErrCodeRecurringNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidFrequency,
		domainerror.ErrCodeInvalidEndCondition,
		domainerror.ErrCodeInvalidRecurringType,
		domainerror.ErrCodeMissingRecurringAccount:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// parseRecurringID parses the :id path parameter, responding on failure.
func parseRecurringID(ctx *gin.Context) (uuid.UUID, bool) {
	recurringID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid recurring ID format",
		})
		return uuid.Nil, false
	}
	return recurringID, true
}

// parseOptionalUUID parses an optional id string, responding on failure.
func parseOptionalUUID(ctx *gin.Context, raw *string, message string) (*uuid.UUID, bool) {
	if raw == nil {
		return nil, true
	}
	id, err := uuid.Parse(*raw)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: message,
		})
		return nil, false
	}
	return &id, true
}
