// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/brisk-budget/backend/internal/application/usecase/payee"
	domainerror "github.com/brisk-budget/backend/internal/domain/error"
	"github.com/brisk-budget/backend/internal/integration/entrypoint/dto"
)

// PayeeController handles payee registry endpoints.
type PayeeController struct {
	listUseCase         *payee.ListPayeesUseCase
	createUseCase       *payee.CreatePayeeUseCase
	updateUseCase       *payee.UpdatePayeeUseCase
	deleteUseCase       *payee.DeletePayeeUseCase
	lastCategoryUseCase *payee.LastCategoryUseCase
}

// NewPayeeController creates a new payee controller instance.
func NewPayeeController(
	listUseCase *payee.ListPayeesUseCase,
	createUseCase *payee.CreatePayeeUseCase,
	updateUseCase *payee.UpdatePayeeUseCase,
	deleteUseCase *payee.DeletePayeeUseCase,
	lastCategoryUseCase *payee.LastCategoryUseCase,
) *PayeeController {
	return &PayeeController{
		listUseCase:         listUseCase,
		createUseCase:       createUseCase,
		updateUseCase:       updateUseCase,
		deleteUseCase:       deleteUseCase,
		lastCategoryUseCase: lastCategoryUseCase,
	}
}

// List handles GET /payees requests.
func (c *PayeeController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handlePayeeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPayeeListResponse(output.Payees))
}

// Create handles POST /payees requests. Creating a payee whose name already
// exists (case-insensitively) returns the existing payee.
func (c *PayeeController) Create(ctx *gin.Context) {
	var req dto.CreatePayeeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), payee.CreatePayeeInput{Name: req.Name})
	if err != nil {
		c.handlePayeeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToPayeeResponse(output.Payee))
}

// Update handles PATCH /payees/:id requests. Renaming rewrites every
// transaction and recurring template that referenced the old name.
func (c *PayeeController) Update(ctx *gin.Context) {
	payeeID, ok := parsePayeeID(ctx)
	if !ok {
		return
	}

	var req dto.UpdatePayeeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), payee.UpdatePayeeInput{
		ID:   payeeID,
		Name: req.Name,
	})
	if err != nil {
		c.handlePayeeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPayeeResponse(output.Payee))
}

// Delete handles DELETE /payees/:id requests. Without a replacement name,
// existing transactions keep the deleted payee's name.
func (c *PayeeController) Delete(ctx *gin.Context) {
	payeeID, ok := parsePayeeID(ctx)
	if !ok {
		return
	}

	var req dto.DeletePayeeRequest
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid request body",
			})
			return
		}
	}

	input := payee.DeletePayeeInput{
		ID:              payeeID,
		ReplacementName: req.ReplacementName,
	}
	if err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handlePayeeError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// LastCategory handles GET /payees/last-category requests. The payee query
// parameter names the payee; the response category is empty when the payee
// has no usable history.
func (c *PayeeController) LastCategory(ctx *gin.Context) {
	payeeName := ctx.Query("payee")
	if payeeName == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Payee name is required",
			Code:  string(domainerror.ErrCodeMissingPayeeName),
		})
		return
	}

	output, err := c.lastCategoryUseCase.Execute(ctx.Request.Context(), payee.LastCategoryInput{PayeeName: payeeName})
	if err != nil {
		c.handlePayeeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.LastCategoryResponse{Category: output.Category})
}

// handlePayeeError handles payee errors and returns appropriate HTTP responses.
func (c *PayeeController) handlePayeeError(ctx *gin.Context, err error) {
	var payErr *domainerror.PayeeError
	if errors.As(err, &payErr) {
		ctx.JSON(c.getStatusCodeForPayeeError(payErr.Code), dto.ErrorResponse{
			Error: payErr.Message,
			Code:  string(payErr.Code),
		})
		return
	}

	respondInternalError(ctx)
}

// getStatusCodeForPayeeError maps payee error codes to HTTP status codes.
func (c *PayeeController) getStatusCodeForPayeeError(code domainerror.PayeeErrorCode) int {
	switch code {
	case domainerror.ErrCodePayeeNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeMissingPayeeName,
		domainerror.ErrCodeMissingReplacementPayee:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// parsePayeeID parses the :id path parameter, responding on failure.
func parsePayeeID(ctx *gin.Context) (uuid.UUID, bool) {
	payeeID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid payee ID format",
		})
		return uuid.Nil, false
	}
	return payeeID, true
}
