// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/brisk-budget/backend/internal/application/usecase/category"
	domainerror "github.com/brisk-budget/backend/internal/domain/error"
	"github.com/brisk-budget/backend/internal/integration/entrypoint/dto"
)

// CategoryController handles category management endpoints.
type CategoryController struct {
	listUseCase              *category.ListCategoriesUseCase
	createUseCase            *category.CreateCategoryUseCase
	updateUseCase            *category.UpdateCategoryUseCase
	deleteUseCase            *category.DeleteCategoryUseCase
	addSubcategoryUseCase    *category.AddSubcategoryUseCase
	updateSubcategoryUseCase *category.UpdateSubcategoryUseCase
	deleteSubcategoryUseCase *category.DeleteSubcategoryUseCase
	reorderUseCase           *category.ReorderCategoriesUseCase
	resetUseCase             *category.ResetCategoriesUseCase
}

// NewCategoryController creates a new category controller instance.
func NewCategoryController(
	listUseCase *category.ListCategoriesUseCase,
	createUseCase *category.CreateCategoryUseCase,
	updateUseCase *category.UpdateCategoryUseCase,
	deleteUseCase *category.DeleteCategoryUseCase,
	addSubcategoryUseCase *category.AddSubcategoryUseCase,
	updateSubcategoryUseCase *category.UpdateSubcategoryUseCase,
	deleteSubcategoryUseCase *category.DeleteSubcategoryUseCase,
	reorderUseCase *category.ReorderCategoriesUseCase,
	resetUseCase *category.ResetCategoriesUseCase,
) *CategoryController {
	return &CategoryController{
		listUseCase:              listUseCase,
		createUseCase:            createUseCase,
		updateUseCase:            updateUseCase,
		deleteUseCase:            deleteUseCase,
		addSubcategoryUseCase:    addSubcategoryUseCase,
		updateSubcategoryUseCase: updateSubcategoryUseCase,
		deleteSubcategoryUseCase: deleteSubcategoryUseCase,
		reorderUseCase:           reorderUseCase,
		resetUseCase:             resetUseCase,
	}
}

// List handles GET /categories requests.
func (c *CategoryController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryListResponse(output.Categories))
}

// Create handles POST /categories requests.
func (c *CategoryController) Create(ctx *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := category.CreateCategoryInput{
		Name:          req.Name,
		Emoji:         req.Emoji,
		Subcategories: req.Subcategories,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCategoryResponse(output.Category))
}

// Update handles PATCH /categories/:id requests. Renaming a category
// rewrites every transaction that referenced the old name.
func (c *CategoryController) Update(ctx *gin.Context) {
	categoryID, ok := parseCategoryID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := category.UpdateCategoryInput{
		ID:    categoryID,
		Name:  req.Name,
		Emoji: req.Emoji,
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryResponse(output.Category))
}

// Delete handles DELETE /categories/:id requests. Transactions referencing
// the deleted category or its subcategories move to the replacement.
func (c *CategoryController) Delete(ctx *gin.Context) {
	categoryID, ok := parseCategoryID(ctx)
	if !ok {
		return
	}

	var req dto.DeleteCategoryRequest
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid request body",
			})
			return
		}
	}

	input := category.DeleteCategoryInput{
		ID:              categoryID,
		ReplacementName: req.ReplacementName,
	}
	if err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// AddSubcategory handles POST /categories/:id/subcategories requests.
func (c *CategoryController) AddSubcategory(ctx *gin.Context) {
	categoryID, ok := parseCategoryID(ctx)
	if !ok {
		return
	}

	var req dto.SubcategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := category.AddSubcategoryInput{
		CategoryID: categoryID,
		Name:       req.Name,
	}

	output, err := c.addSubcategoryUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCategoryResponse(output.Category))
}

// UpdateSubcategory handles PATCH /categories/:id/subcategories/:subcategoryId requests.
func (c *CategoryController) UpdateSubcategory(ctx *gin.Context) {
	categoryID, ok := parseCategoryID(ctx)
	if !ok {
		return
	}
	subcategoryID, ok := parseSubcategoryID(ctx)
	if !ok {
		return
	}

	var req dto.SubcategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := category.UpdateSubcategoryInput{
		CategoryID:    categoryID,
		SubcategoryID: subcategoryID,
		Name:          req.Name,
	}

	output, err := c.updateSubcategoryUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryResponse(output.Category))
}

// DeleteSubcategory handles DELETE /categories/:id/subcategories/:subcategoryId
// requests. Without a replacement, affected transactions move to the parent
// category.
func (c *CategoryController) DeleteSubcategory(ctx *gin.Context) {
	categoryID, ok := parseCategoryID(ctx)
	if !ok {
		return
	}
	subcategoryID, ok := parseSubcategoryID(ctx)
	if !ok {
		return
	}

	var req dto.DeleteSubcategoryRequest
	if ctx.Request.ContentLength > 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid request body",
			})
			return
		}
	}

	input := category.DeleteSubcategoryInput{
		CategoryID:      categoryID,
		SubcategoryID:   subcategoryID,
		ReplacementName: req.ReplacementName,
	}
	if err := c.deleteSubcategoryUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Reorder handles PUT /categories/order requests.
func (c *CategoryController) Reorder(ctx *gin.Context) {
	var req dto.ReorderCategoriesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	input := category.ReorderCategoriesInput{}

	var err error
	if input.OrderedIDs, err = parseUUIDs(req.OrderedIDs); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid category ID format",
		})
		return
	}
	if input.SubcategoryIDs, err = parseUUIDs(req.SubcategoryIDs); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid subcategory ID format",
		})
		return
	}
	if req.SubcategoryParent != nil {
		parentID, err := uuid.Parse(*req.SubcategoryParent)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid category ID format",
			})
			return
		}
		input.SubcategoryParent = &parentID
	}

	if err := c.reorderUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Reset handles POST /categories/reset requests, restoring the default
// category tree.
func (c *CategoryController) Reset(ctx *gin.Context) {
	output, err := c.resetUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryListResponse(output.Categories))
}

// handleCategoryError handles category errors and returns appropriate HTTP responses.
func (c *CategoryController) handleCategoryError(ctx *gin.Context, err error) {
	var catErr *domainerror.CategoryError
	if errors.As(err, &catErr) {
		ctx.JSON(c.getStatusCodeForCategoryError(catErr.Code), dto.ErrorResponse{
			Error: catErr.Message,
			Code:  string(catErr.Code),
		})
		return
	}

	respondInternalError(ctx)
}

// getStatusCodeForCategoryError maps category error codes to HTTP status codes.
func (c *CategoryController) getStatusCodeForCategoryError(code domainerror.CategoryErrorCode) int {
	switch code {
	case domainerror.ErrCodeCategoryNotFound,
		domainerror.ErrCodeSubcategoryNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeCategoryNameExists:
		return http.StatusConflict
	case domainerror.ErrCodeSystemCategory:
		return http.StatusForbidden
	case domainerror.ErrCodeMissingReplacementCategory,
		domainerror.ErrCodeMissingCategoryName:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// parseCategoryID parses the :id path parameter, responding on failure.
func parseCategoryID(ctx *gin.Context) (uuid.UUID, bool) {
	categoryID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid category ID format",
		})
		return uuid.Nil, false
	}
	return categoryID, true
}

// parseSubcategoryID parses the :subcategoryId path parameter, responding on failure.
func parseSubcategoryID(ctx *gin.Context) (uuid.UUID, bool) {
	subcategoryID, err := uuid.Parse(ctx.Param("subcategoryId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid subcategory ID format",
		})
		return uuid.Nil, false
	}
	return subcategoryID, true
}
