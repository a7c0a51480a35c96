// Package dto defines data transfer objects for API requests and responses.
package dto

import "github.com/brisk-budget/backend/internal/domain/entity"

// CreateCategoryRequest represents the request body for category creation.
type CreateCategoryRequest struct {
	Name          string   `json:"name" binding:"required,min=1,max=50"`
	Emoji         string   `json:"emoji,omitempty"`
	Subcategories []string `json:"subcategories,omitempty"`
}

// UpdateCategoryRequest represents the request body for category update.
type UpdateCategoryRequest struct {
	Name  *string `json:"name,omitempty" binding:"omitempty,min=1,max=50"`
	Emoji *string `json:"emoji,omitempty"`
}

// DeleteCategoryRequest carries the replacement category for reassigning
// transactions that referenced the deleted one.
type DeleteCategoryRequest struct {
	ReplacementName string `json:"replacementName,omitempty"`
}

// SubcategoryRequest represents the request body for creating or renaming
// a subcategory.
type SubcategoryRequest struct {
	Name string `json:"name" binding:"required,min=1,max=50"`
}

// DeleteSubcategoryRequest carries the optional replacement name; when
// omitted the parent category's own name is used.
type DeleteSubcategoryRequest struct {
	ReplacementName string `json:"replacementName,omitempty"`
}

// ReorderCategoriesRequest represents the request body for reordering
// categories, or a single category's subcategories when SubcategoryParent
// is set.
type ReorderCategoriesRequest struct {
	OrderedIDs        []string `json:"orderedIds,omitempty"`
	SubcategoryParent *string  `json:"subcategoryParent,omitempty"`
	SubcategoryIDs    []string `json:"subcategoryIds,omitempty"`
}

// SubcategoryResponse represents a subcategory in API responses.
type SubcategoryResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	SortOrder int    `json:"sortOrder"`
}

// CategoryResponse represents a single category in API responses.
type CategoryResponse struct {
	ID            string                `json:"id"`
	Name          string                `json:"name"`
	Emoji         string                `json:"emoji"`
	IsDefault     bool                  `json:"isDefault"`
	IsSystem      bool                  `json:"isSystem"`
	SortOrder     int                   `json:"sortOrder"`
	Subcategories []SubcategoryResponse `json:"subcategories"`
}

// CategoryListResponse represents the response for listing categories.
type CategoryListResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

// ToCategoryResponse converts a domain Category entity to a CategoryResponse DTO.
func ToCategoryResponse(category *entity.Category) CategoryResponse {
	subcategories := make([]SubcategoryResponse, 0, len(category.Subcategories))
	for _, sub := range category.Subcategories {
		subcategories = append(subcategories, SubcategoryResponse{
			ID:        sub.ID.String(),
			Name:      sub.Name,
			SortOrder: sub.SortOrder,
		})
	}
	return CategoryResponse{
		ID:            category.ID.String(),
		Name:          category.Name,
		Emoji:         category.Emoji,
		IsDefault:     category.IsDefault,
		IsSystem:      category.IsSystem,
		SortOrder:     category.SortOrder,
		Subcategories: subcategories,
	}
}

// ToCategoryListResponse converts a slice of Category entities to a list response.
func ToCategoryListResponse(categories []*entity.Category) CategoryListResponse {
	responses := make([]CategoryResponse, 0, len(categories))
	for _, category := range categories {
		responses = append(responses, ToCategoryResponse(category))
	}
	return CategoryListResponse{Categories: responses}
}
