package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "moneytracker/internal/errors"
	"moneytracker/internal/models"
	"moneytracker/internal/services"
)

// CategoryHandler handles category-related requests
type CategoryHandler struct {
	categoryService services.CategoryServicer
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categoryService services.CategoryServicer) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// CategoryRequest represents the request payload for creating or updating a category
type CategoryRequest struct {
	Name     string  `json:"name" binding:"required,max=100"`
	Icon     string  `json:"icon" binding:"max=100"`
	Color    string  `json:"color" binding:"omitempty,hex_color"`
	ParentID *string `json:"parentId"`
}

// CategoryNode is a top-level category with its children.
type CategoryNode struct {
	models.Category
	Children []models.Category `json:"children"`
}

// GetCategories returns the category tree.
// @Summary     Get categories
// @Description Top-level categories sorted by name, each with its sorted children
// @Tags        categories
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} CategoriesResponse "Category tree"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Router      /categories [get]
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	tree := []CategoryNode{}
	for _, top := range h.categoryService.TopLevel() {
		tree = append(tree, CategoryNode{
			Category: top,
			Children: h.categoryService.ChildrenOf(top.ID),
		})
	}
	c.JSON(http.StatusOK, CategoriesResponse{Categories: tree})
}

// GetCategoryByID handles retrieving a specific category
// @Summary     Get category by ID
// @Tags        categories
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Category ID"
// @Success     200 {object} CategoryResponse "Category details"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Router      /categories/{id} [get]
func (h *CategoryHandler) GetCategoryByID(c *gin.Context) {
	categoryID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	category, err := h.categoryService.GetCategoryByID(categoryID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, CategoryResponse{Category: category})
}

// CreateCategory handles the creation of a new category
// @Summary     Create a new category
// @Tags        categories
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CategoryRequest true "Category details"
// @Success     201 {object} CategoryResponse "Category created"
// @Failure     400 {object} ErrorResponse "Invalid input or parent"
// @Failure     403 {object} ErrorResponse "Read-only token"
// @Router      /categories [post]
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	category, err := h.categoryService.CreateCategory(req.Name, req.Icon, req.Color, req.ParentID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, CategoryResponse{Category: category})
}

// UpdateCategory handles replacing an existing category
// @Summary     Update category
// @Tags        categories
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id      path string          true "Category ID"
// @Param       request body CategoryRequest true "Updated category details"
// @Success     200 {object} CategoryResponse "Updated category"
// @Failure     400 {object} ErrorResponse "Invalid input or parent"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Router      /categories/{id} [put]
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	categoryID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	category, err := h.categoryService.UpdateCategory(models.Category{
		ID:       categoryID,
		Name:     req.Name,
		Icon:     req.Icon,
		Color:    req.Color,
		ParentID: req.ParentID,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, CategoryResponse{Category: category})
}

// DeleteCategory handles deleting a category and its subcategories
// @Summary     Delete category
// @Description Deletes the category and its children; their expenses move to Other and their budgets are removed
// @Tags        categories
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Category ID"
// @Success     200 {object} MessageResponse "Category deleted"
// @Failure     404 {object} ErrorResponse "Category not found"
// @Failure     409 {object} ErrorResponse "Default or last category"
// @Router      /categories/{id} [delete]
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	categoryID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.categoryService.DeleteCategory(categoryID); err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Message: "Category deleted successfully"})
}
