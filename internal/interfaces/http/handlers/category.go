// internal/interfaces/http/handlers/category.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/hardware-store-backend/internal/domain/product"
)

// CategoryHandler handles category endpoints
type CategoryHandler struct {
	service *product.CategoryService
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(service *product.CategoryService) *CategoryHandler {
	return &CategoryHandler{service: service}
}

// GetCategories handles GET /api/categorias
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	categories, err := h.service.GetCategories()
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// GetCategory handles GET /api/categorias/:id
func (h *CategoryHandler) GetCategory(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	category, err := h.service.GetCategory(id)
	if err != nil {
		if errors.Is(err, product.ErrCategoryNotFound) {
			notFound(c)
			return
		}
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

// GetCategoryByName handles GET /api/categorias/nombre/:nombre
func (h *CategoryHandler) GetCategoryByName(c *gin.Context) {
	category, err := h.service.GetCategoryByName(c.Param("nombre"))
	if err != nil {
		if errors.Is(err, product.ErrCategoryNotFound) {
			notFound(c)
			return
		}
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, category)
}

// CreateCategory handles POST /api/categorias
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req product.CategoryCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	category, err := h.service.CreateCategory(&req)
	if err != nil {
		if errors.Is(err, product.ErrCategoryNameTaken) {
			badRequest(c, err)
			return
		}
		serverError(c, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

// UpdateCategory handles PUT /api/categorias/:id
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req product.CategoryUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	category, err := h.service.UpdateCategory(id, &req)
	if err != nil {
		switch {
		case errors.Is(err, product.ErrCategoryNotFound):
			notFound(c)
		case errors.Is(err, product.ErrCategoryNameTaken):
			badRequest(c, err)
		default:
			serverError(c, err)
		}
		return
	}
	c.JSON(http.StatusOK, category)
}

// DeleteCategory handles DELETE /api/categorias/:id
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteCategory(id); err != nil {
		if errors.Is(err, product.ErrCategoryNotFound) {
			notFound(c)
			return
		}
		serverError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
