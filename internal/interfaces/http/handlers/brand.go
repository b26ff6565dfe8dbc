// internal/interfaces/http/handlers/brand.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/hardware-store-backend/internal/domain/product"
)

// BrandHandler handles brand endpoints
type BrandHandler struct {
	service *product.BrandService
}

// NewBrandHandler creates a new brand handler
func NewBrandHandler(service *product.BrandService) *BrandHandler {
	return &BrandHandler{service: service}
}

// GetBrands handles GET /api/marcas
func (h *BrandHandler) GetBrands(c *gin.Context) {
	brands, err := h.service.GetBrands()
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, brands)
}

// GetBrand handles GET /api/marcas/:id
func (h *BrandHandler) GetBrand(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	brand, err := h.service.GetBrand(id)
	if err != nil {
		if errors.Is(err, product.ErrBrandNotFound) {
			notFound(c)
			return
		}
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, brand)
}

// GetBrandByName handles GET /api/marcas/nombre/:nombre
func (h *BrandHandler) GetBrandByName(c *gin.Context) {
	brand, err := h.service.GetBrandByName(c.Param("nombre"))
	if err != nil {
		if errors.Is(err, product.ErrBrandNotFound) {
			notFound(c)
			return
		}
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, brand)
}

// CreateBrand handles POST /api/marcas
func (h *BrandHandler) CreateBrand(c *gin.Context) {
	var req product.BrandCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	brand, err := h.service.CreateBrand(&req)
	if err != nil {
		if errors.Is(err, product.ErrBrandNameTaken) {
			badRequest(c, err)
			return
		}
		serverError(c, err)
		return
	}
	c.JSON(http.StatusCreated, brand)
}

// UpdateBrand handles PUT /api/marcas/:id
func (h *BrandHandler) UpdateBrand(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req product.BrandUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	brand, err := h.service.UpdateBrand(id, &req)
	if err != nil {
		switch {
		case errors.Is(err, product.ErrBrandNotFound):
			notFound(c)
		case errors.Is(err, product.ErrBrandNameTaken):
			badRequest(c, err)
		default:
			serverError(c, err)
		}
		return
	}
	c.JSON(http.StatusOK, brand)
}

// DeleteBrand handles DELETE /api/marcas/:id
func (h *BrandHandler) DeleteBrand(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteBrand(id); err != nil {
		if errors.Is(err, product.ErrBrandNotFound) {
			notFound(c)
			return
		}
		serverError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
