// internal/interfaces/http/handlers/product.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/hardware-store-backend/internal/domain/product"
)

// ProductHandler handles product endpoints
type ProductHandler struct {
	service *product.Service
}

// NewProductHandler creates a new product handler
func NewProductHandler(service *product.Service) *ProductHandler {
	return &ProductHandler{service: service}
}

// GetProducts handles GET /api/productos
func (h *ProductHandler) GetProducts(c *gin.Context) {
	products, err := h.service.GetProducts()
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// GetCatalog handles GET /api/productos/catalogo
func (h *ProductHandler) GetCatalog(c *gin.Context) {
	catalog, err := h.service.GetCatalog(c.Request.Context())
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, catalog)
}

// GetProduct handles GET /api/productos/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	p, err := h.service.GetProduct(id)
	if err != nil {
		if errors.Is(err, product.ErrNotFound) {
			notFound(c)
			return
		}
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// GetProductBySKU handles GET /api/productos/sku/:sku
func (h *ProductHandler) GetProductBySKU(c *gin.Context) {
	p, err := h.service.GetProductBySKU(c.Param("sku"))
	if err != nil {
		if errors.Is(err, product.ErrNotFound) {
			notFound(c)
			return
		}
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// GetProductsByCategory handles GET /api/productos/categoria/:idCategoria
func (h *ProductHandler) GetProductsByCategory(c *gin.Context) {
	id, ok := pathID(c, "idCategoria")
	if !ok {
		return
	}

	products, err := h.service.GetProductsByCategory(id)
	if err != nil {
		if errors.Is(err, product.ErrCategoryNotFound) {
			notFound(c)
			return
		}
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// GetProductsByBrand handles GET /api/productos/marca/:idMarca
func (h *ProductHandler) GetProductsByBrand(c *gin.Context) {
	id, ok := pathID(c, "idMarca")
	if !ok {
		return
	}

	products, err := h.service.GetProductsByBrand(id)
	if err != nil {
		if errors.Is(err, product.ErrBrandNotFound) {
			notFound(c)
			return
		}
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// SearchProducts handles GET /api/productos/buscar?nombre=...
func (h *ProductHandler) SearchProducts(c *gin.Context) {
	products, err := h.service.SearchProducts(c.Query("nombre"))
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

// CreateProduct handles POST /api/productos
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req product.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	p, err := h.service.CreateProduct(&req)
	if err != nil {
		switch {
		case errors.Is(err, product.ErrSKUTaken),
			errors.Is(err, product.ErrCategoryNotFound),
			errors.Is(err, product.ErrBrandNotFound):
			badRequest(c, err)
		default:
			serverError(c, err)
		}
		return
	}
	c.JSON(http.StatusCreated, p)
}

// UpdateProduct handles PUT /api/productos/:id
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req product.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	p, err := h.service.UpdateProduct(id, &req)
	if err != nil {
		switch {
		case errors.Is(err, product.ErrNotFound):
			notFound(c)
		case errors.Is(err, product.ErrSKUTaken),
			errors.Is(err, product.ErrCategoryNotFound),
			errors.Is(err, product.ErrBrandNotFound):
			badRequest(c, err)
		default:
			serverError(c, err)
		}
		return
	}
	c.JSON(http.StatusOK, p)
}

// DeleteProduct handles DELETE /api/productos/:id
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteProduct(id); err != nil {
		if errors.Is(err, product.ErrNotFound) {
			notFound(c)
			return
		}
		serverError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
