// internal/interfaces/http/handlers/product_image.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/your-org/hardware-store-backend/internal/domain/product"
	"github.com/your-org/hardware-store-backend/internal/infrastructure/storage"
)

// ProductImageHandler handles product image endpoints
type ProductImageHandler struct {
	service *product.ImageService
}

// NewProductImageHandler creates a new product image handler
func NewProductImageHandler(service *product.ImageService) *ProductImageHandler {
	return &ProductImageHandler{service: service}
}

// GetImages handles GET /api/producto-imagenes
func (h *ProductImageHandler) GetImages(c *gin.Context) {
	images, err := h.service.GetImages()
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, images)
}

// GetImage handles GET /api/producto-imagenes/:id
func (h *ProductImageHandler) GetImage(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	img, err := h.service.GetImage(id)
	if err != nil {
		if errors.Is(err, product.ErrImageNotFound) {
			notFound(c)
			return
		}
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, img)
}

// GetImagesByProduct handles GET /api/producto-imagenes/producto/:idProducto
func (h *ProductImageHandler) GetImagesByProduct(c *gin.Context) {
	id, ok := pathID(c, "idProducto")
	if !ok {
		return
	}

	images, err := h.service.GetImagesByProduct(id)
	if err != nil {
		if errors.Is(err, product.ErrNotFound) {
			notFound(c)
			return
		}
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, images)
}

// Upload handles POST /api/producto-imagenes/producto/:idProducto with
// a multipart field named "imagen"
func (h *ProductImageHandler) Upload(c *gin.Context) {
	id, ok := pathID(c, "idProducto")
	if !ok {
		return
	}

	file, err := c.FormFile("imagen")
	if err != nil {
		badRequest(c, errors.New("multipart field 'imagen' is required"))
		return
	}

	img, err := h.service.Upload(id, file)
	if err != nil {
		switch {
		case errors.Is(err, product.ErrNotFound):
			notFound(c)
		case errors.Is(err, storage.ErrEmptyFile),
			errors.Is(err, storage.ErrMissingFilename),
			errors.Is(err, storage.ErrInvalidExtension),
			errors.Is(err, storage.ErrFileTooLarge):
			badRequest(c, err)
		default:
			serverError(c, err)
		}
		return
	}
	c.JSON(http.StatusCreated, img)
}

// Reorder handles PATCH /api/producto-imagenes/:id/orden?nuevoOrden=N
func (h *ProductImageHandler) Reorder(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	position, err := strconv.Atoi(c.Query("nuevoOrden"))
	if err != nil {
		badRequest(c, errors.New("query parameter 'nuevoOrden' must be a number"))
		return
	}

	img, err := h.service.Reorder(id, position)
	if err != nil {
		switch {
		case errors.Is(err, product.ErrImageNotFound):
			notFound(c)
		case errors.Is(err, product.ErrInvalidPosition):
			badRequest(c, err)
		default:
			serverError(c, err)
		}
		return
	}
	c.JSON(http.StatusOK, img)
}

// DeleteImage handles DELETE /api/producto-imagenes/:id
func (h *ProductImageHandler) DeleteImage(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteImage(id); err != nil {
		if errors.Is(err, product.ErrImageNotFound) {
			notFound(c)
			return
		}
		serverError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
