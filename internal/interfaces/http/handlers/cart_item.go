// internal/interfaces/http/handlers/cart_item.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/hardware-store-backend/internal/domain/cart"
	"github.com/your-org/hardware-store-backend/internal/domain/product"
)

// CartItemHandler handles cart item endpoints
type CartItemHandler struct {
	service *cart.Service
}

// NewCartItemHandler creates a new cart item handler
func NewCartItemHandler(service *cart.Service) *CartItemHandler {
	return &CartItemHandler{service: service}
}

// GetItems handles GET /api/items-carrito
func (h *CartItemHandler) GetItems(c *gin.Context) {
	items, err := h.service.GetItems()
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetItem handles GET /api/items-carrito/:id
func (h *CartItemHandler) GetItem(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	item, err := h.service.GetItem(id)
	if err != nil {
		if errors.Is(err, cart.ErrItemNotFound) {
			notFound(c)
			return
		}
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// GetItemsByProduct handles GET /api/items-carrito/producto/:idProducto
func (h *CartItemHandler) GetItemsByProduct(c *gin.Context) {
	id, ok := pathID(c, "idProducto")
	if !ok {
		return
	}

	items, err := h.service.GetItemsByProduct(id)
	if err != nil {
		if errors.Is(err, product.ErrNotFound) {
			notFound(c)
			return
		}
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetItemsWithDetail handles GET /api/items-carrito/carrito/:idCarrito
func (h *CartItemHandler) GetItemsWithDetail(c *gin.Context) {
	id, ok := pathID(c, "idCarrito")
	if !ok {
		return
	}

	details, err := h.service.GetItemsWithDetail(id)
	if err != nil {
		if errors.Is(err, cart.ErrNotFound) {
			notFound(c)
			return
		}
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, details)
}

// AddItem handles POST /api/items-carrito
func (h *CartItemHandler) AddItem(c *gin.Context) {
	var req cart.ItemCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	item, err := h.service.AddItem(&req)
	if err != nil {
		switch {
		case errors.Is(err, cart.ErrNotFound), errors.Is(err, product.ErrNotFound):
			notFound(c)
		case errors.Is(err, cart.ErrInvalidQuantity):
			badRequest(c, err)
		default:
			serverError(c, err)
		}
		return
	}
	c.JSON(http.StatusCreated, item)
}

// UpdateItem handles PUT /api/items-carrito/:id
func (h *CartItemHandler) UpdateItem(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req cart.ItemUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	item, err := h.service.UpdateItem(id, &req)
	if err != nil {
		switch {
		case errors.Is(err, cart.ErrItemNotFound):
			notFound(c)
		case errors.Is(err, cart.ErrInvalidQuantity):
			badRequest(c, err)
		default:
			serverError(c, err)
		}
		return
	}
	c.JSON(http.StatusOK, item)
}

// RemoveItem handles DELETE /api/items-carrito/:id
func (h *CartItemHandler) RemoveItem(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.service.RemoveItem(id); err != nil {
		if errors.Is(err, cart.ErrItemNotFound) {
			notFound(c)
			return
		}
		serverError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ClearCart handles DELETE /api/items-carrito/carrito/:idCarrito
func (h *CartItemHandler) ClearCart(c *gin.Context) {
	id, ok := pathID(c, "idCarrito")
	if !ok {
		return
	}

	if err := h.service.ClearCart(id); err != nil {
		if errors.Is(err, cart.ErrNotFound) {
			notFound(c)
			return
		}
		serverError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
