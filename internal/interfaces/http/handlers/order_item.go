// internal/interfaces/http/handlers/order_item.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/hardware-store-backend/internal/domain/order"
	"github.com/your-org/hardware-store-backend/internal/domain/product"
)

// OrderItemHandler handles order item endpoints
type OrderItemHandler struct {
	service *order.Service
}

// NewOrderItemHandler creates a new order item handler
func NewOrderItemHandler(service *order.Service) *OrderItemHandler {
	return &OrderItemHandler{service: service}
}

// GetItems handles GET /api/items-pedido
func (h *OrderItemHandler) GetItems(c *gin.Context) {
	items, err := h.service.GetItems()
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetItem handles GET /api/items-pedido/:id
func (h *OrderItemHandler) GetItem(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	item, err := h.service.GetItem(id)
	if err != nil {
		if errors.Is(err, order.ErrItemNotFound) {
			notFound(c)
			return
		}
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// GetItemsByOrder handles GET /api/items-pedido/pedido/:idPedido
func (h *OrderItemHandler) GetItemsByOrder(c *gin.Context) {
	id, ok := pathID(c, "idPedido")
	if !ok {
		return
	}

	items, err := h.service.GetItemsByOrder(id)
	if err != nil {
		if errors.Is(err, order.ErrNotFound) {
			notFound(c)
			return
		}
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetItemsByProduct handles GET /api/items-pedido/producto/:idProducto
func (h *OrderItemHandler) GetItemsByProduct(c *gin.Context) {
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

// AddItem handles POST /api/items-pedido
func (h *OrderItemHandler) AddItem(c *gin.Context) {
	var req order.ItemCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	item, err := h.service.AddItem(&req)
	if err != nil {
		if errors.Is(err, order.ErrNotFound) || errors.Is(err, product.ErrNotFound) {
			notFound(c)
			return
		}
		serverError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

// UpdateItem handles PUT /api/items-pedido/:id
func (h *OrderItemHandler) UpdateItem(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req order.ItemUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	item, err := h.service.UpdateItem(id, &req)
	if err != nil {
		if errors.Is(err, order.ErrItemNotFound) {
			notFound(c)
			return
		}
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

// RemoveItem handles DELETE /api/items-pedido/:id
func (h *OrderItemHandler) RemoveItem(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.service.RemoveItem(id); err != nil {
		if errors.Is(err, order.ErrItemNotFound) {
			notFound(c)
			return
		}
		serverError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
