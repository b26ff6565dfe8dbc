// internal/interfaces/http/handlers/order.go
package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/hardware-store-backend/internal/domain/cart"
	"github.com/your-org/hardware-store-backend/internal/domain/order"
	"github.com/your-org/hardware-store-backend/internal/domain/user"
	"github.com/your-org/hardware-store-backend/internal/pkg/pdf"
)

// OrderHandler handles order endpoints
type OrderHandler struct {
	service *order.Service
	pdf     *pdf.Service
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(service *order.Service, pdfService *pdf.Service) *OrderHandler {
	return &OrderHandler{service: service, pdf: pdfService}
}

// GetOrders handles GET /api/pedidos
func (h *OrderHandler) GetOrders(c *gin.Context) {
	orders, err := h.service.GetOrders()
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// GetOrder handles GET /api/pedidos/:id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	o, err := h.service.GetOrder(id)
	if err != nil {
		if errors.Is(err, order.ErrNotFound) {
			notFound(c)
			return
		}
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}

// GetOrdersByUser handles GET /api/pedidos/usuario/:idUsuario
func (h *OrderHandler) GetOrdersByUser(c *gin.Context) {
	id, ok := pathID(c, "idUsuario")
	if !ok {
		return
	}

	orders, err := h.service.GetOrdersByUser(id)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			notFound(c)
			return
		}
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// GetOrdersByStatus handles GET /api/pedidos/estado/:estado
func (h *OrderHandler) GetOrdersByStatus(c *gin.Context) {
	orders, err := h.service.GetOrdersByStatus(c.Param("estado"))
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

// CreateOrder handles POST /api/pedidos
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req order.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	o, err := h.service.CreateOrder(&req)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			notFound(c)
			return
		}
		serverError(c, err)
		return
	}
	c.JSON(http.StatusCreated, o)
}

// CheckoutFromCart handles POST /api/pedidos/desde-carrito/:idCarrito
func (h *OrderHandler) CheckoutFromCart(c *gin.Context) {
	id, ok := pathID(c, "idCarrito")
	if !ok {
		return
	}

	// shipping data is optional
	var req order.CheckoutRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
	}

	o, err := h.service.CheckoutFromCart(id, &req)
	if err != nil {
		switch {
		case errors.Is(err, cart.ErrNotFound):
			notFound(c)
		case errors.Is(err, order.ErrEmptyCart):
			badRequest(c, err)
		default:
			serverError(c, err)
		}
		return
	}
	c.JSON(http.StatusCreated, o)
}

// UpdateOrder handles PUT /api/pedidos/:id
func (h *OrderHandler) UpdateOrder(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req order.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	o, err := h.service.UpdateOrder(id, &req)
	if err != nil {
		if errors.Is(err, order.ErrNotFound) {
			notFound(c)
			return
		}
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}

// DeleteOrder handles DELETE /api/pedidos/:id
func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteOrder(id); err != nil {
		if errors.Is(err, order.ErrNotFound) {
			notFound(c)
			return
		}
		serverError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Invoice handles GET /api/pedidos/:id/factura
func (h *OrderHandler) Invoice(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	o, err := h.service.GetOrder(id)
	if err != nil {
		if errors.Is(err, order.ErrNotFound) {
			notFound(c)
			return
		}
		serverError(c, err)
		return
	}

	data, err := h.pdf.GenerateInvoice(o)
	if err != nil {
		serverError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=factura_pedido_%d.pdf", o.ID))
	c.Data(http.StatusOK, "application/pdf", data)
}
