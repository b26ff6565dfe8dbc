// internal/interfaces/http/handlers/cart.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/hardware-store-backend/internal/domain/cart"
	"github.com/your-org/hardware-store-backend/internal/domain/user"
)

// CartHandler handles shopping cart endpoints
type CartHandler struct {
	service *cart.Service
}

// NewCartHandler creates a new cart handler
func NewCartHandler(service *cart.Service) *CartHandler {
	return &CartHandler{service: service}
}

// GetCarts handles GET /api/carritos
func (h *CartHandler) GetCarts(c *gin.Context) {
	carts, err := h.service.GetCarts()
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, carts)
}

// GetCart handles GET /api/carritos/:id
func (h *CartHandler) GetCart(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	ct, err := h.service.GetCart(id)
	if err != nil {
		if errors.Is(err, cart.ErrNotFound) {
			notFound(c)
			return
		}
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, ct)
}

// GetCartByUser handles GET /api/carritos/usuario/:idUsuario
func (h *CartHandler) GetCartByUser(c *gin.Context) {
	id, ok := pathID(c, "idUsuario")
	if !ok {
		return
	}

	ct, err := h.service.GetCartByUser(id)
	if err != nil {
		if errors.Is(err, cart.ErrNotFound) {
			notFound(c)
			return
		}
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, ct)
}

// CreateCart handles POST /api/carritos
func (h *CartHandler) CreateCart(c *gin.Context) {
	var req cart.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	ct, err := h.service.CreateCart(&req)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrNotFound):
			notFound(c)
		case errors.Is(err, cart.ErrCartExists):
			badRequest(c, err)
		default:
			serverError(c, err)
		}
		return
	}
	c.JSON(http.StatusCreated, ct)
}

// DeleteCart handles DELETE /api/carritos/:id
func (h *CartHandler) DeleteCart(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteCart(id); err != nil {
		if errors.Is(err, cart.ErrNotFound) {
			notFound(c)
			return
		}
		serverError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
