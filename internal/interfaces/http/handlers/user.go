// internal/interfaces/http/handlers/user.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/your-org/hardware-store-backend/internal/domain/user"
)

// UserHandler handles user endpoints
type UserHandler struct {
	service *user.Service
}

// NewUserHandler creates a new user handler
func NewUserHandler(service *user.Service) *UserHandler {
	return &UserHandler{service: service}
}

// GetUsers handles GET /api/usuarios
func (h *UserHandler) GetUsers(c *gin.Context) {
	users, err := h.service.GetUsers()
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetUser handles GET /api/usuarios/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	u, err := h.service.GetUser(id)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			notFound(c)
			return
		}
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

// GetUserByEmail handles GET /api/usuarios/email/:correo
func (h *UserHandler) GetUserByEmail(c *gin.Context) {
	u, err := h.service.GetUserByEmail(c.Param("correo"))
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			notFound(c)
			return
		}
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

// ExistsByEmail handles GET /api/usuarios/exists/:correo
func (h *UserHandler) ExistsByEmail(c *gin.Context) {
	exists, err := h.service.ExistsByEmail(c.Param("correo"))
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, exists)
}

// CreateUser handles POST /api/usuarios
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req user.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	u, err := h.service.CreateUser(&req)
	if err != nil {
		if errors.Is(err, user.ErrEmailTaken) {
			badRequest(c, err)
			return
		}
		serverError(c, err)
		return
	}
	c.JSON(http.StatusCreated, u)
}

// UpdateUser handles PUT /api/usuarios/:id
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req user.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	u, err := h.service.UpdateUser(id, &req)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrNotFound):
			notFound(c)
		case errors.Is(err, user.ErrEmailTaken):
			badRequest(c, err)
		default:
			serverError(c, err)
		}
		return
	}
	c.JSON(http.StatusOK, u)
}

// DeleteUser handles DELETE /api/usuarios/:id
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteUser(id); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			notFound(c)
			return
		}
		serverError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Login handles POST /api/usuarios/login
func (h *UserHandler) Login(c *gin.Context) {
	var req user.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	u, err := h.service.Authenticate(&req)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Credenciales inválidas",
			})
			return
		}
		serverError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Inicio de sesión exitoso",
		"usuario": u,
	})
}
