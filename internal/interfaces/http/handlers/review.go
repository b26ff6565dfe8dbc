// internal/interfaces/http/handlers/review.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/your-org/hardware-store-backend/internal/domain/product"
)

// ReviewHandler handles product review endpoints
type ReviewHandler struct {
	service *product.ReviewService
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(service *product.ReviewService) *ReviewHandler {
	return &ReviewHandler{service: service}
}

// GetReviews handles GET /api/resenas
func (h *ReviewHandler) GetReviews(c *gin.Context) {
	reviews, err := h.service.GetReviews()
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// GetReview handles GET /api/resenas/:id
func (h *ReviewHandler) GetReview(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	review, err := h.service.GetReview(id)
	if err != nil {
		if errors.Is(err, product.ErrReviewNotFound) {
			notFound(c)
			return
		}
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, review)
}

// GetReviewsByProduct handles GET /api/resenas/producto/:idProducto
func (h *ReviewHandler) GetReviewsByProduct(c *gin.Context) {
	id, ok := pathID(c, "idProducto")
	if !ok {
		return
	}

	reviews, err := h.service.GetReviewsByProduct(id)
	if err != nil {
		if errors.Is(err, product.ErrNotFound) {
			notFound(c)
			return
		}
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// GetReviewsByUser handles GET /api/resenas/usuario/:idUsuario
func (h *ReviewHandler) GetReviewsByUser(c *gin.Context) {
	id, ok := pathID(c, "idUsuario")
	if !ok {
		return
	}

	reviews, err := h.service.GetReviewsByUser(id)
	if err != nil {
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// GetReviewsByRating handles GET /api/resenas/calificacion/:calificacion
func (h *ReviewHandler) GetReviewsByRating(c *gin.Context) {
	rating, err := strconv.Atoi(c.Param("calificacion"))
	if err != nil {
		badRequest(c, errors.New("invalid calificacion"))
		return
	}

	reviews, err := h.service.GetReviewsByRating(rating)
	if err != nil {
		if errors.Is(err, product.ErrInvalidRating) {
			badRequest(c, err)
			return
		}
		serverError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// CreateReview handles POST /api/resenas
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	var req product.ReviewCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	review, err := h.service.CreateReview(&req)
	if err != nil {
		if errors.Is(err, product.ErrInvalidRating) {
			badRequest(c, err)
			return
		}
		serverError(c, err)
		return
	}
	c.JSON(http.StatusCreated, review)
}

// UpdateReview handles PUT /api/resenas/:id
func (h *ReviewHandler) UpdateReview(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req product.ReviewUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	review, err := h.service.UpdateReview(id, &req)
	if err != nil {
		switch {
		case errors.Is(err, product.ErrReviewNotFound):
			notFound(c)
		case errors.Is(err, product.ErrInvalidRating):
			badRequest(c, err)
		default:
			serverError(c, err)
		}
		return
	}
	c.JSON(http.StatusOK, review)
}

// DeleteReview handles DELETE /api/resenas/:id
func (h *ReviewHandler) DeleteReview(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.service.DeleteReview(id); err != nil {
		if errors.Is(err, product.ErrReviewNotFound) {
			notFound(c)
			return
		}
		serverError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
