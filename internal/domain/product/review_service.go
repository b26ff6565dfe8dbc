// internal/domain/product/review_service.go
package product

import (
	"errors"
	"fmt"
	"time"

	"github.com/your-org/hardware-store-backend/internal/config"
	"gorm.io/gorm"
)

// ReviewService handles product review business logic
type ReviewService struct {
	db     *gorm.DB
	config *config.Config
}

// NewReviewService creates a new review service
func NewReviewService(db *gorm.DB, cfg *config.Config) *ReviewService {
	return &ReviewService{
		db:     db,
		config: cfg,
	}
}

// ReviewCreateRequest represents review creation data
type ReviewCreateRequest struct {
	ProductID uint   `json:"idProducto" binding:"required"`
	UserID    uint   `json:"idUsuario" binding:"required"`
	Rating    int    `json:"calificacion"`
	Comment   string `json:"comentario"`
}

// ReviewUpdateRequest represents review update data
type ReviewUpdateRequest struct {
	Rating  *int    `json:"calificacion"`
	Comment *string `json:"comentario"`
}

// GetReviews retrieves all reviews
func (s *ReviewService) GetReviews() ([]Review, error) {
	var reviews []Review
	if err := s.db.Preload("User").Order("id ASC").Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve reviews: %w", err)
	}
	return reviews, nil
}

// GetReview retrieves a single review by ID
func (s *ReviewService) GetReview(id uint) (*Review, error) {
	var r Review
	result := s.db.Preload("User").Where("id = ?", id).First(&r)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrReviewNotFound
		}
		return nil, fmt.Errorf("failed to retrieve review: %w", result.Error)
	}
	return &r, nil
}

// GetReviewsByProduct retrieves the reviews of one product
func (s *ReviewService) GetReviewsByProduct(productID uint) ([]Review, error) {
	var count int64
	if err := s.db.Model(&Product{}).Where("id = ?", productID).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to check product: %w", err)
	}
	if count == 0 {
		return nil, ErrNotFound
	}

	var reviews []Review
	if err := s.db.Preload("User").Where("id_producto = ?", productID).Order("id ASC").Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve reviews: %w", err)
	}
	return reviews, nil
}

// GetReviewsByUser retrieves the reviews written by one user
func (s *ReviewService) GetReviewsByUser(userID uint) ([]Review, error) {
	var reviews []Review
	if err := s.db.Preload("User").Where("id_usuario = ?", userID).Order("id ASC").Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve reviews: %w", err)
	}
	return reviews, nil
}

// GetReviewsByRating retrieves the reviews with a given rating
func (s *ReviewService) GetReviewsByRating(rating int) ([]Review, error) {
	if rating < 0 || rating > 5 {
		return nil, ErrInvalidRating
	}
	var reviews []Review
	if err := s.db.Preload("User").Where("calificacion = ?", rating).Order("id ASC").Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve reviews: %w", err)
	}
	return reviews, nil
}

// CreateReview creates a new review. The rating must be 0 to 5.
func (s *ReviewService) CreateReview(req *ReviewCreateRequest) (*Review, error) {
	if req.Rating < 0 || req.Rating > 5 {
		return nil, ErrInvalidRating
	}

	r := Review{
		ProductID: req.ProductID,
		UserID:    req.UserID,
		Rating:    req.Rating,
		Comment:   req.Comment,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.db.Create(&r).Error; err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}
	return s.GetReview(r.ID)
}

// UpdateReview applies a partial update to an existing review
func (s *ReviewService) UpdateReview(id uint, req *ReviewUpdateRequest) (*Review, error) {
	r, err := s.GetReview(id)
	if err != nil {
		return nil, err
	}

	if req.Rating != nil && (*req.Rating < 0 || *req.Rating > 5) {
		return nil, ErrInvalidRating
	}

	updates := make(map[string]interface{})
	if req.Rating != nil {
		updates["calificacion"] = *req.Rating
	}
	if req.Comment != nil {
		updates["comentario"] = *req.Comment
	}
	if len(updates) > 0 {
		if err := s.db.Model(r).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update review: %w", err)
		}
	}

	return s.GetReview(id)
}

// DeleteReview removes a review by ID
func (s *ReviewService) DeleteReview(id uint) error {
	result := s.db.Where("id = ?", id).Delete(&Review{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete review: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrReviewNotFound
	}
	return nil
}
