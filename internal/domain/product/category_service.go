// internal/domain/product/category_service.go
package product

import (
	"errors"
	"fmt"

	"github.com/your-org/hardware-store-backend/internal/config"
	"gorm.io/gorm"
)

// CategoryService handles category business logic
type CategoryService struct {
	db     *gorm.DB
	config *config.Config
}

// NewCategoryService creates a new category service
func NewCategoryService(db *gorm.DB, cfg *config.Config) *CategoryService {
	return &CategoryService{
		db:     db,
		config: cfg,
	}
}

// CategoryCreateRequest represents category creation data
type CategoryCreateRequest struct {
	Name        string `json:"nombre" binding:"required"`
	Description string `json:"descripcion"`
}

// CategoryUpdateRequest represents category update data
type CategoryUpdateRequest struct {
	Name        *string `json:"nombre"`
	Description *string `json:"descripcion"`
}

// GetCategories retrieves all categories
func (s *CategoryService) GetCategories() ([]Category, error) {
	var categories []Category
	if err := s.db.Order("id ASC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve categories: %w", err)
	}
	return categories, nil
}

// GetCategory retrieves a single category by ID
func (s *CategoryService) GetCategory(id uint) (*Category, error) {
	var c Category
	result := s.db.Where("id = ?", id).First(&c)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to retrieve category: %w", result.Error)
	}
	return &c, nil
}

// GetCategoryByName retrieves a single category by its exact name
func (s *CategoryService) GetCategoryByName(name string) (*Category, error) {
	var c Category
	result := s.db.Where("nombre = ?", name).First(&c)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to retrieve category: %w", result.Error)
	}
	return &c, nil
}

// CreateCategory creates a new category, enforcing name uniqueness
func (s *CategoryService) CreateCategory(req *CategoryCreateRequest) (*Category, error) {
	taken, err := s.nameExists(req.Name)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrCategoryNameTaken
	}

	c := Category{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.db.Create(&c).Error; err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return &c, nil
}

// UpdateCategory applies a partial update to an existing category
func (s *CategoryService) UpdateCategory(id uint, req *CategoryUpdateRequest) (*Category, error) {
	c, err := s.GetCategory(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != c.Name {
		taken, err := s.nameExists(*req.Name)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrCategoryNameTaken
		}
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["nombre"] = *req.Name
	}
	if req.Description != nil {
		updates["descripcion"] = *req.Description
	}
	if len(updates) > 0 {
		if err := s.db.Model(c).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update category: %w", err)
		}
	}

	return s.GetCategory(id)
}

// DeleteCategory removes a category by ID
func (s *CategoryService) DeleteCategory(id uint) error {
	result := s.db.Where("id = ?", id).Delete(&Category{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete category: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

func (s *CategoryService) nameExists(name string) (bool, error) {
	var count int64
	if err := s.db.Model(&Category{}).Where("nombre = ?", name).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check category name: %w", err)
	}
	return count > 0, nil
}
