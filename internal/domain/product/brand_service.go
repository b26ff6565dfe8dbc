// internal/domain/product/brand_service.go
package product

import (
	"errors"
	"fmt"

	"github.com/your-org/hardware-store-backend/internal/config"
	"gorm.io/gorm"
)

// BrandService handles brand business logic
type BrandService struct {
	db     *gorm.DB
	config *config.Config
}

// NewBrandService creates a new brand service
func NewBrandService(db *gorm.DB, cfg *config.Config) *BrandService {
	return &BrandService{
		db:     db,
		config: cfg,
	}
}

// BrandCreateRequest represents brand creation data
type BrandCreateRequest struct {
	Name string `json:"nombre" binding:"required"`
}

// BrandUpdateRequest represents brand update data
type BrandUpdateRequest struct {
	Name *string `json:"nombre"`
}

// GetBrands retrieves all brands
func (s *BrandService) GetBrands() ([]Brand, error) {
	var brands []Brand
	if err := s.db.Order("id ASC").Find(&brands).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve brands: %w", err)
	}
	return brands, nil
}

// GetBrand retrieves a single brand by ID
func (s *BrandService) GetBrand(id uint) (*Brand, error) {
	var b Brand
	result := s.db.Where("id = ?", id).First(&b)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrBrandNotFound
		}
		return nil, fmt.Errorf("failed to retrieve brand: %w", result.Error)
	}
	return &b, nil
}

// GetBrandByName retrieves a single brand by its exact name
func (s *BrandService) GetBrandByName(name string) (*Brand, error) {
	var b Brand
	result := s.db.Where("nombre = ?", name).First(&b)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrBrandNotFound
		}
		return nil, fmt.Errorf("failed to retrieve brand: %w", result.Error)
	}
	return &b, nil
}

// CreateBrand creates a new brand, enforcing name uniqueness
func (s *BrandService) CreateBrand(req *BrandCreateRequest) (*Brand, error) {
	taken, err := s.nameExists(req.Name)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrBrandNameTaken
	}

	b := Brand{Name: req.Name}
	if err := s.db.Create(&b).Error; err != nil {
		return nil, fmt.Errorf("failed to create brand: %w", err)
	}
	return &b, nil
}

// UpdateBrand applies a partial update to an existing brand
func (s *BrandService) UpdateBrand(id uint, req *BrandUpdateRequest) (*Brand, error) {
	b, err := s.GetBrand(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != b.Name {
		taken, err := s.nameExists(*req.Name)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrBrandNameTaken
		}
		if err := s.db.Model(b).Update("nombre", *req.Name).Error; err != nil {
			return nil, fmt.Errorf("failed to update brand: %w", err)
		}
	}

	return s.GetBrand(id)
}

// DeleteBrand removes a brand by ID
func (s *BrandService) DeleteBrand(id uint) error {
	result := s.db.Where("id = ?", id).Delete(&Brand{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete brand: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrBrandNotFound
	}
	return nil
}

func (s *BrandService) nameExists(name string) (bool, error) {
	var count int64
	if err := s.db.Model(&Brand{}).Where("nombre = ?", name).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check brand name: %w", err)
	}
	return count > 0, nil
}
