// internal/domain/product/service.go
package product

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/your-org/hardware-store-backend/internal/config"
	"gorm.io/gorm"
)

const (
	catalogCacheKey = "catalogo:productos"
	catalogCacheTTL = 60 * time.Second
)

// Cache is the slice of the redis client the catalog needs. Satisfied
// by redis.Client.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// Service handles product business logic
type Service struct {
	db     *gorm.DB
	cache  Cache
	config *config.Config
}

// NewService creates a new product service. The cache may be nil, in
// which case catalog reads always hit the database.
func NewService(db *gorm.DB, cache Cache, cfg *config.Config) *Service {
	return &Service{
		db:     db,
		cache:  cache,
		config: cfg,
	}
}

// CreateRequest represents product creation data
type CreateRequest struct {
	Name        string          `json:"nombre" binding:"required"`
	Description string          `json:"descripcion"`
	Price       decimal.Decimal `json:"precio" binding:"required"`
	Stock       int             `json:"stock"`
	SKU         *string         `json:"sku"`
	CategoryID  *uint           `json:"idCategoria"`
	BrandID     *uint           `json:"idMarca"`
}

// UpdateRequest represents product update data. Nil fields are left unchanged.
type UpdateRequest struct {
	Name        *string          `json:"nombre"`
	Description *string          `json:"descripcion"`
	Price       *decimal.Decimal `json:"precio"`
	Stock       *int             `json:"stock"`
	SKU         *string          `json:"sku"`
	CategoryID  *uint            `json:"idCategoria"`
	BrandID     *uint            `json:"idMarca"`
}

// Detail is the catalog projection of a product: its scalar fields,
// the names of its category and brand, and the cover image URL.
type Detail struct {
	ID           uint            `json:"id"`
	Name         string          `json:"nombre"`
	Description  string          `json:"descripcion"`
	Price        decimal.Decimal `json:"precio"`
	Stock        int             `json:"stock"`
	SKU          *string         `json:"sku"`
	CoverImage   *string         `json:"imagenPortada"`
	BrandID      *uint           `json:"idMarca"`
	BrandName    *string         `json:"nombreMarca"`
	CategoryID   *uint           `json:"idCategoria"`
	CategoryName *string         `json:"nombreCategoria"`
}

// GetProducts retrieves all products with their category and brand
func (s *Service) GetProducts() ([]Product, error) {
	var products []Product
	if err := s.db.Preload("Category").Preload("Brand").Order("id ASC").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve products: %w", err)
	}
	return products, nil
}

// GetProduct retrieves a single product by ID
func (s *Service) GetProduct(id uint) (*Product, error) {
	var p Product
	result := s.db.Preload("Category").Preload("Brand").Where("id = ?", id).First(&p)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to retrieve product: %w", result.Error)
	}
	return &p, nil
}

// GetProductBySKU retrieves a single product by its SKU
func (s *Service) GetProductBySKU(sku string) (*Product, error) {
	var p Product
	result := s.db.Preload("Category").Preload("Brand").Where("sku = ?", sku).First(&p)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to retrieve product: %w", result.Error)
	}
	return &p, nil
}

// GetProductsByCategory retrieves the products of one category. The
// category itself must exist, an unknown ID is an error rather than an
// empty list.
func (s *Service) GetProductsByCategory(categoryID uint) ([]Product, error) {
	var count int64
	if err := s.db.Model(&Category{}).Where("id = ?", categoryID).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to check category: %w", err)
	}
	if count == 0 {
		return nil, ErrCategoryNotFound
	}

	var products []Product
	if err := s.db.Preload("Category").Preload("Brand").
		Where("id_categoria = ?", categoryID).Order("id ASC").
		Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve products: %w", err)
	}
	return products, nil
}

// GetProductsByBrand retrieves the products of one brand
func (s *Service) GetProductsByBrand(brandID uint) ([]Product, error) {
	var count int64
	if err := s.db.Model(&Brand{}).Where("id = ?", brandID).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to check brand: %w", err)
	}
	if count == 0 {
		return nil, ErrBrandNotFound
	}

	var products []Product
	if err := s.db.Preload("Category").Preload("Brand").
		Where("id_marca = ?", brandID).Order("id ASC").
		Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve products: %w", err)
	}
	return products, nil
}

// SearchProducts finds products whose name contains the given term,
// case-insensitively
func (s *Service) SearchProducts(term string) ([]Product, error) {
	var products []Product
	if err := s.db.Preload("Category").Preload("Brand").
		Where("LOWER(nombre) LIKE LOWER(?)", "%"+term+"%").Order("id ASC").
		Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to search products: %w", err)
	}
	return products, nil
}

// CreateProduct creates a new product, enforcing SKU uniqueness when a
// SKU is provided
func (s *Service) CreateProduct(req *CreateRequest) (*Product, error) {
	if req.SKU != nil {
		taken, err := s.skuExists(*req.SKU)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrSKUTaken
		}
	}
	if req.CategoryID != nil {
		if err := s.requireCategory(*req.CategoryID); err != nil {
			return nil, err
		}
	}
	if req.BrandID != nil {
		if err := s.requireBrand(*req.BrandID); err != nil {
			return nil, err
		}
	}

	p := Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		SKU:         req.SKU,
		CategoryID:  req.CategoryID,
		BrandID:     req.BrandID,
	}
	if err := s.db.Create(&p).Error; err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.invalidateCatalogCache()
	return s.GetProduct(p.ID)
}

// UpdateProduct applies a partial update to an existing product
func (s *Service) UpdateProduct(id uint, req *UpdateRequest) (*Product, error) {
	p, err := s.GetProduct(id)
	if err != nil {
		return nil, err
	}

	if req.SKU != nil && (p.SKU == nil || *req.SKU != *p.SKU) {
		taken, err := s.skuExists(*req.SKU)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrSKUTaken
		}
	}
	if req.CategoryID != nil {
		if err := s.requireCategory(*req.CategoryID); err != nil {
			return nil, err
		}
	}
	if req.BrandID != nil {
		if err := s.requireBrand(*req.BrandID); err != nil {
			return nil, err
		}
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["nombre"] = *req.Name
	}
	if req.Description != nil {
		updates["descripcion"] = *req.Description
	}
	if req.Price != nil {
		updates["precio"] = *req.Price
	}
	if req.Stock != nil {
		updates["stock"] = *req.Stock
	}
	if req.SKU != nil {
		updates["sku"] = *req.SKU
	}
	if req.CategoryID != nil {
		updates["id_categoria"] = *req.CategoryID
	}
	if req.BrandID != nil {
		updates["id_marca"] = *req.BrandID
	}

	if len(updates) > 0 {
		if err := s.db.Model(p).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update product: %w", err)
		}
		s.invalidateCatalogCache()
	}

	return s.GetProduct(id)
}

// DeleteProduct removes a product by ID
func (s *Service) DeleteProduct(id uint) error {
	result := s.db.Where("id = ?", id).Delete(&Product{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	s.invalidateCatalogCache()
	return nil
}

// GetCatalog builds the storefront listing: every product with its
// category name, brand name and cover image. Served from cache when
// available.
func (s *Service) GetCatalog(ctx context.Context) ([]Detail, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, catalogCacheKey); err == nil {
			var details []Detail
			if err := json.Unmarshal([]byte(cached), &details); err == nil {
				return details, nil
			}
		}
	}

	var products []Product
	if err := s.db.Preload("Category").Preload("Brand").
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("orden ASC") }).
		Order("id ASC").Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve catalog: %w", err)
	}

	details := make([]Detail, 0, len(products))
	for i := range products {
		details = append(details, buildDetail(&products[i]))
	}

	if s.cache != nil {
		if payload, err := json.Marshal(details); err == nil {
			if err := s.cache.Set(ctx, catalogCacheKey, payload, catalogCacheTTL); err != nil {
				logrus.WithError(err).Warn("Failed to cache catalog")
			}
		}
	}

	return details, nil
}

// InvalidateCatalogCache drops the cached catalog listing. Called by
// the image service after upload, reorder and delete.
func (s *Service) InvalidateCatalogCache() {
	s.invalidateCatalogCache()
}

func (s *Service) invalidateCatalogCache() {
	invalidateCatalog(s.cache)
}

func invalidateCatalog(cache Cache) {
	if cache == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := cache.Delete(ctx, catalogCacheKey); err != nil {
		logrus.WithError(err).Warn("Failed to invalidate catalog cache")
	}
}

func buildDetail(p *Product) Detail {
	d := Detail{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Stock:       p.Stock,
		SKU:         p.SKU,
		CategoryID:  p.CategoryID,
		BrandID:     p.BrandID,
	}
	if p.Category != nil {
		d.CategoryName = &p.Category.Name
	}
	if p.Brand != nil {
		d.BrandName = &p.Brand.Name
	}
	if cover := CoverImage(p.Images); cover != nil {
		d.CoverImage = &cover.URL
	}
	return d
}

// CoverImage picks the image with the lowest position, or nil when the
// product has none.
func CoverImage(images []ProductImage) *ProductImage {
	var cover *ProductImage
	for i := range images {
		if cover == nil || images[i].Position < cover.Position {
			cover = &images[i]
		}
	}
	return cover
}

func (s *Service) skuExists(sku string) (bool, error) {
	var count int64
	if err := s.db.Model(&Product{}).Where("sku = ?", sku).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check SKU: %w", err)
	}
	return count > 0, nil
}

func (s *Service) requireCategory(id uint) error {
	var count int64
	if err := s.db.Model(&Category{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check category: %w", err)
	}
	if count == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

func (s *Service) requireBrand(id uint) error {
	var count int64
	if err := s.db.Model(&Brand{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check brand: %w", err)
	}
	if count == 0 {
		return ErrBrandNotFound
	}
	return nil
}
