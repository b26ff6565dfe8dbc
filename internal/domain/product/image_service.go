// internal/domain/product/image_service.go
package product

import (
	"errors"
	"fmt"
	"mime/multipart"

	"github.com/your-org/hardware-store-backend/internal/config"
	"gorm.io/gorm"
)

// FileStore abstracts where image files live. Satisfied by
// storage.LocalStorage.
type FileStore interface {
	Save(file *multipart.FileHeader, productID uint) (string, error)
	Delete(publicURL string) error
}

// ImageService handles product image business logic
type ImageService struct {
	db     *gorm.DB
	files  FileStore
	cache  Cache
	config *config.Config
}

// NewImageService creates a new product image service
func NewImageService(db *gorm.DB, files FileStore, cache Cache, cfg *config.Config) *ImageService {
	return &ImageService{
		db:     db,
		files:  files,
		cache:  cache,
		config: cfg,
	}
}

// GetImages retrieves all product images
func (s *ImageService) GetImages() ([]ProductImage, error) {
	var images []ProductImage
	if err := s.db.Order("id ASC").Find(&images).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve images: %w", err)
	}
	return images, nil
}

// GetImage retrieves a single product image by ID
func (s *ImageService) GetImage(id uint) (*ProductImage, error) {
	var img ProductImage
	result := s.db.Where("id = ?", id).First(&img)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrImageNotFound
		}
		return nil, fmt.Errorf("failed to retrieve image: %w", result.Error)
	}
	return &img, nil
}

// GetImagesByProduct retrieves the images of one product ordered by
// position, cover first
func (s *ImageService) GetImagesByProduct(productID uint) ([]ProductImage, error) {
	if err := s.requireProduct(productID); err != nil {
		return nil, err
	}
	var images []ProductImage
	if err := s.db.Where("id_producto = ?", productID).Order("orden ASC").Find(&images).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve images: %w", err)
	}
	return images, nil
}

// Upload stores an image file for a product and records it at the next
// free position: one past the current highest, 1 for the first image.
func (s *ImageService) Upload(productID uint, file *multipart.FileHeader) (*ProductImage, error) {
	if err := s.requireProduct(productID); err != nil {
		return nil, err
	}

	var maxPos int
	row := s.db.Model(&ProductImage{}).
		Where("id_producto = ?", productID).
		Select("COALESCE(MAX(orden), 0)").Row()
	if err := row.Scan(&maxPos); err != nil {
		return nil, fmt.Errorf("failed to determine image position: %w", err)
	}

	url, err := s.files.Save(file, productID)
	if err != nil {
		return nil, err
	}

	img := ProductImage{
		ProductID: productID,
		URL:       url,
		Position:  maxPos + 1,
	}
	if err := s.db.Create(&img).Error; err != nil {
		// best effort: don't leave an orphaned file behind
		s.files.Delete(url)
		return nil, fmt.Errorf("failed to create image record: %w", err)
	}

	invalidateCatalog(s.cache)
	return &img, nil
}

// Reorder moves an image to a new position, 1 being the cover
func (s *ImageService) Reorder(id uint, position int) (*ProductImage, error) {
	if position < 1 {
		return nil, ErrInvalidPosition
	}

	img, err := s.GetImage(id)
	if err != nil {
		return nil, err
	}

	if err := s.db.Model(img).Update("orden", position).Error; err != nil {
		return nil, fmt.Errorf("failed to reorder image: %w", err)
	}

	invalidateCatalog(s.cache)
	return s.GetImage(id)
}

// DeleteImage removes the image record and its file. The file being
// already gone is fine, the row being gone is not.
func (s *ImageService) DeleteImage(id uint) error {
	img, err := s.GetImage(id)
	if err != nil {
		return err
	}

	if err := s.db.Delete(img).Error; err != nil {
		return fmt.Errorf("failed to delete image record: %w", err)
	}
	if err := s.files.Delete(img.URL); err != nil {
		return err
	}

	invalidateCatalog(s.cache)
	return nil
}

func (s *ImageService) requireProduct(id uint) error {
	var count int64
	if err := s.db.Model(&Product{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check product: %w", err)
	}
	if count == 0 {
		return ErrNotFound
	}
	return nil
}
