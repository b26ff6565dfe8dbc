// internal/domain/cart/service.go
package cart

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/your-org/hardware-store-backend/internal/config"
	"github.com/your-org/hardware-store-backend/internal/domain/product"
	"github.com/your-org/hardware-store-backend/internal/domain/user"
	"gorm.io/gorm"
)

// Domain errors surfaced to the API layer.
var (
	ErrNotFound        = errors.New("cart not found")
	ErrItemNotFound    = errors.New("cart item not found")
	ErrCartExists      = errors.New("the user already has a cart")
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
)

// Service handles shopping cart business logic
type Service struct {
	db     *gorm.DB
	config *config.Config
}

// NewService creates a new cart service
func NewService(db *gorm.DB, cfg *config.Config) *Service {
	return &Service{
		db:     db,
		config: cfg,
	}
}

// CreateRequest represents cart creation data
type CreateRequest struct {
	UserID uint `json:"idUsuario" binding:"required"`
}

// ItemCreateRequest represents cart item creation data. A missing
// quantity means one unit.
type ItemCreateRequest struct {
	CartID    uint `json:"idCarrito" binding:"required"`
	ProductID uint `json:"idProducto" binding:"required"`
	Quantity  int  `json:"cantidad"`
}

// ItemUpdateRequest represents cart item update data
type ItemUpdateRequest struct {
	Quantity *int `json:"cantidad"`
}

// ItemDetail is a cart line joined with its product: what the
// storefront renders per row, including the running subtotal.
type ItemDetail struct {
	ID                 uint            `json:"id"`
	CartID             uint            `json:"idCarrito"`
	ProductID          uint            `json:"idProducto"`
	ProductName        string          `json:"nombreProducto"`
	ProductDescription string          `json:"descripcionProducto"`
	ProductPrice       decimal.Decimal `json:"precioProducto"`
	ProductStock       int             `json:"stockProducto"`
	ProductSKU         *string         `json:"skuProducto"`
	Quantity           int             `json:"cantidad"`
	CoverImage         *string         `json:"imagenPortada"`
	Subtotal           decimal.Decimal `json:"subtotal"`
}

// GetCarts retrieves all carts with their items
func (s *Service) GetCarts() ([]Cart, error) {
	var carts []Cart
	if err := s.db.Preload("Items").Order("id ASC").Find(&carts).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve carts: %w", err)
	}
	return carts, nil
}

// GetCart retrieves a single cart by ID
func (s *Service) GetCart(id uint) (*Cart, error) {
	var c Cart
	result := s.db.Preload("Items").Where("id = ?", id).First(&c)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to retrieve cart: %w", result.Error)
	}
	return &c, nil
}

// GetCartByUser retrieves the cart of one user
func (s *Service) GetCartByUser(userID uint) (*Cart, error) {
	var c Cart
	result := s.db.Preload("Items").Where("id_usuario = ?", userID).First(&c)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to retrieve cart: %w", result.Error)
	}
	return &c, nil
}

// CreateCart creates a cart for a user. Each user has at most one.
func (s *Service) CreateCart(req *CreateRequest) (*Cart, error) {
	var count int64
	if err := s.db.Model(&user.User{}).Where("id = ?", req.UserID).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to check user: %w", err)
	}
	if count == 0 {
		return nil, user.ErrNotFound
	}

	if err := s.db.Model(&Cart{}).Where("id_usuario = ?", req.UserID).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to check cart: %w", err)
	}
	if count > 0 {
		return nil, ErrCartExists
	}

	c := Cart{
		UserID:    req.UserID,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.db.Create(&c).Error; err != nil {
		return nil, fmt.Errorf("failed to create cart: %w", err)
	}
	return &c, nil
}

// DeleteCart removes a cart and its items
func (s *Service) DeleteCart(id uint) error {
	if _, err := s.GetCart(id); err != nil {
		return err
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id_carrito = ?", id).Delete(&CartItem{}).Error; err != nil {
			return fmt.Errorf("failed to delete cart items: %w", err)
		}
		if err := tx.Where("id = ?", id).Delete(&Cart{}).Error; err != nil {
			return fmt.Errorf("failed to delete cart: %w", err)
		}
		return nil
	})
}

// GetItems retrieves all cart items
func (s *Service) GetItems() ([]CartItem, error) {
	var items []CartItem
	if err := s.db.Order("id ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve cart items: %w", err)
	}
	return items, nil
}

// GetItemsByProduct retrieves every cart line holding one product
func (s *Service) GetItemsByProduct(productID uint) ([]CartItem, error) {
	var count int64
	if err := s.db.Model(&product.Product{}).Where("id = ?", productID).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to check product: %w", err)
	}
	if count == 0 {
		return nil, product.ErrNotFound
	}

	var items []CartItem
	if err := s.db.Where("id_producto = ?", productID).Order("id ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve cart items: %w", err)
	}
	return items, nil
}

// GetItem retrieves a single cart item by ID
func (s *Service) GetItem(id uint) (*CartItem, error) {
	var item CartItem
	result := s.db.Where("id = ?", id).First(&item)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to retrieve cart item: %w", result.Error)
	}
	return &item, nil
}

// AddItem puts a product in a cart. Adding a product already in the
// cart bumps its quantity instead of creating a second row.
func (s *Service) AddItem(req *ItemCreateRequest) (*CartItem, error) {
	if _, err := s.GetCart(req.CartID); err != nil {
		return nil, err
	}
	var count int64
	if err := s.db.Model(&product.Product{}).Where("id = ?", req.ProductID).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to check product: %w", err)
	}
	if count == 0 {
		return nil, product.ErrNotFound
	}

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	var existing CartItem
	err := s.db.Where("id_carrito = ? AND id_producto = ?", req.CartID, req.ProductID).First(&existing).Error
	if err == nil {
		if err := s.db.Model(&existing).Update("cantidad", existing.Quantity+quantity).Error; err != nil {
			return nil, fmt.Errorf("failed to update cart item: %w", err)
		}
		return s.GetItem(existing.ID)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check cart item: %w", err)
	}

	item := CartItem{
		CartID:    req.CartID,
		ProductID: req.ProductID,
		Quantity:  quantity,
	}
	if err := s.db.Create(&item).Error; err != nil {
		return nil, fmt.Errorf("failed to create cart item: %w", err)
	}
	return &item, nil
}

// UpdateItem applies a partial update to a cart item
func (s *Service) UpdateItem(id uint, req *ItemUpdateRequest) (*CartItem, error) {
	item, err := s.GetItem(id)
	if err != nil {
		return nil, err
	}

	if req.Quantity != nil {
		if *req.Quantity < 1 {
			return nil, ErrInvalidQuantity
		}
		if err := s.db.Model(item).Update("cantidad", *req.Quantity).Error; err != nil {
			return nil, fmt.Errorf("failed to update cart item: %w", err)
		}
	}

	return s.GetItem(id)
}

// RemoveItem deletes a cart item by ID
func (s *Service) RemoveItem(id uint) error {
	result := s.db.Where("id = ?", id).Delete(&CartItem{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete cart item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrItemNotFound
	}
	return nil
}

// ClearCart removes every item from a cart
func (s *Service) ClearCart(cartID uint) error {
	if _, err := s.GetCart(cartID); err != nil {
		return err
	}
	if err := s.db.Where("id_carrito = ?", cartID).Delete(&CartItem{}).Error; err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}

// GetItemsWithDetail builds the cart view for one cart: each item
// joined with its product, cover image and line subtotal.
func (s *Service) GetItemsWithDetail(cartID uint) ([]ItemDetail, error) {
	if _, err := s.GetCart(cartID); err != nil {
		return nil, err
	}

	var items []CartItem
	if err := s.db.
		Preload("Product").
		Preload("Product.Images", func(db *gorm.DB) *gorm.DB { return db.Order("orden ASC") }).
		Where("id_carrito = ?", cartID).Order("id ASC").
		Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve cart items: %w", err)
	}

	details := make([]ItemDetail, 0, len(items))
	for i := range items {
		item := &items[i]
		d := ItemDetail{
			ID:        item.ID,
			CartID:    item.CartID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		}
		if p := item.Product; p != nil {
			d.ProductName = p.Name
			d.ProductDescription = p.Description
			d.ProductPrice = p.Price
			d.ProductStock = p.Stock
			d.ProductSKU = p.SKU
			d.Subtotal = p.Subtotal(item.Quantity)
			if cover := product.CoverImage(p.Images); cover != nil {
				d.CoverImage = &cover.URL
			}
		}
		details = append(details, d)
	}

	return details, nil
}
