// internal/domain/order/service.go
package order

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/your-org/hardware-store-backend/internal/config"
	"github.com/your-org/hardware-store-backend/internal/domain/cart"
	"github.com/your-org/hardware-store-backend/internal/domain/product"
	"github.com/your-org/hardware-store-backend/internal/domain/user"
	"gorm.io/gorm"
)

// Domain errors surfaced to the API layer.
var (
	ErrNotFound     = errors.New("order not found")
	ErrItemNotFound = errors.New("order item not found")
	ErrEmptyCart    = errors.New("the cart has no items to order")
)

// Service handles order business logic
type Service struct {
	db     *gorm.DB
	config *config.Config
}

// NewService creates a new order service
func NewService(db *gorm.DB, cfg *config.Config) *Service {
	return &Service{
		db:     db,
		config: cfg,
	}
}

// CreateRequest represents order creation data. Status defaults to
// pending and the date to now.
type CreateRequest struct {
	UserID             uint            `json:"idUsuario" binding:"required"`
	Total              decimal.Decimal `json:"montoTotal"`
	Status             string          `json:"estado"`
	ShippingAddress    string          `json:"direccionEnvio"`
	ShippingCity       string          `json:"ciudadEnvio"`
	ShippingCountry    string          `json:"paisEnvio"`
	ShippingPostalCode string          `json:"codigoPostalEnvio"`
}

// UpdateRequest represents order update data. Nil fields are left unchanged.
type UpdateRequest struct {
	Total              *decimal.Decimal `json:"montoTotal"`
	Status             *string          `json:"estado"`
	ShippingAddress    *string          `json:"direccionEnvio"`
	ShippingCity       *string          `json:"ciudadEnvio"`
	ShippingCountry    *string          `json:"paisEnvio"`
	ShippingPostalCode *string          `json:"codigoPostalEnvio"`
}

// ItemCreateRequest represents order item creation data
type ItemCreateRequest struct {
	OrderID   uint            `json:"idPedido" binding:"required"`
	ProductID uint            `json:"idProducto" binding:"required"`
	Quantity  int             `json:"cantidad"`
	UnitPrice decimal.Decimal `json:"precioUnitario"`
}

// ItemUpdateRequest represents order item update data
type ItemUpdateRequest struct {
	Quantity  *int             `json:"cantidad"`
	UnitPrice *decimal.Decimal `json:"precioUnitario"`
}

// CheckoutRequest carries the shipping data for an order built from a cart
type CheckoutRequest struct {
	ShippingAddress    string `json:"direccionEnvio"`
	ShippingCity       string `json:"ciudadEnvio"`
	ShippingCountry    string `json:"paisEnvio"`
	ShippingPostalCode string `json:"codigoPostalEnvio"`
}

// GetOrders retrieves all orders with their items
func (s *Service) GetOrders() ([]Order, error) {
	var orders []Order
	if err := s.db.Preload("Items").Order("id ASC").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve orders: %w", err)
	}
	return orders, nil
}

// GetOrder retrieves a single order by ID
func (s *Service) GetOrder(id uint) (*Order, error) {
	var o Order
	result := s.db.Preload("Items").Preload("Items.Product").Preload("User").Where("id = ?", id).First(&o)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to retrieve order: %w", result.Error)
	}
	return &o, nil
}

// GetOrdersByUser retrieves the orders of one user, newest first
func (s *Service) GetOrdersByUser(userID uint) ([]Order, error) {
	var count int64
	if err := s.db.Model(&user.User{}).Where("id = ?", userID).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to check user: %w", err)
	}
	if count == 0 {
		return nil, user.ErrNotFound
	}

	var orders []Order
	if err := s.db.Preload("Items").Where("id_usuario = ?", userID).
		Order("fecha_pedido DESC").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve orders: %w", err)
	}
	return orders, nil
}

// GetOrdersByStatus retrieves all orders in a given status
func (s *Service) GetOrdersByStatus(status string) ([]Order, error) {
	var orders []Order
	if err := s.db.Preload("Items").Where("estado = ?", status).
		Order("fecha_pedido DESC").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve orders: %w", err)
	}
	return orders, nil
}

// CreateOrder creates a new order
func (s *Service) CreateOrder(req *CreateRequest) (*Order, error) {
	var count int64
	if err := s.db.Model(&user.User{}).Where("id = ?", req.UserID).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to check user: %w", err)
	}
	if count == 0 {
		return nil, user.ErrNotFound
	}

	status := req.Status
	if status == "" {
		status = StatusPending
	}

	o := Order{
		UserID:             req.UserID,
		OrderDate:          time.Now().UTC(),
		Total:              req.Total,
		Status:             status,
		ShippingAddress:    req.ShippingAddress,
		ShippingCity:       req.ShippingCity,
		ShippingCountry:    req.ShippingCountry,
		ShippingPostalCode: req.ShippingPostalCode,
	}
	if err := s.db.Create(&o).Error; err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	return &o, nil
}

// UpdateOrder applies a partial update to an existing order
func (s *Service) UpdateOrder(id uint, req *UpdateRequest) (*Order, error) {
	o, err := s.GetOrder(id)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if req.Total != nil {
		updates["monto_total"] = *req.Total
	}
	if req.Status != nil {
		updates["estado"] = *req.Status
	}
	if req.ShippingAddress != nil {
		updates["direccion_envio"] = *req.ShippingAddress
	}
	if req.ShippingCity != nil {
		updates["ciudad_envio"] = *req.ShippingCity
	}
	if req.ShippingCountry != nil {
		updates["pais_envio"] = *req.ShippingCountry
	}
	if req.ShippingPostalCode != nil {
		updates["codigo_postal_envio"] = *req.ShippingPostalCode
	}

	if len(updates) > 0 {
		if err := s.db.Model(o).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update order: %w", err)
		}
	}

	return s.GetOrder(id)
}

// DeleteOrder removes an order and its items
func (s *Service) DeleteOrder(id uint) error {
	if _, err := s.GetOrder(id); err != nil {
		return err
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id_pedido = ?", id).Delete(&OrderItem{}).Error; err != nil {
			return fmt.Errorf("failed to delete order items: %w", err)
		}
		if err := tx.Where("id = ?", id).Delete(&Order{}).Error; err != nil {
			return fmt.Errorf("failed to delete order: %w", err)
		}
		return nil
	})
}

// GetItems retrieves all order items
func (s *Service) GetItems() ([]OrderItem, error) {
	var items []OrderItem
	if err := s.db.Order("id ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve order items: %w", err)
	}
	return items, nil
}

// GetItem retrieves a single order item by ID
func (s *Service) GetItem(id uint) (*OrderItem, error) {
	var item OrderItem
	result := s.db.Preload("Product").Where("id = ?", id).First(&item)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to retrieve order item: %w", result.Error)
	}
	return &item, nil
}

// GetItemsByOrder retrieves the items of one order
func (s *Service) GetItemsByOrder(orderID uint) ([]OrderItem, error) {
	if _, err := s.GetOrder(orderID); err != nil {
		return nil, err
	}
	var items []OrderItem
	if err := s.db.Preload("Product").Where("id_pedido = ?", orderID).
		Order("id ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve order items: %w", err)
	}
	return items, nil
}

// GetItemsByProduct retrieves every order line holding one product
func (s *Service) GetItemsByProduct(productID uint) ([]OrderItem, error) {
	var count int64
	if err := s.db.Model(&product.Product{}).Where("id = ?", productID).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to check product: %w", err)
	}
	if count == 0 {
		return nil, product.ErrNotFound
	}

	var items []OrderItem
	if err := s.db.Where("id_producto = ?", productID).Order("id ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve order items: %w", err)
	}
	return items, nil
}

// AddItem appends a line to an order. A zero unit price snapshots the
// product's current price.
func (s *Service) AddItem(req *ItemCreateRequest) (*OrderItem, error) {
	if _, err := s.GetOrder(req.OrderID); err != nil {
		return nil, err
	}

	var p product.Product
	if err := s.db.Where("id = ?", req.ProductID).First(&p).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, product.ErrNotFound
		}
		return nil, fmt.Errorf("failed to retrieve product: %w", err)
	}

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}
	unitPrice := req.UnitPrice
	if unitPrice.IsZero() {
		unitPrice = p.Price
	}

	item := OrderItem{
		OrderID:   req.OrderID,
		ProductID: req.ProductID,
		Quantity:  quantity,
		UnitPrice: unitPrice,
	}
	if err := s.db.Create(&item).Error; err != nil {
		return nil, fmt.Errorf("failed to create order item: %w", err)
	}
	return &item, nil
}

// UpdateItem applies a partial update to an order item
func (s *Service) UpdateItem(id uint, req *ItemUpdateRequest) (*OrderItem, error) {
	item, err := s.GetItem(id)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if req.Quantity != nil {
		updates["cantidad"] = *req.Quantity
	}
	if req.UnitPrice != nil {
		updates["precio_unitario"] = *req.UnitPrice
	}
	if len(updates) > 0 {
		if err := s.db.Model(item).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update order item: %w", err)
		}
	}

	return s.GetItem(id)
}

// RemoveItem deletes an order item by ID
func (s *Service) RemoveItem(id uint) error {
	result := s.db.Where("id = ?", id).Delete(&OrderItem{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete order item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrItemNotFound
	}
	return nil
}

// CheckoutFromCart turns a cart into a pending order: each cart line
// becomes an order line with the product's current price snapshotted,
// the total is the sum of the line subtotals, and the cart is emptied.
// All of it happens in one transaction.
func (s *Service) CheckoutFromCart(cartID uint, req *CheckoutRequest) (*Order, error) {
	var c cart.Cart
	if err := s.db.Where("id = ?", cartID).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, cart.ErrNotFound
		}
		return nil, fmt.Errorf("failed to retrieve cart: %w", err)
	}

	var items []cart.CartItem
	if err := s.db.Preload("Product").Where("id_carrito = ?", cartID).
		Order("id ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve cart items: %w", err)
	}
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	o := Order{
		UserID:    c.UserID,
		OrderDate: time.Now().UTC(),
		Status:    StatusPending,
	}
	if req != nil {
		o.ShippingAddress = req.ShippingAddress
		o.ShippingCity = req.ShippingCity
		o.ShippingCountry = req.ShippingCountry
		o.ShippingPostalCode = req.ShippingPostalCode
	}

	total := decimal.Zero
	orderItems := make([]OrderItem, 0, len(items))
	for i := range items {
		line := &items[i]
		if line.Product == nil {
			return nil, product.ErrNotFound
		}
		orderItems = append(orderItems, OrderItem{
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			UnitPrice: line.Product.Price,
		})
		total = total.Add(line.Product.Subtotal(line.Quantity))
	}
	o.Total = total

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&o).Error; err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}
		for i := range orderItems {
			orderItems[i].OrderID = o.ID
		}
		if err := tx.Create(&orderItems).Error; err != nil {
			return fmt.Errorf("failed to create order items: %w", err)
		}
		if err := tx.Where("id_carrito = ?", cartID).Delete(&cart.CartItem{}).Error; err != nil {
			return fmt.Errorf("failed to clear cart: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetOrder(o.ID)
}
