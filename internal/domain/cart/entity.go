// internal/domain/cart/entity.go
package cart

import (
	"time"

	"github.com/your-org/hardware-store-backend/internal/domain/product"
	"github.com/your-org/hardware-store-backend/internal/domain/user"
)

// Cart is a user's open shopping cart. A user has at most one.
type Cart struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"column:id_usuario;uniqueIndex" json:"idUsuario"`
	CreatedAt time.Time `gorm:"column:creado_en" json:"creadoEn"`

	// Relationships
	User  *user.User `gorm:"foreignKey:UserID" json:"usuario,omitempty"`
	Items []CartItem `gorm:"foreignKey:CartID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items,omitempty"`
}

// CartItem is one product line inside a cart. Quantity is at least 1.
type CartItem struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	CartID    uint `gorm:"column:id_carrito;not null;index" json:"idCarrito"`
	ProductID uint `gorm:"column:id_producto;not null;index" json:"idProducto"`
	Quantity  int  `gorm:"column:cantidad;not null;default:1" json:"cantidad"`

	// Relationships
	Product *product.Product `gorm:"foreignKey:ProductID" json:"producto,omitempty"`
}

// TableName overrides
func (Cart) TableName() string     { return "carrito" }
func (CartItem) TableName() string { return "items_carrito" }
