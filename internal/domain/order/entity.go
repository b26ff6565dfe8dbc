// internal/domain/order/entity.go
package order

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/your-org/hardware-store-backend/internal/domain/product"
	"github.com/your-org/hardware-store-backend/internal/domain/user"
)

// Order status values. New orders start as pending.
const (
	StatusPending   = "pendiente"
	StatusPaid      = "pagado"
	StatusShipped   = "enviado"
	StatusDelivered = "entregado"
	StatusCancelled = "cancelado"
)

// Order is a finalized purchase. Item prices are snapshotted at order time, so
// the order total is decoupled from later product price changes.
type Order struct {
	ID                 uint            `gorm:"primaryKey" json:"id"`
	UserID             uint            `gorm:"column:id_usuario;not null;index" json:"idUsuario"`
	OrderDate          time.Time       `gorm:"column:fecha_pedido" json:"fechaPedido"`
	Total              decimal.Decimal `gorm:"column:monto_total;type:numeric(10,2);not null" json:"montoTotal"`
	Status             string          `gorm:"column:estado;not null;size:50;default:'pendiente'" json:"estado"`
	ShippingAddress    string          `gorm:"column:direccion_envio;size:255" json:"direccionEnvio"`
	ShippingCity       string          `gorm:"column:ciudad_envio;size:100" json:"ciudadEnvio"`
	ShippingCountry    string          `gorm:"column:pais_envio;size:100" json:"paisEnvio"`
	ShippingPostalCode string          `gorm:"column:codigo_postal_envio;size:10" json:"codigoPostalEnvio"`

	// Relationships
	User  *user.User  `gorm:"foreignKey:UserID" json:"usuario,omitempty"`
	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items,omitempty"`
}

// OrderItem is one product line of an order with its unit price snapshot.
type OrderItem struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	OrderID   uint            `gorm:"column:id_pedido;not null;index" json:"idPedido"`
	ProductID uint            `gorm:"column:id_producto;not null;index" json:"idProducto"`
	Quantity  int             `gorm:"column:cantidad;not null" json:"cantidad"`
	UnitPrice decimal.Decimal `gorm:"column:precio_unitario;type:numeric(10,2);not null" json:"precioUnitario"`

	// Relationships
	Product *product.Product `gorm:"foreignKey:ProductID" json:"producto,omitempty"`
}

// TableName overrides
func (Order) TableName() string     { return "pedidos" }
func (OrderItem) TableName() string { return "items_pedido" }

// Subtotal returns quantity times the snapshotted unit price.
func (i *OrderItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
