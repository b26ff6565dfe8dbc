// internal/domain/product/entity.go
package product

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/your-org/hardware-store-backend/internal/domain/user"
)

// Product represents a catalog product. Prices are numeric(10,2), so money
// math keeps exact two-decimal semantics.
type Product struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Name        string          `gorm:"column:nombre;not null;size:255" json:"nombre"`
	Description string          `gorm:"column:descripcion;type:text" json:"descripcion"`
	Price       decimal.Decimal `gorm:"column:precio;type:numeric(10,2);not null" json:"precio"`
	Stock       int             `gorm:"column:stock;not null" json:"stock"`
	SKU         *string         `gorm:"column:sku;size:50;uniqueIndex" json:"sku,omitempty"`
	CategoryID  *uint           `gorm:"column:id_categoria;index" json:"idCategoria"`
	BrandID     *uint           `gorm:"column:id_marca;index" json:"idMarca"`
	CreatedAt   time.Time       `gorm:"column:creado_en" json:"creadoEn"`
	UpdatedAt   time.Time       `gorm:"column:actualizado_en" json:"actualizadoEn"`

	// Relationships
	Category *Category      `gorm:"foreignKey:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"categoria,omitempty"`
	Brand    *Brand         `gorm:"foreignKey:BrandID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"marca,omitempty"`
	Images   []ProductImage `gorm:"foreignKey:ProductID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"imagenes,omitempty"`
	Reviews  []Review       `gorm:"foreignKey:ProductID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"resenas,omitempty"`
}

// Category groups products
type Category struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"column:nombre;uniqueIndex;not null;size:100" json:"nombre"`
	Description string `gorm:"column:descripcion;type:text" json:"descripcion"`
}

// Brand is a product manufacturer
type Brand struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"column:nombre;uniqueIndex;not null;size:100" json:"nombre"`
}

// ProductImage is one stored image of a product. Position starts at 1 for the
// cover image and grows densely per product.
type ProductImage struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	ProductID uint   `gorm:"column:id_producto;not null;index" json:"idProducto"`
	URL       string `gorm:"column:url_imagen;size:255" json:"urlImagen"`
	Position  int    `gorm:"column:orden" json:"orden"`
}

// Review is a customer rating of a product, 0 to 5 inclusive.
type Review struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	ProductID uint      `gorm:"column:id_producto;not null;index" json:"idProducto"`
	UserID    uint      `gorm:"column:id_usuario;not null;index" json:"idUsuario"`
	Rating    int       `gorm:"column:calificacion;not null;default:0" json:"calificacion"`
	Comment   string    `gorm:"column:comentario;type:text" json:"comentario"`
	CreatedAt time.Time `gorm:"column:creado_en" json:"creadoEn"`

	// Relationships
	User *user.User `gorm:"foreignKey:UserID" json:"usuario,omitempty"`
}

// TableName overrides
func (Product) TableName() string      { return "productos" }
func (Category) TableName() string     { return "categorias" }
func (Brand) TableName() string        { return "marcas" }
func (ProductImage) TableName() string { return "producto_img" }
func (Review) TableName() string       { return "resenas" }

// Subtotal returns the line amount for the given quantity.
func (p *Product) Subtotal(quantity int) decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(quantity)))
}
