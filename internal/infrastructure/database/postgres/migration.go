// internal/infrastructure/database/postgres/migration.go
package postgres

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/your-org/hardware-store-backend/internal/domain/cart"
	"github.com/your-org/hardware-store-backend/internal/domain/order"
	"github.com/your-org/hardware-store-backend/internal/domain/product"
	"github.com/your-org/hardware-store-backend/internal/domain/user"
	"golang.org/x/crypto/bcrypt"
)

// Migrate runs the schema migrations. Parents first so the foreign
// keys can be created in a single pass.
func (d *Database) Migrate() error {
	logrus.Info("Running database migrations...")

	models := []interface{}{
		&user.User{},
		&product.Category{},
		&product.Brand{},
		&product.Product{},
		&product.ProductImage{},
		&product.Review{},
		&cart.Cart{},
		&cart.CartItem{},
		&order.Order{},
		&order.OrderItem{},
	}

	if err := d.DB.AutoMigrate(models...); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	logrus.Info("Database migrations completed")
	return nil
}

// CreateIndexes adds indexes gorm tags do not cover
func (d *Database) CreateIndexes() error {
	indexes := []string{
		"CREATE INDEX IF NOT EXISTS idx_productos_id_categoria ON productos(id_categoria)",
		"CREATE INDEX IF NOT EXISTS idx_productos_id_marca ON productos(id_marca)",
		"CREATE INDEX IF NOT EXISTS idx_producto_img_id_producto ON producto_img(id_producto)",
		"CREATE INDEX IF NOT EXISTS idx_resenas_id_producto ON resenas(id_producto)",
		"CREATE INDEX IF NOT EXISTS idx_items_carrito_id_carrito ON items_carrito(id_carrito)",
		"CREATE INDEX IF NOT EXISTS idx_pedidos_id_usuario ON pedidos(id_usuario)",
		"CREATE INDEX IF NOT EXISTS idx_pedidos_estado ON pedidos(estado)",
		"CREATE INDEX IF NOT EXISTS idx_items_pedido_id_pedido ON items_pedido(id_pedido)",
	}

	for _, idx := range indexes {
		if err := d.DB.Exec(idx).Error; err != nil {
			logrus.WithError(err).Warnf("Failed to create index: %s", idx)
		}
	}

	return nil
}

// SeedInitialData inserts an admin account and a starter catalog
// taxonomy when the tables are empty. Development convenience only.
func (d *Database) SeedInitialData() error {
	var count int64
	d.DB.Model(&user.User{}).Count(&count)
	if count == 0 {
		hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("failed to hash seed password: %w", err)
		}
		admin := user.User{
			FirstName:    "Admin",
			Email:        "admin@ferreteria.local",
			PasswordHash: string(hash),
			Role:         "admin",
		}
		if err := d.DB.Create(&admin).Error; err != nil {
			return fmt.Errorf("failed to seed admin user: %w", err)
		}
		logrus.Info("Seeded admin user")
	}

	d.DB.Model(&product.Category{}).Count(&count)
	if count == 0 {
		categories := []product.Category{
			{Name: "Herramientas manuales", Description: "Martillos, destornilladores y llaves"},
			{Name: "Herramientas eléctricas", Description: "Taladros, sierras y lijadoras"},
			{Name: "Pinturas", Description: "Pinturas, barnices y accesorios"},
		}
		if err := d.DB.Create(&categories).Error; err != nil {
			return fmt.Errorf("failed to seed categories: %w", err)
		}
		logrus.Info("Seeded product categories")
	}

	d.DB.Model(&product.Brand{}).Count(&count)
	if count == 0 {
		brands := []product.Brand{
			{Name: "Stanley"},
			{Name: "Bosch"},
			{Name: "Truper"},
		}
		if err := d.DB.Create(&brands).Error; err != nil {
			return fmt.Errorf("failed to seed brands: %w", err)
		}
		logrus.Info("Seeded brands")
	}

	return nil
}

// GetTableInfo reports row counts per table, logged at startup
func (d *Database) GetTableInfo() (map[string]int64, error) {
	tables := map[string]interface{}{
		"usuarios":      &user.User{},
		"categorias":    &product.Category{},
		"marcas":        &product.Brand{},
		"productos":     &product.Product{},
		"producto_img":  &product.ProductImage{},
		"resenas":       &product.Review{},
		"carrito":       &cart.Cart{},
		"items_carrito": &cart.CartItem{},
		"pedidos":       &order.Order{},
		"items_pedido":  &order.OrderItem{},
	}

	info := make(map[string]int64, len(tables))
	for name, model := range tables {
		var count int64
		if err := d.DB.Model(model).Count(&count).Error; err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", name, err)
		}
		info[name] = count
	}
	return info, nil
}
