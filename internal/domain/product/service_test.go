package product

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/hardware-store-backend/internal/config"
	"github.com/your-org/hardware-store-backend/internal/domain/user"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&user.User{}, &Category{}, &Brand{}, &Product{}, &ProductImage{}, &Review{},
	))
	return db
}

func mustCreateProduct(t *testing.T, s *Service, req *CreateRequest) *Product {
	t.Helper()
	p, err := s.CreateProduct(req)
	require.NoError(t, err)
	return p
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCategoryNameUniqueness(t *testing.T) {
	db := testDB(t)
	s := NewCategoryService(db, &config.Config{})

	created, err := s.CreateCategory(&CategoryCreateRequest{Name: "Pinturas"})
	require.NoError(t, err)

	_, err = s.CreateCategory(&CategoryCreateRequest{Name: "Pinturas"})
	assert.ErrorIs(t, err, ErrCategoryNameTaken)

	byName, err := s.GetCategoryByName("Pinturas")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byName.ID)

	_, err = s.GetCategoryByName("Clavos")
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestBrandNameUniqueness(t *testing.T) {
	db := testDB(t)
	s := NewBrandService(db, &config.Config{})

	_, err := s.CreateBrand(&BrandCreateRequest{Name: "Stanley"})
	require.NoError(t, err)

	_, err = s.CreateBrand(&BrandCreateRequest{Name: "Stanley"})
	assert.ErrorIs(t, err, ErrBrandNameTaken)

	assert.ErrorIs(t, s.DeleteBrand(42), ErrBrandNotFound)
}

func TestCreateProductSKUUniqueness(t *testing.T) {
	db := testDB(t)
	s := NewService(db, nil, &config.Config{})

	sku := "MART-001"
	mustCreateProduct(t, s, &CreateRequest{Name: "Martillo", Price: price("9.90"), SKU: &sku})

	_, err := s.CreateProduct(&CreateRequest{Name: "Otro martillo", Price: price("8.50"), SKU: &sku})
	assert.ErrorIs(t, err, ErrSKUTaken)

	// products without SKU never conflict with each other
	mustCreateProduct(t, s, &CreateRequest{Name: "Clavos", Price: price("1.20")})
	mustCreateProduct(t, s, &CreateRequest{Name: "Tornillos", Price: price("1.50")})
}

func TestCreateProductChecksParents(t *testing.T) {
	db := testDB(t)
	s := NewService(db, nil, &config.Config{})

	missing := uint(99)
	_, err := s.CreateProduct(&CreateRequest{Name: "Taladro", Price: price("120.00"), CategoryID: &missing})
	assert.ErrorIs(t, err, ErrCategoryNotFound)

	_, err = s.CreateProduct(&CreateRequest{Name: "Taladro", Price: price("120.00"), BrandID: &missing})
	assert.ErrorIs(t, err, ErrBrandNotFound)
}

func TestUpdateProductIsPartial(t *testing.T) {
	db := testDB(t)
	s := NewService(db, nil, &config.Config{})

	p := mustCreateProduct(t, s, &CreateRequest{
		Name:        "Sierra",
		Description: "Sierra circular",
		Price:       price("199.90"),
		Stock:       5,
	})

	stock := 12
	updated, err := s.UpdateProduct(p.ID, &UpdateRequest{Stock: &stock})
	require.NoError(t, err)

	assert.Equal(t, 12, updated.Stock)
	assert.Equal(t, "Sierra", updated.Name)
	assert.True(t, updated.Price.Equal(price("199.90")))
}

func TestGetProductsByCategoryRequiresCategory(t *testing.T) {
	db := testDB(t)
	categories := NewCategoryService(db, &config.Config{})
	s := NewService(db, nil, &config.Config{})

	c, err := categories.CreateCategory(&CategoryCreateRequest{Name: "Herramientas"})
	require.NoError(t, err)

	mustCreateProduct(t, s, &CreateRequest{Name: "Martillo", Price: price("9.90"), CategoryID: &c.ID})
	mustCreateProduct(t, s, &CreateRequest{Name: "Brocha", Price: price("3.50")})

	list, err := s.GetProductsByCategory(c.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "Martillo", list[0].Name)

	_, err = s.GetProductsByCategory(99)
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestSearchProductsIsCaseInsensitive(t *testing.T) {
	db := testDB(t)
	s := NewService(db, nil, &config.Config{})

	mustCreateProduct(t, s, &CreateRequest{Name: "Martillo de uña", Price: price("9.90")})
	mustCreateProduct(t, s, &CreateRequest{Name: "Taladro", Price: price("120.00")})

	found, err := s.SearchProducts("MARTILLO")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Martillo de uña", found[0].Name)

	none, err := s.SearchProducts("lijadora")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestGetCatalogIncludesNamesAndCover(t *testing.T) {
	db := testDB(t)
	categories := NewCategoryService(db, &config.Config{})
	brands := NewBrandService(db, &config.Config{})
	s := NewService(db, nil, &config.Config{})

	c, err := categories.CreateCategory(&CategoryCreateRequest{Name: "Herramientas"})
	require.NoError(t, err)
	b, err := brands.CreateBrand(&BrandCreateRequest{Name: "Truper"})
	require.NoError(t, err)

	p := mustCreateProduct(t, s, &CreateRequest{
		Name: "Martillo", Price: price("9.90"), CategoryID: &c.ID, BrandID: &b.ID,
	})

	// two images, the later upload reordered in front
	require.NoError(t, db.Create(&ProductImage{ProductID: p.ID, URL: "/uploads/a.jpg", Position: 2}).Error)
	require.NoError(t, db.Create(&ProductImage{ProductID: p.ID, URL: "/uploads/b.jpg", Position: 1}).Error)

	catalog, err := s.GetCatalog(context.Background())
	require.NoError(t, err)
	require.Len(t, catalog, 1)

	d := catalog[0]
	assert.Equal(t, "Martillo", d.Name)
	require.NotNil(t, d.CategoryName)
	assert.Equal(t, "Herramientas", *d.CategoryName)
	require.NotNil(t, d.BrandName)
	assert.Equal(t, "Truper", *d.BrandName)
	require.NotNil(t, d.CoverImage)
	assert.Equal(t, "/uploads/b.jpg", *d.CoverImage)
}

func TestDeleteProduct(t *testing.T) {
	db := testDB(t)
	s := NewService(db, nil, &config.Config{})

	p := mustCreateProduct(t, s, &CreateRequest{Name: "Martillo", Price: price("9.90")})
	require.NoError(t, s.DeleteProduct(p.ID))
	assert.ErrorIs(t, s.DeleteProduct(p.ID), ErrNotFound)
}
