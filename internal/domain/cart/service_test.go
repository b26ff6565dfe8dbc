package cart

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/hardware-store-backend/internal/config"
	"github.com/your-org/hardware-store-backend/internal/domain/product"
	"github.com/your-org/hardware-store-backend/internal/domain/user"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type fixture struct {
	db      *gorm.DB
	service *Service
	user    *user.User
	product *product.Product
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&user.User{}, &product.Category{}, &product.Brand{},
		&product.Product{}, &product.ProductImage{}, &Cart{}, &CartItem{},
	))

	u := user.User{FirstName: "Ana", Email: "ana@example.com"}
	require.NoError(t, db.Create(&u).Error)

	p := product.Product{
		Name:        "Martillo",
		Description: "Martillo de uña",
		Price:       decimal.RequireFromString("10.00"),
		Stock:       8,
	}
	require.NoError(t, db.Create(&p).Error)

	return &fixture{
		db:      db,
		service: NewService(db, &config.Config{}),
		user:    &u,
		product: &p,
	}
}

func (f *fixture) mustCreateCart(t *testing.T) *Cart {
	t.Helper()
	c, err := f.service.CreateCart(&CreateRequest{UserID: f.user.ID})
	require.NoError(t, err)
	return c
}

func TestCreateCartOnePerUser(t *testing.T) {
	f := newFixture(t)

	f.mustCreateCart(t)
	_, err := f.service.CreateCart(&CreateRequest{UserID: f.user.ID})
	assert.ErrorIs(t, err, ErrCartExists)

	_, err = f.service.CreateCart(&CreateRequest{UserID: 99})
	assert.ErrorIs(t, err, user.ErrNotFound)
}

func TestGetCartByUser(t *testing.T) {
	f := newFixture(t)
	c := f.mustCreateCart(t)

	found, err := f.service.GetCartByUser(f.user.ID)
	require.NoError(t, err)
	assert.Equal(t, c.ID, found.ID)

	_, err = f.service.GetCartByUser(99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAddItemDefaultsQuantityToOne(t *testing.T) {
	f := newFixture(t)
	c := f.mustCreateCart(t)

	item, err := f.service.AddItem(&ItemCreateRequest{CartID: c.ID, ProductID: f.product.ID})
	require.NoError(t, err)
	assert.Equal(t, 1, item.Quantity)
}

func TestAddItemMergesDuplicateProduct(t *testing.T) {
	f := newFixture(t)
	c := f.mustCreateCart(t)

	first, err := f.service.AddItem(&ItemCreateRequest{CartID: c.ID, ProductID: f.product.ID, Quantity: 2})
	require.NoError(t, err)

	merged, err := f.service.AddItem(&ItemCreateRequest{CartID: c.ID, ProductID: f.product.ID, Quantity: 3})
	require.NoError(t, err)
	assert.Equal(t, first.ID, merged.ID)
	assert.Equal(t, 5, merged.Quantity)

	items, err := f.service.GetItems()
	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestAddItemValidation(t *testing.T) {
	f := newFixture(t)
	c := f.mustCreateCart(t)

	_, err := f.service.AddItem(&ItemCreateRequest{CartID: 99, ProductID: f.product.ID})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = f.service.AddItem(&ItemCreateRequest{CartID: c.ID, ProductID: 99})
	assert.ErrorIs(t, err, product.ErrNotFound)

	_, err = f.service.AddItem(&ItemCreateRequest{CartID: c.ID, ProductID: f.product.ID, Quantity: -2})
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestUpdateItemQuantity(t *testing.T) {
	f := newFixture(t)
	c := f.mustCreateCart(t)

	item, err := f.service.AddItem(&ItemCreateRequest{CartID: c.ID, ProductID: f.product.ID})
	require.NoError(t, err)

	q := 4
	updated, err := f.service.UpdateItem(item.ID, &ItemUpdateRequest{Quantity: &q})
	require.NoError(t, err)
	assert.Equal(t, 4, updated.Quantity)

	zero := 0
	_, err = f.service.UpdateItem(item.ID, &ItemUpdateRequest{Quantity: &zero})
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestGetItemsWithDetailComputesSubtotal(t *testing.T) {
	f := newFixture(t)
	c := f.mustCreateCart(t)

	require.NoError(t, f.db.Create(&product.ProductImage{
		ProductID: f.product.ID, URL: "/uploads/portada.jpg", Position: 1,
	}).Error)
	require.NoError(t, f.db.Create(&product.ProductImage{
		ProductID: f.product.ID, URL: "/uploads/extra.jpg", Position: 2,
	}).Error)

	_, err := f.service.AddItem(&ItemCreateRequest{CartID: c.ID, ProductID: f.product.ID, Quantity: 3})
	require.NoError(t, err)

	details, err := f.service.GetItemsWithDetail(c.ID)
	require.NoError(t, err)
	require.Len(t, details, 1)

	d := details[0]
	assert.Equal(t, "Martillo", d.ProductName)
	assert.Equal(t, 3, d.Quantity)
	assert.True(t, d.Subtotal.Equal(decimal.RequireFromString("30.00")), "subtotal = %s", d.Subtotal)
	require.NotNil(t, d.CoverImage)
	assert.Equal(t, "/uploads/portada.jpg", *d.CoverImage)

	_, err = f.service.GetItemsWithDetail(99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteCartRemovesItems(t *testing.T) {
	f := newFixture(t)
	c := f.mustCreateCart(t)

	_, err := f.service.AddItem(&ItemCreateRequest{CartID: c.ID, ProductID: f.product.ID})
	require.NoError(t, err)

	require.NoError(t, f.service.DeleteCart(c.ID))
	assert.ErrorIs(t, f.service.DeleteCart(c.ID), ErrNotFound)

	items, err := f.service.GetItems()
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestRemoveItem(t *testing.T) {
	f := newFixture(t)
	c := f.mustCreateCart(t)

	item, err := f.service.AddItem(&ItemCreateRequest{CartID: c.ID, ProductID: f.product.ID})
	require.NoError(t, err)

	require.NoError(t, f.service.RemoveItem(item.ID))
	assert.ErrorIs(t, f.service.RemoveItem(item.ID), ErrItemNotFound)
}
