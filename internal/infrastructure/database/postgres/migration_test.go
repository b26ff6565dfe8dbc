package postgres

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/hardware-store-backend/internal/domain/product"
	"github.com/your-org/hardware-store-backend/internal/domain/user"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDatabase(t *testing.T) *Database {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return &Database{DB: db}
}

func TestMigrateAndSeed(t *testing.T) {
	d := testDatabase(t)

	require.NoError(t, d.Migrate())
	require.NoError(t, d.SeedInitialData())

	var admin user.User
	require.NoError(t, d.DB.Where("rol = ?", "admin").First(&admin).Error)
	assert.NotEmpty(t, admin.PasswordHash)

	// seeding twice does not duplicate rows
	require.NoError(t, d.SeedInitialData())
	var count int64
	require.NoError(t, d.DB.Model(&user.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestGetTableInfoCountsRows(t *testing.T) {
	d := testDatabase(t)
	require.NoError(t, d.Migrate())

	require.NoError(t, d.DB.Create(&product.Category{Name: "Herramientas"}).Error)
	require.NoError(t, d.DB.Create(&product.Brand{Name: "Stanley"}).Error)

	info, err := d.GetTableInfo()
	require.NoError(t, err)

	assert.Len(t, info, 10)
	assert.EqualValues(t, 1, info["categorias"])
	assert.EqualValues(t, 1, info["marcas"])
	assert.EqualValues(t, 0, info["productos"])
}
