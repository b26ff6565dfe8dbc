package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/hardware-store-backend/internal/config"
	"github.com/your-org/hardware-store-backend/internal/domain/cart"
	"github.com/your-org/hardware-store-backend/internal/domain/order"
	"github.com/your-org/hardware-store-backend/internal/domain/product"
	"github.com/your-org/hardware-store-backend/internal/domain/user"
	"github.com/your-org/hardware-store-backend/internal/infrastructure/storage"
	"github.com/your-org/hardware-store-backend/internal/interfaces/http/routes"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&user.User{}, &product.Category{}, &product.Brand{},
		&product.Product{}, &product.ProductImage{}, &product.Review{},
		&cart.Cart{}, &cart.CartItem{}, &order.Order{}, &order.OrderItem{},
	))

	cfg := &config.Config{}
	cfg.Security.BcryptCost = bcrypt.MinCost
	cfg.Storage.UploadDir = t.TempDir()
	cfg.Storage.URLPrefix = "/uploads"
	cfg.Upload.MaxSize = 1 << 20
	cfg.Upload.AllowedExtensions = []string{"jpg", "png"}

	files, err := storage.NewLocal(cfg)
	require.NoError(t, err)

	router := gin.New()
	require.NoError(t, routes.Setup(router, db, nil, files, cfg))
	return router
}

func do(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestMissingResourceAnswers404WithEmptyBody(t *testing.T) {
	router := setupRouter(t)

	for _, path := range []string{
		"/api/usuarios/99",
		"/api/productos/99",
		"/api/categorias/99",
		"/api/marcas/99",
		"/api/producto-imagenes/99",
		"/api/resenas/99",
		"/api/carritos/99",
		"/api/items-carrito/99",
		"/api/pedidos/99",
		"/api/items-pedido/99",
	} {
		w := do(router, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusNotFound, w.Code, path)
		assert.Empty(t, w.Body.String(), path)
	}
}

func TestUserLifecycleOverHTTP(t *testing.T) {
	router := setupRouter(t)

	w := do(router, http.MethodPost, "/api/usuarios", gin.H{
		"nombre":            "Ana",
		"correoElectronico": "ana@example.com",
		"contrasena":        "secreto",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "ana@example.com", created["correoElectronico"])
	// the password hash never leaves the API
	assert.NotContains(t, w.Body.String(), "hash")

	// duplicate email
	w = do(router, http.MethodPost, "/api/usuarios", gin.H{
		"nombre":            "Otra",
		"correoElectronico": "ana@example.com",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "error")

	// natural key lookup
	w = do(router, http.MethodGet, "/api/usuarios/email/ana@example.com", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// login
	w = do(router, http.MethodPost, "/api/usuarios/login", gin.H{
		"correoElectronico": "ana@example.com",
		"contrasena":        "secreto",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)

	w = do(router, http.MethodPost, "/api/usuarios/login", gin.H{
		"correoElectronico": "ana@example.com",
		"contrasena":        "mal",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// delete and verify 204 then 404
	id := int(created["id"].(float64))
	w = do(router, http.MethodDelete, "/api/usuarios/"+strconv.Itoa(id), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = do(router, http.MethodDelete, "/api/usuarios/"+strconv.Itoa(id), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProductValidationOverHTTP(t *testing.T) {
	router := setupRouter(t)

	w := do(router, http.MethodPost, "/api/productos", gin.H{
		"nombre": "Martillo",
		"precio": "9.90",
		"sku":    "MART-001",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(router, http.MethodPost, "/api/productos", gin.H{
		"nombre": "Copia",
		"precio": "8.00",
		"sku":    "MART-001",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(router, http.MethodGet, "/api/productos/sku/MART-001", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(router, http.MethodGet, "/api/productos/categoria/99", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, w.Body.String())
}

func TestReviewRatingOverHTTP(t *testing.T) {
	router := setupRouter(t)

	w := do(router, http.MethodPost, "/api/usuarios", gin.H{
		"nombre": "Ana", "correoElectronico": "ana@example.com",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	w = do(router, http.MethodPost, "/api/productos", gin.H{
		"nombre": "Martillo", "precio": "9.90",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(router, http.MethodPost, "/api/resenas", gin.H{
		"idProducto": 1, "idUsuario": 1, "calificacion": 6,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(router, http.MethodPost, "/api/resenas", gin.H{
		"idProducto": 1, "idUsuario": 1, "calificacion": 5, "comentario": "Excelente",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestCartCheckoutOverHTTP(t *testing.T) {
	router := setupRouter(t)

	require.Equal(t, http.StatusCreated, do(router, http.MethodPost, "/api/usuarios", gin.H{
		"nombre": "Ana", "correoElectronico": "ana@example.com",
	}).Code)
	require.Equal(t, http.StatusCreated, do(router, http.MethodPost, "/api/productos", gin.H{
		"nombre": "Martillo", "precio": "10.00", "stock": 5,
	}).Code)
	require.Equal(t, http.StatusCreated, do(router, http.MethodPost, "/api/carritos", gin.H{
		"idUsuario": 1,
	}).Code)
	require.Equal(t, http.StatusCreated, do(router, http.MethodPost, "/api/items-carrito", gin.H{
		"idCarrito": 1, "idProducto": 1, "cantidad": 3,
	}).Code)

	// detail view carries the computed subtotal
	w := do(router, http.MethodGet, "/api/items-carrito/carrito/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"subtotal":"30"`)

	w = do(router, http.MethodPost, "/api/pedidos/desde-carrito/1", nil)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"estado":"pendiente"`)

	// checking out an emptied cart fails
	w = do(router, http.MethodPost, "/api/pedidos/desde-carrito/1", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

