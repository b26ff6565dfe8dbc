// internal/interfaces/http/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/your-org/hardware-store-backend/internal/config"
	"github.com/your-org/hardware-store-backend/internal/domain/cart"
	"github.com/your-org/hardware-store-backend/internal/domain/order"
	"github.com/your-org/hardware-store-backend/internal/domain/product"
	"github.com/your-org/hardware-store-backend/internal/domain/user"
	"github.com/your-org/hardware-store-backend/internal/infrastructure/database/redis"
	"github.com/your-org/hardware-store-backend/internal/infrastructure/storage"
	"github.com/your-org/hardware-store-backend/internal/interfaces/http/handlers"
	"github.com/your-org/hardware-store-backend/internal/pkg/pdf"
	"gorm.io/gorm"
)

// Setup wires every API route. The redis client may be nil.
func Setup(router *gin.Engine, db *gorm.DB, cache *redis.Client, files *storage.LocalStorage, cfg *config.Config) error {
	pdfService, err := pdf.NewService(cfg)
	if err != nil {
		return err
	}

	var catalogCache product.Cache
	if cache != nil {
		catalogCache = cache
	}

	userService := user.NewService(db, cfg)
	productService := product.NewService(db, catalogCache, cfg)
	categoryService := product.NewCategoryService(db, cfg)
	brandService := product.NewBrandService(db, cfg)
	imageService := product.NewImageService(db, files, catalogCache, cfg)
	reviewService := product.NewReviewService(db, cfg)
	cartService := cart.NewService(db, cfg)
	orderService := order.NewService(db, cfg)

	userHandler := handlers.NewUserHandler(userService)
	productHandler := handlers.NewProductHandler(productService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	brandHandler := handlers.NewBrandHandler(brandService)
	imageHandler := handlers.NewProductImageHandler(imageService)
	reviewHandler := handlers.NewReviewHandler(reviewService)
	cartHandler := handlers.NewCartHandler(cartService)
	cartItemHandler := handlers.NewCartItemHandler(cartService)
	orderHandler := handlers.NewOrderHandler(orderService, pdfService)
	orderItemHandler := handlers.NewOrderItemHandler(orderService)

	api := router.Group("/api")

	usuarios := api.Group("/usuarios")
	{
		usuarios.GET("", userHandler.GetUsers)
		usuarios.GET("/:id", userHandler.GetUser)
		usuarios.GET("/email/:correo", userHandler.GetUserByEmail)
		usuarios.GET("/exists/:correo", userHandler.ExistsByEmail)
		usuarios.POST("", userHandler.CreateUser)
		usuarios.POST("/login", userHandler.Login)
		usuarios.PUT("/:id", userHandler.UpdateUser)
		usuarios.DELETE("/:id", userHandler.DeleteUser)
	}

	productos := api.Group("/productos")
	{
		productos.GET("", productHandler.GetProducts)
		productos.GET("/catalogo", productHandler.GetCatalog)
		productos.GET("/buscar", productHandler.SearchProducts)
		productos.GET("/sku/:sku", productHandler.GetProductBySKU)
		productos.GET("/categoria/:idCategoria", productHandler.GetProductsByCategory)
		productos.GET("/marca/:idMarca", productHandler.GetProductsByBrand)
		productos.GET("/:id", productHandler.GetProduct)
		productos.POST("", productHandler.CreateProduct)
		productos.PUT("/:id", productHandler.UpdateProduct)
		productos.DELETE("/:id", productHandler.DeleteProduct)
	}

	categorias := api.Group("/categorias")
	{
		categorias.GET("", categoryHandler.GetCategories)
		categorias.GET("/nombre/:nombre", categoryHandler.GetCategoryByName)
		categorias.GET("/:id", categoryHandler.GetCategory)
		categorias.POST("", categoryHandler.CreateCategory)
		categorias.PUT("/:id", categoryHandler.UpdateCategory)
		categorias.DELETE("/:id", categoryHandler.DeleteCategory)
	}

	marcas := api.Group("/marcas")
	{
		marcas.GET("", brandHandler.GetBrands)
		marcas.GET("/nombre/:nombre", brandHandler.GetBrandByName)
		marcas.GET("/:id", brandHandler.GetBrand)
		marcas.POST("", brandHandler.CreateBrand)
		marcas.PUT("/:id", brandHandler.UpdateBrand)
		marcas.DELETE("/:id", brandHandler.DeleteBrand)
	}

	imagenes := api.Group("/producto-imagenes")
	{
		imagenes.GET("", imageHandler.GetImages)
		imagenes.GET("/producto/:idProducto", imageHandler.GetImagesByProduct)
		imagenes.GET("/:id", imageHandler.GetImage)
		imagenes.POST("/producto/:idProducto", imageHandler.Upload)
		imagenes.PATCH("/:id/orden", imageHandler.Reorder)
		imagenes.DELETE("/:id", imageHandler.DeleteImage)
	}

	resenas := api.Group("/resenas")
	{
		resenas.GET("", reviewHandler.GetReviews)
		resenas.GET("/producto/:idProducto", reviewHandler.GetReviewsByProduct)
		resenas.GET("/usuario/:idUsuario", reviewHandler.GetReviewsByUser)
		resenas.GET("/calificacion/:calificacion", reviewHandler.GetReviewsByRating)
		resenas.GET("/:id", reviewHandler.GetReview)
		resenas.POST("", reviewHandler.CreateReview)
		resenas.PUT("/:id", reviewHandler.UpdateReview)
		resenas.DELETE("/:id", reviewHandler.DeleteReview)
	}

	carritos := api.Group("/carritos")
	{
		carritos.GET("", cartHandler.GetCarts)
		carritos.GET("/usuario/:idUsuario", cartHandler.GetCartByUser)
		carritos.GET("/:id", cartHandler.GetCart)
		carritos.POST("", cartHandler.CreateCart)
		carritos.DELETE("/:id", cartHandler.DeleteCart)
	}

	itemsCarrito := api.Group("/items-carrito")
	{
		itemsCarrito.GET("", cartItemHandler.GetItems)
		itemsCarrito.GET("/carrito/:idCarrito", cartItemHandler.GetItemsWithDetail)
		itemsCarrito.GET("/producto/:idProducto", cartItemHandler.GetItemsByProduct)
		itemsCarrito.GET("/:id", cartItemHandler.GetItem)
		itemsCarrito.POST("", cartItemHandler.AddItem)
		itemsCarrito.PUT("/:id", cartItemHandler.UpdateItem)
		itemsCarrito.DELETE("/carrito/:idCarrito", cartItemHandler.ClearCart)
		itemsCarrito.DELETE("/:id", cartItemHandler.RemoveItem)
	}

	pedidos := api.Group("/pedidos")
	{
		pedidos.GET("", orderHandler.GetOrders)
		pedidos.GET("/usuario/:idUsuario", orderHandler.GetOrdersByUser)
		pedidos.GET("/estado/:estado", orderHandler.GetOrdersByStatus)
		pedidos.GET("/:id", orderHandler.GetOrder)
		pedidos.GET("/:id/factura", orderHandler.Invoice)
		pedidos.POST("", orderHandler.CreateOrder)
		pedidos.POST("/desde-carrito/:idCarrito", orderHandler.CheckoutFromCart)
		pedidos.PUT("/:id", orderHandler.UpdateOrder)
		pedidos.DELETE("/:id", orderHandler.DeleteOrder)
	}

	itemsPedido := api.Group("/items-pedido")
	{
		itemsPedido.GET("", orderItemHandler.GetItems)
		itemsPedido.GET("/pedido/:idPedido", orderItemHandler.GetItemsByOrder)
		itemsPedido.GET("/producto/:idProducto", orderItemHandler.GetItemsByProduct)
		itemsPedido.GET("/:id", orderItemHandler.GetItem)
		itemsPedido.POST("", orderItemHandler.AddItem)
		itemsPedido.PUT("/:id", orderItemHandler.UpdateItem)
		itemsPedido.DELETE("/:id", orderItemHandler.RemoveItem)
	}

	return nil
}
