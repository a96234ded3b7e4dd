package routes

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/shoplyne/catalog-api/internal/handlers"
	"github.com/shoplyne/catalog-api/internal/middleware"
)

// CORSMiddleware allows the configured frontend origin to call the API.
func CORSMiddleware() gin.HandlerFunc {
	origin := os.Getenv("ALLOWED_ORIGIN")
	if origin == "" {
		origin = "*"
	}

	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

func SetupRouter(h *handlers.Handlers) *gin.Engine {
	router := gin.Default()
	router.Use(CORSMiddleware())

	// --- Public Product Routes ---
	router.GET("/products", h.GetProducts)
	router.GET("/products/search", h.SearchProducts)
	router.GET("/products/category/:categoryId", h.GetProductsByCategory)
	router.POST("/products", h.CreateProduct)
	router.PUT("/products/:id", h.UpdateProduct)
	router.DELETE("/products/:id", h.DeleteProduct)

	// --- Category Routes ---
	router.GET("/categories", h.GetAllCategories)

	// --- Product Request Submission (Public) ---
	router.POST("/product-requests", h.CreateProductRequest)

	// --- Auth Routes ---
	router.POST("/auth/register", h.Register)
	router.POST("/auth/login", h.Login)

	// --- Admin-Only Moderation Routes ---
	admin := router.Group("/")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(middleware.AdminMiddleware(h.DB))
	{
		admin.GET("/product-requests", h.GetProductRequests)
		admin.PUT("/product-requests/:id", h.DecideProductRequest)
	}

	return router
}
