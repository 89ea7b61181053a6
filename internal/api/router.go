package api

import (
	"net/http"

	"github.com/ItaloOlivier/shopcrypto/internal/category"
	"github.com/ItaloOlivier/shopcrypto/internal/metrics"
	"github.com/ItaloOlivier/shopcrypto/internal/middleware"
	"github.com/ItaloOlivier/shopcrypto/internal/order"
	"github.com/ItaloOlivier/shopcrypto/internal/product"
	"github.com/ItaloOlivier/shopcrypto/internal/user"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	users      user.Service
	products   product.Service
	categories category.Service
	orders     order.Service
	metrics    *metrics.Registry
}

func NewHandler(users user.Service, products product.Service, categories category.Service, orders order.Service, reg *metrics.Registry) *Handler {
	if reg == nil {
		reg = metrics.NewRegistry()
	}
	return &Handler{
		users:      users,
		products:   products,
		categories: categories,
		orders:     orders,
		metrics:    reg,
	}
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"counters": h.metrics.Snapshot(),
	})
}

// NewRouter assembles the HTTP surface: public storefront reads, order intake,
// auth, and the admin back office behind role checks.
func NewRouter(h *Handler, corsOrigin string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging())
	// Identity is attached before the limiter so authenticated traffic is
	// bucketed per user rather than per IP. Auth() on protected routes still
	// enforces the token.
	r.Use(middleware.OptionalAuth())
	r.Use(middleware.RateLimit())

	if corsOrigin == "" {
		corsOrigin = "http://localhost:3000"
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{corsOrigin},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		AllowCredentials: true,
	}))

	r.GET("/health", h.Health)

	auth := r.Group("/api/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
	}

	pub := r.Group("/api")
	{
		pub.GET("/products", h.ListProducts)
		pub.GET("/products/:slug", h.GetProduct)
		pub.GET("/categories", h.ListCategories)

		pub.POST("/orders", h.Checkout)
		pub.GET("/orders/:orderNumber", middleware.Auth(), h.GetOrder)
		pub.GET("/me/orders", middleware.Auth(), h.MyOrders)
	}

	admin := r.Group("/api/admin", middleware.Auth(), middleware.RequireAdmin())
	{
		admin.GET("/products", h.AdminListProducts)
		admin.POST("/products", h.AdminCreateProduct)
		admin.GET("/products/export", h.AdminExportProducts)
		admin.GET("/categories", h.AdminListCategories)
		admin.POST("/categories", h.AdminCreateCategory)
		admin.GET("/orders", h.AdminListOrders)
		admin.PATCH("/orders/:id/status", h.AdminUpdateOrderStatus)
	}

	return r
}
