package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/quickcart/commerce-platform/internal/api/handler"
	"github.com/quickcart/commerce-platform/internal/api/middleware"
	"github.com/quickcart/commerce-platform/internal/auth"
	"github.com/quickcart/commerce-platform/internal/core/domain"
	"github.com/quickcart/commerce-platform/internal/core/service"
	"github.com/quickcart/commerce-platform/internal/infrastructure/config"
	mongodb "github.com/quickcart/commerce-platform/internal/infrastructure/db/mongo"
	redisdb "github.com/quickcart/commerce-platform/internal/infrastructure/db/redis"
)

// newEcho builds an Echo instance with the middleware, error handler,
// validator, and operational routes shared by every service.
func newEcho(subsystem string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware(subsystem))

	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/health", handler.NewHealthHandler().Liveness)

	return e
}

// NewUserRouter wires the user service: registration, login, and the
// admin-only user management endpoints.
func NewUserRouter(db *mongo.Database, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := newEcho("user_service", log)

	userRepo := mongodb.NewUserRepository(db)
	issuer := auth.NewIssuer(cfg.JWTSecret, cfg.TokenTTL)
	verifier := auth.NewVerifier(cfg.JWTSecret)

	authHandler := handler.NewAuthHandler(service.NewAuthService(userRepo, issuer))
	userHandler := handler.NewUserHandler(service.NewUserService(userRepo))

	e.GET("/health/ready", handler.NewReadinessHandler(db, nil).Readiness)

	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	users := e.Group("/users", middleware.Authenticate(verifier), middleware.RequireRole(domain.RoleAdmin))
	users.GET("", userHandler.List)
	users.GET("/:id", userHandler.Get)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)

	return e
}

// NewProductRouter wires the product service: public catalog reads (a
// presented token is still verified) and admin-only writes.
func NewProductRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := newEcho("product_service", log)

	productRepo := mongodb.NewProductRepository(db)
	var cache service.ProductCache
	if rdb != nil {
		cache = redisdb.NewProductCache(rdb, log)
	}
	productHandler := handler.NewProductHandler(service.NewProductService(productRepo, cache, log))
	verifier := auth.NewVerifier(cfg.JWTSecret)

	e.GET("/health/ready", handler.NewReadinessHandler(db, rdb).Readiness)

	products := e.Group("/products")
	products.GET("", productHandler.List, middleware.OptionalAuthenticate(verifier))
	products.GET("/:id", productHandler.Get, middleware.OptionalAuthenticate(verifier))

	admin := products.Group("", middleware.Authenticate(verifier), middleware.RequireRole(domain.RoleAdmin))
	admin.POST("", productHandler.Create)
	admin.PUT("/:id", productHandler.Update)
	admin.DELETE("/:id", productHandler.Delete)

	return e
}

// NewOrderRouter wires the order service: any authenticated user may place
// an order, everything else is admin only.
func NewOrderRouter(db *mongo.Database, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := newEcho("order_service", log)

	orderRepo := mongodb.NewOrderRepository(db)
	orderHandler := handler.NewOrderHandler(service.NewOrderService(orderRepo, log))
	verifier := auth.NewVerifier(cfg.JWTSecret)

	e.GET("/health/ready", handler.NewReadinessHandler(db, nil).Readiness)

	orders := e.Group("/orders", middleware.Authenticate(verifier))
	orders.POST("", orderHandler.Create)

	admin := orders.Group("", middleware.RequireRole(domain.RoleAdmin))
	admin.GET("", orderHandler.List)
	admin.GET("/:id", orderHandler.Get)
	admin.PUT("/:id", orderHandler.Update)
	admin.DELETE("/:id", orderHandler.Delete)

	return e
}

// NewInventoryRouter wires the inventory service: per-product stock reads are
// public, all record management is admin only.
func NewInventoryRouter(db *mongo.Database, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := newEcho("inventory_service", log)

	inventoryRepo := mongodb.NewInventoryRepository(db)
	inventoryHandler := handler.NewInventoryHandler(service.NewInventoryService(inventoryRepo))
	verifier := auth.NewVerifier(cfg.JWTSecret)

	e.GET("/health/ready", handler.NewReadinessHandler(db, nil).Readiness)

	e.GET("/inventory/:productId", inventoryHandler.GetByProduct)

	admin := e.Group("/inventory", middleware.Authenticate(verifier), middleware.RequireRole(domain.RoleAdmin))
	admin.GET("", inventoryHandler.List)
	admin.POST("", inventoryHandler.Create)
	admin.PUT("/:productId", inventoryHandler.Update)
	admin.DELETE("/:productId", inventoryHandler.Delete)

	return e
}
