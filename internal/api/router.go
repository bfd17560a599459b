package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ajaykumar8188/lubes-management/internal/api/handler"
	"github.com/ajaykumar8188/lubes-management/internal/api/middleware"
	"github.com/ajaykumar8188/lubes-management/internal/core/access"
	"github.com/ajaykumar8188/lubes-management/internal/core/domain"
	"github.com/ajaykumar8188/lubes-management/internal/core/service"
	mongodb "github.com/ajaykumar8188/lubes-management/internal/infrastructure/db/mongo"
	redisdb "github.com/ajaykumar8188/lubes-management/internal/infrastructure/db/redis"
)

// Options carries the tunables the router needs beyond its datastores.
type Options struct {
	JWTSecret     string
	TokenTTL      time.Duration
	CheckoutDelay time.Duration
	Logger        zerolog.Logger
}

// NewRouter builds the Echo instance with all storefront routes registered
// and returns it together with the checkout service, whose in-flight
// settlements must be cancelled at shutdown.
func NewRouter(db *mongo.Database, rdb *redis.Client, opts Options) (*echo.Echo, *service.CheckoutService) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(opts.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("storefront"))

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	productRepo := mongodb.NewProductRepository(db)
	categoryRepo := mongodb.NewCategoryRepository(db)
	roleRepo := mongodb.NewRoleRepository(db)
	orderRepo := mongodb.NewOrderRepository(db)
	paymentRepo := mongodb.NewPaymentRepository(db)
	sessionRepo := redisdb.NewSessionRepository(rdb, opts.TokenTTL, opts.Logger)
	cartRepo := redisdb.NewCartRepository(rdb)

	// --- Services ---
	authService := service.NewAuthService(userRepo, sessionRepo, opts.JWTSecret, opts.TokenTTL, opts.Logger)
	cartService := service.NewCartService(productRepo, cartRepo, opts.Logger)
	checkoutService := service.NewCheckoutService(cartService, orderRepo, paymentRepo, opts.CheckoutDelay, opts.Logger)
	catalogService := service.NewCatalogService(productRepo, categoryRepo, roleRepo, opts.Logger)
	orderService := service.NewOrderService(orderRepo, paymentRepo, opts.Logger)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	cartHandler := handler.NewCartHandler(cartService)
	checkoutHandler := handler.NewCheckoutHandler(checkoutService)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	orderHandler := handler.NewOrderHandler(orderService)

	authMW := middleware.Auth(opts.JWTSecret, sessionRepo)

	// --- Public auth routes ---
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/signup", authHandler.Signup)
	e.POST("/auth/forgot-password", authHandler.ForgotPassword)
	e.POST("/auth/logout", authHandler.Logout, authMW)
	e.GET("/auth/me", authHandler.Me, authMW)

	// --- Dashboard: any authenticated identity ---
	e.GET("/dashboard", authHandler.Me, authMW, middleware.RBAC())

	// --- Admin console ---
	admin := e.Group("/api/admin", authMW, middleware.RBAC(domain.RoleAdmin))
	admin.GET("/getcategories", catalogHandler.GetCategories)
	admin.POST("/Savecategories", catalogHandler.SaveCategory)
	admin.GET("/products", catalogHandler.ListProducts(false))
	admin.GET("/products/:id", catalogHandler.GetProduct)
	admin.POST("/Saveproducts", catalogHandler.SaveProduct)
	admin.GET("/roles", catalogHandler.ListRoles)
	admin.POST("/Saveroles", catalogHandler.SaveRole)
	admin.GET("/orders", orderHandler.List)
	admin.PUT("/orders/:id/status", orderHandler.UpdateStatus)
	admin.GET("/payments", orderHandler.ListPayments)

	// --- Customer storefront ---
	shop := e.Group("/api/shop", authMW, middleware.RBAC(domain.RoleCustomer))
	shop.GET("/products", catalogHandler.ListProducts(true))
	shop.GET("/products/:id", catalogHandler.GetProduct)
	shop.GET("/cart", cartHandler.Get)
	shop.POST("/cart/items", cartHandler.AddItem)
	shop.PUT("/cart/items/:product_id", cartHandler.UpdateQuantity)
	shop.DELETE("/cart/items/:product_id", cartHandler.RemoveItem)
	shop.DELETE("/cart", cartHandler.Clear)
	shop.POST("/checkout", checkoutHandler.Start)
	shop.GET("/checkout", checkoutHandler.Status)
	shop.DELETE("/checkout", checkoutHandler.Cancel)
	shop.GET("/order-history", orderHandler.History)
	shop.GET("/profile", authHandler.Me)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Catch-all: the router's redirect policy for unknown paths ---
	e.RouteNotFound("/*", routeFallback, middleware.Identify(opts.JWTSecret, sessionRepo))

	return e, checkoutService
}

// routeFallback applies the navigation policy to paths no route matched:
// allowed traffic gets a plain 404, everything else is redirected to where
// the gate points.
func routeFallback(c echo.Context) error {
	decision := access.DecideRoute(middleware.CtxIdentity(c), c.Request().URL.Path)
	if decision.Allowed {
		return echo.NewHTTPError(http.StatusNotFound, "not found")
	}
	return c.Redirect(http.StatusFound, decision.RedirectTo)
}
