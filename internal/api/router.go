package api

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	_ "github.com/mercadinho/catalog-api/docs"
	"github.com/mercadinho/catalog-api/internal/api/handler"
	"github.com/mercadinho/catalog-api/internal/api/middleware"
	"github.com/mercadinho/catalog-api/internal/auth"
	"github.com/mercadinho/catalog-api/internal/core/domain"
	"github.com/mercadinho/catalog-api/internal/core/service"
	"github.com/mercadinho/catalog-api/internal/infrastructure/db/postgres"
	"github.com/mercadinho/catalog-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(pool *pgxpool.Pool, rdb *goredis.Client, codec *auth.Codec, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("catalog"))

	// --- Dependencies ---
	authRepo := postgres.NewAuthRepository(pool)
	limiter := redis.NewLoginLimiter(rdb)
	authService := service.NewAuthService(authRepo, codec, limiter, log)
	authHandler := handler.NewAuthHandler(authService)

	catalogService := service.NewCatalogService(
		postgres.NewTypeProductRepository(pool),
		postgres.NewProdutoRepository(pool),
		log,
	)
	typeProductHandler := handler.NewTypeProductHandler(catalogService)
	produtoHandler := handler.NewProdutoHandler(catalogService)

	authenticated := middleware.Auth(codec)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/signup", authHandler.Signup)
	e.POST("/login", authHandler.Login)

	// --- Catalog routes: reads need a valid token, writes need admin ---
	e.POST("/type_products", typeProductHandler.Create, authenticated, adminOnly)
	e.GET("/type_products", typeProductHandler.List, authenticated)
	e.PUT("/type_products/:id", typeProductHandler.Update, authenticated, adminOnly)
	e.DELETE("/type_products/:id", typeProductHandler.Delete, authenticated, adminOnly)

	e.POST("/produto", produtoHandler.Create, authenticated, adminOnly)
	e.GET("/produto", produtoHandler.List, authenticated)
	e.PUT("/produto/:id", produtoHandler.Update, authenticated, adminOnly)
	e.DELETE("/produto/:id", produtoHandler.Delete, authenticated, adminOnly)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(pool, rdb)

	e.GET("/health", healthHandler.Liveness)            // is the process alive
	e.GET("/health/ready", healthDepsHandler.Readiness) // are the dependencies up

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
