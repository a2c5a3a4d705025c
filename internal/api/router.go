package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/accounthub/user-service/docs"
	"github.com/accounthub/user-service/internal/api/handler"
	"github.com/accounthub/user-service/internal/api/middleware"
	"github.com/accounthub/user-service/internal/core/domain"
	"github.com/accounthub/user-service/internal/core/ports"
	"github.com/accounthub/user-service/internal/core/service"
	"github.com/accounthub/user-service/internal/pkg/config"
	"github.com/accounthub/user-service/internal/pkg/password"
	"github.com/accounthub/user-service/internal/pkg/token"
)

// Deps carries the externally constructed dependencies for the router.
// Tracker may be nil when no Redis login store is configured.
type Deps struct {
	DB      *mongo.Database
	Redis   *redis.Client
	Users   ports.UserRepository
	Tracker service.LoginTracker
	Config  *config.Config
	Log     zerolog.Logger
}

// NewRouter builds the Echo instance with all routes registered. Role
// requirements are declared per route via the RBAC middleware; routes without
// one accept any verified token.
func NewRouter(deps Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("userservice"))

	// --- Core wiring ---
	hasher := password.NewHasher(deps.Config.BcryptCost)
	issuer := token.NewIssuer(deps.Config.JWTSecret, deps.Config.TokenTTL)
	userService := service.NewUserService(deps.Users, hasher, deps.Log)
	authService := service.NewAuthService(deps.Users, hasher, issuer, deps.Tracker, deps.Log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	tokenAuth := middleware.TokenAuth(issuer)

	// --- API v1 ---
	v1 := e.Group("/api/v1")

	auth := v1.Group("/auth")
	auth.POST("/login", authHandler.Login, middleware.LocalAuth(authService))
	auth.GET("/profile", authHandler.Profile, tokenAuth)
	auth.GET("/admin", authHandler.AdminOnly, tokenAuth, middleware.RBAC(domain.RoleAdmin))
	auth.GET("/user", authHandler.UserOnly, tokenAuth, middleware.RBAC(domain.RoleUser))

	users := v1.Group("/user")
	users.GET("/", userHandler.List)
	users.GET("/:id", userHandler.Get)
	users.POST("/", userHandler.Create)
	users.PUT("/:id", userHandler.Replace)
	users.PATCH("/:id", userHandler.Patch)
	users.DELETE("/:id", userHandler.Delete)

	// --- Operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.DB, deps.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
