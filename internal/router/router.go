package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"shopfront/internal/auth"
	"shopfront/internal/config"
	apperrors "shopfront/internal/errors"
	"shopfront/internal/handler"
	"shopfront/internal/model"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	productHandler *handler.ProductHandler,
	cartHandler *handler.CartHandler,
	orderHandler *handler.OrderHandler,
	supplierHandler *handler.SupplierHandler,
	dashboardHandler *handler.DashboardHandler,
	reportHandler *handler.ReportHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/login", authHandler.Login)
	api.POST("/users", userHandler.Register)
	api.GET("/products", productHandler.List)
	api.GET("/products/:id", productHandler.Get)

	// Secured routes (require JWT authentication)
	jwtConfig := echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return &auth.Claims{}
		},
	}
	secured := api.Group("", echojwt.WithConfig(jwtConfig))

	// User routes (ownership enforced in the handler)
	secured.GET("/users", userHandler.List, RequireRoles(model.UserTypeAdmin))
	secured.GET("/users/:id", userHandler.Get)
	secured.PUT("/users/:id", userHandler.Update)
	secured.DELETE("/users/:id", userHandler.Delete, RequireRoles(model.UserTypeAdmin))

	// Cart routes
	secured.POST("/cart", cartHandler.AddItem)
	secured.GET("/cart", cartHandler.GetCart)
	secured.PUT("/cart/:productId", cartHandler.UpdateItem)
	secured.DELETE("/cart/:productId", cartHandler.RemoveItem)

	// Order routes
	secured.POST("/orders", orderHandler.Create)
	secured.GET("/orders/my-orders", orderHandler.MyOrders)

	// Admin-only routes
	admin := secured.Group("", RequireRoles(model.UserTypeAdmin))
	admin.POST("/products", productHandler.Create)
	admin.PUT("/products/:id", productHandler.Update)
	admin.DELETE("/products/:id", productHandler.Delete)

	admin.GET("/orders", orderHandler.List)
	admin.POST("/orders/:id/canceled", orderHandler.Cancel)
	admin.POST("/orders/:id/shipped", orderHandler.Ship)
	admin.POST("/orders/:id/delivered", orderHandler.Deliver)

	admin.POST("/suppliers", supplierHandler.Create)
	admin.GET("/suppliers", supplierHandler.List)
	admin.GET("/suppliers/:id", supplierHandler.Get)
	admin.PUT("/suppliers/:id", supplierHandler.Update)
	admin.DELETE("/suppliers/:id", supplierHandler.Delete)

	admin.GET("/admin/dashboard", dashboardHandler.Dashboard)
	admin.GET("/reports", reportHandler.SalesReport)
}

// RequireRoles rejects callers whose token role is not in the allow-list.
func RequireRoles(allowed ...model.UserType) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := c.Get("user").(*jwt.Token)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
					Error: "missing or invalid token",
					Code:  "UNAUTHENTICATED",
				})
			}
			claims, ok := token.Claims.(*auth.Claims)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, apperrors.ErrorResponse{
					Error: "missing or invalid token",
					Code:  "UNAUTHENTICATED",
				})
			}
			for _, role := range allowed {
				if model.UserType(claims.UserType) == role {
					return next(c)
				}
			}
			return echo.NewHTTPError(http.StatusForbidden, apperrors.ErrorResponse{
				Error: "access denied",
				Code:  "ACCESS_DENIED",
			})
		}
	}
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
