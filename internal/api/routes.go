package api

import (
	"net/http"

	"github.com/jmoiron/sqlx"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"stockroom/internal/api/handlers"
	jwtMiddleware "stockroom/internal/api/middleware"
	"stockroom/internal/config"
)

func SetupRoutes(e *echo.Echo, db *sqlx.DB, rdb *redis.Client, cfg *config.Config) {
	e.GET("/health", healthCheck)

	e.Validator = NewValidator()

	wsHandler := handlers.NewWebSocketHandler(cfg)
	e.GET("/api/ws", wsHandler.HandleConnection)

	authHandler := handlers.NewAuthHandler(db, cfg.JWTKey)
	authGroup := e.Group("/api/auth")
	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", authHandler.Login)

	jwtConfig := echojwt.Config{
		SigningKey: []byte(cfg.JWTKey),
		ContextKey: "user",
		ErrorHandler: func(c echo.Context, err error) error {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
		},
	}

	apiGroup := e.Group("/api")
	apiGroup.Use(echojwt.WithConfig(jwtConfig))
	apiGroup.Use(jwtMiddleware.ExtractUserIDFromJWT())

	itemHandler := handlers.NewItemHandler(db, rdb)
	items := apiGroup.Group("/items")
	items.GET("", itemHandler.GetItems)
	items.POST("", itemHandler.CreateItem)
	items.GET("/:id", itemHandler.GetItemByID)
	items.PUT("/:id", itemHandler.UpdateItem)
	items.DELETE("/:id", itemHandler.DeleteItem)
	items.GET("/alerts/low-stock", itemHandler.GetLowStockItems)
	items.POST("/bulk/update-quantity", itemHandler.BulkUpdateQuantity)

	reportHandler := handlers.NewReportHandler(db, rdb)
	items.GET("/analytics/stats", reportHandler.GetStats)
	items.GET("/reports/inventory", reportHandler.GenerateReport)
	items.GET("/search/items", reportHandler.SearchItems)
	items.GET("/sort/quantity", reportHandler.GetItemsSorted)
	items.GET("/health/check", reportHandler.GetHealthCheck)
	items.GET("/export/data", reportHandler.ExportData)
}

func healthCheck(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}
