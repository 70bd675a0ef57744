package http

import (
	"net/http"
	"path/filepath"

	"github.com/Seirafashion/sui-backend/internal/dto"
	"github.com/Seirafashion/sui-backend/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

type RouterConfig struct {
	StaticDir   string
	CORSOrigins []string
}

// Health godoc
// @Summary Проверка доступности
// @Tags system
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Router /api/health [get]
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok"})
}

func Router(catalog service.CatalogService, orders service.OrderService, cfg RouterConfig, log *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestID(), AccessLog(log))

	origins := cfg.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:  origins,
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Content-Type", HeaderRequestID},
		ExposeHeaders: []string{"Content-Length", HeaderRequestID},
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	catalogHandler := NewCatalogHandler(catalog, log)
	orderHandler := NewOrderHandler(orders, log)

	api := r.Group("/api")
	api.GET("/health", Health)
	api.GET("/categories", catalogHandler.ListCategories)
	api.GET("/products", catalogHandler.ListProducts)
	api.GET("/products/:id", catalogHandler.GetProduct)
	api.POST("/orders", orderHandler.CreateOrder)
	api.GET("/orders/:id", orderHandler.GetOrder)

	if cfg.StaticDir != "" {
		pages := NewPageHandler(cfg.StaticDir)
		r.GET("/", pages.Landing)
		r.GET("/pages/:page", pages.Page)
		r.Static("/static", filepath.Join(cfg.StaticDir, "static"))
	}

	return r
}
