package http

import (
	"net/http"
	"strconv"

	"github.com/Seirafashion/sui-backend/internal/dto"
	"github.com/Seirafashion/sui-backend/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CatalogHandler struct {
	svc service.CatalogService
	log *zap.Logger
}

func NewCatalogHandler(svc service.CatalogService, log *zap.Logger) *CatalogHandler {
	return &CatalogHandler{
		svc: svc,
		log: log,
	}
}

// parseID reads a positive integer path parameter.
func parseID(c *gin.Context, name string) (uint, bool) {
	n, err := strconv.ParseUint(c.Param(name), 10, 0)
	if err != nil || n == 0 {
		return 0, false
	}
	return uint(n), true
}

// ListCategories godoc
// @Summary Список категорий
// @Description Все категории по имени, с количеством товаров
// @Tags catalog
// @Produce json
// @Success 200 {array} dto.Category
// @Failure 500 {object} dto.InternalErrorResponse "Внутренняя ошибка"
// @Router /api/categories [get]
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	list, err := h.svc.ListCategories(c.Request.Context())
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewCategories(list))
}

// ListProducts godoc
// @Summary Список товаров
// @Description Товары по имени; фильтры по slug категории и подстроке имени, без учёта регистра
// @Tags catalog
// @Produce json
// @Param category query string false "slug категории"
// @Param search query string false "подстрока имени"
// @Success 200 {array} dto.Product
// @Failure 500 {object} dto.InternalErrorResponse "Внутренняя ошибка"
// @Router /api/products [get]
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	list, err := h.svc.ListProducts(c.Request.Context(), service.ProductFilter{
		CategorySlug: c.Query("category"),
		Search:       c.Query("search"),
	})
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewProducts(list))
}

// GetProduct godoc
// @Summary Товар
// @Tags catalog
// @Produce json
// @Param id path int true "ID товара"
// @Success 200 {object} dto.Product
// @Failure 404 {object} dto.NotFoundErrorResponse "Товар не найден"
// @Failure 500 {object} dto.InternalErrorResponse "Внутренняя ошибка"
// @Router /api/products/{id} [get]
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, dto.NewNotFoundError("Product not found"))
		return
	}
	p, err := h.svc.GetProduct(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewProduct(*p))
}
