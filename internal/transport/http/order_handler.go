package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Seirafashion/sui-backend/internal/dto"
	"github.com/Seirafashion/sui-backend/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type OrderHandler struct {
	svc service.OrderService
	log *zap.Logger
}

func NewOrderHandler(svc service.OrderService, log *zap.Logger) *OrderHandler {
	return &OrderHandler{
		svc: svc,
		log: log,
	}
}

var errEmptyBody = errors.New("empty json object")

// bindOrderRequest rejects missing, malformed and empty ({}) bodies.
func bindOrderRequest(c *gin.Context) (dto.CreateOrderRequest, error) {
	var req dto.CreateOrderRequest
	body, err := c.GetRawData()
	if err != nil {
		return req, err
	}
	var top map[string]json.RawMessage
	if err := json.Unmarshal(body, &top); err != nil {
		return req, err
	}
	if len(top) == 0 {
		return req, errEmptyBody
	}
	if err := json.Unmarshal(body, &req); err != nil {
		return req, err
	}
	return req, nil
}

// CreateOrder godoc
// @Summary Оформление заказа
// @Description Проверяет покупателя и позиции, фиксирует цены и сохраняет заказ одной транзакцией
// @Tags orders
// @Accept json
// @Produce json
// @Param order body dto.CreateOrderRequest true "Покупатель и позиции"
// @Success 201 {object} dto.OrderConfirmation
// @Failure 400 {object} dto.ValidationErrorResponse "Неверные данные"
// @Failure 500 {object} dto.InternalErrorResponse "Внутренняя ошибка"
// @Router /api/orders [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	req, err := bindOrderRequest(c)
	if err != nil {
		h.log.Warn("Invalid order request", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.NewValidationError("JSON body is required"))
		return
	}

	conf, err := h.svc.CreateOrder(c.Request.Context(), req.ToInput())
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewOrderConfirmation(*conf))
}

// GetOrder godoc
// @Summary Заказ
// @Tags orders
// @Produce json
// @Param id path int true "ID заказа"
// @Success 200 {object} dto.Order
// @Failure 404 {object} dto.NotFoundErrorResponse "Заказ не найден"
// @Failure 500 {object} dto.InternalErrorResponse "Внутренняя ошибка"
// @Router /api/orders/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		c.JSON(http.StatusNotFound, dto.NewNotFoundError("Order not found"))
		return
	}
	o, err := h.svc.GetOrder(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewOrder(*o))
}
