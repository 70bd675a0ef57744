package service

import (
	"context"

	"github.com/Seirafashion/sui-backend/internal/models"
)

type Customer struct {
	Name       string
	Email      string
	Address1   string
	Address2   string
	City       string
	State      string
	PostalCode string
	Country    string
}

type CreateOrderItem struct {
	ProductID string // как пришло от клиента, "" если не передан или null
	Quantity  string // целое число в тексте, "" если не передано
}

type CreateOrderInput struct {
	Customer Customer
	Items    []CreateOrderItem
}

type ConfirmedItem struct {
	ProductID uint
	Quantity  int
	UnitPrice float64
}

type OrderConfirmation struct {
	OrderID uint
	Status  models.OrderStatus
	Total   float64
	Items   []ConfirmedItem
}

type OrderService interface {
	CreateOrder(ctx context.Context, in CreateOrderInput) (*OrderConfirmation, error)
	GetOrder(ctx context.Context, id uint) (*models.Order, error)
}
