package dto

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"time"

	"github.com/Seirafashion/sui-backend/internal/models"
	"github.com/Seirafashion/sui-backend/internal/service"
)

type CustomerRequest struct {
	Name       string `json:"name" example:"Alex Morgan"`
	Email      string `json:"email" example:"alex.morgan@example.com"`
	Address1   string `json:"address1" example:"123 Market Street"`
	Address2   string `json:"address2"`
	City       string `json:"city" example:"San Francisco"`
	State      string `json:"state" example:"CA"`
	PostalCode string `json:"postal_code" example:"94103"`
	Country    string `json:"country" example:"US"`
}

// LineItemRequest keeps the raw JSON so that numbers and numeric strings are both accepted.
type LineItemRequest struct {
	ProductID json.RawMessage `json:"product_id" swaggertype:"integer" example:"1"`
	Quantity  json.RawMessage `json:"quantity" swaggertype:"integer" example:"2"`
}

type CreateOrderRequest struct {
	Customer CustomerRequest   `json:"customer"`
	Items    []LineItemRequest `json:"items"`
}

type ConfirmedItem struct {
	ProductID uint    `json:"product_id" example:"1"`
	Quantity  int     `json:"quantity" example:"2"`
	UnitPrice float64 `json:"unit_price" example:"29.99"`
}

type OrderConfirmation struct {
	OrderID uint            `json:"order_id" example:"42"`
	Status  string          `json:"status" example:"processing"`
	Total   float64         `json:"total" example:"84.48"`
	Items   []ConfirmedItem `json:"items"`
}

type ProductRef struct {
	ID   uint   `json:"id" example:"1"`
	Name string `json:"name" example:"Classic Crewneck Tee"`
}

type OrderItem struct {
	Product   ProductRef `json:"product"`
	Quantity  int        `json:"quantity" example:"2"`
	UnitPrice float64    `json:"unit_price" example:"29.99"`
	Subtotal  float64    `json:"subtotal" example:"59.98"`
}

type Order struct {
	ID              uint        `json:"id" example:"42"`
	CustomerName    string      `json:"customer_name"`
	CustomerEmail   string      `json:"customer_email"`
	ShippingAddress string      `json:"shipping_address"`
	Status          string      `json:"status" example:"processing"`
	CreatedAt       string      `json:"created_at" example:"2025-01-02T15:04:05Z"`
	Items           []OrderItem `json:"items"`
	Total           float64     `json:"total" example:"84.48"`
}

// rawScalar turns a JSON scalar into its textual form: strings are unquoted,
// null and absent values become "".
func rawScalar(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return s
		}
		return ""
	}
	return string(raw)
}

// integerText prints a JSON number as an integer. With truncate, fractions are
// cut toward zero; otherwise only integral values (3.0) are rewritten.
// Strings and other values pass through rawScalar unchanged.
func integerText(raw json.RawMessage, truncate bool) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || (raw[0] != '-' && (raw[0] < '0' || raw[0] > '9')) {
		return rawScalar(raw)
	}
	if n, err := strconv.ParseInt(string(raw), 10, 64); err == nil {
		return strconv.FormatInt(n, 10)
	}
	f, err := strconv.ParseFloat(string(raw), 64)
	if err != nil || math.Abs(f) >= math.MaxInt64 || (!truncate && f != math.Trunc(f)) {
		return string(raw)
	}
	return strconv.FormatInt(int64(f), 10)
}

func (r CreateOrderRequest) ToInput() service.CreateOrderInput {
	items := make([]service.CreateOrderItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, service.CreateOrderItem{
			ProductID: integerText(it.ProductID, false),
			Quantity:  integerText(it.Quantity, true),
		})
	}
	return service.CreateOrderInput{
		Customer: service.Customer{
			Name:       r.Customer.Name,
			Email:      r.Customer.Email,
			Address1:   r.Customer.Address1,
			Address2:   r.Customer.Address2,
			City:       r.Customer.City,
			State:      r.Customer.State,
			PostalCode: r.Customer.PostalCode,
			Country:    r.Customer.Country,
		},
		Items: items,
	}
}

func NewOrderConfirmation(c service.OrderConfirmation) OrderConfirmation {
	items := make([]ConfirmedItem, 0, len(c.Items))
	for _, it := range c.Items {
		items = append(items, ConfirmedItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}
	return OrderConfirmation{
		OrderID: c.OrderID,
		Status:  string(c.Status),
		Total:   c.Total,
		Items:   items,
	}
}

// NewOrderItem expects Product to be loaded.
func NewOrderItem(it models.OrderItem) OrderItem {
	return OrderItem{
		Product: ProductRef{
			ID:   it.Product.ID,
			Name: it.Product.Name,
		},
		Quantity:  it.Quantity,
		UnitPrice: it.UnitPrice,
		Subtotal:  it.Subtotal().InexactFloat64(),
	}
}

// NewOrder expects Items and Items.Product to be loaded.
func NewOrder(o models.Order) Order {
	items := make([]OrderItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, NewOrderItem(it))
	}
	return Order{
		ID:              o.ID,
		CustomerName:    o.CustomerName,
		CustomerEmail:   o.CustomerEmail,
		ShippingAddress: o.ShippingAddress,
		Status:          string(o.Status),
		CreatedAt:       o.CreatedAt.UTC().Format(time.RFC3339),
		Items:           items,
		Total:           o.Total().InexactFloat64(),
	}
}
